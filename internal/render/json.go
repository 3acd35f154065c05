package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/parser"
)

// JSON encodes a snapshot as an indented JSON object.
func JSON(snap *parser.Snapshot) ([]byte, error) {
	s := snap.Settings

	fonts := make(map[string]any, settings.NumFonts)
	for _, size := range settings.FontSizes() {
		f := snap.Fonts[size]
		fonts[size.String()] = map[string]any{
			"file": validText(f.FileName),
			"size": f.Size,
		}
	}

	alarms := make([]any, 0, len(snap.Alarms))
	for _, a := range snap.Alarms {
		days := make([]any, 0, len(a.Days))
		for _, name := range a.Days.Names() {
			days = append(days, name)
		}

		alarms = append(alarms, map[string]any{
			"time":         a.Clock(),
			"trigger_time": a.TriggerTime,
			"days":         days,
		})
	}

	doc, err := structpb.NewStruct(map[string]any{
		"settings": map[string]any{
			"title":            validText(s.Title),
			"alarm_sound_file": validText(s.SoundFileName),
			"screen_width":     s.ScreenWidth,
			"screen_height":    s.ScreenHeight,
			"dim_delay":        s.DimDelay,
			"bright":           s.Bright,
			"dim":              s.Dim,
			"fonts":            fonts,
		},
		"alarms": alarms,
	})
	if err != nil {
		return nil, fmt.Errorf("build snapshot document: %w", err)
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline:       true,
		Indent:          "  ",
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	return data, nil
}

// validText replaces bytes that are not valid UTF-8, which a byte-bounded
// copy leaves behind when it cuts through a multi-byte character.
func validText(s string) string {
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
