package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/parser"
)

func sampleSnapshot() *parser.Snapshot {
	return &parser.Snapshot{
		Settings: settings.Settings{
			Title:         "Alarm clock",
			SoundFileName: settings.Unset,
			ScreenWidth:   1024,
			ScreenHeight:  600,
			DimDelay:      60,
			Bright:        200,
			Dim:           settings.UnsetNumber,
		},
		Fonts: settings.DefaultFonts(),
		Alarms: []alarm.Alarm{
			{TriggerTime: 25200, Days: alarm.Days{false, true, false, true, false, true, false}},
			{TriggerTime: 3600},
		},
	}
}

// TestText checks that every section of the dump is present.
func TestText(t *testing.T) {
	t.Parallel()

	out := Text(sampleSnapshot(), DefaultTheme())

	for _, want := range []string{
		"Settings", `"Alarm clock"`, `"<Unset>"`, "1024", "Fonts", "Large",
		"FreeSerifBoldItalic.ttf", "Alarms (2)", "07:00:00", "Monday, Wednesday, Friday",
		"01:00:00", "no days",
	} {
		require.Contains(t, out, want)
	}

	empty := Text(&parser.Snapshot{Settings: settings.Defaults(), Fonts: settings.DefaultFonts()}, DefaultTheme())
	require.Contains(t, empty, "Alarms (0)")
	require.Contains(t, empty, "none")
}

// TestJSON decodes the JSON dump and checks representative fields.
func TestJSON(t *testing.T) {
	t.Parallel()

	data, err := JSON(sampleSnapshot())
	require.NoError(t, err)

	var doc struct {
		Settings struct {
			Title       string `json:"title"`
			ScreenWidth int    `json:"screen_width"`
			Dim         int    `json:"dim"`
			Fonts       map[string]struct {
				File string `json:"file"`
				Size int    `json:"size"`
			} `json:"fonts"`
		} `json:"settings"`
		Alarms []struct {
			Time        string   `json:"time"`
			TriggerTime int      `json:"trigger_time"`
			Days        []string `json:"days"`
		} `json:"alarms"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "Alarm clock", doc.Settings.Title)
	require.Equal(t, 1024, doc.Settings.ScreenWidth)
	require.Equal(t, -1, doc.Settings.Dim)
	require.Equal(t, 240, doc.Settings.Fonts["large"].Size)
	require.Len(t, doc.Alarms, 2)
	require.Equal(t, "07:00:00", doc.Alarms[0].Time)
	require.Equal(t, []string{"Monday", "Wednesday", "Friday"}, doc.Alarms[0].Days)
	require.Equal(t, 3600, doc.Alarms[1].TriggerTime)
	require.Empty(t, doc.Alarms[1].Days)
}

// TestJSON_TruncatedTitle encodes a title cut inside a multi-byte character.
func TestJSON_TruncatedTitle(t *testing.T) {
	t.Parallel()

	prefix := strings.Repeat("a", settings.DefaultStringLimit-1)

	snap := sampleSnapshot()
	snap.Settings.Title = prefix + "\xc3"
	snap.Fonts[settings.Small].FileName = "/fonts/\xe2\x82"

	data, err := JSON(snap)
	require.NoError(t, err)

	var doc struct {
		Settings struct {
			Title string `json:"title"`
		} `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, prefix+"\uFFFD", doc.Settings.Title)
}
