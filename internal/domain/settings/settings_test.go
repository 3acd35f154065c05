package settings

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// observedContext returns a context whose logger records entries for assertions.
func observedContext() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return logger.ToContext(context.Background(), zap.New(core).Sugar()), logs
}

// TestNewStore_Sentinels ensures every setting starts unset and fonts start at defaults.
func TestNewStore_Sentinels(t *testing.T) {
	t.Parallel()

	s := NewStore(Limits{})
	require.Equal(t, Defaults(), s.Settings())
	require.Equal(t, DefaultFonts(), s.Fonts())
	require.Equal(t, Unset, s.Settings().Title)
	require.Equal(t, UnsetNumber, s.Settings().Dim)
}

// TestStore_Setters verifies values are parsed and that the last write wins.
func TestStore_Setters(t *testing.T) {
	t.Parallel()

	ctx, logs := observedContext()
	s := NewStore(DefaultLimits())

	s.SetTitle(ctx, "First")
	s.SetTitle(ctx, "Alarm clock")
	s.SetSoundFileName(ctx, "Alarm_Classic.ogg")
	s.SetScreenWidth("1024")
	s.SetScreenHeight("600px")
	s.SetDimDelay("sixty")
	s.SetBright("200")
	s.SetDim("-30")

	require.Equal(t, Settings{
		Title:         "Alarm clock",
		SoundFileName: "Alarm_Classic.ogg",
		ScreenWidth:   1024,
		ScreenHeight:  600,
		DimDelay:      0,
		Bright:        200,
		Dim:           -30,
	}, s.Settings())
	require.Zero(t, logs.Len())
}

// TestStore_Truncation checks over-long strings are cut to the limit with a warning.
func TestStore_Truncation(t *testing.T) {
	t.Parallel()

	ctx, logs := observedContext()
	s := NewStore(Limits{String: 8, FileName: 4})

	s.SetTitle(ctx, strings.Repeat("x", 9))
	require.Equal(t, strings.Repeat("x", 8), s.Settings().Title)

	s.SetSoundFileName(ctx, "12345678")
	require.Equal(t, "12345678", s.Settings().SoundFileName)

	s.SetFontFileName(ctx, Small, "abcdef")
	f, ok := s.Font(Small)
	require.True(t, ok)
	require.Equal(t, "abcd", f.FileName)

	entries := logs.FilterMessage("Setting truncated").All()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "Title", entries[0].ContextMap()["setting"])
	require.Equal(t, "Font file name", entries[1].ContextMap()["setting"])
}

// TestStore_Fonts verifies writes go to the selected slot only and unknown slots are ignored.
func TestStore_Fonts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewStore(DefaultLimits())

	s.SetFontFileName(ctx, Medium, "/fonts/Medium.ttf")
	s.SetFontSize(Medium, "64")
	s.SetFontSize(FontSize(7), "1")
	s.SetFontFileName(ctx, FontSize(-1), "nope")

	fonts := s.Fonts()
	require.Equal(t, Font{FileName: "/fonts/Medium.ttf", Size: 64}, fonts[Medium])
	require.Equal(t, DefaultFonts()[Large], fonts[Large])
	require.Equal(t, DefaultFonts()[Small], fonts[Small])

	_, ok := s.Font(FontSize(3))
	require.False(t, ok)
	require.Equal(t, "medium", Medium.String())
	require.Equal(t, "font(3)", FontSize(3).String())
}
