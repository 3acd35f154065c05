package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestContextLogger checks that the context carries its own logger and falls back to the global one.
func TestContextLogger(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))

	var buf bytes.Buffer

	ctx := ToContext(context.Background(), NewWithWriter(&buf, zapcore.DebugLevel))
	ctx = WithName(ctx, "parser")
	ctx = WithKV(ctx, "file", "config.yaml")

	WarnKV(ctx, "Setting truncated", "setting", "Title")

	out := buf.String()
	require.Contains(t, out, "WARN")
	require.Contains(t, out, "parser")
	require.Contains(t, out, "Setting truncated")
	require.Contains(t, out, "config.yaml")
}

// TestVerbose ensures a verbose context writes debug entries through an info-level logger.
func TestVerbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := ToContext(context.Background(), NewWithWriter(&buf, zapcore.InfoLevel))

	DebugKV(ctx, "hidden")
	require.Empty(t, buf.String())

	ctx = WithKV(Verbose(ctx), "state", "in_settings")
	DebugKV(ctx, "Transition")

	out := buf.String()
	require.Contains(t, out, "Transition")
	require.Contains(t, out, "in_settings")
}
