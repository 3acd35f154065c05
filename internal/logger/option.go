package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// overrideCore replaces the level check of the wrapped core, so a child
// logger can be more verbose than the global one.
type overrideCore struct {
	zapcore.Core

	// min is the lowest level this core writes.
	min zapcore.Level
}

// Enabled ignores the wrapped core's level.
func (c *overrideCore) Enabled(l zapcore.Level) bool {
	return l >= c.min
}

// Check adds c itself to the entry so the wrapped core's own check is skipped.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *overrideCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, c)
}

// With keeps the override on derived cores.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *overrideCore) With(fields []zapcore.Field) zapcore.Core {
	return &overrideCore{Core: c.Core.With(fields), min: c.min}
}

// WithLevel returns an option that makes the logger write entries at lvl and
// above regardless of the level it was built with.
//
//nolint:ireturn,nolintlint // Returning zap.Option is intended for zap integration.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &overrideCore{Core: core, min: lvl}
	})
}

// Verbose returns a context whose logger writes debug entries even when the
// global level is higher.
func Verbose(ctx context.Context) context.Context {
	return ToContext(ctx, FromContext(ctx).WithOptions(WithLevel(zapcore.DebugLevel)))
}
