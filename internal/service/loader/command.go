package loader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/parser"
	"github.com/oshokin/alarm-clock/internal/repository/snapshot"
	"github.com/oshokin/alarm-clock/internal/tokenizer"
)

// Options controls how the clock document is loaded.
type Options struct {
	// Config holds the document path and parse limits.
	Config *config.Config
	// Trace logs every parser transition regardless of the global level.
	Trace bool
	// Repository receives a snapshot of the parsed configuration when set.
	Repository snapshot.Repository
}

// Result is the outcome of Run.
type Result struct {
	// Context is the parsed configuration, or the defaults when Degraded.
	Context *parser.Context
	// Degraded is true when the document was missing and defaults are used.
	Degraded bool
	// Record is the stored snapshot, if a repository was configured.
	Record *snapshot.Record
}

// ErrConfigMissing is returned by Load when the document does not exist.
var ErrConfigMissing = errors.New("configuration file not found")

// errNoConfig is returned when Options carry no configuration.
var errNoConfig = errors.New("loader configuration is not set")

// Load parses the document named by cfg. The file is closed on every path.
func Load(ctx context.Context, cfg *config.Config, trace bool) (*parser.Context, error) {
	if cfg == nil {
		return nil, errNoConfig
	}

	ctx = logger.WithKV(ctx, "file", cfg.ConfigPath)

	if trace {
		ctx = logger.Verbose(ctx)
	}

	tok, err := tokenizer.Open(cfg.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrConfigMissing, err)
		}

		return nil, err
	}

	defer func() {
		_ = tok.Close()
	}()

	opts := cfg.ParserOptions()
	opts.Trace = trace

	result, err := parser.Parse(ctx, tok, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", cfg.ConfigPath, err)
	}

	dump(ctx, result)

	return result, nil
}

// Run loads the document, degrading to defaults when it is missing, and
// stores a snapshot when a repository is configured.
func Run(ctx context.Context, opts *Options) (*Result, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "loader")

	if opts == nil || opts.Config == nil {
		return nil, errNoConfig
	}

	result := new(Result)

	parsed, err := Load(ctx, opts.Config, opts.Trace)
	switch {
	case err == nil:
		result.Context = parsed
	case errors.Is(err, ErrConfigMissing):
		logger.WarnKV(ctx, "Failed to open configuration file, using defaults", "file", opts.Config.ConfigPath)

		result.Context = parser.NewContext(opts.Config.ParserOptions())
		result.Degraded = true
	default:
		return nil, err
	}

	logger.InfoKV(ctx, "Configuration loaded",
		"file", opts.Config.ConfigPath,
		"degraded", result.Degraded,
		"alarms", result.Context.AlarmCount())

	if opts.Repository == nil || result.Degraded {
		return result, nil
	}

	record, err := opts.Repository.Save(ctx, opts.Config.ConfigPath, result.Context.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	logger.InfoKV(ctx, "Snapshot stored", "id", record.ID)

	result.Record = record

	return result, nil
}

// dump logs every setting, font and alarm at debug level.
func dump(ctx context.Context, c *parser.Context) {
	s := c.Settings()

	logger.DebugKV(ctx, "Settings",
		"title", s.Title,
		"sound_file_name", s.SoundFileName,
		"screen_width", s.ScreenWidth,
		"screen_height", s.ScreenHeight,
		"dim_delay", s.DimDelay,
		"bright", s.Bright,
		"dim", s.Dim)

	for size, f := range c.Fonts() {
		logger.DebugKV(ctx, "Font", "slot", settings.FontSize(size).String(), "size", f.Size, "file", f.FileName)
	}

	for i, a := range c.Alarms() {
		logger.DebugKV(ctx, "Alarm", "index", i, "time", a.Clock(), "trigger_time", a.TriggerTime, "days", a.Days.Names())
	}
}
