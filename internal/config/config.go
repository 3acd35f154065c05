package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/parser"
)

// Config holds the application settings shared by the CLI commands.
type Config struct {
	// ConfigPath is the clock document to parse.
	ConfigPath string
	// SnapshotPath is the SQLite database receiving parsed snapshots.
	SnapshotPath string
	// LogLevel is the minimum level of emitted logs.
	LogLevel string
	// StringLimit bounds the title and the sound file name.
	StringLimit int
	// FileNameLimit bounds font file names.
	FileNameLimit int
	// AlarmLimit caps the number of alarms kept; zero means unlimited.
	AlarmLimit int
}

const (
	// DefaultConfigFilename is the clock document read from the working directory.
	DefaultConfigFilename = "config.yaml"

	// DefaultSnapshotFilename is the default snapshot database.
	DefaultSnapshotFilename = "alarm-clock.db"

	// DefaultEnvFilename is the optional dotenv file with overrides.
	DefaultEnvFilename = ".env"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600
)

// Environment variables read by Load.
const (
	EnvConfigPath    = "ALARM_CLOCK_CONFIG"
	EnvSnapshotPath  = "ALARM_CLOCK_SNAPSHOT"
	EnvLogLevel      = "ALARM_CLOCK_LOG_LEVEL"
	EnvStringLimit   = "ALARM_CLOCK_STRING_LIMIT"
	EnvFileNameLimit = "ALARM_CLOCK_FILE_NAME_LIMIT"
	EnvAlarmLimit    = "ALARM_CLOCK_ALARM_LIMIT"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLimit is returned for negative bounds.
	errInvalidLimit = errors.New("limit must not be negative")
	// errInvalidLogLevel is returned for unknown level names.
	errInvalidLogLevel = errors.New("unknown log level")
)

// Load reads the dotenv file at envFile (if it exists), overlays the process
// environment and validates the result. A missing file is only an error when
// it is not the default one.
func Load(envFile string) (*Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFilename
	}

	values, err := godotenv.Read(filepath.Clean(envFile))
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && !explicit:
		values = map[string]string{}
	default:
		return nil, fmt.Errorf("read env file: %w", err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}

		v, ok := values[key]

		return v, ok
	}

	cfg := &Config{
		ConfigPath:   DefaultConfigFilename,
		SnapshotPath: DefaultSnapshotFilename,
		LogLevel:     DefaultLogLevel,
	}

	if v, ok := lookup(EnvConfigPath); ok {
		cfg.ConfigPath = v
	}

	if v, ok := lookup(EnvSnapshotPath); ok {
		cfg.SnapshotPath = v
	}

	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}

	for key, dest := range map[string]*int{
		EnvStringLimit:   &cfg.StringLimit,
		EnvFileNameLimit: &cfg.FileNameLimit,
		EnvAlarmLimit:    &cfg.AlarmLimit,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}

		if *dest, err = parseLimit(v); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings and fills defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = DefaultConfigFilename
	}

	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = DefaultSnapshotFilename
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	if cfg.StringLimit < 0 || cfg.FileNameLimit < 0 || cfg.AlarmLimit < 0 {
		return errInvalidLimit
	}

	if cfg.StringLimit == 0 {
		cfg.StringLimit = settings.DefaultStringLimit
	}

	if cfg.FileNameLimit == 0 {
		cfg.FileNameLimit = settings.DefaultFileNameLimit
	}

	return nil
}

// ParserOptions converts the settings into parse options.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		Limits: settings.Limits{
			String:   c.StringLimit,
			FileName: c.FileNameLimit,
		},
		AlarmLimit: c.AlarmLimit,
	}
}

func parseLimit(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("parse limit %q: %w", text, err)
	}

	if n < 0 {
		return 0, errInvalidLimit
	}

	return n, nil
}
