package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// configPath overrides the clock document path from the environment.
	configPath string
	// envFile is the dotenv file with overrides.
	envFile string
	// logLevel overrides the configured log level.
	logLevel string
	// snapshotPath overrides the snapshot database path.
	snapshotPath string

	// cfg is resolved once before any subcommand runs.
	cfg *config.Config

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "alarm-clock",
		Short: "Read and inspect the alarm clock configuration.",
		Long: `Reads the alarm clock configuration document in a single pass and
builds the display settings, the three clock fonts and the alarm list.

Settings come from a dotenv file, the process environment and the flags,
in increasing order of precedence. Use "check" to validate a document,
"show" to print what the clock would use and "init" to write the default one.`,
		SilenceUsage:      true,
		PersistentPreRunE: resolveConfig,
	}
)

// Execute runs the alarm-clock CLI and exits with non-zero status on error.
func Execute() {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// resolveConfig loads the settings and applies the flag overrides.
func resolveConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("config") {
		loaded.ConfigPath = configPath
	}

	if flags.Changed("snapshot") {
		loaded.SnapshotPath = snapshotPath
	}

	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}

	if err = config.Validate(loaded); err != nil {
		return err
	}

	level, ok := logger.ParseLogLevel(loaded.LogLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", loaded.LogLevel)
	}

	logger.SetLevel(level)

	cfg = loaded

	return nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to the clock document")
	flags.StringVar(&envFile, "env", "", "path to a dotenv file (default .env if present)")
	flags.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&snapshotPath, "snapshot", config.DefaultSnapshotFilename, "path to the snapshot database")

	rootCmd.AddCommand(checkCmd, showCmd, initCmd, nextCmd, soundCmd)
}
