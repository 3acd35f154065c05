package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/repository/snapshot"
	"github.com/oshokin/alarm-clock/internal/service/loader"
)

var (
	// trace logs every parser transition.
	trace bool
	// noSnapshot skips storing the parsed configuration.
	noSnapshot bool

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate the clock document and store a snapshot.",
		Long: `Parses the clock document and reports the first structural error, if any.

A missing document is not an error: the clock falls back to its built-in
defaults and no snapshot is stored. On success the parsed configuration is
saved to the snapshot database unless --no-snapshot is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			opts := &loader.Options{
				Config: cfg,
				Trace:  trace,
			}

			if !noSnapshot {
				repo, err := snapshot.OpenStore(ctx, cfg.SnapshotPath)
				if err != nil {
					return err
				}

				defer func() {
					_ = repo.Close()
				}()

				opts.Repository = repo
			}

			res, err := loader.Run(ctx, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch {
			case res.Degraded:
				_, _ = fmt.Fprintf(out, "%s not found, using defaults\n", cfg.ConfigPath)
			case res.Record != nil:
				_, _ = fmt.Fprintf(out, "%s is valid: %d alarm(s), snapshot %s\n",
					cfg.ConfigPath, res.Context.AlarmCount(), res.Record.ID)
			default:
				_, _ = fmt.Fprintf(out, "%s is valid: %d alarm(s)\n", cfg.ConfigPath, res.Context.AlarmCount())
			}

			return nil
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	checkCmd.Flags().BoolVar(&trace, "trace", false, "log every parser transition")
	checkCmd.Flags().BoolVar(&noSnapshot, "no-snapshot", false, "do not store the parsed configuration")
}
