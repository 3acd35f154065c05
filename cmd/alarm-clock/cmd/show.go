package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/parser"
	"github.com/oshokin/alarm-clock/internal/render"
	"github.com/oshokin/alarm-clock/internal/repository/snapshot"
	"github.com/oshokin/alarm-clock/internal/service/loader"
)

var (
	// asJSON switches show to JSON output.
	asJSON bool
	// latest prints the last stored snapshot instead of parsing the document.
	latest bool

	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the settings, fonts and alarms the clock would use.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if asJSON {
				data, err := render.JSON(snap)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(out, string(data))

				return err
			}

			_, err = fmt.Fprintln(out, render.Text(snap, render.DefaultTheme()))

			return err
		},
	}
)

// loadSnapshot parses the document, or reads the stored snapshot with --latest.
func loadSnapshot(ctx context.Context) (*parser.Snapshot, error) {
	if !latest {
		res, err := loader.Run(ctx, &loader.Options{Config: cfg})
		if err != nil {
			return nil, err
		}

		return res.Context.Snapshot(), nil
	}

	store, err := snapshot.OpenStore(ctx, cfg.SnapshotPath)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = store.Close()
	}()

	record, err := store.Latest(ctx)
	if err != nil {
		return nil, err
	}

	return record.Snapshot, nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	showCmd.Flags().BoolVar(&latest, "latest", false, "print the last stored snapshot")
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
}
