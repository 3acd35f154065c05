package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default clock document.",
	Long: `Writes the default clock document to the configured path.
An existing document is kept next to it with the ` + config.BackupSuffix + ` suffix.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.WriteDefault(cfg.ConfigPath); err != nil {
			return err
		}

		_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.ConfigPath)

		return err
	},
}
