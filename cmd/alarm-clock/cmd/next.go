package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/service/loader"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print when the next alarm fires.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := loader.Run(cmd.Context(), &loader.Options{Config: cfg})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		at, a, ok := res.Context.NextAlarm(time.Now())
		if !ok {
			_, err = fmt.Fprintln(out, "no alarm scheduled")

			return err
		}

		_, err = fmt.Fprintf(out, "%s (%s)\n", at.Format("Monday 2006-01-02 15:04:05"), a)

		return err
	},
}
