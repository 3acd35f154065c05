package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/service/loader"
	"github.com/oshokin/alarm-clock/internal/service/sound"
)

var errNoSoundFile = errors.New("alarm sound file is not set")

var soundCmd = &cobra.Command{
	Use:   "sound",
	Short: "Check that the configured alarm sound can be decoded.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := loader.Run(cmd.Context(), &loader.Options{Config: cfg})
		if err != nil {
			return err
		}

		path := res.Context.Settings().SoundFileName
		if path == settings.Unset {
			return errNoSoundFile
		}

		info, err := sound.Probe(path)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d Hz, %d channel(s), %s\n",
			info.Path, info.Format, info.SampleRate, info.Channels, info.Duration)

		return err
	},
}
