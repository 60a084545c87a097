package preflightcmd

import (
	"github.com/spf13/cobra"

	"nacepublish.run/cmd/nace-publish/cmdutil"
)

func NewCmd(factory cmdutil.PublisherFactory) *cobra.Command {
	const (
		preflightUse   = "preflight"
		preflightShort = "check that required tools and input files are present"
		preflightLong  = "looks up uv and python3 on PATH and verifies the data file and a packaging " +
			"descriptor exist, without changing anything on disk."
	)

	cmd := &cobra.Command{
		Use:   preflightUse,
		Short: preflightShort,
		Long:  preflightLong,
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		pub, err := factory.Publisher()
		if err != nil {
			return err
		}

		return pub.RunSteps(cmd.Context(), pub.StepsNamed("preflight")...)
	}

	return cmd
}
