package runcmd

import (
	"github.com/spf13/cobra"

	"nacepublish.run/cmd/nace-publish/cmdutil"
)

func NewCmd(factory cmdutil.PublisherFactory) *cobra.Command {
	const (
		runUse   = "run"
		runShort = "run the complete publish pipeline"
		runLong  = "runs every step in order and stops at the first failure. " +
			"Both uploads ask for confirmation; declining either ends the run successfully."
	)

	return &cobra.Command{
		Use:   runUse,
		Short: runShort,
		Long:  runLong,
		Args:  cobra.NoArgs,
		RunE:  RunE(factory),
	}
}

// RunE runs the full pipeline. It is shared with the root command.
func RunE(factory cmdutil.PublisherFactory) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		pub, err := factory.Publisher()
		if err != nil {
			return err
		}

		return pub.Run(cmd.Context())
	}
}
