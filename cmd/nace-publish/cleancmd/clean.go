package cleancmd

import (
	"github.com/spf13/cobra"

	"nacepublish.run/cmd/nace-publish/cmdutil"
)

func NewCmd(factory cmdutil.PublisherFactory) *cobra.Command {
	const (
		cleanUse   = "clean"
		cleanShort = "remove build output and caches from the project directory"
	)

	cmd := &cobra.Command{
		Use:   cleanUse,
		Short: cleanShort,
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		pub, err := factory.Publisher()
		if err != nil {
			return err
		}

		return pub.RunSteps(cmd.Context(), pub.StepsNamed("clean")...)
	}

	return cmd
}
