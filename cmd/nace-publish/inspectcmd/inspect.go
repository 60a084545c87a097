package inspectcmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"nacepublish.run/cmd/nace-publish/cmdutil"
)

var ErrInvalidArgs = errors.New("arguments invalid")

func NewCmd(factory cmdutil.PublisherFactory) *cobra.Command {
	const (
		inspectUse   = "inspect [wheel_path]"
		inspectShort = "verify the contents of a built wheel"
		inspectLong  = "checks that the wheel contains the lookup module, the package initializer and " +
			"the embedded data file. Without an argument the wheel in the dist directory is inspected."
	)

	cmd := &cobra.Command{
		Use:   inspectUse,
		Short: inspectShort,
		Long:  inspectLong,
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "" {
			return fmt.Errorf("%w: wheel path empty", ErrInvalidArgs)
		}

		pub, err := factory.Publisher()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return pub.RunSteps(cmd.Context(), pub.StepsNamed("inspect")...)
		}

		return pub.RunSteps(cmd.Context(), pub.WheelInspection(args[0]))
	}

	return cmd
}
