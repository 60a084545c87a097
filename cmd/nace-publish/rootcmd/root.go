package rootcmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"nacepublish.run/cmd/nace-publish/cmdutil"
	"nacepublish.run/cmd/nace-publish/runcmd"
	"nacepublish.run/internal/version"
)

type Params struct {
	dig.In

	Streams     IOStreams
	Args        []string
	Options     *Options
	Factory     cmdutil.PublisherFactory
	SubCommands []*cobra.Command `group:"rootSubCommands"`
}

type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

func ProvideRootCmd(params Params) *cobra.Command {
	const (
		rootUse   = "nace-publish"
		rootShort = "test, build and publish the naceconverter package"
		rootLong  = "runs the complete release of the naceconverter package: preflight checks, cleanup, " +
			"environment provisioning, smoke and comprehensive tests, build, validation, wheel inspection " +
			"and the interactive uploads to the staging and production index."
	)

	cmd := &cobra.Command{
		Use:           rootUse,
		Short:         rootShort,
		Long:          rootLong,
		Args:          cobra.NoArgs,
		Version:       version.Get().ApplicationVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runcmd.RunE(params.Factory),
	}
	cmd.SetIn(params.Streams.In)
	cmd.SetOut(params.Streams.Out)
	cmd.SetErr(params.Streams.ErrOut)
	cmd.SetArgs(params.Args)

	params.Options.AddFlags(cmd.PersistentFlags())

	for _, sub := range params.SubCommands {
		cmd.AddCommand(sub)
	}

	return cmd
}
