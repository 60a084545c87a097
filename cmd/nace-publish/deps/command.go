package deps

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"nacepublish.run/cmd/nace-publish/cleancmd"
	"nacepublish.run/cmd/nace-publish/cmdutil"
	"nacepublish.run/cmd/nace-publish/inspectcmd"
	"nacepublish.run/cmd/nace-publish/preflightcmd"
	"nacepublish.run/cmd/nace-publish/rootcmd"
	"nacepublish.run/cmd/nace-publish/runcmd"
	"nacepublish.run/cmd/nace-publish/versioncmd"
)

func ProvideIOStreams() rootcmd.IOStreams {
	return rootcmd.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

func ProvideArgs() []string {
	return os.Args[1:]
}

// ProvideOptions returns the single instance bound to the root
// command's persistent flags.
func ProvideOptions() *rootcmd.Options {
	return &rootcmd.Options{}
}

type RootSubCommandResult struct {
	dig.Out

	SubCommand *cobra.Command `group:"rootSubCommands"`
}

func ProvideRunCmd(factory cmdutil.PublisherFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: runcmd.NewCmd(factory),
	}
}

func ProvideCleanCmd(factory cmdutil.PublisherFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: cleancmd.NewCmd(factory),
	}
}

func ProvidePreflightCmd(factory cmdutil.PublisherFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: preflightcmd.NewCmd(factory),
	}
}

func ProvideInspectCmd(factory cmdutil.PublisherFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: inspectcmd.NewCmd(factory),
	}
}

func ProvideVersionCmd() RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: versioncmd.NewCmd(),
	}
}
