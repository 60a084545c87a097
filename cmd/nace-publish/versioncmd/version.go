package versioncmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"nacepublish.run/internal/version"
)

func NewCmd() *cobra.Command {
	const (
		versionUse   = "version"
		versionShort = "print the nace-publish version"
	)

	cmd := &cobra.Command{
		Use:   versionUse,
		Short: versionShort,
		Args:  cobra.NoArgs,
	}

	var opts options

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		info := version.Get()

		if _, err := fmt.Fprintln(out, "nace-publish", info.ApplicationVersion); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, "go", info.GoVersion); err != nil {
			return err
		}

		if !opts.Embedded {
			return nil
		}

		fmt.Fprintln(out, "path", info.Path)
		for _, dep := range info.Deps {
			fmt.Fprintln(out, "dep", dep.Path, dep.Version)
		}
		for _, setting := range info.Settings {
			fmt.Fprintln(out, "build", setting.Key, setting.Value)
		}

		return nil
	}

	return cmd
}

type options struct {
	Embedded bool
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.BoolVar(
		&o.Embedded,
		"embedded",
		o.Embedded,
		"Also print module dependencies and build settings",
	)
}
