package rootcmd

import (
	"github.com/spf13/pflag"

	"nacepublish.run/internal/config"
)

// Options are the persistent flags shared by every command.
type Options struct {
	ConfigPath  string
	ProjectDir  string
	MetricsFile string
	Verbosity   int
}

func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(
		&o.ConfigPath,
		"config",
		o.ConfigPath,
		"Path to the configuration file. Defaults to "+config.DefaultFileName+" in the project directory if present.",
	)
	flags.StringVar(
		&o.ProjectDir,
		"project-dir",
		o.ProjectDir,
		"Directory containing the package sources. Defaults to the working directory.",
	)
	flags.StringVar(
		&o.MetricsFile,
		"metrics-file",
		o.MetricsFile,
		"Write step metrics in the Prometheus text format to this file after the run.",
	)
	flags.CountVarP(
		&o.Verbosity,
		"verbosity",
		"v",
		"Increase log verbosity. May be repeated.",
	)
}
