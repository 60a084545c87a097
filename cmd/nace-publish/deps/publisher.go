package deps

import (
	"io"
	"os"

	"golang.org/x/term"

	"nacepublish.run/cmd/nace-publish/cmdutil"
	"nacepublish.run/cmd/nace-publish/rootcmd"
	"nacepublish.run/internal/cli"
	"nacepublish.run/internal/config"
	"nacepublish.run/internal/publish"
	"nacepublish.run/internal/shell"
)

func ProvidePublisherFactory(
	streams rootcmd.IOStreams, opts *rootcmd.Options, f LogFactory,
) cmdutil.PublisherFactory {
	return &defaultPublisherFactory{
		streams:    streams,
		opts:       opts,
		logFactory: f,
	}
}

type defaultPublisherFactory struct {
	streams    rootcmd.IOStreams
	opts       *rootcmd.Options
	logFactory LogFactory
}

func (f *defaultPublisherFactory) Publisher() (cmdutil.Publisher, error) {
	project, err := config.Load(f.opts.ConfigPath, f.opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	cli.EnableColor(isTerminal(f.streams.Out))

	log := f.logFactory.Logger()

	return publish.NewPublisher(project,
		publish.WithLog{Log: log},
		publish.WithCommander{Commander: shell.New(
			shell.WithDir(project.ProjectDir),
			shell.WithLog{Log: log},
			shell.WithEnvironment{"PYTHONUNBUFFERED": "1"},
		)},
		publish.WithPrinter{Printer: cli.NewPrinter(
			cli.WithIn{In: f.streams.In},
			cli.WithOut{Out: f.streams.Out},
			cli.WithErr{Err: f.streams.ErrOut},
		)},
		publish.WithMetricsFile(f.opts.MetricsFile),
	), nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}
