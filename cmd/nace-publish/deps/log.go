package deps

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nacepublish.run/cmd/nace-publish/rootcmd"
)

func ProvideLogFactory(streams rootcmd.IOStreams, opts *rootcmd.Options) LogFactory {
	return &ZapLogFactory{
		out:   streams.ErrOut,
		opts:  opts,
		runID: uuid.NewString(),
	}
}

type LogFactory interface {
	Logger() logr.Logger
}

// ZapLogFactory logs errors only unless verbosity was raised on the
// command line. Every logger carries the id of the current run.
type ZapLogFactory struct {
	out   io.Writer
	opts  *rootcmd.Options
	runID string
}

func (f *ZapLogFactory) Logger() logr.Logger {
	level := zapcore.ErrorLevel
	if f.opts.Verbosity > 0 {
		// logr V(n) maps to zap level -n.
		level = zapcore.Level(-f.opts.Verbosity)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(f.out),
		level,
	)

	return zapr.NewLogger(zap.New(core)).WithValues("run", f.runID)
}
