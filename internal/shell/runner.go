package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"
	"pkg.package-operator.run/cardboard/sh"
)

// New returns a Runner executing commands with the given options.
func New(opts ...Option) *Runner {
	var cfg Config

	cfg.Option(opts...)
	cfg.Default()

	shr := sh.New()
	if cfg.Dir != "" {
		shr = shr.New(sh.WithWorkDir(cfg.Dir))
	}
	if len(cfg.Env) > 0 {
		shr = shr.New(sh.WithEnvironment(cfg.Env))
	}

	return &Runner{cfg: cfg, shr: shr}
}

// Runner executes external tools in a fixed working directory.
type Runner struct {
	cfg Config
	shr *sh.Runner
}

type Config struct {
	Log logr.Logger
	Dir string
	Env map[string]string
}

func (c *Config) Option(opts ...Option) {
	for _, opt := range opts {
		opt.ConfigureRunner(c)
	}
}

func (c *Config) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
}

type Option interface {
	ConfigureRunner(*Config)
}

// Run executes the command, streaming its output.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	if err := r.start(ctx, name, args); err != nil {
		return err
	}

	return r.wrap(r.shr.Run(name, args...), name, args)
}

// Output executes the command and returns its stdout.
func (r *Runner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := r.start(ctx, name, args); err != nil {
		return nil, err
	}

	out, err := r.shr.New(sh.WithLogger{}).Output(name, args...)
	if err != nil {
		return []byte(out), r.wrap(err, name, args)
	}

	return []byte(out), nil
}

// LookPath resolves name on PATH.
func (r *Runner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return path, nil
}

// start refuses to launch anything once ctx is done.
func (r *Runner) start(ctx context.Context, name string, args []string) error {
	line := commandLine(name, args)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("running %s: %w", line, err)
	}

	r.cfg.Log.V(1).Info("exec", "cmd", line, "dir", r.cfg.Dir)

	return nil
}

func (r *Runner) wrap(err error, name string, args []string) error {
	if err == nil {
		return nil
	}

	line := commandLine(name, args)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Cmd: line, Code: exitErr.ExitCode(), Err: err}
	}

	return fmt.Errorf("running %s: %w", line, err)
}

var ErrNotFound = errors.New("executable not found on PATH")

// ExitError is returned when a command ran but exited non-zero.
type ExitError struct {
	Cmd  string
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Cmd, e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func commandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, p := range append([]string{name}, args...) {
		if strings.ContainsAny(p, " \t\n\"'") {
			p = fmt.Sprintf("%q", p)
		}
		parts = append(parts, p)
	}

	return strings.Join(parts, " ")
}
