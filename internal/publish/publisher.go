package publish

import (
	"context"
	"time"

	"github.com/disiqueira/gotree"
	"github.com/go-logr/logr"

	"nacepublish.run/internal/cli"
	"nacepublish.run/internal/config"
	"nacepublish.run/internal/metrics"
	"nacepublish.run/internal/shell"
)

// Commander runs the external tools every step delegates to.
type Commander interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	LookPath(name string) (string, error)
}

// Printer is the operator facing output and prompt surface.
type Printer interface {
	Section(title string) error
	Success(format string, args ...any) error
	Info(format string, args ...any) error
	Warning(format string, args ...any) error
	Failure(format string, args ...any) error
	PrintTable(t cli.Table) error
	PrintTree(t gotree.Tree) error
	Confirm(question string) (bool, error)
}

// Recorder receives step and run metrics.
type Recorder interface {
	StepObserver
	ObserveRun(finished time.Time, err error)
	WriteTextfile(path string) error
}

func NewPublisher(project *config.Config, opts ...Option) *Publisher {
	var cfg Config

	cfg.Option(opts...)
	cfg.Default(project)

	return &Publisher{
		cfg:     cfg,
		project: project,
		out:     &reporter{printer: cfg.Printer, log: cfg.Log},
	}
}

// Publisher executes the publish steps for one project.
type Publisher struct {
	cfg     Config
	project *config.Config
	out     *reporter
}

type Config struct {
	Log       logr.Logger
	Commander Commander
	Printer   Printer
	Recorder  Recorder
	// MetricsFile is written after Run when set.
	MetricsFile string
	Now         func() time.Time
}

func (c *Config) Option(opts ...Option) {
	for _, opt := range opts {
		opt.ConfigurePublisher(c)
	}
}

func (c *Config) Default(project *config.Config) {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
	if c.Commander == nil {
		c.Commander = shell.New(shell.WithDir(project.ProjectDir), shell.WithLog{Log: c.Log})
	}
	if c.Printer == nil {
		c.Printer = cli.NewPrinter()
	}
	if c.Recorder == nil {
		c.Recorder = metrics.NewRecorder()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

type Option interface {
	ConfigurePublisher(*Config)
}

// Steps returns the full publish sequence in execution order.
func (p *Publisher) Steps() []Step {
	return []Step{
		{Name: "preflight", Title: "Preflight checks", Category: CategoryPrecondition, Run: p.Preflight},
		{Name: "clean", Title: "Cleaning previous builds", Category: CategoryPrecondition, Run: p.Clean},
		{Name: "provision", Title: "Provisioning environment", Category: CategoryPrecondition, Run: p.Provision},
		{Name: "smoke", Title: "Smoke test", Category: CategoryCorrectness, Run: p.Smoke},
		{Name: "install", Title: "Installing package in editable mode", Category: CategoryPackaging, Run: p.InstallEditable},
		{Name: "test", Title: "Running tests", Category: CategoryCorrectness, Run: p.Test},
		{Name: "build", Title: "Building distributions", Category: CategoryPackaging, Run: p.Build},
		{Name: "check", Title: "Validating distributions", Category: CategoryPackaging, Run: p.CheckDist},
		{Name: "inspect", Title: "Inspecting wheel", Category: CategoryIntegrity, Run: p.Inspect},
		{Name: "upload", Title: "Upload", Category: CategoryUpload, Run: p.Upload},
	}
}

// Run executes all steps. Declining an upload is a successful run.
func (p *Publisher) Run(ctx context.Context) error {
	if err := p.RunSteps(ctx, p.Steps()...); err != nil {
		return err
	}

	p.out.success("publish run of %s finished", p.project.Package)

	return nil
}

// RunSteps executes the given steps as one pipeline and records the run.
func (p *Publisher) RunSteps(ctx context.Context, steps ...Step) error {
	log := p.cfg.Log.WithValues("project", p.project.ProjectDir)

	pl := &Pipeline{
		steps:    steps,
		log:      log,
		out:      p.out,
		observer: p.cfg.Recorder,
		now:      p.cfg.Now,
	}

	err := pl.Run(ctx)
	p.cfg.Recorder.ObserveRun(p.cfg.Now(), err)

	if p.cfg.MetricsFile != "" {
		if werr := p.cfg.Recorder.WriteTextfile(p.cfg.MetricsFile); werr != nil {
			log.Error(werr, "writing metrics")
		}
	}

	return err
}

// StepsNamed selects steps of the full sequence by name, keeping order.
func (p *Publisher) StepsNamed(names ...string) []Step {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}

	var res []Step
	for _, s := range p.Steps() {
		if _, ok := want[s.Name]; ok {
			res = append(res, s)
		}
	}

	return res
}

// reporter logs and drops print errors.
type reporter struct {
	printer Printer
	log     logr.Logger
}

func (r *reporter) check(err error) {
	if err != nil {
		r.log.V(1).Info("printing failed", "error", err.Error())
	}
}

func (r *reporter) section(title string) {
	r.check(r.printer.Section(title))
}

func (r *reporter) success(f string, args ...any) {
	r.check(r.printer.Success(f, args...))
}

func (r *reporter) info(f string, args ...any) {
	r.check(r.printer.Info(f, args...))
}

func (r *reporter) warning(f string, args ...any) {
	r.check(r.printer.Warning(f, args...))
}

func (r *reporter) failure(f string, args ...any) {
	r.check(r.printer.Failure(f, args...))
}

func (r *reporter) table(t cli.Table) {
	r.check(r.printer.PrintTable(t))
}

func (r *reporter) tree(t gotree.Tree) {
	r.check(r.printer.PrintTree(t))
}
