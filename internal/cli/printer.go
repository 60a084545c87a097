package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/disiqueira/gotree"
	"github.com/pterm/pterm"
)

func init() {
	pterm.DisableColor()
}

// EnableColor toggles pterm styling. pterm keeps this as global state,
// so it is set once by the command wiring.
func EnableColor(enabled bool) {
	if enabled {
		pterm.EnableColor()
		return
	}

	pterm.DisableColor()
}

// NewPrinter takes a variadic slice of PrinterOptions
// and returns a configured Printer instance.
func NewPrinter(opts ...PrinterOption) *Printer {
	var cfg PrinterConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Printer{
		cfg: cfg,
	}
}

type Printer struct {
	cfg PrinterConfig

	// answers is created on first use and kept so that buffered
	// input survives between consecutive prompts.
	answers *bufio.Reader
}

func (p *Printer) PrintfOut(s string, args ...any) error {
	if _, err := fmt.Fprintf(p.cfg.Out, s, args...); err != nil {
		return fmt.Errorf("printing to out stream: %w", err)
	}

	return nil
}

func (p *Printer) PrintfErr(s string, args ...any) error {
	if _, err := fmt.Fprintf(p.cfg.Err, s, args...); err != nil {
		return fmt.Errorf("printing to err stream: %w", err)
	}

	return nil
}

// Section prints a step header.
func (p *Printer) Section(title string) error {
	return p.PrintfOut("%s", pterm.DefaultSection.Sprint(title))
}

func (p *Printer) Success(format string, args ...any) error {
	return p.PrintfOut("%s\n", pterm.Success.Sprintf(format, args...))
}

func (p *Printer) Info(format string, args ...any) error {
	return p.PrintfOut("%s\n", pterm.Info.Sprintf(format, args...))
}

func (p *Printer) Warning(format string, args ...any) error {
	return p.PrintfOut("%s\n", pterm.Warning.Sprintf(format, args...))
}

// Failure goes to the err stream.
func (p *Printer) Failure(format string, args ...any) error {
	return p.PrintfErr("%s\n", pterm.Error.Sprintf(format, args...))
}

func (p *Printer) PrintTable(t Table) error {
	data := [][]string{}

	headers := t.Headers()

	if len(headers) > 0 {
		data = append(data, headers)
	}

	for _, r := range t.Rows() {
		vals := make([]string, 0, len(r))

		for _, f := range r {
			vals = append(vals, fmt.Sprint(f.Value))
		}

		data = append(data, vals)
	}

	table := pterm.DefaultTable.WithData(data).WithSeparator("  ")

	if len(headers) > 0 {
		table = table.WithHasHeader()
	}

	output, err := table.Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if err := p.PrintfOut("%s\n", output); err != nil {
		return fmt.Errorf("printing table: %w", err)
	}

	return nil
}

func (p *Printer) PrintTree(t gotree.Tree) error {
	if err := p.PrintfOut("%s", t.Print()); err != nil {
		return fmt.Errorf("printing tree: %w", err)
	}

	return nil
}

// Confirm asks a yes/no question and blocks until the operator answers.
// An empty answer or end of input counts as "no".
func (p *Printer) Confirm(question string) (bool, error) {
	if p.answers == nil {
		p.answers = bufio.NewReader(p.cfg.In)
	}

	for {
		if err := p.PrintfOut("%s [y/N]: ", strings.TrimSpace(question)); err != nil {
			return false, err
		}

		line, err := p.answers.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading answer: %w", err)
		}

		answer := strings.ToLower(strings.TrimSpace(line))

		switch answer {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			if errors.Is(err, io.EOF) && line == "" {
				// keep the transcript readable when input is closed
				_ = p.PrintfOut("\n")
			}
			return false, nil
		}

		if errors.Is(err, io.EOF) {
			return false, nil
		}

		if err := p.PrintfOut("please answer y or n\n"); err != nil {
			return false, err
		}
	}
}

type PrinterConfig struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (c *PrinterConfig) Option(opts ...PrinterOption) {
	for _, opt := range opts {
		opt.ConfigurePrinter(c)
	}
}

func (c *PrinterConfig) Default() {
	if c.In == nil {
		c.In = os.Stdin
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Err == nil {
		c.Err = os.Stderr
	}
}

type PrinterOption interface {
	ConfigurePrinter(*PrinterConfig)
}
