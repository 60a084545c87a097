// Package probe runs small python programs against the lookup library and
// judges their JSON output with CEL predicates.
package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Executor runs the interpreter and returns its stdout.
type Executor interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Probe is one python program plus the predicate its output must satisfy.
type Probe struct {
	Name string
	// Description is shown to the operator next to the result.
	Description string
	Script      string
	Predicate   string
}

// Params are available to probe scripts as template data.
type Params struct {
	ProjectDir string
	Module     string
	Key        string
	PlainKey   string
	Keyword    string
}

// Result is the decoded output of a probe run.
type Result map[string]any

var ErrMalformedOutput = errors.New("probe produced malformed output")

// Render executes the probe's script template.
func (p Probe) Render(params Params) (string, error) {
	tmpl, err := template.New(p.Name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(p.Script)
	if err != nil {
		return "", fmt.Errorf("parsing probe %s: %w", p.Name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("rendering probe %s: %w", p.Name, err)
	}

	return buf.String(), nil
}

// Run renders the probe, executes it with python and decodes the last
// non-empty output line as JSON. Libraries printing on import are tolerated.
func (p Probe) Run(ctx context.Context, exec Executor, python string, params Params) (Result, error) {
	script, err := p.Render(params)
	if err != nil {
		return nil, err
	}

	out, err := exec.Output(ctx, python, "-c", script)
	if err != nil {
		return nil, fmt.Errorf("running probe %s: %w", p.Name, err)
	}

	return decode(out)
}

func decode(out []byte) (Result, error) {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return nil, fmt.Errorf("%w: no output", ErrMalformedOutput)
	}

	var res Result
	if err := json.Unmarshal([]byte(last), &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}

	return res, nil
}

// Check runs the probe and evaluates its predicate against the result.
func (p Probe) Check(ctx context.Context, exec Executor, python string, params Params) (bool, Result, error) {
	res, err := p.Run(ctx, exec, python, params)
	if err != nil {
		return false, nil, err
	}

	ok, err := Evaluate(p.Predicate, res)
	if err != nil {
		return false, res, fmt.Errorf("evaluating probe %s: %w", p.Name, err)
	}

	return ok, res, nil
}
