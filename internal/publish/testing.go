package publish

import (
	"context"
	"errors"
	"fmt"

	"nacepublish.run/internal/probe"
	"nacepublish.run/internal/shell"
)

// CheckResult is the outcome of one inline check.
type CheckResult struct {
	Name   string
	Passed bool
	Detail string
}

func (p *Publisher) probeParams() probe.Params {
	return probe.Params{
		ProjectDir: p.project.Path(),
		Module:     p.project.Module,
		Key:        p.project.SmokeKey,
		PlainKey:   p.project.PlainKey,
		Keyword:    p.project.SearchKeyword,
	}
}

// Smoke imports the library from the source tree and looks up the
// smoke key. A missing description or any raised error fails the step.
func (p *Publisher) Smoke(ctx context.Context) error {
	res := p.runCheck(ctx, probe.Description)
	if !res.Passed {
		p.out.failure("get_description(%q): %s", p.project.SmokeKey, res.Detail)
		return fmt.Errorf("%w: %s", ErrSmokeFailed, res.Detail)
	}

	p.out.success("get_description(%q) = %s", p.project.SmokeKey, res.Detail)

	return nil
}

// Test runs the comprehensive test script when the project ships one
// and the inline battery otherwise. The script is authoritative: when
// it exists the battery does not run.
func (p *Publisher) Test(ctx context.Context) error {
	ok, err := p.exists(p.project.TestScript)
	if err != nil {
		return err
	}
	if ok {
		return p.runTestScript(ctx)
	}

	p.out.info("%s not found, running inline checks", p.project.TestScript)

	return p.runBattery(ctx)
}

func (p *Publisher) runTestScript(ctx context.Context) error {
	p.out.info("running %s", p.project.TestScript)

	err := p.cfg.Commander.Run(ctx, p.project.VenvPython(), p.project.TestScript)

	var exitErr *shell.ExitError
	switch {
	case errors.As(err, &exitErr):
		return fmt.Errorf("%w: %s exited with code %d", ErrChecksFailed, p.project.TestScript, exitErr.Code)
	case ctx.Err() != nil:
		return ctx.Err()
	case err != nil:
		return fmt.Errorf("%w: %s: %w", ErrChecksFailed, p.project.TestScript, err)
	}

	p.out.success("%s passed", p.project.TestScript)

	return nil
}

func (p *Publisher) runBattery(ctx context.Context) error {
	var failed int

	results := make([]CheckResult, 0, len(probe.Battery))
	for _, pr := range probe.Battery {
		res := p.runCheck(ctx, pr)
		results = append(results, res)

		if res.Passed {
			p.out.success("%s: %s", pr.Description, res.Detail)
			continue
		}

		failed++
		p.out.failure("%s: %s", pr.Description, res.Detail)
	}

	summary := fmt.Sprintf("%d passed, %d failed", len(results)-failed, failed)
	if failed > 0 {
		p.out.failure("%s", summary)
		return fmt.Errorf("%w: %s", ErrChecksFailed, summary)
	}

	p.out.success("%s", summary)

	return nil
}

// runCheck never returns an error: a probe that cannot run is a failed check.
func (p *Publisher) runCheck(ctx context.Context, pr probe.Probe) CheckResult {
	ok, res, err := pr.Check(ctx, p.cfg.Commander, p.project.VenvPython(), p.probeParams())
	if err != nil {
		return CheckResult{Name: pr.Name, Detail: err.Error()}
	}

	return CheckResult{Name: pr.Name, Passed: ok, Detail: describe(res)}
}

func describe(res probe.Result) string {
	if msg, _ := res["error"].(string); msg != "" {
		return msg
	}

	if _, ok := res["dotted"]; ok && res["dotted"] != nil {
		return fmt.Sprintf("%v == %v", res["dotted"], res["plain"])
	}

	if v, ok := res["value"].([]any); ok {
		return fmt.Sprintf("%d result(s)", len(v))
	}

	return fmt.Sprintf("%v", res["value"])
}
