package publish

import (
	"context"
	"fmt"
)

// Build produces a wheel and a source distribution in the dist directory.
func (p *Publisher) Build(ctx context.Context) error {
	err := p.cfg.Commander.Run(ctx, p.project.VenvPython(),
		"-m", "build", "--outdir", p.project.Path(p.project.DistDir), p.project.Path(),
	)
	if err != nil {
		return fmt.Errorf("building distributions: %w", err)
	}

	p.out.success("distributions written to %s", p.project.DistDir)

	return nil
}
