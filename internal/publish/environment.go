package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

const envManager = "uv"

// Provision creates the isolated environment when it does not exist yet
// and installs the build requirements into it on every run.
func (p *Publisher) Provision(ctx context.Context) error {
	venv := p.project.Path(p.project.VenvDir)

	_, err := os.Stat(venv)
	switch {
	case errors.Is(err, os.ErrNotExist):
		p.out.info("creating environment %s", p.project.VenvDir)

		if err := p.cfg.Commander.Run(ctx, envManager, "venv", venv); err != nil {
			return fmt.Errorf("creating environment: %w", err)
		}
	case err != nil:
		return fmt.Errorf("checking environment: %w", err)
	default:
		p.out.info("reusing environment %s", p.project.VenvDir)
	}

	args := append([]string{"pip", "install", "--python", p.project.VenvPython()}, p.project.BuildRequirements...)
	if err := p.cfg.Commander.Run(ctx, envManager, args...); err != nil {
		return fmt.Errorf("installing build requirements: %w", err)
	}

	p.out.success("installed %s", strings.Join(p.project.BuildRequirements, ", "))

	return nil
}

// InstallEditable installs the project into the environment in
// editable mode.
func (p *Publisher) InstallEditable(ctx context.Context) error {
	err := p.cfg.Commander.Run(ctx, envManager,
		"pip", "install", "--python", p.project.VenvPython(), "-e", p.project.Path(),
	)
	if err != nil {
		return fmt.Errorf("editable install: %w", err)
	}

	p.out.success("%s installed in editable mode", p.project.Package)

	return nil
}
