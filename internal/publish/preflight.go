package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"nacepublish.run/internal/config"
)

// Preflight verifies that every required tool is on PATH and every
// required input file exists. Tools are checked first; nothing else is
// looked at when one is missing.
func (p *Publisher) Preflight(_ context.Context) error {
	if err := p.checkTools(); err != nil {
		return err
	}

	return p.checkFiles()
}

func (p *Publisher) checkTools() error {
	var errs []error

	for _, tool := range p.project.Tools {
		if err := p.CheckTool(tool); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// CheckTool fails with install instructions when tool is not on PATH.
func (p *Publisher) CheckTool(tool config.Tool) error {
	path, err := p.cfg.Commander.LookPath(tool.Name)
	if err != nil {
		p.out.failure("%s is not installed. Install it with:\n  %s", tool.Name, tool.Install)
		return fmt.Errorf("%w: %s", ErrToolNotFound, tool.Name)
	}

	p.out.success("%s found at %s", tool.Name, path)

	return nil
}

// CheckFile fails when name is absent from the project directory.
func (p *Publisher) CheckFile(name string) error {
	ok, err := p.exists(name)
	if err != nil {
		return err
	}
	if !ok {
		p.out.failure("%s not found in %s", name, p.project.ProjectDir)
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}

	p.out.success("%s found", name)

	return nil
}

func (p *Publisher) checkFiles() error {
	var errs []error

	for _, name := range p.project.RequiredFiles {
		if err := p.CheckFile(name); err != nil {
			if !errors.Is(err, ErrFileNotFound) {
				return err
			}
			errs = append(errs, err)
		}
	}

	if len(p.project.DescriptorFiles) > 0 {
		found := ""
		for _, name := range p.project.DescriptorFiles {
			ok, err := p.exists(name)
			if err != nil {
				return err
			}
			if ok {
				found = name
				break
			}
		}

		if found == "" {
			names := strings.Join(p.project.DescriptorFiles, " or ")
			p.out.failure("no packaging descriptor (%s) in %s", names, p.project.ProjectDir)
			errs = append(errs, fmt.Errorf("%w: %s", ErrFileNotFound, names))
		} else {
			p.out.success("%s found", found)
		}
	}

	return errors.Join(errs...)
}

func (p *Publisher) exists(name string) (bool, error) {
	_, err := os.Stat(p.project.Path(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking %s: %w", name, err)
	}
}
