package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type pyProject struct {
	Project struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"project"`
}

// loadPyProject fills Package and Version from pyproject.toml when the
// file exists and the values were not configured explicitly.
func (c *Config) loadPyProject() error {
	path := filepath.Join(projectDirOrDot(c.ProjectDir), "pyproject.toml")

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var p pyProject
	if err := toml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if c.Package == "" {
		c.Package = p.Project.Name
	}
	if c.Version == "" {
		c.Version = p.Project.Version
	}

	return nil
}
