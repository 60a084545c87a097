package shell

import (
	"github.com/go-logr/logr"
)

type WithLog struct{ Log logr.Logger }

func (w WithLog) ConfigureRunner(c *Config) {
	c.Log = w.Log
}

// WithDir sets the working directory commands run in.
type WithDir string

func (w WithDir) ConfigureRunner(c *Config) {
	c.Dir = string(w)
}

// WithEnvironment adds variables on top of the inherited environment.
type WithEnvironment map[string]string

func (w WithEnvironment) ConfigureRunner(c *Config) {
	if c.Env == nil {
		c.Env = map[string]string{}
	}
	for k, v := range w {
		c.Env[k] = v
	}
}
