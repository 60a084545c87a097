package publish

import (
	"context"
	"fmt"
	"os"

	"github.com/gobwas/glob"
)

// Clean removes build output and caches from the project root.
// Absent entries are not an error, so running it twice is a no-op.
func (p *Publisher) Clean(_ context.Context) error {
	patterns := make([]glob.Glob, 0, len(p.project.CleanPatterns))
	for _, pattern := range p.project.CleanPatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return fmt.Errorf("compiling clean pattern %q: %w", pattern, err)
		}
		patterns = append(patterns, g)
	}

	entries, err := os.ReadDir(p.project.Path())
	if err != nil {
		return fmt.Errorf("reading project directory: %w", err)
	}

	var removed int
	for _, e := range entries {
		if !matchesAny(patterns, e.Name()) {
			continue
		}

		if err := os.RemoveAll(p.project.Path(e.Name())); err != nil {
			return fmt.Errorf("removing %s: %w", e.Name(), err)
		}

		p.cfg.Log.V(1).Info("removed", "path", e.Name())
		removed++
	}

	if removed == 0 {
		p.out.success("nothing to clean")
		return nil
	}

	p.out.success("removed %d build artifact(s)", removed)

	return nil
}

func matchesAny(patterns []glob.Glob, name string) bool {
	for _, g := range patterns {
		if g.Match(name) {
			return true
		}
	}

	return false
}
