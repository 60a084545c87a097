package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disiqueira/gotree"

	"nacepublish.run/internal/cli"
	"nacepublish.run/internal/wheel"
)

// Inspect lists the built distributions and verifies that the wheel
// carries every required member. The embedded data file size is
// reported but never judged.
func (p *Publisher) Inspect(_ context.Context) error {
	a, err := p.artifacts()
	if err != nil {
		return err
	}

	if err := p.printArtifacts(a); err != nil {
		return err
	}

	return p.inspectWheel(a.Wheel)
}

// WheelInspection returns a step inspecting a wheel outside the dist
// directory.
func (p *Publisher) WheelInspection(wheelPath string) Step {
	return Step{
		Name:     "inspect",
		Title:    "Inspecting " + filepath.Base(wheelPath),
		Category: CategoryIntegrity,
		Run: func(context.Context) error {
			return p.inspectWheel(wheelPath)
		},
	}
}

func (p *Publisher) inspectWheel(wheelPath string) error {
	report, err := wheel.Inspect(wheelPath, p.project.RequiredMembers, p.project.DataFile)
	if report == nil {
		return err
	}

	for _, name := range p.project.RequiredMembers {
		if entries, ok := report.Matches[name]; ok {
			p.out.success("%s found (%s)", name, entries[0].Name)
			continue
		}
		p.out.failure("%s missing from %s", name, filepath.Base(wheelPath))
	}
	if err != nil {
		return err
	}

	p.out.tree(wheelTree(report.Wheel))

	switch md, merr := report.Wheel.Metadata(); {
	case errors.Is(merr, wheel.ErrNoMetadata):
		p.out.warning("%s has no METADATA", filepath.Base(wheelPath))
	case merr != nil:
		return merr
	default:
		p.out.info("metadata: %s %s", md.Name, md.Version)
	}

	if report.DataFile != nil {
		p.out.info("%s size: %.1f KB", p.project.DataFile, report.DataFileKiB())
	} else {
		p.out.warning("%s size unknown", p.project.DataFile)
	}

	return nil
}

func (p *Publisher) printArtifacts(a *Artifacts) error {
	tbl := cli.NewDefaultTable(cli.WithHeaders{"Name", "Size KB"})

	for _, f := range a.All {
		info, err := os.Stat(f)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", f, err)
		}

		tbl.AddRow(
			cli.Field{Name: "Name", Value: filepath.Base(f)},
			cli.Field{Name: "Size KB", Value: fmt.Sprintf("%.1f", float64(info.Size())/1024)},
		)
	}

	p.out.table(tbl)

	return nil
}

// wheelTree renders the archive entries grouped by directory.
func wheelTree(w *wheel.Wheel) gotree.Tree {
	root := gotree.New(filepath.Base(w.Path))
	dirs := map[string]gotree.Tree{"": root}

	var node func(dir string) gotree.Tree
	node = func(dir string) gotree.Tree {
		if t, ok := dirs[dir]; ok {
			return t
		}

		parent, base := path.Split(dir)
		t := node(strings.TrimSuffix(parent, "/")).Add(base + "/")
		dirs[dir] = t

		return t
	}

	for _, e := range w.Entries {
		dir, base := path.Split(e.Name)
		node(strings.TrimSuffix(dir, "/")).Add(fmt.Sprintf("%s (%d B)", base, e.UncompressedSize))
	}

	return root
}
