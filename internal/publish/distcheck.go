package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/gobwas/glob"

	"nacepublish.run/internal/wheel"
)

var distGlob = glob.MustCompile("*.{whl,tar.gz}")

// Artifacts are the distribution files of one build.
type Artifacts struct {
	Wheel string
	Sdist string
	// All holds every distribution file, sorted.
	All []string
}

// artifacts lists the dist directory and requires exactly one wheel
// and one source distribution.
func (p *Publisher) artifacts() (*Artifacts, error) {
	dir := p.project.Path(p.project.DistDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", p.project.DistDir, err)
	}

	var a Artifacts
	var wheels, sdists []string

	for _, e := range entries {
		if e.IsDir() || !distGlob.Match(e.Name()) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		a.All = append(a.All, path)

		if strings.HasSuffix(e.Name(), ".whl") {
			wheels = append(wheels, path)
		} else {
			sdists = append(sdists, path)
		}
	}
	sort.Strings(a.All)

	if len(wheels) != 1 || len(sdists) != 1 {
		return nil, fmt.Errorf("%w: found %d wheel(s) and %d source distribution(s) in %s",
			ErrUnexpectedArtifacts, len(wheels), len(sdists), p.project.DistDir)
	}

	a.Wheel, a.Sdist = wheels[0], sdists[0]

	return &a, nil
}

// CheckDist validates the built distributions: exactly one wheel and
// one source distribution of the same name and version, accepted by
// the metadata validator.
func (p *Publisher) CheckDist(ctx context.Context) error {
	a, err := p.artifacts()
	if err != nil {
		return err
	}

	if err := p.checkNames(a); err != nil {
		return err
	}

	args := append([]string{"-m", "twine", "check"}, a.All...)
	if err := p.cfg.Commander.Run(ctx, p.project.VenvPython(), args...); err != nil {
		return fmt.Errorf("checking distributions: %w", err)
	}

	p.out.success("%d distribution(s) passed validation", len(a.All))

	return nil
}

func (p *Publisher) checkNames(a *Artifacts) error {
	whl, err := wheel.ParseFilename(filepath.Base(a.Wheel))
	if err != nil {
		return err
	}

	sdist, err := wheel.ParseSdistFilename(filepath.Base(a.Sdist))
	if err != nil {
		return err
	}

	var errs []error

	if wheel.NormalizeName(whl.Distribution) != wheel.NormalizeName(sdist.Distribution) {
		errs = append(errs, fmt.Errorf("%w: wheel is %s, source distribution is %s",
			ErrUnexpectedArtifacts, whl.Distribution, sdist.Distribution))
	}

	if !sameVersion(whl.Version, sdist.Version) {
		errs = append(errs, fmt.Errorf("%w: wheel %s, source distribution %s",
			ErrVersionMismatch, whl.Version, sdist.Version))
	}

	if p.project.Version != "" && !sameVersion(whl.Version, p.project.Version) {
		errs = append(errs, fmt.Errorf("%w: built %s, project declares %s",
			ErrVersionMismatch, whl.Version, p.project.Version))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	p.out.success("%s %s", whl.Distribution, whl.Version)

	return nil
}

// sameVersion compares semantically where both sides parse and
// literally otherwise.
func sameVersion(a, b string) bool {
	va, erra := semver.NewVersion(a)
	vb, errb := semver.NewVersion(b)
	if erra != nil || errb != nil {
		return a == b
	}

	return va.Equal(vb)
}
