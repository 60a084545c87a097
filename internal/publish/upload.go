package publish

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"nacepublish.run/internal/wheel"
)

var instructionsTmpl = template.Must(template.New("instructions").
	Funcs(sprig.TxtFuncMap()).
	Parse(`Install from {{ .Repository }} with:
  pip install --index-url {{ .IndexURL }} --extra-index-url https://pypi.org/simple/ {{ .Package }}=={{ .Version }}
Then verify with:
  python -c {{ printf "import %s; print(%s.get_description('%s'))" .Module .Module .Key | squote }}`))

var manualUploadTmpl = template.Must(template.New("manual").
	Funcs(sprig.TxtFuncMap()).
	Parse(`Upload manually later with:
  twine upload{{ with .Repository }} --repository {{ . }}{{ end }} {{ .Dist }}/*`))

type instructions struct {
	Repository string
	IndexURL   string
	Package    string
	Version    string
	Module     string
	Key        string
	Dist       string
}

// Upload runs the staging gate and then the production gate. Declining
// staging moves on to production; after a staging upload the operator
// may stop before production. Every decline ends the run successfully.
func (p *Publisher) Upload(ctx context.Context) error {
	a, err := p.artifacts()
	if err != nil {
		return err
	}

	whl, err := wheel.ParseFilename(filepath.Base(a.Wheel))
	if err != nil {
		return err
	}

	data := instructions{
		Repository: p.project.StagingRepository,
		IndexURL:   p.project.StagingIndexURL,
		Package:    p.project.Package,
		Version:    whl.Version,
		Module:     p.project.Module,
		Key:        p.project.SmokeKey,
		Dist:       p.project.DistDir,
	}

	stop, err := p.uploadStaging(ctx, a, data)
	if err != nil || stop {
		return err
	}

	return p.uploadProduction(ctx, a, data)
}

// uploadStaging reports stop when the operator ends the run after
// a staging upload.
func (p *Publisher) uploadStaging(ctx context.Context, a *Artifacts, data instructions) (stop bool, err error) {
	ok, err := p.cfg.Printer.Confirm(fmt.Sprintf("Upload %s %s to %s?", data.Package, data.Version, data.Repository))
	if err != nil {
		return false, err
	}
	if !ok {
		p.out.info("%s", render(manualUploadTmpl, data))
		return false, nil
	}

	if err := p.upload(ctx, p.project.StagingRepository, a); err != nil {
		return false, err
	}
	p.out.success("uploaded to %s", p.project.StagingRepository)
	p.out.info("%s", render(instructionsTmpl, data))

	ok, err = p.cfg.Printer.Confirm(fmt.Sprintf("Continue to %s?", p.project.ProductionRepository))
	if err != nil {
		return false, err
	}
	if !ok {
		p.out.info("stopping after %s upload", p.project.StagingRepository)
		return true, nil
	}

	return false, nil
}

func (p *Publisher) uploadProduction(ctx context.Context, a *Artifacts, data instructions) error {
	ok, err := p.cfg.Printer.Confirm(
		fmt.Sprintf("Upload %s %s to %s?", data.Package, data.Version, p.project.ProductionRepository))
	if err != nil {
		return err
	}
	if !ok {
		data.Repository = ""
		p.out.info("%s", render(manualUploadTmpl, data))
		return nil
	}

	if err := p.upload(ctx, p.project.ProductionRepository, a); err != nil {
		return err
	}
	p.out.success("%s %s published to %s", data.Package, data.Version, p.project.ProductionRepository)

	return nil
}

func (p *Publisher) upload(ctx context.Context, repository string, a *Artifacts) error {
	args := append([]string{"-m", "twine", "upload", "--repository", repository}, a.All...)
	if err := p.cfg.Commander.Run(ctx, p.project.VenvPython(), args...); err != nil {
		return fmt.Errorf("%w to %s: %w", ErrUploadFailed, repository, err)
	}

	return nil
}

func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err.Error()
	}

	return strings.TrimSpace(buf.String())
}
