package wheel

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

var ErrNoMetadata = errors.New("wheel has no METADATA file")

// Wheel is the table of contents of a wheel archive.
type Wheel struct {
	Path     string
	Filename Filename
	Entries  []Entry
}

type Entry struct {
	Name             string
	CompressedSize   uint64
	UncompressedSize uint64
}

// Open reads the central directory of the wheel at p.
func Open(p string) (*Wheel, error) {
	fn, err := ParseFilename(filepath.Base(p))
	if err != nil {
		return nil, err
	}

	r, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("opening wheel %s: %w", p, err)
	}
	defer r.Close()

	entries := make([]Entry, 0, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, Entry{
			Name:             f.Name,
			CompressedSize:   f.CompressedSize64,
			UncompressedSize: f.UncompressedSize64,
		})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &Wheel{Path: p, Filename: fn, Entries: entries}, nil
}

// Find returns all entries whose name contains substr.
func (w *Wheel) Find(substr string) []Entry {
	var res []Entry

	for _, e := range w.Entries {
		if strings.Contains(e.Name, substr) {
			res = append(res, e)
		}
	}

	return res
}

// Metadata is the subset of core metadata fields reported to the operator.
type Metadata struct {
	Name    string
	Version string
	Summary string
	Header  mail.Header
}

// Metadata parses the RFC 822 style METADATA file of the wheel's
// .dist-info directory.
func (w *Wheel) Metadata() (*Metadata, error) {
	r, err := zip.OpenReader(w.Path)
	if err != nil {
		return nil, fmt.Errorf("opening wheel %s: %w", w.Path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		dir, base := path.Split(f.Name)
		if base != "METADATA" || !strings.HasSuffix(strings.TrimSuffix(dir, "/"), ".dist-info") {
			continue
		}

		return readMetadata(f)
	}

	return nil, ErrNoMetadata
}

func readMetadata(f *zip.File) (*Metadata, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer rc.Close()

	msg, err := mail.ReadMessage(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.Name, err)
	}
	// the long description body is not needed
	_, _ = io.Copy(io.Discard, msg.Body)

	return &Metadata{
		Name:    msg.Header.Get("Name"),
		Version: msg.Header.Get("Version"),
		Summary: msg.Header.Get("Summary"),
		Header:  msg.Header,
	}, nil
}
