package wheel

import (
	"errors"
	"fmt"
)

var ErrMissingMember = errors.New("required file missing from wheel")

// Report is the outcome of inspecting a built wheel.
type Report struct {
	Wheel *Wheel
	// Matches maps each required basename to the entries containing it.
	Matches map[string][]Entry
	Missing []string
	// DataFile is the first entry matching the embedded data file, if any.
	DataFile *Entry
}

// DataFileKiB is the decompressed size of the embedded data file.
func (r *Report) DataFileKiB() float64 {
	if r.DataFile == nil {
		return 0
	}

	return float64(r.DataFile.UncompressedSize) / 1024
}

// Inspect opens the wheel at path and verifies that each required
// basename occurs in at least one entry name. The report is returned
// even when members are missing.
func Inspect(path string, required []string, dataFile string) (*Report, error) {
	w, err := Open(path)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Wheel:   w,
		Matches: make(map[string][]Entry, len(required)),
	}

	var errs []error
	for _, name := range required {
		found := w.Find(name)
		if len(found) == 0 {
			r.Missing = append(r.Missing, name)
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingMember, name))
			continue
		}
		r.Matches[name] = found
	}

	if dataFile != "" {
		if found := w.Find(dataFile); len(found) > 0 {
			r.DataFile = &found[0]
		}
	}

	return r, errors.Join(errs...)
}
