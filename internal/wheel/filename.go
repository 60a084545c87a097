package wheel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var nameSeparators = regexp.MustCompile(`[-_.]+`)

var ErrInvalidFilename = errors.New("invalid distribution filename")

// Filename is a parsed wheel filename:
// {distribution}-{version}(-{build tag})?-{python tag}-{abi tag}-{platform tag}.whl
type Filename struct {
	Distribution string
	Version      string
	BuildTag     string
	PythonTag    string
	ABITag       string
	PlatformTag  string
}

func ParseFilename(name string) (Filename, error) {
	base, ok := strings.CutSuffix(name, ".whl")
	if !ok {
		return Filename{}, fmt.Errorf("%w: %q lacks .whl suffix", ErrInvalidFilename, name)
	}

	parts := strings.Split(base, "-")

	var f Filename
	switch len(parts) {
	case 5:
		f = Filename{
			Distribution: parts[0], Version: parts[1],
			PythonTag: parts[2], ABITag: parts[3], PlatformTag: parts[4],
		}
	case 6:
		f = Filename{
			Distribution: parts[0], Version: parts[1], BuildTag: parts[2],
			PythonTag: parts[3], ABITag: parts[4], PlatformTag: parts[5],
		}
	default:
		return Filename{}, fmt.Errorf("%w: %q has %d dash separated parts", ErrInvalidFilename, name, len(parts))
	}

	for _, p := range parts {
		if p == "" {
			return Filename{}, fmt.Errorf("%w: %q has an empty component", ErrInvalidFilename, name)
		}
	}

	return f, nil
}

// Sdist is a parsed source distribution filename: {distribution}-{version}.tar.gz
type Sdist struct {
	Distribution string
	Version      string
}

func ParseSdistFilename(name string) (Sdist, error) {
	base, ok := strings.CutSuffix(name, ".tar.gz")
	if !ok {
		return Sdist{}, fmt.Errorf("%w: %q lacks .tar.gz suffix", ErrInvalidFilename, name)
	}

	// distribution names may contain dashes in older sdists, the
	// version never does.
	i := strings.LastIndex(base, "-")
	if i <= 0 || i == len(base)-1 {
		return Sdist{}, fmt.Errorf("%w: %q has no version", ErrInvalidFilename, name)
	}

	return Sdist{Distribution: base[:i], Version: base[i+1:]}, nil
}

// NormalizeName applies the PEP 503 name normalisation used to compare
// distribution names across artifact kinds.
func NormalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(name), "-")
}
