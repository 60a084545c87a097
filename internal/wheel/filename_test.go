package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilename(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		Filename    string
		Expected    Filename
		ExpectError bool
	}{
		"pure python": {
			Filename: "naceconverter-1.0.0-py3-none-any.whl",
			Expected: Filename{
				Distribution: "naceconverter", Version: "1.0.0",
				PythonTag: "py3", ABITag: "none", PlatformTag: "any",
			},
		},
		"build tag": {
			Filename: "naceconverter-1.0.0-1-py3-none-any.whl",
			Expected: Filename{
				Distribution: "naceconverter", Version: "1.0.0", BuildTag: "1",
				PythonTag: "py3", ABITag: "none", PlatformTag: "any",
			},
		},
		"no suffix":       {Filename: "naceconverter-1.0.0.tar.gz", ExpectError: true},
		"too few parts":   {Filename: "naceconverter-1.0.0.whl", ExpectError: true},
		"empty component": {Filename: "naceconverter--py3-none-any.whl", ExpectError: true},
	} {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := ParseFilename(tc.Filename)
			if tc.ExpectError {
				require.ErrorIs(t, err, ErrInvalidFilename)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.Expected, f)
		})
	}
}

func TestParseSdistFilename(t *testing.T) {
	t.Parallel()

	s, err := ParseSdistFilename("naceconverter-1.0.0.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, Sdist{Distribution: "naceconverter", Version: "1.0.0"}, s)

	s, err = ParseSdistFilename("nace-converter-2.1.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, Sdist{Distribution: "nace-converter", Version: "2.1"}, s)

	_, err = ParseSdistFilename("naceconverter.tar.gz")
	require.ErrorIs(t, err, ErrInvalidFilename)

	_, err = ParseSdistFilename("naceconverter-1.0.0.zip")
	require.ErrorIs(t, err, ErrInvalidFilename)
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nace-converter", NormalizeName("NACE_Converter"))
	assert.Equal(t, "nace-converter", NormalizeName("nace.-_converter"))
	assert.Equal(t, "naceconverter", NormalizeName("naceconverter"))
}
