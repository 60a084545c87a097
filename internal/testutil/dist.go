package testutil

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// NaceWheelFiles is the content of a well formed naceconverter wheel.
func NaceWheelFiles() map[string]string {
	return map[string]string{
		"NACEConverter.py": "def get_description(code):\n    return None\n",
		"__init__.py":      "from NACEConverter import *\n",
		"nacecodes.csv":    "code,description\n01.11,Growing of cereals\n",
		"naceconverter-1.0.0.dist-info/METADATA": "Metadata-Version: 2.1\n" +
			"Name: naceconverter\n" +
			"Version: 1.0.0\n" +
			"Summary: A Python package for converting NACE codes to descriptions and searching\n" +
			"\n" +
			"# naceconverter\n",
		"naceconverter-1.0.0.dist-info/RECORD": "",
	}
}

// WriteWheel writes a zip archive named name into dir and returns its path.
func WriteWheel(t *testing.T, dir, name string, files map[string]string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	zw := zip.NewWriter(f)
	for _, n := range sortedKeys(files) {
		w, err := zw.Create(n)
		require.NoError(t, err)
		_, err = w.Write([]byte(files[n]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return p
}

// WriteSdist writes a gzipped tarball named name into dir and returns its path.
func WriteSdist(t *testing.T, dir, name string, files map[string]string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	for _, n := range sortedKeys(files) {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: n, Mode: 0o644, Size: int64(len(files[n])),
		}))
		_, err := tw.Write([]byte(files[n]))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	return p
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
