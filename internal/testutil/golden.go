// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// LintFunc lints a single source file and returns the rendered diagnostics.
// dir is the test case directory and name the input file's base name; its
// extension selects the language.
type LintFunc func(t *testing.T, dir, name string, src []byte) string

// RunGolden runs a single golden file test in the given directory.
// It reads the one input.* file, applies lintFn, and compares against
// expected.txt.
func RunGolden(t *testing.T, dir string, lintFn LintFunc) {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, "input.*"))
	require.NoError(t, err)
	require.Len(t, matches, 1, "want exactly one input file in %s", dir)

	inputPath := matches[0]
	expectedPath := filepath.Join(dir, "expected.txt")

	src, err := os.ReadFile(inputPath)
	require.NoError(t, err, "failed to read %s", inputPath)

	actual := lintFn(t, dir, filepath.Base(inputPath), src)

	if *Update {
		require.NoError(t, os.WriteFile(expectedPath, []byte(actual), 0o644))
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expected, err := os.ReadFile(expectedPath)
	require.NoError(t, err, "failed to read %s", expectedPath)

	assert.Equal(t, normalize(string(expected)), normalize(actual), "output mismatch for %s", dir)
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, lintFn LintFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	require.NoError(t, err, "failed to read testdata dir %s", testdataDir)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			RunGolden(t, filepath.Join(testdataDir, entry.Name()), lintFn)
		})
	}
}

// normalize drops carriage returns so golden files checked out with CRLF
// line endings still compare equal.
func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
