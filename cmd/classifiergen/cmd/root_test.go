package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pytrove/trove-classifiers/errors"
)

const testExport = `{
  "version": "2024.1.1",
  "classifiers": [
    "License :: OSI Approved :: MIT License",
    "Topic :: Software Development"
  ]
}`

func writeExport(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(testExport), 0o644))
	return path
}

func TestGenerateFromSnapshot(t *testing.T) {
	dir := t.TempDir()
	snapshot := writeExport(t, dir)
	output := filepath.Join(dir, "classifiers.go")

	RootCmd.SetArgs([]string{"--snapshot", snapshot, "--output", output})
	require.NoError(t, RootCmd.Execute())

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), `const PypaVersion = "2024.1.1"`)
	assert.Contains(t, string(content),
		`const LICENSE_OSI_APPROVED_MIT_LICENSE Classifier = "License :: OSI Approved :: MIT License"`)
}

func TestSourceFailureLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "classifiers.go")
	require.NoError(t, os.WriteFile(output, []byte("previous artifact\n"), 0o644))

	RootCmd.SetArgs([]string{
		"--snapshot", filepath.Join(dir, "missing.json"),
		"--output", output,
	})
	err := RootCmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))

	content, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	assert.Equal(t, "previous artifact\n", string(content))
}

func TestCheckUpToDateAfterGenerate(t *testing.T) {
	dir := t.TempDir()
	snapshot := writeExport(t, dir)
	output := filepath.Join(dir, "classifiers.go")

	RootCmd.SetArgs([]string{"--snapshot", snapshot, "--output", output})
	require.NoError(t, RootCmd.Execute())

	RootCmd.SetArgs([]string{"check", "--snapshot", snapshot, "--output", output})
	assert.NoError(t, RootCmd.Execute())
}

func TestCheckDetectsStaleSnapshot(t *testing.T) {
	dir := t.TempDir()
	snapshot := writeExport(t, dir)
	output := filepath.Join(dir, "classifiers.go")
	require.NoError(t, os.WriteFile(output, []byte("hand-edited\n"), 0o644))

	RootCmd.SetArgs([]string{"check", "--snapshot", snapshot, "--output", output})
	err := RootCmd.Execute()

	require.Error(t, err)
	assert.True(t, IsOutOfDate(err))
}

func TestCheckMissingSnapshotIsStale(t *testing.T) {
	dir := t.TempDir()
	snapshot := writeExport(t, dir)
	output := filepath.Join(dir, "classifiers.go")

	RootCmd.SetArgs([]string{"check", "--snapshot", snapshot, "--output", output})
	err := RootCmd.Execute()

	require.Error(t, err)
	assert.True(t, IsOutOfDate(err))
}
