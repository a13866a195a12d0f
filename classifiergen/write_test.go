package classifiergen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pytrove/trove-classifiers/errors"
)

func TestWriteFileCreatesNestedOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifiers", "classifiers.go")

	require.NoError(t, WriteFile(path, []byte("package classifiers\n")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package classifiers\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifiers.go")

	require.NoError(t, WriteFile(path, []byte("old\n")))
	require.NoError(t, WriteFile(path, []byte("new\n")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))
}

func TestWriteFileFailureLeavesNoDebris(t *testing.T) {
	dir := t.TempDir()

	// A directory at the target path makes the final rename fail after the
	// temp file was already written.
	path := filepath.Join(dir, "classifiers.go")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := WriteFile(path, []byte("package classifiers\n"))
	require.Error(t, err)
	assert.True(t, errors.IsWriteFailed(err))

	// No temp files left behind, target untouched
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
}
