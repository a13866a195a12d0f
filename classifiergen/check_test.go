package classifiergen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUpToDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifiers.go")
	data := []byte("package classifiers\n\nconst A Classifier = \"A\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	result, err := Check(path, data)
	require.NoError(t, err)

	assert.True(t, result.UpToDate)
	assert.False(t, result.Missing)
	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
}

func TestCheckMissingArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifiers.go")

	result, err := Check(path, []byte("package classifiers\n"))
	require.NoError(t, err)

	assert.False(t, result.UpToDate)
	assert.True(t, result.Missing)
}

func TestCheckStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifiers.go")
	onDisk := "package classifiers\n" +
		"const OLD_ONLY Classifier = \"Old :: Only\"\n" +
		"const SHARED Classifier = \"Shared\"\n"
	require.NoError(t, os.WriteFile(path, []byte(onDisk), 0o644))

	fresh := "package classifiers\n" +
		"const NEW_ONLY Classifier = \"New :: Only\"\n" +
		"const SHARED Classifier = \"Shared\"\n"

	result, err := Check(path, []byte(fresh))
	require.NoError(t, err)

	assert.False(t, result.UpToDate)
	assert.False(t, result.Missing)
	assert.Equal(t, []string{`const NEW_ONLY Classifier = "New :: Only"`}, result.Added)
	assert.Equal(t, []string{`const OLD_ONLY Classifier = "Old :: Only"`}, result.Removed)
}
