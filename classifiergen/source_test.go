package classifiergen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pytrove/trove-classifiers/errors"
)

func TestFileSourceFixture(t *testing.T) {
	snap, err := FileSource{Path: "testdata/trove_classifiers.json"}.Fetch()
	require.NoError(t, err)

	assert.Equal(t, "2024.10.16", snap.Version)
	assert.NotEmpty(t, snap.Classifiers)
	assert.Contains(t, snap.Classifiers, "License :: OSI Approved :: MIT License")
	assert.Contains(t, snap.Classifiers, "Typing :: Typed")
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}.Fetch()

	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestFileSourceUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	_, err := FileSource{Path: path}.Fetch()

	require.Error(t, err)
	assert.True(t, errors.IsMalformedSource(err))
}

func TestFileSourceDuplicateClassifier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.json")
	payload := `{"version":"2024.1.1","classifiers":["Typing :: Typed","Typing :: Typed"]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	_, err := FileSource{Path: path}.Fetch()

	require.Error(t, err)
	assert.True(t, errors.IsMalformedSource(err))
}

func TestPythonSourceInterpreterNotFound(t *testing.T) {
	_, err := PythonSource{Interpreter: "definitely-not-a-python-interpreter"}.Fetch()

	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

// fakeInterpreter writes an executable shell script standing in for python3.
func fakeInterpreter(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "python3")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestPythonSourceFetch(t *testing.T) {
	interpreter := fakeInterpreter(t,
		`echo '{"version":"2024.1.1","classifiers":["License :: OSI Approved :: MIT License","Topic :: Software Development"]}'`)

	snap, err := PythonSource{Interpreter: interpreter}.Fetch()
	require.NoError(t, err)

	assert.Equal(t, "2024.1.1", snap.Version)
	assert.Len(t, snap.Classifiers, 2)
}

func TestPythonSourceModuleNotInstalled(t *testing.T) {
	interpreter := fakeInterpreter(t,
		`echo "ModuleNotFoundError: No module named 'trove_classifiers'" >&2; exit 1`)

	_, err := PythonSource{Interpreter: interpreter}.Fetch()

	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
	assert.Contains(t, err.Error(), "not importable")
}

func TestPythonSourceScriptFailure(t *testing.T) {
	interpreter := fakeInterpreter(t, `echo "boom" >&2; exit 3`)

	_, err := PythonSource{Interpreter: interpreter}.Fetch()

	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestPythonSourceUndecodableOutput(t *testing.T) {
	interpreter := fakeInterpreter(t, `echo "hello world"`)

	_, err := PythonSource{Interpreter: interpreter}.Fetch()

	require.Error(t, err)
	assert.True(t, errors.IsMalformedSource(err))
}
