package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	assert.Equal(t, "python3", v.GetString("python.interpreter"))
	assert.Equal(t, filepath.Join("classifiers", "classifiers.go"), v.GetString("output"))
	assert.Equal(t, "", v.GetString("snapshot"))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "snapshot = \"export.json\"\n\n[python]\ninterpreter = \"python3.12\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "python3.12", cfg.Python.Interpreter)
	assert.Equal(t, "export.json", cfg.Snapshot)
	// Unset keys keep their defaults
	assert.Equal(t, filepath.Join("classifiers", "classifiers.go"), cfg.Output)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), ConfigFileName))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("CLASSIFIERGEN_OUTPUT", "generated/classifiers.go")
	t.Setenv("CLASSIFIERGEN_PYTHON_INTERPRETER", "python3.13")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "generated/classifiers.go", cfg.Output)
	assert.Equal(t, "python3.13", cfg.Python.Interpreter)
}

func TestLoadCaches(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.Same(t, first, second)
}
