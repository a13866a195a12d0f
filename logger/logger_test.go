package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSafeBeforeInitialize(t *testing.T) {
	// Package init installs a nop logger; helpers must not panic.
	assert.NotPanics(t, func() {
		Info("message before initialize")
		Infow("structured", "key", "value")
		Errorw("error", "key", "value")
	})
}

func TestInitializeConsole(t *testing.T) {
	require.NoError(t, Initialize(false))
	assert.False(t, JSONOutput)
	require.NotNil(t, Logger)

	assert.NotPanics(t, func() {
		Infow("console logger ready", "classifiers", 865)
		Cleanup()
	})
}

func TestInitializeJSON(t *testing.T) {
	require.NoError(t, Initialize(true))
	assert.True(t, JSONOutput)
	require.NotNil(t, Logger)

	assert.NotPanics(t, func() {
		Warnw("json logger ready", "stage", "test")
		Cleanup()
	})
}
