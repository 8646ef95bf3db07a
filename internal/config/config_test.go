package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/tmp/audiocond", cfg.TempDir)
	assert.Equal(t, "cuda", cfg.Device)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEVICE", "cpu")
	t.Setenv("TEMP_DIR", "/scratch")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "cpu", cfg.Device)
	assert.Equal(t, "/scratch", cfg.TempDir)
}
