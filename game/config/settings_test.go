package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvEnginePath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMapsDir, "")

	s := FromEnv()
	assert.Equal(t, "", s.EnginePath)
	assert.Equal(t, DefaultLogLevel, s.LogLevel)
	assert.Equal(t, DefaultMapsDir, s.MapsDir)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvEnginePath, "/opt/labyrinth/engine")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvMapsDir, "levels")

	s := FromEnv()
	assert.Equal(t, "/opt/labyrinth/engine", s.EnginePath)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "levels", s.MapsDir)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvEnginePath, "")
	require.NoError(t, os.Unsetenv(EnvEnginePath))
	t.Setenv(EnvLogLevel, "error")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvEnginePath + "=/tmp/engine-from-dotenv\n" + EnvLogLevel + "=debug\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	require.NoError(t, LoadEnv(envFile))

	s := FromEnv()
	assert.Equal(t, "/tmp/engine-from-dotenv", s.EnginePath)
	assert.Equal(t, "error", s.LogLevel, "existing variables must win over .env")
}

func TestLoadEnv_MissingFileIgnored(t *testing.T) {
	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("info", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	log.WithField("player", 3).Info("placed")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "placed")
	assert.Contains(t, buf.String(), "player=3")
	assert.NotContains(t, buf.String(), "time=")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger("chatty", &bytes.Buffer{})
	require.Error(t, err)
}
