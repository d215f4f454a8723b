package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "comptoir-backend", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "comptoir.db", cfg.Store.Path)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Contains(t, cfg.Assets.Shell, "index.html")
	assert.True(t, cfg.Scanner.CameraAvailable)
	assert.Equal(t, 30*time.Second, cfg.Print.Timeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("COMPTOIR_APP_PORT", "9090")
	t.Setenv("COMPTOIR_STORE_PATH", "/tmp/test.db")
	t.Setenv("COMPTOIR_SCANNER_CAMERA_AVAILABLE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "/tmp/test.db", cfg.Store.Path)
	assert.False(t, cfg.Scanner.CameraAvailable)
}

func TestLoadRejectsShortPrintTimeout(t *testing.T) {
	t.Setenv("COMPTOIR_PRINT_TIMEOUT", "200ms")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "print.timeout")
}

func TestLoadRejectsWildcardCORSInProduction(t *testing.T) {
	t.Setenv("COMPTOIR_APP_ENV", "production")
	t.Setenv("COMPTOIR_HTTP_CORS_ALLOW_ORIGINS", "*")

	_, err := Load()
	assert.Error(t, err)
}
