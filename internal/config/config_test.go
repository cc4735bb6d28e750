package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.ServerURL)
	assert.Equal(t, "127.0.0.1:8000", cfg.HTTPAddr)
}

func TestLoad_FromFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server_url: https://api.deepl.com\nhttp_addr: 127.0.0.1:9000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.deepl.com", cfg.ServerURL)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	resetViper(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_APIKeyFromEnv(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("DEEPL_API_KEY", "test-key:fx")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "test-key:fx", cfg.APIKey)
}

func TestValidate_BadServerURL(t *testing.T) {
	cfg := &Config{ServerURL: "not a url", HTTPAddr: "127.0.0.1:8000"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyHTTPAddr(t *testing.T) {
	cfg := &Config{HTTPAddr: "  "}
	assert.Error(t, cfg.Validate())
}
