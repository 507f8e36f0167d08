package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:8000/api/", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "sqlite", c.Storage.Driver)
	assert.Equal(t, "gophsession.db", c.Storage.DSN)
	assert.False(t, c.Bootstrap.KeepTokenOnTransportError)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_NoSourcesUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_base_url":    "http://json.example/api/",
		"request_timeout": "30s",
		"storage":         map[string]any{"driver": "redis", "dsn": "redis://json:6379/0"},
	})
	t.Setenv("GOPHSESSION_STORAGE_DSN", "redis://env:6379/1")
	t.Setenv("GOPHSESSION_BOOTSTRAP_KEEP_TOKEN_ON_TRANSPORT_ERROR", "true")

	cfg, err := LoadConfig([]string{"-c", path, "-a", "http://flag.example/"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag.example/", cfg.APIBaseURL, "flags beat json")
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout, "json beats defaults")
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "redis://env:6379/1", cfg.Storage.DSN, "env beats json")
	assert.True(t, cfg.Bootstrap.KeepTokenOnTransportError)
}

func TestParseJson_PartialFileKeepsOtherFields(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"log_level": -4})
	cfg := defaults()

	require.NoError(t, parseJson(cfg, []string{"-config", path}))

	assert.Equal(t, -4, cfg.LogLevel)
	assert.Equal(t, "http://127.0.0.1:8000/api/", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseJson_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

	require.Error(t, parseJson(defaults(), []string{"-c", bad}))
	require.Error(t, parseJson(defaults(), []string{"-c", filepath.Join(dir, "missing.json")}))
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("GOPHSESSION_API_BASE_URL", "http://env.example/")
	t.Setenv("GOPHSESSION_REQUEST_TIMEOUT", "5s")
	t.Setenv("GOPHSESSION_LOG_LEVEL", "4")
	t.Setenv("GOPHSESSION_STORAGE_DRIVER", "memory")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://env.example/", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 4, cfg.LogLevel)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "gophsession.db", cfg.Storage.DSN, "unset variables leave fields alone")
}

func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("GOPHSESSION_REQUEST_TIMEOUT", "soon")
	require.Error(t, parseEnv(defaults()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "memory without dsn", mutate: func(c *Config) { c.Storage = StorageConfig{Driver: "memory"} }},
		{name: "empty url", mutate: func(c *Config) { c.APIBaseURL = "" }, wantErr: true},
		{name: "not a url", mutate: func(c *Config) { c.APIBaseURL = "not a url" }, wantErr: true},
		{name: "tiny timeout", mutate: func(c *Config) { c.RequestTimeout = time.Millisecond }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "etcd" }, wantErr: true},
		{name: "sqlite without dsn", mutate: func(c *Config) { c.Storage.DSN = "" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
		})
	}
}
