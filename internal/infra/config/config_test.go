package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Catalog: CatalogConfig{Path: "videos.txt", Format: "auto"},
		Log:     LogConfig{Level: "info", Output: "stderr"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			modify: func(c *Config) {},
		},
		{
			name:    "missing catalog path",
			modify:  func(c *Config) { c.Catalog.Path = "" },
			wantErr: true,
			errMsg:  "Path",
		},
		{
			name:    "unknown catalog format",
			modify:  func(c *Config) { c.Catalog.Format = "csv" },
			wantErr: true,
			errMsg:  "Format",
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
			errMsg:  "Level",
		},
		{
			name:   "metrics address",
			modify: func(c *Config) { c.Metrics.Addr = ":9090" },
		},
		{
			name:    "invalid metrics address",
			modify:  func(c *Config) { c.Metrics.Addr = "not an address" },
			wantErr: true,
			errMsg:  "Addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "videos.txt", cfg.Catalog.Path)
	assert.Equal(t, "auto", cfg.Catalog.Format)
	assert.Equal(t, "YT> ", cfg.Shell.Prompt)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vidbox.yaml")
	content := `catalog:
  path: data/videos.yaml
shell:
  prompt: "> "
metrics:
  addr: "127.0.0.1:9090"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/videos.yaml", cfg.Catalog.Path)
	assert.Equal(t, "auto", cfg.Catalog.Format)
	assert.Equal(t, "> ", cfg.Shell.Prompt)
	assert.Equal(t, "127.0.0.1:9090", cfg.Metrics.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vidbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  path: from-file.txt\n"), 0o644))

	t.Setenv("VIDBOX_CATALOG", "from-env.txt")
	t.Setenv("VIDBOX_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", cfg.Catalog.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("catalog: [unclosed"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("log:\n  level: loud\n"), 0o644))
	_, err = Load(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
