package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	assert.Equal(t, ":8080", cfg.ListenAddress)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadSize)
	assert.Equal(t, 10000, cfg.MaxRows)
	assert.Equal(t, "ftirdash_session", cfg.SessionCookie)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 800, cfg.Plot.Width)
	assert.Equal(t, 500, cfg.Plot.Height)
	assert.InDelta(t, 3.0, cfg.Plot.DotWidth, 0)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"empty listen address", func(c *Config) { c.ListenAddress = "" }, ErrInvalidListenAddress},
		{"zero upload size", func(c *Config) { c.MaxUploadSize = 0 }, ErrInvalidMaxUploadSize},
		{"negative max rows", func(c *Config) { c.MaxRows = -1 }, ErrInvalidMaxRows},
		{"empty cookie", func(c *Config) { c.SessionCookie = "" }, ErrInvalidSessionCookie},
		{"negative session ttl", func(c *Config) { c.SessionTTL = -time.Second }, ErrInvalidSessionTTL},
		{"missing profile name", func(c *Config) { c.Profile.Name = "" }, ErrMissingProfileName},
		{"bad email", func(c *Config) { c.Profile.Email = "not-an-email" }, ErrInvalidEmail},
		{"tiny plot", func(c *Config) { c.Plot.Width = 10 }, ErrInvalidPlotSize},
		{"huge dots", func(c *Config) { c.Plot.DotWidth = 50 }, ErrInvalidPlotSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	t.Run("zero max rows disables the limit", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.MaxRows = 0
		assert.NoError(t, cfg.Validate())
	})

	t.Run("valid email", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Profile.Email = "researcher@example.org"
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("overlays defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ftirdash.yaml")
		content := `listen_address: "127.0.0.1:9000"
profile:
  name: N Manzini
  field: MSc Nanoscience
  institution: University of Johannesburg
session_ttl: 45m
plot:
  width: 1024
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddress)
		assert.Equal(t, "N Manzini", cfg.Profile.Name)
		assert.Equal(t, "MSc Nanoscience", cfg.Profile.Field)
		assert.Equal(t, 1024, cfg.Plot.Width)
		assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
		assert.Equal(t, DefaultPlotHeight, cfg.Plot.Height)
		assert.Equal(t, DefaultMaxRows, cfg.MaxRows)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("plot: [unclosed"), 0o600))
		_, err := LoadConfigFile(path)
		require.Error(t, err)
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path that exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o600))
		assert.Equal(t, path, FindConfigFile(path))
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("explicit missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("explicit file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o600))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
	})
}

func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AppName, filepath.Base(XDGConfigDir()))
}
