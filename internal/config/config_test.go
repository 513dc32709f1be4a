package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/teamgen/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teamgen.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, roster.DefaultInput(), cfg.Input())
	assert.True(t, cfg.SplashEnabled())
	assert.True(t, cfg.ColorEnabled())
	assert.Equal(t, 800*time.Millisecond, cfg.SplashStep())
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
defaults {
  team_count       = 3
  players_per_team = 4
  players          = ["Alice", "Bob", "Carol"]
}

ui {
  log_level      = "debug"
  log_file       = "/tmp/teamgen-test.log"
  splash         = false
  splash_step_ms = 100
  color          = false
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Defaults.TeamCount)
	assert.Equal(t, 4, cfg.Defaults.PlayersPerTeam)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, cfg.Defaults.Players)
	assert.Equal(t, "/tmp/teamgen-test.log", cfg.UI.LogFile)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.False(t, cfg.SplashEnabled())
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, 100*time.Millisecond, cfg.SplashStep())

	in := cfg.Input()
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, in.Names)
	assert.Equal(t, roster.TeamConfig{TeamCount: 3, PlayersPerTeam: 4}, in.Config)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
ui {
  log_level = "info"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.UI.LogLevel)
	assert.Equal(t, "teamgen.log", cfg.UI.LogFile)
	assert.Equal(t, 2, cfg.Defaults.TeamCount)
	assert.Equal(t, 5, cfg.Defaults.PlayersPerTeam)
	assert.True(t, cfg.SplashEnabled())
}

func TestLoadInvalidFile(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		_, err := Load(writeConfig(t, `defaults {`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})

	t.Run("unknown attribute", func(t *testing.T) {
		_, err := Load(writeConfig(t, `ui { theme = "neon" }`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"team count too low", func(c *Config) { c.Defaults.TeamCount = 1 }, "team_count"},
		{"players per team too low", func(c *Config) { c.Defaults.PlayersPerTeam = 0 }, "players_per_team"},
		{"splash step not positive", func(c *Config) { c.UI.SplashStepMS = 0 }, "splash_step_ms"},
		{"unknown log level", func(c *Config) { c.UI.LogLevel = "verbose" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
