// Package config loads teamgen settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/teamgen/internal/roster"
)

// DefaultFile is the config file read when no path is given.
const DefaultFile = "teamgen.hcl"

// Config represents the complete teamgen configuration
type Config struct {
	Defaults DefaultsSettings
	UI       UISettings
}

// DefaultsSettings pre-fills the setup form
type DefaultsSettings struct {
	TeamCount      int      `hcl:"team_count,optional"`
	PlayersPerTeam int      `hcl:"players_per_team,optional"`
	Players        []string `hcl:"players,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel     string `hcl:"log_level,optional"`
	LogFile      string `hcl:"log_file,optional"`
	Splash       *bool  `hcl:"splash,optional"`
	SplashStepMS int    `hcl:"splash_step_ms,optional"`
	Color        *bool  `hcl:"color,optional"`
}

// file mirrors Config with optional blocks.
type file struct {
	Defaults *DefaultsSettings `hcl:"defaults,block"`
	UI       *UISettings       `hcl:"ui,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Defaults: DefaultsSettings{
			TeamCount:      roster.DefaultInput().Config.TeamCount,
			PlayersPerTeam: roster.DefaultInput().Config.PlayersPerTeam,
		},
		UI: UISettings{
			LogLevel:     "warn",
			LogFile:      "teamgen.log",
			Splash:       boolPtr(true),
			SplashStepMS: 800,
			Color:        boolPtr(true),
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; values absent from the file keep their defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()

	if d := raw.Defaults; d != nil {
		if d.TeamCount != 0 {
			config.Defaults.TeamCount = d.TeamCount
		}
		if d.PlayersPerTeam != 0 {
			config.Defaults.PlayersPerTeam = d.PlayersPerTeam
		}
		if len(d.Players) > 0 {
			config.Defaults.Players = d.Players
		}
	}

	if ui := raw.UI; ui != nil {
		if ui.LogLevel != "" {
			config.UI.LogLevel = ui.LogLevel
		}
		if ui.LogFile != "" {
			config.UI.LogFile = ui.LogFile
		}
		if ui.Splash != nil {
			config.UI.Splash = ui.Splash
		}
		if ui.SplashStepMS != 0 {
			config.UI.SplashStepMS = ui.SplashStepMS
		}
		if ui.Color != nil {
			config.UI.Color = ui.Color
		}
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Defaults.TeamCount < roster.MinTeamCount {
		return fmt.Errorf("team_count must be at least %d", roster.MinTeamCount)
	}

	if c.Defaults.PlayersPerTeam < roster.MinPlayersPerTeam {
		return fmt.Errorf("players_per_team must be at least %d", roster.MinPlayersPerTeam)
	}

	if c.UI.SplashStepMS <= 0 {
		return fmt.Errorf("splash_step_ms must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// SplashEnabled reports whether the loading splash should be shown.
func (c *Config) SplashEnabled() bool {
	return c.UI.Splash == nil || *c.UI.Splash
}

// ColorEnabled reports whether output should be colored.
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}

// SplashStep returns the delay between loading splash steps.
func (c *Config) SplashStep() time.Duration {
	return time.Duration(c.UI.SplashStepMS) * time.Millisecond
}

// Input returns the setup form pre-fill described by the defaults block. With
// no players configured the form starts with one empty slot.
func (c *Config) Input() roster.Input {
	names := append([]string(nil), c.Defaults.Players...)
	if len(names) == 0 {
		names = []string{""}
	}
	return roster.Input{
		Names:  names,
		Config: roster.NewTeamConfig(c.Defaults.TeamCount, c.Defaults.PlayersPerTeam),
	}
}

func boolPtr(b bool) *bool {
	return &b
}
