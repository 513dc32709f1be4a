package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/lox/teamgen/internal/config"
)

// Globals are flags shared by every command.
type Globals struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"teamgen.hcl" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" name:"log-level" help:"Log level (overrides config)"`
	LogFile  string           `name:"log-file" help:"Log file path (overrides config)"`
}

// loadConfig reads the config file and applies command line overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", g.Config, err)
	}

	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
