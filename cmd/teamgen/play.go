package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/teamgen/internal/partition"
	"github.com/lox/teamgen/internal/session"
	"github.com/lox/teamgen/internal/tui"
)

type PlayCmd struct {
	Seed     int64 `help:"Seed for reproducible team draws (0 picks a random seed)"`
	NoSplash bool  `name:"no-splash" help:"Skip the loading screen"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := setupFileLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	logger.Info("Starting team generator", "config", g.Config, "version", version)

	sess := session.New(newPartitioner(c.Seed), logger)

	opts := []tui.Option{tui.WithDefaults(cfg.Input())}
	if cfg.SplashEnabled() && !c.NoSplash {
		opts = append(opts, tui.WithSplash(cfg.SplashStep()))
	}
	if !cfg.ColorEnabled() {
		disableColor()
	}

	ctx := setupSignalHandler(logger)
	err = tui.Run(tui.NewModel(sess, logger, opts...), tea.WithContext(ctx))
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func newPartitioner(seed int64) *partition.Partitioner {
	if seed != 0 {
		return partition.New(partition.WithSeed(seed))
	}
	return partition.New()
}
