package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/teamgen/internal/config"
)

// setupLogger returns a timestamped logger writing to w at the configured level.
func setupLogger(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.Level(),
	})
}

// setupFileLogger opens the configured log file for appending. The terminal
// belongs to the UI while it runs, so interactive sessions log to a file.
func setupFileLogger(cfg *config.Config) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return setupLogger(f, cfg), f, nil
}
