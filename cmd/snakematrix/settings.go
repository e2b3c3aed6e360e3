package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakematrix/internal/config"
	"github.com/vovakirdan/snakematrix/internal/registry"
)

// loadSettings loads the config file and applies command line overrides.
// Only flags the user actually set override file values.
func loadSettings(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("scale") {
		cfg.Audio.Scale = flagScale
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	if cfg.Audio.Enabled && !registry.Exists(cfg.Audio.Scale) {
		return config.Config{}, "", fmt.Errorf("unknown scale %q, run 'snakematrix scales' to list them", cfg.Audio.Scale)
	}
	return cfg, source, nil
}

// openLogger creates the session logger. The TUI owns the terminal, so
// logs go to a file. An empty path discards them.
func openLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if path != "" {
		expanded, err := config.ExpandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if dir := filepath.Dir(expanded); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakematrix",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
