package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pablasso/pbar/internal/config"
	"github.com/pablasso/pbar/internal/logging"
	"github.com/pablasso/pbar/internal/tui"
)

// LaunchOptions selects the gallery config, logging and demo playback.
type LaunchOptions struct {
	ConfigPath string
	LogFile    string
	LogLevel   string
	Demo       *tui.DemoOptions
}

// Launch opens the gallery TUI.
func Launch(opts LaunchOptions) error {
	log, closer, err := logging.New(logging.Options{Path: opts.LogFile, Level: opts.LogLevel})
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	log.Info("starting gallery", "bars", len(cfg.Bars), "fps", cfg.FPS, "demo", opts.Demo != nil)

	return tui.Run(tui.Options{Config: cfg, Logger: log, Demo: opts.Demo})
}

// loadConfig reads an explicit config path, which must exist, or falls back
// to ./pbar.yaml and then the built-in gallery.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load(config.DefaultFileName)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return config.Load(path)
}

// newLogger builds a logger for one-shot commands from the persistent flags.
func newLogger() (hclog.Logger, func(), error) {
	log, closer, err := logging.New(logging.Options{Path: logFile, Level: logLevel})
	if err != nil {
		return nil, nil, err
	}
	return log, func() { closer.Close() }, nil
}
