package tui

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pablasso/pbar/internal/config"
	"github.com/pablasso/pbar/internal/demo"
)

// Options configures TUI startup behavior.
type Options struct {
	// Config is the gallery to show. Nil uses the built-in gallery.
	Config *config.Config
	Logger hclog.Logger
	Demo   *DemoOptions
}

// DemoOptions configure demo mode when starting the TUI.
type DemoOptions struct {
	Mode     demo.Mode
	Preset   demo.Preset
	Scenario demo.Scenario
}
