// Package logging builds the hclog logger shared by the CLI and the TUI.
// The TUI owns the terminal, so logs only go to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Options selects where and how much to log.
type Options struct {
	// Path is the log file. Empty disables logging.
	Path  string
	Level string
	JSON  bool
}

// New returns a logger and a closer for its file. With no path the logger
// discards everything.
func New(opts Options) (hclog.Logger, io.Closer, error) {
	if opts.Path == "" {
		return hclog.NewNullLogger(), io.NopCloser(nil), nil
	}

	level := hclog.Info
	if opts.Level != "" {
		level = hclog.LevelFromString(opts.Level)
		if level == hclog.NoLevel {
			return nil, nil, fmt.Errorf("invalid log level %q (valid: trace, debug, info, warn, error)", opts.Level)
		}
	}

	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "pbar",
		Level:      level,
		Output:     f,
		JSONFormat: opts.JSON,
	})
	return logger, f, nil
}
