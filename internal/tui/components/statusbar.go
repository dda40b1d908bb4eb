package components

import (
	"fmt"
	"strings"

	"github.com/pablasso/pbar/internal/bar"
	"github.com/pablasso/pbar/internal/tui/styles"
)

// StatusBar renders a one-line summary of the selected bar.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " separator and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	if len(items) == 0 {
		return styles.StatusBarStyle.Width(width).Render("")
	}

	content := strings.Join(items, " • ")

	return styles.StatusBarStyle.Width(width).Render(content)
}

// Items describes a driver's state as status bar items.
func (s StatusBar) Items(name string, d *bar.Driver) []string {
	cfg := d.Config()
	items := []string{name}
	if d.Looping() {
		items = append(items, fmt.Sprintf("looping (%s, cycle %d)", cfg.LoopStyle, d.Cycles()+1))
	} else {
		items = append(items, fmt.Sprintf("%.0f%%", d.Progress()*100))
	}
	if cfg.Animated {
		items = append(items, string(cfg.AnimationType))
	} else {
		items = append(items, "snap")
	}
	return items
}
