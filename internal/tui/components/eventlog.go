package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/pbar/internal/tui/styles"
)

const defaultMaxEvents = 200

// EventLog is a scrolling list of gallery events such as layout reports and
// demo feed changes. It follows the newest line until the user scrolls up.
type EventLog struct {
	viewport   viewport.Model
	lines      []string
	maxLines   int
	autoScroll bool
}

// NewEventLog creates a log of the given size. maxLines <= 0 keeps 200 lines.
func NewEventLog(width, height, maxLines int) EventLog {
	if maxLines <= 0 {
		maxLines = defaultMaxEvents
	}
	vp := viewport.New(max(0, width-1), height)
	return EventLog{viewport: vp, maxLines: maxLines, autoScroll: true}
}

// Add appends a line, dropping the oldest past the limit.
func (l *EventLog) Add(line string) {
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.maxLines; over > 0 {
		l.lines = append([]string(nil), l.lines[over:]...)
	}
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	if l.autoScroll {
		l.viewport.GotoBottom()
	}
}

// Lines returns the buffered lines.
func (l EventLog) Lines() []string { return l.lines }

// SetSize resizes the log; one column is kept for the scrollbar.
func (l *EventLog) SetSize(width, height int) {
	l.viewport.Width = max(0, width-1)
	l.viewport.Height = max(0, height)
	if l.autoScroll {
		l.viewport.GotoBottom()
	}
}

// Update forwards scrolling keys and mouse wheel events to the viewport.
func (l *EventLog) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	l.autoScroll = l.viewport.AtBottom()
	return cmd
}

// View renders the log with its scrollbar.
func (l EventLog) View() string {
	if l.viewport.Height <= 0 {
		return ""
	}
	bar := scrollbar(l.viewport.Height, len(l.lines), l.viewport.YOffset)
	return lipgloss.JoinHorizontal(lipgloss.Top, styles.SubtleStyle.Render(l.viewport.View()), styles.SubtleStyle.Render(bar))
}

// scrollbar draws a one-column track with a thumb sized to the visible
// fraction. Content that fits leaves a blank gutter.
func scrollbar(height, total, offset int) string {
	if height <= 0 {
		return ""
	}
	rows := make([]string, height)
	if total <= height {
		for i := range rows {
			rows[i] = " "
		}
		return strings.Join(rows, "\n")
	}

	thumb := max(1, height*height/total)
	top := 0
	if span := total - height; span > 0 {
		top = offset * (height - thumb) / span
	}
	top = max(0, min(height-thumb, top))
	for i := range rows {
		rows[i] = "│"
		if i >= top && i < top+thumb {
			rows[i] = "█"
		}
	}
	return strings.Join(rows, "\n")
}
