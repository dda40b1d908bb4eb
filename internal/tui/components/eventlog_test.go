package components

import (
	"fmt"
	"strings"
	"testing"
)

func TestEventLog_AddKeepsNewest(t *testing.T) {
	l := NewEventLog(20, 3, 5)
	for i := 0; i < 8; i++ {
		l.Add(fmt.Sprintf("event %d", i))
	}

	lines := l.Lines()
	if len(lines) != 5 {
		t.Fatalf("expected 5 buffered lines, got %d", len(lines))
	}
	if lines[0] != "event 3" || lines[4] != "event 7" {
		t.Fatalf("unexpected window: %v", lines)
	}
	if !strings.Contains(l.View(), "event 7") {
		t.Fatalf("expected newest line visible, got %q", l.View())
	}
}

func TestEventLog_EmptyHeight(t *testing.T) {
	l := NewEventLog(20, 0, 0)
	l.Add("x")
	if l.View() != "" {
		t.Fatalf("expected no output for zero height")
	}
}

func TestScrollbar(t *testing.T) {
	tests := []struct {
		name                  string
		height, total, offset int
		want                  string
	}{
		{"fits", 3, 2, 0, " \n \n "},
		{"top", 4, 8, 0, "█\n█\n│\n│"},
		{"bottom", 4, 8, 4, "│\n│\n█\n█"},
		{"zero height", 0, 8, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scrollbar(tt.height, tt.total, tt.offset); got != tt.want {
				t.Errorf("scrollbar(%d, %d, %d) = %q, want %q", tt.height, tt.total, tt.offset, got, tt.want)
			}
		})
	}
}
