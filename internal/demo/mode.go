package demo

import (
	"fmt"
	"strings"
)

// Mode controls which gallery bars the demo feed drives.
type Mode string

const (
	// ModeFlagged drives only bars marked demo in the gallery config.
	ModeFlagged Mode = "flagged"
	// ModeAll drives every bar.
	ModeAll Mode = "all"
)

// ParseMode validates and normalizes a demo mode value.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeFlagged, ModeAll:
		return Mode(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo mode %q (valid: flagged, all)", value)
	}
}
