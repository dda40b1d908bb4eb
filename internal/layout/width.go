package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidWidth is returned for width strings that are neither a
// non-negative number nor a "<n>%" percentage.
var ErrInvalidWidth = errors.New("invalid width")

// Width is a declared bar width: an absolute number of units or a
// percentage of the parent's measured width.
type Width struct {
	value   float64
	percent bool
}

// Absolute declares a fixed width in units.
func Absolute(units float64) Width {
	return Width{value: units}
}

// Percent declares a width relative to the parent measurement.
func Percent(p float64) Width {
	return Width{value: p, percent: true}
}

// Full is the default declared width, "100%".
var Full = Percent(100)

// ParseWidth parses "80" or "50%".
func ParseWidth(s string) (Width, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	num := strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if num == "" {
		return Width{}, fmt.Errorf("%w %q", ErrInvalidWidth, s)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Width{}, fmt.Errorf("%w %q", ErrInvalidWidth, s)
	}
	return Width{value: v, percent: percent}, nil
}

// IsPercent reports whether the width depends on layout.
func (w Width) IsPercent() bool { return w.percent }

// Value returns the declared number, units or percent.
func (w Width) Value() float64 { return w.value }

// String formats the width the way ParseWidth accepts it.
func (w Width) String() string {
	s := strconv.FormatFloat(w.value, 'f', -1, 64)
	if w.percent {
		return s + "%"
	}
	return s
}

// Of resolves the width against a parent width.
func (w Width) Of(parent float64) float64 {
	if !w.percent {
		return w.value
	}
	return w.value / 100 * parent
}

// MarshalText implements encoding.TextMarshaler.
func (w Width) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Width) UnmarshalText(b []byte) error {
	parsed, err := ParseWidth(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
