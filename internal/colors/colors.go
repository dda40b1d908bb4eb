// Package colors parses the color strings accepted by bar options:
// "#rgb", "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)", "transparent" and a
// handful of names.
package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for strings Parse does not understand.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque color plus alpha in [0,1].
type Color struct {
	colorful.Color
	Alpha float64
}

// Transparent reports whether the color paints nothing.
func (c Color) Transparent() bool { return c.Alpha <= 0 }

// Over composites c over a backdrop and returns the resulting opaque color.
func (c Color) Over(backdrop colorful.Color) colorful.Color {
	if c.Alpha >= 1 {
		return c.Color
	}
	return backdrop.BlendRgb(c.Color, c.Alpha).Clamped()
}

var named = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"purple": "#800080",
	"gray":   "#808080",
	"grey":   "#808080",
	"cyan":   "#00ffff",
}

// Parse parses a color string.
func Parse(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "transparent" {
		return Color{}, nil
	}
	if hex, ok := named[in]; ok {
		in = hex
	}

	switch {
	case strings.HasPrefix(in, "#"):
		if len(in) == 4 {
			in = "#" + strings.Repeat(in[1:2], 2) + strings.Repeat(in[2:3], 2) + strings.Repeat(in[3:4], 2)
		}
		c, err := colorful.Hex(in)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
		}
		return Color{Color: c, Alpha: 1}, nil
	case strings.HasPrefix(in, "rgba(") && strings.HasSuffix(in, ")"):
		return parseFunc(s, in[len("rgba("):len(in)-1], 4)
	case strings.HasPrefix(in, "rgb(") && strings.HasSuffix(in, ")"):
		return parseFunc(s, in[len("rgb("):len(in)-1], 3)
	}
	return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
}

func parseFunc(orig, args string, n int) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, orig)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, orig)
		}
		ch[i] = v / 255
	}
	alpha := 1.0
	if n == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, orig)
		}
		alpha = a
	}
	return Color{Color: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, Alpha: alpha}, nil
}

// MustParse is Parse for known-good literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
