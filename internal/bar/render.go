package bar

import (
	"fmt"
	"strings"

	"github.com/pablasso/pbar/internal/anim"
	"github.com/pablasso/pbar/internal/layout"
)

// slideBlockFactor is the width of the sliding block as a fraction of the
// track.
const slideBlockFactor = 0.3

// Frame is everything Render needs, sampled at one instant.
type Frame struct {
	Config   Config
	Width    float64 // resolved width, border included
	Progress float64
	Sweep    float64
	Looping  bool
}

// Rect is a filled rectangle in bar units.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Radius        float64
	Color         string
}

// Border outlines the bar.
type Border struct {
	Width  float64
	Color  string
	Radius float64
}

// Text is an overlay label. X is the anchor point.
type Text struct {
	X, Y    float64
	Anchor  Align
	Content string
	Color   string
	Size    float64
	Bold    bool
}

// Scene is the drawing for one frame.
type Scene struct {
	Width, Height float64
	Border        *Border
	Track         Rect
	Fill          Rect
	Text          *Text
}

// Surface returns the drawable width inside the border.
func (f Frame) Surface() float64 {
	return max(0, f.Width-2*f.Config.BorderWidth)
}

// Render composes the scene for a frame. It has no side effects.
func Render(f Frame) Scene {
	cfg := f.Config
	bw := cfg.BorderWidth
	surface := f.Surface()

	s := Scene{
		Width:  f.Width,
		Height: cfg.Height + 2*bw,
		Track: Rect{
			X: bw, Y: bw,
			Width: surface, Height: cfg.Height,
			Color: cfg.UnfilledColor,
		},
	}
	if bw > 0 {
		s.Border = &Border{Width: bw, Color: cfg.EffectiveBorderColor(), Radius: cfg.Radius()}
	}

	fill := Rect{X: bw, Y: bw, Height: cfg.Height, Color: cfg.Color}
	if cfg.LineCap == CapRound {
		fill.Radius = cfg.Height / 2
	}
	switch {
	case f.Looping && cfg.LoopStyle == LoopSlide:
		block := slideBlockFactor * surface
		left := anim.Interpolate(f.Sweep, [2]float64{0, 1}, [2]float64{-block, surface})
		right := min(surface, left+block)
		left = max(0, left)
		fill.X = bw + left
		fill.Width = max(0, right-left)
	case f.Looping:
		fill.Width = Clamp(f.Sweep) * surface
	default:
		fill.Width = Clamp(f.Progress) * surface
	}
	s.Fill = fill

	if cfg.Text != nil {
		s.Text = renderText(*cfg.Text, bw, surface, cfg.Height, cfg.Progress)
	}
	return s
}

// PercentPlaceholder in overlay text is replaced by the target progress,
// e.g. "{percent}" renders as "70%".
const PercentPlaceholder = "{percent}"

func renderText(t TextOverlay, bw, surface, height, progress float64) *Text {
	anchor := t.Align
	if anchor == "" {
		anchor = AlignMiddle
	}
	pct := alignPercent(anchor)
	if t.Position != "" {
		if w, err := layout.ParseWidth(t.Position); err == nil && w.IsPercent() {
			pct = w.Value()
		}
	}
	color := t.Color
	if color == "" {
		color = "white"
	}
	size := t.FontSize
	if size == 0 {
		size = 12
	}
	return &Text{
		X:       bw + pct/100*surface,
		Y:       bw + height/2,
		Anchor:  anchor,
		Content: strings.ReplaceAll(t.Text, PercentPlaceholder, fmt.Sprintf("%.0f%%", Clamp(progress)*100)),
		Color:   color,
		Size:    size,
		Bold:    t.Bold(),
	}
}

func alignPercent(a Align) float64 {
	switch a {
	case AlignStart:
		return 10
	case AlignEnd:
		return 80
	default:
		return 50
	}
}
