package bar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pablasso/pbar/internal/anim"
	"github.com/pablasso/pbar/internal/colors"
	"github.com/pablasso/pbar/internal/layout"
)

// LineCap controls corner rounding of the filled region.
type LineCap string

const (
	CapSquare LineCap = "square"
	CapRound  LineCap = "round"
)

func ParseLineCap(value string) (LineCap, error) {
	switch LineCap(strings.ToLower(strings.TrimSpace(value))) {
	case CapSquare, CapRound:
		return LineCap(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid line cap %q (valid: square, round)", value)
	}
}

// LoopStyle selects how the looping sweep is drawn.
type LoopStyle string

const (
	// LoopGrow fills the bar from empty to full every cycle.
	LoopGrow LoopStyle = "grow"
	// LoopSlide moves a fixed-width block across the track.
	LoopSlide LoopStyle = "slide"
)

func ParseLoopStyle(value string) (LoopStyle, error) {
	switch LoopStyle(strings.ToLower(strings.TrimSpace(value))) {
	case LoopGrow, LoopSlide:
		return LoopStyle(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid loop style %q (valid: grow, slide)", value)
	}
}

// Align anchors overlay text horizontally.
type Align string

const (
	AlignStart  Align = "start"
	AlignMiddle Align = "middle"
	AlignEnd    Align = "end"
)

func ParseAlign(value string) (Align, error) {
	switch Align(strings.ToLower(strings.TrimSpace(value))) {
	case AlignStart, AlignMiddle, AlignEnd:
		return Align(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid text align %q (valid: start, middle, end)", value)
	}
}

// TextOverlay is a label drawn over the bar.
type TextOverlay struct {
	Text       string
	Color      string
	FontSize   float64
	FontWeight string
	Align      Align
	// Position overrides the alignment's x position, as "<n>%" of the bar.
	Position string
}

// AnimationConfig holds the tween parameters handed to the selected kind.
type AnimationConfig struct {
	Duration     time.Duration
	Delay        time.Duration
	Easing       string
	Frequency    float64
	Damping      float64
	Deceleration float64
}

// AutoRadius asks for a border radius of half the bar height.
const AutoRadius = -1

// Config is the full set of bar options.
type Config struct {
	// Progress is the raw target fraction; it is clamped when used.
	Progress float64
	Animated bool

	Loop         bool
	LoopDuration time.Duration
	LoopStyle    LoopStyle

	Width  layout.Width
	Height float64

	BorderWidth  float64
	BorderColor  string
	BorderRadius float64

	Color         string
	UnfilledColor string
	LineCap       LineCap

	AnimationType anim.Kind
	Animation     AnimationConfig

	Text *TextOverlay

	// OnLayout receives every layout measurement reported by the host.
	OnLayout func(layout.Measurement)
}

// DefaultConfig returns the options every bar starts from.
func DefaultConfig() Config {
	return Config{
		Animated:      true,
		LoopDuration:  time.Second,
		LoopStyle:     LoopGrow,
		Width:         layout.Full,
		Height:        6,
		BorderWidth:   1,
		BorderRadius:  AutoRadius,
		Color:         "rgba(0, 122, 255, 1)",
		UnfilledColor: "rgba(0,0,0,0)",
		LineCap:       CapRound,
		AnimationType: anim.KindSpring,
		Animation: AnimationConfig{
			Duration:     anim.DefaultDuration,
			Frequency:    anim.DefaultFrequency,
			Damping:      anim.DefaultDamping,
			Deceleration: anim.DefaultDeceleration,
		},
	}
}

// Clamp limits p to [0,1]. NaN clamps to 0.
func Clamp(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}

// Radius returns the border radius with AutoRadius resolved.
func (c Config) Radius() float64 {
	if c.BorderRadius < 0 {
		return c.Height / 2
	}
	return c.BorderRadius
}

// EffectiveBorderColor falls back to the fill color.
func (c Config) EffectiveBorderColor() string {
	if c.BorderColor == "" {
		return c.Color
	}
	return c.BorderColor
}

// Tween builds the tween for determinate progress changes.
func (c Config) Tween() (anim.Tween, error) {
	kind, err := anim.ParseKind(string(c.AnimationType))
	if err != nil {
		return anim.Tween{}, err
	}
	easing, err := anim.ParseEasing(c.Animation.Easing)
	if err != nil {
		return anim.Tween{}, err
	}
	return anim.Tween{
		Kind:         kind,
		Duration:     c.Animation.Duration,
		Delay:        c.Animation.Delay,
		Easing:       easing,
		Frequency:    c.Animation.Frequency,
		Damping:      c.Animation.Damping,
		Deceleration: c.Animation.Deceleration,
	}, nil
}

// Validate rejects enumerated options outside their sets and malformed
// values. Out-of-range progress is not an error; it is clamped on use.
func (c Config) Validate() error {
	var errs *multierror.Error

	if _, err := c.Tween(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, err := ParseLineCap(string(c.LineCap)); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, err := ParseLoopStyle(string(c.LoopStyle)); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.LoopDuration <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("loop duration must be positive, got %s", c.LoopDuration))
	}
	if c.Height < 0 {
		errs = multierror.Append(errs, fmt.Errorf("height must not be negative, got %v", c.Height))
	}
	if c.BorderWidth < 0 {
		errs = multierror.Append(errs, fmt.Errorf("border width must not be negative, got %v", c.BorderWidth))
	}
	if c.Animation.Deceleration != 0 && (c.Animation.Deceleration <= 0 || c.Animation.Deceleration >= 1) {
		errs = multierror.Append(errs, fmt.Errorf("deceleration must be in (0,1), got %v", c.Animation.Deceleration))
	}
	if _, err := colors.Parse(c.Color); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("color: %w", err))
	}
	if _, err := colors.Parse(c.UnfilledColor); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("unfilled color: %w", err))
	}
	if c.BorderColor != "" {
		if _, err := colors.Parse(c.BorderColor); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("border color: %w", err))
		}
	}
	if c.Text != nil {
		if err := c.Text.validate(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs.ErrorOrNil()
}

// Normalize validates c and returns it with every enumerated option in its
// canonical lower-case form.
func (c Config) Normalize() (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	c.AnimationType, _ = anim.ParseKind(string(c.AnimationType))
	c.LineCap, _ = ParseLineCap(string(c.LineCap))
	c.LoopStyle, _ = ParseLoopStyle(string(c.LoopStyle))
	if c.Text != nil && c.Text.Align != "" {
		t := *c.Text
		t.Align, _ = ParseAlign(string(t.Align))
		c.Text = &t
	}
	return c, nil
}

var errBadPosition = errors.New("text position must be a percentage like \"25%\"")

func (t TextOverlay) validate() error {
	var errs *multierror.Error
	if t.Align != "" {
		if _, err := ParseAlign(string(t.Align)); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if t.Position != "" {
		if w, err := layout.ParseWidth(t.Position); err != nil || !w.IsPercent() {
			errs = multierror.Append(errs, errBadPosition)
		}
	}
	if t.Color != "" {
		if _, err := colors.Parse(t.Color); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("text color: %w", err))
		}
	}
	if t.FontWeight != "" && !validWeight(t.FontWeight) {
		errs = multierror.Append(errs, fmt.Errorf("invalid font weight %q (valid: normal, bold, 100..900)", t.FontWeight))
	}
	if t.FontSize < 0 {
		errs = multierror.Append(errs, fmt.Errorf("font size must not be negative, got %v", t.FontSize))
	}
	return errs.ErrorOrNil()
}

func validWeight(w string) bool {
	switch w {
	case "normal", "bold":
		return true
	}
	n, err := strconv.Atoi(w)
	return err == nil && n >= 100 && n <= 900 && n%100 == 0
}

// Bold reports whether the weight renders as bold text.
func (t TextOverlay) Bold() bool {
	if t.FontWeight == "bold" {
		return true
	}
	n, err := strconv.Atoi(t.FontWeight)
	return err == nil && n >= 600
}
