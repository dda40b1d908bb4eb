package bar

import (
	"time"

	"github.com/pablasso/pbar/internal/anim"
	"github.com/pablasso/pbar/internal/layout"
)

// Option adjusts a Config.
type Option func(*Config)

// New returns DefaultConfig with opts applied.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithProgress(p float64) Option { return func(c *Config) { c.Progress = p } }

func WithAnimated(animated bool) Option { return func(c *Config) { c.Animated = animated } }

// WithLoop enables the looping sweep with the given cycle length.
func WithLoop(cycle time.Duration) Option {
	return func(c *Config) {
		c.Loop = true
		c.LoopDuration = cycle
	}
}

func WithLoopStyle(s LoopStyle) Option { return func(c *Config) { c.LoopStyle = s } }

func WithWidth(w layout.Width) Option { return func(c *Config) { c.Width = w } }

func WithHeight(h float64) Option { return func(c *Config) { c.Height = h } }

// WithBorder sets border width, color and radius. Pass AutoRadius for half
// the height.
func WithBorder(width float64, color string, radius float64) Option {
	return func(c *Config) {
		c.BorderWidth = width
		c.BorderColor = color
		c.BorderRadius = radius
	}
}

func WithColors(fill, unfilled string) Option {
	return func(c *Config) {
		c.Color = fill
		c.UnfilledColor = unfilled
	}
}

func WithLineCap(lc LineCap) Option { return func(c *Config) { c.LineCap = lc } }

// WithTiming selects a timing tween.
func WithTiming(d time.Duration, easing string) Option {
	return func(c *Config) {
		c.AnimationType = anim.KindTiming
		c.Animation.Duration = d
		c.Animation.Easing = easing
	}
}

// WithSpring selects a spring tween.
func WithSpring(frequency, damping float64) Option {
	return func(c *Config) {
		c.AnimationType = anim.KindSpring
		c.Animation.Frequency = frequency
		c.Animation.Damping = damping
	}
}

// WithDecay selects a decay tween.
func WithDecay(deceleration float64) Option {
	return func(c *Config) {
		c.AnimationType = anim.KindDecay
		c.Animation.Deceleration = deceleration
	}
}

func WithText(t TextOverlay) Option { return func(c *Config) { c.Text = &t } }

func WithOnLayout(fn func(layout.Measurement)) Option { return func(c *Config) { c.OnLayout = fn } }
