// Package config loads gallery configuration from YAML.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pablasso/pbar/internal/anim"
	"github.com/pablasso/pbar/internal/bar"
	"github.com/pablasso/pbar/internal/layout"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the gallery settings
type Config struct {
	FPS        int         `mapstructure:"fps" yaml:"fps"`
	CellHeight float64     `mapstructure:"cell_height" yaml:"cell_height"`
	Backdrop   string      `mapstructure:"backdrop" yaml:"backdrop"`
	Bars       []BarConfig `mapstructure:"bars" yaml:"bars"`
}

// BarConfig holds one bar's options. Unset pointer fields keep the bar
// defaults.
type BarConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
	Demo bool   `mapstructure:"demo" yaml:"demo,omitempty"`

	Progress     float64 `mapstructure:"progress" yaml:"progress,omitempty"`
	Animated     *bool   `mapstructure:"animated" yaml:"animated,omitempty"`
	Loop         bool    `mapstructure:"loop" yaml:"loop,omitempty"`
	LoopDuration string  `mapstructure:"loop_duration" yaml:"loop_duration,omitempty"`
	LoopStyle    string  `mapstructure:"loop_style" yaml:"loop_style,omitempty"`

	// Indeterminate and IndeterminateDuration are aliases of Loop and
	// LoopDuration.
	Indeterminate         bool   `mapstructure:"indeterminate" yaml:"indeterminate,omitempty"`
	IndeterminateDuration string `mapstructure:"indeterminate_duration" yaml:"indeterminate_duration,omitempty"`

	Width        string   `mapstructure:"width" yaml:"width,omitempty"`
	Height       *float64 `mapstructure:"height" yaml:"height,omitempty"`
	BorderWidth  *float64 `mapstructure:"border_width" yaml:"border_width,omitempty"`
	BorderColor  string   `mapstructure:"border_color" yaml:"border_color,omitempty"`
	BorderRadius *float64 `mapstructure:"border_radius" yaml:"border_radius,omitempty"`

	Color         string `mapstructure:"color" yaml:"color,omitempty"`
	UnfilledColor string `mapstructure:"unfilled_color" yaml:"unfilled_color,omitempty"`
	LineCap       string `mapstructure:"line_cap" yaml:"line_cap,omitempty"`

	AnimationType string           `mapstructure:"animation_type" yaml:"animation_type,omitempty"`
	Animation     *AnimationConfig `mapstructure:"animation" yaml:"animation,omitempty"`

	Text *TextConfig `mapstructure:"text" yaml:"text,omitempty"`
}

// AnimationConfig holds tween parameters
type AnimationConfig struct {
	Duration     string  `mapstructure:"duration" yaml:"duration,omitempty"`
	Delay        string  `mapstructure:"delay" yaml:"delay,omitempty"`
	Easing       string  `mapstructure:"easing" yaml:"easing,omitempty"`
	Frequency    float64 `mapstructure:"frequency" yaml:"frequency,omitempty"`
	Damping      float64 `mapstructure:"damping" yaml:"damping,omitempty"`
	Deceleration float64 `mapstructure:"deceleration" yaml:"deceleration,omitempty"`
}

// TextConfig holds the overlay label
type TextConfig struct {
	Text       string  `mapstructure:"text" yaml:"text"`
	Color      string  `mapstructure:"color" yaml:"color,omitempty"`
	FontSize   float64 `mapstructure:"font_size" yaml:"font_size,omitempty"`
	FontWeight string  `mapstructure:"font_weight" yaml:"font_weight,omitempty"`
	Align      string  `mapstructure:"align" yaml:"align,omitempty"`
	Position   string  `mapstructure:"position" yaml:"position,omitempty"`
}

// Load reads configuration from path. An empty path, or a path that does not
// exist, yields the built-in gallery. PBAR_* environment variables override
// the top-level display settings either way.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("pbar")
	v.AutomaticEnv()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if len(cfg.Bars) == 0 {
		cfg.Bars = DefaultGallery().Bars
	}
	return cfg, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("fps", DefaultFPS)
	v.SetDefault("cell_height", DefaultCellHeight)
	v.SetDefault("backdrop", DefaultBackdrop)
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the configuration to path, refusing to overwrite unless
// force is set.
func (c *Config) WriteFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToBar converts the entry to bar options and validates them.
func (b BarConfig) ToBar() (bar.Config, error) {
	cfg := bar.DefaultConfig()
	cfg.Progress = b.Progress
	cfg.Loop = b.Loop || b.Indeterminate
	if b.Animated != nil {
		cfg.Animated = *b.Animated
	}

	var err error
	if b.LoopDuration != "" {
		if cfg.LoopDuration, err = time.ParseDuration(b.LoopDuration); err != nil {
			return bar.Config{}, fmt.Errorf("bar %q: loop_duration: %w", b.Name, err)
		}
	} else if b.IndeterminateDuration != "" {
		if cfg.LoopDuration, err = time.ParseDuration(b.IndeterminateDuration); err != nil {
			return bar.Config{}, fmt.Errorf("bar %q: indeterminate_duration: %w", b.Name, err)
		}
	}
	if b.LoopStyle != "" {
		cfg.LoopStyle = bar.LoopStyle(b.LoopStyle)
	}
	if b.Width != "" {
		if cfg.Width, err = layout.ParseWidth(b.Width); err != nil {
			return bar.Config{}, fmt.Errorf("bar %q: %w", b.Name, err)
		}
	}
	if b.Height != nil {
		cfg.Height = *b.Height
	}
	if b.BorderWidth != nil {
		cfg.BorderWidth = *b.BorderWidth
	}
	if b.BorderRadius != nil {
		cfg.BorderRadius = *b.BorderRadius
	}
	cfg.BorderColor = b.BorderColor
	if b.Color != "" {
		cfg.Color = b.Color
	}
	if b.UnfilledColor != "" {
		cfg.UnfilledColor = b.UnfilledColor
	}
	if b.LineCap != "" {
		cfg.LineCap = bar.LineCap(b.LineCap)
	}
	if b.AnimationType != "" {
		cfg.AnimationType = anim.Kind(b.AnimationType)
	}
	if a := b.Animation; a != nil {
		if a.Duration != "" {
			if cfg.Animation.Duration, err = time.ParseDuration(a.Duration); err != nil {
				return bar.Config{}, fmt.Errorf("bar %q: animation.duration: %w", b.Name, err)
			}
		}
		if a.Delay != "" {
			if cfg.Animation.Delay, err = time.ParseDuration(a.Delay); err != nil {
				return bar.Config{}, fmt.Errorf("bar %q: animation.delay: %w", b.Name, err)
			}
		}
		cfg.Animation.Easing = a.Easing
		if a.Frequency != 0 {
			cfg.Animation.Frequency = a.Frequency
		}
		if a.Damping != 0 {
			cfg.Animation.Damping = a.Damping
		}
		if a.Deceleration != 0 {
			cfg.Animation.Deceleration = a.Deceleration
		}
	}
	if t := b.Text; t != nil {
		cfg.Text = &bar.TextOverlay{
			Text:       t.Text,
			Color:      t.Color,
			FontSize:   t.FontSize,
			FontWeight: t.FontWeight,
			Align:      bar.Align(t.Align),
			Position:   t.Position,
		}
	}

	cfg, err = cfg.Normalize()
	if err != nil {
		return bar.Config{}, fmt.Errorf("bar %q: %w", b.Name, err)
	}
	return cfg, nil
}
