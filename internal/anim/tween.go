package anim

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownKind is returned when a tween kind is not one of timing, spring or decay.
var ErrUnknownKind = errors.New("unknown animation type")

// Kind selects how a Value moves toward its target.
type Kind string

const (
	KindTiming Kind = "timing"
	KindSpring Kind = "spring"
	KindDecay  Kind = "decay"
)

// ParseKind validates and normalizes a tween kind.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindTiming, KindSpring, KindDecay:
		return Kind(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("%w %q (valid: timing, spring, decay)", ErrUnknownKind, value)
	}
}

// Defaults for tween parameters left at their zero value.
const (
	DefaultDuration     = 500 * time.Millisecond
	DefaultFrequency    = 18.0
	DefaultDamping      = 1.0
	DefaultDeceleration = 0.997
)

// Tween describes a transition. Only the fields of the selected Kind are read.
type Tween struct {
	Kind Kind

	// timing
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing

	// spring
	Frequency float64
	Damping   float64

	// decay, per millisecond
	Deceleration float64
}

// Linear returns a timing tween with linear easing, the shape used for loop sweeps.
func Linear(d time.Duration) Tween {
	return Tween{Kind: KindTiming, Duration: d, Easing: EaseLinear}
}

// withDefaults fills zero parameters for the tween's kind.
func (tw Tween) withDefaults() Tween {
	if tw.Kind == "" {
		tw.Kind = KindTiming
	}
	switch tw.Kind {
	case KindTiming:
		if tw.Easing == nil {
			tw.Easing = EaseInOut
		}
	case KindSpring:
		if tw.Frequency <= 0 {
			tw.Frequency = DefaultFrequency
		}
		if tw.Damping <= 0 {
			tw.Damping = DefaultDamping
		}
	case KindDecay:
		if tw.Deceleration <= 0 || tw.Deceleration >= 1 {
			tw.Deceleration = DefaultDeceleration
		}
	}
	return tw
}
