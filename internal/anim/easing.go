package anim

import (
	"fmt"
	"math"
	"strings"
)

// Easing maps linear progress t in [0,1] to eased progress.
type Easing func(t float64) float64

var (
	EaseLinear Easing = func(t float64) float64 { return t }
	EaseIn     Easing = func(t float64) float64 { return t * t * t }
	EaseOut    Easing = func(t float64) float64 { return 1 - math.Pow(1-t, 3) }
	EaseInOut  Easing = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	}
	EaseQuad Easing = func(t float64) float64 { return t * t }
	// EaseSine approximates the CSS "ease" curve.
	EaseSine Easing = func(t float64) float64 { return 0.5 - math.Cos(t*math.Pi)/2 }
)

var easings = map[string]Easing{
	"linear":      EaseLinear,
	"ease":        EaseSine,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
	"quad":        EaseQuad,
	"cubic":       EaseIn,
}

// ParseEasing looks up an easing by name. An empty name selects ease-in-out.
func ParseEasing(name string) (Easing, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EaseInOut, nil
	}
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("invalid easing %q (valid: linear, ease, ease-in, ease-out, ease-in-out, quad, cubic)", name)
	}
	return e, nil
}
