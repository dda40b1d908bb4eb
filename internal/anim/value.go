// Package anim provides the animated scalar that drives progress bars: a
// value that can be set immediately or tweened toward a target, and that is
// stepped forward by the host's frame clock.
package anim

import "time"

// Result is passed to a tween's completion callback. Finished is false when
// the tween was cancelled or superseded before reaching its target.
type Result struct {
	Finished bool
}

// Value is a time-varying real number. It is not safe for concurrent use;
// the host frame loop is its only writer.
type Value struct {
	current float64
	target  float64

	motion motion
	done   func(Result)
}

// NewValue creates a Value resting at v.
func NewValue(v float64) *Value {
	return &Value{current: v, target: v}
}

// Current returns the live, possibly interpolated, value.
func (v *Value) Current() float64 { return v.current }

// Target returns the value the in-flight tween is heading to, or the
// current value at rest.
func (v *Value) Target() float64 { return v.target }

// Animating reports whether a tween is in flight.
func (v *Value) Animating() bool { return v.motion != nil }

// Set stops any tween and snaps to x.
func (v *Value) Set(x float64) {
	v.Stop()
	v.current = x
	v.target = x
}

// AnimateTo starts a tween from the current value toward target. A tween
// already in flight is cancelled first and the new one starts where the old
// one was, keeping spring velocity.
func (v *Value) AnimateTo(target float64, tw Tween, done func(Result)) {
	velocity := 0.0
	if v.motion != nil {
		velocity = v.motion.velocity()
	}
	v.Stop()
	v.target = target
	v.motion = newMotion(tw, v.current, target, velocity)
	v.done = done
}

// Advance steps the in-flight tween by dt. When the tween completes within
// the step its callback runs and the unused part of dt is returned; otherwise
// Advance returns 0. With nothing in flight all of dt is returned.
func (v *Value) Advance(dt time.Duration) time.Duration {
	if v.motion == nil {
		return dt
	}
	value, finished, rest := v.motion.step(dt)
	v.current = value
	if !finished {
		return 0
	}

	done := v.done
	v.motion, v.done = nil, nil
	v.target = value
	if done != nil {
		done(Result{Finished: true})
	}
	return rest
}

// Stop cancels the in-flight tween, leaving the value where it is.
func (v *Value) Stop() {
	if v.motion == nil {
		return
	}
	done := v.done
	v.motion, v.done = nil, nil
	v.target = v.current
	if done != nil {
		done(Result{Finished: false})
	}
}

// Interpolate maps the current value from the in range onto the out range,
// clamping to the out range.
func (v *Value) Interpolate(in, out [2]float64) float64 {
	return Interpolate(v.current, in, out)
}

// Interpolate maps x from the in range onto the out range, clamping to the
// out range.
func Interpolate(x float64, in, out [2]float64) float64 {
	if in[1] == in[0] {
		return out[0]
	}
	t := (x - in[0]) / (in[1] - in[0])
	t = max(0, min(1, t))
	return out[0] + t*(out[1]-out[0])
}
