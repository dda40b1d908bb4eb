package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	springFPS = 60
	// restThreshold is the distance (and for springs, speed) under which a
	// tween snaps to its target.
	restThreshold = 0.001
)

// motion integrates one tween. step reports the new value, whether the tween
// reached its target and how much of dt was left over after it did.
type motion interface {
	step(dt time.Duration) (value float64, finished bool, rest time.Duration)
	velocity() float64
}

func newMotion(tw Tween, from, to, velocity float64) motion {
	tw = tw.withDefaults()
	switch tw.Kind {
	case KindSpring:
		return &springMotion{
			spring: harmonica.NewSpring(harmonica.FPS(springFPS), tw.Frequency, tw.Damping),
			frame:  time.Second / springFPS,
			pos:    from,
			vel:    velocity,
			target: to,
		}
	case KindDecay:
		return &decayMotion{from: from, to: to, k: 1 - tw.Deceleration}
	default:
		return &timingMotion{from: from, to: to, duration: tw.Duration, delay: tw.Delay, easing: tw.Easing}
	}
}

type timingMotion struct {
	from, to float64
	duration time.Duration
	delay    time.Duration
	easing   Easing
	elapsed  time.Duration
}

func (m *timingMotion) step(dt time.Duration) (float64, bool, time.Duration) {
	m.elapsed += dt
	t := m.elapsed - m.delay
	if t < 0 {
		return m.from, false, 0
	}
	if m.duration <= 0 || t >= m.duration {
		rest := t - max(m.duration, 0)
		return m.to, true, min(rest, dt)
	}
	p := m.easing(float64(t) / float64(m.duration))
	return m.from + (m.to-m.from)*p, false, 0
}

func (m *timingMotion) velocity() float64 { return 0 }

type springMotion struct {
	spring harmonica.Spring
	frame  time.Duration
	acc    time.Duration

	pos, vel, target float64
}

func (m *springMotion) step(dt time.Duration) (float64, bool, time.Duration) {
	m.acc += dt
	for m.acc >= m.frame {
		m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
		m.acc -= m.frame
		if math.Abs(m.pos-m.target) < restThreshold && math.Abs(m.vel) < restThreshold {
			m.pos, m.vel = m.target, 0
			return m.target, true, min(m.acc, dt)
		}
	}
	return m.pos, false, 0
}

func (m *springMotion) velocity() float64 { return m.vel }

// decayMotion closes the gap to the target exponentially, the way a decay
// animation with an initial velocity of Δ·(1-d) per millisecond settles.
type decayMotion struct {
	from, to float64
	k        float64
	elapsed  time.Duration
}

func (m *decayMotion) step(dt time.Duration) (float64, bool, time.Duration) {
	m.elapsed += dt
	delta := m.to - m.from
	if math.Abs(delta) < restThreshold {
		return m.to, true, dt
	}
	ms := float64(m.elapsed) / float64(time.Millisecond)
	remaining := delta * math.Exp(-m.k*ms)
	if math.Abs(remaining) < restThreshold {
		settle := math.Log(math.Abs(delta)/restThreshold) / m.k
		rest := m.elapsed - time.Duration(settle*float64(time.Millisecond))
		return m.to, true, max(0, min(rest, dt))
	}
	return m.to - remaining, false, 0
}

func (m *decayMotion) velocity() float64 { return 0 }
