package bar

import (
	"errors"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pablasso/pbar/internal/anim"
)

// ErrClosed is returned by Driver mutators after Close.
var ErrClosed = errors.New("progress bar driver is closed")

// Driver decides how the progress and sweep values move when the bar's
// options change. Determinate progress and the looping sweep never move at
// the same time.
type Driver struct {
	cfg   Config
	tween anim.Tween
	log   hclog.Logger

	progress *anim.Value
	sweep    *anim.Value

	raw     float64
	looping bool
	cycles  int
	closed  bool
}

// NewDriver validates cfg and creates a driver at rest on its progress. A
// looping config starts its first cycle immediately.
func NewDriver(cfg Config, logger hclog.Logger) (*Driver, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	tw, err := cfg.Tween()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	d := &Driver{
		cfg:      cfg,
		tween:    tw,
		log:      logger,
		progress: anim.NewValue(Clamp(cfg.Progress)),
		sweep:    anim.NewValue(0),
		raw:      cfg.Progress,
	}
	if cfg.Loop {
		d.startLoop()
	}
	return d, nil
}

// Config returns the options the driver is running with.
func (d *Driver) Config() Config { return d.cfg }

// Progress samples the progress value.
func (d *Driver) Progress() float64 { return d.progress.Current() }

// Sweep samples the loop sweep in [0,1].
func (d *Driver) Sweep() float64 { return d.sweep.Current() }

// Looping reports whether the sweep is driving the bar.
func (d *Driver) Looping() bool { return d.looping }

// Cycles returns how many times the sweep has wrapped back to 0.
func (d *Driver) Cycles() int { return d.cycles }

// Closed reports whether Close was called.
func (d *Driver) Closed() bool { return d.closed }

// Animating reports whether a frame would change anything.
func (d *Driver) Animating() bool {
	return !d.closed && (d.progress.Animating() || d.sweep.Animating())
}

// SetProgress updates the target. While looping the value is remembered
// but nothing moves.
func (d *Driver) SetProgress(p float64) error {
	if d.closed {
		return ErrClosed
	}
	d.raw = p
	d.cfg.Progress = p
	if d.looping {
		return nil
	}
	d.drive()
	return nil
}

// SetAnimated switches between tweened and snapped progress changes.
func (d *Driver) SetAnimated(animated bool) error {
	if d.closed {
		return ErrClosed
	}
	d.cfg.Animated = animated
	return nil
}

// SetLoop turns the looping sweep on or off. Turning it off cancels the
// in-flight cycle and drives progress to the latest target.
func (d *Driver) SetLoop(on bool) error {
	if d.closed {
		return ErrClosed
	}
	d.cfg.Loop = on
	if on == d.looping {
		return nil
	}
	if on {
		d.startLoop()
		return nil
	}

	d.looping = false
	d.sweep.Set(0)
	d.log.Trace("loop stopped", "cycles", d.cycles)
	d.drive()
	return nil
}

// SetConfig applies a new set of options, as on a re-render with new props.
func (d *Driver) SetConfig(cfg Config) error {
	if d.closed {
		return ErrClosed
	}
	cfg, err := cfg.Normalize()
	if err != nil {
		return err
	}
	tw, err := cfg.Tween()
	if err != nil {
		return err
	}
	d.cfg, d.tween = cfg, tw
	if err := d.SetLoop(cfg.Loop); err != nil {
		return err
	}
	return d.SetProgress(cfg.Progress)
}

// Advance moves both values forward by dt of host time. Loop cycles that
// complete inside the step carry the remaining time into the next cycle.
func (d *Driver) Advance(dt time.Duration) {
	if d.closed || dt <= 0 {
		return
	}
	d.progress.Advance(dt)

	rest := d.sweep.Advance(dt)
	for rest > 0 && d.sweep.Animating() {
		rest = d.sweep.Advance(rest)
	}
}

// Frame samples the driver for rendering at the given resolved width.
func (d *Driver) Frame(width float64) Frame {
	return Frame{
		Config:   d.cfg,
		Width:    width,
		Progress: d.progress.Current(),
		Sweep:    d.sweep.Current(),
		Looping:  d.looping,
	}
}

// Close cancels any in-flight tween or cycle. The driver cannot be reused.
func (d *Driver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.looping = false
	d.progress.Stop()
	d.sweep.Stop()
	d.log.Trace("driver closed", "cycles", d.cycles)
}

func (d *Driver) drive() {
	target := Clamp(d.raw)
	if d.progress.Target() == target {
		// at rest on target, or already heading there
		return
	}
	if !d.cfg.Animated {
		d.progress.Set(target)
		return
	}
	d.log.Trace("tween started", "from", d.progress.Current(), "to", target, "kind", d.tween.Kind)
	d.progress.AnimateTo(target, d.tween, nil)
}

func (d *Driver) startLoop() {
	d.looping = true
	d.progress.Stop()
	d.log.Trace("loop started", "cycle", d.cfg.LoopDuration)
	d.armCycle()
}

func (d *Driver) armCycle() {
	d.sweep.Set(0)
	d.sweep.AnimateTo(1, anim.Linear(d.cfg.LoopDuration), d.cycleDone)
}

func (d *Driver) cycleDone(r anim.Result) {
	if !r.Finished || !d.looping || d.closed {
		return
	}
	d.cycles++
	d.armCycle()
}
