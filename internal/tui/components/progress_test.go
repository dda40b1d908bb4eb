package components

import (
	"strings"
	"testing"
	"time"

	"github.com/pablasso/pbar/internal/bar"
	"github.com/pablasso/pbar/internal/layout"
)

func newBar(t *testing.T, opts ...bar.Option) *ProgressBar {
	t.Helper()
	p, err := NewProgressBar(bar.New(opts...))
	if err != nil {
		t.Fatalf("NewProgressBar: %v", err)
	}
	return p
}

func (p *ProgressBar) frameAt(t time.Time) FrameMsg {
	return FrameMsg{ID: p.ID, Tag: p.tag, Time: t}
}

func TestProgressBar_InitIdleSchedulesNothing(t *testing.T) {
	p := newBar(t)
	if cmd := p.Init(); cmd != nil {
		t.Fatalf("expected no frames for an idle bar")
	}
}

func TestProgressBar_InitLoopingSchedulesFrames(t *testing.T) {
	p := newBar(t, bar.WithLoop(time.Second))
	if cmd := p.Init(); cmd == nil {
		t.Fatalf("expected frame loop for a looping bar")
	}
}

func TestProgressBar_FramesAdvanceTween(t *testing.T) {
	p := newBar(t, bar.WithTiming(100*time.Millisecond, "linear"))
	if cmd := p.SetProgress(1); cmd == nil {
		t.Fatalf("expected SetProgress to start frames")
	}

	start := time.Now()
	if cmd := p.Update(p.frameAt(start)); cmd == nil {
		t.Fatalf("expected another frame mid-tween")
	}
	cmd := p.Update(p.frameAt(start.Add(200 * time.Millisecond)))
	if cmd != nil {
		t.Fatalf("expected frames to stop once the tween finished")
	}
	if got := p.Driver().Progress(); got != 1 {
		t.Fatalf("expected progress 1, got %v", got)
	}
}

func TestProgressBar_SnapNeedsNoFrames(t *testing.T) {
	p := newBar(t, bar.WithAnimated(false))
	if cmd := p.SetProgress(0.7); cmd != nil {
		t.Fatalf("snapped progress should not schedule frames")
	}
	if p.Driver().Progress() != 0.7 {
		t.Fatalf("expected 0.7, got %v", p.Driver().Progress())
	}
}

func TestProgressBar_IgnoresForeignAndStaleFrames(t *testing.T) {
	p := newBar(t, bar.WithLoop(time.Second))
	p.Init()

	now := time.Now()
	if cmd := p.Update(FrameMsg{ID: "other", Tag: p.tag, Time: now}); cmd != nil {
		t.Fatalf("frame for another bar must be ignored")
	}
	stale := p.frameAt(now)
	p.SetLoop(false)
	p.SetLoop(true)
	if cmd := p.Update(stale); cmd != nil {
		t.Fatalf("stale frame must be ignored after a mode switch")
	}
	if p.Driver().Sweep() != 0 {
		t.Fatalf("stale frame advanced the sweep")
	}
}

func TestProgressBar_CloseDropsPendingFrames(t *testing.T) {
	p := newBar(t, bar.WithLoop(100*time.Millisecond))
	p.Init()
	pending := p.frameAt(time.Now())
	p.Close()

	if cmd := p.Update(pending); cmd != nil {
		t.Fatalf("no frames after teardown")
	}
	if p.Driver().Cycles() != 0 || p.Driver().Sweep() != 0 {
		t.Fatalf("state mutated after teardown")
	}
	if cmd := p.SetProgress(0.5); cmd != nil {
		t.Fatalf("closed bar must not schedule frames")
	}
}

func TestProgressBar_MeasureAndView(t *testing.T) {
	var seen []layout.Measurement
	p := newBar(t,
		bar.WithProgress(1),
		bar.WithBorder(0, "", 0),
		bar.WithWidth(layout.Percent(50)),
		bar.WithOnLayout(func(m layout.Measurement) { seen = append(seen, m) }),
	)

	if v := p.View(); v != "" {
		t.Fatalf("expected empty view before layout, got %q", v)
	}
	p.Measure(40, 10)
	if p.Width() != 20 {
		t.Fatalf("expected resolved width 20, got %v", p.Width())
	}
	if len(seen) != 1 || seen[0].Width != 40 {
		t.Fatalf("expected OnLayout with width 40, got %+v", seen)
	}
	if v := p.View(); !strings.Contains(v, "█") {
		t.Fatalf("expected filled bar, got %q", v)
	}
}

func TestProgressBar_MeasureStartsNoMotion(t *testing.T) {
	p := newBar(t, bar.WithProgress(0.5))
	p.Measure(80, 24)
	p.Measure(60, 24)
	if p.Driver().Animating() {
		t.Fatalf("expected a layout change to leave the bar at rest")
	}
	if p.Width() != 60 {
		t.Fatalf("expected the latest measurement to win, got %v", p.Width())
	}
}

func TestProgressBar_SetConfig(t *testing.T) {
	p := newBar(t, bar.WithAnimated(false))
	cfg := p.Driver().Config()
	cfg.Width = layout.Absolute(12)
	cfg.Progress = 0.5
	if _, err := p.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if p.Width() != 12 || p.Driver().Progress() != 0.5 {
		t.Fatalf("config not applied: width=%v progress=%v", p.Width(), p.Driver().Progress())
	}

	cfg.AnimationType = "bounce"
	if _, err := p.SetConfig(cfg); err == nil {
		t.Fatalf("expected invalid config to be rejected")
	}
}

func TestNewProgressBar_InvalidConfig(t *testing.T) {
	if _, err := NewProgressBar(bar.New(bar.WithLineCap("butt"))); err == nil {
		t.Fatalf("expected error")
	}
}
