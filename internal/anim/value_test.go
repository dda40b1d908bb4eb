package anim

import (
	"errors"
	"math"
	"testing"
	"time"
)

const ms = time.Millisecond

func TestValue_TimingTweenReachesTarget(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(1, Tween{Kind: KindTiming, Duration: 300 * ms}, nil)

	v.Advance(150 * ms)
	if got := v.Current(); got <= 0 || got >= 1 {
		t.Fatalf("expected sample strictly between 0 and 1 at 150ms, got %v", got)
	}
	if !v.Animating() {
		t.Fatalf("expected tween in flight at 150ms")
	}

	v.Advance(150 * ms)
	if got := v.Current(); got != 1 {
		t.Fatalf("expected 1 at 300ms, got %v", got)
	}
	if v.Animating() {
		t.Fatalf("expected tween finished at 300ms")
	}
}

func TestValue_SetSnapsWithoutFrames(t *testing.T) {
	v := NewValue(0)
	v.Set(0.7)

	if v.Current() != 0.7 {
		t.Fatalf("expected 0.7, got %v", v.Current())
	}
	if v.Animating() {
		t.Fatalf("expected no tween after Set")
	}
}

func TestValue_RetargetStartsFromLiveValue(t *testing.T) {
	v := NewValue(0)
	tw := Tween{Kind: KindTiming, Duration: 1000 * ms, Easing: EaseLinear}
	v.AnimateTo(1, tw, nil)
	v.Advance(400 * ms)

	mid := v.Current()
	if math.Abs(mid-0.4) > 1e-9 {
		t.Fatalf("expected 0.4 mid-tween, got %v", mid)
	}

	v.AnimateTo(0.2, tw, nil)
	if v.Current() != mid {
		t.Fatalf("retarget must not jump, got %v want %v", v.Current(), mid)
	}

	prev := v.Current()
	for i := 0; i < 10; i++ {
		v.Advance(100 * ms)
		if v.Current() > prev+1e-9 {
			t.Fatalf("value moved toward the old target: %v after %v", v.Current(), prev)
		}
		prev = v.Current()
	}
	if v.Current() != 0.2 {
		t.Fatalf("expected to settle at 0.2, got %v", v.Current())
	}
}

func TestValue_CallbackResults(t *testing.T) {
	var results []Result
	record := func(r Result) { results = append(results, r) }

	v := NewValue(0)
	v.AnimateTo(1, Linear(100*ms), record)
	v.AnimateTo(0.5, Linear(100*ms), record)
	v.Advance(100 * ms)

	if len(results) != 2 {
		t.Fatalf("expected 2 callbacks, got %d", len(results))
	}
	if results[0].Finished {
		t.Errorf("superseded tween should report Finished=false")
	}
	if !results[1].Finished {
		t.Errorf("completed tween should report Finished=true")
	}
}

func TestValue_StopCancels(t *testing.T) {
	called := false
	v := NewValue(0)
	v.AnimateTo(1, Linear(100*ms), func(r Result) {
		called = true
		if r.Finished {
			t.Errorf("expected Finished=false on Stop")
		}
	})
	v.Advance(50 * ms)
	v.Stop()

	if !called {
		t.Fatalf("expected callback on Stop")
	}
	if v.Animating() {
		t.Fatalf("expected no tween after Stop")
	}
	at := v.Current()
	v.Advance(time.Second)
	if v.Current() != at {
		t.Fatalf("stopped value moved: %v -> %v", at, v.Current())
	}
}

func TestValue_AdvanceReturnsRemainder(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(1, Linear(1000*ms), nil)

	if rest := v.Advance(400 * ms); rest != 0 {
		t.Fatalf("expected no remainder mid-tween, got %v", rest)
	}
	if rest := v.Advance(700 * ms); rest != 100*ms {
		t.Fatalf("expected 100ms remainder, got %v", rest)
	}
	if rest := v.Advance(50 * ms); rest != 50*ms {
		t.Fatalf("expected full dt back at rest, got %v", rest)
	}
}

func TestValue_DelayHoldsStart(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(1, Tween{Kind: KindTiming, Duration: 100 * ms, Delay: 50 * ms, Easing: EaseLinear}, nil)
	v.Advance(40 * ms)
	if v.Current() != 0 {
		t.Fatalf("expected value held during delay, got %v", v.Current())
	}
	v.Advance(60 * ms)
	if math.Abs(v.Current()-0.5) > 1e-9 {
		t.Fatalf("expected 0.5, got %v", v.Current())
	}
}

func TestValue_SpringSettles(t *testing.T) {
	v := NewValue(0)
	finished := false
	v.AnimateTo(1, Tween{Kind: KindSpring}, func(r Result) { finished = r.Finished })

	v.Advance(100 * ms)
	if v.Current() <= 0 {
		t.Fatalf("expected spring to move, got %v", v.Current())
	}
	for i := 0; i < 300 && v.Animating(); i++ {
		v.Advance(16 * ms)
	}
	if !finished {
		t.Fatalf("expected spring to finish")
	}
	if v.Current() != 1 {
		t.Fatalf("expected spring to snap to 1, got %v", v.Current())
	}
}

func TestValue_DecaySettles(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(1, Tween{Kind: KindDecay, Deceleration: 0.99}, nil)

	v.Advance(100 * ms)
	got := v.Current()
	want := 1 - math.Exp(-0.01*100)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("decay sample = %v, want %v", got, want)
	}
	v.Advance(2 * time.Second)
	if v.Animating() || v.Current() != 1 {
		t.Fatalf("expected decay settled at 1, got %v animating=%v", v.Current(), v.Animating())
	}
}

func TestValue_ZeroDurationCompletesImmediately(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(1, Tween{Kind: KindTiming, Duration: 0}, nil)
	v.Advance(ms)
	if v.Current() != 1 || v.Animating() {
		t.Fatalf("expected immediate completion, got %v", v.Current())
	}
}

func TestValue_Interpolate(t *testing.T) {
	v := NewValue(0.5)
	tests := []struct {
		name    string
		in, out [2]float64
		want    float64
	}{
		{"identity", [2]float64{0, 1}, [2]float64{0, 1}, 0.5},
		{"scaled", [2]float64{0, 1}, [2]float64{-30, 100}, 35},
		{"clamped", [2]float64{0, 0.25}, [2]float64{0, 10}, 10},
		{"degenerate", [2]float64{1, 1}, [2]float64{3, 9}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Interpolate(tt.in, tt.out); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Interpolate(%v, %v) = %v, want %v", tt.in, tt.out, got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"timing", "Spring", " decay "} {
		if _, err := ParseKind(s); err != nil {
			t.Errorf("ParseKind(%q) unexpected error: %v", s, err)
		}
	}
	_, err := ParseKind("bounce")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestParseEasing(t *testing.T) {
	e, err := ParseEasing("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e(0) != 0 || e(1) != 1 {
		t.Fatalf("default easing must map 0->0 and 1->1")
	}
	if _, err := ParseEasing("wobble"); err == nil {
		t.Fatalf("expected error for unknown easing")
	}
}
