package bar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pablasso/pbar/internal/layout"
)

func TestRender_DeterminateFill(t *testing.T) {
	cfg := New(WithHeight(20), WithBorder(0, "", 0), WithColors("#139FEB", "#eee"), WithLineCap(CapSquare))
	got := Render(Frame{Config: cfg, Width: 200, Progress: 0.7})

	want := Scene{
		Width:  200,
		Height: 20,
		Track:  Rect{Width: 200, Height: 20, Color: "#eee"},
		Fill:   Rect{Width: 140, Height: 20, Color: "#139FEB"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scene mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_FillIsClampedProgressTimesWidth(t *testing.T) {
	cfg := New(WithBorder(0, "", 0))
	for _, p := range []float64{-1, 0, 0.25, 1, 1.4} {
		s := Render(Frame{Config: cfg, Width: 80, Progress: p})
		if want := Clamp(p) * 80; s.Fill.Width != want {
			t.Errorf("progress %v: fill width %v, want %v", p, s.Fill.Width, want)
		}
	}
}

func TestRender_ZeroWidthBeforeLayout(t *testing.T) {
	r := layout.NewResolver(layout.Full, nil)
	s := Render(Frame{Config: New(), Width: r.Resolve(), Progress: 1})
	if s.Fill.Width != 0 || s.Track.Width != 0 {
		t.Fatalf("expected empty bar before layout, got fill=%v track=%v", s.Fill.Width, s.Track.Width)
	}
}

func TestRender_RoundCapRadius(t *testing.T) {
	round := Render(Frame{Config: New(WithHeight(10)), Width: 50, Progress: 0.5})
	if round.Fill.Radius != 5 {
		t.Errorf("round cap radius = %v, want 5", round.Fill.Radius)
	}
	square := Render(Frame{Config: New(WithHeight(10), WithLineCap(CapSquare)), Width: 50, Progress: 0.5})
	if square.Fill.Radius != 0 {
		t.Errorf("square cap radius = %v, want 0", square.Fill.Radius)
	}
}

func TestRender_BorderInsetsSurface(t *testing.T) {
	cfg := New(WithBorder(2, "", AutoRadius), WithHeight(6))
	s := Render(Frame{Config: cfg, Width: 104, Progress: 0.5})

	if s.Border == nil {
		t.Fatalf("expected border")
	}
	if s.Border.Color != cfg.Color || s.Border.Radius != 3 {
		t.Errorf("unexpected border: %+v", *s.Border)
	}
	if s.Track.X != 2 || s.Track.Y != 2 || s.Track.Width != 100 {
		t.Errorf("unexpected track: %+v", s.Track)
	}
	if s.Fill.Width != 50 {
		t.Errorf("fill width = %v, want 50", s.Fill.Width)
	}
	if s.Height != 10 {
		t.Errorf("scene height = %v, want 10", s.Height)
	}
}

func TestRender_LoopGrow(t *testing.T) {
	cfg := New(WithLoop(1000*ms), WithBorder(0, "", 0))
	s := Render(Frame{Config: cfg, Width: 100, Progress: 0.9, Sweep: 0.3, Looping: true})
	if s.Fill.Width != 30 {
		t.Fatalf("grow fill = %v, want 30", s.Fill.Width)
	}
}

func TestRender_LoopSlide(t *testing.T) {
	cfg := New(WithLoopStyle(LoopSlide), WithBorder(0, "", 0))

	tests := []struct {
		sweep   float64
		x, w    float64
		comment string
	}{
		{0, 0, 0, "hidden left"},
		{0.5, 35, 30, "full block mid track"},
		{1, 100, 0, "hidden right"},
	}
	for _, tt := range tests {
		s := Render(Frame{Config: cfg, Width: 100, Sweep: tt.sweep, Looping: true})
		if !near(s.Fill.X, tt.x) || !near(s.Fill.Width, tt.w) {
			t.Errorf("%s: sweep %v got x=%v w=%v, want x=%v w=%v", tt.comment, tt.sweep, s.Fill.X, s.Fill.Width, tt.x, tt.w)
		}
	}
}

func TestRender_TextPositions(t *testing.T) {
	tests := []struct {
		overlay TextOverlay
		x       float64
		anchor  Align
	}{
		{TextOverlay{Text: "a", Align: AlignStart}, 10, AlignStart},
		{TextOverlay{Text: "a", Align: AlignMiddle}, 50, AlignMiddle},
		{TextOverlay{Text: "a", Align: AlignEnd}, 80, AlignEnd},
		{TextOverlay{Text: "a"}, 50, AlignMiddle},
		{TextOverlay{Text: "a", Align: AlignStart, Position: "25%"}, 25, AlignStart},
	}
	for _, tt := range tests {
		cfg := New(WithBorder(0, "", 0), WithHeight(20), WithText(tt.overlay))
		s := Render(Frame{Config: cfg, Width: 100})
		if s.Text == nil {
			t.Fatalf("expected text")
		}
		if s.Text.X != tt.x || s.Text.Anchor != tt.anchor || s.Text.Y != 10 {
			t.Errorf("%+v: got x=%v y=%v anchor=%v", tt.overlay, s.Text.X, s.Text.Y, s.Text.Anchor)
		}
	}
}

func TestRender_Pure(t *testing.T) {
	f := Frame{Config: New(WithText(TextOverlay{Text: "hello", FontWeight: "bold"})), Width: 90, Progress: 0.3}
	a, b := Render(f), Render(f)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("render not deterministic:\n%s", diff)
	}
	if !a.Text.Bold {
		t.Errorf("expected bold text")
	}
}

func TestRender_PercentPlaceholder(t *testing.T) {
	cfg := New(WithProgress(0.7), WithText(TextOverlay{Text: "done " + PercentPlaceholder}))
	s := Render(Frame{Config: cfg, Width: 50, Progress: 0.2})
	if s.Text.Content != "done 70%" {
		t.Fatalf("expected target percent in text, got %q", s.Text.Content)
	}
}
