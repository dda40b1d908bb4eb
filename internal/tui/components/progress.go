package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/pablasso/pbar/internal/bar"
	"github.com/pablasso/pbar/internal/layout"
	"github.com/pablasso/pbar/internal/paint"
)

// DefaultFPS is the frame rate used while a bar is animating.
const DefaultFPS = 60

// FrameMsg advances one ProgressBar by a frame. Frames carrying another
// bar's ID or a stale tag are ignored.
type FrameMsg struct {
	ID   string
	Tag  int
	Time time.Time
}

// ProgressBar binds a bar.Driver and layout.Resolver to the Bubble Tea frame
// loop. Frames are only scheduled while something is moving.
type ProgressBar struct {
	ID string

	tag     int
	running bool
	last    time.Time
	frame   time.Duration

	driver  *bar.Driver
	layout  *layout.Resolver
	painter *paint.Painter
	log     hclog.Logger
}

// ProgressOption configures a ProgressBar.
type ProgressOption func(*ProgressBar)

// WithLogger sets the logger for the bar and its driver.
func WithLogger(l hclog.Logger) ProgressOption {
	return func(p *ProgressBar) { p.log = l }
}

// WithPainter sets the painter used by View.
func WithPainter(pt *paint.Painter) ProgressOption {
	return func(p *ProgressBar) { p.painter = pt }
}

// WithFPS sets the frame rate.
func WithFPS(fps int) ProgressOption {
	return func(p *ProgressBar) {
		if fps > 0 {
			p.frame = time.Second / time.Duration(fps)
		}
	}
}

// NewProgressBar creates a bar from cfg. Invalid configs are rejected.
func NewProgressBar(cfg bar.Config, opts ...ProgressOption) (*ProgressBar, error) {
	p := &ProgressBar{
		ID:    uuid.NewString(),
		frame: time.Second / DefaultFPS,
		log:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("bar", p.ID[:8])

	if p.painter == nil {
		pt, err := paint.New(paint.DefaultOptions())
		if err != nil {
			return nil, err
		}
		p.painter = pt
	}

	d, err := bar.NewDriver(cfg, p.log)
	if err != nil {
		return nil, err
	}
	p.driver = d
	p.layout = layout.NewResolver(cfg.Width, cfg.OnLayout)
	return p, nil
}

// Driver exposes the animation driver.
func (p *ProgressBar) Driver() *bar.Driver { return p.driver }

// Width returns the resolved width.
func (p *ProgressBar) Width() float64 { return p.layout.Resolve() }

// Init starts the frame loop when the bar begins animated, e.g. looping.
func (p *ProgressBar) Init() tea.Cmd {
	return p.kick()
}

// SetProgress sets the target progress and starts frames if a tween began.
func (p *ProgressBar) SetProgress(v float64) tea.Cmd {
	if err := p.driver.SetProgress(v); err != nil {
		p.log.Debug("progress ignored", "error", err)
		return nil
	}
	return p.kick()
}

// IncrProgress nudges the target by delta.
func (p *ProgressBar) IncrProgress(delta float64) tea.Cmd {
	return p.SetProgress(bar.Clamp(p.driver.Config().Progress + delta))
}

// SetLoop toggles the looping sweep. The tag changes so frames scheduled for
// the previous mode are dropped.
func (p *ProgressBar) SetLoop(on bool) tea.Cmd {
	if err := p.driver.SetLoop(on); err != nil {
		p.log.Debug("loop toggle ignored", "error", err)
		return nil
	}
	p.running = false
	return p.kick()
}

// SetAnimated toggles tweened progress changes.
func (p *ProgressBar) SetAnimated(on bool) {
	if err := p.driver.SetAnimated(on); err != nil {
		p.log.Debug("animated toggle ignored", "error", err)
	}
}

// SetConfig applies new options.
func (p *ProgressBar) SetConfig(cfg bar.Config) (tea.Cmd, error) {
	if err := p.driver.SetConfig(cfg); err != nil {
		return nil, err
	}
	p.layout.SetDeclared(cfg.Width)
	p.running = false
	return p.kick(), nil
}

// Measure reports the parent's width and height. The bar's OnLayout callback
// receives the measurement unchanged.
func (p *ProgressBar) Measure(width, height int) {
	p.layout.Measure(layout.Measurement{Width: float64(width), Height: float64(height)})
}

// Close tears the bar down. Pending frames become stale and the driver
// refuses further changes.
func (p *ProgressBar) Close() {
	p.tag++
	p.running = false
	p.driver.Close()
}

// Update handles frame messages addressed to this bar.
func (p *ProgressBar) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != p.ID || frame.Tag != p.tag || p.driver.Closed() {
		return nil
	}

	dt := p.frame
	if !p.last.IsZero() && frame.Time.After(p.last) {
		dt = frame.Time.Sub(p.last)
	}
	p.last = frame.Time
	p.driver.Advance(dt)

	if !p.driver.Animating() {
		p.running = false
		return nil
	}
	return p.nextFrame()
}

// View paints the current frame.
func (p *ProgressBar) View() string {
	scene := bar.Render(p.driver.Frame(p.layout.Resolve()))
	out, err := p.painter.Paint(scene)
	if err != nil {
		p.log.Error("paint failed", "error", err)
		return ""
	}
	return out
}

// kick starts a new frame loop if the driver is moving and no loop runs.
func (p *ProgressBar) kick() tea.Cmd {
	if p.running || !p.driver.Animating() {
		return nil
	}
	p.running = true
	p.tag++
	p.last = time.Time{}
	return p.nextFrame()
}

func (p *ProgressBar) nextFrame() tea.Cmd {
	id, tag := p.ID, p.tag
	return tea.Tick(p.frame, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Tag: tag, Time: t}
	})
}
