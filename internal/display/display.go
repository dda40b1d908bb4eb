// Package display draws a single bar inline on a plain terminal, redrawing
// its line in place. It is used when output is piped or the full gallery is
// not wanted.
package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pablasso/pbar/internal/bar"
	"github.com/pablasso/pbar/internal/paint"
)

// Display manages the inline bar line.
type Display struct {
	mu       sync.Mutex
	writer   io.Writer
	driver   *bar.Driver
	painter  *paint.Painter
	width    float64
	label    string
	frame    time.Duration
	start    time.Time
	last     time.Time
	ticker   *time.Ticker
	done     chan struct{}
	wg       sync.WaitGroup // Ensures goroutine exits before Stop() returns
	active   bool
	lastLine string
}

// New creates a Display writing a bar of the given column width to w. The
// bar is drawn on one row, without a border.
func New(w io.Writer, cfg bar.Config, width int, fps int) (*Display, error) {
	cfg.BorderWidth = 0
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	d, err := bar.NewDriver(cfg, nil)
	if err != nil {
		return nil, err
	}
	painter, err := paint.New(paint.Options{CellHeight: cfg.Height})
	if err != nil {
		return nil, err
	}
	if fps <= 0 {
		fps = 30
	}
	return &Display{
		writer:  w,
		driver:  d,
		painter: painter,
		width:   float64(width),
		frame:   time.Second / time.Duration(fps),
		done:    make(chan struct{}),
	}, nil
}

// Driver exposes the animation driver. Callers must not use it while the
// display runs; use the Display methods instead.
func (d *Display) Driver() *bar.Driver { return d.driver }

// Start begins the redraw loop.
func (d *Display) Start() {
	d.mu.Lock()
	if d.active {
		d.mu.Unlock()
		return
	}
	d.active = true
	d.start = time.Now()
	d.last = d.start
	d.ticker = time.NewTicker(d.frame)
	d.wg.Add(1)
	d.mu.Unlock()

	go d.updateLoop()
}

// Stop halts the redraw loop and leaves the final frame on its own line.
// Blocks until the update goroutine has exited.
func (d *Display) Stop() {
	d.mu.Lock()
	if !d.active {
		d.mu.Unlock()
		return
	}
	d.active = false
	d.mu.Unlock()

	d.ticker.Stop()
	close(d.done)
	d.wg.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	if line, err := d.formatLine(time.Since(d.start)); err == nil {
		d.lastLine = line
	}
	d.driver.Close()
	fmt.Fprintf(d.writer, "\r\033[K%s\n", d.lastLine)
}

// SetProgress sets the target progress.
func (d *Display) SetProgress(p float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.driver.SetProgress(p)
}

// SetLoop toggles the looping sweep.
func (d *Display) SetLoop(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.driver.SetLoop(on)
}

// SetLabel sets the text shown after the bar.
func (d *Display) SetLabel(label string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.label = label
}

// Settled reports whether nothing is moving.
func (d *Display) Settled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.driver.Animating()
}

// Looping reports whether the sweep is running.
func (d *Display) Looping() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.driver.Looping()
}

// updateLoop periodically advances and renders the bar.
func (d *Display) updateLoop() {
	defer d.wg.Done()
	d.render(time.Now())
	for {
		select {
		case now := <-d.ticker.C:
			d.render(now)
		case <-d.done:
			return
		}
	}
}

// render advances the driver to now and draws the line if it changed.
func (d *Display) render(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if now.After(d.last) {
		d.driver.Advance(now.Sub(d.last))
		d.last = now
	}
	line, err := d.formatLine(now.Sub(d.start))
	if err != nil || line == d.lastLine {
		return
	}
	d.lastLine = line

	// Move to start of line, clear it, write new content
	fmt.Fprintf(d.writer, "\r\033[K%s", line)
}

// formatLine paints the bar and appends the label, percentage and elapsed
// time. Callers hold mu.
func (d *Display) formatLine(elapsed time.Duration) (string, error) {
	out, err := d.painter.Paint(bar.Render(d.driver.Frame(d.width)))
	if err != nil {
		return "", err
	}

	status := fmt.Sprintf("%3.0f%%", d.driver.Progress()*100)
	if d.driver.Looping() {
		status = " ..."
	}
	line := fmt.Sprintf("%s %s │ ⏱ %s", out, status, formatDuration(elapsed))
	if d.label != "" {
		line += " │ " + d.label
	}
	return line, nil
}

// PrintAbove prints a message above the bar line.
func (d *Display) PrintAbove(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.writer, "\r\033[K"+format+"\n", args...)
	if d.lastLine != "" {
		fmt.Fprint(d.writer, d.lastLine)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
