package demo

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/pbar/internal/tui/msgs"
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Playback drives a demo feed into the TUI.
type Playback struct {
	Config Config
	Steps  []Step
}

// NewPlayback plans the feed for config.
func NewPlayback(config Config) (*Playback, error) {
	steps, err := Plan(config)
	if err != nil {
		return nil, err
	}
	return &Playback{Config: config, Steps: steps}, nil
}

// Run sends every step to program, waiting between them, then a DemoDoneMsg.
// It returns early when ctx is cancelled.
func (p *Playback) Run(ctx context.Context, program Sender) {
	if program == nil {
		return
	}

	start := time.Now()
	for _, step := range p.Steps {
		if !p.wait(ctx, step.Wait) {
			return
		}
		program.Send(step.Msg)
	}

	program.Send(msgs.DemoDoneMsg{
		Scenario: string(p.Config.Scenario),
		Duration: time.Since(start),
	})
}

func (p *Playback) wait(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
