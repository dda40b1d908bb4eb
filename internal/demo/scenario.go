package demo

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/pbar/internal/tui/msgs"
)

// Scenario shapes the progress feed.
type Scenario string

const (
	// ScenarioSteady climbs by random steps until complete.
	ScenarioSteady Scenario = "steady"
	// ScenarioJitter moves forward and back, retargeting tweens mid-flight.
	ScenarioJitter Scenario = "jitter"
	// ScenarioStall climbs, switches to an indeterminate phase, then finishes.
	ScenarioStall Scenario = "stall"
)

func ParseScenario(value string) (Scenario, error) {
	switch Scenario(strings.ToLower(strings.TrimSpace(value))) {
	case ScenarioSteady, ScenarioJitter, ScenarioStall:
		return Scenario(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo scenario %q (valid: steady, jitter, stall)", value)
	}
}

// Step is one message of the feed, sent after Wait.
type Step struct {
	Wait time.Duration
	Msg  tea.Msg
}

const (
	maxJitterSteps = 60
	stallAt        = 0.4
)

// Plan builds the full feed for a config. The same seed yields the same feed.
func Plan(cfg Config) ([]Step, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	maxStep := cfg.MaxStep
	if maxStep <= 0 {
		maxStep = defaultMaxStep
	}

	var steps []Step
	progress := 0.0
	push := func(wait time.Duration, p float64) {
		progress = min(1, max(0, p))
		steps = append(steps, Step{Wait: wait, Msg: msgs.ProgressMsg{Progress: progress}})
	}
	climb := func(until float64) {
		for progress < until {
			wait := cfg.Interval
			if len(steps) == 0 {
				wait = cfg.StartDelay
			}
			push(wait, min(until, progress+rng.Float64()*maxStep))
		}
	}

	switch cfg.Scenario {
	case ScenarioSteady:
		climb(1)
	case ScenarioJitter:
		for i := 0; progress < 1; i++ {
			wait := cfg.Interval / 2
			if i == 0 {
				wait = cfg.StartDelay
			}
			switch {
			case i >= maxJitterSteps:
				push(wait, 1)
			case i%3 == 2:
				push(wait, progress-rng.Float64()*maxStep/2)
			default:
				push(wait, progress+rng.Float64()*maxStep)
			}
		}
	case ScenarioStall:
		climb(stallAt)
		steps = append(steps,
			Step{Wait: cfg.Interval, Msg: msgs.LoopMsg{On: true}},
			Step{Wait: cfg.LoopPhase, Msg: msgs.LoopMsg{On: false}},
		)
		climb(1)
	default:
		return nil, fmt.Errorf("unknown demo scenario %q", cfg.Scenario)
	}
	return steps, nil
}
