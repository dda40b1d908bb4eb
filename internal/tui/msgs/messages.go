// Package msgs defines message types shared by the gallery and demo playback.
package msgs

import "time"

// ProgressMsg sets the target progress of demo-driven bars.
type ProgressMsg struct {
	Progress float64
}

// LoopMsg turns the looping sweep of demo-driven bars on or off.
type LoopMsg struct {
	On bool
}

// DemoDoneMsg signals that demo playback has sent its last step.
type DemoDoneMsg struct {
	Scenario string
	Duration time.Duration
}
