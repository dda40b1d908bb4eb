package demo

import (
	"fmt"
	"strings"
	"time"
)

// Preset controls demo playback pacing.
type Preset string

const (
	PresetQuick  Preset = "quick"
	PresetMedium Preset = "medium"
	PresetSlow   Preset = "slow"
)

func ParsePreset(value string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(value))) {
	case PresetQuick, PresetMedium, PresetSlow:
		return Preset(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo preset %q (valid: quick, medium, slow)", value)
	}
}

type presetSettings struct {
	Interval   time.Duration
	StartDelay time.Duration
	LoopPhase  time.Duration
}

func settingsForPreset(preset Preset) (presetSettings, error) {
	switch preset {
	case PresetQuick:
		return presetSettings{
			Interval:   100 * time.Millisecond,
			StartDelay: 200 * time.Millisecond,
			LoopPhase:  1500 * time.Millisecond,
		}, nil
	case PresetMedium:
		return presetSettings{
			Interval:   300 * time.Millisecond,
			StartDelay: time.Second,
			LoopPhase:  3 * time.Second,
		}, nil
	case PresetSlow:
		return presetSettings{
			Interval:   time.Second,
			StartDelay: 2 * time.Second,
			LoopPhase:  6 * time.Second,
		}, nil
	default:
		return presetSettings{}, fmt.Errorf("unknown demo preset %q", preset)
	}
}

// Config controls demo playback behavior.
type Config struct {
	Preset   Preset
	Scenario Scenario

	Interval   time.Duration
	StartDelay time.Duration
	LoopPhase  time.Duration

	// MaxStep bounds one random forward move.
	MaxStep float64
	Seed    int64
}

const defaultMaxStep = 1.0 / 3

// NewConfig computes a playback config for a preset and scenario.
func NewConfig(preset Preset, scenario Scenario) (Config, error) {
	settings, err := settingsForPreset(preset)
	if err != nil {
		return Config{}, err
	}
	if _, err := ParseScenario(string(scenario)); err != nil {
		return Config{}, err
	}
	return Config{
		Preset:     preset,
		Scenario:   scenario,
		Interval:   settings.Interval,
		StartDelay: settings.StartDelay,
		LoopPhase:  settings.LoopPhase,
		MaxStep:    defaultMaxStep,
		Seed:       time.Now().UnixNano(),
	}, nil
}
