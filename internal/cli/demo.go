package cli

import (
	"github.com/pablasso/pbar/internal/demo"
	"github.com/pablasso/pbar/internal/tui"
	"github.com/spf13/cobra"
)

var (
	demoScenario string
	demoPreset   string
	demoMode     string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the gallery with a simulated progress feed",
	Long: `Open the gallery and feed progress updates into its bars.

Scenarios:
  steady   Random forward steps until complete (default)
  jitter   Forward and backward moves that retarget tweens mid-flight
  stall    Climbs, switches to the looping sweep, then finishes

Presets:
  quick    100ms between updates
  medium   300ms between updates (default)
  slow     1s between updates

Modes:
  flagged  Drive only bars marked demo in the config (default)
  all      Drive every bar`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoScenario, "scenario", string(demo.ScenarioSteady),
		"Demo scenario: steady, jitter, stall")
	demoCmd.Flags().StringVar(&demoPreset, "preset", string(demo.PresetMedium),
		"Playback pacing: quick, medium, slow")
	demoCmd.Flags().StringVar(&demoMode, "mode", string(demo.ModeFlagged),
		"Bars to drive: flagged, all")
}

func runDemo(cmd *cobra.Command, args []string) error {
	opts, err := demoOptions(demoScenario, demoPreset, demoMode)
	if err != nil {
		return err
	}
	launch := launchOptions()
	launch.Demo = opts
	return Launch(launch)
}

func demoOptions(scenario, preset, mode string) (*tui.DemoOptions, error) {
	s, err := demo.ParseScenario(scenario)
	if err != nil {
		return nil, err
	}
	p, err := demo.ParsePreset(preset)
	if err != nil {
		return nil, err
	}
	m, err := demo.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return &tui.DemoOptions{Mode: m, Preset: p, Scenario: s}, nil
}
