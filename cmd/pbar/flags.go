package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pablasso/pbar/internal/cli"
	"github.com/pablasso/pbar/internal/demo"
	"github.com/pablasso/pbar/internal/tui"
)

type parseResult struct {
	Launch      cli.LaunchOptions
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("pbar", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", "", "Gallery config file (YAML); defaults to ./pbar.yaml when present")
	logFile := fs.String("log-file", "", "Write logs to this file")
	logLevel := fs.String("log-level", "info", "Log level: trace|debug|info|warn|error")
	demoEnabled := fs.Bool("demo", false, "Start demo playback (auto-start)")
	demoMode := fs.String("demo-mode", string(demo.ModeFlagged), "Demo mode: flagged|all")
	demoPreset := fs.String("demo-preset", string(demo.PresetMedium), "Demo preset: quick|medium|slow")
	demoScenario := fs.String("demo-scenario", string(demo.ScenarioSteady), "Demo scenario: steady|jitter|stall")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: pbar [flags]")
		fmt.Fprintln(&b, "       pbar <command> [flags]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "pbar is an animated terminal progress bar gallery.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("positional args are not supported\n\n%s", usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	launch := cli.LaunchOptions{
		ConfigPath: *configPath,
		LogFile:    *logFile,
		LogLevel:   *logLevel,
	}

	var demoFlagProvided bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "demo-mode", "demo-preset", "demo-scenario":
			demoFlagProvided = true
		}
	})

	if !*demoEnabled && demoFlagProvided {
		return parseResult{}, fmt.Errorf("--demo-mode/--demo-preset/--demo-scenario require --demo\n\n%s", usage())
	}

	if !*demoEnabled {
		return parseResult{Launch: launch}, nil
	}

	mode, err := demo.ParseMode(*demoMode)
	if err != nil {
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	preset, err := demo.ParsePreset(*demoPreset)
	if err != nil {
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	scenario, err := demo.ParseScenario(*demoScenario)
	if err != nil {
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	launch.Demo = &tui.DemoOptions{
		Mode:     mode,
		Preset:   preset,
		Scenario: scenario,
	}
	return parseResult{Launch: launch}, nil
}
