package main

import (
	"strings"
	"testing"

	"github.com/pablasso/pbar/internal/demo"
)

func TestParseArgs_NoArgs(t *testing.T) {
	res, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.ShowHelp {
		t.Fatalf("expected ShowHelp=false")
	}
	if res.ShowVersion {
		t.Fatalf("expected ShowVersion=false")
	}
	if res.Launch.Demo != nil {
		t.Fatalf("expected demo disabled")
	}
	if res.Launch.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", res.Launch.LogLevel)
	}
}

func TestParseArgs_DemoDefaults(t *testing.T) {
	res, err := parseArgs([]string{"--demo"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Launch.Demo == nil {
		t.Fatalf("expected demo enabled")
	}
	if res.Launch.Demo.Preset != demo.PresetMedium {
		t.Fatalf("expected preset %q, got %q", demo.PresetMedium, res.Launch.Demo.Preset)
	}
	if res.Launch.Demo.Mode != demo.ModeFlagged {
		t.Fatalf("expected mode %q, got %q", demo.ModeFlagged, res.Launch.Demo.Mode)
	}
	if res.Launch.Demo.Scenario != demo.ScenarioSteady {
		t.Fatalf("expected scenario %q, got %q", demo.ScenarioSteady, res.Launch.Demo.Scenario)
	}
}

func TestParseArgs_DemoWithPresetAndScenario(t *testing.T) {
	res, err := parseArgs([]string{"--demo", "--demo-preset=quick", "--demo-scenario=jitter", "--demo-mode=all"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Launch.Demo == nil {
		t.Fatalf("expected demo enabled")
	}
	if res.Launch.Demo.Preset != demo.PresetQuick {
		t.Fatalf("expected preset %q, got %q", demo.PresetQuick, res.Launch.Demo.Preset)
	}
	if res.Launch.Demo.Scenario != demo.ScenarioJitter {
		t.Fatalf("expected scenario %q, got %q", demo.ScenarioJitter, res.Launch.Demo.Scenario)
	}
	if res.Launch.Demo.Mode != demo.ModeAll {
		t.Fatalf("expected mode %q, got %q", demo.ModeAll, res.Launch.Demo.Mode)
	}
}

func TestParseArgs_ConfigAndLogging(t *testing.T) {
	res, err := parseArgs([]string{"--config", "bars.yaml", "--log-file=pbar.log", "--log-level=debug"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Launch.ConfigPath != "bars.yaml" {
		t.Fatalf("expected config path, got %q", res.Launch.ConfigPath)
	}
	if res.Launch.LogFile != "pbar.log" || res.Launch.LogLevel != "debug" {
		t.Fatalf("unexpected logging options %+v", res.Launch)
	}
}

func TestParseArgs_DemoFlagsWithoutDemoErrors(t *testing.T) {
	for _, arg := range []string{"--demo-preset=quick", "--demo-mode=all", "--demo-scenario=stall"} {
		_, err := parseArgs([]string{arg})
		if err == nil {
			t.Fatalf("%s: expected error", arg)
		}
		if !strings.Contains(err.Error(), "require --demo") {
			t.Fatalf("expected error to mention require --demo, got: %s", err.Error())
		}
	}
}

func TestParseArgs_InvalidPresetErrors(t *testing.T) {
	_, err := parseArgs([]string{"--demo", "--demo-preset=nope"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid demo preset") {
		t.Fatalf("expected invalid preset error, got: %s", err.Error())
	}
}

func TestParseArgs_InvalidModeErrors(t *testing.T) {
	_, err := parseArgs([]string{"--demo", "--demo-mode=nope"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid demo mode") {
		t.Fatalf("expected invalid mode error, got: %s", err.Error())
	}
}

func TestParseArgs_InvalidScenarioErrors(t *testing.T) {
	_, err := parseArgs([]string{"--demo", "--demo-scenario=flaky"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid demo scenario") {
		t.Fatalf("expected invalid scenario error, got: %s", err.Error())
	}
}

func TestParseArgs_PositionalArgsError(t *testing.T) {
	_, err := parseArgs([]string{"--demo", "foo"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "positional args are not supported") {
		t.Fatalf("expected positional args error, got: %s", err.Error())
	}
}

func TestParseArgs_VersionLong(t *testing.T) {
	res, err := parseArgs([]string{"--version"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowVersion {
		t.Fatalf("expected ShowVersion=true")
	}
}

func TestParseArgs_VersionShort(t *testing.T) {
	res, err := parseArgs([]string{"-v"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowVersion {
		t.Fatalf("expected ShowVersion=true")
	}
}

func TestParseArgs_Help(t *testing.T) {
	res, err := parseArgs([]string{"--help"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowHelp {
		t.Fatalf("expected ShowHelp=true")
	}
	if !strings.Contains(res.HelpText, "pbar is an animated terminal progress bar gallery.") {
		t.Fatalf("expected help text to include summary line, got: %s", res.HelpText)
	}
	for _, flag := range []string{"-demo", "-config", "-log-file", "-version"} {
		if !strings.Contains(res.HelpText, flag) {
			t.Fatalf("expected help text to include %s, got: %s", flag, res.HelpText)
		}
	}
}
