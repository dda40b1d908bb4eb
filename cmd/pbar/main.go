package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pablasso/pbar/internal/cli"
	"github.com/pablasso/pbar/internal/version"
)

func main() {
	// No args or only flags launch the gallery; anything else is a subcommand
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	res, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	switch {
	case res.ShowHelp:
		fmt.Print(res.HelpText)
		return
	case res.ShowVersion:
		fmt.Printf("pbar %s (%s, %s)\n", version.Version, version.CommitSHA, version.BuildDate)
		return
	}

	if err := cli.Launch(res.Launch); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
