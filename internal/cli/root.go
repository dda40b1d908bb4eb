package cli

import (
	"github.com/pablasso/pbar/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "pbar",
	Short: "Animated terminal progress bars",
	Long: `pbar draws horizontal progress bars that tween toward new values, loop when
no endpoint is known and resolve percentage widths against the terminal.

Run without a command to open the gallery.`,
	Version:       version.Version,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Launch(launchOptions())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Gallery config file (YAML); defaults to ./pbar.yaml when present")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(pipeCmd)
}

func launchOptions() LaunchOptions {
	return LaunchOptions{
		ConfigPath: configPath,
		LogFile:    logFile,
		LogLevel:   logLevel,
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
