// Package main implements tuipanel, a terminal-cell panel compositor.
// It draws overlapping bordered panels on the terminal's alternate screen
// and can replay .tape scripts of panel operations.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	configFile string
	logFile    string
	debugMode  bool
	strictMode bool
	maxPanels  int
	hold       time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuipanel",
		Short: "Terminal-cell panel compositor",
		Long: `tuipanel - terminal-cell panel compositor

Draws rectangular, optionally bordered panels on the alternate screen.
Every write is drawn immediately and remembered, so the whole picture can
be repainted from memory in z-order.

Run without arguments for a short demo.`,
		Example: `  # Run the demo
  tuipanel

  # Keep the demo on screen for ten seconds
  tuipanel --hold 10s

  # Reject out-of-range writes instead of clamping them
  tuipanel --strict

  # Play a script
  tuipanel play layout.tape

  # Check a script without drawing anything
  tuipanel validate layout.tape

  # Show the effective configuration
  tuipanel config show`,
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file to use (default: $XDG_CONFIG_HOME/tuipanel/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default: from config or $XDG_STATE_HOME/tuipanel/tuipanel.log)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "Reject writes outside a panel instead of clamping them")
	rootCmd.PersistentFlags().IntVar(&maxPanels, "max-panels", 0, "Maximum number of panels (default: from config or 255, max: 65535)")
	rootCmd.PersistentFlags().DurationVar(&hold, "hold", 0, "How long to keep the picture on screen before exiting (default: 3s)")

	playCmd := &cobra.Command{
		Use:   "play <file.tape>",
		Short: "Run a tape script against the terminal",
		Long: `Execute a tape script of panel operations on the alternate screen

Each line is one command: Panel, Write, Border, NoBorder, Move, Resize,
Top, Bottom, Remove, Refresh or Sleep. Colors may be #rrggbb or a name
from the [palette] section of the config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTape(cmd.Context(), args[0])
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <file.tape>",
		Short: "Validate a tape script without running it",
		Long:  `Check that a tape script parses and every command has valid arguments`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return validateTapeFile(args[0])
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tuipanel configuration",
		Long:  `Manage the tuipanel configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the tuipanel configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Load, validate and print the configuration as TOML

Missing keys are shown with their defaults.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfig()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long:  `Overwrite the tuipanel configuration file with default settings`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configShowCmd, configResetCmd)
	rootCmd.AddCommand(playCmd, validateCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
