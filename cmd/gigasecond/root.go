package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/gigasecond/internal/milestone"
)

var rootCmd = &cobra.Command{
	Use:   "gigasecond",
	Short: "Live countdown to your gigasecond milestones",
	Long: `Gigasecond shows how many seconds you have been alive and counts down
to your next milestones: multiples of one billion seconds since birth.

With no birth date configured, it opens on a prompt asking for one.

Examples:
  gigasecond --birth 1990-01-01
  gigasecond --birth "1990-01-01 08:30" --milestone 1b --milestone 1.5b
  gigasecond report --birth 1990-01-01 --format table`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runLive,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError writes err to stderr, with a hint for input errors.
func printError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, err)

	if errors.Is(err, milestone.ErrInvalidInput) {
		color.New(color.Faint).Fprintln(os.Stderr,
			"Dates look like 1990-01-01 or \"1990-01-01 08:30\"; milestones like 1000000000, 1.5e9 or 2b.")
	}
}

func init() {
	addInputFlags(rootCmd)
	rootCmd.Flags().Duration("refresh", 0, "Refresh interval (default from config, 1s)")
	rootCmd.Flags().Bool("no-age", false, "Hide the live age panel")
	rootCmd.Flags().Bool("no-countdown", false, "Hide the milestone countdowns")
	rootCmd.Flags().String("log-file", "", `Diagnostic log file ("-" disables logging)`)
	rootCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/gigasecond/config.yaml)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
