package main

import (
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/gigasecond/internal/report"
)

var reportClock = clockwork.NewRealClock()

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a single milestone snapshot and exit",
	Long: `Print elapsed seconds since birth and the remaining seconds to each
milestone, computed once at the current instant.

Examples:
  gigasecond report --birth 1990-01-01
  gigasecond report --birth "1990-01-01 08:30" --milestone 1.5b --format table
  gigasecond report --format yaml`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	addInputFlags(reportCmd)
	reportCmd.Flags().StringP("format", "f", string(report.FormatText), "Output format: text, table, yaml")
}

func runReport(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	now := reportClock.Now()
	timer, err := s.timer(now)
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), timer.Snapshot(now.In(s.Location)), format)
}
