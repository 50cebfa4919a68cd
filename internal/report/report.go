// Package report renders a one-off milestone snapshot for non-interactive use.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"go.yaml.in/yaml/v3"

	"github.com/ShayCichocki/gigasecond/internal/milestone"
)

// Format selects the report output.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatTable, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q: want text, table or yaml", s)
	}
}

const dateTimeLayout = "2006-01-02 15:04:05 MST"

// Write renders snap to w in the given format.
func Write(w io.Writer, snap milestone.Snapshot, format Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, snap)
	case FormatTable:
		return writeTable(w, snap)
	case FormatYAML:
		return writeYAML(w, snap)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, snap milestone.Snapshot) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Born:    %s\n", snap.Birth.Format(dateTimeLayout))
	fmt.Fprintf(&b, "Age:     %s seconds (%s)\n", humanize.Comma(snap.Elapsed), Clock(snap.Age))

	for _, st := range snap.Statuses {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Milestone %s (%s seconds)\n", st.Milestone.Label(), st.Milestone)
		fmt.Fprintf(&b, "  occurs on: %s\n", st.Target.Format(dateTimeLayout))
		fmt.Fprintf(&b, "  %s\n", Countdown(st))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTable(w io.Writer, snap milestone.Snapshot) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{"Milestone", "Seconds", "Date", "Remaining", "Progress"})

	for _, st := range snap.Statuses {
		table.Append([]string{
			st.Milestone.Label(),
			st.Milestone.String(),
			st.Target.Format(dateTimeLayout),
			Countdown(st),
			fmt.Sprintf("%.1f%%", st.Progress),
		})
	}

	table.SetFooter([]string{"Age", humanize.Comma(snap.Elapsed), snap.Birth.Format(dateTimeLayout), Clock(snap.Age), ""})
	table.Render()
	return nil
}

type yamlReport struct {
	Birth      time.Time       `yaml:"birth"`
	Now        time.Time       `yaml:"now"`
	Elapsed    int64           `yaml:"elapsed_seconds"`
	Milestones []yamlMilestone `yaml:"milestones"`
}

type yamlMilestone struct {
	Seconds   int64     `yaml:"seconds"`
	Label     string    `yaml:"label"`
	Date      time.Time `yaml:"date"`
	Remaining int64     `yaml:"remaining_seconds"`
	Progress  float64   `yaml:"progress_percent"`
	Urgency   string    `yaml:"urgency"`
}

func writeYAML(w io.Writer, snap milestone.Snapshot) error {
	out := yamlReport{
		Birth:   snap.Birth,
		Now:     snap.Now,
		Elapsed: snap.Elapsed,
	}
	for _, st := range snap.Statuses {
		out.Milestones = append(out.Milestones, yamlMilestone{
			Seconds:   st.Milestone.Seconds(),
			Label:     st.Milestone.Label(),
			Date:      st.Target,
			Remaining: st.Remaining,
			Progress:  st.Progress,
			Urgency:   string(st.Urgency),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return enc.Close()
}

// Clock renders a breakdown as "N days, hh:mm:ss".
func Clock(b milestone.Breakdown) string {
	return fmt.Sprintf("%s days, %02d:%02d:%02d", humanize.Comma(b.Days), b.Hours, b.Minutes, b.Seconds)
}

// Countdown describes the remaining time to a milestone, or how long ago it
// was reached.
func Countdown(st milestone.Status) string {
	if st.Remaining == 0 {
		return "reached right now"
	}
	b := milestone.Split(st.Remaining)
	if b.Negative {
		return fmt.Sprintf("reached %s ago (%s seconds)", Clock(b), humanize.Comma(-st.Remaining))
	}
	return fmt.Sprintf("%s to go (%s seconds)", Clock(b), humanize.Comma(st.Remaining))
}
