package models

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Gigasecond is one billion seconds.
const Gigasecond Milestone = 1_000_000_000

// Milestone is a target number of seconds since birth.
type Milestone int64

// Valid returns true if the milestone is a positive second count.
func (m Milestone) Valid() bool {
	return m > 0
}

// Seconds returns the milestone as a plain second count.
func (m Milestone) Seconds() int64 {
	return int64(m)
}

// String renders the milestone with thousands separators, e.g. "1,000,000,000".
func (m Milestone) String() string {
	return humanize.Comma(int64(m))
}

// Label renders the milestone in billions, e.g. "1 billion" or "1.5 billion".
func (m Milestone) Label() string {
	billions := float64(m) / float64(Gigasecond)
	s := strconv.FormatFloat(billions, 'f', 3, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "0" {
		return m.String() + " seconds"
	}
	return s + " billion"
}

// DefaultMilestones returns the first three gigasecond multiples.
func DefaultMilestones() []Milestone {
	return []Milestone{Gigasecond, 2 * Gigasecond, 3 * Gigasecond}
}
