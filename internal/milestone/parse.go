package milestone

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ShayCichocki/gigasecond/pkg/models"
)

// birthLayouts are tried in order. RFC 3339 carries its own offset; the rest
// are interpreted in the caller's location.
var birthLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseBirth parses a birth date or date-time. A bare date means midnight.
// A nil loc means time.Local.
func ParseBirth(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalid("birth", "", "please enter your date of birth")
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range birthLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, loc)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalid("birth", s, "use YYYY-MM-DD or YYYY-MM-DD HH:MM")
}

// ParseMilestone parses a milestone given as seconds ("1000000000",
// "1_000_000_000", "1.5e9") or as billions with a b/g suffix ("1.5b", "2G").
func ParseMilestone(s string) (models.Milestone, error) {
	raw := s
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return 0, invalid("milestone", raw, "empty value")
	}

	scale := 1.0
	switch s[len(s)-1] {
	case 'b', 'B', 'g', 'G':
		scale = float64(models.Gigasecond)
		s = s[:len(s)-1]
	}

	if scale == 1 {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			if n <= 0 {
				return 0, invalid("milestone", raw, "must be a positive number of seconds")
			}
			return models.Milestone(n), nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid("milestone", raw, "not a number")
	}
	secs := math.Round(f * scale)
	if secs <= 0 {
		return 0, invalid("milestone", raw, "must be a positive number of seconds")
	}
	if secs >= math.MaxInt64 {
		return 0, invalid("milestone", raw, "too large")
	}
	return models.Milestone(secs), nil
}

// ParseMilestones parses each value with ParseMilestone, stopping at the
// first invalid one.
func ParseMilestones(values []string) ([]models.Milestone, error) {
	out := make([]models.Milestone, 0, len(values))
	for _, v := range values {
		m, err := ParseMilestone(v)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
