package milestone

import (
	"fmt"
	"slices"
	"time"

	"github.com/ShayCichocki/gigasecond/pkg/models"
)

const secondsPerDay = 86400

// Elapsed returns the whole seconds between birth and now.
// It fails with ErrInvalidInput if now is before birth.
func Elapsed(now, birth time.Time) (int64, error) {
	if now.Before(birth) {
		return 0, invalid("birth", birth.Format(time.RFC3339), "is after the current time")
	}
	return diffSeconds(now, birth), nil
}

// Remaining returns m minus the seconds elapsed since birth. Negative results
// mean the milestone has already passed.
func Remaining(now, birth time.Time, m models.Milestone) int64 {
	return m.Seconds() - diffSeconds(now, birth)
}

// Target returns the instant at which birth reaches m seconds.
func Target(birth time.Time, m models.Milestone) time.Time {
	return time.Unix(birth.Unix()+m.Seconds(), int64(birth.Nanosecond())).In(birth.Location())
}

// Progress returns how far elapsed is toward m, clamped to [0, 100].
func Progress(elapsed int64, m models.Milestone) float64 {
	if !m.Valid() || elapsed <= 0 {
		return 0
	}
	pct := float64(elapsed) / float64(m.Seconds()) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Classify maps remaining seconds to an urgency level.
func Classify(remaining int64) models.Urgency {
	switch days := remaining / secondsPerDay; {
	case remaining <= 0:
		return models.UrgencyPassed
	case days > 365:
		return models.UrgencyDistant
	case days > 30:
		return models.UrgencyNear
	default:
		return models.UrgencyImminent
	}
}

// diffSeconds returns now-birth in whole seconds, truncated toward zero.
// It works on Unix seconds so birth instants centuries away don't overflow
// time.Duration.
func diffSeconds(now, birth time.Time) int64 {
	secs := now.Unix() - birth.Unix()
	ns := now.Nanosecond() - birth.Nanosecond()
	switch {
	case secs > 0 && ns < 0:
		secs--
	case secs < 0 && ns > 0:
		secs++
	}
	return secs
}

// Status is the state of one milestone at a given instant.
type Status struct {
	Milestone models.Milestone
	Remaining int64
	Target    time.Time
	Progress  float64
	Urgency   models.Urgency
}

// Passed reports whether the milestone has been reached.
func (s Status) Passed() bool {
	return s.Remaining <= 0
}

// Snapshot is everything the display needs for one tick.
type Snapshot struct {
	Now      time.Time
	Birth    time.Time
	Elapsed  int64
	Age      Breakdown
	Statuses []Status
}

// Timer holds the immutable birth instant and milestone list.
type Timer struct {
	birth      time.Time
	milestones []models.Milestone
}

// NewTimer validates the startup input and returns a Timer.
// Milestones are sorted ascending and de-duplicated.
func NewTimer(birth, now time.Time, milestones []models.Milestone) (*Timer, error) {
	if birth.IsZero() {
		return nil, invalid("birth", "", "no birth date given")
	}
	if birth.After(now) {
		return nil, invalid("birth", birth.Format(time.RFC3339), "is in the future")
	}
	if len(milestones) == 0 {
		return nil, invalid("milestones", "", "at least one milestone is required")
	}
	for _, m := range milestones {
		if !m.Valid() {
			return nil, invalid("milestone", fmt.Sprintf("%d", m.Seconds()), "must be a positive number of seconds")
		}
	}

	sorted := slices.Clone(milestones)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	return &Timer{birth: birth, milestones: sorted}, nil
}

// Birth returns the birth instant.
func (t *Timer) Birth() time.Time {
	return t.birth
}

// Milestones returns a copy of the configured milestones.
func (t *Timer) Milestones() []models.Milestone {
	return slices.Clone(t.milestones)
}

// Snapshot computes elapsed and per-milestone state at now.
// It never fails: if now is before birth (clock moved backwards) the elapsed
// value is clamped to zero and remaining values keep their signed meaning.
func (t *Timer) Snapshot(now time.Time) Snapshot {
	elapsed, err := Elapsed(now, t.birth)
	if err != nil {
		elapsed = 0
	}

	snap := Snapshot{
		Now:      now,
		Birth:    t.birth,
		Elapsed:  elapsed,
		Age:      Split(elapsed),
		Statuses: make([]Status, 0, len(t.milestones)),
	}
	for _, m := range t.milestones {
		remaining := Remaining(now, t.birth, m)
		snap.Statuses = append(snap.Statuses, Status{
			Milestone: m,
			Remaining: remaining,
			Target:    Target(t.birth, m),
			Progress:  Progress(elapsed, m),
			Urgency:   Classify(remaining),
		})
	}
	return snap
}

// Next returns the first milestone not yet reached, if any.
func (s Snapshot) Next() (Status, bool) {
	for _, st := range s.Statuses {
		if !st.Passed() {
			return st, true
		}
	}
	return Status{}, false
}
