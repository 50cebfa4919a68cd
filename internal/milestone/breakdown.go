package milestone

// Breakdown splits a signed second count into days and a clock time.
// Days, Hours, Minutes and Seconds are magnitudes; Negative carries the sign.
type Breakdown struct {
	Days     int64
	Hours    int64
	Minutes  int64
	Seconds  int64
	Total    int64
	Negative bool
}

// Split breaks total seconds into days, hours, minutes and seconds.
func Split(total int64) Breakdown {
	b := Breakdown{Total: total}
	abs := total
	if abs < 0 {
		abs = -abs
		b.Negative = true
	}
	b.Days = abs / secondsPerDay
	b.Hours = (abs % secondsPerDay) / 3600
	b.Minutes = (abs % 3600) / 60
	b.Seconds = abs % 60
	return b
}
