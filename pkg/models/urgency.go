package models

// Urgency classifies how close a milestone is.
type Urgency string

const (
	// UrgencyDistant is more than a year away.
	UrgencyDistant Urgency = "distant"
	// UrgencyNear is within a year.
	UrgencyNear Urgency = "near"
	// UrgencyImminent is within thirty days.
	UrgencyImminent Urgency = "imminent"
	// UrgencyPassed has already been reached.
	UrgencyPassed Urgency = "passed"
)

// Valid returns true if the urgency is a known value.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyDistant, UrgencyNear, UrgencyImminent, UrgencyPassed:
		return true
	default:
		return false
	}
}
