// Package milestone computes elapsed lifetime seconds and the distance to
// gigasecond milestones.
//
// Everything here is a pure function of the supplied instants: a Timer holds
// only the birth instant and the milestone list, and every call takes "now"
// explicitly. The display loop and the report command feed it the current
// time from their clock.
package milestone
