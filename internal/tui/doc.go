// Package tui provides the live terminal display for gigasecond.
//
// The App model shows the birth instant, a live age counter and one card per
// milestone with a progress bar and a countdown, or how long ago it was
// reached. A single tick loop on the injected clock recomputes the snapshot
// once per refresh interval; bubbletea applies each tick fully before the
// next one is delivered.
//
// When no birth date is supplied the App opens on a prompt. Invalid entries
// show an inline error that clears on esc or after five seconds.
//
// Usage:
//
//	program, _, err := tui.NewProgram(tui.Options{
//	    Birth:         birth,
//	    Milestones:    models.DefaultMilestones(),
//	    ShowAge:       true,
//	    ShowCountdown: true,
//	})
//	if err != nil {
//	    return err
//	}
//	_, err = program.Run()
//
// Keys: a toggles the age panel, c toggles the countdowns, r returns to the
// prompt, esc clears an error, q or ctrl+c quits.
package tui
