package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/gigasecond/internal/logging"
	"github.com/ShayCichocki/gigasecond/internal/tui"
)

// runLive validates the startup input and runs the live display until the user quits.
func runLive(cmd *cobra.Command, args []string) (retErr error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	if !s.Birth.IsZero() {
		// Reject bad input before the terminal switches to the alt screen.
		if _, err := s.timer(clock.Now()); err != nil {
			return err
		}
	}

	logger, closeLog, err := logging.New(s.LogFile, s.LogLevel)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	// Anything written through the standard logger would corrupt the display.
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in live display", "panic", r)
			retErr = fmt.Errorf("PANIC in live display: %v", r)
		}
	}()

	program, _, err := tui.NewProgram(tui.Options{
		Birth:         s.Birth,
		Milestones:    s.Milestones,
		Location:      s.Location,
		RefreshRate:   s.RefreshRate,
		ShowAge:       s.ShowAge,
		ShowCountdown: s.ShowCountdown,
		Clock:         clock,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	logger.Info("starting live display",
		slog.Time("birth", s.Birth),
		slog.Any("milestones", s.Milestones),
		slog.Duration("refresh", s.RefreshRate),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running live display: %w", err)
	}
	logger.Info("live display closed")
	return nil
}
