package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayusman/handtrack/internal/detector"
	"github.com/ayusman/handtrack/internal/display"
	"github.com/ayusman/handtrack/internal/overlay"
	"gocv.io/x/gocv"
)

// Run opens the camera and window and processes frames until Escape is
// pressed, the window is closed, ctx is cancelled or the camera fails.
//
// Each iteration:
// 1. Read a frame; a failed read ends the loop with ErrAcquisition
// 2. Detect hands and draw their skeletons
// 3. Mark and print the landmark positions of the first hand
// 4. Draw the FPS counter
// 5. Show the frame and poll the keyboard
//
// The camera and window are released on every return path.
func (a *App) Run(ctx context.Context) (Stats, error) {
	stats := Stats{Session: a.session}

	if err := a.camera.Open(); err != nil {
		return stats, fmt.Errorf("open camera %d: %w", a.config.CameraID, err)
	}
	defer func() {
		if err := a.camera.Close(); err != nil {
			a.log.Warn("Error closing camera", "err", err)
		}
	}()

	sink := a.display
	if sink == nil {
		sink = display.NewWindow(a.config.WindowTitle)
	}
	defer func() {
		if err := sink.Close(); err != nil {
			a.log.Warn("Error closing window", "err", err)
		}
	}()

	a.meter.Reset()
	a.log.Info("Hand tracking started", "camera", a.config.CameraID, "max_hands", a.config.Detector.MaxHands)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("Hand tracking stopped", "reason", ctx.Err(), "frames", stats.Frames)
			return stats, nil
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			a.log.Error("Failed to read from webcam", "err", err, "frames", stats.Frames)
			return stats, fmt.Errorf("%w: %w", ErrAcquisition, err)
		}

		stop := a.processFrame(frame, sink, &stats)
		frame.Close()

		if stop {
			a.log.Info("Hand tracking stopped", "frames", stats.Frames, "fps", int(stats.LastFPS))
			return stats, nil
		}
	}
}

// processFrame runs one iteration on frame and reports whether the loop should stop.
func (a *App) processFrame(frame *gocv.Mat, sink display.Sink, stats *Stats) bool {
	result, err := a.detector.Detect(frame, true)
	if err != nil {
		stats.DetectErrors++
		a.log.Warn("Error detecting hands", "err", err)
	} else {
		if result.NumHands() > 0 {
			stats.HandFrames++
		}
		if positions := a.detector.FindPosition(frame, 0, true); len(positions) > 0 {
			fmt.Fprintln(a.out, FormatPositions(positions))
		}
	}

	sample := a.meter.Tick(a.now())
	stats.LastFPS = sample
	overlay.DrawFPS(frame, sample)

	if err := sink.Show(frame); err != nil {
		a.log.Warn("Error showing frame", "err", err)
	}
	stats.Frames++

	if sink.PollKey(a.config.KeyPollDelay) == display.KeyEscape {
		a.log.Debug("Escape pressed")
		return true
	}
	if a.config.ExitOnWindowClose && !sink.IsOpen() {
		a.log.Debug("Window closed")
		return true
	}
	return false
}

// FormatPositions renders positions as "[[id x y] [id x y] ...]".
func FormatPositions(positions []detector.Position) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range positions {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "[%d %d %d]", p.ID, p.X, p.Y)
	}
	b.WriteByte(']')
	return b.String()
}
