// Package app runs the capture, detect, render and display loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ayusman/handtrack/internal/capture"
	"github.com/ayusman/handtrack/internal/detector"
	"github.com/ayusman/handtrack/internal/display"
	"github.com/ayusman/handtrack/internal/fps"
	"github.com/google/uuid"
)

// DefaultKeyPollDelay is how long each iteration waits for a key press.
const DefaultKeyPollDelay = time.Millisecond

// ErrAcquisition is returned by Run when the camera stops delivering frames.
var ErrAcquisition = errors.New("frame acquisition failed")

// Config holds configuration options for the application.
type Config struct {
	CameraID    int
	Detector    detector.Config
	WindowTitle string
	// ExitOnWindowClose stops the loop when the window is closed through the
	// window manager. When false only Escape (or cancellation) stops it.
	ExitOnWindowClose bool
	KeyPollDelay      time.Duration
}

// DefaultConfig returns the configuration used by the command line tool.
func DefaultConfig() Config {
	return Config{
		CameraID:          capture.DefaultDeviceID,
		Detector:          detector.DefaultConfig(),
		WindowTitle:       display.DefaultTitle,
		ExitOnWindowClose: true,
		KeyPollDelay:      DefaultKeyPollDelay,
	}
}

// Stats summarizes a Run.
type Stats struct {
	Session      string
	Frames       int
	HandFrames   int
	DetectErrors int
	LastFPS      float64
}

// App wires a camera, a hand detector and a display together.
type App struct {
	config   Config
	session  string
	camera   capture.Camera
	provider detector.Provider
	detector *detector.HandDetector
	display  display.Sink
	meter    fps.Meter
	now      func() time.Time
	out      io.Writer
	log      *slog.Logger
}

// Option customizes an App. Options are mostly used to inject test doubles.
type Option func(*App)

// WithCamera replaces the device camera.
func WithCamera(c capture.Camera) Option {
	return func(a *App) { a.camera = c }
}

// WithProvider replaces the MediaPipe landmark provider.
func WithProvider(p detector.Provider) Option {
	return func(a *App) { a.provider = p }
}

// WithDisplay replaces the OpenCV window.
func WithDisplay(s display.Sink) Option {
	return func(a *App) { a.display = s }
}

// WithClock replaces time.Now for FPS measurement.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithOutput sets where landmark positions are printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// New creates a new App. Unless overridden by options it uses the camera at
// config.CameraID and the MediaPipe provider; the window is opened by Run.
func New(config Config, opts ...Option) (*App, error) {
	if config.KeyPollDelay <= 0 {
		config.KeyPollDelay = DefaultKeyPollDelay
	}

	a := &App{
		config:  config,
		session: uuid.NewString(),
		now:     time.Now,
		out:     os.Stdout,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With("session", a.session)

	if a.camera == nil {
		a.camera = capture.NewCamera(config.CameraID)
	}

	if a.provider == nil {
		mp, err := detector.NewMediaPipeProvider(config.Detector, a.log)
		if err != nil {
			return nil, fmt.Errorf("create landmark provider: %w", err)
		}
		a.provider = mp
		a.log.Info("Using MediaPipe hand detection")
	}

	d, err := detector.NewHandDetector(a.provider, config.Detector)
	if err != nil {
		a.provider.Close()
		return nil, err
	}
	a.detector = d

	return a, nil
}

// Session returns the identifier attached to this App's log records.
func (a *App) Session() string {
	return a.session
}

// Detector returns the hand detector.
func (a *App) Detector() *detector.HandDetector {
	return a.detector
}

// Close releases the hand detector and its provider.
func (a *App) Close() error {
	return a.detector.Close()
}
