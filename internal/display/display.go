// Package display shows frames in an OpenCV window and polls the keyboard.
package display

import (
	"time"

	"gocv.io/x/gocv"
)

// KeyEscape is the key code returned by PollKey when Escape is pressed.
const KeyEscape = 27

// NoKey is returned by PollKey when no key was pressed before the timeout.
const NoKey = -1

// DefaultTitle is the window title used when none is configured.
const DefaultTitle = "Hand Tracking"

// Sink is a surface frames are shown on.
type Sink interface {
	Show(img *gocv.Mat) error
	// PollKey waits up to delay for a key press and returns its code, or NoKey.
	PollKey(delay time.Duration) int
	// IsOpen reports whether the surface is still visible.
	IsOpen() bool
	Close() error
}

// Window is a Sink backed by a highgui window.
type Window struct {
	title  string
	window *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) *Window {
	if title == "" {
		title = DefaultTitle
	}
	return &Window{
		title:  title,
		window: gocv.NewWindow(title),
	}
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// Show draws img in the window.
func (w *Window) Show(img *gocv.Mat) error {
	w.window.IMShow(*img)
	return nil
}

// PollKey pumps the window event loop for at least one millisecond.
func (w *Window) PollKey(delay time.Duration) int {
	ms := int(delay / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return maskKey(w.window.WaitKey(ms))
}

// IsOpen reports whether the user has not closed the window.
func (w *Window) IsOpen() bool {
	return w.window.IsOpen()
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.window.Close()
}

// maskKey strips modifier bits from a highgui key code.
func maskKey(code int) int {
	if code < 0 {
		return NoKey
	}
	return code & 0xFF
}
