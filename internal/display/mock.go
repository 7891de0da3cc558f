package display

import (
	"time"

	"gocv.io/x/gocv"
)

// MockSink records shown frames and replays scripted key presses.
type MockSink struct {
	keys       []int
	closeAfter int
	shown      int
	polls      int
	closed     bool
	// LastSize is the width and height of the last frame shown.
	LastSize [2]int
}

// NewMockSink creates a MockSink that returns keys from successive PollKey
// calls and NoKey once they run out.
func NewMockSink(keys ...int) *MockSink {
	return &MockSink{keys: keys, closeAfter: -1}
}

// CloseAfter makes IsOpen report false once n frames have been shown,
// as if the user closed the window.
func (m *MockSink) CloseAfter(n int) {
	m.closeAfter = n
}

func (m *MockSink) Show(img *gocv.Mat) error {
	m.shown++
	m.LastSize = [2]int{img.Cols(), img.Rows()}
	return nil
}

func (m *MockSink) PollKey(delay time.Duration) int {
	i := m.polls
	m.polls++
	if i < len(m.keys) {
		return m.keys[i]
	}
	return NoKey
}

func (m *MockSink) IsOpen() bool {
	if m.closed {
		return false
	}
	return m.closeAfter < 0 || m.shown < m.closeAfter
}

func (m *MockSink) Close() error {
	m.closed = true
	return nil
}

// Shown returns the number of frames shown.
func (m *MockSink) Shown() int {
	return m.shown
}

// Closed reports whether Close was called.
func (m *MockSink) Closed() bool {
	return m.closed
}
