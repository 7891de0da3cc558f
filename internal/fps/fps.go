// Package fps estimates frame rate from consecutive loop timestamps.
package fps

import "time"

// Meter turns successive timestamps into instantaneous FPS samples.
// The zero value is ready to use.
type Meter struct {
	prev time.Time
	last float64
}

// Tick records now and returns the FPS since the previous tick.
// The first tick, and any tick whose elapsed time is not positive, yields 0.
func (m *Meter) Tick(now time.Time) float64 {
	var sample float64
	if !m.prev.IsZero() {
		sample = FromElapsed(now.Sub(m.prev))
	}
	m.prev = now
	m.last = sample
	return sample
}

// Last returns the most recent sample.
func (m *Meter) Last() float64 {
	return m.last
}

// Reset forgets the previous timestamp.
func (m *Meter) Reset() {
	m.prev = time.Time{}
	m.last = 0
}

// FromElapsed returns 1/elapsed in frames per second, or 0 if elapsed <= 0.
func FromElapsed(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return 1 / elapsed.Seconds()
}
