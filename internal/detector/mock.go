package detector

import (
	"gocv.io/x/gocv"
)

// MockProvider is a test implementation of the Provider interface.
// It returns the same configured hands on every call.
type MockProvider struct {
	hands  []HandLandmarks
	err    error
	calls  int
	closed bool
	// LastChannels records the channel count of the last frame passed to Detect.
	LastChannels int
}

// NewMockProvider creates a new MockProvider instance.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockProvider) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockProvider) SetError(err error) {
	m.err = err
}

// Detect returns a copy of the pre-configured hands or error.
func (m *MockProvider) Detect(rgb *gocv.Mat) ([]HandLandmarks, error) {
	m.calls++
	if rgb != nil {
		m.LastChannels = rgb.Channels()
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.hands == nil {
		return nil, nil
	}
	hands := make([]HandLandmarks, len(m.hands))
	copy(hands, m.hands)
	return hands, nil
}

// Calls returns how many times Detect was invoked.
func (m *MockProvider) Calls() int {
	return m.calls
}

// Closed reports whether Close was called.
func (m *MockProvider) Closed() bool {
	return m.closed
}

// Close marks the mock as closed.
func (m *MockProvider) Close() error {
	m.closed = true
	return nil
}

// CenteredHandLandmarks returns a right hand whose wrist sits at the frame centre
// with the fingers spread upward.
func CenteredHandLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.97,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.5, Y: 0.5, Z: 0.0}

	landmarks.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.47, Z: -0.01}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.43, Z: -0.02}
	landmarks.Points[ThumbIP] = Point3D{X: 0.61, Y: 0.40, Z: -0.02}
	landmarks.Points[ThumbTip] = Point3D{X: 0.64, Y: 0.37, Z: -0.03}

	landmarks.Points[IndexMCP] = Point3D{X: 0.54, Y: 0.38, Z: -0.01}
	landmarks.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.31, Z: -0.02}
	landmarks.Points[IndexDIP] = Point3D{X: 0.555, Y: 0.27, Z: -0.02}
	landmarks.Points[IndexTip] = Point3D{X: 0.56, Y: 0.23, Z: -0.03}

	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.37, Z: -0.01}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.29, Z: -0.02}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.24, Z: -0.02}
	landmarks.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.20, Z: -0.03}

	landmarks.Points[RingMCP] = Point3D{X: 0.46, Y: 0.38, Z: -0.01}
	landmarks.Points[RingPIP] = Point3D{X: 0.45, Y: 0.31, Z: -0.02}
	landmarks.Points[RingDIP] = Point3D{X: 0.445, Y: 0.27, Z: -0.02}
	landmarks.Points[RingTip] = Point3D{X: 0.44, Y: 0.24, Z: -0.03}

	landmarks.Points[PinkyMCP] = Point3D{X: 0.43, Y: 0.41, Z: -0.01}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.36, Z: -0.02}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.33, Z: -0.02}
	landmarks.Points[PinkyTip] = Point3D{X: 0.39, Y: 0.30, Z: -0.03}

	return landmarks
}

// OutOfFrameLandmarks returns a left hand whose fingertips lie beyond the
// right and top edges, as the model reports for partially visible hands.
func OutOfFrameLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Left",
		Score:      0.81,
	}
	for i := range landmarks.Points {
		landmarks.Points[i] = Point3D{
			X: 0.9 + float64(i)*0.01,
			Y: 0.2 - float64(i)*0.015,
		}
	}
	return landmarks
}
