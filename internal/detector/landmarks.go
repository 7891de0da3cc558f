// Package detector turns camera frames into hand landmarks and pixel positions.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a landmark in normalized image coordinates.
// X and Y are fractions of the frame width and height; Z is relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks holds the 21 landmarks of one detected hand, in model order.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Position is a landmark converted to integer pixel coordinates.
type Position struct {
	ID int
	X  int
	Y  int
}

// Result is the output of a single detection call.
type Result struct {
	Hands  []HandLandmarks
	Width  int
	Height int
}

// NumHands returns the number of detected hands. Safe on a nil Result.
func (r *Result) NumHands() int {
	if r == nil {
		return 0
	}
	return len(r.Hands)
}

// Positions converts the landmarks of hand number hand to pixel coordinates
// for a frame of the given size. It returns nil when r is nil or the hand
// index is out of range. Coordinates are rounded, never clamped.
func (r *Result) Positions(width, height, hand int) []Position {
	if r == nil || hand < 0 || hand >= len(r.Hands) {
		return nil
	}

	points := &r.Hands[hand].Points
	positions := make([]Position, 0, NumLandmarks)
	for id, p := range points {
		x, y := ToPixel(p, width, height)
		positions = append(positions, Position{ID: id, X: x, Y: y})
	}
	return positions
}

// ToPixel converts a normalized point to pixel coordinates.
func ToPixel(p Point3D, width, height int) (int, int) {
	return int(math.Round(p.X * float64(width))), int(math.Round(p.Y * float64(height)))
}
