package detector

import (
	"fmt"
	"image"

	"github.com/ayusman/handtrack/internal/overlay"
	"gocv.io/x/gocv"
)

// HandDetector runs a Provider over BGR frames and remembers the last result
// so that landmark positions can be queried after detection.
//
// A HandDetector is not safe for concurrent use; callers sharing one across
// goroutines must serialize Detect and FindPosition themselves.
type HandDetector struct {
	config   Config
	provider Provider
	rgb      gocv.Mat
	last     *Result
}

// NewHandDetector creates a HandDetector backed by the given provider.
func NewHandDetector(p Provider, config Config) (*HandDetector, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil provider", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &HandDetector{
		config:   config,
		provider: p,
		rgb:      gocv.NewMat(),
	}, nil
}

// Config returns the configuration the detector was built with.
func (d *HandDetector) Config() Config {
	return d.config
}

// Detect finds hands in a BGR frame and stores the result as the detector's
// last result. When draw is true the hand skeletons are drawn onto frame.
// Finding no hands is not an error; it yields a Result with no hands.
// On provider failure the previous result is kept.
func (d *HandDetector) Detect(frame *gocv.Mat, draw bool) (*Result, error) {
	gocv.CvtColor(*frame, &d.rgb, gocv.ColorBGRToRGB)

	hands, err := d.provider.Detect(&d.rgb)
	if err != nil {
		return nil, fmt.Errorf("detect hands: %w", err)
	}
	if len(hands) > d.config.MaxHands {
		hands = hands[:d.config.MaxHands]
	}

	result := &Result{
		Hands:  hands,
		Width:  frame.Cols(),
		Height: frame.Rows(),
	}
	d.last = result

	if draw {
		for i := range hands {
			overlay.DrawSkeleton(frame, pixelPoints(&hands[i], result.Width, result.Height))
		}
	}

	return result, nil
}

// FindPosition returns the pixel positions of hand number hand from the last
// detection, scaled to frame's current size. It returns nil before the first
// Detect call or when the hand index is out of range. When draw is true a
// marker is drawn at every position.
func (d *HandDetector) FindPosition(frame *gocv.Mat, hand int, draw bool) []Position {
	positions := d.last.Positions(frame.Cols(), frame.Rows(), hand)
	if draw {
		for _, p := range positions {
			overlay.DrawPoint(frame, image.Point{X: p.X, Y: p.Y})
		}
	}
	return positions
}

// Last returns the most recent detection result, or nil if Detect has not
// succeeded yet.
func (d *HandDetector) Last() *Result {
	return d.last
}

// Close releases the scratch buffer and the underlying provider.
func (d *HandDetector) Close() error {
	d.rgb.Close()
	d.last = nil
	return d.provider.Close()
}

func pixelPoints(h *HandLandmarks, width, height int) []image.Point {
	points := make([]image.Point, NumLandmarks)
	for i, p := range h.Points {
		x, y := ToPixel(p, width, height)
		points[i] = image.Point{X: x, Y: y}
	}
	return points
}
