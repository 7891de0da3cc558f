package detector

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid detector config")

// Provider is the hand landmark model. Implementations receive RGB frames.
type Provider interface {
	// Detect analyzes an RGB frame and returns detected hand landmarks.
	// Returns an empty slice if no hands are detected.
	Detect(rgb *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the provider.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// StaticMode treats every frame as an unrelated image instead of a video stream.
	StaticMode bool

	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		StaticMode:      false,
		MaxHands:        2,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}

// Validate reports whether the config values are usable.
func (c Config) Validate() error {
	if c.MaxHands < 1 {
		return fmt.Errorf("%w: max hands must be at least 1, got %d", ErrInvalidConfig, c.MaxHands)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("%w: detection confidence %v outside [0,1]", ErrInvalidConfig, c.MinConfidence)
	}
	if c.MinTrackingConf < 0 || c.MinTrackingConf > 1 {
		return fmt.Errorf("%w: tracking confidence %v outside [0,1]", ErrInvalidConfig, c.MinTrackingConf)
	}
	return nil
}
