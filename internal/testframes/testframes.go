// Package testframes builds synthetic camera frames for tests.
package testframes

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Frame returns a BGR frame of the given size filled with a single shade.
// The caller is responsible for closing it.
func Frame(width, height int, shade uint8) *gocv.Mat {
	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	if shade != 0 {
		mat.SetTo(gocv.NewScalar(float64(shade), float64(shade), float64(shade), 0))
	}
	return &mat
}

// Sequence returns n frames of the given size whose shade increases from
// frame to frame, so consecutive frames are distinguishable.
func Sequence(n, width, height int) ([]*gocv.Mat, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sequence length must be positive, got %d", n)
	}

	frames := make([]*gocv.Mat, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, Frame(width, height, uint8(i*255/n)))
	}
	return frames, nil
}

// CloseAll closes every frame in frames.
func CloseAll(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
