// Package overlay draws hand skeletons, landmark markers and the FPS counter onto frames.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// HandConnections lists the landmark index pairs that form the hand skeleton,
// following the MediaPipe hand model.
var HandConnections = [][2]int{
	// Palm
	{0, 1}, {0, 5}, {9, 13}, {13, 17}, {5, 9}, {0, 17},
	// Thumb
	{1, 2}, {2, 3}, {3, 4},
	// Index
	{5, 6}, {6, 7}, {7, 8},
	// Middle
	{9, 10}, {10, 11}, {11, 12},
	// Ring
	{13, 14}, {14, 15}, {15, 16},
	// Pinky
	{17, 18}, {18, 19}, {19, 20},
}

// Colors are given as RGB; gocv converts them to the Mat's BGR order.
var (
	ConnectionColor = color.RGBA{R: 255, G: 255, B: 255}
	LandmarkColor   = color.RGBA{R: 255, G: 0, B: 0}
	PointColor      = color.RGBA{R: 255, G: 0, B: 255}
	FPSColor        = color.RGBA{R: 0, G: 0, B: 255}
)

// Drawing sizes.
const (
	ConnectionThickness = 2
	LandmarkRadius      = 2
	PointRadius         = 8
	FPSFontScale        = 2.0
	FPSThickness        = 3
)

// FPSOrigin is where the FPS text baseline starts.
var FPSOrigin = image.Point{X: 10, Y: 70}

// filled is the OpenCV thickness value for a filled shape.
const filled = -1

// DrawSkeleton draws the connection lines and landmark dots for one hand.
// points must be in landmark order; pairs that reference a missing index are skipped.
func DrawSkeleton(img *gocv.Mat, points []image.Point) {
	for _, c := range HandConnections {
		if c[0] >= len(points) || c[1] >= len(points) {
			continue
		}
		gocv.Line(img, points[c[0]], points[c[1]], ConnectionColor, ConnectionThickness)
	}
	for _, p := range points {
		gocv.Circle(img, p, LandmarkRadius, LandmarkColor, filled)
	}
}

// DrawPoint draws a filled marker at a single landmark position.
func DrawPoint(img *gocv.Mat, p image.Point) {
	gocv.Circle(img, p, PointRadius, PointColor, filled)
}

// FPSText formats an FPS sample the way it is rendered.
func FPSText(fps float64) string {
	return fmt.Sprintf("FPS: %d", int(fps))
}

// DrawFPS renders the FPS counter in the top-left corner.
func DrawFPS(img *gocv.Mat, fps float64) {
	gocv.PutText(img, FPSText(fps), FPSOrigin, gocv.FontHersheyComplex, FPSFontScale, FPSColor, FPSThickness)
}
