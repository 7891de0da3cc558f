package overlay

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func blank(t *testing.T, width, height int) *gocv.Mat {
	t.Helper()
	img := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { img.Close() })
	return &img
}

func nonZero(img *gocv.Mat) int {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*img, &gray, gocv.ColorBGRToGray)
	return gocv.CountNonZero(gray)
}

func bgrAt(img *gocv.Mat, p image.Point) [3]uint8 {
	v := img.GetVecbAt(p.Y, p.X)
	return [3]uint8{v[0], v[1], v[2]}
}

func TestHandConnections(t *testing.T) {
	require.Len(t, HandConnections, 21)

	seen := make(map[[2]int]bool)
	for _, c := range HandConnections {
		assert.False(t, seen[c], "duplicate connection %v", c)
		seen[c] = true
		for _, idx := range c {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 21)
		}
	}
}

func TestDrawPoint(t *testing.T) {
	img := blank(t, 100, 100)
	center := image.Point{X: 50, Y: 40}

	DrawPoint(img, center)

	assert.Equal(t, [3]uint8{255, 0, 255}, bgrAt(img, center))
	assert.Equal(t, [3]uint8{255, 0, 255}, bgrAt(img, image.Point{X: 55, Y: 40}), "marker is filled")
	assert.Equal(t, [3]uint8{0, 0, 0}, bgrAt(img, image.Point{X: 70, Y: 40}))
}

func TestDrawSkeleton(t *testing.T) {
	img := blank(t, 200, 200)

	points := make([]image.Point, 21)
	for i := range points {
		points[i] = image.Point{X: 20 + i*8, Y: 100}
	}

	DrawSkeleton(img, points)

	assert.Positive(t, nonZero(img))
	// Landmark dots are red.
	assert.Equal(t, [3]uint8{0, 0, 255}, bgrAt(img, points[0]))
}

func TestDrawSkeleton_ShortInput(t *testing.T) {
	img := blank(t, 50, 50)

	// Fewer points than the model produces must not index out of range.
	DrawSkeleton(img, []image.Point{{X: 10, Y: 10}, {X: 20, Y: 20}})
	DrawSkeleton(img, nil)

	assert.Positive(t, nonZero(img))
}

func TestFPSText(t *testing.T) {
	assert.Equal(t, "FPS: 20", FPSText(20.0))
	assert.Equal(t, "FPS: 29", FPSText(29.97))
	assert.Equal(t, "FPS: 0", FPSText(0))
}

func TestDrawFPS(t *testing.T) {
	img := blank(t, 640, 480)

	DrawFPS(img, 30)

	assert.Positive(t, nonZero(img))
}
