package mosaic

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDistinct(t *testing.T, points []Point) {
	t.Helper()
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			require.False(t, points[i].Eq(points[j]), "points %d and %d coincide", i, j)
		}
	}
}

func TestBorderPoints(t *testing.T) {
	points := BorderPoints(100, 60)
	require.Len(t, points, 8)
	assertDistinct(t, points)
	for _, p := range points {
		assert.True(t, p.X == 0 || p.X == 100 || p.Y == 0 || p.Y == 60)
	}
}

func TestRandomPoints(t *testing.T) {
	points := RandomPoints(200, 100, 300, rand.New(rand.NewSource(1)))
	require.Len(t, points, 308)
	assertDistinct(t, points)

	for _, p := range points[:300] {
		assert.True(t, p.X > 0 && p.X < 200 && p.Y > 0 && p.Y < 100)
	}
	assert.Equal(t, BorderPoints(200, 100), points[300:])

	again := RandomPoints(200, 100, 300, rand.New(rand.NewSource(1)))
	assert.Equal(t, points, again)
}

func TestEdgePoints(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 80, 60))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.NRGBA{A: 255}}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(20, 15, 60, 45), &image.Uniform{C: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}, image.Point{}, draw.Src)

	points := EdgePoints(img, 1, 20, 100, rand.New(rand.NewSource(5)))
	require.Greater(t, len(points), 8, "the square outline produces seed points")
	require.LessOrEqual(t, len(points), 108)
	assertDistinct(t, points)

	seeds := points[:len(points)-8]
	for _, p := range seeds {
		// Seeds gather around the square outline.
		assert.True(t, p.X > 10 && p.X < 70 && p.Y > 5 && p.Y < 55, "%v", p)
	}
	assert.Equal(t, BorderPoints(80, 60), points[len(points)-8:])
}

func TestEdgePointsFlatImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 30, 30))
	points := EdgePoints(img, 2, 10, 50, rand.New(rand.NewSource(5)))
	assert.Equal(t, BorderPoints(30, 30), points)
}
