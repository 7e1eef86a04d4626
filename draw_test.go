package mosaic

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareResult(strokeWidth float64) *Result {
	return &Result{
		Width:  20,
		Height: 20,
		Records: []Record{
			{
				Polygon:     []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
				Color:       RGB{R: 255},
				StrokeWidth: strokeWidth,
			},
			{
				Polygon:     []Point{{10, 10}, {20, 10}, {20, 20}, {10, 20}},
				Color:       RGB{B: 255},
				StrokeWidth: strokeWidth,
			},
		},
	}
}

func TestImageDraw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Image{}).Draw(&buf, squareResult(0)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	rgba := func(x, y int) color.RGBA {
		r, g, b, a := img.At(x, y).RGBA()
		return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgba(5, 5))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, rgba(15, 15))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgba(15, 5), "uncovered area stays white")
}

func TestImageNoise(t *testing.T) {
	im := &Image{Noise: 20}
	a := im.Rasterize(squareResult(1))
	b := im.Rasterize(squareResult(1))
	assert.Equal(t, a, b, "the grain is reproducible")
	assert.Equal(t, 20, a.Bounds().Dx())
}

func TestSVGDraw(t *testing.T) {
	var buf bytes.Buffer
	svg := &SVG{Title: "mosaic <test>", Description: "two cells"}
	require.NoError(t, svg.Draw(&buf, squareResult(2)))

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Name)
	assert.Equal(t, "20", root.Attributes["width"])
	assert.Equal(t, "20", root.Attributes["height"])
	assert.Equal(t, "0 0 20 20", root.Attributes["viewBox"])

	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 2)
	assert.Equal(t, "rgb(255,0,0)", polygons[0].Attributes["fill"])
	assert.Equal(t, "rgb(0,0,255)", polygons[1].Attributes["fill"])
	assert.Equal(t, "2", polygons[0].Attributes["stroke-width"])
}

func TestPDFDraw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PDF{}).Draw(&buf, squareResult(1)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
