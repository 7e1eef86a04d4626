package mosaic

import (
	"image"
	"math"
)

// PixelSource is a read-only RGB sampler over the image bounds.
type PixelSource interface {
	Bounds() image.Rectangle
	RGB(x, y int) (r, g, b uint8)
}

// ImageSource samples an NRGBA image with its min-point at (0, 0).
type ImageSource struct {
	img *image.NRGBA
}

// NewImageSource wraps any image type into a PixelSource.
func NewImageSource(img image.Image) *ImageSource {
	return &ImageSource{img: ImgToNRGBA(img)}
}

// Bounds returns the sampled area.
func (s *ImageSource) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// RGB returns the color channels of the pixel at (x, y).
func (s *ImageSource) RGB(x, y int) (r, g, b uint8) {
	i := s.img.PixOffset(x, y)
	return s.img.Pix[i], s.img.Pix[i+1], s.img.Pix[i+2]
}

// Colorize returns the representative color of a cell: the mean of a square
// window of side smoothness centered on the midpoint of the polygon bounding box.
// The bounding box midpoint is used instead of the centroid on purpose.
func Colorize(polygon []Point, src PixelSource, smoothness int) RGB {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if len(polygon) == 0 || w <= 0 || h <= 0 {
		return RGB{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range polygon {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	cx := int(Clamp((minX+maxX)/2, 0, float64(w-1)))
	cy := int(Clamp((minY+maxY)/2, 0, float64(h-1)))

	half := smoothness / 2
	x0, x1 := Clamp(cx-half, 0, w), Clamp(cx-half+smoothness, 0, w)
	y0, y1 := Clamp(cy-half, 0, h), Clamp(cy-half+smoothness, 0, h)

	n := (x1 - x0) * (y1 - y0)
	if n <= 0 {
		return RGB{}
	}

	var sr, sg, sb int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r, g, b := src.RGB(x+bounds.Min.X, y+bounds.Min.Y)
			sr += int(r)
			sg += int(g)
			sb += int(b)
		}
	}
	return RGB{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n)}
}
