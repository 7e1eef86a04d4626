package mosaic

import (
	"image"
	"math/rand"
)

// pointRate defines the share of edge pixels eligible as seed points.
// Changing this value will modify the cell sizes along the edges.
const pointRate = 0.875

// BorderPoints returns the 4 corners and the 4 edge midpoints of the [0,width]×[0,height] box.
// They keep the cells along the image border closed.
func BorderPoints(width, height float64) []Point {
	return []Point{
		{0, 0}, {width / 2, 0}, {width, 0},
		{width, height / 2}, {width, height},
		{width / 2, height}, {0, height}, {0, height / 2},
	}
}

// RandomPoints generates n random interior points followed by the border points.
func RandomPoints(width, height float64, n int, rnd *rand.Rand) []Point {
	points := make([]Point, 0, n+8)
	for len(points) < n {
		x, y := rnd.Float64()*width, rnd.Float64()*height
		if x == 0 || y == 0 {
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}
	return append(points, BorderPoints(width, height)...)
}

// EdgePoints retrieves up to maxPoints seed points concentrated on the image edges,
// followed by the border points. The pixels are blurred, passed through the Sobel
// operator and kept when the mean of their 3x3 neighbourhood exceeds the threshold.
func EdgePoints(src *image.NRGBA, blurRadius, threshold, maxPoints int, rnd *rand.Rand) []Point {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()

	gray := Grayscale(src)
	if blurRadius > 0 {
		matrix := setBlurMatrix(blurRadius)
		convolutionFilter(matrix, gray, float64(len(matrix)))
	}
	sobel := SobelFilter(gray, float64(threshold))

	var (
		sum, total     int
		x, y, sx, sy   int
		row, col, step int
		points         []Point
	)

	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			sum, total = 0, 0

			for row = -1; row <= 1; row++ {
				sy = y + row
				step = sy * width
				if sy >= 0 && sy < height {
					for col = -1; col <= 1; col++ {
						sx = x + col
						if sx >= 0 && sx < width {
							sum += int(sobel.Pix[(sx+step)<<2])
							total++
						}
					}
				}
			}
			if total > 0 {
				sum /= total
			}
			if sum > threshold {
				// Pixel centers never coincide with the border points.
				points = append(points, Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			}
		}
	}

	limit := Min(int(float64(len(points))*pointRate), maxPoints)

	// Pick without replacement, duplicated points would break the triangulation.
	dpoints := make([]Point, 0, limit+8)
	for _, j := range rnd.Perm(len(points))[:limit] {
		dpoints = append(dpoints, points[j])
	}
	return append(dpoints, BorderPoints(float64(width), float64(height))...)
}
