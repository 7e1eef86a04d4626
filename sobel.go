package mosaic

import (
	"image"
	"math"
)

type kernel [3][3]int32

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// SobelFilter detects the image edges. The source is expected to be grayscale,
// only the red channel is read. Magnitudes not exceeding the threshold are zeroed.
func SobelFilter(src *image.NRGBA, threshold float64) *image.NRGBA {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumX, sumY int32
			// Sum each pixel of the 3x3 window with the kernel value.
			for ky := 0; ky < 3; ky++ {
				sy := Clamp(y+ky-1, 0, height-1)
				for kx := 0; kx < 3; kx++ {
					sx := Clamp(x+kx-1, 0, width-1)
					r := int32(src.Pix[src.PixOffset(sx+src.Rect.Min.X, sy+src.Rect.Min.Y)])
					sumX += r * kernelX[ky][kx]
					sumY += r * kernelY[ky][kx]
				}
			}
			magnitude := math.Sqrt(float64(sumX*sumX) + float64(sumY*sumY))

			var v uint8
			if magnitude > threshold {
				v = uint8(Min(magnitude, 255))
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = v, v, v, 0xff
		}
	}
	return dst
}
