package mosaic

import (
	"image"
	"image/color"
)

type prng struct {
	a         int
	m         int
	randomNum int
	div       float64
}

// Noise applies a noise factor, like adobe's grain filter.
// The generator is seeded with a constant, so the same input gives the same grain.
func Noise(amount int, pxl image.Image, w, h int) *image.NRGBA {
	noiseImg := image.NewNRGBA(image.Rect(0, 0, w, h))
	prng := &prng{
		a:         16807,
		m:         0x7fffffff,
		randomNum: 1.0,
		div:       1.0 / 0x7fffffff,
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			noise := (prng.randomSeed() - 0.1) * float64(amount)
			r, g, b, a := pxl.At(x, y).RGBA()
			rf, gf, bf := float64(r>>8), float64(g>>8), float64(b>>8)

			noiseImg.SetNRGBA(x, y, color.NRGBA{
				R: uint8(Clamp(rf+noise, 0, 255)),
				G: uint8(Clamp(gf+noise, 0, 255)),
				B: uint8(Clamp(bf+noise, 0, 255)),
				A: uint8(a >> 8),
			})
		}
	}
	return noiseImg
}

func (prng *prng) nextLongRand(seed int) int {
	lo := prng.a * (seed & 0xffff)
	hi := prng.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	lo += hi >> 15
	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	return lo
}

func (prng *prng) randomSeed() float64 {
	prng.randomNum = prng.nextLongRand(prng.randomNum)
	return float64(prng.randomNum) * prng.div
}
