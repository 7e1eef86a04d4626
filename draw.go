package mosaic

import (
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Drawer is implemented by the output formats a run result can be written to.
type Drawer interface {
	Draw(w io.Writer, res *Result) error
}

// Image rasterizes the cells into a PNG image.
type Image struct {
	// Noise applies a grain filter of the given amount over the final image.
	Noise int
}

// Rasterize paints the records on a white canvas of the result size.
func (im *Image) Rasterize(res *Result) image.Image {
	ctx := gg.NewContext(res.Width, res.Height)
	ctx.DrawRectangle(0, 0, float64(res.Width), float64(res.Height))
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()

	for _, r := range res.Records {
		if len(r.Polygon) == 0 {
			continue
		}
		ctx.Push()
		ctx.NewSubPath()
		ctx.MoveTo(r.Polygon[0].X, r.Polygon[0].Y)
		for _, p := range r.Polygon[1:] {
			ctx.LineTo(p.X, p.Y)
		}
		ctx.ClosePath()

		ctx.SetRGB255(int(r.Color.R), int(r.Color.G), int(r.Color.B))
		if r.StrokeWidth > 0 {
			ctx.FillPreserve()
			ctx.SetRGBA(0, 0, 0, strokeOpacity)
			ctx.SetLineWidth(r.StrokeWidth)
			ctx.Stroke()
		} else {
			ctx.Fill()
		}
		ctx.Pop()
	}

	img := ctx.Image()
	// Apply a noise on the final image. This will give it a more artistic look.
	if im.Noise > 0 {
		return Noise(im.Noise, img, res.Width, res.Height)
	}
	return img
}

// Draw encodes the rasterized cells as PNG.
func (im *Image) Draw(w io.Writer, res *Result) error {
	if err := png.Encode(w, im.Rasterize(res)); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}
