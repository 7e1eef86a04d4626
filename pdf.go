package mosaic

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/llgcode/draw2d/draw2dpdf"
	"github.com/pkg/errors"
)

// PDF writes the cells as vector paths on a single page sized to the result.
type PDF struct{}

// Draw renders the records and writes the PDF document.
func (*PDF) Draw(w io.Writer, res *Result) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(res.Width), Ht: float64(res.Height)},
	})
	pdf.AddPage()
	gc := draw2dpdf.NewGraphicContext(pdf)

	for _, r := range res.Records {
		if len(r.Polygon) == 0 {
			continue
		}
		gc.SetFillColor(color.RGBA{R: r.Color.R, G: r.Color.G, B: r.Color.B, A: 0xff})
		polygonPath(gc, r.Polygon)
		gc.Fill()

		if r.StrokeWidth > 0 {
			pdf.SetAlpha(strokeOpacity, "Normal")
			gc.SetStrokeColor(color.Black)
			gc.SetLineWidth(r.StrokeWidth)
			polygonPath(gc, r.Polygon)
			gc.Stroke()
			pdf.SetAlpha(1, "Normal")
		}
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "writing pdf")
	}
	return nil
}

func polygonPath(gc *draw2dpdf.GraphicContext, polygon []Point) {
	gc.BeginPath()
	gc.MoveTo(polygon[0].X, polygon[0].Y)
	for _, p := range polygon[1:] {
		gc.LineTo(p.X, p.Y)
	}
	gc.Close()
}
