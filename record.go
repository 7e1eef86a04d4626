package mosaic

import (
	"fmt"
	"strconv"
	"strings"
)

// strokeOpacity is the alpha of the black cell outline.
const strokeOpacity = 0.3

// RGB is an opaque 8 bit color.
type RGB struct {
	R, G, B uint8
}

// String returns the color in the rgb(r,g,b) notation.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Record is a colored cell polygon, ready to be rasterized or serialized.
// Records are never modified once created.
type Record struct {
	Polygon     []Point
	Color       RGB
	StrokeWidth float64
}

// NewRecord creates the export record of a cell. The polygon vertices are copied as they are.
func NewRecord(cell Cell, color RGB, strokeWidth float64) Record {
	polygon := make([]Point, len(cell.Polygon))
	copy(polygon, cell.Polygon)

	return Record{
		Polygon:     polygon,
		Color:       color,
		StrokeWidth: strokeWidth,
	}
}

// Points returns the polygon coordinates as used by the SVG points attribute.
func (r Record) Points() string {
	var sb strings.Builder
	for i, p := range r.Polygon {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
	}
	return sb.String()
}

// SVG returns the polygon element of the record. The outline is only
// emitted for a positive stroke width.
func (r Record) SVG() string {
	if r.StrokeWidth > 0 {
		return fmt.Sprintf(`<polygon points="%s" fill="%s" stroke="rgb(0,0,0)" stroke-opacity="%g" stroke-width="%g"/>`,
			r.Points(), r.Color, strokeOpacity, r.StrokeWidth)
	}
	return fmt.Sprintf(`<polygon points="%s" fill="%s"/>`, r.Points(), r.Color)
}
