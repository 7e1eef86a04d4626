package mosaic

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/pkg/errors"
)

// SVG writes the cells as a vector document, one polygon element per record.
type SVG struct {
	Title       string
	Description string
}

// Draw writes the SVG document. The root element carries the result size
// both as pixel dimensions and as view box.
func (s *SVG) Draw(w io.Writer, res *Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		res.Width, res.Height, res.Width, res.Height)
	bw.WriteByte('\n')
	if s.Title != "" {
		fmt.Fprintf(bw, "<title>%s</title>\n", html.EscapeString(s.Title))
	}
	if s.Description != "" {
		fmt.Fprintf(bw, "<desc>%s</desc>\n", html.EscapeString(s.Description))
	}
	for _, r := range res.Records {
		bw.WriteString(r.SVG())
		bw.WriteByte('\n')
	}
	bw.WriteString("</svg>\n")

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "writing svg")
	}
	return nil
}
