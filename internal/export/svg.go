package export

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/san-kum/pixed/internal/grid"
	"github.com/san-kum/pixed/internal/viewport"
)

// SVG is a drawing surface that records rectangles and lines as SVG
// elements. Coordinates are kept in surface units; scale only changes the
// document's rendered width and height.
type SVG struct {
	width, height int
	scale         int
	body          strings.Builder
}

func NewSVG(width, height, scale int) *SVG {
	if scale < 1 {
		scale = 1
	}
	return &SVG{width: width, height: height, scale: scale}
}

func (s *SVG) Size() (int, int) { return s.width, s.height }

func (s *SVG) Clear() { s.body.Reset() }

func (s *SVG) FillRect(r viewport.Rect, c grid.Color) {
	fmt.Fprintf(&s.body, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`+"\n",
		r.X, r.Y, r.W, r.H, html.EscapeString(string(c)))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1 float64, c grid.Color, width float64) {
	fmt.Fprintf(&s.body, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`+"\n",
		x0, y0, x1, y1, html.EscapeString(string(c)), width)
}

func (s *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
`, s.width*s.scale, s.height*s.scale, s.width, s.height))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func (s *SVG) Save(path string) error {
	return os.WriteFile(path, []byte(s.String()), 0644)
}
