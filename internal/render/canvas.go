package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/san-kum/pixed/internal/grid"
	"github.com/san-kum/pixed/internal/viewport"
)

// Canvas is an in-memory RGBA surface. Colors are parsed as hex keys
// ("#RGB", "#RRGGBB", "#RRGGBBAA"); any other key renders opaque black.
type Canvas struct {
	dc  *gg.Context
	err error
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *Canvas) Clear() {
	c.dc.Clear()
}

func (c *Canvas) FillRect(r viewport.Rect, col grid.Color) {
	c.dc.SetHexColor(string(col))
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.keep(c.dc.Fill())
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, col grid.Color, width float64) {
	c.dc.SetHexColor(string(col))
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.keep(c.dc.Stroke())
}

// Err returns the first rasterization error since the canvas was created.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.SavePNG(path)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// RGBA resolves a color key the same way Canvas does.
func RGBA(c grid.Color) color.NRGBA {
	if !c.Painted() {
		return color.NRGBA{}
	}
	return gg.Hex(string(c)).Color().(color.NRGBA)
}
