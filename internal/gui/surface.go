package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/pixed/internal/grid"
	"github.com/san-kum/pixed/internal/render"
	"github.com/san-kum/pixed/internal/viewport"
)

// screenSurface draws a frame into the window with its origin at origin.
// Rectangles outside screen are culled.
type screenSurface struct {
	origin        rl.Vector2
	width, height int
	screen        rl.Rectangle
}

func (s *screenSurface) Size() (int, int) { return s.width, s.height }

func (s *screenSurface) Clear() {
	rl.DrawRectangleRec(rl.NewRectangle(s.origin.X, s.origin.Y, float32(s.width), float32(s.height)), ColCanvas)
}

func (s *screenSurface) FillRect(r viewport.Rect, c grid.Color) {
	rect := rl.NewRectangle(s.origin.X+float32(r.X), s.origin.Y+float32(r.Y), float32(r.W), float32(r.H))
	if !rl.CheckCollisionRecs(rect, s.screen) {
		return
	}
	rl.DrawRectangleRec(rect, toRL(c))
}

func (s *screenSurface) StrokeLine(x0, y0, x1, y1 float64, c grid.Color, width float64) {
	start := rl.NewVector2(s.origin.X+float32(x0), s.origin.Y+float32(y0))
	end := rl.NewVector2(s.origin.X+float32(x1), s.origin.Y+float32(y1))
	rl.DrawLineEx(start, end, float32(width), toRL(c))
}

func toRL(c grid.Color) rl.Color {
	n := render.RGBA(c)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
