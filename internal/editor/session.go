package editor

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/san-kum/pixed/internal/fill"
	"github.com/san-kum/pixed/internal/grid"
	"github.com/san-kum/pixed/internal/render"
	"github.com/san-kum/pixed/internal/viewport"
	"github.com/sirupsen/logrus"
)

const (
	DefaultRecentLimit = 5
	DefaultColor       = grid.Color("#000000")
)

type Options struct {
	CanvasWidth   int
	CanvasHeight  int
	BasePixelSize int
	GridStyle     render.GridStyle
	RecentLimit   int
	Color         grid.Color

	// Cells seeds the session with an existing grid. Its dimensions win over
	// CanvasWidth/CanvasHeight.
	Cells *grid.Store

	Logger logrus.FieldLogger
}

type Session struct {
	cells   *grid.Store
	view    *viewport.Mapper
	style   render.GridStyle
	tool    ToolMode
	color   grid.Color
	recent  *recentColors
	drawing bool
	log     logrus.FieldLogger
}

func NewSession(opts Options) (*Session, error) {
	if opts.BasePixelSize <= 0 {
		return nil, fmt.Errorf("%w: base pixel size %d", ErrInvalidOptions, opts.BasePixelSize)
	}

	cells := opts.Cells
	if cells == nil {
		var err error
		cells, err = grid.New(opts.CanvasWidth/opts.BasePixelSize, opts.CanvasHeight/opts.BasePixelSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
	} else {
		cols, rows := cells.Dimensions()
		opts.CanvasWidth = cols * opts.BasePixelSize
		opts.CanvasHeight = rows * opts.BasePixelSize
	}

	if opts.GridStyle == (render.GridStyle{}) {
		opts.GridStyle = render.DefaultGridStyle
	}
	if opts.RecentLimit == 0 {
		opts.RecentLimit = DefaultRecentLimit
	}
	if !opts.Color.Painted() {
		opts.Color = DefaultColor
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}

	return &Session{
		cells:  cells,
		view:   viewport.New(float64(opts.BasePixelSize), float64(opts.CanvasWidth), float64(opts.CanvasHeight)),
		style:  opts.GridStyle,
		tool:   Paint,
		color:  opts.Color,
		recent: newRecentColors(opts.RecentLimit),
		log:    opts.Logger,
	}, nil
}

func (s *Session) Grid() *grid.Store           { return s.cells }
func (s *Session) Viewport() *viewport.Mapper  { return s.view }
func (s *Session) Tool() ToolMode              { return s.tool }
func (s *Session) Color() grid.Color           { return s.color }
func (s *Session) Drawing() bool               { return s.drawing }
func (s *Session) RecentColors() []grid.Color  { return s.recent.list() }
func (s *Session) GridStyle() render.GridStyle { return s.style }

func (s *Session) SetTool(t ToolMode) {
	s.tool = t
	s.log.WithField("tool", t).Debug("tool selected")
}

// ToggleTool switches to t, or back to Paint when t is already active.
func (s *Session) ToggleTool(t ToolMode) {
	if s.tool == t {
		s.SetTool(Paint)
		return
	}
	s.SetTool(t)
}

// SelectColor makes c the current color and returns to the Paint tool.
func (s *Session) SelectColor(c grid.Color) {
	if !c.Painted() {
		return
	}
	s.color = c
	s.SetTool(Paint)
}

// PaintCell sets (x, y) to c. Painting with Unpainted erases. It reports
// whether the cell was in bounds.
func (s *Session) PaintCell(x, y int, c grid.Color) bool {
	if !s.cells.Set(x, y, c) {
		s.log.WithFields(logrus.Fields{"op": "paint", "x": x, "y": y}).Debug("ignored out-of-bounds cell")
		return false
	}
	s.recent.add(c)
	s.log.WithFields(logrus.Fields{"op": "paint", "x": x, "y": y, "color": c}).Debug("cell painted")
	return true
}

func (s *Session) EraseCell(x, y int) bool {
	if !s.cells.Set(x, y, grid.Unpainted) {
		s.log.WithFields(logrus.Fields{"op": "erase", "x": x, "y": y}).Debug("ignored out-of-bounds cell")
		return false
	}
	s.log.WithFields(logrus.Fields{"op": "erase", "x": x, "y": y}).Debug("cell erased")
	return true
}

// FloodFill recolors the region around (x, y) and returns the number of
// cells changed.
func (s *Session) FloodFill(x, y int, c grid.Color) int {
	n := fill.Fill(s.cells, x, y, c)
	if n > 0 {
		s.recent.add(c)
	}
	s.log.WithFields(logrus.Fields{"op": "fill", "x": x, "y": y, "color": c, "cells": n}).Debug("flood fill")
	return n
}

func (s *Session) SetZoom(level float64) float64 {
	return s.zoomed(s.view.SetZoom(level))
}

func (s *Session) ZoomIn() float64    { return s.zoomed(s.view.ZoomIn()) }
func (s *Session) ZoomOut() float64   { return s.zoomed(s.view.ZoomOut()) }
func (s *Session) ResetZoom() float64 { return s.zoomed(s.view.ResetZoom()) }

func (s *Session) zoomed(level float64) float64 {
	w, h := s.view.DisplaySize()
	s.log.WithFields(logrus.Fields{"zoom": level, "width": w, "height": h}).Info("zoom changed")
	return level
}

// PointerDown starts a stroke at pointer position (px, py) and applies the
// active tool to the cell under it. It reports whether the grid may need a
// repaint.
func (s *Session) PointerDown(px, py float64) bool {
	s.drawing = true
	x, y := s.view.PointerToCell(px, py)
	if !s.cells.InBounds(x, y) {
		return false
	}

	switch s.tool {
	case Fill:
		s.FloodFill(x, y, s.color)
		return true
	case Erase:
		return s.EraseCell(x, y)
	default:
		return s.PaintCell(x, y, s.color)
	}
}

// PointerMove continues a Paint or Erase stroke. Repeated events over the
// same cell are harmless.
func (s *Session) PointerMove(px, py float64) bool {
	if !s.drawing || s.tool == Fill {
		return false
	}
	x, y := s.view.PointerToCell(px, py)
	if !s.cells.InBounds(x, y) {
		return false
	}
	if s.tool == Erase {
		return s.EraseCell(x, y)
	}
	return s.PaintCell(x, y, s.color)
}

func (s *Session) PointerUp()    { s.drawing = false }
func (s *Session) PointerLeave() { s.drawing = false }

// Wheel zooms in one step for negative deltaY and out otherwise.
func (s *Session) Wheel(deltaY float64) float64 {
	if deltaY < 0 {
		return s.ZoomIn()
	}
	return s.ZoomOut()
}

// FrameSize is the display surface size in whole pixels at the current zoom.
func (s *Session) FrameSize() (int, int) {
	w, h := s.view.DisplaySize()
	return int(math.Ceil(w)), int(math.Ceil(h))
}

func (s *Session) ExportSize() (int, int) {
	return s.view.ExportSize(s.cells.Dimensions())
}

func (s *Session) RenderFrame(surface render.Surface) {
	render.Frame(surface, s.cells, s.view, s.style)
}

func (s *Session) ExportArtwork(surface render.Surface) {
	render.Artwork(surface, s.cells, s.view)
}

// ExportImage rasterizes the artwork at base resolution.
func (s *Session) ExportImage() (image.Image, error) {
	c := render.NewCanvas(s.ExportSize())
	defer c.Close()
	s.ExportArtwork(c)
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return c.Image(), nil
}

// Export writes the artwork to w as PNG.
func (s *Session) Export(w io.Writer) error {
	c := render.NewCanvas(s.ExportSize())
	defer c.Close()
	s.ExportArtwork(c)
	if err := c.EncodePNG(w); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// ExportPNG returns the encoded artwork.
func (s *Session) ExportPNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Session) SaveExport(path string) error {
	data, err := s.ExportPNG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	w, h := s.ExportSize()
	s.log.WithFields(logrus.Fields{"path": path, "width": w, "height": h, "painted": s.cells.Painted()}).Info("artwork exported")
	return nil
}
