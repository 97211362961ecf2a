// Package viewport maps between pointer coordinates, grid cells and the two
// raster scales a canvas is drawn at: the zoomed display and the fixed-size
// export.
package viewport

import "math"

const (
	MinZoom     = 0.5
	MaxZoom     = 5.0
	ZoomStep    = 0.5
	DefaultZoom = 1.0
)

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Mapper holds the zoom state of one canvas. The effective pixel size is
// derived from the zoom level and never set directly.
type Mapper struct {
	basePixelSize float64
	canvasWidth   float64
	canvasHeight  float64
	zoom          float64
	effective     float64
}

// New returns a Mapper at DefaultZoom for a canvas of canvasWidth ×
// canvasHeight base pixels split into cells of basePixelSize.
func New(basePixelSize, canvasWidth, canvasHeight float64) *Mapper {
	m := &Mapper{
		basePixelSize: basePixelSize,
		canvasWidth:   canvasWidth,
		canvasHeight:  canvasHeight,
	}
	m.apply(DefaultZoom)
	return m
}

func (m *Mapper) Zoom() float64               { return m.zoom }
func (m *Mapper) BasePixelSize() float64      { return m.basePixelSize }
func (m *Mapper) EffectivePixelSize() float64 { return m.effective }

// PointerToCell converts a pointer position relative to the top-left of the
// display surface into cell indices. The result may lie outside the grid.
func (m *Mapper) PointerToCell(px, py float64) (int, int) {
	return int(math.Floor(px / m.effective)), int(math.Floor(py / m.effective))
}

func (m *Mapper) CellToDisplayRect(x, y int) Rect {
	s := m.effective
	return Rect{X: float64(x) * s, Y: float64(y) * s, W: s, H: s}
}

// CellToExportRect is independent of zoom so exports keep a constant
// resolution.
func (m *Mapper) CellToExportRect(x, y int) Rect {
	s := m.basePixelSize
	return Rect{X: float64(x) * s, Y: float64(y) * s, W: s, H: s}
}

// SetZoom snaps level to the nearest ZoomStep, clamps it to
// [MinZoom, MaxZoom] and returns the level in effect. NaN is ignored.
func (m *Mapper) SetZoom(level float64) float64 {
	if math.IsNaN(level) {
		return m.zoom
	}
	m.apply(math.Round(level/ZoomStep) * ZoomStep)
	return m.zoom
}

// ZoomBy moves the zoom level by steps increments of ZoomStep.
func (m *Mapper) ZoomBy(steps int) float64 {
	return m.SetZoom(m.zoom + float64(steps)*ZoomStep)
}

func (m *Mapper) ZoomIn() float64    { return m.ZoomBy(1) }
func (m *Mapper) ZoomOut() float64   { return m.ZoomBy(-1) }
func (m *Mapper) ResetZoom() float64 { return m.SetZoom(DefaultZoom) }

// DisplaySize is the logical size of the display surface at the current zoom.
func (m *Mapper) DisplaySize() (float64, float64) {
	return m.canvasWidth * m.zoom, m.canvasHeight * m.zoom
}

// ExportSize is the raster size of an export for a cols × rows grid.
func (m *Mapper) ExportSize(cols, rows int) (int, int) {
	return int(float64(cols) * m.basePixelSize), int(float64(rows) * m.basePixelSize)
}

func (m *Mapper) apply(level float64) {
	m.zoom = math.Max(MinZoom, math.Min(MaxZoom, level))
	m.effective = m.basePixelSize * m.zoom
}
