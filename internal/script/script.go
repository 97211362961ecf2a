// Package script replays a YAML list of editor operations against a
// session, for headless rendering and export.
//
//	steps:
//	  - op: fill
//	    x: 0
//	    y: 0
//	    color: "#FFFFFF"
//	  - op: paint
//	    x: 3
//	    y: 4
//	    color: "#FF0000"
//	  - op: drag
//	    tool: erase
//	    points: [{x: 5, y: 5}, {x: 45, y: 5}]
package script

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/pixed/internal/editor"
	"github.com/san-kum/pixed/internal/grid"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOp indicates a step whose op is not recognised.
	ErrUnknownOp = errors.New("script: unknown op")

	// ErrMissingField indicates a step without a field its op requires.
	ErrMissingField = errors.New("script: missing field")
)

// Point is a pointer position in display pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Step struct {
	Op     string   `yaml:"op"`
	X      int      `yaml:"x"`
	Y      int      `yaml:"y"`
	Color  string   `yaml:"color,omitempty"`
	Level  float64  `yaml:"level,omitempty"`
	Tool   string   `yaml:"tool,omitempty"`
	Points []Point  `yaml:"points,omitempty"`
	Delta  *float64 `yaml:"delta,omitempty"`
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

// StepError reports the failing step of a script.
type StepError struct {
	Index   int
	Op      string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

func Parse(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &sc, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Run applies every step in order and stops at the first invalid one.
// Steps that address cells outside the grid are no-ops, not errors.
func Run(s *editor.Session, sc *Script) error {
	for i, step := range sc.Steps {
		if err := apply(s, step); err != nil {
			return &StepError{Index: i, Op: step.Op, Wrapped: err}
		}
	}
	return nil
}

func apply(s *editor.Session, st Step) error {
	switch st.Op {
	case "paint":
		if st.Color == "" {
			return fmt.Errorf("%w: color", ErrMissingField)
		}
		s.PaintCell(st.X, st.Y, grid.Color(st.Color))
	case "erase":
		s.EraseCell(st.X, st.Y)
	case "fill":
		if st.Color == "" {
			return fmt.Errorf("%w: color", ErrMissingField)
		}
		s.FloodFill(st.X, st.Y, grid.Color(st.Color))
	case "zoom":
		s.SetZoom(st.Level)
	case "zoom_in":
		s.ZoomIn()
	case "zoom_out":
		s.ZoomOut()
	case "reset_zoom":
		s.ResetZoom()
	case "wheel":
		if st.Delta == nil {
			return fmt.Errorf("%w: delta", ErrMissingField)
		}
		s.Wheel(*st.Delta)
	case "color":
		if st.Color == "" {
			return fmt.Errorf("%w: color", ErrMissingField)
		}
		s.SelectColor(grid.Color(st.Color))
	case "tool":
		return selectTool(s, st.Tool)
	case "click", "drag":
		if len(st.Points) == 0 {
			return fmt.Errorf("%w: points", ErrMissingField)
		}
		if st.Color != "" {
			s.SelectColor(grid.Color(st.Color))
		}
		if st.Tool != "" {
			if err := selectTool(s, st.Tool); err != nil {
				return err
			}
		}
		stroke(s, st.Points)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	return nil
}

func selectTool(s *editor.Session, name string) error {
	t, err := editor.ParseToolMode(name)
	if err != nil {
		return err
	}
	s.SetTool(t)
	return nil
}

func stroke(s *editor.Session, pts []Point) {
	s.PointerDown(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.PointerMove(p.X, p.Y)
	}
	s.PointerUp()
}
