package editor

import (
	"fmt"
	"strings"
)

type ToolMode int

const (
	Paint ToolMode = iota
	Erase
	Fill
)

func (t ToolMode) String() string {
	switch t {
	case Paint:
		return "paint"
	case Erase:
		return "erase"
	case Fill:
		return "fill"
	}
	return fmt.Sprintf("ToolMode(%d)", int(t))
}

func ParseToolMode(s string) (ToolMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paint", "brush", "draw":
		return Paint, nil
	case "erase", "eraser":
		return Erase, nil
	case "fill", "bucket":
		return Fill, nil
	}
	return Paint, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}
