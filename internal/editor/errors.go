package editor

import "errors"

var (
	// ErrUnknownTool indicates a tool name that does not map to a ToolMode.
	ErrUnknownTool = errors.New("editor: unknown tool")

	// ErrInvalidOptions indicates session options that cannot describe a grid.
	ErrInvalidOptions = errors.New("editor: invalid session options")
)
