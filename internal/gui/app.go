package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/pixed/internal/editor"
	"github.com/san-kum/pixed/internal/grid"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(24, 24, 24, 255)
	ColCanvas  = rl.NewColor(255, 255, 255, 255)
	ColPanel   = rl.NewColor(10, 10, 10, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	windowWidth  = 1280
	windowHeight = 720
	hudHeight    = 48
	footerHeight = 28
	panStep      = 40
)

// ExportFunc saves the session's artwork and returns a short description of
// where it went.
type ExportFunc func(s *editor.Session) (string, error)

type Options struct {
	Palette []grid.Color
	Export  ExportFunc
}

type App struct {
	Session *editor.Session
	Palette []grid.Color
	Export  ExportFunc
	Font    rl.Font

	// Offset is the screen position of the display surface's top-left corner.
	Offset rl.Vector2
	Status string
	quit   bool
}

// initWindow initializes the Raylib window, sets the target FPS to 60 and
// disables the default exit key.
func initWindow() {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "pixed")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(s *editor.Session, opts Options) *App {
	return &App{
		Session: s,
		Palette: opts.Palette,
		Export:  opts.Export,
		Font:    rl.GetFontDefault(),
		Offset:  rl.NewVector2(16, hudHeight+16),
	}
}

// Run opens the editor window for s and blocks until it is closed.
func Run(s *editor.Session, opts Options) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(s, opts)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	s := a.Session

	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}

	a.handleKeys()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		// raylib reports positive values for scrolling up
		s.Wheel(float64(-wheel))
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		d := rl.GetMouseDelta()
		a.Offset = rl.Vector2Add(a.Offset, d)
	}

	mouse := rl.GetMousePosition()
	if !a.overCanvas(mouse) {
		s.PointerLeave()
		return
	}
	px, py := float64(mouse.X-a.Offset.X), float64(mouse.Y-a.Offset.Y)

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		s.PointerDown(px, py)
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		s.PointerMove(px, py)
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		s.PointerUp()
	}
}

func (a *App) handleKeys() {
	s := a.Session

	switch {
	case rl.IsKeyPressed(rl.KeyP):
		s.SetTool(editor.Paint)
	case rl.IsKeyPressed(rl.KeyE):
		s.ToggleTool(editor.Erase)
	case rl.IsKeyPressed(rl.KeyF):
		s.ToggleTool(editor.Fill)
	case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
		s.ZoomIn()
	case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
		s.ZoomOut()
	case rl.IsKeyPressed(rl.KeyZero), rl.IsKeyPressed(rl.KeyR):
		s.ResetZoom()
	case rl.IsKeyPressed(rl.KeyS):
		a.Status = a.saveExport()
	}

	if rl.IsKeyDown(rl.KeyLeft) {
		a.Offset.X += panStep
	}
	if rl.IsKeyDown(rl.KeyRight) {
		a.Offset.X -= panStep
	}
	if rl.IsKeyDown(rl.KeyUp) {
		a.Offset.Y += panStep
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.Offset.Y -= panStep
	}

	for i, c := range a.Palette {
		if i >= 9 {
			break
		}
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			s.SelectColor(c)
		}
	}
}

func (a *App) saveExport() string {
	if a.Export == nil {
		return "export disabled"
	}
	where, err := a.Export(a.Session)
	if err != nil {
		return "export failed: " + err.Error()
	}
	return "saved " + where
}

// overCanvas reports whether a screen point lies on the visible part of the
// display surface.
func (a *App) overCanvas(p rl.Vector2) bool {
	if p.Y < hudHeight || p.Y >= float32(rl.GetScreenHeight()-footerHeight) {
		return false
	}
	w, h := a.Session.FrameSize()
	return p.X >= a.Offset.X && p.Y >= a.Offset.Y &&
		p.X < a.Offset.X+float32(w) && p.Y < a.Offset.Y+float32(h)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.BeginScissorMode(0, hudHeight, sw, sh-hudHeight-footerHeight)
	a.Session.RenderFrame(a.surface())
	rl.EndScissorMode()

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	s := a.Session
	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, sw, hudHeight, ColPanel)
	a.drawText("pixed", 16, 14, 20, ColSelect)

	cols, rows := s.Grid().Dimensions()
	a.drawText(fmt.Sprintf(":: %dx%d  zoom %.1fx  %s", cols, rows, s.Viewport().Zoom(), s.Tool()), 90, 18, 14, ColText)

	x := float32(420)
	rl.DrawRectangleRec(rl.NewRectangle(x, 12, 24, 24), toRL(s.Color()))
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, 12, 24, 24), 1, ColSelect)
	x += 40

	for i, c := range a.Palette {
		a.drawText(fmt.Sprintf("%d", i+1), int(x), 4, 10, ColTextDim)
		rl.DrawRectangleRec(rl.NewRectangle(x, 16, 20, 20), toRL(c))
		x += 26
	}

	x += 20
	a.drawText("recent", int(x), 20, 12, ColTextDim)
	x += 50
	for _, c := range s.RecentColors() {
		rl.DrawRectangleRec(rl.NewRectangle(x, 16, 16, 16), toRL(c))
		x += 20
	}

	rl.DrawRectangle(0, sh-footerHeight, sw, footerHeight, ColPanel)
	a.drawText("[P] PAINT  [E] ERASE  [F] FILL  [1-9] COLOR  [+/-] ZOOM  [R] RESET  [S] SAVE  [Q] QUIT", 16, int(sh)-20, 12, ColTextDim)
	if a.Status != "" {
		a.drawText(a.Status, int(sw)-360, int(sh)-20, 12, ColText)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) surface() *screenSurface {
	w, h := a.Session.FrameSize()
	return &screenSurface{
		origin: a.Offset,
		width:  w,
		height: h,
		screen: rl.NewRectangle(0, hudHeight, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()-hudHeight-footerHeight)),
	}
}
