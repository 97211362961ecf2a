package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/pixed/internal/editor"
	"github.com/san-kum/pixed/internal/grid"
)

const (
	canvasLeft   = 2
	canvasTop    = 2
	footerHeight = 4
	panColumns   = 4
)

// ExportFunc saves the session's artwork and returns a short description of
// where it went.
type ExportFunc func(s *editor.Session) (string, error)

type Options struct {
	Palette []grid.Color
	Export  ExportFunc
}

type model struct {
	session *editor.Session
	palette []grid.Color
	export  ExportFunc
	colors  swatches

	offX, offY float64
	status     string

	width  int
	height int
}

func newModel(s *editor.Session, opts Options) *model {
	return &model{
		session: s,
		palette: opts.Palette,
		export:  opts.Export,
		colors:  make(swatches),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	s := m.session
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		s.SetTool(editor.Paint)
	case "e":
		s.ToggleTool(editor.Erase)
	case "f":
		s.ToggleTool(editor.Fill)
	case "+", "=":
		s.ZoomIn()
		m.clampOffset()
	case "-", "_":
		s.ZoomOut()
		m.clampOffset()
	case "0":
		s.ResetZoom()
		m.clampOffset()
	case "left", "h":
		m.offX -= panColumns * m.colW()
		m.clampOffset()
	case "right", "l":
		m.offX += panColumns * m.colW()
		m.clampOffset()
	case "up", "k":
		m.offY -= panColumns * m.rowH()
		m.clampOffset()
	case "down", "j":
		m.offY += panColumns * m.rowH()
		m.clampOffset()
	case "s":
		m.status = m.saveExport()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.palette) {
				s.SelectColor(m.palette[i])
			}
		}
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	s := m.session
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		s.Wheel(-1)
		m.clampOffset()
		return
	case tea.MouseButtonWheelDown:
		s.Wheel(1)
		m.clampOffset()
		return
	}

	col, row := msg.X-canvasLeft, msg.Y-canvasTop
	cols, rows := m.canvasSize()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		s.PointerLeave()
		return
	}
	px, py := m.surface().pointer(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.PointerDown(px, py)
		}
	case tea.MouseActionMotion:
		s.PointerMove(px, py)
	case tea.MouseActionRelease:
		s.PointerUp()
	}
}

func (m model) saveExport() string {
	if m.export == nil {
		return "export disabled"
	}
	where, err := m.export(m.session)
	if err != nil {
		return "export failed: " + err.Error()
	}
	return "saved " + where
}

// colW is the display-space width of one terminal column. One grid cell is
// two columns by one row at the default zoom.
func (m model) colW() float64 {
	return m.session.Viewport().BasePixelSize() / 2
}

func (m model) rowH() float64 { return m.colW() * 2 }

func (m model) canvasSize() (int, int) {
	cols := m.width - canvasLeft*2
	rows := m.height - canvasTop - footerHeight
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (m *model) clampOffset() {
	cols, rows := m.canvasSize()
	w, h := m.session.Viewport().DisplaySize()
	maxX := math.Max(0, w-float64(cols)*m.colW())
	maxY := math.Max(0, h-float64(rows)*m.rowH())
	m.offX = math.Max(0, math.Min(m.offX, maxX))
	m.offY = math.Max(0, math.Min(m.offY, maxY))
}

func (m model) surface() *termSurface {
	cols, rows := m.canvasSize()
	return newTermSurface(cols, rows, m.colW(), m.offX, m.offY)
}

func (m model) View() string {
	s := m.session
	var b strings.Builder

	cols, rows := s.Grid().Dimensions()
	b.WriteString("  " + cyan.Render("p i x e d") + "  " +
		dim.Render(fmt.Sprintf("%dx%d  zoom %.1fx", cols, rows, s.Viewport().Zoom())) + "\n")
	b.WriteString(dimmer.Render("  "+strings.Repeat("─", max(m.width-4, 1))) + "\n")

	surf := m.surface()
	s.RenderFrame(surf)
	for _, line := range surf.cells {
		b.WriteString(strings.Repeat(" ", canvasLeft))
		b.WriteString(m.renderRow(line))
		b.WriteString("\n")
	}

	b.WriteString(dimmer.Render("  "+strings.Repeat("─", max(m.width-4, 1))) + "\n")
	b.WriteString("  " + white.Render(fmt.Sprintf("%-6s", s.Tool())) + " " +
		m.colors.render(s.Color(), "  ") + " " + magenta.Render(string(s.Color())) +
		dim.Render("   recent ") + m.swatchRow(s.RecentColors()) + "\n")
	b.WriteString("  " + dim.Render("palette ") + m.paletteRow() + "  " + dim.Render(m.status) + "\n")
	b.WriteString(dim.Render("  click draw  p paint  e erase  f fill  +/- zoom  0 reset  ←↑↓→ pan  s save  q quit"))

	return b.String()
}

// renderRow emits one terminal line, styling runs of equal color together.
func (m model) renderRow(line []grid.Color) string {
	var b strings.Builder
	for i := 0; i < len(line); {
		j := i
		for j < len(line) && line[j] == line[i] {
			j++
		}
		fill := strings.Repeat(" ", j-i)
		if !line[i].Painted() {
			fill = strings.Repeat("·", j-i)
		}
		b.WriteString(m.colors.render(line[i], fill))
		i = j
	}
	return b.String()
}

func (m model) swatchRow(colors []grid.Color) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = m.colors.render(c, "  ")
	}
	return strings.Join(parts, " ")
}

func (m model) paletteRow() string {
	parts := make([]string, len(m.palette))
	for i, c := range m.palette {
		parts[i] = dim.Render(fmt.Sprintf("%d", i+1)) + m.colors.render(c, "  ")
	}
	return strings.Join(parts, " ")
}

// Run starts the terminal editor and blocks until the user quits.
func Run(s *editor.Session, opts Options) error {
	p := tea.NewProgram(newModel(s, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
