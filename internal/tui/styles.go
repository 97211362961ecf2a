package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/pixed/internal/grid"
	"github.com/san-kum/pixed/internal/render"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// swatches caches one background style per color key.
type swatches map[grid.Color]lipgloss.Style

func (sw swatches) style(c grid.Color) lipgloss.Style {
	if st, ok := sw[c]; ok {
		return st
	}
	rgba := render.RGBA(c)
	st := lipgloss.NewStyle().Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)))
	sw[c] = st
	return st
}

func (sw swatches) render(c grid.Color, text string) string {
	if !c.Painted() {
		return dimmer.Render(text)
	}
	return sw.style(c).Render(text)
}
