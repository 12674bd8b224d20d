// Package render draws farms and harvest plans as terminal output.
// ANSI colors are optional so the same renderer serves interactive
// sessions and piped logs.
//
// See design doc Section 6.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette for the terminal map, loosely after a kiwiberry orchard.
var (
	colorVine    = lipgloss.Color("#4E9A06") // fruit plots
	colorRipe    = lipgloss.Color("#8AE234") // headings
	colorStation = lipgloss.Color("#729FCF") // collection stations
	colorGold    = lipgloss.Color("#FFCC00") // start cell
	colorPath    = lipgloss.Color("#EF2929") // route overlay
	colorGround  = lipgloss.Color("#888A85") // empty ground
)

type styles struct {
	Ground  lipgloss.Style
	Plot    lipgloss.Style
	Station lipgloss.Style
	Start   lipgloss.Style
	Route   lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			Ground:  plain,
			Plot:    plain,
			Station: plain,
			Start:   plain,
			Route:   plain,
			Title:   plain,
			Muted:   plain,
		}
	}
	return styles{
		Ground:  lipgloss.NewStyle().Foreground(colorGround),
		Plot:    lipgloss.NewStyle().Foreground(colorVine).Bold(true),
		Station: lipgloss.NewStyle().Foreground(colorStation).Bold(true),
		Start:   lipgloss.NewStyle().Foreground(colorGold).Bold(true),
		Route:   lipgloss.NewStyle().Foreground(colorPath).Bold(true),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorRipe),
		Muted:   lipgloss.NewStyle().Foreground(colorGround),
	}
}

// Renderer draws farms and plans for the terminal. New(false) produces
// plain ASCII, New(true) adds ANSI colors.
type Renderer struct {
	st styles
}

func New(color bool) *Renderer {
	return &Renderer{st: newStyles(color)}
}
