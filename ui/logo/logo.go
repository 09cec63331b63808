// Package logo renders the barber-pole splash shown while connecting.
package logo

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/maiconbre/barbershop/style"
)

// pole is drawn with alternating stripe colors per row.
var pole = []string{
	" ╭───╮ ",
	" │╲╲╲│ ",
	" │╲╲╲│ ",
	" │╲╲╲│ ",
	" ╰───╯ ",
}

// CompactLogo is used when the terminal is too narrow for the full splash.
const CompactLogo = "✂ barbershop"

// fullLogoMinWidth is the minimum width for the pole splash.
const fullLogoMinWidth = 30

// Render returns the splash sized for width.
func Render(width int) string {
	if width < fullLogoMinWidth {
		return style.Brand(CompactLogo)
	}
	stripes := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(style.Error),
		lipgloss.NewStyle().Foreground(style.SelectionFgColor),
		lipgloss.NewStyle().Foreground(style.Secondary),
	}
	frame := lipgloss.NewStyle().Foreground(style.Border)

	lines := make([]string, len(pole))
	for i, row := range pole {
		if i == 0 || i == len(pole)-1 {
			lines[i] = frame.Render(row)
			continue
		}
		lines[i] = frame.Render(" │") + stripes[(i-1)%len(stripes)].Render("╲╲╲") + frame.Render("│ ")
	}
	art := strings.Join(lines, "\n")
	title := style.Brand(CompactLogo)
	return lipgloss.JoinHorizontal(lipgloss.Center, art, "  ", title)
}

// RenderTagline returns the muted subtitle under the splash.
func RenderTagline(baseURL string) string {
	return lipgloss.NewStyle().Foreground(style.Muted).Italic(true).Render(baseURL)
}
