package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the TUI.
type Theme struct {
	Name                                        string
	Primary, Secondary, Success, Warning, Error color.Color
	Muted, Dim, Border                          color.Color

	SelectionBg color.Color
	SelectionFg color.Color
}

// Built-in themes.
var (
	darkTheme = Theme{
		Name:        "dark",
		Primary:     lipgloss.Color("#D97706"),
		Secondary:   lipgloss.Color("#0EA5E9"),
		Success:     lipgloss.Color("#22C55E"),
		Warning:     lipgloss.Color("#F59E0B"),
		Error:       lipgloss.Color("#EF4444"),
		Muted:       lipgloss.Color("#6B7280"),
		Dim:         lipgloss.Color("#374151"),
		Border:      lipgloss.Color("#4B5563"),
		SelectionBg: lipgloss.Color("#78350F"),
		SelectionFg: lipgloss.Color("#FFFFFF"),
	}

	lightTheme = Theme{
		Name:        "light",
		Primary:     lipgloss.Color("#B45309"),
		Secondary:   lipgloss.Color("#0369A1"),
		Success:     lipgloss.Color("#16A34A"),
		Warning:     lipgloss.Color("#D97706"),
		Error:       lipgloss.Color("#DC2626"),
		Muted:       lipgloss.Color("#9CA3AF"),
		Dim:         lipgloss.Color("#D1D5DB"),
		Border:      lipgloss.Color("#9CA3AF"),
		SelectionBg: lipgloss.Color("#FDE68A"),
		SelectionFg: lipgloss.Color("#1F2937"),
	}

	// Classic barber-pole palette.
	poleTheme = Theme{
		Name:        "pole",
		Primary:     lipgloss.Color("#E11D48"),
		Secondary:   lipgloss.Color("#2563EB"),
		Success:     lipgloss.Color("#10B981"),
		Warning:     lipgloss.Color("#FBBF24"),
		Error:       lipgloss.Color("#F43F5E"),
		Muted:       lipgloss.Color("#94A3B8"),
		Dim:         lipgloss.Color("#334155"),
		Border:      lipgloss.Color("#475569"),
		SelectionBg: lipgloss.Color("#1E3A8A"),
		SelectionFg: lipgloss.Color("#F8FAFC"),
	}
)

// Themes maps theme names to their definitions.
var Themes = map[string]Theme{
	"dark":  darkTheme,
	"light": lightTheme,
	"pole":  poleTheme,
}

// ThemeNames lists available themes in display order.
var ThemeNames = []string{"dark", "light", "pole"}

// CurrentThemeName tracks the active theme name.
var CurrentThemeName = "dark"
