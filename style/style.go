package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors, initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = lipgloss.Color("#B45309")
	Secondary color.Color = lipgloss.Color("#0EA5E9")
	Success   color.Color = lipgloss.Color("#22C55E")
	Warning   color.Color = lipgloss.Color("#F59E0B")
	Error     color.Color = lipgloss.Color("#EF4444")
	Muted     color.Color = lipgloss.Color("#6B7280")
	Dim       color.Color = lipgloss.Color("#374151")
	Border    color.Color = lipgloss.Color("#4B5563")

	SelectionBgColor color.Color = lipgloss.Color("#78350F")
	SelectionFgColor color.Color = lipgloss.Color("#FFFFFF")
)

// Base styles, rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style
	Hint      lipgloss.Style

	// Header
	HeaderTenant    lipgloss.Style
	HeaderCount     lipgloss.Style
	HeaderSeparator lipgloss.Style

	// Tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Rows
	RowTime     lipgloss.Style
	RowClient   lipgloss.Style
	RowService  lipgloss.Style
	RowBarber   lipgloss.Style
	RowPrice    lipgloss.Style
	RowSelected lipgloss.Style
	RowAuthor   lipgloss.Style
	RowRating   lipgloss.Style
	RowMatch    lipgloss.Style // filter hits inside a row

	// Appointment status badges
	StatusPending   lipgloss.Style
	StatusConfirmed lipgloss.Style
	StatusCompleted lipgloss.Style
	StatusCanceled  lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusRange lipgloss.Style
	StatusStats lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Detail pane
	DetailBorder lipgloss.Style

	// Filter prompt
	FilterPrompt lipgloss.Style

	SpinnerStyle lipgloss.Style

	ScrollbarThumb lipgloss.Style
	ScrollbarTrack lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	SelectionBgColor = t.SelectionBg
	SelectionFgColor = t.SelectionFg
	rebuildStyles()
	return true
}

// IsDark returns whether the current theme is dark.
func IsDark() bool {
	return CurrentThemeName != "light"
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Hint = lipgloss.NewStyle().Foreground(Dim)

	HeaderTenant = lipgloss.NewStyle().Foreground(Muted)
	HeaderCount = lipgloss.NewStyle().Foreground(Secondary)
	HeaderSeparator = lipgloss.NewStyle().Foreground(Dim)

	TabActive = lipgloss.NewStyle().Foreground(Primary).Bold(true).Underline(true)
	TabInactive = lipgloss.NewStyle().Foreground(Muted)

	RowTime = lipgloss.NewStyle().Foreground(Secondary)
	RowClient = lipgloss.NewStyle().Bold(true)
	RowService = lipgloss.NewStyle().Foreground(Muted)
	RowBarber = lipgloss.NewStyle().Foreground(Primary)
	RowPrice = lipgloss.NewStyle().Foreground(Success)
	RowSelected = lipgloss.NewStyle().
		Background(SelectionBgColor).
		Foreground(SelectionFgColor)
	RowAuthor = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	RowRating = lipgloss.NewStyle().Foreground(Warning)
	RowMatch = lipgloss.NewStyle().Foreground(Warning).Bold(true).Underline(true)

	StatusPending = lipgloss.NewStyle().Foreground(Warning)
	StatusConfirmed = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	StatusCompleted = lipgloss.NewStyle().Foreground(Success)
	StatusCanceled = lipgloss.NewStyle().Foreground(Error).Strikethrough(true)

	StatusBar = lipgloss.NewStyle().Foreground(Muted).PaddingLeft(1)
	StatusRange = lipgloss.NewStyle().Foreground(Secondary)
	StatusStats = lipgloss.NewStyle().Foreground(Dim)

	HelpKey = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(Muted)

	DetailBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	FilterPrompt = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	SpinnerStyle = lipgloss.NewStyle().Foreground(Primary)

	ScrollbarThumb = lipgloss.NewStyle().Foreground(Primary)
	ScrollbarTrack = lipgloss.NewStyle().Foreground(Dim)
}

// AppointmentStatus returns the badge style for an appointment status.
func AppointmentStatus(status string) lipgloss.Style {
	switch status {
	case "confirmed":
		return StatusConfirmed
	case "completed":
		return StatusCompleted
	case "canceled", "cancelled":
		return StatusCanceled
	default:
		return StatusPending
	}
}
