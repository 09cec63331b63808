// Package detail renders a single appointment or comment as markdown in a
// scrollable pane.
package detail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/maiconbre/barbershop/client"
	"github.com/maiconbre/barbershop/style"
	"github.com/maiconbre/barbershop/ui/common"
	"github.com/maiconbre/barbershop/ui/scroll"
)

// Model is the detail pane. The zero value is not usable; construct with New.
type Model struct {
	title    string
	markdown string

	lines    []string
	rendered int // width lines were rendered for; 0 means stale

	width, height int
	surface       *scroll.Surface
}

// New returns an empty pane.
func New() *Model {
	return &Model{surface: scroll.New(0, 0)}
}

// SetAppointment shows a.
func (m *Model) SetAppointment(a client.Appointment) {
	m.set(a.ClientName, AppointmentMarkdown(a))
}

// SetComment shows c.
func (m *Model) SetComment(c client.Comment) {
	m.set(c.Name, CommentMarkdown(c))
}

func (m *Model) set(title, md string) {
	m.title = title
	m.markdown = md
	m.rendered = 0
	m.surface.ScrollToTop()
}

// SetSize updates the pane's outer dimensions.
func (m *Model) SetSize(w, h int) {
	if w != m.width {
		m.rendered = 0
	}
	m.width, m.height = w, h
	m.layout()
}

// Invalidate forces markdown to be rendered again, e.g. after a theme change.
func (m *Model) Invalidate() { m.rendered = 0 }

// Title returns the heading of the shown item.
func (m *Model) Title() string { return m.title }

// Surface exposes the pane's scroll surface.
func (m *Model) Surface() *scroll.Surface { return m.surface }

// Update scrolls on mouse-wheel events.
func (m *Model) Update(msg tea.Msg) {
	m.surface.Update(msg)
}

// inner dimensions exclude the rounded border and its horizontal padding.
func (m *Model) inner() (w, h int) {
	return max(1, m.width-4), max(1, m.height-2)
}

func (m *Model) layout() {
	w, h := m.inner()
	if m.rendered != w {
		m.lines = strings.Split(Render(m.markdown, w-1), "\n")
		m.rendered = w
	}
	m.surface.SetBounds(h, len(m.lines))
}

// View renders the bordered pane at exactly the size given to SetSize.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.layout()
	w, h := m.inner()
	off := int(m.surface.Offset())

	body := make([]string, h)
	for i := range body {
		if j := off + i; j < len(m.lines) {
			body[i] = common.PadRight(common.Truncate(m.lines[j], w-1), w-1)
		} else {
			body[i] = strings.Repeat(" ", w-1)
		}
	}
	content := strings.Join(body, "\n")
	if bar := common.Scrollbar(h, len(m.lines), off); bar != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, bar)
	}
	return style.DetailBorder.Render(content)
}

// ---------------------------------------------------------------------------
// Markdown
// ---------------------------------------------------------------------------

// AppointmentMarkdown describes a as a markdown card.
func AppointmentMarkdown(a client.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.ClientName)
	fmt.Fprintf(&b, "**%s** with **%s**\n\n", orDash(a.ServiceName), orDash(a.BarberName))
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| When | %s |\n", common.FormatSlot(a.Date, a.Time))
	fmt.Fprintf(&b, "| Price | %s |\n", common.FormatPrice(a.Price))
	fmt.Fprintf(&b, "| Status | %s |\n", orDash(a.Status))
	if a.WhatsApp != "" {
		fmt.Fprintf(&b, "| WhatsApp | %s |\n", a.WhatsApp)
	}
	fmt.Fprintf(&b, "| ID | `%s` |\n", a.ID)
	if notes := strings.TrimSpace(a.Notes); notes != "" {
		b.WriteString("\n## Notes\n\n")
		b.WriteString(notes)
		b.WriteString("\n")
	}
	return b.String()
}

// CommentMarkdown describes c as a markdown card.
func CommentMarkdown(c client.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	if c.Rating > 0 {
		fmt.Fprintf(&b, "%s\n\n", common.FormatRating(c.Rating))
	}
	for _, line := range strings.Split(strings.TrimSpace(c.Comment), "\n") {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	if c.CreatedAt != "" || c.Status != "" {
		fmt.Fprintf(&b, "\n_%s_\n", strings.TrimSpace(c.CreatedAt+" "+c.Status))
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// Render converts markdown to styled ANSI text wrapped at width, falling back
// to the raw text if glamour fails.
func Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	theme := "dark"
	if !style.IsDark() {
		theme = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(max(10, width)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
