package app

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/maiconbre/barbershop/client"
	"github.com/maiconbre/barbershop/style"
	"github.com/maiconbre/barbershop/ui/common"
	"github.com/maiconbre/barbershop/ui/list"
)

// Fixed column widths for appointment rows; the client column takes the rest.
const (
	colSlot    = 15
	colService = 18
	colBarber  = 12
	colPrice   = 11
	colStatus  = 10
	colGap     = 2
)

// appointmentRenderer draws one appointment per row, marking hits of the
// current filter. With a row height above one the second line carries the
// notes.
func appointmentRenderer(query func() string) list.RenderFunc[client.Appointment] {
	return func(a client.Appointment, width int) string {
		return renderAppointment(a, width, query())
	}
}

func renderAppointment(a client.Appointment, width int, query string) string {
	cols := []struct {
		text   string
		width  int
		style  lipgloss.Style
		search bool
	}{
		{common.FormatSlot(a.Date, a.Time), colSlot, style.RowTime, false},
		{a.ClientName, 0, style.RowClient, true},
		{a.ServiceName, colService, style.RowService, true},
		{a.BarberName, colBarber, style.RowBarber, true},
		{common.FormatPrice(a.Price), colPrice, style.RowPrice, false},
		{a.Status, colStatus, style.AppointmentStatus(a.Status), true},
	}

	fixed := 0
	for _, c := range cols {
		fixed += c.width + colGap
	}
	flex := max(8, width-fixed)

	var b strings.Builder
	for i, c := range cols {
		w := c.width
		if w == 0 {
			w = flex
		}
		if i > 0 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
		text := common.Fit(c.text, w)
		if c.search {
			b.WriteString(common.Highlight(text, query, c.style, style.RowMatch))
		} else {
			b.WriteString(c.style.Render(text))
		}
	}
	line := b.String()

	if notes := strings.TrimSpace(a.Notes); notes != "" {
		notes = strings.ReplaceAll(notes, "\n", " ")
		line += "\n" + strings.Repeat(" ", colSlot+colGap) + style.Faint.Render(notes)
	}
	return line
}

func commentRenderer(query func() string) list.RenderFunc[client.Comment] {
	return func(c client.Comment, width int) string {
		return renderComment(c, width, query())
	}
}

// renderComment draws one comment: rating, author, then the text on one line.
func renderComment(c client.Comment, width int, query string) string {
	rating := style.RowRating.Render(common.FormatRating(c.Rating))
	author := common.Highlight(common.Fit(c.Name, 16), query, style.RowAuthor, style.RowMatch)
	text := strings.ReplaceAll(strings.TrimSpace(c.Comment), "\n", " ")
	text = common.Highlight(common.Truncate(text, max(1, width-25)), query, lipgloss.NewStyle(), style.RowMatch)
	line := rating + "  " + author + "  " + text
	if c.CreatedAt != "" {
		line += "\n" + strings.Repeat(" ", 7) + style.Faint.Render(c.CreatedAt)
	}
	return line
}

// appointmentLabel is the text matched by the filter prompt.
func appointmentLabel(a client.Appointment) string {
	return strings.Join([]string{a.ClientName, a.ServiceName, a.BarberName, a.Status, a.Date}, " ")
}

func commentLabel(c client.Comment) string {
	return c.Name + " " + c.Comment
}
