package detail

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maiconbre/barbershop/client"
)

func sampleAppointment() client.Appointment {
	return client.Appointment{
		ID:          "a-17",
		ClientName:  "João Pereira",
		ServiceName: "Corte + Barba",
		BarberName:  "Zé",
		Date:        "2026-10-19",
		Time:        "14:30",
		Price:       70,
		Status:      client.StatusConfirmed,
		Notes:       "Prefers scissors on top.",
	}
}

func TestAppointmentMarkdown(t *testing.T) {
	md := AppointmentMarkdown(sampleAppointment())
	assert.Contains(t, md, "# João Pereira")
	assert.Contains(t, md, "**Corte + Barba** with **Zé**")
	assert.Contains(t, md, "| When | Mon 19/10 14:30 |")
	assert.Contains(t, md, "| Price | R$ 70,00 |")
	assert.Contains(t, md, "## Notes")
	assert.NotContains(t, md, "WhatsApp")
}

func TestCommentMarkdown(t *testing.T) {
	md := CommentMarkdown(client.Comment{Name: "Ana", Comment: "Ótimo.\nVoltarei.", Rating: 4})
	assert.Contains(t, md, "# Ana")
	assert.Contains(t, md, "★★★★☆")
	assert.Contains(t, md, "> Ótimo.\n> Voltarei.")
}

func TestRender_KeepsText(t *testing.T) {
	out := ansi.Strip(Render("# Title\n\nhello world", 40))
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "hello world")
}

func TestRender_BlankIsEmpty(t *testing.T) {
	assert.Equal(t, "", Render("", 40))
	assert.Equal(t, "", Render("  \n\t", 40))
}

func TestView_ExactSize(t *testing.T) {
	m := New()
	m.SetAppointment(sampleAppointment())
	m.SetSize(50, 12)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 12)
	for _, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 50)
	}
	assert.Contains(t, ansi.Strip(m.View()), "João Pereira")
}

func TestView_ScrollsLongContent(t *testing.T) {
	long := client.Appointment{ClientName: "Long", Notes: strings.Repeat("line of notes\n\n", 40)}
	m := New()
	m.SetAppointment(long)
	m.SetSize(40, 10)
	_ = m.View()

	s := m.Surface()
	assert.Greater(t, s.Content(), s.Viewport())
	s.ScrollToBottom()
	assert.True(t, s.AtBottom())

	// A new item starts at the top again.
	m.SetComment(client.Comment{Name: "Ana", Comment: "ok"})
	assert.True(t, m.Surface().AtTop())
	assert.Equal(t, "Ana", m.Title())
}
