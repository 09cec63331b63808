package common

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "…", Truncate("hello", 1))
	assert.Equal(t, "", Truncate("hello", 0))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", Fit("ab", 5))
	assert.Equal(t, "abc…", Fit("abcdefgh", 4))
	assert.Equal(t, 6, lipgloss.Width(Fit("José", 6)))
}

func TestFitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, FitLines("a\nb\nc", 2))
	assert.Equal(t, []string{"a", "", ""}, FitLines("a", 3))
	assert.Nil(t, FitLines("a", 0))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "R$ 45,00", FormatPrice(45))
	assert.Equal(t, "R$ 12,50", FormatPrice(12.5))

	assert.Equal(t, "Mon 19/10 14:30", FormatSlot("2026-10-19", "14:30"))
	assert.Equal(t, "tomorrow 09:00", FormatSlot("tomorrow", "09:00"))

	assert.Equal(t, "★★★★☆", FormatRating(4))
	assert.Equal(t, "☆☆☆☆☆", FormatRating(-2))
	assert.Equal(t, "★★★★★", FormatRating(9))
}

// ---------------------------------------------------------------------------
// Scrollbar
// ---------------------------------------------------------------------------

func TestThumb_NoOverflow(t *testing.T) {
	_, _, ok := Thumb(10, 10, 0)
	assert.False(t, ok)
	assert.Equal(t, "", Scrollbar(10, 4, 0))
}

func TestThumb_Position(t *testing.T) {
	top, h, ok := Thumb(10, 100, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, top)
	assert.Equal(t, 1, h)

	top, h, _ = Thumb(10, 100, 90)
	assert.Equal(t, 9, top)
	assert.Equal(t, 1, h)

	top, h, _ = Thumb(10, 20, 5)
	assert.Equal(t, 5, h)
	assert.Equal(t, 2, top)
}

func TestScrollbar_Height(t *testing.T) {
	bar := Scrollbar(8, 40, 0)
	lines := strings.Split(bar, "\n")
	assert.Len(t, lines, 8)
	assert.Equal(t, "█", ansi.Strip(lines[0]))
	assert.Equal(t, "│", ansi.Strip(lines[7]))
}

func TestKeyHelp_SkipsDisabled(t *testing.T) {
	open := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	off.SetEnabled(false)

	out := ansi.Strip(KeyHelp(open, off))
	assert.Equal(t, "enter open", out)
}

func TestMatchSpan(t *testing.T) {
	s, e := MatchSpan("Mariana", "ANA")
	assert.Equal(t, 4, s)
	assert.Equal(t, 7, e)

	s, e = MatchSpan("JOÃO", "ão")
	assert.Equal(t, "ÃO", "JOÃO"[s:e])

	s, _ = MatchSpan("Bruno", "ana")
	assert.Equal(t, -1, s)
	s, _ = MatchSpan("Bruno", "")
	assert.Equal(t, -1, s)
}

func TestHighlight(t *testing.T) {
	plain := lipgloss.NewStyle()
	hl := lipgloss.NewStyle().Bold(true)

	assert.Equal(t, "Mariana", ansi.Strip(Highlight("Mariana", "ana", plain, hl)))
	assert.Equal(t, "Bruno", Highlight("Bruno", "ana", plain, hl))
	assert.Equal(t, "ana", ansi.Strip(Highlight("ana", "ANA", plain, hl)))
}
