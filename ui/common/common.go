// Package common provides shared rendering helpers and formatting utilities
// used across the barbershop TUI components.
package common

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/maiconbre/barbershop/style"
)

// ---------------------------------------------------------------------------
// Text truncation / padding
// ---------------------------------------------------------------------------

// Truncate shortens s to maxLen display columns, appending "…" if truncated.
// ANSI styling in s is preserved.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxLen, "…")
}

// PadRight pads s on the right with spaces until the rendered display width
// equals width. Returns s unchanged if it already meets or exceeds width.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Fit truncates or pads plain text to exactly width columns.
func Fit(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}

// FitLines returns exactly n lines: s is split on newlines, cut to n, and
// padded with blank lines.
func FitLines(s string, n int) []string {
	if n <= 0 {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// ---------------------------------------------------------------------------
// Human-readable formatters
// ---------------------------------------------------------------------------

// FormatPrice formats an amount in reais.
//
//	45    → "R$ 45,00"
//	12.5  → "R$ 12,50"
func FormatPrice(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	return "R$ " + strings.Replace(s, ".", ",", 1)
}

// FormatSlot renders an appointment date and time, e.g. "Mon 19/10 14:30".
// Unparseable values are shown as given.
func FormatSlot(date, clock string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return strings.TrimSpace(date + " " + clock)
	}
	return t.Format("Mon 02/01") + " " + clock
}

// FormatRating renders a 0–5 rating as stars: 4 → "★★★★☆".
func FormatRating(r int) string {
	r = min(max(r, 0), 5)
	return strings.Repeat("★", r) + strings.Repeat("☆", 5-r)
}

// ---------------------------------------------------------------------------
// Status badge
// ---------------------------------------------------------------------------

// StatusBadge renders a colored status indicator: "● label" green if ok, red otherwise.
func StatusBadge(label string, ok bool) string {
	dot := "●"
	if ok {
		return lipgloss.NewStyle().Foreground(style.Success).Render(dot + " " + label)
	}
	return lipgloss.NewStyle().Foreground(style.Error).Render(dot + " " + label)
}
