// Package status provides the bottom status bar. It shows which rows of the
// active list are on screen, how far it is scrolled, and the virtualizer's
// work counters, followed by key hints.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/maiconbre/barbershop/style"
	"github.com/maiconbre/barbershop/ui/common"
	"github.com/maiconbre/barbershop/ui/window"
)

// Height is the number of lines View returns.
const Height = 2

// Model is the status bar state. Drive it via setter methods; it has no Update loop.
type Model struct {
	first, last int
	total       int
	unfiltered  int
	percent     float64
	rendered    window.Range
	stats       window.Stats
	renders     int
	loadedIn    time.Duration
	err         error
	hints       string
	width       int
}

// New returns a zero-value Model.
func New() Model {
	return Model{}
}

// SetViewport records the on-screen rows [first, last) out of total, and the
// scroll position in [0, 1].
func (m *Model) SetViewport(first, last, total int, percent float64) {
	m.first, m.last, m.total = first, last, total
	m.percent = percent
}

// SetUnfiltered records the item count before filtering. When it differs
// from the visible total the range label mentions it.
func (m *Model) SetUnfiltered(n int) { m.unfiltered = n }

// SetWindow records the rendered range and virtualizer counters.
func (m *Model) SetWindow(r window.Range, s window.Stats, renders int) {
	m.rendered = r
	m.stats = s
	m.renders = renders
}

// SetLoadTime records how long the last fetch took.
func (m *Model) SetLoadTime(d time.Duration) { m.loadedIn = d }

// SetError shows err in place of the counters until cleared with nil.
func (m *Model) SetError(err error) { m.err = err }

// SetHints sets the pre-rendered key hint line.
func (m *Model) SetHints(h string) { m.hints = h }

// SetWidth updates the terminal width.
func (m *Model) SetWidth(w int) { m.width = w }

// RangeLabel renders the visible rows, e.g. "rows 8–19 of 100". Rows are
// 1-based for display.
func (m Model) RangeLabel() string {
	if m.total == 0 || m.last <= m.first {
		if m.unfiltered > 0 {
			return fmt.Sprintf("no matches in %d", m.unfiltered)
		}
		return "no rows"
	}
	label := fmt.Sprintf("rows %d–%d of %d", m.first+1, m.last, m.total)
	if m.unfiltered > m.total {
		label += fmt.Sprintf(" (filtered from %d)", m.unfiltered)
	}
	return label
}

// View returns exactly Height lines.
func (m Model) View() string {
	var top string
	if m.err != nil {
		top = style.ErrorText.Render("✘ " + m.err.Error())
	} else {
		parts := []string{
			style.StatusRange.Render(m.RangeLabel()),
			style.Faint.Render(fmt.Sprintf("%3d%%", int(m.percent*100+0.5))),
			style.StatusStats.Render(fmt.Sprintf("window %s · %d recomputes · %d renders",
				m.rendered, m.stats.Recomputes, m.renders)),
		}
		if m.loadedIn > 0 {
			parts = append(parts, style.StatusStats.Render("loaded in "+m.loadedIn.Round(time.Millisecond).String()))
		}
		top = strings.Join(parts, style.HeaderSeparator.Render(" · "))
	}
	top = common.Truncate(style.StatusBar.Render(top), m.width)
	hints := common.Truncate(style.StatusBar.Render(m.hints), m.width)
	return top + "\n" + hints
}
