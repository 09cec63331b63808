// Package toast provides auto-dismissing notices, e.g. for failed fetches or a
// finished refresh.
package toast

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maiconbre/barbershop/msg"
	"github.com/maiconbre/barbershop/style"
	"github.com/maiconbre/barbershop/ui/common"
)

// Level classifies toast severity.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

const (
	maxToasts = 3
	ttl       = 4 * time.Second
	tickEvery = 500 * time.Millisecond
)

type toast struct {
	message string
	level   Level
	expiry  time.Time
}

// Model manages a queue of auto-dismissing notices.
type Model struct {
	queue []toast
	now   func() time.Time
}

// New creates an empty Model.
func New() Model {
	return Model{now: time.Now}
}

// Add enqueues a notice and returns the command that keeps expiry ticking.
// Oldest notices are dropped beyond maxToasts.
func (m *Model) Add(message string, level Level) tea.Cmd {
	m.queue = append(m.queue, toast{
		message: message,
		level:   level,
		expiry:  m.clock().Add(ttl),
	})
	if len(m.queue) > maxToasts {
		m.queue = m.queue[len(m.queue)-maxToasts:]
	}
	return tick()
}

// Tick prunes expired notices. It returns the next tick command while any
// notice is still visible.
func (m *Model) Tick() tea.Cmd {
	now := m.clock()
	alive := m.queue[:0]
	for _, t := range m.queue {
		if now.Before(t.expiry) {
			alive = append(alive, t)
		}
	}
	m.queue = alive
	if len(m.queue) == 0 {
		return nil
	}
	return tick()
}

// Len returns the number of visible notices.
func (m Model) Len() int { return len(m.queue) }

// View renders visible notices right-aligned within width columns.
func (m Model) View(width int) string {
	if len(m.queue) == 0 {
		return ""
	}
	var lines []string
	for _, t := range m.queue {
		icon, col := iconColor(t.level)
		text := common.Truncate(fmt.Sprintf(" %s %s ", icon, t.message), width)
		rendered := lipgloss.NewStyle().Foreground(col).Render(text)
		pad := max(0, width-lipgloss.Width(rendered))
		lines = append(lines, strings.Repeat(" ", pad)+rendered)
	}
	return strings.Join(lines, "\n")
}

func (m Model) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(time.Time) tea.Msg { return msg.ToastTick{} })
}

func iconColor(level Level) (string, color.Color) {
	switch level {
	case Warning:
		return "⚠", style.Warning
	case Error:
		return "✘", style.Error
	default:
		return "✓", style.Success
	}
}
