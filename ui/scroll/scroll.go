// Package scroll provides the line-based scroll surface that backs every
// virtualized list in the barbershop TUI.
//
// A Surface owns a single offset clamped to [0, content-viewport] and fans
// offset changes out to its listeners, serially and in subscription order.
// Listeners only fire when the offset actually moves.
package scroll

import (
	tea "charm.land/bubbletea/v2"
)

// WheelStep is the number of lines scrolled per mouse-wheel notch.
const WheelStep = 3

type listener struct {
	id int
	fn func(float64)
}

// Surface is a vertical scroll position over content lines.
// The zero value is not usable; construct with New.
type Surface struct {
	viewport int
	content  int
	offset   int

	listeners []listener
	nextID    int
}

// New returns a Surface showing viewport lines of content lines.
func New(viewport, content int) *Surface {
	s := &Surface{}
	s.viewport = max(0, viewport)
	s.content = max(0, content)
	return s
}

// ---------------------------------------------------------------------------
// window.Surface
// ---------------------------------------------------------------------------

// Offset returns the first visible content line.
func (s *Surface) Offset() float64 { return float64(s.offset) }

// Subscribe registers fn for offset changes. The returned function detaches
// it and may be called more than once.
func (s *Surface) Subscribe(fn func(offset float64)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of attached listeners.
func (s *Surface) Listeners() int { return len(s.listeners) }

// ---------------------------------------------------------------------------
// Bounds
// ---------------------------------------------------------------------------

// SetBounds updates the viewport and content sizes and reclamps the offset.
func (s *Surface) SetBounds(viewport, content int) {
	s.viewport = max(0, viewport)
	s.content = max(0, content)
	s.set(s.offset)
}

// Viewport returns the number of visible lines.
func (s *Surface) Viewport() int { return s.viewport }

// Content returns the total number of content lines.
func (s *Surface) Content() int { return s.content }

// MaxOffset returns the largest valid offset.
func (s *Surface) MaxOffset() int { return max(0, s.content-s.viewport) }

// ---------------------------------------------------------------------------
// Movement
// ---------------------------------------------------------------------------

// ScrollTo moves the first visible line to line, clamped to valid bounds.
func (s *Surface) ScrollTo(line int) { s.set(line) }

// ScrollBy moves the offset by delta lines (positive = down).
func (s *Surface) ScrollBy(delta int) { s.set(s.offset + delta) }

// ScrollToTop jumps to the first line.
func (s *Surface) ScrollToTop() { s.set(0) }

// ScrollToBottom jumps so the last line sits at the bottom of the viewport.
func (s *Surface) ScrollToBottom() { s.set(s.MaxOffset()) }

// PageDown scrolls down by one viewport.
func (s *Surface) PageDown() { s.ScrollBy(s.viewport) }

// PageUp scrolls up by one viewport.
func (s *Surface) PageUp() { s.ScrollBy(-s.viewport) }

// HalfPageDown scrolls down by half a viewport.
func (s *Surface) HalfPageDown() { s.ScrollBy(max(1, s.viewport/2)) }

// HalfPageUp scrolls up by half a viewport.
func (s *Surface) HalfPageUp() { s.ScrollBy(-max(1, s.viewport/2)) }

// EnsureVisible scrolls the minimum distance needed to show lines
// [start, end). A span taller than the viewport is aligned to its top.
func (s *Surface) EnsureVisible(start, end int) {
	switch {
	case start < s.offset:
		s.set(start)
	case end > s.offset+s.viewport:
		if end-start > s.viewport {
			s.set(start)
		} else {
			s.set(end - s.viewport)
		}
	}
}

// AtTop reports whether the first line is visible.
func (s *Surface) AtTop() bool { return s.offset == 0 }

// AtBottom reports whether the last line is visible.
func (s *Surface) AtBottom() bool { return s.offset >= s.MaxOffset() }

// Percent returns how far the viewport has travelled, in [0, 1].
func (s *Surface) Percent() float64 {
	m := s.MaxOffset()
	if m == 0 {
		return 1
	}
	return float64(s.offset) / float64(m)
}

// Update scrolls on mouse-wheel messages. Other messages are ignored.
func (s *Surface) Update(msg tea.Msg) {
	if wheel, ok := msg.(tea.MouseWheelMsg); ok {
		switch wheel.Button {
		case tea.MouseWheelUp:
			s.ScrollBy(-WheelStep)
		case tea.MouseWheelDown:
			s.ScrollBy(WheelStep)
		}
	}
}

// set clamps line and notifies listeners when the offset changes.
func (s *Surface) set(line int) {
	line = min(max(line, 0), s.MaxOffset())
	if line == s.offset {
		return
	}
	s.offset = line
	// Copy so a listener that unsubscribes mid-dispatch does not skip the next.
	ls := append([]listener(nil), s.listeners...)
	for _, l := range ls {
		l.fn(float64(line))
	}
}
