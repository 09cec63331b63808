// Package list provides a virtualized, fixed-row-height scrollable list
// widget for the barbershop TUI. It is built for long tables such as a
// shop's full appointment history, where rendering every row on every
// frame is wasteful.
//
// Key properties:
//   - Three layers: a viewport of height lines, a spacer of
//     len(items)*rowHeight lines (what the scrollbar measures) and a
//     rendered block holding only the rows the window package says are
//     needed, positioned at Range.OffsetY.
//   - The block is rebuilt at most once per visible-range change, lazily on
//     the next View. Scrolling inside the same range only re-slices already
//     rendered lines.
//   - A cursor row is kept inside the viewport and highlighted at view time,
//     so moving it never forces a rebuild.
//   - The list owns one scroll listener; Close releases it.
package list

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/maiconbre/barbershop/style"
	"github.com/maiconbre/barbershop/ui/common"
	"github.com/maiconbre/barbershop/ui/scroll"
	"github.com/maiconbre/barbershop/ui/window"
)

// RenderFunc renders one item into at most rowHeight lines of width columns.
type RenderFunc[T any] func(item T, width int) string

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

type options struct {
	width     int
	height    int
	rowHeight int
	overscan  int
}

// Option is a functional option for New.
type Option func(*options)

// WithSize sets the initial viewport width and height (in terminal lines).
func WithSize(w, h int) Option {
	return func(o *options) {
		o.width = w
		o.height = h
	}
}

// WithRowHeight sets the fixed number of lines each item occupies.
func WithRowHeight(h int) Option {
	return func(o *options) { o.rowHeight = h }
}

// WithOverscan sets how many rows past each viewport edge stay rendered.
func WithOverscan(n int) Option {
	return func(o *options) { o.overscan = n }
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is a virtualized list of T. Construct with New; call Close when the
// list is discarded.
type Model[T any] struct {
	width     int
	height    int
	rowHeight int

	render  RenderFunc[T]
	surface *scroll.Surface
	win     *window.Virtualizer[T]
	stop    func()

	// block holds rendered lines for blockRange. dirty is raised by range
	// change notifications and content mutations.
	block      []string
	blockRange window.Range
	dirty      bool
	renders    int

	cursor int
}

// New builds a list with no items. Invalid dimensions (row height or
// viewport height < 1, negative overscan) are reported as
// window.ErrInvalidConfig.
func New[T any](render RenderFunc[T], opts ...Option) (*Model[T], error) {
	o := options{width: 80, height: 20, rowHeight: 1, overscan: window.DefaultOverscan}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := window.Config{
		ItemSize:      float64(o.rowHeight),
		ContainerSize: float64(o.height),
		Overscan:      o.overscan,
	}
	win, err := window.New[T](cfg, nil)
	if err != nil {
		return nil, err
	}

	m := &Model[T]{
		width:     o.width,
		height:    o.height,
		rowHeight: o.rowHeight,
		render:    render,
		surface:   scroll.New(o.height, 0),
		win:       win,
	}
	m.stop = win.OnChange(func(window.Range) { m.dirty = true })
	win.Mount(m.surface)
	return m, nil
}

// Close detaches the list from its scroll surface and drops subscribers.
func (m *Model[T]) Close() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
	m.win.Unmount()
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// SetItems replaces the items and keeps the cursor in range. The visible
// block is rendered again on the next View.
func (m *Model[T]) SetItems(items []T) {
	m.win.SetItems(items)
	m.surface.SetBounds(m.height, len(items)*m.rowHeight)
	m.cursor = min(m.cursor, max(0, len(items)-1))
	m.dirty = true
}

// SetSize updates the viewport dimensions. A height below one line is an
// invalid configuration and leaves the list untouched.
func (m *Model[T]) SetSize(w, h int) error {
	cfg := m.win.Config()
	cfg.ContainerSize = float64(h)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if w != m.width {
		m.dirty = true
	}
	m.width = w
	m.height = h
	m.surface.SetBounds(h, m.win.Len()*m.rowHeight)
	_ = m.win.SetConfig(cfg)
	m.keepCursorVisible()
	return nil
}

// SetOverscan changes the overscan margin.
func (m *Model[T]) SetOverscan(n int) error {
	cfg := m.win.Config()
	cfg.Overscan = n
	return m.win.SetConfig(cfg)
}

// Invalidate forces the visible block to be rendered again, e.g. after a
// theme change.
func (m *Model[T]) Invalidate() { m.dirty = true }

// ensureBlock renders the visible rows if the range, the items or the width
// changed since the last render.
func (m *Model[T]) ensureBlock() {
	if !m.dirty {
		return
	}
	m.dirty = false
	m.renders++
	m.blockRange = m.win.Range()
	m.block = m.block[:0]
	cw := m.contentWidth()
	m.win.Each(func(_ int, item T) {
		for _, line := range common.FitLines(m.render(item, cw), m.rowHeight) {
			m.block = append(m.block, ansi.Truncate(line, cw, ""))
		}
	})
}

// contentWidth leaves one column for the scrollbar.
func (m *Model[T]) contentWidth() int {
	return max(1, m.width-1)
}

// ---------------------------------------------------------------------------
// Cursor
// ---------------------------------------------------------------------------

// Selected returns the cursor index, or -1 for an empty list.
func (m *Model[T]) Selected() int {
	if m.win.Len() == 0 {
		return -1
	}
	return m.cursor
}

// SelectedItem returns the item under the cursor.
func (m *Model[T]) SelectedItem() (T, bool) {
	var zero T
	i := m.Selected()
	if i < 0 {
		return zero, false
	}
	return m.win.Items()[i], true
}

// Select moves the cursor to index i (clamped) and scrolls it into view.
func (m *Model[T]) Select(i int) {
	n := m.win.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(i, 0), n-1)
	m.surface.EnsureVisible(m.cursor*m.rowHeight, (m.cursor+1)*m.rowHeight)
}

// CursorUp moves the cursor up one row.
func (m *Model[T]) CursorUp() { m.Select(m.cursor - 1) }

// CursorDown moves the cursor down one row.
func (m *Model[T]) CursorDown() { m.Select(m.cursor + 1) }

// CursorTop moves the cursor to the first row.
func (m *Model[T]) CursorTop() { m.Select(0) }

// CursorBottom moves the cursor to the last row.
func (m *Model[T]) CursorBottom() { m.Select(m.win.Len() - 1) }

// PageDown scrolls one viewport down and moves the cursor with it.
func (m *Model[T]) PageDown() { m.Select(m.cursor + m.rowsPerPage()) }

// PageUp scrolls one viewport up and moves the cursor with it.
func (m *Model[T]) PageUp() { m.Select(m.cursor - m.rowsPerPage()) }

// HalfPageDown moves half a viewport down.
func (m *Model[T]) HalfPageDown() { m.Select(m.cursor + max(1, m.rowsPerPage()/2)) }

// HalfPageUp moves half a viewport up.
func (m *Model[T]) HalfPageUp() { m.Select(m.cursor - max(1, m.rowsPerPage()/2)) }

func (m *Model[T]) rowsPerPage() int {
	return max(1, m.height/m.rowHeight)
}

// keepCursorVisible drags the cursor into the viewport after the viewport
// moved on its own (wheel, resize).
func (m *Model[T]) keepCursorVisible() {
	if m.win.Len() == 0 {
		return
	}
	off := int(m.surface.Offset())
	first := (off + m.rowHeight - 1) / m.rowHeight
	last := (off+m.height)/m.rowHeight - 1
	if last < first {
		last = first
	}
	m.cursor = min(max(m.cursor, first), min(last, m.win.Len()-1))
}

// IndexAt returns the item index drawn at viewport row y, or -1.
func (m *Model[T]) IndexAt(y int) int {
	if y < 0 || y >= m.height {
		return -1
	}
	i := (int(m.surface.Offset()) + y) / m.rowHeight
	if i >= m.win.Len() {
		return -1
	}
	return i
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Len returns the number of items.
func (m *Model[T]) Len() int { return m.win.Len() }

// Items returns every item.
func (m *Model[T]) Items() []T { return m.win.Items() }

// Range returns the rendered index range.
func (m *Model[T]) Range() window.Range { return m.win.Range() }

// Stats returns the virtualizer counters.
func (m *Model[T]) Stats() window.Stats { return m.win.Stats() }

// Renders returns how many times the visible block has been rendered.
// Rendering happens lazily in View, at most once per change.
func (m *Model[T]) Renders() int { return m.renders }

// Surface exposes the scroll surface, e.g. for a status line.
func (m *Model[T]) Surface() *scroll.Surface { return m.surface }

// FirstVisible returns the index of the top row in the viewport.
func (m *Model[T]) FirstVisible() int {
	return int(m.surface.Offset()) / m.rowHeight
}

// LastVisible returns one past the index of the bottom row in the viewport.
func (m *Model[T]) LastVisible() int {
	end := (int(m.surface.Offset()) + m.height + m.rowHeight - 1) / m.rowHeight
	return min(end, m.win.Len())
}

// ---------------------------------------------------------------------------
// Update (bubbletea)
// ---------------------------------------------------------------------------

// Update scrolls on mouse-wheel events. Keyboard navigation is driven by the
// caller through the cursor methods.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.MouseWheelMsg); ok {
		m.surface.Update(msg)
		m.keepCursorVisible()
	}
	return nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View returns exactly height lines: the slice of the rendered block that
// falls inside the viewport, plus a scrollbar when the list overflows.
func (m *Model[T]) View() string {
	if m.height <= 0 || m.width <= 0 {
		return ""
	}
	m.ensureBlock()
	cw := m.contentWidth()
	off := int(m.surface.Offset())
	skip := off - int(m.blockRange.OffsetY)

	lines := make([]string, m.height)
	for y := range lines {
		bi := skip + y
		if bi < 0 || bi >= len(m.block) {
			lines[y] = strings.Repeat(" ", cw)
			continue
		}
		line := m.block[bi]
		if m.blockRange.Start+bi/m.rowHeight == m.Selected() {
			line = style.RowSelected.Render(common.Fit(ansi.Strip(line), cw))
		} else {
			line = common.PadRight(line, cw)
		}
		lines[y] = line
	}
	body := strings.Join(lines, "\n")

	bar := common.Scrollbar(m.height, m.surface.Content(), off)
	if bar == "" {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
}
