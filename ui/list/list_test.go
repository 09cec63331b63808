package list

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/maiconbre/barbershop/ui/window"
)

// ---------------------------------------------------------------------------
// Test item implementation
// ---------------------------------------------------------------------------

type testItem struct {
	id   string
	note string
}

func makeItems(n int) []testItem {
	out := make([]testItem, n)
	for i := range out {
		out[i] = testItem{id: fmt.Sprintf("item-%03d", i), note: fmt.Sprintf("note-%03d", i)}
	}
	return out
}

// counter wraps a render func and counts item renders.
type counter struct{ calls int }

func (c *counter) oneLine(it testItem, width int) string {
	c.calls++
	return it.id
}

func (c *counter) twoLines(it testItem, width int) string {
	c.calls++
	return it.id + "\n" + it.note
}

func newList(t *testing.T, c *counter, opts ...Option) *Model[testItem] {
	t.Helper()
	m, err := New(c.oneLine, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func viewLines(m *Model[testItem]) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

// ---------------------------------------------------------------------------
// New / options
// ---------------------------------------------------------------------------

func TestNew_Defaults(t *testing.T) {
	m := newList(t, &counter{})
	if m.width != 80 || m.height != 20 || m.rowHeight != 1 {
		t.Errorf("want 80x20 rows of 1, got %dx%d rows of %d", m.width, m.height, m.rowHeight)
	}
	if got := m.win.Config().Overscan; got != window.DefaultOverscan {
		t.Errorf("want default overscan, got %d", got)
	}
	if m.Surface().Listeners() != 1 {
		t.Errorf("want exactly one scroll listener, got %d", m.Surface().Listeners())
	}
}

func TestNew_RejectsInvalidDimensions(t *testing.T) {
	c := &counter{}
	for name, opts := range map[string][]Option{
		"zero row height":   {WithRowHeight(0)},
		"zero height":       {WithSize(80, 0)},
		"negative overscan": {WithOverscan(-1)},
	} {
		if _, err := New(c.oneLine, opts...); !errors.Is(err, window.ErrInvalidConfig) {
			t.Errorf("%s: want ErrInvalidConfig, got %v", name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// SetItems
// ---------------------------------------------------------------------------

func TestSetItems_RangeCoversViewportPlusOverscan(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10), WithOverscan(3))
	m.SetItems(makeItems(100))

	if got, want := m.Range(), (window.Range{Start: 0, End: 13}); got != want {
		t.Errorf("want range %v, got %v", want, got)
	}
	if m.Surface().Content() != 100 {
		t.Errorf("want 100 content lines, got %d", m.Surface().Content())
	}
}

func TestSetItems_ShrinkAfterScroll(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))
	m.CursorBottom()

	m.SetItems(makeItems(5))

	if got, want := m.Range(), (window.Range{Start: 0, End: 5}); got != want {
		t.Errorf("want range %v, got %v", want, got)
	}
	if m.Selected() != 4 {
		t.Errorf("cursor should clamp to last item, got %d", m.Selected())
	}
	lines := viewLines(m)
	if !strings.HasPrefix(lines[0], "item-000") {
		t.Errorf("first line should be item-000, got %q", lines[0])
	}
}

// ---------------------------------------------------------------------------
// Rendering only what is visible
// ---------------------------------------------------------------------------

func TestView_RendersOnlyRange(t *testing.T) {
	c := &counter{}
	m := newList(t, c, WithSize(40, 10), WithOverscan(3))
	m.SetItems(makeItems(10_000))
	_ = m.View()

	if c.calls != 13 {
		t.Errorf("want 13 item renders for a 10 line viewport, got %d", c.calls)
	}
}

func TestView_RendersOncePerRangeChange(t *testing.T) {
	c := &counter{}
	m := newList(t, c, WithSize(40, 10))
	m.SetItems(makeItems(100))

	_ = m.View()
	_ = m.View()
	_ = m.View()
	if m.Renders() != 1 {
		t.Errorf("repeated View must not re-render, got %d renders", m.Renders())
	}

	// Several range changes between frames still cost one render.
	m.Surface().ScrollBy(1)
	m.Surface().ScrollBy(1)
	m.Surface().ScrollBy(1)
	_ = m.View()
	if m.Renders() != 2 {
		t.Errorf("want 2 renders, got %d", m.Renders())
	}
}

func TestView_NoRenderWhenScrollStaysInRange(t *testing.T) {
	c := &counter{}
	m, err := New(c.twoLines, WithSize(40, 9), WithRowHeight(2), WithOverscan(3))
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	m.SetItems(makeItems(50))
	_ = m.View()
	before := m.Renders()

	// Offsets 0 and 1 both resolve to rows [0,8).
	m.Surface().ScrollBy(1)
	lines := viewLines(m)

	if m.Renders() != before {
		t.Errorf("scroll inside the range must not re-render, renders %d -> %d", before, m.Renders())
	}
	if !strings.HasPrefix(lines[0], "note-000") {
		t.Errorf("first line should be the second line of row 0, got %q", lines[0])
	}
}

func TestView_ExactHeight(t *testing.T) {
	for _, n := range []int{0, 3, 10, 500} {
		m := newList(t, &counter{}, WithSize(30, 10))
		m.SetItems(makeItems(n))
		if got := len(viewLines(m)); got != 10 {
			t.Errorf("n=%d: want 10 lines, got %d", n, got)
		}
	}
}

func TestView_ScrollbarOnlyWhenOverflowing(t *testing.T) {
	m := newList(t, &counter{}, WithSize(30, 10))
	m.SetItems(makeItems(5))
	if strings.Contains(ansi.Strip(m.View()), "│") {
		t.Error("short list should not draw a scrollbar")
	}
	m.SetItems(makeItems(50))
	if !strings.Contains(ansi.Strip(m.View()), "█") {
		t.Error("long list should draw a scrollbar thumb")
	}
}

func TestView_MultiLineRows(t *testing.T) {
	c := &counter{}
	m, err := New(c.twoLines, WithSize(40, 6), WithRowHeight(2))
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	m.SetItems(makeItems(20))

	lines := viewLines(m)
	want := []string{"item-000", "note-000", "item-001", "note-001", "item-002", "note-002"}
	for i, w := range want {
		if !strings.HasPrefix(lines[i], w) {
			t.Errorf("line %d: want prefix %q, got %q", i, w, lines[i])
		}
	}
}

func TestView_WidthChangeRerenders(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(20))
	_ = m.View()

	if err := m.SetSize(40, 12); err != nil {
		t.Fatal(err)
	}
	_ = m.View()
	r := m.Renders()

	if err := m.SetSize(60, 12); err != nil {
		t.Fatal(err)
	}
	_ = m.View()
	if m.Renders() != r+1 {
		t.Errorf("width change should re-render once, renders %d -> %d", r, m.Renders())
	}
}

func TestView_ZeroWidth_ReturnsEmpty(t *testing.T) {
	m := newList(t, &counter{}, WithSize(0, 10))
	m.SetItems(makeItems(3))
	if m.View() != "" {
		t.Error("zero-width viewport must return empty string")
	}
}

// ---------------------------------------------------------------------------
// Cursor
// ---------------------------------------------------------------------------

func TestCursor_EmptyList(t *testing.T) {
	m := newList(t, &counter{})
	if m.Selected() != -1 {
		t.Errorf("want -1, got %d", m.Selected())
	}
	if _, ok := m.SelectedItem(); ok {
		t.Error("empty list has no selected item")
	}
	m.CursorDown()
	m.PageDown()
	m.CursorBottom()
	if m.Selected() != -1 {
		t.Errorf("navigation on empty list must stay at -1, got %d", m.Selected())
	}
}

func TestCursorDown_ScrollsIntoView(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))

	for i := 0; i < 15; i++ {
		m.CursorDown()
	}
	if m.Selected() != 15 {
		t.Fatalf("want cursor 15, got %d", m.Selected())
	}
	if m.FirstVisible() != 6 {
		t.Errorf("want first visible 6, got %d", m.FirstVisible())
	}
	it, _ := m.SelectedItem()
	if it.id != "item-015" {
		t.Errorf("want item-015 selected, got %s", it.id)
	}
	lines := viewLines(m)
	if !strings.HasPrefix(lines[9], "item-015") {
		t.Errorf("cursor row should be on the bottom line, got %q", lines[9])
	}
}

func TestCursorUp_AtTop_IsNoop(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(30))
	m.CursorUp()
	if m.Selected() != 0 || m.Surface().Offset() != 0 {
		t.Errorf("want cursor 0 at offset 0, got %d at %v", m.Selected(), m.Surface().Offset())
	}
}

func TestCursorBottom_ThenTop(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))

	m.CursorBottom()
	if m.Selected() != 99 || !m.Surface().AtBottom() {
		t.Errorf("want cursor 99 at bottom, got %d (offset %v)", m.Selected(), m.Surface().Offset())
	}
	if got, want := m.Range(), (window.Range{Start: 87, End: 100, OffsetY: 87}); got != want {
		t.Errorf("want range %v, got %v", want, got)
	}

	m.CursorTop()
	if m.Selected() != 0 || !m.Surface().AtTop() {
		t.Errorf("want cursor 0 at top, got %d", m.Selected())
	}
}

func TestPageUpDown_RoundTrip(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))

	m.PageDown()
	if m.Selected() != 10 {
		t.Errorf("PageDown: want cursor 10, got %d", m.Selected())
	}
	m.PageUp()
	if m.Selected() != 0 {
		t.Errorf("PageUp: want cursor 0, got %d", m.Selected())
	}
}

func TestHalfPageUpDown(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))
	m.HalfPageDown()
	if m.Selected() != 5 {
		t.Errorf("want cursor 5, got %d", m.Selected())
	}
	m.HalfPageUp()
	if m.Selected() != 0 {
		t.Errorf("want cursor 0, got %d", m.Selected())
	}
}

func TestCursorMove_DoesNotRerenderInsideViewport(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))
	_ = m.View()
	r := m.Renders()
	m.CursorDown()
	m.CursorDown()
	_ = m.View()
	if m.Renders() != r {
		t.Errorf("moving the cursor inside the viewport must not re-render")
	}
}

func TestIndexAt(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))
	m.Surface().ScrollTo(6)

	if got := m.IndexAt(0); got != 6 {
		t.Errorf("IndexAt(0): want 6, got %d", got)
	}
	if got := m.IndexAt(9); got != 15 {
		t.Errorf("IndexAt(9): want 15, got %d", got)
	}
	if m.IndexAt(-1) != -1 || m.IndexAt(10) != -1 {
		t.Error("rows outside the viewport must map to -1")
	}

	short := newList(t, &counter{}, WithSize(40, 10))
	short.SetItems(makeItems(3))
	if short.IndexAt(5) != -1 {
		t.Error("rows past the last item must map to -1")
	}
}

func TestFirstLastVisible(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))
	m.Surface().ScrollTo(20)
	if m.FirstVisible() != 20 || m.LastVisible() != 30 {
		t.Errorf("want [20,30), got [%d,%d)", m.FirstVisible(), m.LastVisible())
	}
}

// ---------------------------------------------------------------------------
// Size
// ---------------------------------------------------------------------------

func TestSetSize_RejectsZeroHeight(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	if err := m.SetSize(40, 0); !errors.Is(err, window.ErrInvalidConfig) {
		t.Errorf("want ErrInvalidConfig, got %v", err)
	}
	if m.height != 10 {
		t.Errorf("height must be unchanged, got %d", m.height)
	}
}

func TestSetSize_ShrinkKeepsCursorVisible(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 20))
	m.SetItems(makeItems(100))
	m.Select(19)
	if err := m.SetSize(40, 5); err != nil {
		t.Fatal(err)
	}
	if m.Selected() < m.FirstVisible() || m.Selected() >= m.LastVisible() {
		t.Errorf("cursor %d outside viewport [%d,%d)", m.Selected(), m.FirstVisible(), m.LastVisible())
	}
}

func TestSetOverscan(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))
	if err := m.SetOverscan(0); err != nil {
		t.Fatal(err)
	}
	if got := m.Range(); got.End != 10 {
		t.Errorf("want end 10 without overscan, got %v", got)
	}
	if err := m.SetOverscan(-1); !errors.Is(err, window.ErrInvalidConfig) {
		t.Errorf("want ErrInvalidConfig, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update (mouse wheel)
// ---------------------------------------------------------------------------

func TestUpdate_MouseWheelDown_ScrollsAndDragsCursor(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))

	m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})

	if m.FirstVisible() != 3 {
		t.Errorf("want first visible 3, got %d", m.FirstVisible())
	}
	if m.Selected() != 3 {
		t.Errorf("cursor should follow the viewport, got %d", m.Selected())
	}
}

func TestUpdate_MouseWheelUp_AtTop_IsNoop(t *testing.T) {
	m := newList(t, &counter{}, WithSize(40, 10))
	m.SetItems(makeItems(100))
	m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if m.Surface().Offset() != 0 {
		t.Errorf("want offset 0, got %v", m.Surface().Offset())
	}
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func TestClose_ReleasesListener(t *testing.T) {
	c := &counter{}
	m, err := New(c.oneLine, WithSize(40, 10))
	if err != nil {
		t.Fatal(err)
	}
	m.SetItems(makeItems(100))
	_ = m.View()
	s := m.Surface()

	m.Close()
	m.Close()

	if s.Listeners() != 0 {
		t.Errorf("want 0 listeners after Close, got %d", s.Listeners())
	}
	before := m.Range()
	s.ScrollTo(50)
	if m.Range() != before {
		t.Error("closed list must ignore scroll events")
	}
}

func TestRapidScrollDoesNotPanic(t *testing.T) {
	c := &counter{}
	m, err := New(c.twoLines, WithSize(40, 7), WithRowHeight(2))
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	m.SetItems(makeItems(40))
	for i := 0; i < 300; i++ {
		switch {
		case i%7 == 0:
			m.CursorBottom()
		case i%5 == 0:
			m.CursorTop()
		case i%11 == 0:
			m.SetItems(makeItems(i % 37))
		case i%2 == 0:
			m.Surface().ScrollBy(i%9 + 1)
		default:
			m.Surface().ScrollBy(-(i%6 + 1))
		}
		if got := len(viewLines(m)); got != 7 {
			t.Fatalf("step %d: want 7 lines, got %d", i, got)
		}
	}
}
