package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func newClocked() (*Model, *time.Time) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	m := New()
	m.now = func() time.Time { return now }
	return &m, &now
}

func TestAdd_CapsQueue(t *testing.T) {
	m, _ := newClocked()
	for _, s := range []string{"a", "b", "c", "d"} {
		assert.NotNil(t, m.Add(s, Info))
	}
	assert.Equal(t, maxToasts, m.Len())
	out := ansi.Strip(m.View(40))
	assert.NotContains(t, out, " a ")
	assert.Contains(t, out, " d ")
}

func TestTick_Expires(t *testing.T) {
	m, now := newClocked()
	m.Add("loaded 100 appointments", Info)

	*now = now.Add(ttl - time.Second)
	assert.NotNil(t, m.Tick())
	assert.Equal(t, 1, m.Len())

	*now = now.Add(time.Second)
	assert.Nil(t, m.Tick())
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "", m.View(40))
}

func TestView_RightAlignedAndBounded(t *testing.T) {
	m, _ := newClocked()
	m.Add("API 500: database unavailable while listing appointments", Error)

	line := ansi.Strip(m.View(30))
	assert.Equal(t, 30, ansi.StringWidth(line))
	assert.True(t, strings.Contains(line, "✘"))
}
