package clipboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maiconbre/barbershop/msg"
)

func fakeTTY(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tty")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	old := ttyPath
	ttyPath = path
	t.Cleanup(func() { ttyPath = old })
	return path
}

func TestWrite_OSC52(t *testing.T) {
	path := fakeTTY(t)
	require.NoError(t, Write("+55 11 91234-5678"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ansi.SetSystemClipboard("+55 11 91234-5678"), string(got))
}

func TestWrite_Empty(t *testing.T) {
	fakeTTY(t)
	assert.ErrorIs(t, Write(""), ErrEmpty)
}

func TestCopy_ReportsOutcome(t *testing.T) {
	fakeTTY(t)
	out := Copy("WhatsApp", "123")()
	c, ok := out.(msg.Copied)
	require.True(t, ok)
	assert.Equal(t, "WhatsApp", c.What)
	assert.NoError(t, c.Err)

	c = Copy("WhatsApp", "")().(msg.Copied)
	assert.ErrorIs(t, c.Err, ErrEmpty)
}
