package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout_Narrow(t *testing.T) {
	l := ComputeLayout(80, 24, false)
	assert.False(t, l.SideBySide)
	assert.Equal(t, 2, l.ListTop)
	assert.Equal(t, 20, l.ListHeight)
	assert.Equal(t, 80, l.ListWidth)
	assert.Equal(t, 80, l.DetailWidth)
	assert.Equal(t, 20, l.DetailHeight)
}

func TestComputeLayout_FilterPromptTakesARow(t *testing.T) {
	l := ComputeLayout(80, 24, true)
	assert.Equal(t, 1, l.FilterHeight)
	assert.Equal(t, 3, l.ListTop)
	assert.Equal(t, 19, l.ListHeight)
	// The full-screen detail pane reclaims the prompt row.
	assert.Equal(t, 20, l.DetailHeight)
}

func TestComputeLayout_Wide(t *testing.T) {
	l := ComputeLayout(160, 40, true)
	assert.True(t, l.SideBySide)
	assert.Equal(t, detailMaxWidth, l.DetailWidth)
	assert.Equal(t, 160-detailMaxWidth, l.ListWidth)
	assert.Equal(t, l.ListHeight, l.DetailHeight)

	l = ComputeLayout(detailMinWidth, 30, false)
	assert.True(t, l.SideBySide)
	assert.Equal(t, detailMinWidth/2, l.DetailWidth)
}

func TestComputeLayout_TinyTerminal(t *testing.T) {
	l := ComputeLayout(10, 3, false)
	assert.Equal(t, minListHeight, l.ListHeight)
	assert.Equal(t, 10, l.ListWidth)

	l = ComputeLayout(0, 0, false)
	assert.Equal(t, 1, l.ListWidth)
	assert.Equal(t, minListHeight, l.ListHeight)
}
