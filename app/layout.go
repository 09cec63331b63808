package app

import (
	"github.com/maiconbre/barbershop/ui/header"
	"github.com/maiconbre/barbershop/ui/status"
)

const (
	// minListHeight keeps the virtualizer's container size valid on tiny
	// terminals.
	minListHeight = 3

	// detailMinWidth is the terminal width from which the detail pane opens
	// beside the list instead of replacing it.
	detailMinWidth = 110

	detailMaxWidth = 72
)

// Layout holds computed dimensions for the current frame.
type Layout struct {
	TermWidth    int
	TermHeight   int
	HeaderHeight int
	FilterHeight int // 1 while the filter prompt is shown
	StatusHeight int
	ListTop      int // screen row of the first list line
	ListWidth    int
	ListHeight   int
	DetailWidth  int // 0 when the detail pane replaces the list
	DetailHeight int
	SideBySide   bool
}

// ComputeLayout calculates the layout dimensions based on terminal size.
//
// Rows, top to bottom: header, optional filter prompt, list, status. The list
// gets the remainder but never less than minListHeight.
func ComputeLayout(termW, termH int, filtering bool) Layout {
	l := Layout{
		TermWidth:    termW,
		TermHeight:   termH,
		HeaderHeight: header.Height,
		StatusHeight: status.Height,
	}
	if filtering {
		l.FilterHeight = 1
	}
	l.ListTop = l.HeaderHeight + l.FilterHeight

	l.ListHeight = max(minListHeight, termH-l.HeaderHeight-l.FilterHeight-l.StatusHeight)
	l.ListWidth = max(1, termW)
	l.DetailHeight = l.ListHeight + l.FilterHeight
	l.DetailWidth = l.ListWidth

	if termW >= detailMinWidth {
		l.SideBySide = true
		l.DetailHeight = l.ListHeight
		l.DetailWidth = min(detailMaxWidth, termW/2)
		l.ListWidth = termW - l.DetailWidth
	}
	return l
}
