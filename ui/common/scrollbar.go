package common

import (
	"strings"

	"github.com/maiconbre/barbershop/style"
)

const (
	scrollTrackChar = "│"
	scrollThumbChar = "█"
)

// Thumb returns the top row and height of a scrollbar thumb for a viewport
// of viewportHeight lines over contentHeight lines scrolled to offset.
// ok is false when the content fits and no scrollbar is needed.
func Thumb(viewportHeight, contentHeight, offset int) (top, height int, ok bool) {
	vh, ch := viewportHeight, contentHeight
	if vh <= 0 || ch <= vh {
		return 0, 0, false
	}

	height = min(max(vh*vh/ch, 1), vh)

	if scrollable := ch - vh; scrollable > 0 {
		top = offset * (vh - height) / scrollable
	}
	top = min(max(top, 0), vh-height)
	return top, height, true
}

// Scrollbar renders a one-column vertical scrollbar of viewportHeight rows.
// It returns "" when the content fits in the viewport.
func Scrollbar(viewportHeight, contentHeight, offset int) string {
	top, h, ok := Thumb(viewportHeight, contentHeight, offset)
	if !ok {
		return ""
	}
	rows := make([]string, viewportHeight)
	for i := range rows {
		if i >= top && i < top+h {
			rows[i] = style.ScrollbarThumb.Render(scrollThumbChar)
		} else {
			rows[i] = style.ScrollbarTrack.Render(scrollTrackChar)
		}
	}
	return strings.Join(rows, "\n")
}
