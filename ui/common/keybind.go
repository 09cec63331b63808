package common

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/maiconbre/barbershop/style"
)

// KeyHelp renders a compact key-binding hint line such as
//
//	j/k move · enter open · / filter
//
// Bindings whose Enabled() is false are omitted.
func KeyHelp(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			h.Key = strings.Join(b.Keys(), "/")
		}
		parts = append(parts, style.HelpKey.Render(h.Key)+" "+style.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, style.Hint.Render(" · "))
}
