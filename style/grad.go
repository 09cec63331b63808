package style

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// LerpColor linearly interpolates between two colors at position t ∈ [0,1].
func LerpColor(a, b color.Color, t float64) color.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()

	// RGBA() is 16-bit per channel.
	mix := func(x, y uint32) uint8 {
		v := float64(x>>8)*(1-t) + float64(y>>8)*t
		return uint8(min(v, 255))
	}
	return color.NRGBA{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: mix(aa, ba)}
}

// Gradient colors each rune of text along a from→to ramp.
func Gradient(text string, from, to color.Color, bold bool) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		st := lipgloss.NewStyle().Foreground(LerpColor(from, to, t)).Bold(bold)
		sb.WriteString(st.Render(string(r)))
	}
	return sb.String()
}

// Brand renders the application title in the theme's Primary→Secondary ramp.
func Brand(text string) string {
	return Gradient(text, Primary, Secondary, true)
}
