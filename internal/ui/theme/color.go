package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// IsSet reports whether c carries at least one colour value.
func IsSet(c lipgloss.AdaptiveColor) bool {
	return c.Light != "" || c.Dark != ""
}

// Pick returns override when it is set, otherwise fallback.
func Pick(override, fallback lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
	if IsSet(override) {
		return override
	}
	return fallback
}

// Blend mixes a toward b by t in [0,1] in Lab space. Colours that are not
// hex strings (ANSI indices) switch over at the midpoint.
func Blend(a, b lipgloss.AdaptiveColor, t float64) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: blendHex(a.Light, b.Light, t),
		Dark:  blendHex(a.Dark, b.Dark, t),
	}
}

// Fade renders c at the given opacity over bg.
func Fade(c, bg lipgloss.AdaptiveColor, alpha float64) lipgloss.AdaptiveColor {
	return Blend(bg, c, alpha)
}

// Gradient returns n colours evenly spaced from a to b inclusive.
func Gradient(a, b lipgloss.AdaptiveColor, n int) []lipgloss.AdaptiveColor {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.AdaptiveColor{a}
	}
	out := make([]lipgloss.AdaptiveColor, n)
	for i := range out {
		out[i] = Blend(a, b, float64(i)/float64(n-1))
	}
	return out
}

func blendHex(a, b string, t float64) string {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		if t < 0.5 {
			return a
		}
		return b
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
