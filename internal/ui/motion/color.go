package motion

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

// Color is an animated adaptive colour. It blends from the colour shown at
// the moment of retargeting toward the new target.
type Color struct {
	from     lipgloss.AdaptiveColor
	to       lipgloss.AdaptiveColor
	progress Float
}

// NewColor returns a Color resting at c.
func NewColor(c lipgloss.AdaptiveColor) Color {
	return Color{from: c, to: c, progress: NewFloat(1)}
}

// Value is the colour for the current frame.
func (c Color) Value() lipgloss.AdaptiveColor {
	if c.progress.AtRest() {
		return c.to
	}
	return theme.Blend(c.from, c.to, clamp01(c.progress.Value()))
}

// Target is the colour being animated to.
func (c Color) Target() lipgloss.AdaptiveColor { return c.to }

// AtRest reports whether the colour has settled.
func (c Color) AtRest() bool { return c.progress.AtRest() }

// Animate retargets the colour starting at now.
func (c Color) Animate(target lipgloss.AdaptiveColor, p Policy, now time.Time) Color {
	if target == c.to {
		return c
	}
	if p.Mode == ModeSnap {
		return NewColor(target)
	}
	c.from = c.Value()
	c.to = target
	c.progress = NewFloat(0).Animate(1, p, now)
	return c
}

// Advance steps the colour to now and reports whether it is at rest.
func (c Color) Advance(now time.Time) (Color, bool) {
	var rest bool
	c.progress, rest = c.progress.Advance(now)
	if rest {
		c.from = c.to
	}
	return c, rest
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
