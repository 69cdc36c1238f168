package motion

import (
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestPolicyFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		property Property
		dragging bool
		mode     Mode
	}{
		{Offset, false, ModeSpring},
		{Scale, false, ModeSpring},
		{Reveal, false, ModeSpring},
		{Fraction, false, ModeSpring},
		{Fraction, true, ModeSnap},
		{Tint, false, ModeTween},
		{BorderColor, false, ModeTween},
		{Alpha, true, ModeTween},
	}

	for _, tt := range tests {
		t.Run(tt.property.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.mode, PolicyFor(tt.property, tt.dragging).Mode)
		})
	}

	colour := PolicyFor(Tint, false)
	assert.GreaterOrEqual(t, colour.Duration, 200*time.Millisecond)
	assert.LessOrEqual(t, colour.Duration, 300*time.Millisecond)
}

func TestSpringSettlesOnTarget(t *testing.T) {
	t.Parallel()

	f := NewFloat(0).Animate(1, SpringDefault, at(0))
	require.False(t, f.AtRest())

	var rest bool
	for ms := 16; ms <= 5000 && !rest; ms += 16 {
		f, rest = f.Advance(at(ms))
	}

	require.True(t, rest, "spring should settle within five seconds")
	assert.Equal(t, 1.0, f.Value(), "a settled property is frozen at its target")
	assert.Zero(t, f.Velocity())
}

func TestUnderdampedSpringOvershoots(t *testing.T) {
	t.Parallel()

	f := NewFloat(0).Animate(1, SpringBouncy, at(0))
	peak := 0.0
	for ms := 16; ms <= 2000; ms += 16 {
		f, _ = f.Advance(at(ms))
		peak = math.Max(peak, f.Value())
	}
	assert.Greater(t, peak, 1.0)
}

func TestAdvanceIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, p := range []Policy{SpringDefault, SpringFast, ColorTween, Snap()} {
		start := NewFloat(0.2).Animate(0.8, p, at(0))
		for _, ms := range []int{0, 5, 17, 120, 400, 20000} {
			a, restA := start.Advance(at(ms))
			b, restB := start.Advance(at(ms))
			assert.Equal(t, a, b, "%s at %dms", p.Mode, ms)
			assert.Equal(t, restA, restB)
			assert.Equal(t, math.Float64bits(a.Value()), math.Float64bits(b.Value()))
		}
	}
}

func TestSteppingMatchesSingleAdvance(t *testing.T) {
	t.Parallel()

	start := NewFloat(0).Animate(10, SpringDefault, at(0))

	once, _ := start.Advance(at(500))

	stepped := start
	for ms := 100; ms <= 500; ms += 100 {
		stepped, _ = stepped.Advance(at(ms))
	}

	assert.InDelta(t, once.Value(), stepped.Value(), 1e-9, "fixed timestep makes frame pacing irrelevant")
}

func TestTween(t *testing.T) {
	t.Parallel()

	f := NewFloat(0).Animate(100, Tween(200*time.Millisecond, Linear), at(0))

	mid, rest := f.Advance(at(100))
	assert.False(t, rest)
	assert.InDelta(t, 50, mid.Value(), 1e-9)

	done, rest := f.Advance(at(200))
	assert.True(t, rest)
	assert.Equal(t, 100.0, done.Value())
}

func TestSnap(t *testing.T) {
	t.Parallel()

	f := NewFloat(0.1).Animate(0.7, Snap(), at(0))
	assert.True(t, f.AtRest())
	assert.Equal(t, 0.7, f.Value())
}

func TestRetargetKeepsMotion(t *testing.T) {
	t.Parallel()

	f := NewFloat(0).Animate(1, SpringDefault, at(0))
	f, _ = f.Advance(at(100))

	same := f.Animate(1, SpringDefault, at(150))
	assert.Equal(t, f, same, "retargeting to the same target is a no-op")

	moved := f.Animate(0, SpringDefault, at(150))
	assert.Equal(t, 0.0, moved.Target())
	assert.Equal(t, f.Value(), moved.Value())
	assert.Equal(t, f.Velocity(), moved.Velocity())
}

func TestEasingCurves(t *testing.T) {
	t.Parallel()

	for _, c := range []CubicBezier{Linear, FastOutSlowIn, LinearOutSlowIn, FastOutLinearIn, EaseInOut} {
		assert.Equal(t, 0.0, c.Ease(0))
		assert.Equal(t, 1.0, c.Ease(1))

		prev := 0.0
		for p := 0.05; p < 1; p += 0.05 {
			v := c.Ease(p)
			assert.GreaterOrEqual(t, v, prev-1e-9, "curve %+v must be monotonic", c)
			prev = v
		}
	}

	assert.InDelta(t, 0.5, EaseInOut.Ease(0.5), 1e-6)
	assert.Greater(t, FastOutSlowIn.Ease(0.5), 0.5, "fast-out-slow-in leads linear")
	assert.Less(t, FastOutLinearIn.Ease(0.5), 0.5)
}

func TestColorTween(t *testing.T) {
	t.Parallel()

	black := lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"}
	white := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}

	c := NewColor(black)
	assert.True(t, c.AtRest())
	assert.Equal(t, black, c.Value())

	c = c.Animate(white, ColorTween, at(0))
	assert.False(t, c.AtRest())
	assert.Equal(t, black, c.Value())

	mid, rest := c.Advance(at(125))
	assert.False(t, rest)
	assert.NotEqual(t, black, mid.Value())
	assert.NotEqual(t, white, mid.Value())

	done, rest := c.Advance(at(250))
	assert.True(t, rest)
	assert.Equal(t, white, done.Value())

	again, _ := c.Advance(at(125))
	assert.Equal(t, mid, again)
}
