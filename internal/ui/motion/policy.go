// Package motion interpolates animated visual properties.
//
// Values are plain structs: Animate retargets, Advance steps to a frame time
// and returns the next value. Nothing here keeps timers or goroutines; the
// host's frame loop supplies the clock.
package motion

import (
	"fmt"
	"time"
)

// Mode selects an interpolation strategy.
type Mode int

const (
	// ModeSnap jumps straight to the target.
	ModeSnap Mode = iota
	// ModeSpring follows a damped harmonic oscillator.
	ModeSpring
	// ModeTween follows an easing curve for a fixed duration.
	ModeTween
)

func (m Mode) String() string {
	switch m {
	case ModeSnap:
		return "snap"
	case ModeSpring:
		return "spring"
	case ModeTween:
		return "tween"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Policy is a comparable description of how a property moves to its target.
type Policy struct {
	Mode Mode

	// Spring parameters.
	DampingRatio float64
	Stiffness    float64

	// Tween parameters.
	Duration time.Duration
	Easing   CubicBezier
}

// Spring returns a spring policy. A damping ratio below 1 overshoots.
func Spring(dampingRatio, stiffness float64) Policy {
	return Policy{Mode: ModeSpring, DampingRatio: dampingRatio, Stiffness: stiffness}
}

// Tween returns a timed easing policy.
func Tween(d time.Duration, easing CubicBezier) Policy {
	return Policy{Mode: ModeTween, Duration: d, Easing: easing}
}

// Snap returns the no-interpolation policy.
func Snap() Policy {
	return Policy{Mode: ModeSnap}
}

// Shared policies.
var (
	SpringDefault = Spring(0.6, 400)
	SpringBouncy  = Spring(0.45, 600)
	SpringFast    = Spring(1.0, 1500)
	ColorTween    = Tween(250*time.Millisecond, FastOutSlowIn)
)

// Property names an animatable visual property.
type Property int

const (
	// Offset is a positional property such as a toggle thumb.
	Offset Property = iota
	// Scale is an emphasis property such as a press or badge pop.
	Scale
	// Reveal is a check mark, dot or selection fill growing in.
	Reveal
	// Fraction is a filled proportion such as a slider or progress bar.
	Fraction
	// Tint is a fill colour such as a toggle track.
	Tint
	BorderColor
	Alpha
)

var propertyNames = [...]string{
	Offset:      "offset",
	Scale:       "scale",
	Reveal:      "reveal",
	Fraction:    "fraction",
	Tint:        "tint",
	BorderColor: "border-color",
	Alpha:       "alpha",
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("property(%d)", int(p))
	}
	return propertyNames[p]
}

// PolicyFor picks the interpolation policy for a property. Positional and
// emphasis properties spring, colour and opacity tween. A fraction under an
// active drag snaps so the visual tracks the pointer, and springs once the
// drag ends.
func PolicyFor(p Property, dragging bool) Policy {
	switch p {
	case Tint, BorderColor, Alpha:
		return ColorTween
	case Fraction:
		if dragging {
			return Snap()
		}
		return SpringFast
	case Scale:
		return SpringBouncy
	default:
		return SpringDefault
	}
}
