package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// FrameRate is the fixed spring integration rate.
	FrameRate = 60
	// RestThreshold bounds |velocity|+|displacement| for a settled spring.
	RestThreshold = 1e-3
	// maxSteps caps a single Advance. A property left running longer than
	// ten seconds snaps to its target.
	maxSteps = 10 * FrameRate
)

var frameStep = time.Second / FrameRate

// Float is an animated scalar. The zero value rests at 0.
type Float struct {
	value    float64
	velocity float64
	from     float64
	target   float64
	policy   Policy
	start    time.Time
	clock    time.Time
	moving   bool
}

// NewFloat returns a Float resting at v.
func NewFloat(v float64) Float {
	return Float{value: v, from: v, target: v}
}

// Value is the current interpolated value.
func (f Float) Value() float64 { return f.value }

// Target is the value the property is heading to.
func (f Float) Target() float64 { return f.target }

// Velocity is the current spring velocity in units per second.
func (f Float) Velocity() float64 { return f.velocity }

// Policy is the policy the property is currently following.
func (f Float) Policy() Policy { return f.policy }

// AtRest reports whether the property has settled on its target.
func (f Float) AtRest() bool { return !f.moving }

// Animate retargets the property starting at now. Retargeting to the current
// target under the same policy leaves the motion undisturbed; a spring keeps
// its velocity across retargets.
func (f Float) Animate(target float64, p Policy, now time.Time) Float {
	if target == f.target && p == f.policy && (f.moving || f.value == target) {
		return f
	}
	if p.Mode == ModeSnap {
		return f.settle(target, p)
	}
	if p.Mode == ModeTween && p.Duration <= 0 {
		return f.settle(target, p)
	}
	if f.value == target && f.velocity == 0 {
		return f.settle(target, p)
	}

	f.from = f.value
	f.target = target
	f.policy = p
	f.start = now
	f.clock = now
	f.moving = true
	if p.Mode == ModeTween {
		f.velocity = 0
	}
	return f
}

// Set jumps to v without animating.
func (f Float) Set(v float64) Float {
	return f.settle(v, f.policy)
}

// Advance steps the property to now and reports whether it is at rest.
// The receiver is not modified, so the same inputs always give the same
// result.
func (f Float) Advance(now time.Time) (Float, bool) {
	if !f.moving {
		return f, true
	}

	switch f.policy.Mode {
	case ModeSpring:
		return f.advanceSpring(now)
	case ModeTween:
		return f.advanceTween(now)
	default:
		f = f.settle(f.target, f.policy)
		return f, true
	}
}

func (f Float) advanceSpring(now time.Time) (Float, bool) {
	elapsed := now.Sub(f.clock)
	if elapsed < frameStep {
		return f, false
	}

	steps := int(elapsed / frameStep)
	if steps > maxSteps {
		f = f.settle(f.target, f.policy)
		return f, true
	}

	spring := harmonica.NewSpring(harmonica.FPS(FrameRate), math.Sqrt(f.policy.Stiffness), f.policy.DampingRatio)
	for range steps {
		f.value, f.velocity = spring.Update(f.value, f.velocity, f.target)
		if math.Abs(f.velocity)+math.Abs(f.value-f.target) < RestThreshold {
			f = f.settle(f.target, f.policy)
			return f, true
		}
	}
	f.clock = f.clock.Add(time.Duration(steps) * frameStep)
	return f, false
}

func (f Float) advanceTween(now time.Time) (Float, bool) {
	elapsed := now.Sub(f.start)
	if elapsed < 0 {
		return f, false
	}

	progress := float64(elapsed) / float64(f.policy.Duration)
	if progress >= 1 {
		f = f.settle(f.target, f.policy)
		return f, true
	}

	f.value = f.from + (f.target-f.from)*f.policy.Easing.Ease(progress)
	f.clock = now
	return f, false
}

func (f Float) settle(target float64, p Policy) Float {
	f.value = target
	f.from = target
	f.target = target
	f.velocity = 0
	f.policy = p
	f.moving = false
	return f
}
