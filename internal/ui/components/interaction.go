package components

import (
	"time"

	"github.com/alexisbeaulieu97/motif/internal/ui/motion"
)

const (
	// DisabledAlpha is the opacity of a disabled component.
	DisabledAlpha = 0.4
	// PressedScale is the emphasis a held press springs to.
	PressedScale = 0.94
)

type pressState struct {
	down bool
	part int
}

// interaction is the ephemeral state every mounted component owns: the frame
// clock, the press in progress and the shared opacity and press properties.
type interaction struct {
	mounted  bool
	clock    time.Time
	disabled bool
	press    pressState
	alpha    motion.Float
	scale    motion.Float
	haptics  Haptics
}

func newInteraction() interaction {
	return interaction{
		alpha: motion.NewFloat(1),
		scale: motion.NewFloat(1),
	}
}

// sync records the frame clock and retargets the shared properties. A
// disabled component drops any press in progress.
func (in *interaction) sync(enabled bool, now time.Time) {
	in.clock = now
	in.disabled = !enabled
	if in.disabled {
		in.press = pressState{}
	}

	alpha := 1.0
	if in.disabled {
		alpha = DisabledAlpha
	}
	in.alpha = in.to(in.alpha, alpha, motion.Alpha, false)
	in.scale = in.to(in.scale, in.scaleTarget(), motion.Scale, false)
}

// mount ends the first Sync. Call it deferred so properties retargeted in
// the first Sync jump straight to their values.
func (in *interaction) mount() {
	in.mounted = true
}

// to retargets f with the policy for p. Before mount the value is set
// without animating.
func (in *interaction) to(f motion.Float, target float64, p motion.Property, dragging bool) motion.Float {
	if !in.mounted {
		return f.Set(target)
	}
	return f.Animate(target, motion.PolicyFor(p, dragging), in.clock)
}

func (in *interaction) scaleTarget() float64 {
	if in.press.down {
		return PressedScale
	}
	return 1
}

// tap feeds a press gesture and reports the part a completed tap landed on.
// A tap is a Down followed by an Up inside the bounds over the same part.
func (in *interaction) tap(e Event) (int, bool) {
	if in.disabled {
		in.press = pressState{}
		return 0, false
	}

	var (
		part int
		ok   bool
	)
	switch e.Kind {
	case PointerDown:
		in.press = pressState{down: true, part: e.Part}
	case PointerUp:
		ok = in.press.down && e.Inside && e.Part == in.press.part
		part = in.press.part
		in.press = pressState{}
	case PointerCancel:
		in.press = pressState{}
	default:
		return 0, false
	}
	in.scale = in.to(in.scale, in.scaleTarget(), motion.Scale, false)
	return part, ok
}

// buzz fires h unless haptics are off or the component is disabled.
func (in *interaction) buzz(h Haptic, off bool) {
	if off || in.disabled || in.haptics == nil {
		return
	}
	in.haptics.Trigger(h)
}

// advance steps the shared properties.
func (in *interaction) advance(now time.Time) bool {
	in.clock = now
	return step(now, &in.alpha, &in.scale)
}

func (in *interaction) base() FrameBase {
	return FrameBase{
		Alpha:    in.alpha.Value(),
		Scale:    in.scale.Value(),
		Pressed:  in.press.down,
		Disabled: in.disabled,
	}
}

// step advances every property to now and reports whether all are at rest.
func step(now time.Time, props ...*motion.Float) bool {
	rest := true
	for _, p := range props {
		var settled bool
		*p, settled = p.Advance(now)
		rest = rest && settled
	}
	return rest
}

func stepAll(now time.Time, props []motion.Float) bool {
	rest := true
	for i := range props {
		var settled bool
		props[i], settled = props[i].Advance(now)
		rest = rest && settled
	}
	return rest
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
