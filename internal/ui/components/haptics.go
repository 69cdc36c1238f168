package components

// Haptic is an advisory feedback signal.
type Haptic int

const (
	// HapticToggle accompanies a binary state proposal.
	HapticToggle Haptic = iota
	// HapticClick accompanies a press that proposes an action.
	HapticClick
	// HapticTick accompanies each stepped slider value.
	HapticTick
)

func (h Haptic) String() string {
	switch h {
	case HapticToggle:
		return "toggle"
	case HapticClick:
		return "click"
	case HapticTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Haptics receives feedback signals. Trigger must not block; nothing waits on
// it.
type Haptics interface {
	Trigger(Haptic)
}

// HapticsFunc adapts a function to Haptics.
type HapticsFunc func(Haptic)

// Trigger calls f(h).
func (f HapticsFunc) Trigger(h Haptic) {
	f(h)
}
