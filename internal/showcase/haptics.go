package showcase

import (
	"io"

	"github.com/alexisbeaulieu97/motif/internal/ui/components"
)

// Bell is the terminal's only haptic: it rings the bell on every signal.
type Bell struct {
	out io.Writer
}

// NewBell rings on out. A nil writer makes the bell silent.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Trigger writes a BEL byte. Write errors are ignored; the signal is advisory.
func (b *Bell) Trigger(components.Haptic) {
	if b == nil || b.out == nil {
		return
	}
	_, _ = io.WriteString(b.out, "\a")
}
