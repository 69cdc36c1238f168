package components

import (
	"time"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/motion"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// radioDots are the reveal stages of the selection dot.
var radioDots = []string{" ", "∙", "•", "●"}

// RadioConfig configures a Radio.
type RadioConfig struct {
	// Selected is the logical value. The radio only requests selection.
	Selected bool
	// OnClick is called when a tap completes, selected or not. Groups of
	// radios decide what a tap on the current choice means.
	OnClick func()

	Variant variant.Radio
	Size    theme.SizeClass
	Colors  Colors

	Label         string
	LabelPosition LabelPosition

	Disabled       bool
	DisableHaptics bool
}

// RadioFrame is the animated state of one radio frame.
type RadioFrame struct {
	FrameBase
	// Ring mixes the unselected and selected ring colours.
	Ring float64
	// Dot is the reveal of the selection dot.
	Dot float64
}

// Radio is one choice of a mutually exclusive set.
type Radio struct {
	cfg  RadioConfig
	in   interaction
	ring motion.Float
	dot  motion.Float
}

// NewRadio mounts a radio button.
func NewRadio() *Radio {
	return &Radio{in: newInteraction()}
}

// WithHaptics sets the haptic sink.
func (r *Radio) WithHaptics(h Haptics) *Radio {
	r.in.haptics = h
	return r
}

// Sync applies the caller's configuration at now.
func (r *Radio) Sync(cfg RadioConfig, now time.Time) {
	defer r.in.mount()
	r.cfg = cfg
	r.in.sync(!cfg.Disabled, now)
	r.ring = r.in.to(r.ring, boolf(cfg.Selected), motion.BorderColor, false)
	r.dot = r.in.to(r.dot, boolf(cfg.Selected), motion.Reveal, false)
}

// Handle calls OnClick when a tap completes.
func (r *Radio) Handle(e Event) {
	if _, ok := r.in.tap(e); !ok {
		return
	}
	r.in.buzz(HapticToggle, r.cfg.DisableHaptics)
	if r.cfg.OnClick != nil {
		r.cfg.OnClick()
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (r *Radio) Advance(now time.Time) bool {
	rest := r.in.advance(now)
	return step(now, &r.ring, &r.dot) && rest
}

// Frame returns the current animated values.
func (r *Radio) Frame() RadioFrame {
	return RadioFrame{
		FrameBase: r.in.base(),
		Ring:      r.ring.Value(),
		Dot:       r.dot.Value(),
	}
}

// Render draws the current frame.
func (r *Radio) Render(ctx RenderContext) paint.Node {
	return RenderRadio(ctx.tokens(), variant.RecipeFor(r.cfg.Variant), r.Frame(), r.cfg)
}

// View renders with the default theme.
func (r *Radio) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (r *Radio) ViewWithContext(ctx RenderContext) string {
	return r.Render(ctx).View()
}

// StateDescription describes the radio for assistive output.
func (r *Radio) StateDescription() string {
	state := "not selected"
	if r.cfg.Selected {
		state = "selected"
	}
	return stateWords(r.cfg.Label, "radio button", state, r.cfg.Disabled)
}

// RenderRadio draws a radio frame.
func RenderRadio(tokens theme.Tokens, recipe variant.Recipe, frame RadioFrame, cfg RadioConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.Radio, cfg.Size)

	ring := p.bracketed("radio.ring", "(", ")", reveal(radioDots, frame.Dot), dims.Inner, frame.Ring)

	state := p.state
	if cfg.Selected {
		state |= paint.Selected
	}
	label := p.label("radio.label", cfg.Size, cfg.Label)
	return beside("radio", ring, label, cfg.LabelPosition).With(state)
}
