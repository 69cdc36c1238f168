package components

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/motion"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// checkMarks are the reveal stages of a check mark.
var checkMarks = []string{" ", "·", "✓"}

// CheckboxConfig configures a Checkbox.
type CheckboxConfig struct {
	// Checked is the logical value. The checkbox only proposes changes to it.
	Checked  bool
	OnChange func(checked bool)

	Variant variant.Checkbox
	Size    theme.SizeClass
	Colors  Colors

	Label         string
	LabelPosition LabelPosition

	Disabled       bool
	DisableHaptics bool
}

// CheckboxFrame is the animated state of one checkbox frame.
type CheckboxFrame struct {
	FrameBase
	// Fill mixes the unchecked and checked box colours.
	Fill float64
	// Check is the reveal of the check mark.
	Check float64
}

// Checkbox is a binary check box with an optional label.
type Checkbox struct {
	cfg   CheckboxConfig
	in    interaction
	fill  motion.Float
	check motion.Float
}

// NewCheckbox mounts a checkbox.
func NewCheckbox() *Checkbox {
	return &Checkbox{in: newInteraction()}
}

// WithHaptics sets the haptic sink.
func (c *Checkbox) WithHaptics(h Haptics) *Checkbox {
	c.in.haptics = h
	return c
}

// Sync applies the caller's configuration at now.
func (c *Checkbox) Sync(cfg CheckboxConfig, now time.Time) {
	defer c.in.mount()
	c.cfg = cfg
	c.in.sync(!cfg.Disabled, now)
	c.fill = c.in.to(c.fill, boolf(cfg.Checked), motion.Tint, false)
	c.check = c.in.to(c.check, boolf(cfg.Checked), motion.Reveal, false)
}

// Handle proposes the opposite value when a tap completes.
func (c *Checkbox) Handle(e Event) {
	if _, ok := c.in.tap(e); !ok {
		return
	}
	c.in.buzz(HapticToggle, c.cfg.DisableHaptics)
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(!c.cfg.Checked)
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (c *Checkbox) Advance(now time.Time) bool {
	rest := c.in.advance(now)
	return step(now, &c.fill, &c.check) && rest
}

// Frame returns the current animated values.
func (c *Checkbox) Frame() CheckboxFrame {
	return CheckboxFrame{
		FrameBase: c.in.base(),
		Fill:      c.fill.Value(),
		Check:     c.check.Value(),
	}
}

// Render draws the current frame.
func (c *Checkbox) Render(ctx RenderContext) paint.Node {
	return RenderCheckbox(ctx.tokens(), variant.RecipeFor(c.cfg.Variant), c.Frame(), c.cfg)
}

// View renders with the default theme.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	return c.Render(ctx).View()
}

// StateDescription describes the checkbox for assistive output.
func (c *Checkbox) StateDescription() string {
	state := "not checked"
	if c.cfg.Checked {
		state = "checked"
	}
	return stateWords(c.cfg.Label, "checkbox", state, c.cfg.Disabled)
}

// RenderCheckbox draws a checkbox frame.
func RenderCheckbox(tokens theme.Tokens, recipe variant.Recipe, frame CheckboxFrame, cfg CheckboxConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.Checkbox, cfg.Size)

	left, right := brackets(recipe.Corner)
	box := p.bracketed("checkbox.box", left, right, reveal(checkMarks, frame.Check), dims.Inner, frame.Fill)

	state := p.state
	if cfg.Checked {
		state |= paint.Checked
	}
	label := p.label("checkbox.label", cfg.Size, cfg.Label)
	return beside("checkbox", box, label, cfg.LabelPosition).With(state)
}

// brackets returns the glyphs that close a box of the given corner shape.
func brackets(corner variant.Corner) (string, string) {
	switch corner {
	case variant.CornerRound:
		return "(", ")"
	case variant.CornerRounded:
		return "❲", "❳"
	default:
		return "[", "]"
	}
}

// bracketed draws mark centred in inner cells between two bracket glyphs.
// Filled recipes tint the cells between the brackets by emphasis.
func (p painter) bracketed(role, left, right, mark string, inner int, emphasis float64) paint.Node {
	emphasis = clamp(emphasis, 0, 1)
	inner = max(inner, 1)

	stroke := theme.Blend(p.stroke(), p.active(), emphasis)
	edge := lipgloss.NewStyle().Foreground(stroke)
	if p.recipe.Glow {
		edge = edge.Bold(true)
	}

	cell := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)
	switch p.recipe.Fill {
	case variant.FillSolid, variant.FillGradient:
		fg := theme.Blend(p.role(theme.RoleTextPrimary), p.content(), emphasis)
		bg := p.pressed(theme.Blend(p.role(theme.RoleBackground), p.active(), emphasis))
		cell = cell.Foreground(fg).Background(bg)
	case variant.FillGlass:
		cell = cell.Foreground(p.content()).Background(p.glass(p.mix(emphasis)))
	default:
		cell = cell.Foreground(p.content())
		if p.recipe.Glow && emphasis > 0.5 {
			cell = cell.Bold(true)
		}
	}

	return paint.Row(role, lipgloss.Top,
		paint.Text(role+".edge", edge, left),
		paint.Text(role+".mark", cell, strings.TrimSpace(mark)),
		paint.Text(role+".edge", edge, right),
	).With(p.state)
}

// reveal picks the stage of marks a 0..1 reveal progress has reached.
// Springs may overshoot, so progress is clamped.
func reveal(marks []string, progress float64) string {
	i := int(math.Round(clamp(progress, 0, 1) * float64(len(marks)-1)))
	return marks[i]
}
