package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/motion"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// chipCheck leads a selected chip that has no icon of its own.
const chipCheck = "✓"

// ChipConfig configures a Chip.
type ChipConfig struct {
	Label string
	// Icon leads the label. Without one a selected chip shows a check mark.
	Icon string
	// Selected is the logical value. The chip only proposes changes to it.
	Selected bool
	OnChange func(selected bool)

	Variant variant.Chip
	Size    theme.SizeClass
	Colors  Colors

	Disabled       bool
	DisableHaptics bool
}

// ChipFrame is the animated state of one chip frame.
type ChipFrame struct {
	FrameBase
	// Selection mixes the unselected and selected colours.
	Selection float64
	// Check is the reveal of the selection mark.
	Check float64
}

// Chip is a compact selectable filter.
type Chip struct {
	cfg       ChipConfig
	in        interaction
	selection motion.Float
	check     motion.Float
}

// NewChip mounts a chip.
func NewChip() *Chip {
	return &Chip{in: newInteraction()}
}

// WithHaptics sets the haptic sink.
func (c *Chip) WithHaptics(h Haptics) *Chip {
	c.in.haptics = h
	return c
}

// Sync applies the caller's configuration at now.
func (c *Chip) Sync(cfg ChipConfig, now time.Time) {
	defer c.in.mount()
	c.cfg = cfg
	c.in.sync(!cfg.Disabled, now)
	c.selection = c.in.to(c.selection, boolf(cfg.Selected), motion.Tint, false)
	c.check = c.in.to(c.check, boolf(cfg.Selected), motion.Reveal, false)
}

// Handle proposes the opposite selection when a tap completes.
func (c *Chip) Handle(e Event) {
	if _, ok := c.in.tap(e); !ok {
		return
	}
	c.in.buzz(HapticToggle, c.cfg.DisableHaptics)
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(!c.cfg.Selected)
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (c *Chip) Advance(now time.Time) bool {
	rest := c.in.advance(now)
	return step(now, &c.selection, &c.check) && rest
}

// Frame returns the current animated values.
func (c *Chip) Frame() ChipFrame {
	return ChipFrame{
		FrameBase: c.in.base(),
		Selection: c.selection.Value(),
		Check:     c.check.Value(),
	}
}

// Render draws the current frame.
func (c *Chip) Render(ctx RenderContext) paint.Node {
	return RenderChip(ctx.tokens(), variant.RecipeFor(c.cfg.Variant), c.Frame(), c.cfg)
}

// View renders with the default theme.
func (c *Chip) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (c *Chip) ViewWithContext(ctx RenderContext) string {
	return c.Render(ctx).View()
}

// StateDescription describes the chip for assistive output.
func (c *Chip) StateDescription() string {
	state := "not selected"
	if c.cfg.Selected {
		state = "selected"
	}
	return stateWords(c.cfg.Label, "filter", state, c.cfg.Disabled)
}

// RenderChip draws a chip frame.
func RenderChip(tokens theme.Tokens, recipe variant.Recipe, frame ChipFrame, cfg ChipConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.Chip, cfg.Size)

	lead := cfg.Icon
	if lead == "" && frame.Check >= 0.5 {
		lead = chipCheck
	}
	content := joinIcon(lead, cfg.Label)
	width := max(dims.Primary, lipgloss.Width(content)+2*dims.Inner)

	node := p.selectable("chip", content, width, dims.Secondary, frame.Selection)
	if cfg.Selected {
		node = node.With(paint.Selected)
	}
	return node
}
