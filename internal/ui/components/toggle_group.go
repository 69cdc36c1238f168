package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/motion"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// ToggleGroupConfig configures a ToggleGroup. With no options the group
// draws nothing.
type ToggleGroupConfig struct {
	Options []string
	// Selected is the logical selection, clamped into the option range.
	Selected int
	// OnSelect receives the index of a tapped segment.
	OnSelect func(index int)

	Variant variant.ToggleGroup
	Size    theme.SizeClass
	Colors  Colors

	Disabled       bool
	DisableHaptics bool
}

// selected returns the clamped selection, or -1 with no options.
func (c ToggleGroupConfig) selected() int {
	if len(c.Options) == 0 {
		return -1
	}
	return min(max(c.Selected, 0), len(c.Options)-1)
}

// ToggleGroupFrame is the animated state of one toggle group frame.
type ToggleGroupFrame struct {
	FrameBase
	// Emphasis holds each segment's selection fill from 0 to 1.
	Emphasis []float64
}

// ToggleGroup is a single-choice segmented control.
type ToggleGroup struct {
	cfg      ToggleGroupConfig
	in       interaction
	emphasis []motion.Float
}

// NewToggleGroup mounts a toggle group.
func NewToggleGroup() *ToggleGroup {
	return &ToggleGroup{in: newInteraction()}
}

// WithHaptics sets the haptic sink.
func (g *ToggleGroup) WithHaptics(h Haptics) *ToggleGroup {
	g.in.haptics = h
	return g
}

// Sync applies the caller's configuration at now. Segments added since the
// last Sync start at their target.
func (g *ToggleGroup) Sync(cfg ToggleGroupConfig, now time.Time) {
	defer g.in.mount()
	g.cfg = cfg
	g.in.sync(!cfg.Disabled, now)

	selected := cfg.selected()
	if len(g.emphasis) > len(cfg.Options) {
		g.emphasis = g.emphasis[:len(cfg.Options)]
	}
	for i := len(g.emphasis); i < len(cfg.Options); i++ {
		g.emphasis = append(g.emphasis, motion.NewFloat(boolf(i == selected)))
	}
	for i := range g.emphasis {
		g.emphasis[i] = g.in.to(g.emphasis[i], boolf(i == selected), motion.Reveal, false)
	}
}

// Handle proposes the tapped segment's index.
func (g *ToggleGroup) Handle(e Event) {
	part, ok := g.in.tap(e)
	if !ok || part < 0 || part >= len(g.cfg.Options) {
		return
	}
	g.in.buzz(HapticClick, g.cfg.DisableHaptics)
	if g.cfg.OnSelect != nil {
		g.cfg.OnSelect(part)
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (g *ToggleGroup) Advance(now time.Time) bool {
	rest := g.in.advance(now)
	return stepAll(now, g.emphasis) && rest
}

// Frame returns the current animated values.
func (g *ToggleGroup) Frame() ToggleGroupFrame {
	emphasis := make([]float64, len(g.emphasis))
	for i, e := range g.emphasis {
		emphasis[i] = e.Value()
	}
	return ToggleGroupFrame{FrameBase: g.in.base(), Emphasis: emphasis}
}

// Render draws the current frame.
func (g *ToggleGroup) Render(ctx RenderContext) paint.Node {
	return RenderToggleGroup(ctx.tokens(), variant.RecipeFor(g.cfg.Variant), g.Frame(), g.cfg)
}

// View renders with the default theme.
func (g *ToggleGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (g *ToggleGroup) ViewWithContext(ctx RenderContext) string {
	return g.Render(ctx).View()
}

// StateDescription describes the group for assistive output.
func (g *ToggleGroup) StateDescription() string {
	selected := g.cfg.selected()
	if selected < 0 {
		return stateWords("", "button group", "empty", g.cfg.Disabled)
	}
	state := g.cfg.Options[selected] + " selected"
	return stateWords("", "button group", state, g.cfg.Disabled)
}

// RenderToggleGroup draws a toggle group frame. Exactly one segment carries
// the Selected state whenever there are options.
func RenderToggleGroup(tokens theme.Tokens, recipe variant.Recipe, frame ToggleGroupFrame, cfg ToggleGroupConfig) paint.Node {
	if len(cfg.Options) == 0 {
		return paint.Empty()
	}

	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.ToggleGroup, cfg.Size)
	selected := cfg.selected()

	// Segments share the group's border instead of drawing their own.
	segment := p
	segment.recipe.Border = variant.BorderNone
	if segment.recipe.Fill == variant.FillOutline {
		segment.recipe.Fill = variant.FillNone
	}

	segments := make([]paint.Node, len(cfg.Options))
	for i, option := range cfg.Options {
		emphasis := boolf(i == selected)
		if i < len(frame.Emphasis) {
			emphasis = frame.Emphasis[i]
		}
		width := max(dims.Primary, lipgloss.Width(option)+2*dims.Inner)

		var node paint.Node
		if recipe.Fill == variant.FillNone {
			node = segment.underlined(option, width, emphasis)
		} else {
			node = segment.selectable("toggle-group.segment", option, width, dims.Secondary, emphasis)
		}
		if i == selected {
			node = node.With(paint.Selected)
		}
		segments[i] = node
	}

	row := paint.Row("toggle-group.segments", lipgloss.Top, segments...)
	if style, ok := p.frame(1, false); ok {
		return paint.Box("toggle-group", style, row).With(p.state)
	}
	return row.WithRole("toggle-group").With(p.state)
}

// underlined draws a tab-style segment: its label over a rule that thickens
// and takes the active colour as emphasis grows.
func (p painter) underlined(option string, width int, emphasis float64) paint.Node {
	fg := theme.Blend(p.inactive(), p.content(), clamp(emphasis, 0, 1))
	rule := "─"
	if emphasis >= 0.5 {
		rule = "━"
	}
	return paint.Column("toggle-group.segment", lipgloss.Center,
		paint.Text("toggle-group.label", lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(fg), option),
		paint.Text("toggle-group.rule",
			lipgloss.NewStyle().Foreground(theme.Blend(p.role(theme.RoleOutline), p.active(), clamp(emphasis, 0, 1))),
			strings.Repeat(rule, width)),
	)
}
