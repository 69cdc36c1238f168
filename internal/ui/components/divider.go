package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// defaultVerticalLength is the height of a vertical divider without a
// Length.
const defaultVerticalLength = 3

// Orientation is the axis a divider runs along.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// DividerConfig configures a Divider. The zero value is a horizontal solid
// rule that fills the render context width.
type DividerConfig struct {
	Orientation Orientation
	// Length in cells. Zero fills the context width for horizontal rules.
	Length int
	// Label is centred in a horizontal rule.
	Label string

	Variant variant.Divider
	Size    theme.SizeClass
	Colors  Colors
}

// Divider is a separator rule.
type Divider struct {
	cfg DividerConfig
}

// NewDivider mounts a divider.
func NewDivider() *Divider {
	return &Divider{}
}

// HorizontalDivider creates a horizontal rule that fills its container.
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical rule.
func VerticalDivider() *Divider {
	return &Divider{cfg: DividerConfig{Orientation: OrientationVertical}}
}

// Sync applies the caller's configuration. Dividers do not animate.
func (d *Divider) Sync(cfg DividerConfig, _ time.Time) {
	d.cfg = cfg
}

// Advance always reports rest.
func (d *Divider) Advance(time.Time) bool {
	return true
}

// Render draws the divider.
func (d *Divider) Render(ctx RenderContext) paint.Node {
	cfg := d.cfg
	if cfg.Length <= 0 && cfg.Orientation == OrientationHorizontal {
		cfg.Length = ctx.availableWidth()
	}
	return RenderDivider(ctx.tokens(), variant.RecipeFor(cfg.Variant), cfg)
}

// View renders with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	return d.Render(ctx).View()
}

// StateDescription describes the divider for assistive output.
func (d *Divider) StateDescription() string {
	return stateWords(d.cfg.Label, "separator", "", false)
}

// RenderDivider draws a divider. It has no animated state, so it takes no
// frame.
func RenderDivider(tokens theme.Tokens, recipe variant.Recipe, cfg DividerConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, FrameBase{})
	dims := p.tokens.Size(kind.Divider, cfg.Size)
	glyph := dividerGlyph(recipe.Pattern, cfg.Orientation, cfg.Size.Resolve() == theme.SizeLarge)

	if cfg.Orientation == OrientationVertical {
		length := cfg.Length
		if length <= 0 {
			length = defaultVerticalLength
		}
		lines := make([]string, length)
		for i := range lines {
			lines[i] = glyph
		}
		return paint.Text("divider", lipgloss.NewStyle().Foreground(p.stroke()), strings.Join(lines, "\n"))
	}

	length := cfg.Length
	if length <= 0 {
		length = dims.Primary
	}

	if cfg.Label == "" {
		return paint.Text("divider", lipgloss.NewStyle(), p.rule(glyph, length))
	}

	pad := strings.Repeat(" ", max(dims.Inner, 1))
	label := pad + cfg.Label + pad
	rest := max(length-lipgloss.Width(label), 2)
	left := rest / 2
	return paint.Row("divider", lipgloss.Center,
		paint.Text("divider.rule", lipgloss.NewStyle(), p.rule(glyph, left)),
		p.text("divider.label", theme.LabelType(cfg.Size), p.content(), label),
		paint.Text("divider.rule", lipgloss.NewStyle(), p.rule(glyph, rest-left)),
	)
}

// rule draws n glyphs in the stroke colour, or along the gradient.
func (p painter) rule(glyph string, n int) string {
	if p.recipe.Fill == variant.FillGradient {
		return gradientRun(glyph, n, p.active(), p.accent())
	}
	return lipgloss.NewStyle().Foreground(p.stroke()).Render(strings.Repeat(glyph, n))
}

func dividerGlyph(pattern variant.Pattern, o Orientation, heavy bool) string {
	type glyphs struct{ light, heavy string }
	var g glyphs
	switch {
	case o == OrientationVertical && pattern == variant.PatternDashed:
		g = glyphs{"╎", "╏"}
	case o == OrientationVertical && pattern == variant.PatternDotted:
		g = glyphs{"┊", "┋"}
	case o == OrientationVertical:
		g = glyphs{"│", "┃"}
	case pattern == variant.PatternDashed:
		g = glyphs{"╌", "╍"}
	case pattern == variant.PatternDotted:
		g = glyphs{"┈", "┉"}
	default:
		g = glyphs{"─", "━"}
	}
	if heavy {
		return g.heavy
	}
	return g.light
}
