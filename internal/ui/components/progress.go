package components

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/motion"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// ProgressConfig configures a Progress bar.
type ProgressConfig struct {
	// Value is the completed fraction, clamped to [0, 1].
	Value float64

	Variant variant.Progress
	Size    theme.SizeClass
	Colors  Colors
	// Width overrides the bar width in cells, percentage included.
	Width int

	Label       string
	ShowPercent bool
}

// ProgressFrame is the animated state of one progress frame.
type ProgressFrame struct {
	FrameBase
	Fraction float64
}

// Progress is a determinate progress bar.
type Progress struct {
	cfg      ProgressConfig
	in       interaction
	fraction motion.Float
}

// NewProgress mounts a progress bar.
func NewProgress() *Progress {
	return &Progress{in: newInteraction()}
}

// Sync applies the caller's configuration at now.
func (p *Progress) Sync(cfg ProgressConfig, now time.Time) {
	defer p.in.mount()
	p.cfg = cfg
	p.in.sync(true, now)
	p.fraction = p.in.to(p.fraction, clamp(cfg.Value, 0, 1), motion.Fraction, false)
}

// Advance steps the animations to now and reports whether all are at rest.
func (p *Progress) Advance(now time.Time) bool {
	rest := p.in.advance(now)
	return step(now, &p.fraction) && rest
}

// Frame returns the current animated values.
func (p *Progress) Frame() ProgressFrame {
	return ProgressFrame{FrameBase: p.in.base(), Fraction: p.fraction.Value()}
}

// Render draws the current frame.
func (p *Progress) Render(ctx RenderContext) paint.Node {
	return RenderProgress(ctx.tokens(), variant.RecipeFor(p.cfg.Variant), p.Frame(), p.cfg)
}

// View renders with the default theme.
func (p *Progress) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (p *Progress) ViewWithContext(ctx RenderContext) string {
	return p.Render(ctx).View()
}

// StateDescription describes the bar for assistive output.
func (p *Progress) StateDescription() string {
	return stateWords(p.cfg.Label, "progress bar", percentText(clamp(p.cfg.Value, 0, 1)), false)
}

// RenderProgress draws a progress frame. Solid and gradient bars are drawn
// by the bubbles progress model; striped and segmented bars use their own
// glyphs.
func RenderProgress(tokens theme.Tokens, recipe variant.Recipe, frame ProgressFrame, cfg ProgressConfig) paint.Node {
	pt := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	width := cfg.Width
	if width <= 0 {
		width = pt.tokens.Size(kind.Progress, cfg.Size).Primary
	}
	fraction := clamp(frame.Fraction, 0, 1)

	var bar string
	switch recipe.Pattern {
	case variant.PatternStriped, variant.PatternSegmented:
		bar = pt.patternBar(width, fraction, cfg.ShowPercent)
	default:
		opts := []progress.Option{
			progress.WithWidth(width),
			progress.WithColorProfile(lipgloss.ColorProfile()),
		}
		if recipe.Fill == variant.FillGradient {
			opts = append(opts, progress.WithScaledGradient(hex(pt.active()), hex(pt.accent())))
		} else {
			opts = append(opts, progress.WithSolidFill(hex(pt.active())))
		}
		if !cfg.ShowPercent {
			opts = append(opts, progress.WithoutPercentage())
		}
		model := progress.New(opts...)
		model.EmptyColor = hex(pt.inactive())
		model.PercentageStyle = pt.tokens.Type(theme.TypeLabelSmall).Foreground(pt.content())
		bar = model.ViewAs(fraction)
	}

	node := paint.Text("progress.bar", lipgloss.NewStyle(), bar)
	return paint.Row("progress", lipgloss.Center,
		spaced([]paint.Node{pt.label("progress.label", cfg.Size, cfg.Label), node})...,
	).With(pt.state)
}

// patternBar draws a bar whose filled cells alternate shades (striped) or
// are separated block glyphs (segmented).
func (p painter) patternBar(width int, fraction float64, showPercent bool) string {
	var percent string
	if showPercent {
		percent = p.tokens.Type(theme.TypeLabelSmall).Foreground(p.content()).Render(" " + percentText(fraction))
	}
	total := max(width-lipgloss.Width(percent), 0)
	filled := min(int(math.Round(fraction*float64(total))), total)

	full := lipgloss.NewStyle().Foreground(p.active())
	alt := lipgloss.NewStyle().Foreground(theme.Blend(p.active(), p.accent(), 0.5))
	empty := lipgloss.NewStyle().Foreground(p.inactive())

	var b strings.Builder
	for i := range total {
		switch {
		case p.recipe.Pattern == variant.PatternSegmented && i < filled:
			b.WriteString(full.Render("▰"))
		case p.recipe.Pattern == variant.PatternSegmented:
			b.WriteString(empty.Render("▱"))
		case i < filled && i%2 == 0:
			b.WriteString(full.Render("█"))
		case i < filled:
			b.WriteString(alt.Render("▓"))
		default:
			b.WriteString(empty.Render("░"))
		}
	}
	b.WriteString(percent)
	return b.String()
}

func percentText(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}
