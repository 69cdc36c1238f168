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

// DefaultMaxRating is the star count when RatingConfig.Max is unset.
const DefaultMaxRating = 5

// RatingConfig configures a Rating.
type RatingConfig struct {
	// Value is the logical rating, clamped to [0, Max] for drawing. Without
	// AllowHalf it is rounded to a whole star.
	Value float64
	// Max is the number of stars.
	Max int
	// AllowHalf enables half-star values.
	AllowHalf bool
	// OnChange receives the proposed rating when a star is tapped.
	OnChange func(value float64)

	Variant variant.Rating
	Size    theme.SizeClass
	Colors  Colors

	Label    string
	Disabled bool
}

func (c RatingConfig) max() int {
	if c.Max <= 0 {
		return DefaultMaxRating
	}
	return c.Max
}

// value is the drawable rating.
func (c RatingConfig) value() float64 {
	v := clamp(c.Value, 0, float64(c.max()))
	if c.AllowHalf {
		return math.Round(v*2) / 2
	}
	return math.Round(v)
}

// propose returns the rating a tap on star proposes. Tapping the star equal
// to the current whole value demotes it to the half below when half steps are
// allowed; every other tap proposes the star's whole value.
func (c RatingConfig) propose(star int) float64 {
	target := float64(star)
	if c.AllowHalf && c.Value == target {
		return target - 0.5
	}
	return target
}

// RatingFrame is the animated state of one rating frame.
type RatingFrame struct {
	FrameBase
	// Stars holds each star's fill from 0 (empty) to 1 (full).
	Stars []float64
}

// Rating is a row of tappable stars.
type Rating struct {
	cfg   RatingConfig
	in    interaction
	stars []motion.Float
}

// NewRating mounts a rating.
func NewRating() *Rating {
	return &Rating{in: newInteraction()}
}

// Sync applies the caller's configuration at now.
func (r *Rating) Sync(cfg RatingConfig, now time.Time) {
	defer r.in.mount()
	r.cfg = cfg
	r.in.sync(!cfg.Disabled, now)

	n, value := cfg.max(), cfg.value()
	if len(r.stars) > n {
		r.stars = r.stars[:n]
	}
	for len(r.stars) < n {
		r.stars = append(r.stars, motion.NewFloat(starFill(value, len(r.stars))))
	}
	for i := range r.stars {
		r.stars[i] = r.in.to(r.stars[i], starFill(value, i), motion.Reveal, false)
	}
}

// Handle proposes a rating when a star is tapped. Event.Part is the zero
// based star index.
func (r *Rating) Handle(e Event) {
	part, ok := r.in.tap(e)
	if !ok || part < 0 || part >= r.cfg.max() {
		return
	}
	if r.cfg.OnChange != nil {
		r.cfg.OnChange(r.cfg.propose(part + 1))
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (r *Rating) Advance(now time.Time) bool {
	rest := r.in.advance(now)
	return stepAll(now, r.stars) && rest
}

// Frame returns the current animated values.
func (r *Rating) Frame() RatingFrame {
	stars := make([]float64, len(r.stars))
	for i, s := range r.stars {
		stars[i] = s.Value()
	}
	return RatingFrame{FrameBase: r.in.base(), Stars: stars}
}

// Render draws the current frame.
func (r *Rating) Render(ctx RenderContext) paint.Node {
	return RenderRating(ctx.tokens(), variant.RecipeFor(r.cfg.Variant), r.Frame(), r.cfg)
}

// View renders with the default theme.
func (r *Rating) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (r *Rating) ViewWithContext(ctx RenderContext) string {
	return r.Render(ctx).View()
}

// StateDescription describes the rating for assistive output.
func (r *Rating) StateDescription() string {
	state := formatValue(r.cfg.value()) + " of " + formatValue(float64(r.cfg.max()))
	return stateWords(r.cfg.Label, "rating", state, r.cfg.Disabled)
}

// RenderRating draws a rating frame.
func RenderRating(tokens theme.Tokens, recipe variant.Recipe, frame RatingFrame, cfg RatingConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.Rating, cfg.Size)
	full, half, empty := cfg.Variant.Glyphs()
	value := cfg.value()

	n := cfg.max()
	nodes := make([]paint.Node, 0, 2*n)
	for i := range n {
		fill := starFill(value, i)
		if i < len(frame.Stars) {
			fill = frame.Stars[i]
		}

		glyph, color, state := empty, p.inactive(), paint.State(0)
		switch {
		case fill >= 0.75:
			glyph, color, state = full, p.active(), paint.Checked
		case fill >= 0.25:
			glyph, color, state = half, p.active(), paint.Half
		}
		color = theme.Blend(p.inactive(), color, clamp(fill*1.5, 0, 1))

		if i > 0 && dims.Inner > 0 {
			nodes = append(nodes, paint.Text("", lipgloss.NewStyle(), strings.Repeat(" ", dims.Inner)))
		}
		style := lipgloss.NewStyle().Width(max(dims.Primary, 1)).Foreground(color)
		nodes = append(nodes, paint.Text("rating.star", style, glyph).With(state))
	}

	stars := paint.Row("rating.stars", lipgloss.Top, nodes...)
	return paint.Row("rating", lipgloss.Center,
		spaced([]paint.Node{p.label("rating.label", cfg.Size, cfg.Label), stars})...,
	).With(p.state)
}

// starFill is how full star i (zero based) is at value.
func starFill(value float64, i int) float64 {
	return clamp(value-float64(i), 0, 1)
}
