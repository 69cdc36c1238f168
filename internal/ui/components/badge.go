package components

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/motion"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// DefaultMaxBadgeCount is the largest count shown before "99+".
const DefaultMaxBadgeCount = 99

// Scale thresholds for drawing a popping badge.
const (
	badgeHidden = 0.2
	badgeDotted = 0.6
)

// BadgeConfig configures a Badge. A count of zero or less hides it.
type BadgeConfig struct {
	Count int
	// Max caps the number shown; larger counts read "Max+".
	Max int

	Variant variant.Badge
	Size    theme.SizeClass
	Colors  Colors

	// Anchor is drawn under the badge, which sits on its top right corner.
	Anchor paint.Node
}

func (c BadgeConfig) max() int {
	if c.Max <= 0 {
		return DefaultMaxBadgeCount
	}
	return c.Max
}

// Text is the label the badge shows.
func (c BadgeConfig) Text() string {
	switch {
	case c.Count <= 0:
		return ""
	case c.Count > c.max():
		return strconv.Itoa(c.max()) + "+"
	default:
		return strconv.Itoa(c.Count)
	}
}

// BadgeFrame is the animated state of one badge frame.
type BadgeFrame struct {
	FrameBase
	// Pop is the badge scale from 0 (hidden) to 1.
	Pop float64
}

// Badge is a count or status dot, optionally pinned to another node.
type Badge struct {
	cfg BadgeConfig
	in  interaction
	pop motion.Float
	// last is the most recent positive count, drawn while the badge shrinks
	// away.
	last int
}

// NewBadge mounts a badge.
func NewBadge() *Badge {
	return &Badge{in: newInteraction()}
}

// Sync applies the caller's configuration at now.
func (b *Badge) Sync(cfg BadgeConfig, now time.Time) {
	defer b.in.mount()
	b.cfg = cfg
	if cfg.Count > 0 {
		b.last = cfg.Count
	}
	b.in.sync(true, now)
	b.pop = b.in.to(b.pop, boolf(cfg.Count > 0), motion.Scale, false)
}

// Advance steps the animations to now and reports whether all are at rest.
func (b *Badge) Advance(now time.Time) bool {
	rest := b.in.advance(now)
	return step(now, &b.pop) && rest
}

// Frame returns the current animated values.
func (b *Badge) Frame() BadgeFrame {
	return BadgeFrame{FrameBase: b.in.base(), Pop: b.pop.Value()}
}

// Render draws the current frame.
func (b *Badge) Render(ctx RenderContext) paint.Node {
	return b.RenderOver(ctx, b.cfg.Anchor)
}

// RenderOver draws the current frame on anchor in place of the configured
// Anchor, for hosts whose anchor animates on its own.
func (b *Badge) RenderOver(ctx RenderContext, anchor paint.Node) paint.Node {
	cfg := b.cfg
	if cfg.Count <= 0 {
		cfg.Count = b.last
	}
	cfg.Anchor = anchor
	return RenderBadge(ctx.tokens(), variant.RecipeFor(cfg.Variant), b.Frame(), cfg)
}

// View renders with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.Render(ctx).View()
}

// StateDescription describes the badge for assistive output.
func (b *Badge) StateDescription() string {
	if b.cfg.Count <= 0 {
		return stateWords("", "badge", "empty", false)
	}
	return stateWords("", "badge", b.cfg.Text(), false)
}

// RenderBadge draws a badge frame. The badge grows from a dot to its label
// as Pop rises and is not drawn below a small scale.
func RenderBadge(tokens theme.Tokens, recipe variant.Recipe, frame BadgeFrame, cfg BadgeConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.Badge, cfg.Size)

	var badge paint.Node
	switch {
	case frame.Pop < badgeHidden:
		badge = paint.Empty()
	case frame.Pop < badgeDotted || cfg.Variant == variant.BadgeDot:
		badge = paint.Text("badge", lipgloss.NewStyle().Foreground(p.active()), "●")
	default:
		text := cfg.Text()
		width := max(dims.Primary, lipgloss.Width(text)+2*min(dims.Inner, 1))
		badge = p.surface("badge", text, width, 1)
	}

	if cfg.Anchor.IsEmpty() {
		return badge
	}
	if badge.IsEmpty() {
		return cfg.Anchor
	}
	w, _ := cfg.Anchor.Size()
	return paint.Layer("badge.anchor",
		cfg.Anchor.At(0, 0, 0),
		badge.At(max(w-1, 0), 0, 1),
	)
}
