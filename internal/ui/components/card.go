package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui"
	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// CardConfig configures a Card.
type CardConfig struct {
	Title    string
	Subtitle string
	// Content is stacked under the title.
	Content []ui.Renderable
	// Footer is drawn under a divider at the bottom.
	Footer ui.Renderable
	// OnClick makes the card pressable. A card without it ignores input.
	OnClick func()

	Variant variant.Card
	Size    theme.SizeClass
	Colors  Colors
	// Width overrides the outer width in cells. Zero fills the render
	// context, or falls back to the size class width.
	Width int

	Disabled bool
}

// CardFrame is the animated state of one card frame.
type CardFrame struct {
	FrameBase
}

// Card is a surface grouping a title, content and footer.
type Card struct {
	cfg CardConfig
	in  interaction
}

// NewCard mounts a card.
func NewCard() *Card {
	return &Card{in: newInteraction()}
}

// Sync applies the caller's configuration at now.
func (c *Card) Sync(cfg CardConfig, now time.Time) {
	defer c.in.mount()
	c.cfg = cfg
	c.in.sync(!cfg.Disabled, now)
}

// Handle calls OnClick when a tap completes on a clickable card.
func (c *Card) Handle(e Event) {
	if c.cfg.OnClick == nil {
		return
	}
	if _, ok := c.in.tap(e); ok {
		c.cfg.OnClick()
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (c *Card) Advance(now time.Time) bool {
	return c.in.advance(now)
}

// Frame returns the current animated values.
func (c *Card) Frame() CardFrame {
	return CardFrame{FrameBase: c.in.base()}
}

// Render draws the current frame.
func (c *Card) Render(ctx RenderContext) paint.Node {
	cfg := c.cfg
	if cfg.Width == 0 {
		cfg.Width = ctx.availableWidth()
	}
	return RenderCard(ctx.tokens(), variant.RecipeFor(cfg.Variant), c.Frame(), cfg)
}

// View renders with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	return c.Render(ctx).View()
}

// StateDescription describes the card for assistive output.
func (c *Card) StateDescription() string {
	role := "group"
	if c.cfg.OnClick != nil {
		role = "button"
	}
	return stateWords(c.cfg.Title, role, "", c.cfg.Disabled)
}

// RenderCard draws a card frame. Content renders with the card's tokens and
// inner width.
func RenderCard(tokens theme.Tokens, recipe variant.Recipe, frame CardFrame, cfg CardConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.Card, cfg.Size)

	width := cfg.Width
	if width <= 0 {
		width = dims.Primary
	}
	if p.bordered() {
		width -= 2
	}
	inner := max(width-2*dims.Inner, 1)

	children := make([]ui.Renderable, 0, len(cfg.Content)+3)
	if cfg.Title != "" {
		children = append(children, NewHeader(cfg.Title).WithSubtitle(cfg.Subtitle).WithLevel(3))
	}
	children = append(children, cfg.Content...)
	if cfg.Footer != nil {
		children = append(children, HorizontalDivider(), cfg.Footer)
	}

	ctx := DefaultContext().WithTheme(p.tokens).WithConstraints(WithMaxWidth(inner))
	content := VStack(children...).ViewWithContext(ctx)
	content = lipgloss.NewStyle().Padding(0, dims.Inner).Render(content)
	content = lipgloss.PlaceVertical(max(dims.Secondary, lipgloss.Height(content)), lipgloss.Top, content)

	return p.draw("card", content, width, 0, 1, false, lipgloss.Left)
}
