package components

import (
	"time"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// IconButtonConfig configures an IconButton.
type IconButtonConfig struct {
	Icon string
	// Label is not drawn; it names the button for assistive output.
	Label   string
	OnClick func()

	Variant variant.IconButton
	Size    theme.SizeClass
	Colors  Colors

	Disabled bool
}

// IconButtonFrame is the animated state of one icon button frame.
type IconButtonFrame struct {
	FrameBase
}

// IconButton is a square button holding a single glyph.
type IconButton struct {
	cfg IconButtonConfig
	in  interaction
}

// NewIconButton mounts an icon button.
func NewIconButton() *IconButton {
	return &IconButton{in: newInteraction()}
}

// Sync applies the caller's configuration at now.
func (b *IconButton) Sync(cfg IconButtonConfig, now time.Time) {
	defer b.in.mount()
	b.cfg = cfg
	b.in.sync(!cfg.Disabled, now)
}

// Handle calls OnClick when a tap completes.
func (b *IconButton) Handle(e Event) {
	if _, ok := b.in.tap(e); ok && b.cfg.OnClick != nil {
		b.cfg.OnClick()
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (b *IconButton) Advance(now time.Time) bool {
	return b.in.advance(now)
}

// Frame returns the current animated values.
func (b *IconButton) Frame() IconButtonFrame {
	return IconButtonFrame{FrameBase: b.in.base()}
}

// Render draws the current frame.
func (b *IconButton) Render(ctx RenderContext) paint.Node {
	return RenderIconButton(ctx.tokens(), variant.RecipeFor(b.cfg.Variant), b.Frame(), b.cfg)
}

// View renders with the default theme.
func (b *IconButton) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (b *IconButton) ViewWithContext(ctx RenderContext) string {
	return b.Render(ctx).View()
}

// StateDescription describes the button for assistive output.
func (b *IconButton) StateDescription() string {
	return stateWords(b.cfg.Label, "button", "", b.cfg.Disabled)
}

// RenderIconButton draws an icon button frame.
func RenderIconButton(tokens theme.Tokens, recipe variant.Recipe, frame IconButtonFrame, cfg IconButtonConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.IconButton, cfg.Size)
	return p.surface("icon-button", cfg.Icon, dims.Primary, dims.Secondary)
}
