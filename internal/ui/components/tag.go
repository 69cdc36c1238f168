package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// Tag parts addressed by Event.Part.
const (
	TagBody = iota
	TagClose
)

const tagCloseGlyph = "✕"

// TagConfig configures a Tag.
type TagConfig struct {
	Label string
	Icon  string
	// Closable draws a close mark. Tapping it proposes removal through
	// OnClose; the tag stays until the caller drops it.
	Closable bool
	OnClose  func()
	// OnClick is called when the body is tapped.
	OnClick func()

	Variant variant.Tag
	Size    theme.SizeClass
	Colors  Colors

	Disabled bool
}

// TagFrame is the animated state of one tag frame.
type TagFrame struct {
	FrameBase
	// ClosePressed is set while the close mark is held.
	ClosePressed bool
}

// Tag is a compact label, optionally removable.
type Tag struct {
	cfg TagConfig
	in  interaction
}

// NewTag mounts a tag.
func NewTag() *Tag {
	return &Tag{in: newInteraction()}
}

// Sync applies the caller's configuration at now.
func (t *Tag) Sync(cfg TagConfig, now time.Time) {
	defer t.in.mount()
	t.cfg = cfg
	t.in.sync(!cfg.Disabled, now)
}

// Handle routes a completed tap to OnClose or OnClick by part.
func (t *Tag) Handle(e Event) {
	part, ok := t.in.tap(e)
	if !ok {
		return
	}
	switch {
	case part == TagClose && t.cfg.Closable:
		if t.cfg.OnClose != nil {
			t.cfg.OnClose()
		}
	case part == TagBody:
		if t.cfg.OnClick != nil {
			t.cfg.OnClick()
		}
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (t *Tag) Advance(now time.Time) bool {
	return t.in.advance(now)
}

// Frame returns the current animated values.
func (t *Tag) Frame() TagFrame {
	return TagFrame{
		FrameBase:    t.in.base(),
		ClosePressed: t.in.press.down && t.in.press.part == TagClose,
	}
}

// Render draws the current frame.
func (t *Tag) Render(ctx RenderContext) paint.Node {
	return RenderTag(ctx.tokens(), variant.RecipeFor(t.cfg.Variant), t.Frame(), t.cfg)
}

// View renders with the default theme.
func (t *Tag) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (t *Tag) ViewWithContext(ctx RenderContext) string {
	return t.Render(ctx).View()
}

// StateDescription describes the tag for assistive output.
func (t *Tag) StateDescription() string {
	state := ""
	if t.cfg.Closable {
		state = "removable"
	}
	return stateWords(t.cfg.Label, "tag", state, t.cfg.Disabled)
}

// RenderTag draws a tag frame.
func RenderTag(tokens theme.Tokens, recipe variant.Recipe, frame TagFrame, cfg TagConfig) paint.Node {
	// A held close mark tints only the mark, not the whole tag.
	base := frame.FrameBase
	if frame.ClosePressed {
		base.Scale = 1
	}
	p := newPainter(tokens, recipe, cfg.Colors, base)
	dims := p.tokens.Size(kind.Tag, cfg.Size)

	content := joinIcon(cfg.Icon, cfg.Label)
	if cfg.Closable {
		mark := tagCloseGlyph
		if frame.ClosePressed {
			mark = lipgloss.NewStyle().Bold(true).Render(mark)
		}
		content = joinIcon(content, mark)
	}
	width := max(dims.Primary, lipgloss.Width(content)+2*dims.Inner)
	return p.surface("tag", content, width, dims.Secondary)
}
