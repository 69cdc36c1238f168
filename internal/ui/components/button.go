package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// ButtonConfig configures a Button. The zero value is an enabled medium
// filled button.
type ButtonConfig struct {
	Label string
	// Icon is drawn before the label.
	Icon string
	// OnClick is called when a tap completes. It is not called while
	// loading.
	OnClick func()

	Variant variant.Button
	Size    theme.SizeClass
	Colors  Colors

	// Loading replaces the icon with a spinner and suppresses clicks.
	Loading bool
	// Spinner sets the loading animation. The zero value uses spinner.Dot.
	Spinner spinner.Spinner
	// FullWidth stretches the button to Width, or to the render context's
	// available width when Width is zero.
	FullWidth bool
	Width     int

	Disabled bool
}

func (c ButtonConfig) spinner() spinner.Spinner {
	if len(c.Spinner.Frames) == 0 || c.Spinner.FPS <= 0 {
		return spinner.Dot
	}
	return c.Spinner
}

// ButtonFrame is the animated state of one button frame.
type ButtonFrame struct {
	FrameBase
	// Spinner indexes the loading animation frames.
	Spinner int
}

// Button is a labelled push button.
type Button struct {
	cfg          ButtonConfig
	in           interaction
	loadingSince time.Time
}

// NewButton mounts a button.
func NewButton() *Button {
	return &Button{in: newInteraction()}
}

// Sync applies the caller's configuration at now.
func (b *Button) Sync(cfg ButtonConfig, now time.Time) {
	defer b.in.mount()
	if cfg.Loading && !b.cfg.Loading {
		b.loadingSince = now
	}
	b.cfg = cfg
	b.in.sync(!cfg.Disabled, now)
}

// Handle calls OnClick when a tap completes.
func (b *Button) Handle(e Event) {
	if _, ok := b.in.tap(e); !ok || b.cfg.Loading {
		return
	}
	if b.cfg.OnClick != nil {
		b.cfg.OnClick()
	}
}

// Advance steps the animations to now. A loading button never rests.
func (b *Button) Advance(now time.Time) bool {
	return b.in.advance(now) && !b.cfg.Loading
}

// Frame returns the current animated values.
func (b *Button) Frame() ButtonFrame {
	frame := ButtonFrame{FrameBase: b.in.base()}
	if b.cfg.Loading {
		s := b.cfg.spinner()
		elapsed := b.in.clock.Sub(b.loadingSince)
		frame.Spinner = int(elapsed/s.FPS) % len(s.Frames)
	}
	return frame
}

// Render draws the current frame.
func (b *Button) Render(ctx RenderContext) paint.Node {
	cfg := b.cfg
	if cfg.FullWidth && cfg.Width == 0 {
		cfg.Width = ctx.availableWidth()
	}
	return RenderButton(ctx.tokens(), variant.RecipeFor(cfg.Variant), b.Frame(), cfg)
}

// View renders with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.Render(ctx).View()
}

// StateDescription describes the button for assistive output.
func (b *Button) StateDescription() string {
	state := ""
	if b.cfg.Loading {
		state = "busy"
	}
	return stateWords(b.cfg.Label, "button", state, b.cfg.Disabled)
}

// RenderButton draws a button frame.
func RenderButton(tokens theme.Tokens, recipe variant.Recipe, frame ButtonFrame, cfg ButtonConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.Button, cfg.Size)

	lead := cfg.Icon
	if cfg.Loading {
		frames := cfg.spinner().Frames
		lead = strings.TrimSpace(frames[((frame.Spinner%len(frames))+len(frames))%len(frames)])
	}
	content := joinIcon(lead, cfg.Label)

	width := max(dims.Primary, lipgloss.Width(content)+2*dims.Inner)
	if cfg.FullWidth && cfg.Width > 0 {
		width = cfg.Width
		if p.bordered() {
			width -= 2
		}
		width = max(width, lipgloss.Width(content))
	}

	node := p.surface("button", content, width, dims.Secondary)
	if cfg.Loading {
		node = node.With(paint.Loading)
	}
	return node
}

func joinIcon(icon, label string) string {
	switch {
	case icon == "":
		return label
	case label == "":
		return icon
	default:
		return icon + " " + label
	}
}
