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

// ToggleConfig configures a Toggle. The zero value is an enabled medium pill
// switch that is off and has no label.
type ToggleConfig struct {
	// On is the logical value. The toggle only proposes changes to it.
	On bool
	// OnChange receives the proposed value when a tap completes.
	OnChange func(on bool)

	Variant variant.Toggle
	Size    theme.SizeClass
	Colors  Colors

	Label         string
	LabelPosition LabelPosition
	// IconOn and IconOff are drawn inside the thumb.
	IconOn  string
	IconOff string

	Disabled       bool
	DisableHaptics bool
}

// ToggleFrame is the animated state of one toggle frame.
type ToggleFrame struct {
	FrameBase
	// Thumb is the thumb offset from 0 (off) to 1 (on).
	Thumb float64
	// Track mixes the off and on track colours.
	Track float64
}

// Toggle is a switch with a sliding thumb.
type Toggle struct {
	cfg   ToggleConfig
	in    interaction
	thumb motion.Float
	track motion.Float
}

// NewToggle mounts a toggle.
func NewToggle() *Toggle {
	return &Toggle{in: newInteraction()}
}

// WithHaptics sets the haptic sink.
func (t *Toggle) WithHaptics(h Haptics) *Toggle {
	t.in.haptics = h
	return t
}

// Sync applies the caller's configuration at now.
func (t *Toggle) Sync(cfg ToggleConfig, now time.Time) {
	defer t.in.mount()
	t.cfg = cfg
	t.in.sync(!cfg.Disabled, now)
	t.thumb = t.in.to(t.thumb, boolf(cfg.On), motion.Offset, false)
	t.track = t.in.to(t.track, boolf(cfg.On), motion.Tint, false)
}

// Handle proposes the opposite value when a tap completes.
func (t *Toggle) Handle(e Event) {
	if _, ok := t.in.tap(e); !ok {
		return
	}
	t.in.buzz(HapticToggle, t.cfg.DisableHaptics)
	if t.cfg.OnChange != nil {
		t.cfg.OnChange(!t.cfg.On)
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (t *Toggle) Advance(now time.Time) bool {
	rest := t.in.advance(now)
	return step(now, &t.thumb, &t.track) && rest
}

// Frame returns the current animated values.
func (t *Toggle) Frame() ToggleFrame {
	return ToggleFrame{
		FrameBase: t.in.base(),
		Thumb:     t.thumb.Value(),
		Track:     t.track.Value(),
	}
}

// Render draws the current frame.
func (t *Toggle) Render(ctx RenderContext) paint.Node {
	return RenderToggle(ctx.tokens(), variant.RecipeFor(t.cfg.Variant), t.Frame(), t.cfg)
}

// View renders with the default theme.
func (t *Toggle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (t *Toggle) ViewWithContext(ctx RenderContext) string {
	return t.Render(ctx).View()
}

// StateDescription describes the toggle for assistive output.
func (t *Toggle) StateDescription() string {
	state := "off"
	if t.cfg.On {
		state = "on"
	}
	return stateWords(t.cfg.Label, "switch", state, t.cfg.Disabled)
}

// RenderToggle draws a toggle frame.
func RenderToggle(tokens theme.Tokens, recipe variant.Recipe, frame ToggleFrame, cfg ToggleConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	dims := p.tokens.Size(kind.Toggle, cfg.Size)

	width := max(dims.Primary, 2)
	thumbWidth := min(max(dims.Inner, 1), width-1)
	x := int(math.Round(clamp(frame.Thumb, 0, 1) * float64(width-thumbWidth)))

	trackColor := p.pressed(p.mix(frame.Track))
	trackStyle := lipgloss.NewStyle().Width(width)
	var trackGlyphs string
	switch recipe.Fill {
	case variant.FillSolid:
		trackStyle = trackStyle.Background(trackColor)
	case variant.FillGlass:
		trackStyle = trackStyle.Background(p.glass(trackColor))
	default:
		trackStyle = trackStyle.Foreground(trackColor)
		trackGlyphs = strings.Repeat("─", width)
	}

	thumbColor := theme.Blend(p.role(theme.RoleToggleThumbOff), p.content(), clamp(frame.Track, 0, 1))
	thumbStyle := lipgloss.NewStyle().Width(thumbWidth).Align(lipgloss.Center)
	icon := cfg.IconOff
	if cfg.On {
		icon = cfg.IconOn
	}
	thumb := strings.Repeat("█", thumbWidth)
	if icon != "" {
		thumb = icon
		thumbStyle = thumbStyle.Background(thumbColor).Foreground(p.role(theme.RoleSurface))
	} else {
		thumbStyle = thumbStyle.Foreground(thumbColor)
	}

	control := paint.Layer("toggle.control",
		paint.Text("toggle.track", trackStyle, trackGlyphs),
		paint.Text("toggle.thumb", thumbStyle, thumb).At(x, 0, 1),
	).Sized(width, 1)
	if style, ok := p.frame(frame.Track, true); ok {
		control = paint.Box("toggle.frame", style, control)
	}

	state := p.state
	if cfg.On {
		state |= paint.Checked
	}
	label := p.label("toggle.label", cfg.Size, cfg.Label)
	return beside("toggle", control, label, cfg.LabelPosition).With(state)
}
