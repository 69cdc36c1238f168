package components

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/motion"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// keyboardSteps is the number of Step increments across the range of a
// slider without discrete steps.
const keyboardSteps = 20

// SliderConfig configures a Slider. Min and Max default to 0 and 1.
type SliderConfig struct {
	// Value is the logical value. It is clamped into range for drawing.
	Value float64
	Min   float64
	Max   float64
	// Steps divides the range into that many equal steps; proposals snap to
	// them. Zero means continuous.
	Steps int
	// OnChange receives each distinct proposed value during a drag.
	OnChange func(value float64)

	Variant variant.Slider
	Size    theme.SizeClass
	Colors  Colors
	// Width overrides the track width in cells.
	Width int

	Label     string
	ShowValue bool

	Disabled       bool
	DisableHaptics bool
}

func (c SliderConfig) bounds() (float64, float64) {
	lo, hi := c.Min, c.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

// fraction is the clamped value as a 0..1 position.
func (c SliderConfig) fraction() float64 {
	lo, hi := c.bounds()
	return (clamp(c.Value, lo, hi) - lo) / (hi - lo)
}

// quantize snaps v to the nearest step and then clamps it into range.
func (c SliderConfig) quantize(v float64) float64 {
	lo, hi := c.bounds()
	if c.Steps > 0 {
		steps := float64(c.Steps)
		k := math.Round((v - lo) / (hi - lo) * steps)
		v = lo + (hi-lo)*k/steps
	}
	return clamp(v, lo, hi)
}

func (c SliderConfig) trackWidth(tokens theme.Tokens) int {
	if c.Width > 0 {
		return c.Width
	}
	return max(tokens.Size(kind.Slider, c.Size).Primary, 2)
}

// SliderFrame is the animated state of one slider frame.
type SliderFrame struct {
	FrameBase
	// Fraction is the filled proportion of the track.
	Fraction float64
	Dragging bool
}

type dragState struct {
	active   bool
	raw      float64
	proposed float64
}

// Slider selects a value in a range by dragging a thumb along a track.
type Slider struct {
	cfg      SliderConfig
	in       interaction
	tokens   theme.Tokens
	fraction motion.Float
	drag     dragState
}

// NewSlider mounts a slider.
func NewSlider() *Slider {
	return &Slider{in: newInteraction(), tokens: theme.Default()}
}

// WithHaptics sets the haptic sink.
func (s *Slider) WithHaptics(h Haptics) *Slider {
	s.in.haptics = h
	return s
}

// WithTokens sets the tokens used to size the track for drag conversion.
// Render keeps them in step with the context it is given.
func (s *Slider) WithTokens(tokens theme.Tokens) *Slider {
	s.tokens = tokens.OrDefault()
	return s
}

// Sync applies the caller's configuration at now. While a drag is active the
// fill tracks the value without interpolation.
func (s *Slider) Sync(cfg SliderConfig, now time.Time) {
	defer s.in.mount()
	s.cfg = cfg
	s.in.sync(!cfg.Disabled, now)
	if s.in.disabled {
		s.drag = dragState{}
	}
	s.fraction = s.in.to(s.fraction, cfg.fraction(), motion.Fraction, s.drag.active)
}

// Handle converts drag deltas into proposals. Moves are accumulated in value
// units, snapped, clamped and proposed only when they differ from both the
// last snapped position and the current value.
func (s *Slider) Handle(e Event) {
	if s.in.disabled {
		s.drag = dragState{}
		s.in.tap(e)
		return
	}

	switch e.Kind {
	case PointerDown:
		s.in.tap(e)
		lo, hi := s.cfg.bounds()
		current := clamp(s.cfg.Value, lo, hi)
		s.drag = dragState{active: true, raw: current, proposed: current}
		s.fraction = s.in.to(s.fraction, s.cfg.fraction(), motion.Fraction, true)
	case PointerMove:
		if !s.drag.active {
			return
		}
		lo, hi := s.cfg.bounds()
		s.drag.raw += e.DX / float64(s.cfg.trackWidth(s.tokens)) * (hi - lo)
		s.propose(s.cfg.quantize(s.drag.raw))
	case PointerUp, PointerCancel:
		s.in.tap(e)
		s.drag = dragState{}
		s.fraction = s.in.to(s.fraction, s.cfg.fraction(), motion.Fraction, false)
	}
}

// Step proposes the value n steps away, as arrow keys would.
func (s *Slider) Step(n int) {
	if s.in.disabled || n == 0 {
		return
	}
	lo, hi := s.cfg.bounds()
	steps := s.cfg.Steps
	if steps <= 0 {
		steps = keyboardSteps
	}
	current := clamp(s.cfg.Value, lo, hi)
	next := s.cfg.quantize(current + float64(n)*(hi-lo)/float64(steps))
	if next == current {
		return
	}
	s.emit(next)
}

// propose emits v unless it repeats the last position the drag snapped to
// or equals the caller's current value.
func (s *Slider) propose(v float64) {
	if v == s.drag.proposed {
		return
	}
	s.drag.proposed = v
	lo, hi := s.cfg.bounds()
	if v == clamp(s.cfg.Value, lo, hi) {
		return
	}
	s.emit(v)
}

func (s *Slider) emit(v float64) {
	if s.cfg.Steps > 0 {
		s.in.buzz(HapticTick, s.cfg.DisableHaptics)
	}
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(v)
	}
}

// Advance steps the animations to now and reports whether all are at rest.
func (s *Slider) Advance(now time.Time) bool {
	rest := s.in.advance(now)
	return step(now, &s.fraction) && rest
}

// Frame returns the current animated values.
func (s *Slider) Frame() SliderFrame {
	return SliderFrame{
		FrameBase: s.in.base(),
		Fraction:  s.fraction.Value(),
		Dragging:  s.drag.active,
	}
}

// Render draws the current frame.
func (s *Slider) Render(ctx RenderContext) paint.Node {
	s.tokens = ctx.tokens()
	return RenderSlider(s.tokens, variant.RecipeFor(s.cfg.Variant), s.Frame(), s.cfg)
}

// View renders with the default theme.
func (s *Slider) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (s *Slider) ViewWithContext(ctx RenderContext) string {
	return s.Render(ctx).View()
}

// StateDescription describes the slider for assistive output.
func (s *Slider) StateDescription() string {
	lo, hi := s.cfg.bounds()
	return stateWords(s.cfg.Label, "slider", formatValue(clamp(s.cfg.Value, lo, hi)), s.cfg.Disabled)
}

// RenderSlider draws a slider frame.
func RenderSlider(tokens theme.Tokens, recipe variant.Recipe, frame SliderFrame, cfg SliderConfig) paint.Node {
	p := newPainter(tokens, recipe, cfg.Colors, frame.FrameBase)
	width := cfg.trackWidth(p.tokens)
	fraction := clamp(frame.Fraction, 0, 1)
	filled := int(math.Round(fraction * float64(width)))

	fillGlyph, restGlyph := "━", "─"
	if recipe.Pattern == variant.PatternDotted {
		fillGlyph, restGlyph = "•", "·"
	}

	var fill string
	if recipe.Fill == variant.FillGradient {
		fill = gradientRun(fillGlyph, filled, p.active(), p.accent())
	} else {
		fill = lipgloss.NewStyle().Foreground(p.active()).Render(strings.Repeat(fillGlyph, filled))
	}
	rest := lipgloss.NewStyle().Foreground(p.inactive()).Render(strings.Repeat(restGlyph, width-filled))

	thumbStyle := lipgloss.NewStyle().Foreground(p.pressed(p.content()))
	if recipe.Glow || frame.Dragging {
		thumbStyle = thumbStyle.Bold(true)
	}
	x := int(math.Round(fraction * float64(width-1)))

	track := paint.Layer("slider.track",
		paint.Text("slider.fill", lipgloss.NewStyle(), fill+rest),
		paint.Text("slider.thumb", thumbStyle, "●").At(x, 0, 1),
	).Sized(width, 1)

	state := p.state
	if frame.Dragging {
		state |= paint.Dragging
	}

	children := []paint.Node{p.label("slider.label", cfg.Size, cfg.Label), track}
	if cfg.ShowValue {
		lo, hi := cfg.bounds()
		children = append(children, p.label("slider.value", cfg.Size, formatValue(clamp(cfg.Value, lo, hi))))
	}
	return paint.Row("slider", lipgloss.Center, spaced(children)...).With(state)
}

// spaced drops empty nodes and puts a one cell gap between the rest.
func spaced(nodes []paint.Node) []paint.Node {
	out := make([]paint.Node, 0, len(nodes)*2)
	for _, n := range nodes {
		if n.IsEmpty() {
			continue
		}
		if len(out) > 0 {
			out = append(out, paint.Text("", lipgloss.NewStyle(), " "))
		}
		out = append(out, n)
	}
	return out
}

func formatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
