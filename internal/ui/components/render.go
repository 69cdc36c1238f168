package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

const (
	// pressTint is how far a held press darkens a fill toward the shadow.
	pressTint = 0.35
	// glassTint is how much of the fill shows through the glass surface.
	glassTint = 0.4
)

// FrameBase is the interaction part of every component frame.
type FrameBase struct {
	// Alpha is the opacity. Zero draws opaque, or at DisabledAlpha when
	// Disabled is set.
	Alpha float64
	// Scale is the press emphasis. Zero and 1 are rest.
	Scale    float64
	Pressed  bool
	Disabled bool
}

func (f FrameBase) opacity() float64 {
	if f.Alpha <= 0 {
		if f.Disabled {
			return DisabledAlpha
		}
		return 1
	}
	return clamp(f.Alpha, 0, 1)
}

func (f FrameBase) pressAmount() float64 {
	if f.Scale <= 0 || f.Scale >= 1 {
		return 0
	}
	return clamp((1-f.Scale)/(1-PressedScale), 0, 1)
}

func (f FrameBase) state() paint.State {
	var s paint.State
	if f.Pressed {
		s |= paint.Pressed
	}
	if f.Disabled {
		s |= paint.Disabled
	}
	return s
}

// Colors replaces recipe roles with fixed colours. Unset fields keep the
// role the variant names.
type Colors struct {
	Active   lipgloss.AdaptiveColor
	Inactive lipgloss.AdaptiveColor
	Accent   lipgloss.AdaptiveColor
	Content  lipgloss.AdaptiveColor
	Stroke   lipgloss.AdaptiveColor
}

// LabelPosition places a label before or after its control.
type LabelPosition int

const (
	LabelEnd LabelPosition = iota
	LabelStart
)

// painter resolves a recipe against tokens for one frame.
type painter struct {
	tokens theme.Tokens
	recipe variant.Recipe
	colors Colors
	alpha  float64
	press  float64
	state  paint.State
}

func newPainter(tokens theme.Tokens, recipe variant.Recipe, colors Colors, base FrameBase) painter {
	return painter{
		tokens: tokens.OrDefault(),
		recipe: recipe,
		colors: colors,
		alpha:  base.opacity(),
		press:  base.pressAmount(),
		state:  base.state(),
	}
}

func (p painter) fade(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
	if p.alpha >= 1 {
		return c
	}
	return theme.Fade(c, p.tokens.Color(theme.RoleBackground), p.alpha)
}

func (p painter) role(r theme.ColorRole) lipgloss.AdaptiveColor {
	return p.fade(p.tokens.Color(r))
}

func (p painter) active() lipgloss.AdaptiveColor {
	return p.fade(theme.Pick(p.colors.Active, p.tokens.Color(p.recipe.Active)))
}

func (p painter) inactive() lipgloss.AdaptiveColor {
	return p.fade(theme.Pick(p.colors.Inactive, p.tokens.Color(p.recipe.Inactive)))
}

func (p painter) accent() lipgloss.AdaptiveColor {
	return p.fade(theme.Pick(p.colors.Accent, p.tokens.Color(p.recipe.Accent)))
}

func (p painter) content() lipgloss.AdaptiveColor {
	return p.fade(theme.Pick(p.colors.Content, p.tokens.Color(p.recipe.Content)))
}

func (p painter) stroke() lipgloss.AdaptiveColor {
	return p.fade(theme.Pick(p.colors.Stroke, p.tokens.Color(p.recipe.Stroke)))
}

// mix blends the inactive colour toward the active one.
func (p painter) mix(t float64) lipgloss.AdaptiveColor {
	return theme.Blend(p.inactive(), p.active(), clamp(t, 0, 1))
}

// pressed darkens c by the current press amount.
func (p painter) pressed(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
	if p.press <= 0 {
		return c
	}
	return theme.Blend(c, p.role(theme.RoleShadow), p.press*pressTint)
}

// text renders a label in a typography role at the frame's opacity.
func (p painter) text(role string, typ theme.TypeRole, fg lipgloss.AdaptiveColor, content string) paint.Node {
	if content == "" {
		return paint.Empty()
	}
	return paint.Text(role, p.tokens.Type(typ).Foreground(fg), content)
}

// label renders secondary text beside a control.
func (p painter) label(role string, size theme.SizeClass, content string) paint.Node {
	return p.text(role, theme.LabelType(size), p.role(theme.RoleTextPrimary), content)
}

// beside places label before or after control with a one cell gap.
func beside(role string, control, label paint.Node, pos LabelPosition) paint.Node {
	if label.IsEmpty() {
		return control.WithRole(role)
	}
	gap := paint.Text("", lipgloss.NewStyle(), " ")
	if pos == LabelStart {
		return paint.Row(role, lipgloss.Center, label, gap, control)
	}
	return paint.Row(role, lipgloss.Center, control, gap, label)
}

// surface draws content centred on the recipe's fill and border at full
// emphasis.
func (p painter) surface(role, content string, width, height int) paint.Node {
	return p.draw(role, content, width, height, 1, false, lipgloss.Center)
}

// selectable draws a surface whose fill, stroke and text move from the
// inactive to the active colours as emphasis goes from 0 to 1.
func (p painter) selectable(role, content string, width, height int, emphasis float64) paint.Node {
	return p.draw(role, content, width, height, clamp(emphasis, 0, 1), true, lipgloss.Center)
}

func (p painter) draw(role, content string, width, height int, emphasis float64, selectable bool, align lipgloss.Position) paint.Node {
	fill := p.pressed(p.active())
	fg := p.content()
	if selectable {
		fill = p.pressed(p.mix(emphasis))
		fg = theme.Blend(p.role(theme.RoleTextPrimary), p.content(), emphasis)
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(align).
		AlignVertical(lipgloss.Center).
		Foreground(fg)

	var rendered string
	switch p.recipe.Fill {
	case variant.FillSolid:
		rendered = body.Background(fill).Render(content)
	case variant.FillGlass:
		rendered = body.Background(p.glass(fill)).Render(content)
	case variant.FillGradient:
		rendered = gradientBlock(content, width, height, align, fill, p.pressed(p.accent()), fg)
	default:
		rendered = body.Render(content)
	}

	frame, _ := p.frame(emphasis, selectable)
	node := paint.Text(role, frame, rendered).With(p.state)
	return p.elevate(role, node)
}

// bordered reports whether the recipe draws a stroke.
func (p painter) bordered() bool {
	return p.recipe.Border != variant.BorderNone || p.recipe.Fill == variant.FillOutline
}

// frame returns the border style for the recipe. Selectable strokes move
// toward the active colour with emphasis.
func (p painter) frame(emphasis float64, selectable bool) (lipgloss.Style, bool) {
	style := lipgloss.NewStyle()
	if !p.bordered() {
		return style, false
	}

	stroke := p.stroke()
	if selectable {
		stroke = theme.Blend(stroke, p.active(), emphasis)
	}

	style = style.Border(BorderFor(p.recipe.Corner))
	switch {
	case p.recipe.Border == variant.BorderGradient:
		style = style.
			BorderTopForeground(p.active()).
			BorderLeftForeground(p.active()).
			BorderRightForeground(p.accent()).
			BorderBottomForeground(p.accent())
	case p.recipe.Glow:
		style = style.BorderForeground(theme.Blend(stroke, p.accent(), emphasis*0.5)).Bold(true)
	default:
		style = style.BorderForeground(stroke)
	}
	return style, true
}

// glass lays fill over the translucent glass colour.
func (p painter) glass(fill lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
	return theme.Blend(p.role(theme.RoleGlass), fill, glassTint)
}

// elevate draws a shadow one cell down and right of node.
func (p painter) elevate(role string, node paint.Node) paint.Node {
	if p.recipe.Elevation <= 0 {
		return node
	}
	w, h := node.Size()
	shadow := lipgloss.NewStyle().
		Width(w).
		Height(h).
		Background(p.role(theme.RoleShadow))
	offset := p.recipe.Elevation
	return paint.Layer(role,
		paint.Text(role+".shadow", shadow, "").At(offset, offset, 0),
		node.WithRole(role+".body").At(0, 0, 1),
	).With(node.State)
}

// gradientBlock places content in a width x height block whose background
// runs from one colour to the other across each row.
func gradientBlock(content string, width, height int, align lipgloss.Position, from, to, fg lipgloss.AdaptiveColor) string {
	placed := lipgloss.Place(width, height, align, lipgloss.Center, ansi.Strip(content))
	lines := strings.Split(placed, "\n")

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		cells := []rune(line)
		stops := theme.Gradient(from, to, len(cells))
		for j, r := range cells {
			b.WriteString(lipgloss.NewStyle().Background(stops[j]).Foreground(fg).Render(string(r)))
		}
	}
	return b.String()
}

// gradientRun colours each cell of a run of glyphs along a gradient.
func gradientRun(glyph string, n int, from, to lipgloss.AdaptiveColor) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range theme.Gradient(from, to, n) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(glyph))
	}
	return b.String()
}

// hex picks the variant of c for the terminal background, for libraries
// that take plain colour strings.
func hex(c lipgloss.AdaptiveColor) string {
	if lipgloss.HasDarkBackground() {
		return c.Dark
	}
	return c.Light
}

// stateWords joins the accessibility fragments of a component.
func stateWords(label, role, state string, disabled bool) string {
	parts := make([]string, 0, 4)
	if label != "" {
		parts = append(parts, label)
	}
	parts = append(parts, role)
	if state != "" {
		parts = append(parts, state)
	}
	if disabled {
		parts = append(parts, "disabled")
	}
	return strings.Join(parts, ", ")
}
