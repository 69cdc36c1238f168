package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

// BaseComponent provides the styling plumbing shared by the layout
// primitives. Embed it to get a raw style plus theme-aware modifiers.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, tokens theme.Tokens) lipgloss.Style
}

// StyleFunc applies a styling transformation using resolved theme tokens.
type StyleFunc func(lipgloss.Style, theme.Tokens) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, tokens theme.Tokens) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, tokens)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the style for this component under the given tokens.
func (b *BaseComponent) ComputeStyle(tokens theme.Tokens) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, tokens)
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style appliers to the existing strategy. A custom
// strategy is wrapped so its logic still runs first.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
		return
	}

	current := b.strategy
	wrapper := func(base lipgloss.Style, tokens theme.Tokens) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, tokens)
		}
		for _, applier := range appliers {
			base = applier(base, tokens)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// Spacing represents padding around a component, in CSS order:
// Top, Right, Bottom, Left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// HorizontalSpacing creates spacing on left and right sides only.
func HorizontalSpacing(size int) Spacing {
	return Spacing{Right: size, Left: size}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{
		MaxWidth:  -1, // -1 means unlimited
		MaxHeight: -1,
	}
}

// WithWidth creates constraints with a fixed width.
func WithWidth(width int) Constraints {
	return Constraints{
		MinWidth:  width,
		MaxWidth:  width,
		MaxHeight: -1,
	}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{
		MaxWidth:  maxWidth,
		MaxHeight: -1,
	}
}

// RenderContext carries the resolved tokens and layout limits into a render
// call. Nothing is read from global state, so two contexts with different
// themes can render side by side.
type RenderContext struct {
	Theme       theme.Tokens
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       theme.Default(),
		Constraints: Unconstrained(),
	}
}

// ScopeContext resolves a theme scope into a render context.
func ScopeContext(scope *theme.Scope) RenderContext {
	return DefaultContext().WithTheme(scope.Resolve())
}

// WithTheme returns a new context with the specified tokens.
func (r RenderContext) WithTheme(tokens theme.Tokens) RenderContext {
	r.Theme = tokens
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithParentWidth returns a new context with the given parent width.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// tokens returns the context theme, falling back to the default when the
// context was built as a zero value.
func (r RenderContext) tokens() theme.Tokens {
	return r.Theme.OrDefault()
}

// availableWidth is the width a stretching component should fill, or 0 when
// the context has no opinion.
func (r RenderContext) availableWidth() int {
	if r.Constraints.MaxWidth > 0 {
		return r.Constraints.MaxWidth
	}
	if r.ParentWidth > 0 {
		return r.ParentWidth
	}
	return 0
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Alignment specifies how content should be aligned.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// renderChild renders r with ctx when it accepts one.
func renderChild(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}
