package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	align       Alignment
	constraints Constraints
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		align:         AlignStart,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.tokens())
	if len(s.children) == 0 {
		return style.Render("")
	}

	effective := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.deriveChildConstraints(effective))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.join(views, strings.Repeat(" ", s.gap), lipgloss.JoinHorizontal)
	} else {
		// A blank view is already one row tall.
		content = s.join(views, strings.Repeat("\n", max(s.gap-1, 0)), lipgloss.JoinVertical)
	}

	if effective.MaxWidth > 0 {
		style = style.MaxWidth(effective.MaxWidth)
	}
	if effective.MaxHeight > 0 {
		style = style.MaxHeight(effective.MaxHeight)
	}
	return style.Render(content)
}

// mergeConstraints keeps the tighter of the stack's and the parent's limits.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent

	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > result.MinHeight {
		result.MinHeight = s.constraints.MinHeight
	}

	return result
}

// deriveChildConstraints splits the width between children of a horizontal
// stack; vertical stacks pass the width through.
func (s *Stack) deriveChildConstraints(parent Constraints) Constraints {
	child := parent

	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		totalGap := s.gap * (len(s.children) - 1)
		if available := parent.MaxWidth - totalGap; available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}

	return child
}

func (s *Stack) join(views []string, spacer string, joinFn func(lipgloss.Position, ...string) string) string {
	pos := s.align.ToLipglossPosition()
	if s.direction == DirectionHorizontal {
		// Cross axis of a row is vertical.
		pos = verticalPosition(s.align)
	}
	if s.gap == 0 {
		return joinFn(pos, views...)
	}

	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return joinFn(pos, result...)
}

func verticalPosition(a Alignment) lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross axis alignment.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// SetChildren replaces all children in the stack.
func (s *Stack) SetChildren(children []ui.Renderable) *Stack {
	s.children = children
	return s
}
