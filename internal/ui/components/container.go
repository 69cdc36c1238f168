package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

// Container is a box that holds children with a border, padding and styling.
// Panel builds on it.
type Container struct {
	BaseComponent
	children   []ui.Renderable
	layout     *Stack
	border     lipgloss.Border
	hasBorder  bool
	borderRole theme.ColorRole
	padding    Spacing
}

// NewContainer creates a new container with default settings.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		layout:        VStack(children...),
		borderRole:    theme.RoleOutline,
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	tokens := ctx.tokens()

	// Children see the width left inside the frame.
	inner := ctx
	if w := ctx.availableWidth(); w > 0 {
		w -= c.padding.Horizontal()
		if c.hasBorder {
			w -= 2
		}
		inner = ctx.WithParentWidth(max(w, 0)).WithConstraints(Unconstrained())
	}

	var content string
	if len(c.children) > 0 {
		content = c.layout.ViewWithContext(inner)
	}

	style := c.ComputeStyle(tokens)
	if c.hasBorder {
		style = style.Border(c.border).BorderForeground(tokens.Color(c.borderRole))
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}

	return style.Render(content)
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	c.hasBorder = true
	return c
}

// WithBorderRole sets the colour role used for the border.
func (c *Container) WithBorderRole(role theme.ColorRole) *Container {
	c.borderRole = role
	return c
}

// WithPadding sets the padding using a Spacing value object.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// WithDirection sets the layout direction.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.children
}

// SetChildren replaces all children in the container.
func (c *Container) SetChildren(children []ui.Renderable) *Container {
	c.children = children
	c.layout.SetChildren(children)
	return c
}
