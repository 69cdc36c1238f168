package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

// Panel groups related content into a section with an optional header and
// footer. Unlike Card it has no variant and never takes input; the showcase
// uses it to frame each component gallery.
type Panel struct {
	*Container
	header ui.Renderable
	body   []ui.Renderable
	footer ui.Renderable
}

// NewPanel creates a new panel on the surface colour.
func NewPanel(children ...ui.Renderable) *Panel {
	container := NewContainer(children...).
		WithPadding(HorizontalSpacing(1)).
		WithAppliers(Background(theme.RoleSurface, theme.RoleTextPrimary))

	return &Panel{
		Container: container,
		body:      children,
	}
}

// WithHeader sets the header, drawn above a divider.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	p.rebuild()
	return p
}

// WithFooter sets the footer, drawn below a divider.
func (p *Panel) WithFooter(footer ui.Renderable) *Panel {
	p.footer = footer
	p.rebuild()
	return p
}

// WithTitle is a convenience method to add a text header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(NewHeader(title).WithLevel(2))
}

// WithBody replaces the content between header and footer.
func (p *Panel) WithBody(children ...ui.Renderable) *Panel {
	p.body = children
	p.rebuild()
	return p
}

// WithBorder adds a border to the panel.
func (p *Panel) WithBorder(border lipgloss.Border) *Panel {
	p.Container.WithBorder(border)
	return p
}

func (p *Panel) rebuild() {
	children := make([]ui.Renderable, 0, len(p.body)+4)
	if p.header != nil {
		children = append(children, p.header, HorizontalDivider())
	}
	children = append(children, p.body...)
	if p.footer != nil {
		children = append(children, HorizontalDivider(), p.footer)
	}
	p.SetChildren(children)
}
