package showcase

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui"
	"github.com/alexisbeaulieu97/motif/internal/ui/components"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

const (
	// headerRows is the banner plus one blank line.
	headerRows = 2
	gutter     = 2
	titleWidth = 14
	// defaultWidth is used before the terminal reports its size.
	defaultWidth = 72
	// panelChrome is the footer panel's border and padding width.
	panelChrome = 4
)

// placement is where one row landed on screen.
type placement struct {
	item int
	node paint.Node
	y    int
	h    int
}

func (m Model) screenWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m Model) context() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.tokens).
		WithParentWidth(max(m.screenWidth()-gutter-titleWidth, 1))
}

// itemContext is the render context of one row, resolved through the row's
// theme scope when it has one.
func (m Model) itemContext(it item) components.RenderContext {
	ctx := m.context()
	if it.scope == nil {
		return ctx
	}
	return components.ScopeContext(it.scope(m.tokens)).WithParentWidth(ctx.ParentWidth)
}

// cardScope sets the card on the variant surface and swaps its accent to
// tertiary, as two nested overrides.
func cardScope(tokens theme.Tokens) *theme.Scope {
	return theme.NewScope(tokens).
		Provide(theme.Override{Colors: map[theme.ColorRole]lipgloss.AdaptiveColor{
			theme.RoleSurface: tokens.Color(theme.RoleSurfaceVariant),
		}}).
		Provide(theme.Override{Colors: map[theme.ColorRole]lipgloss.AdaptiveColor{
			theme.RolePrimary: tokens.Color(theme.RoleTertiary),
		}})
}

// layout renders every row and assigns it a screen line.
func (m Model) layout() []placement {
	y := headerRows
	out := make([]placement, 0, len(m.items))
	for i, it := range m.items {
		node := it.w.Render(m.itemContext(it))
		if it.focusable() && i == m.focus {
			node = node.With(paint.Focused)
		}
		_, h := node.Size()
		h = max(h, 1)
		out = append(out, placement{item: i, node: node, y: y, h: h})
		y += h
	}
	return out
}

// hit maps a screen cell onto a row and the Event.Part under it.
func (m Model) hit(x, y int) (int, int, bool) {
	for _, p := range m.layout() {
		if y < p.y || y >= p.y+p.h {
			continue
		}
		part, ok := m.items[p.item].partAt(p.node, x-gutter-titleWidth)
		return p.item, part, ok
	}
	return 0, 0, false
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render(true)
}

// Snapshot renders a static frame at width with no focus or help, for
// non-interactive output.
func (m Model) Snapshot(width int) string {
	m.width = width
	m.focus = -1
	return m.render(false)
}

func (m Model) render(interactive bool) string {
	tokens := m.tokens
	width := m.screenWidth()

	banner := lipgloss.NewStyle().
		Background(m.backdrop.Value()).
		Foreground(tokens.Color(theme.RoleTextPrimary)).
		Bold(true).
		Width(width).
		Padding(0, 1).
		Render("motif · " + m.themeName)

	marker := lipgloss.NewStyle().Width(gutter).Foreground(tokens.Color(theme.RolePrimary))
	title := tokens.Type(theme.TypeLabelMedium).Width(titleWidth).MaxHeight(1)

	rows := make([]string, 0, len(m.items))
	for _, p := range m.layout() {
		it := m.items[p.item]
		mark := ""
		if interactive && p.item == m.focus {
			mark = "›"
		}
		label := lipgloss.JoinHorizontal(lipgloss.Top, marker.Render(mark), title.Render(it.title))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, p.node.View()))
	}

	sections := []string{banner, "", strings.Join(rows, "\n")}
	if interactive {
		sections = append(sections, "", m.footer(width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// footer frames the focused row's state and the key help in a panel.
func (m Model) footer(width int) string {
	keys := m.help
	if keys.Width > 0 {
		keys.Width = max(keys.Width-panelChrome, 1)
	}

	body := make([]ui.Renderable, 0, 2)
	if it, ok := m.focused(); ok {
		body = append(body, components.HStack(
			components.NewText(it.title).WithAppliers(
				components.Typography(theme.TypeLabelMedium),
				components.Foreground(theme.RolePrimary),
			),
			components.NewSpacer(2, 1),
			components.CaptionText(it.w.StateDescription()),
		).WithAlign(components.AlignCenter))
	}
	body = append(body, components.NewText(keys.View(m.keys)))

	panel := components.NewPanel(body...)
	panel.WithAppliers(components.PanelBaseStyle()...)
	return panel.ViewWithContext(m.context().WithParentWidth(width))
}
