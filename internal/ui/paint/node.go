// Package paint is the visual tree components render into. A Node is a plain
// value; View turns it into a terminal string, and Find/Walk let hosts and
// tests inspect roles and states without parsing escape codes.
package paint

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Kind is the primitive a node draws.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindRow
	KindColumn
	KindBox
	KindLayer
)

// State flags mirror the interaction state a node was rendered in.
type State uint16

const (
	Selected State = 1 << iota
	Checked
	Pressed
	Disabled
	Focused
	Dragging
	Loading
	Half
)

// Has reports whether every flag in f is set.
func (s State) Has(f State) bool { return s&f == f }

// Node is one element of a rendered frame.
type Node struct {
	Kind    Kind
	Role    string
	State   State
	Content string
	Style   lipgloss.Style
	Align   lipgloss.Position

	// Placement inside a Layer.
	X, Y, Z int
	// Layer canvas size. Zero means fit the children.
	Width, Height int

	Children []Node
}

// Empty renders nothing.
func Empty() Node { return Node{Kind: KindEmpty} }

// Text is styled content.
func Text(role string, style lipgloss.Style, content string) Node {
	return Node{Kind: KindText, Role: role, Style: style, Content: content}
}

// Row joins children horizontally, aligned on the vertical axis by align.
func Row(role string, align lipgloss.Position, children ...Node) Node {
	return Node{Kind: KindRow, Role: role, Align: align, Children: children}
}

// Column stacks children vertically, aligned on the horizontal axis by align.
func Column(role string, align lipgloss.Position, children ...Node) Node {
	return Node{Kind: KindColumn, Role: role, Align: align, Children: children}
}

// Box wraps child in a style (border, padding, background).
func Box(role string, style lipgloss.Style, child Node) Node {
	return Node{Kind: KindBox, Role: role, Style: style, Children: []Node{child}}
}

// Layer paints children at their X/Y offsets in ascending Z order.
func Layer(role string, children ...Node) Node {
	return Node{Kind: KindLayer, Role: role, Children: children}
}

// At positions n inside a Layer.
func (n Node) At(x, y, z int) Node {
	n.X, n.Y, n.Z = x, y, z
	return n
}

// Sized fixes a Layer's canvas size.
func (n Node) Sized(width, height int) Node {
	n.Width, n.Height = width, height
	return n
}

// With adds state flags.
func (n Node) With(s State) Node {
	n.State |= s
	return n
}

// WithRole replaces the role name.
func (n Node) WithRole(role string) Node {
	n.Role = role
	return n
}

// IsEmpty reports whether the node draws nothing.
func (n Node) IsEmpty() bool {
	switch n.Kind {
	case KindEmpty:
		return true
	case KindRow, KindColumn, KindLayer:
		for _, c := range n.Children {
			if !c.IsEmpty() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// View renders the node.
func (n Node) View() string {
	switch n.Kind {
	case KindText:
		return n.Style.Render(n.Content)
	case KindRow:
		return lipgloss.JoinHorizontal(n.Align, n.childViews()...)
	case KindColumn:
		return lipgloss.JoinVertical(n.Align, n.childViews()...)
	case KindBox:
		if len(n.Children) == 0 {
			return n.Style.Render("")
		}
		return n.Style.Render(n.Children[0].View())
	case KindLayer:
		return n.paintLayer()
	default:
		return ""
	}
}

// Plain is View with escape sequences stripped.
func (n Node) Plain() string {
	return ansi.Strip(n.View())
}

// Size returns the rendered width and height in cells.
func (n Node) Size() (int, int) {
	if n.IsEmpty() {
		return 0, 0
	}
	view := n.View()
	return lipgloss.Width(view), lipgloss.Height(view)
}

func (n Node) childViews() []string {
	views := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.IsEmpty() {
			continue
		}
		views = append(views, c.View())
	}
	return views
}

func (n Node) paintLayer() string {
	type placed struct {
		node Node
		view string
	}

	items := make([]placed, 0, len(n.Children))
	width, height := n.Width, n.Height
	fit := width <= 0 || height <= 0
	for _, c := range n.Children {
		if c.IsEmpty() {
			continue
		}
		view := c.View()
		items = append(items, placed{node: c, view: view})
		if fit {
			width = max(width, max(c.X, 0)+lipgloss.Width(view))
			height = max(height, max(c.Y, 0)+lipgloss.Height(view))
		}
	}
	if len(items) == 0 {
		return ""
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].node.Z < items[j].node.Z
	})

	canvas := NewCanvas(width, height)
	for _, it := range items {
		canvas.DrawStringAt(it.node.X, it.node.Y, it.view)
	}
	return trimRight(canvas.Render())
}

// trimRight drops the padding the canvas adds past the last painted cell of
// each line.
func trimRight(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
