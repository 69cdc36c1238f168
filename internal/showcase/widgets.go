package showcase

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/components"
	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

// widget is the part of the component contract the showcase draws.
type widget interface {
	Render(components.RenderContext) paint.Node
	Advance(time.Time) bool
	StateDescription() string
}

// item is one row of the showcase.
type item struct {
	title string
	kind  kind.Kind
	w     widget
	// h receives pointer events. Display-only rows leave it nil.
	h components.Handler
	// partRole names the nodes a pointer column maps onto. Empty means the
	// whole row is one part.
	partRole string
	// parts is how many keyboard-selectable parts the row has.
	parts func() int
	// pointerPart turns a hit on span index at offset dx of a span width wide
	// into an Event.Part. Nil uses the index.
	pointerPart func(index, dx, width int) int
	// keyPart turns the keyboard part cursor into an Event.Part. Nil uses the
	// cursor.
	keyPart func(cursor int) int
	// scope nests the row under theme overrides of the current tokens. Nil
	// renders with the model's tokens.
	scope func(theme.Tokens) *theme.Scope
}

func (it item) focusable() bool {
	return it.h != nil
}

func (it item) partCount() int {
	if it.parts == nil {
		return 1
	}
	return max(it.parts(), 1)
}

// badged draws a badge on an icon button and forwards input to the button.
type badged struct {
	button *components.IconButton
	badge  *components.Badge
}

func (b *badged) Render(ctx components.RenderContext) paint.Node {
	return b.badge.RenderOver(ctx, b.button.Render(ctx)).WithRole("showcase.badged")
}

func (b *badged) Advance(now time.Time) bool {
	rest := b.button.Advance(now)
	return b.badge.Advance(now) && rest
}

func (b *badged) StateDescription() string {
	return b.button.StateDescription() + "; " + b.badge.StateDescription()
}

func (b *badged) Handle(e components.Event) {
	b.button.Handle(e)
}

// member is a component that can sit in a routed row.
type member interface {
	widget
	components.Handler
}

// row lays out members side by side and routes each gesture to the member
// it started on. Event.Part carries the member index in its high bits and
// the member's own part in the low bit.
type row struct {
	role    string
	members []member
	active  int
}

func rowPart(index, part int) int {
	return index<<1 | part&1
}

func (r *row) Render(ctx components.RenderContext) paint.Node {
	nodes := make([]paint.Node, 0, 2*len(r.members))
	for i, m := range r.members {
		if i > 0 {
			nodes = append(nodes, paint.Text(r.role+".gap", lipgloss.NewStyle(), " "))
		}
		nodes = append(nodes, m.Render(ctx))
	}
	return paint.Row(r.role, lipgloss.Center, nodes...)
}

func (r *row) Advance(now time.Time) bool {
	rest := true
	for _, m := range r.members {
		if !m.Advance(now) {
			rest = false
		}
	}
	return rest
}

func (r *row) StateDescription() string {
	parts := make([]string, 0, len(r.members))
	for _, m := range r.members {
		parts = append(parts, m.StateDescription())
	}
	return strings.Join(parts, "; ")
}

func (r *row) Handle(e components.Event) {
	if e.Kind == components.PointerDown {
		r.active = e.Part >> 1
	}
	if r.active < 0 || r.active >= len(r.members) {
		return
	}
	e.Part &= 1
	r.members[r.active].Handle(e)
}

// spans returns the column ranges of the top-most nodes with role, in
// paint order. Nested matches are not reported.
func spans(n paint.Node, role string) [][2]int {
	var out [][2]int
	var visit func(n paint.Node, x int)
	visit = func(n paint.Node, x int) {
		if n.IsEmpty() {
			return
		}
		if n.Role == role {
			w, _ := n.Size()
			out = append(out, [2]int{x, x + w})
			return
		}
		switch n.Kind {
		case paint.KindRow:
			for _, c := range n.Children {
				if c.IsEmpty() {
					continue
				}
				visit(c, x)
				w, _ := c.Size()
				x += w
			}
		case paint.KindColumn:
			for _, c := range n.Children {
				visit(c, x)
			}
		case paint.KindBox:
			if len(n.Children) > 0 {
				inset := n.Style.GetMarginLeft() + n.Style.GetBorderLeftSize() + n.Style.GetPaddingLeft()
				visit(n.Children[0], x+inset)
			}
		case paint.KindLayer:
			for _, c := range n.Children {
				visit(c, x+max(c.X, 0))
			}
		}
	}
	visit(n, 0)
	return out
}

// partAt maps column x of a rendered row onto an Event.Part, or reports
// false when x misses every part.
func (it item) partAt(n paint.Node, x int) (int, bool) {
	if it.partRole == "" {
		w, _ := n.Size()
		return 0, x >= 0 && x < w
	}
	for i, s := range spans(n, it.partRole) {
		if x < s[0] || x >= s[1] {
			continue
		}
		if it.pointerPart != nil {
			return it.pointerPart(i, x-s[0], s[1]-s[0]), true
		}
		return i, true
	}
	return 0, false
}
