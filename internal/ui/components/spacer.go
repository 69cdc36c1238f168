package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacer renders blank cells. A flexible spacer takes the full width the
// render context offers.
type Spacer struct {
	width  int
	height int
	flex   bool
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: max(width, 0), height: max(height, 0)}
}

// HorizontalSpacer creates a one-row spacer.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates a zero-width spacer.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// FlexSpacer creates a one-row spacer that fills the available width.
func FlexSpacer() *Spacer {
	return &Spacer{height: 1, flex: true}
}

// View renders the spacer with no context.
func (s *Spacer) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the spacer, stretching a flexible one.
func (s *Spacer) ViewWithContext(ctx RenderContext) string {
	w := s.width
	if s.flex {
		w = max(w, ctx.availableWidth())
	}
	if w == 0 && s.height == 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(w).Height(max(s.height, 1)).Render("")
}

// Width returns the fixed spacer width.
func (s *Spacer) Width() int {
	return s.width
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}
