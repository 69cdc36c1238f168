package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// Fluent modifier functions. Each resolves its colours against the tokens
// handed to the render call.

// Background applies a colour role as background and onRole as foreground.
//
// Example:
//
//	panel := NewPanel().WithAppliers(Background(theme.RoleSurface, theme.RoleTextPrimary))
func Background(role, onRole theme.ColorRole) StyleFunc {
	return func(base lipgloss.Style, tokens theme.Tokens) lipgloss.Style {
		return base.Background(tokens.Color(role)).Foreground(tokens.Color(onRole))
	}
}

// Foreground applies a colour role to text without touching the background.
//
// Example:
//
//	text := NewText("Saved").WithAppliers(Foreground(theme.RoleSuccess))
func Foreground(role theme.ColorRole) StyleFunc {
	return func(base lipgloss.Style, tokens theme.Tokens) lipgloss.Style {
		return base.Foreground(tokens.Color(role))
	}
}

// Border applies the box-drawing shape for corner in the given colour role.
func Border(corner variant.Corner, role theme.ColorRole) StyleFunc {
	return func(base lipgloss.Style, tokens theme.Tokens) lipgloss.Style {
		return base.Border(BorderFor(corner)).BorderForeground(tokens.Color(role))
	}
}

// Padding applies uniform padding in cells.
func Padding(cells int) StyleFunc {
	return func(base lipgloss.Style, _ theme.Tokens) lipgloss.Style {
		return base.Padding(cells)
	}
}

// PaddingX applies horizontal padding in cells.
func PaddingX(cells int) StyleFunc {
	return func(base lipgloss.Style, _ theme.Tokens) lipgloss.Style {
		return base.PaddingLeft(cells).PaddingRight(cells)
	}
}

// Typography applies a typography role.
func Typography(role theme.TypeRole) StyleFunc {
	return func(base lipgloss.Style, tokens theme.Tokens) lipgloss.Style {
		return base.Inherit(tokens.Type(role))
	}
}

// Predefined style bundles.

// PanelBaseStyle is the subtle surface used to group showcase sections.
func PanelBaseStyle() []StyleFunc {
	return []StyleFunc{
		Border(variant.CornerRounded, theme.RoleOutline),
		PaddingX(1),
	}
}

// BorderFor returns the box-drawing border for a recipe corner.
func BorderFor(corner variant.Corner) lipgloss.Border {
	switch corner {
	case variant.CornerRounded, variant.CornerRound:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
