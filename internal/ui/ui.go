// Package ui holds the interfaces shared by the component and showcase
// packages.
package ui

// Renderable is anything that can draw itself to a terminal string.
type Renderable interface {
	View() string
}
