package variant

import (
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

// Fill is the background treatment of a component body.
type Fill int

const (
	fillUnset Fill = iota
	// FillSolid paints the active or inactive colour as a flat background.
	FillSolid
	// FillGradient blends Active into Accent across the body.
	FillGradient
	// FillOutline leaves the body transparent and draws a border instead.
	FillOutline
	// FillGlass blends a translucent glass tint over the surface.
	FillGlass
	// FillNone draws content only.
	FillNone
)

var fillNames = [...]string{
	fillUnset:    "unset",
	FillSolid:    "solid",
	FillGradient: "gradient",
	FillOutline:  "outline",
	FillGlass:    "glass",
	FillNone:     "none",
}

func (f Fill) String() string { return nameOf(fillNames[:], f) }

// Border is the stroke treatment around a component body.
type Border int

const (
	BorderNone Border = iota
	BorderSolid
	BorderGradient
)

var borderNames = [...]string{
	BorderNone:     "none",
	BorderSolid:    "solid",
	BorderGradient: "gradient",
}

func (b Border) String() string { return nameOf(borderNames[:], b) }

// Corner selects the box-drawing shape.
type Corner int

const (
	CornerSquare Corner = iota
	CornerRounded
	CornerRound
)

// Pattern selects how linear elements (tracks, rules, bars) are drawn.
type Pattern int

const (
	PatternSolid Pattern = iota
	PatternDashed
	PatternDotted
	PatternStriped
	PatternSegmented
)

// Recipe describes how a variant is drawn. Colours are token roles; the
// renderer resolves them against the active theme.
type Recipe struct {
	Fill    Fill
	Border  Border
	Corner  Corner
	Pattern Pattern

	// Active colours the selected, checked or filled state.
	Active theme.ColorRole
	// Inactive colours the unselected or empty state.
	Inactive theme.ColorRole
	// Accent is the second gradient stop and the glow colour.
	Accent theme.ColorRole
	// Content colours text, icons and marks drawn over the fill.
	Content theme.ColorRole
	// Stroke colours the border.
	Stroke theme.ColorRole

	Glow      bool
	Elevation int
}

// Defined reports whether r came from a recipe table rather than being the
// zero value.
func (r Recipe) Defined() bool {
	return r.Fill != fillUnset
}

// Gradient reports whether the fill or border blends two colours.
func (r Recipe) Gradient() bool {
	return r.Fill == FillGradient || r.Border == BorderGradient
}
