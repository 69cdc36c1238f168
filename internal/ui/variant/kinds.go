package variant

import (
	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

// Toggle variants.
type Toggle int

const (
	TogglePill Toggle = iota
	ToggleSquircle
	ToggleNeon
	ToggleGlass
	ToggleOutlined
	ToggleMinimal
	toggleCount
)

var toggleNames = [...]string{
	"pill",     // TogglePill
	"squircle", // ToggleSquircle
	"neon",     // ToggleNeon
	"glass",    // ToggleGlass
	"outlined", // ToggleOutlined
	"minimal",  // ToggleMinimal
}

var toggleRecipes = [...]Recipe{
	// TogglePill
	{
		Fill: FillSolid, Corner: CornerRound,
		Active: theme.RoleToggleTrackOn, Inactive: theme.RoleToggleTrackOff,
		Accent: theme.RoleSecondary, Content: theme.RoleToggleThumbOn, Stroke: theme.RoleOutline,
	},
	// ToggleSquircle
	{
		Fill: FillSolid, Corner: CornerRounded,
		Active: theme.RoleToggleTrackOn, Inactive: theme.RoleToggleTrackOff,
		Accent: theme.RoleSecondary, Content: theme.RoleToggleThumbOn, Stroke: theme.RoleOutline,
	},
	// ToggleNeon
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRound,
		Active: theme.RolePrimary, Inactive: theme.RoleOutline,
		Accent: theme.RoleTertiary, Content: theme.RolePrimary, Stroke: theme.RolePrimary,
		Glow: true,
	},
	// ToggleGlass
	{
		Fill: FillGlass, Border: BorderSolid, Corner: CornerRound,
		Active: theme.RoleToggleTrackOn, Inactive: theme.RoleGlass,
		Accent: theme.RoleSecondary, Content: theme.RoleToggleThumbOn, Stroke: theme.RoleGlass,
	},
	// ToggleOutlined
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRound,
		Active: theme.RoleToggleTrackOn, Inactive: theme.RoleOutline,
		Accent: theme.RoleSecondary, Content: theme.RoleToggleTrackOn, Stroke: theme.RoleOutline,
	},
	// ToggleMinimal
	{
		Fill: FillNone, Corner: CornerSquare,
		Active: theme.RoleToggleTrackOn, Inactive: theme.RoleToggleTrackOff,
		Accent: theme.RoleSecondary, Content: theme.RoleToggleTrackOn, Stroke: theme.RoleOutline,
	},
}

var (
	_ [len(toggleRecipes) - int(toggleCount)]struct{}
	_ [int(toggleCount) - len(toggleRecipes)]struct{}
	_ [len(toggleNames) - int(toggleCount)]struct{}
)

func (v Toggle) Kind() kind.Kind { return kind.Toggle }
func (v Toggle) String() string { return nameOf(toggleNames[:], v) }
func (v Toggle) recipe() Recipe { return lookup(toggleRecipes[:], v) }

// ToggleGroup variants.
type ToggleGroup int

const (
	ToggleGroupSegmented ToggleGroup = iota
	ToggleGroupPills
	ToggleGroupUnderline
	toggleGroupCount
)

var toggleGroupNames = [...]string{
	"segmented", // ToggleGroupSegmented
	"pills",     // ToggleGroupPills
	"underline", // ToggleGroupUnderline
}

var toggleGroupRecipes = [...]Recipe{
	// ToggleGroupSegmented
	{
		Fill: FillSolid, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RoleOutline,
	},
	// ToggleGroupPills
	{
		Fill: FillSolid, Corner: CornerRound,
		Active: theme.RolePrimary, Inactive: theme.RoleSurface,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RoleOutline,
	},
	// ToggleGroupUnderline
	{
		Fill: FillNone, Corner: CornerSquare,
		Active: theme.RolePrimary, Inactive: theme.RoleTextSecondary,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleOutline,
	},
}

var (
	_ [len(toggleGroupRecipes) - int(toggleGroupCount)]struct{}
	_ [int(toggleGroupCount) - len(toggleGroupRecipes)]struct{}
	_ [len(toggleGroupNames) - int(toggleGroupCount)]struct{}
)

func (v ToggleGroup) Kind() kind.Kind { return kind.ToggleGroup }
func (v ToggleGroup) String() string { return nameOf(toggleGroupNames[:], v) }
func (v ToggleGroup) recipe() Recipe { return lookup(toggleGroupRecipes[:], v) }

// Button variants.
type Button int

const (
	ButtonFilled Button = iota
	ButtonGradient
	ButtonElevated
	ButtonGhost
	ButtonTonal
	ButtonNeon
	ButtonGlass
	ButtonOutlined
	buttonCount
)

var buttonNames = [...]string{
	"filled",   // ButtonFilled
	"gradient", // ButtonGradient
	"elevated", // ButtonElevated
	"ghost",    // ButtonGhost
	"tonal",    // ButtonTonal
	"neon",     // ButtonNeon
	"glass",    // ButtonGlass
	"outlined", // ButtonOutlined
}

var buttonRecipes = [...]Recipe{
	// ButtonFilled
	{
		Fill: FillSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RolePrimary,
	},
	// ButtonGradient
	{
		Fill: FillGradient, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleDisabled,
		Accent: theme.RoleTertiary, Content: theme.RoleOnPrimary, Stroke: theme.RolePrimary,
	},
	// ButtonElevated
	{
		Fill: FillSolid, Corner: CornerRounded,
		Active: theme.RoleSurface, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleOutline,
		Elevation: 1,
	},
	// ButtonGhost
	{
		Fill: FillNone, Corner: CornerRounded,
		Active: theme.RoleSurfaceVariant, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleOutline,
	},
	// ButtonTonal
	{
		Fill: FillSolid, Corner: CornerRounded,
		Active: theme.RoleSurfaceVariant, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleSurfaceVariant,
	},
	// ButtonNeon
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleDisabled,
		Accent: theme.RoleTertiary, Content: theme.RolePrimary, Stroke: theme.RolePrimary,
		Glow: true,
	},
	// ButtonGlass
	{
		Fill: FillGlass, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RoleGlass, Inactive: theme.RoleDisabled,
		Accent: theme.RolePrimary, Content: theme.RoleTextPrimary, Stroke: theme.RoleGlass,
	},
	// ButtonOutlined
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleOutline,
	},
}

var (
	_ [len(buttonRecipes) - int(buttonCount)]struct{}
	_ [int(buttonCount) - len(buttonRecipes)]struct{}
	_ [len(buttonNames) - int(buttonCount)]struct{}
)

func (v Button) Kind() kind.Kind { return kind.Button }
func (v Button) String() string { return nameOf(buttonNames[:], v) }
func (v Button) recipe() Recipe { return lookup(buttonRecipes[:], v) }

// IconButton variants.
type IconButton int

const (
	IconButtonFilled IconButton = iota
	IconButtonTonal
	IconButtonOutlined
	IconButtonGhost
	iconButtonCount
)

var iconButtonNames = [...]string{
	"filled",   // IconButtonFilled
	"tonal",    // IconButtonTonal
	"outlined", // IconButtonOutlined
	"ghost",    // IconButtonGhost
}

var iconButtonRecipes = [...]Recipe{
	// IconButtonFilled
	{
		Fill: FillSolid, Corner: CornerRound,
		Active: theme.RolePrimary, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RolePrimary,
	},
	// IconButtonTonal
	{
		Fill: FillSolid, Corner: CornerRound,
		Active: theme.RoleSurfaceVariant, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleSurfaceVariant,
	},
	// IconButtonOutlined
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRound,
		Active: theme.RolePrimary, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleOutline,
	},
	// IconButtonGhost
	{
		Fill: FillNone, Corner: CornerRound,
		Active: theme.RoleSurfaceVariant, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RoleTextPrimary, Stroke: theme.RoleOutline,
	},
}

var (
	_ [len(iconButtonRecipes) - int(iconButtonCount)]struct{}
	_ [int(iconButtonCount) - len(iconButtonRecipes)]struct{}
	_ [len(iconButtonNames) - int(iconButtonCount)]struct{}
)

func (v IconButton) Kind() kind.Kind { return kind.IconButton }
func (v IconButton) String() string { return nameOf(iconButtonNames[:], v) }
func (v IconButton) recipe() Recipe { return lookup(iconButtonRecipes[:], v) }

// Chip variants.
type Chip int

const (
	ChipFilled Chip = iota
	ChipOutlined
	ChipElevated
	ChipGlass
	chipCount
)

var chipNames = [...]string{
	"filled",   // ChipFilled
	"outlined", // ChipOutlined
	"elevated", // ChipElevated
	"glass",    // ChipGlass
}

var chipRecipes = [...]Recipe{
	// ChipFilled
	{
		Fill: FillSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RoleOutline,
	},
	// ChipOutlined
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleSurface,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleOutline,
	},
	// ChipElevated
	{
		Fill: FillSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleSurface,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RoleOutline,
		Elevation: 1,
	},
	// ChipGlass
	{
		Fill: FillGlass, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleGlass,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RoleGlass,
	},
}

var (
	_ [len(chipRecipes) - int(chipCount)]struct{}
	_ [int(chipCount) - len(chipRecipes)]struct{}
	_ [len(chipNames) - int(chipCount)]struct{}
)

func (v Chip) Kind() kind.Kind { return kind.Chip }
func (v Chip) String() string { return nameOf(chipNames[:], v) }
func (v Chip) recipe() Recipe { return lookup(chipRecipes[:], v) }

// Checkbox variants.
type Checkbox int

const (
	CheckboxSquare Checkbox = iota
	CheckboxRounded
	CheckboxCircle
	CheckboxNeon
	checkboxCount
)

var checkboxNames = [...]string{
	"square",  // CheckboxSquare
	"rounded", // CheckboxRounded
	"circle",  // CheckboxCircle
	"neon",    // CheckboxNeon
}

var checkboxRecipes = [...]Recipe{
	// CheckboxSquare
	{
		Fill: FillSolid, Border: BorderSolid, Corner: CornerSquare,
		Active: theme.RolePrimary, Inactive: theme.RoleOutline,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RoleOutline,
	},
	// CheckboxRounded
	{
		Fill: FillSolid, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleOutline,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RoleOutline,
	},
	// CheckboxCircle
	{
		Fill: FillSolid, Border: BorderSolid, Corner: CornerRound,
		Active: theme.RolePrimary, Inactive: theme.RoleOutline,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RoleOutline,
	},
	// CheckboxNeon
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RoleTertiary, Inactive: theme.RoleOutline,
		Accent: theme.RolePrimary, Content: theme.RoleTertiary, Stroke: theme.RoleTertiary,
		Glow: true,
	},
}

var (
	_ [len(checkboxRecipes) - int(checkboxCount)]struct{}
	_ [int(checkboxCount) - len(checkboxRecipes)]struct{}
	_ [len(checkboxNames) - int(checkboxCount)]struct{}
)

func (v Checkbox) Kind() kind.Kind { return kind.Checkbox }
func (v Checkbox) String() string { return nameOf(checkboxNames[:], v) }
func (v Checkbox) recipe() Recipe { return lookup(checkboxRecipes[:], v) }

// Radio variants.
type Radio int

const (
	RadioClassic Radio = iota
	RadioFilled
	RadioNeon
	radioCount
)

var radioNames = [...]string{
	"classic", // RadioClassic
	"filled",  // RadioFilled
	"neon",    // RadioNeon
}

var radioRecipes = [...]Recipe{
	// RadioClassic
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRound,
		Active: theme.RolePrimary, Inactive: theme.RoleOutline,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleOutline,
	},
	// RadioFilled
	{
		Fill: FillSolid, Border: BorderSolid, Corner: CornerRound,
		Active: theme.RolePrimary, Inactive: theme.RoleOutline,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RoleOutline,
	},
	// RadioNeon
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRound,
		Active: theme.RoleTertiary, Inactive: theme.RoleOutline,
		Accent: theme.RolePrimary, Content: theme.RoleTertiary, Stroke: theme.RoleTertiary,
		Glow: true,
	},
}

var (
	_ [len(radioRecipes) - int(radioCount)]struct{}
	_ [int(radioCount) - len(radioRecipes)]struct{}
	_ [len(radioNames) - int(radioCount)]struct{}
)

func (v Radio) Kind() kind.Kind { return kind.Radio }
func (v Radio) String() string { return nameOf(radioNames[:], v) }
func (v Radio) recipe() Recipe { return lookup(radioRecipes[:], v) }

// Slider variants.
type Slider int

const (
	SliderClassic Slider = iota
	SliderGradient
	SliderMinimal
	SliderNeon
	sliderCount
)

var sliderNames = [...]string{
	"classic",  // SliderClassic
	"gradient", // SliderGradient
	"minimal",  // SliderMinimal
	"neon",     // SliderNeon
}

var sliderRecipes = [...]Recipe{
	// SliderClassic
	{
		Fill: FillSolid, Corner: CornerRound,
		Active: theme.RolePrimary, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleOutline,
	},
	// SliderGradient
	{
		Fill: FillGradient, Corner: CornerRound,
		Active: theme.RolePrimary, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleTertiary, Content: theme.RoleTertiary, Stroke: theme.RoleOutline,
	},
	// SliderMinimal
	{
		Fill: FillSolid, Corner: CornerSquare, Pattern: PatternDotted,
		Active: theme.RoleTextSecondary, Inactive: theme.RoleOutline,
		Accent: theme.RoleSecondary, Content: theme.RoleTextPrimary, Stroke: theme.RoleOutline,
	},
	// SliderNeon
	{
		Fill: FillSolid, Corner: CornerRound,
		Active: theme.RoleTertiary, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RolePrimary, Content: theme.RoleTertiary, Stroke: theme.RoleTertiary,
		Glow: true,
	},
}

var (
	_ [len(sliderRecipes) - int(sliderCount)]struct{}
	_ [int(sliderCount) - len(sliderRecipes)]struct{}
	_ [len(sliderNames) - int(sliderCount)]struct{}
)

func (v Slider) Kind() kind.Kind { return kind.Slider }
func (v Slider) String() string { return nameOf(sliderNames[:], v) }
func (v Slider) recipe() Recipe { return lookup(sliderRecipes[:], v) }

// Rating variants.
type Rating int

const (
	RatingStars Rating = iota
	RatingHearts
	RatingDots
	ratingCount
)

var ratingNames = [...]string{
	"stars",  // RatingStars
	"hearts", // RatingHearts
	"dots",   // RatingDots
}

var ratingRecipes = [...]Recipe{
	// RatingStars
	{
		Fill: FillSolid,
		Active: theme.RoleWarning, Inactive: theme.RoleOutline,
		Accent: theme.RoleWarning, Content: theme.RoleWarning, Stroke: theme.RoleOutline,
	},
	// RatingHearts
	{
		Fill: FillSolid,
		Active: theme.RoleError, Inactive: theme.RoleOutline,
		Accent: theme.RoleError, Content: theme.RoleError, Stroke: theme.RoleOutline,
	},
	// RatingDots
	{
		Fill: FillSolid,
		Active: theme.RolePrimary, Inactive: theme.RoleOutline,
		Accent: theme.RolePrimary, Content: theme.RolePrimary, Stroke: theme.RoleOutline,
	},
}

// ratingGlyphs holds full, half and empty marks.
var ratingGlyphs = [...][3]string{
	{"★", "⯪", "☆"}, // RatingStars
	{"♥", "❥", "♡"}, // RatingHearts
	{"●", "◐", "○"}, // RatingDots
}

var (
	_ [len(ratingRecipes) - int(ratingCount)]struct{}
	_ [int(ratingCount) - len(ratingRecipes)]struct{}
	_ [len(ratingNames) - int(ratingCount)]struct{}
	_ [len(ratingGlyphs) - int(ratingCount)]struct{}
)

func (v Rating) Kind() kind.Kind { return kind.Rating }
func (v Rating) String() string { return nameOf(ratingNames[:], v) }
func (v Rating) recipe() Recipe { return lookup(ratingRecipes[:], v) }

// Glyphs returns the full, half and empty marks for the variant.
func (v Rating) Glyphs() (full, half, empty string) {
	g := lookup(ratingGlyphs[:], v)
	return g[0], g[1], g[2]
}

// Badge variants.
type Badge int

const (
	BadgeFilled Badge = iota
	BadgeOutlined
	BadgeDot
	BadgeGradient
	badgeCount
)

var badgeNames = [...]string{
	"filled",   // BadgeFilled
	"outlined", // BadgeOutlined
	"dot",      // BadgeDot
	"gradient", // BadgeGradient
}

var badgeRecipes = [...]Recipe{
	// BadgeFilled
	{
		Fill: FillSolid, Corner: CornerRound,
		Active: theme.RoleError, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleWarning, Content: theme.RoleOnPrimary, Stroke: theme.RoleError,
	},
	// BadgeOutlined
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRound,
		Active: theme.RoleError, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleWarning, Content: theme.RoleError, Stroke: theme.RoleError,
	},
	// BadgeDot
	{
		Fill: FillSolid, Corner: CornerRound,
		Active: theme.RoleError, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleWarning, Content: theme.RoleError, Stroke: theme.RoleError,
	},
	// BadgeGradient
	{
		Fill: FillGradient, Corner: CornerRound,
		Active: theme.RoleError, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleWarning, Content: theme.RoleOnPrimary, Stroke: theme.RoleError,
	},
}

var (
	_ [len(badgeRecipes) - int(badgeCount)]struct{}
	_ [int(badgeCount) - len(badgeRecipes)]struct{}
	_ [len(badgeNames) - int(badgeCount)]struct{}
)

func (v Badge) Kind() kind.Kind { return kind.Badge }
func (v Badge) String() string { return nameOf(badgeNames[:], v) }
func (v Badge) recipe() Recipe { return lookup(badgeRecipes[:], v) }

// Card variants.
type Card int

const (
	CardElevated Card = iota
	CardOutlined
	CardFilled
	CardGlass
	CardGradient
	cardCount
)

var cardNames = [...]string{
	"elevated", // CardElevated
	"outlined", // CardOutlined
	"filled",   // CardFilled
	"glass",    // CardGlass
	"gradient", // CardGradient
}

var cardRecipes = [...]Recipe{
	// CardElevated
	{
		Fill: FillSolid, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RoleSurface, Inactive: theme.RoleSurface,
		Accent: theme.RolePrimary, Content: theme.RoleTextPrimary, Stroke: theme.RoleSurfaceVariant,
		Elevation: 1,
	},
	// CardOutlined
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RoleSurface, Inactive: theme.RoleSurface,
		Accent: theme.RolePrimary, Content: theme.RoleTextPrimary, Stroke: theme.RoleOutline,
	},
	// CardFilled
	{
		Fill: FillSolid, Corner: CornerRounded,
		Active: theme.RoleSurfaceVariant, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RolePrimary, Content: theme.RoleTextPrimary, Stroke: theme.RoleSurfaceVariant,
	},
	// CardGlass
	{
		Fill: FillGlass, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RoleGlass, Inactive: theme.RoleGlass,
		Accent: theme.RolePrimary, Content: theme.RoleTextPrimary, Stroke: theme.RoleGlass,
	},
	// CardGradient
	{
		Fill: FillGradient, Border: BorderGradient, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RolePrimary,
		Accent: theme.RoleTertiary, Content: theme.RoleOnPrimary, Stroke: theme.RolePrimary,
	},
}

var (
	_ [len(cardRecipes) - int(cardCount)]struct{}
	_ [int(cardCount) - len(cardRecipes)]struct{}
	_ [len(cardNames) - int(cardCount)]struct{}
)

func (v Card) Kind() kind.Kind { return kind.Card }
func (v Card) String() string { return nameOf(cardNames[:], v) }
func (v Card) recipe() Recipe { return lookup(cardRecipes[:], v) }

// Progress variants.
type Progress int

const (
	ProgressLinear Progress = iota
	ProgressGradient
	ProgressStriped
	ProgressSegmented
	progressCount
)

var progressNames = [...]string{
	"linear",    // ProgressLinear
	"gradient",  // ProgressGradient
	"striped",   // ProgressStriped
	"segmented", // ProgressSegmented
}

var progressRecipes = [...]Recipe{
	// ProgressLinear
	{
		Fill: FillSolid,
		Active: theme.RolePrimary, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RolePrimary, Content: theme.RoleTextSecondary, Stroke: theme.RoleOutline,
	},
	// ProgressGradient
	{
		Fill: FillGradient,
		Active: theme.RolePrimary, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleTertiary, Content: theme.RoleTextSecondary, Stroke: theme.RoleOutline,
	},
	// ProgressStriped
	{
		Fill: FillSolid, Pattern: PatternStriped,
		Active: theme.RolePrimary, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleSecondary, Content: theme.RoleTextSecondary, Stroke: theme.RoleOutline,
	},
	// ProgressSegmented
	{
		Fill: FillSolid, Pattern: PatternSegmented,
		Active: theme.RolePrimary, Inactive: theme.RoleSurfaceVariant,
		Accent: theme.RoleSecondary, Content: theme.RoleTextSecondary, Stroke: theme.RoleOutline,
	},
}

var (
	_ [len(progressRecipes) - int(progressCount)]struct{}
	_ [int(progressCount) - len(progressRecipes)]struct{}
	_ [len(progressNames) - int(progressCount)]struct{}
)

func (v Progress) Kind() kind.Kind { return kind.Progress }
func (v Progress) String() string { return nameOf(progressNames[:], v) }
func (v Progress) recipe() Recipe { return lookup(progressRecipes[:], v) }

// Divider variants.
type Divider int

const (
	DividerSolid Divider = iota
	DividerDashed
	DividerDotted
	DividerGradient
	dividerCount
)

var dividerNames = [...]string{
	"solid",    // DividerSolid
	"dashed",   // DividerDashed
	"dotted",   // DividerDotted
	"gradient", // DividerGradient
}

var dividerRecipes = [...]Recipe{
	// DividerSolid
	{
		Fill: FillSolid,
		Active: theme.RoleOutline, Inactive: theme.RoleOutline,
		Accent: theme.RoleOutline, Content: theme.RoleTextSecondary, Stroke: theme.RoleOutline,
	},
	// DividerDashed
	{
		Fill: FillSolid, Pattern: PatternDashed,
		Active: theme.RoleOutline, Inactive: theme.RoleOutline,
		Accent: theme.RoleOutline, Content: theme.RoleTextSecondary, Stroke: theme.RoleOutline,
	},
	// DividerDotted
	{
		Fill: FillSolid, Pattern: PatternDotted,
		Active: theme.RoleOutline, Inactive: theme.RoleOutline,
		Accent: theme.RoleOutline, Content: theme.RoleTextSecondary, Stroke: theme.RoleOutline,
	},
	// DividerGradient
	{
		Fill: FillGradient,
		Active: theme.RolePrimary, Inactive: theme.RoleOutline,
		Accent: theme.RoleTertiary, Content: theme.RoleTextSecondary, Stroke: theme.RoleOutline,
	},
}

var (
	_ [len(dividerRecipes) - int(dividerCount)]struct{}
	_ [int(dividerCount) - len(dividerRecipes)]struct{}
	_ [len(dividerNames) - int(dividerCount)]struct{}
)

func (v Divider) Kind() kind.Kind { return kind.Divider }
func (v Divider) String() string { return nameOf(dividerNames[:], v) }
func (v Divider) recipe() Recipe { return lookup(dividerRecipes[:], v) }

// Tag variants.
type Tag int

const (
	TagFilled Tag = iota
	TagOutlined
	TagSoft
	TagGradient
	tagCount
)

var tagNames = [...]string{
	"filled",   // TagFilled
	"outlined", // TagOutlined
	"soft",     // TagSoft
	"gradient", // TagGradient
}

var tagRecipes = [...]Recipe{
	// TagFilled
	{
		Fill: FillSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RolePrimary,
	},
	// TagOutlined
	{
		Fill: FillOutline, Border: BorderSolid, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RolePrimary,
	},
	// TagSoft
	{
		Fill: FillSolid, Corner: CornerRounded,
		Active: theme.RoleSurfaceVariant, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RolePrimary, Stroke: theme.RoleSurfaceVariant,
	},
	// TagGradient
	{
		Fill: FillGradient, Corner: CornerRounded,
		Active: theme.RolePrimary, Inactive: theme.RoleDisabled,
		Accent: theme.RoleSecondary, Content: theme.RoleOnPrimary, Stroke: theme.RolePrimary,
	},
}

var (
	_ [len(tagRecipes) - int(tagCount)]struct{}
	_ [int(tagCount) - len(tagRecipes)]struct{}
	_ [len(tagNames) - int(tagCount)]struct{}
)

func (v Tag) Kind() kind.Kind { return kind.Tag }
func (v Tag) String() string { return nameOf(tagNames[:], v) }
func (v Tag) recipe() Recipe { return lookup(tagRecipes[:], v) }
