package theme

import "fmt"

// ColorRole names a semantic colour token.
type ColorRole int

const (
	RolePrimary ColorRole = iota
	RoleOnPrimary
	RoleSecondary
	RoleOnSecondary
	RoleTertiary
	RoleSurface
	RoleSurfaceVariant
	RoleBackground
	RoleTextPrimary
	RoleTextSecondary
	RoleOutline
	RoleSuccess
	RoleWarning
	RoleError
	RoleInfo
	RoleToggleTrackOn
	RoleToggleTrackOff
	RoleToggleThumbOn
	RoleToggleThumbOff
	RoleGlass
	RoleShadow
	RoleDisabled
)

const colorRoleCount = int(RoleDisabled) + 1

var colorRoleNames = [colorRoleCount]string{
	RolePrimary:        "primary",
	RoleOnPrimary:      "on-primary",
	RoleSecondary:      "secondary",
	RoleOnSecondary:    "on-secondary",
	RoleTertiary:       "tertiary",
	RoleSurface:        "surface",
	RoleSurfaceVariant: "surface-variant",
	RoleBackground:     "background",
	RoleTextPrimary:    "text-primary",
	RoleTextSecondary:  "text-secondary",
	RoleOutline:        "outline",
	RoleSuccess:        "success",
	RoleWarning:        "warning",
	RoleError:          "error",
	RoleInfo:           "info",
	RoleToggleTrackOn:  "toggle-track-on",
	RoleToggleTrackOff: "toggle-track-off",
	RoleToggleThumbOn:  "toggle-thumb-on",
	RoleToggleThumbOff: "toggle-thumb-off",
	RoleGlass:          "glass",
	RoleShadow:         "shadow",
	RoleDisabled:       "disabled",
}

// ColorRoles returns every colour role in declaration order.
func ColorRoles() []ColorRole {
	out := make([]ColorRole, colorRoleCount)
	for i := range out {
		out[i] = ColorRole(i)
	}
	return out
}

func (r ColorRole) valid() bool {
	return r >= 0 && int(r) < colorRoleCount
}

func (r ColorRole) String() string {
	if !r.valid() {
		return fmt.Sprintf("color-role(%d)", int(r))
	}
	return colorRoleNames[r]
}

// ParseColorRole resolves a kebab-case colour role name.
func ParseColorRole(name string) (ColorRole, bool) {
	for i, n := range colorRoleNames {
		if n == name {
			return ColorRole(i), true
		}
	}
	return 0, false
}

// TypeRole names a typography token.
type TypeRole int

const (
	TypeLabelSmall TypeRole = iota
	TypeLabelMedium
	TypeLabelLarge
	TypeBodySmall
	TypeBodyMedium
	TypeBodyLarge
	TypeTitleSmall
	TypeTitleMedium
	TypeTitleLarge
)

const typeRoleCount = int(TypeTitleLarge) + 1

var typeRoleNames = [typeRoleCount]string{
	TypeLabelSmall:  "label-small",
	TypeLabelMedium: "label-medium",
	TypeLabelLarge:  "label-large",
	TypeBodySmall:   "body-small",
	TypeBodyMedium:  "body-medium",
	TypeBodyLarge:   "body-large",
	TypeTitleSmall:  "title-small",
	TypeTitleMedium: "title-medium",
	TypeTitleLarge:  "title-large",
}

// TypeRoles returns every typography role in declaration order.
func TypeRoles() []TypeRole {
	out := make([]TypeRole, typeRoleCount)
	for i := range out {
		out[i] = TypeRole(i)
	}
	return out
}

func (r TypeRole) valid() bool {
	return r >= 0 && int(r) < typeRoleCount
}

func (r TypeRole) String() string {
	if !r.valid() {
		return fmt.Sprintf("type-role(%d)", int(r))
	}
	return typeRoleNames[r]
}

// ParseTypeRole resolves a kebab-case typography role name.
func ParseTypeRole(name string) (TypeRole, bool) {
	for i, n := range typeRoleNames {
		if n == name {
			return TypeRole(i), true
		}
	}
	return 0, false
}

// LabelType returns the label typography role for a size class.
func LabelType(size SizeClass) TypeRole {
	switch size.Resolve() {
	case SizeSmall:
		return TypeLabelSmall
	case SizeLarge:
		return TypeLabelLarge
	default:
		return TypeLabelMedium
	}
}

// SizeClass selects one of three fixed dimension triples per component kind.
// The zero value resolves to SizeMedium.
type SizeClass int

const (
	SizeDefault SizeClass = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

const sizeClassCount = 3

// Resolve maps the zero value and unknown values to SizeMedium.
func (s SizeClass) Resolve() SizeClass {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return s
	default:
		return SizeMedium
	}
}

func (s SizeClass) index() int {
	return int(s.Resolve()) - 1
}

func (s SizeClass) String() string {
	switch s.Resolve() {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}

// ParseSizeClass resolves "small", "medium" or "large".
func ParseSizeClass(name string) (SizeClass, bool) {
	switch name {
	case "small":
		return SizeSmall, true
	case "medium":
		return SizeMedium, true
	case "large":
		return SizeLarge, true
	default:
		return SizeDefault, false
	}
}

// Dimensions is the resolved size triple for a (kind, size class) pair, in
// terminal cells. What each field measures depends on the component kind:
// Primary is the main extent (track width, minimum width, length), Secondary
// the cross extent (rows), Inner the embedded element (thumb width, padding).
type Dimensions struct {
	Primary   int
	Secondary int
	Inner     int
}
