package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
)

type (
	colorTable [colorRoleCount]lipgloss.AdaptiveColor
	sizeTable  [kind.Count][sizeClassCount]Dimensions
	typeTable  [typeRoleCount]lipgloss.Style
)

// Tokens is an immutable set of resolved design values. Every role always
// holds a value; overrides replace named roles and leave the rest intact.
// Copying a Tokens value copies its tables, so no two scopes share storage.
type Tokens struct {
	name   string
	colors colorTable
	sizes  sizeTable
	types  typeTable
}

// Name returns the theme name the tokens were built from.
func (t Tokens) Name() string {
	return t.name
}

// IsZero reports whether t is the uninitialised zero value.
func (t Tokens) IsZero() bool {
	return t.name == ""
}

// OrDefault returns t, or the default tokens when t is the zero value.
func (t Tokens) OrDefault() Tokens {
	if t.IsZero() {
		return Default()
	}
	return t
}

// Color returns the colour assigned to role. Unknown roles resolve to the
// text-primary colour.
func (t Tokens) Color(role ColorRole) lipgloss.AdaptiveColor {
	if !role.valid() {
		role = RoleTextPrimary
	}
	return t.colors[role]
}

// Size returns the dimension triple for a component kind at a size class.
func (t Tokens) Size(k kind.Kind, size SizeClass) Dimensions {
	if !k.Valid() {
		return Dimensions{}
	}
	return t.sizes[k][size.index()]
}

// Type returns the typography style for role.
func (t Tokens) Type(role TypeRole) lipgloss.Style {
	if !role.valid() {
		role = TypeBodyMedium
	}
	return t.types[role]
}

// SizeKey addresses one entry of the size table.
type SizeKey struct {
	Kind kind.Kind
	Size SizeClass
}

// Override is a partial token set. Only the roles present in the maps are
// replaced when it is applied.
type Override struct {
	Name       string
	Colors     map[ColorRole]lipgloss.AdaptiveColor
	Sizes      map[SizeKey]Dimensions
	Typography map[TypeRole]lipgloss.Style
}

// IsEmpty reports whether o sets nothing.
func (o Override) IsEmpty() bool {
	return o.Name == "" && len(o.Colors) == 0 && len(o.Sizes) == 0 && len(o.Typography) == 0
}

// With returns a copy of t with the roles named in o replaced.
func (t Tokens) With(o Override) Tokens {
	if o.Name != "" {
		t.name = o.Name
	}
	for role, colour := range o.Colors {
		if role.valid() {
			t.colors[role] = colour
		}
	}
	for key, dims := range o.Sizes {
		if key.Kind.Valid() {
			t.sizes[key.Kind][key.Size.index()] = dims
		}
	}
	for role, style := range o.Typography {
		if role.valid() {
			t.types[role] = style
		}
	}
	return t
}

// Default returns the light theme.
func Default() Tokens {
	return Light()
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Light returns the default theme. Colours are adaptive, so the theme still
// reads on dark terminals.
func Light() Tokens {
	colors := colorTable{
		RolePrimary:        ac("#3b82f6", "#60a5fa"),
		RoleOnPrimary:      ac("#f8fafc", "#0b1120"),
		RoleSecondary:      ac("#a855f7", "#c084fc"),
		RoleOnSecondary:    ac("#f8fafc", "#1f2937"),
		RoleTertiary:       ac("#06b6d4", "#22d3ee"),
		RoleSurface:        ac("#f9fafb", "#111827"),
		RoleSurfaceVariant: ac("#e2e8f0", "#1f2937"),
		RoleBackground:     ac("#ffffff", "#0b1120"),
		RoleTextPrimary:    ac("#111827", "#f9fafb"),
		RoleTextSecondary:  ac("#475569", "#94a3b8"),
		RoleOutline:        ac("#cbd5e1", "#334155"),
		RoleSuccess:        ac("#22c55e", "#4ade80"),
		RoleWarning:        ac("#eab308", "#facc15"),
		RoleError:          ac("#ef4444", "#f87171"),
		RoleInfo:           ac("#06b6d4", "#22d3ee"),
		RoleToggleTrackOn:  ac("#3b82f6", "#60a5fa"),
		RoleToggleTrackOff: ac("#cbd5e1", "#334155"),
		RoleToggleThumbOn:  ac("#ffffff", "#f8fafc"),
		RoleToggleThumbOff: ac("#f8fafc", "#94a3b8"),
		RoleGlass:          ac("#f1f5f9", "#1e293b"),
		RoleShadow:         ac("#94a3b8", "#020617"),
		RoleDisabled:       ac("#94a3b8", "#475569"),
	}
	return Tokens{
		name:   "light",
		colors: colors,
		sizes:  defaultSizes(),
		types:  defaultTypography(colors),
	}
}

// Dark returns a theme with dark surfaces regardless of terminal background.
func Dark() Tokens {
	return Light().With(Override{
		Name: "dark",
		Colors: map[ColorRole]lipgloss.AdaptiveColor{
			RoleSurface:        ac("#111827", "#0b1120"),
			RoleSurfaceVariant: ac("#1f2937", "#111827"),
			RoleBackground:     ac("#0b1120", "#020617"),
			RoleTextPrimary:    ac("#f9fafb", "#e5e7eb"),
			RoleTextSecondary:  ac("#cbd5e1", "#94a3b8"),
			RoleOutline:        ac("#475569", "#334155"),
			RoleToggleTrackOff: ac("#334155", "#1f2937"),
			RoleToggleThumbOff: ac("#94a3b8", "#64748b"),
			RoleGlass:          ac("#1e293b", "#0f172a"),
			RoleShadow:         ac("#020617", "#000000"),
		},
	}).withTypography()
}

// HighContrast returns a theme using saturated colours and pure
// black/white surfaces.
func HighContrast() Tokens {
	return Light().With(Override{
		Name: "high-contrast",
		Colors: map[ColorRole]lipgloss.AdaptiveColor{
			RolePrimary:        ac("#0000ff", "#00ffff"),
			RoleOnPrimary:      ac("#ffffff", "#000000"),
			RoleSecondary:      ac("#800080", "#ff00ff"),
			RoleSurface:        ac("#ffffff", "#000000"),
			RoleBackground:     ac("#ffffff", "#000000"),
			RoleTextPrimary:    ac("#000000", "#ffffff"),
			RoleTextSecondary:  ac("#000000", "#ffffff"),
			RoleOutline:        ac("#000000", "#ffffff"),
			RoleSuccess:        ac("#008000", "#00ff00"),
			RoleWarning:        ac("#806000", "#ffff00"),
			RoleError:          ac("#c00000", "#ff0000"),
			RoleToggleTrackOn:  ac("#0000ff", "#00ffff"),
			RoleToggleTrackOff: ac("#000000", "#ffffff"),
			RoleToggleThumbOn:  ac("#ffffff", "#000000"),
			RoleToggleThumbOff: ac("#ffffff", "#000000"),
		},
	}).withTypography()
}

// withTypography rebuilds typography from the current colour table.
func (t Tokens) withTypography() Tokens {
	t.types = defaultTypography(t.colors)
	return t
}

func defaultSizes() sizeTable {
	var table sizeTable
	set := func(k kind.Kind, small, medium, large Dimensions) {
		table[k] = [sizeClassCount]Dimensions{small, medium, large}
	}
	set(kind.Toggle, Dimensions{4, 1, 1}, Dimensions{6, 1, 2}, Dimensions{8, 1, 3})
	set(kind.ToggleGroup, Dimensions{8, 1, 1}, Dimensions{10, 1, 2}, Dimensions{14, 3, 3})
	set(kind.Button, Dimensions{8, 1, 1}, Dimensions{12, 1, 2}, Dimensions{16, 3, 3})
	set(kind.IconButton, Dimensions{3, 1, 0}, Dimensions{5, 1, 1}, Dimensions{7, 3, 2})
	set(kind.Chip, Dimensions{6, 1, 1}, Dimensions{8, 1, 1}, Dimensions{10, 1, 2})
	set(kind.Checkbox, Dimensions{3, 1, 1}, Dimensions{3, 1, 1}, Dimensions{5, 1, 2})
	set(kind.Radio, Dimensions{3, 1, 1}, Dimensions{3, 1, 1}, Dimensions{5, 1, 2})
	set(kind.Slider, Dimensions{16, 1, 1}, Dimensions{24, 1, 1}, Dimensions{32, 1, 3})
	set(kind.Rating, Dimensions{1, 1, 0}, Dimensions{1, 1, 1}, Dimensions{1, 1, 2})
	set(kind.Badge, Dimensions{1, 1, 0}, Dimensions{3, 1, 1}, Dimensions{5, 1, 2})
	set(kind.Card, Dimensions{24, 3, 1}, Dimensions{36, 5, 2}, Dimensions{48, 7, 3})
	set(kind.Progress, Dimensions{16, 1, 0}, Dimensions{24, 1, 0}, Dimensions{40, 1, 0})
	set(kind.Divider, Dimensions{20, 1, 0}, Dimensions{40, 1, 1}, Dimensions{60, 1, 2})
	set(kind.Tag, Dimensions{4, 1, 1}, Dimensions{6, 1, 1}, Dimensions{8, 1, 2})
	return table
}

func defaultTypography(colors colorTable) typeTable {
	base := lipgloss.NewStyle().Foreground(colors[RoleTextPrimary])
	muted := lipgloss.NewStyle().Foreground(colors[RoleTextSecondary])

	return typeTable{
		TypeLabelSmall:  muted,
		TypeLabelMedium: base,
		TypeLabelLarge:  base.Bold(true),
		TypeBodySmall:   muted.Faint(true),
		TypeBodyMedium:  base,
		TypeBodyLarge:   base.Bold(true),
		TypeTitleSmall:  base.Bold(true),
		TypeTitleMedium: base.Bold(true).Foreground(colors[RolePrimary]),
		TypeTitleLarge:  base.Bold(true).Underline(true).Foreground(colors[RolePrimary]),
	}
}
