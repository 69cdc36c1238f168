package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
)

func TestNilScopeResolvesToDefault(t *testing.T) {
	t.Parallel()

	var scope *Scope
	assert.Equal(t, Default(), scope.Resolve())
	assert.Nil(t, scope.Parent())
	assert.Equal(t, Default(), NewScope(Tokens{}).Resolve())
}

func TestInnerOverrideReplacesExactlyItsFields(t *testing.T) {
	t.Parallel()

	outer := NewScope(Dark())
	green := lipgloss.AdaptiveColor{Light: "#00ff00", Dark: "#00aa00"}
	bold := lipgloss.NewStyle().Bold(true)

	inner := outer.Provide(Override{
		Colors:     map[ColorRole]lipgloss.AdaptiveColor{RoleToggleTrackOn: green},
		Sizes:      map[SizeKey]Dimensions{{Kind: kind.Chip, Size: SizeSmall}: {5, 1, 0}},
		Typography: map[TypeRole]lipgloss.Style{TypeLabelSmall: bold},
	})

	want := outer.Resolve()
	got := inner.Resolve()

	for _, role := range ColorRoles() {
		if role == RoleToggleTrackOn {
			assert.Equal(t, green, got.Color(role))
			continue
		}
		assert.Equal(t, want.Color(role), got.Color(role), "colour %s", role)
	}
	for _, k := range kind.All() {
		for _, size := range []SizeClass{SizeSmall, SizeMedium, SizeLarge} {
			if k == kind.Chip && size == SizeSmall {
				assert.Equal(t, Dimensions{5, 1, 0}, got.Size(k, size))
				continue
			}
			assert.Equal(t, want.Size(k, size), got.Size(k, size), "%s/%s", k, size)
		}
	}
	for _, role := range TypeRoles() {
		if role == TypeLabelSmall {
			assert.Equal(t, bold, got.Type(role))
			continue
		}
		assert.Equal(t, want.Type(role), got.Type(role), "type %s", role)
	}
	assert.Equal(t, "dark", got.Name(), "unnamed overrides keep the outer name")
}

func TestOverridesComposeAcrossScopes(t *testing.T) {
	t.Parallel()

	red := lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#ff0000"}
	blue := lipgloss.AdaptiveColor{Light: "#0000ff", Dark: "#0000ff"}

	root := NewScope(Default())
	middle := root.Provide(Override{Colors: map[ColorRole]lipgloss.AdaptiveColor{RolePrimary: red}})
	inner := middle.Provide(Override{Colors: map[ColorRole]lipgloss.AdaptiveColor{RoleSecondary: blue}})

	got := inner.Resolve()
	assert.Equal(t, red, got.Color(RolePrimary), "middle override must survive the inner one")
	assert.Equal(t, blue, got.Color(RoleSecondary))
	assert.Equal(t, Default().Color(RolePrimary), root.Resolve().Color(RolePrimary))
	assert.Equal(t, 2, inner.Depth())
	assert.Same(t, middle, inner.Parent())
}

func TestProvideThemeReplacesWholesale(t *testing.T) {
	t.Parallel()

	red := lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#ff0000"}
	outer := NewScope(Default()).Provide(Override{Colors: map[ColorRole]lipgloss.AdaptiveColor{RolePrimary: red}})
	inner := outer.ProvideTheme(HighContrast())

	require.Equal(t, "high-contrast", inner.Resolve().Name())
	assert.Equal(t, HighContrast().Color(RolePrimary), inner.Resolve().Color(RolePrimary))

	shadow := inner.Provide(Override{Name: "custom"})
	assert.Equal(t, "custom", shadow.Resolve().Name())
	assert.Equal(t, red, outer.Resolve().Color(RolePrimary), "outer scope is unaffected by inner scopes")
}
