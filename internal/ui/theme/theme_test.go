package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	tokens := Default()

	assert.Equal(t, "light", tokens.Name())
	assert.Equal(t, "#3b82f6", tokens.Color(RolePrimary).Light)
	assert.Equal(t, "#111827", tokens.Color(RoleTextPrimary).Light)
	assert.Equal(t, Dimensions{6, 1, 2}, tokens.Size(kind.Toggle, SizeMedium))
	assert.True(t, tokens.Type(TypeTitleLarge).GetBold(), "title typography should be bold")
}

func TestEveryRoleHasADefault(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		tokens, ok := Named(name)
		require.True(t, ok)

		for _, role := range ColorRoles() {
			assert.True(t, IsSet(tokens.Color(role)), "%s: colour role %s has no value", name, role)
		}
		for _, k := range kind.All() {
			for _, size := range []SizeClass{SizeSmall, SizeMedium, SizeLarge} {
				dims := tokens.Size(k, size)
				assert.Positive(t, dims.Secondary, "%s: %s/%s has no rows", name, k, size)
			}
		}
	}
}

func TestSizeClassZeroValueIsMedium(t *testing.T) {
	t.Parallel()

	tokens := Default()
	assert.Equal(t, tokens.Size(kind.Button, SizeMedium), tokens.Size(kind.Button, SizeDefault))
	assert.Equal(t, SizeMedium, SizeClass(42).Resolve())
}

func TestDarkThemeChangesSurfaces(t *testing.T) {
	t.Parallel()

	light := Light()
	dark := Dark()

	assert.Equal(t, "dark", dark.Name())
	assert.NotEqual(t, light.Color(RoleSurface), dark.Color(RoleSurface))
	assert.Equal(t, light.Color(RolePrimary), dark.Color(RolePrimary), "dark theme keeps brand colours")
	assert.NotEqual(t, light.Type(TypeBodyMedium).GetForeground(), dark.Type(TypeBodyMedium).GetForeground())
}

func TestWithReplacesOnlyNamedRoles(t *testing.T) {
	t.Parallel()

	base := Default()
	red := lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#ff0000"}
	next := base.With(Override{
		Colors: map[ColorRole]lipgloss.AdaptiveColor{RolePrimary: red},
		Sizes:  map[SizeKey]Dimensions{{Kind: kind.Slider, Size: SizeLarge}: {40, 1, 2}},
	})

	for _, role := range ColorRoles() {
		if role == RolePrimary {
			assert.Equal(t, red, next.Color(role))
			continue
		}
		assert.Equal(t, base.Color(role), next.Color(role), "role %s changed", role)
	}
	assert.Equal(t, Dimensions{40, 1, 2}, next.Size(kind.Slider, SizeLarge))
	assert.Equal(t, base.Size(kind.Slider, SizeSmall), next.Size(kind.Slider, SizeSmall))
	assert.Equal(t, "#3b82f6", base.Color(RolePrimary).Light, "base must not be mutated")
}

func TestNextCyclesBuiltins(t *testing.T) {
	t.Parallel()

	names := Names()
	require.Equal(t, []string{"dark", "high-contrast", "light"}, names)
	assert.Equal(t, "high-contrast", Next("dark"))
	assert.Equal(t, "dark", Next("light"))
	assert.Equal(t, "dark", Next("unknown"))
}

func TestRoleNamesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, role := range ColorRoles() {
		parsed, ok := ParseColorRole(role.String())
		require.True(t, ok, role.String())
		assert.Equal(t, role, parsed)
	}
	for _, role := range TypeRoles() {
		parsed, ok := ParseTypeRole(role.String())
		require.True(t, ok, role.String())
		assert.Equal(t, role, parsed)
	}
	_, ok := ParseColorRole("chartreuse")
	assert.False(t, ok)
}

func TestBlend(t *testing.T) {
	t.Parallel()

	black := lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"}
	white := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}

	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))

	mid := Blend(black, white, 0.5)
	assert.NotEqual(t, black.Light, mid.Light)
	assert.NotEqual(t, white.Light, mid.Light)

	ansi := lipgloss.AdaptiveColor{Light: "12", Dark: "12"}
	assert.Equal(t, "#000000", Blend(black, ansi, 0.4).Light, "non-hex colours switch at the midpoint")
	assert.Equal(t, "12", Blend(black, ansi, 0.6).Light)
}

func TestFadeAndGradient(t *testing.T) {
	t.Parallel()

	fg := lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#3b82f6"}
	bg := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}

	assert.Equal(t, fg, Fade(fg, bg, 1))
	assert.Equal(t, bg, Fade(fg, bg, 0))

	stops := Gradient(bg, fg, 5)
	require.Len(t, stops, 5)
	assert.Equal(t, bg, stops[0])
	assert.Equal(t, fg, stops[4])
	assert.Nil(t, Gradient(bg, fg, 0))
}

func TestPick(t *testing.T) {
	t.Parallel()

	fallback := lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}
	assert.Equal(t, fallback, Pick(lipgloss.AdaptiveColor{}, fallback))

	override := lipgloss.AdaptiveColor{Light: "#123456"}
	assert.Equal(t, override, Pick(override, fallback))
}
