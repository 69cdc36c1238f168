package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
)

func TestEveryPairHasARecipe(t *testing.T) {
	t.Parallel()

	all := All()
	require.NotEmpty(t, all)

	for _, v := range all {
		recipe := RecipeFor(v)
		assert.True(t, recipe.Defined(), "%s/%s has no recipe", v.Kind(), v)
	}
}

func TestVariantCounts(t *testing.T) {
	t.Parallel()

	want := map[kind.Kind]int{
		kind.Toggle:      6,
		kind.ToggleGroup: 3,
		kind.Button:      8,
		kind.IconButton:  4,
		kind.Chip:        4,
		kind.Checkbox:    4,
		kind.Radio:       3,
		kind.Slider:      4,
		kind.Rating:      3,
		kind.Badge:       4,
		kind.Card:        5,
		kind.Progress:    4,
		kind.Divider:     4,
		kind.Tag:         4,
	}

	total := 0
	for _, k := range kind.All() {
		vs := Of(k)
		assert.Len(t, vs, want[k], k.String())
		for _, v := range vs {
			assert.Equal(t, k, v.Kind(), "variant %s reports the wrong kind", v)
		}
		total += len(vs)
	}
	assert.Len(t, All(), total)
}

func TestDefaultsAreZeroValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Variant(TogglePill), Default(kind.Toggle))
	assert.Equal(t, Variant(ButtonFilled), Default(kind.Button))
	assert.Equal(t, Variant(CardElevated), Default(kind.Card))

	var zero Slider
	assert.Equal(t, SliderClassic, zero)
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range All() {
		parsed, ok := Parse(v.Kind(), v.String())
		require.True(t, ok, "%s/%s", v.Kind(), v)
		assert.Equal(t, v, parsed)
	}

	_, ok := Parse(kind.Toggle, "gradient")
	assert.False(t, ok, "gradient is a button variant, not a toggle variant")

	v, ok := Parse(kind.Button, "gradient")
	require.True(t, ok)
	assert.Equal(t, Variant(ButtonGradient), v)
}

func TestOutOfRangeFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RecipeFor(TogglePill), RecipeFor(Toggle(99)))
	assert.Equal(t, RecipeFor(BadgeFilled), RecipeFor(Badge(-1)))
	assert.Equal(t, "variant.Toggle(99)", Toggle(99).String())
}

func TestRecipeShapes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FillOutline, RecipeFor(ButtonOutlined).Fill)
	assert.Equal(t, BorderSolid, RecipeFor(ButtonOutlined).Border)
	assert.True(t, RecipeFor(ButtonGradient).Gradient())
	assert.True(t, RecipeFor(ToggleNeon).Glow)
	assert.Equal(t, FillGlass, RecipeFor(CardGlass).Fill)
	assert.Equal(t, PatternStriped, RecipeFor(ProgressStriped).Pattern)
	assert.Equal(t, PatternDashed, RecipeFor(DividerDashed).Pattern)
	assert.Positive(t, RecipeFor(CardElevated).Elevation)
}

func TestRatingGlyphs(t *testing.T) {
	t.Parallel()

	full, half, empty := RatingStars.Glyphs()
	assert.Equal(t, "★", full)
	assert.NotEmpty(t, half)
	assert.Equal(t, "☆", empty)

	full, _, _ = RatingHearts.Glyphs()
	assert.Equal(t, "♥", full)
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"segmented", "pills", "underline"}, Names(kind.ToggleGroup))
	assert.Equal(t, "solid", FillSolid.String())
	assert.Equal(t, "gradient", BorderGradient.String())
}

func TestTablesFollowDeclarationOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "squircle", ToggleSquircle.String())
	assert.Equal(t, "minimal", ToggleMinimal.String())
	assert.Equal(t, "ghost", ButtonGhost.String())
	assert.Equal(t, "ghost", IconButtonGhost.String())
	assert.Equal(t, "hearts", RatingHearts.String())

	assert.True(t, RecipeFor(ToggleNeon).Glow)
	assert.Equal(t, FillNone, RecipeFor(ToggleMinimal).Fill)
	assert.Equal(t, FillGradient, RecipeFor(ButtonGradient).Fill)
	assert.Equal(t, 1, RecipeFor(ButtonElevated).Elevation)
	assert.Equal(t, FillNone, RecipeFor(ButtonGhost).Fill)

	full, _, empty := RatingHearts.Glyphs()
	assert.Equal(t, "♥", full)
	assert.Equal(t, "♡", empty)
}
