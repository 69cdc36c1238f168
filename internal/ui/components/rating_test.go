package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

func TestRatingProposals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  RatingConfig
		star int
		want float64
	}{
		{name: "tap current star halves it", cfg: RatingConfig{Value: 3, AllowHalf: true}, star: 2, want: 2.5},
		{name: "tap higher star", cfg: RatingConfig{Value: 3, AllowHalf: true}, star: 3, want: 4},
		{name: "tap lower star", cfg: RatingConfig{Value: 3, AllowHalf: true}, star: 0, want: 1},
		{name: "half value rises to whole", cfg: RatingConfig{Value: 2.5, AllowHalf: true}, star: 2, want: 3},
		{name: "whole stars only", cfg: RatingConfig{Value: 3}, star: 2, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []float64
			cfg := tt.cfg
			cfg.OnChange = func(v float64) { got = append(got, v) }
			rating := NewRating()
			rating.Sync(cfg, epoch)

			Send(rating, Tap(tt.star)...)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestRatingIgnoresTapsOutsideStars(t *testing.T) {
	t.Parallel()

	calls := 0
	rating := NewRating()
	rating.Sync(RatingConfig{Max: 3, OnChange: func(float64) { calls++ }}, epoch)

	Send(rating, Tap(3)...)
	Send(rating, Tap(-1)...)
	assert.Zero(t, calls)
}

func TestRatingRenderStates(t *testing.T) {
	t.Parallel()

	rating := NewRating()
	rating.Sync(RatingConfig{Value: 2.5, AllowHalf: true, Variant: variant.RatingHearts}, epoch)

	node := rating.Render(DefaultContext())
	stars := node.FindAll("rating.star")
	require.Len(t, stars, DefaultMaxRating)
	assert.Equal(t, 2, node.Count(paint.Checked))
	assert.Equal(t, 1, node.Count(paint.Half))

	full, half, empty := variant.RatingHearts.Glyphs()
	assert.Equal(t, full, stars[0].Content)
	assert.Equal(t, half, stars[2].Content)
	assert.Equal(t, empty, stars[4].Content)
	assert.Equal(t, "rating, 2.5 of 5", rating.StateDescription())
}

func TestRatingAnimatesStars(t *testing.T) {
	t.Parallel()

	rating := NewRating()
	rating.Sync(RatingConfig{Value: 1}, epoch)
	assert.Equal(t, []float64{1, 0, 0, 0, 0}, rating.Frame().Stars)

	rating.Sync(RatingConfig{Value: 4}, epoch)
	assert.False(t, rating.Advance(at(50*time.Millisecond)))
	assert.True(t, rating.Advance(at(5*time.Second)))
	assert.Equal(t, []float64{1, 1, 1, 1, 0}, rating.Frame().Stars)

	rating.Sync(RatingConfig{Value: 4, Max: 3}, at(5*time.Second))
	assert.Len(t, rating.Frame().Stars, 3)
}
