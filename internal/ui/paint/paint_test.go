package paint

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plain = lipgloss.NewStyle()

func TestRowAndColumn(t *testing.T) {
	t.Parallel()

	row := Row("row", lipgloss.Top, Text("a", plain, "A"), Empty(), Text("b", plain, "B"))
	assert.Equal(t, "AB", row.Plain())

	col := Column("col", lipgloss.Left, Text("a", plain, "A"), Text("b", plain, "BB"))
	lines := strings.Split(col.Plain(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "BB", lines[1])
}

func TestEmptyContainers(t *testing.T) {
	t.Parallel()

	assert.True(t, Empty().IsEmpty())
	assert.True(t, Row("r", lipgloss.Top, Empty(), Empty()).IsEmpty())
	assert.False(t, Box("b", plain, Empty()).IsEmpty(), "a box still draws its frame")
	assert.Equal(t, "", Layer("l").View())

	w, h := Empty().Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestBoxAppliesStyle(t *testing.T) {
	t.Parallel()

	box := Box("card", lipgloss.NewStyle().Border(lipgloss.NormalBorder()), Text("t", plain, "hi"))
	w, h := box.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.Contains(t, box.Plain(), "hi")
}

func TestLayerPaintsInZOrder(t *testing.T) {
	t.Parallel()

	layer := Layer("stack",
		Text("top", plain, "X").At(1, 0, 2),
		Text("base", plain, "....").At(0, 0, 0),
		Text("under", plain, "o").At(1, 0, 1),
	)

	assert.Equal(t, ".X..", layer.Plain())
}

func TestLayerFitsChildren(t *testing.T) {
	t.Parallel()

	layer := Layer("overlay",
		Text("body", plain, "abc\ndef"),
		Text("badge", plain, "9").At(3, 0, 1),
	)

	lines := strings.Split(layer.Plain(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "abc9", lines[0])
	assert.Equal(t, "def", lines[1])

	sized := layer.Sized(2, 1)
	assert.Equal(t, "ab", sized.Plain(), "a sized layer crops its children")
}

func TestFindAndState(t *testing.T) {
	t.Parallel()

	tree := Row("group", lipgloss.Top,
		Text("segment", plain, "a"),
		Text("segment", plain, "b").With(Selected),
		Text("segment", plain, "c"),
	).With(Disabled)

	assert.Len(t, tree.FindAll("segment"), 3)
	assert.Equal(t, 1, tree.Count(Selected))
	assert.True(t, tree.State.Has(Disabled))

	seg, ok := tree.Find("segment")
	require.True(t, ok)
	assert.Equal(t, "a", seg.Content)

	_, ok = tree.Find("missing")
	assert.False(t, ok)
}

func TestCanvasClampsNegativeOffsets(t *testing.T) {
	t.Parallel()

	canvas := NewCanvas(4, 2)
	canvas.DrawStringAt(-3, -1, "AB\nCD")
	lines := strings.Split(canvas.Render(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "AB", strings.TrimSpace(lines[0]))
	assert.Equal(t, "CD", strings.TrimSpace(lines[1]))
	assert.Equal(t, "", canvas.Render(), "a rendered canvas is released")
}
