package showcase

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

func TestFocusCyclesOverInteractiveRows(t *testing.T) {
	m := newTestModel(t, Options{})
	want := []string{
		"Toggle group", "Button", "Icon button", "Chip", "Checkbox", "Radio",
		"Slider", "Rating", "Card", "Tags", "Toggle",
	}
	for _, title := range want {
		m, _ = press(m, "tab")
		require.Equal(t, title, m.Focused())
	}

	m, _ = press(m, "shift+tab")
	require.Equal(t, "Tags", m.Focused())
}

func TestSpaceTogglesThroughTheModel(t *testing.T) {
	m := newTestModel(t, Options{})
	m, cmd := press(m, "space")
	require.True(t, m.s.wifi)
	require.NotNil(t, cmd, "the thumb starts moving")
	require.True(t, m.Animating())

	m, _ = press(m, "enter")
	require.False(t, m.s.wifi)
}

func TestFramesStopWhenEverythingRests(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(m, "space")

	next, cmd := m.Update(frameMsg(epoch.Add(50 * time.Millisecond)))
	m = next.(Model)
	require.NotNil(t, cmd)

	next, cmd = m.Update(frameMsg(epoch.Add(20 * time.Second)))
	m = next.(Model)
	require.Nil(t, cmd)
	require.False(t, m.Animating())
}

func TestArrowKeysDragTheSlider(t *testing.T) {
	m := focusOn(t, newTestModel(t, Options{}), "Slider")

	m, _ = press(m, "right")
	require.InDelta(t, 50, m.s.volume, 1e-9)

	m, _ = press(m, "left", "left")
	require.InDelta(t, 30, m.s.volume, 1e-9)
}

func TestArrowKeysMoveThePartCursor(t *testing.T) {
	m := focusOn(t, newTestModel(t, Options{}), "Toggle group")

	m, _ = press(m, "right", "right", "right", "space")
	require.Equal(t, 2, m.s.period)

	m = focusOn(t, m, "Radio")
	m, _ = press(m, "right", "space")
	require.Equal(t, 1, m.s.contact)

	m = focusOn(t, m, "Rating")
	m, _ = press(m, "space")
	require.Equal(t, 1.0, m.s.rating)
}

func TestClosingTagsDropsThem(t *testing.T) {
	m := focusOn(t, newTestModel(t, Options{}), "Tags")

	m, _ = press(m, "space")
	require.Equal(t, []string{"tui", "motion"}, m.s.tags)
	require.Len(t, m.w.tagSet, 2)

	m, _ = press(m, "right", "space", "space")
	require.Empty(t, m.s.tags)
	require.Empty(t, m.w.tags.members)

	m, _ = press(m, "space")
	require.Empty(t, m.s.tags)
}

func TestUploadRunsWhileFramesArrive(t *testing.T) {
	m := focusOn(t, newTestModel(t, Options{}), "Button")

	m, cmd := press(m, "space")
	require.True(t, m.s.uploading)
	require.NotNil(t, cmd)

	next, _ := m.Update(frameMsg(epoch.Add(time.Second)))
	m = next.(Model)
	require.InDelta(t, 0.5, m.s.upload, 1e-9)

	next, _ = m.Update(frameMsg(epoch.Add(3 * time.Second)))
	m = next.(Model)
	require.Equal(t, 1.0, m.s.upload)
	require.False(t, m.s.uploading)
}

func TestFavoritesFeedTheBadge(t *testing.T) {
	m := focusOn(t, newTestModel(t, Options{}), "Icon button")

	m, _ = press(m, "space", "space")
	require.Equal(t, 2, m.s.favorites)
	require.Contains(t, m.w.favorite.StateDescription(), "badge, 2")
}

func TestDisabledRowsIgnoreInput(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(m, "d", "space")
	require.False(t, m.s.wifi)

	m, _ = press(m, "d", "space")
	require.True(t, m.s.wifi)
}

func TestThemeKeyCrossfades(t *testing.T) {
	m := newTestModel(t, Options{})
	start := m.Theme()

	m, cmd := press(m, "t")
	require.Equal(t, theme.Next(start), m.Theme())
	require.NotNil(t, cmd, "the backdrop fades to the new theme")
}

func TestVariantKeyCyclesFocusedKind(t *testing.T) {
	m := newTestModel(t, Options{})
	require.Equal(t, variant.TogglePill, pick[variant.Toggle](m.s, kind.Toggle))

	m, _ = press(m, "v")
	require.Equal(t, variant.ToggleSquircle, pick[variant.Toggle](m.s, kind.Toggle))

	m = focusOn(t, m, "Icon button")
	m, _ = press(m, "v")
	require.Equal(t, variant.IconButtonTonal, pick[variant.IconButton](m.s, kind.IconButton))
	require.Equal(t, 1, m.s.variants[kind.Badge], "the badge follows its anchor")
}

func TestMouseClicksTapTheRowUnderThePointer(t *testing.T) {
	m := newTestModel(t, Options{})
	x, y := gutter+titleWidth, headerRows

	next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	next, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = next.(Model)
	require.True(t, m.s.wifi)

	next, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	next, _ = m.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = next.(Model)
	require.True(t, m.s.wifi, "releasing off the row cancels the tap")
}

func TestMouseClickOnAStar(t *testing.T) {
	m := newTestModel(t, Options{})

	var x, y int
	for _, p := range m.layout() {
		if m.items[p.item].title != "Rating" {
			continue
		}
		stars := spans(p.node, "rating.star")
		require.Len(t, stars, 5)
		x, y = gutter+titleWidth+stars[3][0], p.y
	}

	next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	require.Equal(t, "Rating", m.Focused())
	next, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = next.(Model)
	require.Equal(t, 4.0, m.s.rating)
}

func TestQuitAndResize(t *testing.T) {
	m := newTestModel(t, Options{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	require.Equal(t, 100, m.screenWidth())

	m, cmd := press(m, "q")
	require.NotNil(t, cmd)
	require.Empty(t, m.View())
}
