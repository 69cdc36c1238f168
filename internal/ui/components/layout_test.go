package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

// lines strips styling and the padding lipgloss adds to short lines.
func lines(s string) []string {
	out := strings.Split(ansi.Strip(s), "\n")
	for i, l := range out {
		out[i] = strings.TrimRight(l, " ")
	}
	return out
}

func TestStackGap(t *testing.T) {
	t.Parallel()

	row := HStack(NewText("A"), NewText("B")).WithGap(2)
	assert.Equal(t, "A  B", ansi.Strip(row.View()))

	col := VStack(NewText("A"), NewText("B")).WithGap(1)
	assert.Equal(t, []string{"A", "", "B"}, lines(col.View()))

	assert.Equal(t, []string{"A", "B"}, lines(VStack(NewText("A"), NewText("B")).View()))
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	t.Parallel()

	row := HStack(NewText("A"), NewSpacer(0, 0), NewText("B")).WithGap(1)
	assert.Equal(t, "A B", ansi.Strip(row.View()))
	assert.Empty(t, HStack().View())
}

func TestStackConstraintsReachChildren(t *testing.T) {
	t.Parallel()

	stack := VStack(HorizontalDivider()).WithConstraints(WithMaxWidth(12))
	assert.Equal(t, 12, lipgloss.Width(stack.View()))

	row := HStack(HorizontalDivider(), HorizontalDivider()).WithGap(2)
	ctx := DefaultContext().WithConstraints(WithMaxWidth(22))
	assert.Equal(t, 22, lipgloss.Width(row.ViewWithContext(ctx)))
}

func TestContainerFrame(t *testing.T) {
	t.Parallel()

	box := NewContainer(NewText("hi")).
		WithBorder(lipgloss.NormalBorder()).
		WithPadding(HorizontalSpacing(1))

	out := lines(box.View())
	require.Len(t, out, 3)
	assert.Equal(t, "│ hi │", out[1])
}

func TestContainerNarrowsChildren(t *testing.T) {
	t.Parallel()

	box := NewContainer(HorizontalDivider()).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(HorizontalSpacing(2))

	ctx := DefaultContext().WithConstraints(WithMaxWidth(30))
	assert.Equal(t, 30, lipgloss.Width(box.ViewWithContext(ctx)))
}

func TestPanelSections(t *testing.T) {
	t.Parallel()

	panel := NewPanel(NewText("body")).WithTitle("Title").WithFooter(NewText("foot"))
	panel.WithTitle("Renamed")
	require.Len(t, panel.Children(), 5)

	out := ansi.Strip(panel.View())
	assert.NotContains(t, out, "Title")
	for _, want := range []string{"Renamed", "body", "foot"} {
		assert.Contains(t, out, want)
	}

	panel.WithBody(NewText("a"), NewText("b"))
	assert.Len(t, panel.Children(), 6)
}

func TestAlertTones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alert *Alert
		tone  Tone
		icon  string
	}{
		{alert: InfoAlert("x"), tone: ToneInfo, icon: "ℹ"},
		{alert: SuccessAlert("x"), tone: ToneSuccess, icon: "✓"},
		{alert: WarningAlert("x"), tone: ToneWarning, icon: "⚠"},
		{alert: ErrorAlert("x"), tone: ToneError, icon: "✗"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tone, tt.alert.Tone())
		assert.Contains(t, ansi.Strip(tt.alert.View()), tt.icon+" x")
	}

	assert.Equal(t, theme.RoleError, ToneError.Role())
	out := ansi.Strip(ErrorAlert("disk full").WithTitle("Backup").WithIcon("!").View())
	assert.Contains(t, out, "Backup")
	assert.Contains(t, out, "! disk full")
}

func TestHeaderLevels(t *testing.T) {
	t.Parallel()

	h := NewHeader("Title").WithLevel(9).WithSubtitle("sub")
	assert.Equal(t, 6, h.Level())
	assert.Equal(t, []string{"Title", "sub"}, lines(h.View()))
	assert.Equal(t, 1, NewHeader("x").WithLevel(-2).Level())
}

func TestDividerLabel(t *testing.T) {
	t.Parallel()

	d := NewDivider()
	d.Sync(DividerConfig{Label: "or", Length: 20}, epoch)

	out := d.Render(DefaultContext()).Plain()
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Contains(t, out, " or ")
	assert.True(t, d.Advance(epoch))
	assert.Equal(t, "or, separator", d.StateDescription())
}

func TestDividerGlyphs(t *testing.T) {
	t.Parallel()

	d := VerticalDivider()
	assert.Equal(t, []string{"│", "│", "│"}, lines(d.View()))

	d.Sync(DividerConfig{Length: 4, Variant: variant.DividerDashed, Size: theme.SizeLarge}, epoch)
	assert.Equal(t, "╍╍╍╍", d.Render(DefaultContext()).Plain())

	d.Sync(DividerConfig{}, epoch)
	w, _ := d.Render(DefaultContext().WithParentWidth(7)).Size()
	assert.Equal(t, 7, w)
}

func TestSpacer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "   ", HorizontalSpacer(3).View())
	assert.Equal(t, []string{"", ""}, lines(VerticalSpacer(2).View()))
	assert.Equal(t, 9, lipgloss.Width(FlexSpacer().ViewWithContext(DefaultContext().WithParentWidth(9))))
}
