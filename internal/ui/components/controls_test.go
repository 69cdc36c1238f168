package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/motif/internal/ui"
	"github.com/alexisbeaulieu97/motif/internal/ui/paint"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return epoch.Add(d)
}

type hapticLog []Haptic

func (l *hapticLog) Trigger(h Haptic) {
	*l = append(*l, h)
}

func TestToggleIsCallerDriven(t *testing.T) {
	t.Parallel()

	var proposals []bool
	toggle := NewToggle()
	cfg := ToggleConfig{OnChange: func(on bool) { proposals = append(proposals, on) }}
	toggle.Sync(cfg, epoch)

	Send(toggle, Tap(0)...)
	require.Equal(t, []bool{true}, proposals)

	// The caller has not accepted the proposal yet, so nothing moves.
	assert.True(t, toggle.Advance(at(time.Second)))
	assert.Zero(t, toggle.Frame().Thumb)

	cfg.On = true
	toggle.Sync(cfg, at(time.Second))
	toggle.Advance(at(time.Second + 50*time.Millisecond))
	mid := toggle.Frame().Thumb
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)

	assert.True(t, toggle.Advance(at(4*time.Second)))
	assert.Equal(t, 1.0, toggle.Frame().Thumb)
	assert.Equal(t, 1.0, toggle.Frame().Track)
}

func TestToggleFirstSyncSnaps(t *testing.T) {
	t.Parallel()

	toggle := NewToggle()
	toggle.Sync(ToggleConfig{On: true, Disabled: true}, epoch)

	frame := toggle.Frame()
	assert.Equal(t, 1.0, frame.Thumb)
	assert.Equal(t, DisabledAlpha, frame.Alpha)
	assert.True(t, frame.Disabled)
	assert.True(t, toggle.Advance(epoch))
}

func TestToggleRenderState(t *testing.T) {
	t.Parallel()

	toggle := NewToggle()
	toggle.Sync(ToggleConfig{On: true, Label: "Wi-Fi"}, epoch)

	node := toggle.Render(DefaultContext())
	assert.True(t, node.State.Has(paint.Checked))
	assert.Contains(t, node.Plain(), "Wi-Fi")

	thumb, ok := node.Find("toggle.thumb")
	require.True(t, ok)
	assert.Positive(t, thumb.X, "an on thumb sits at the end of the track")
}

func TestPressScalesAndReleases(t *testing.T) {
	t.Parallel()

	button := NewButton()
	button.Sync(ButtonConfig{Label: "Go"}, epoch)

	button.Handle(Down(0))
	assert.True(t, button.Frame().Pressed)
	assert.False(t, button.Advance(at(50*time.Millisecond)))
	assert.Less(t, button.Frame().Scale, 1.0)

	button.Handle(UpOutside())
	assert.False(t, button.Frame().Pressed)
	assert.True(t, button.Advance(at(5*time.Second)))
	assert.Equal(t, 1.0, button.Frame().Scale)
}

func TestReleaseOutsideDoesNotClick(t *testing.T) {
	t.Parallel()

	clicks := 0
	button := NewButton()
	button.Sync(ButtonConfig{Label: "Go", OnClick: func() { clicks++ }}, epoch)

	Send(button, Down(0), UpOutside())
	Send(button, Down(0), Cancel(), Up(0))
	assert.Zero(t, clicks)

	Send(button, Tap(0)...)
	assert.Equal(t, 1, clicks)
}

func TestDisabledComponentsNeverCallBack(t *testing.T) {
	t.Parallel()

	calls := 0
	hit := func() { calls++ }

	toggle := NewToggle()
	toggle.Sync(ToggleConfig{Disabled: true, OnChange: func(bool) { hit() }}, epoch)
	group := NewToggleGroup()
	group.Sync(ToggleGroupConfig{Options: []string{"a", "b"}, Disabled: true, OnSelect: func(int) { hit() }}, epoch)
	button := NewButton()
	button.Sync(ButtonConfig{Disabled: true, OnClick: hit}, epoch)
	iconButton := NewIconButton()
	iconButton.Sync(IconButtonConfig{Icon: "+", Disabled: true, OnClick: hit}, epoch)
	chip := NewChip()
	chip.Sync(ChipConfig{Disabled: true, OnChange: func(bool) { hit() }}, epoch)
	checkbox := NewCheckbox()
	checkbox.Sync(CheckboxConfig{Disabled: true, OnChange: func(bool) { hit() }}, epoch)
	radio := NewRadio()
	radio.Sync(RadioConfig{Disabled: true, OnClick: hit}, epoch)
	slider := NewSlider()
	slider.Sync(SliderConfig{Disabled: true, Width: 10, OnChange: func(float64) { hit() }}, epoch)
	rating := NewRating()
	rating.Sync(RatingConfig{Disabled: true, OnChange: func(float64) { hit() }}, epoch)
	card := NewCard()
	card.Sync(CardConfig{Disabled: true, OnClick: hit}, epoch)
	tag := NewTag()
	tag.Sync(TagConfig{Closable: true, Disabled: true, OnClick: hit, OnClose: hit}, epoch)

	handlers := map[string]Handler{
		"toggle":       toggle,
		"toggle-group": group,
		"button":       button,
		"icon-button":  iconButton,
		"chip":         chip,
		"checkbox":     checkbox,
		"radio":        radio,
		"slider":       slider,
		"rating":       rating,
		"card":         card,
		"tag":          tag,
	}
	for name, h := range handlers {
		Send(h, Down(1), Move(5), Up(1))
		Send(h, Tap(0)...)
		assert.Zero(t, calls, name)
	}
	slider.Step(3)
	assert.Zero(t, calls)
}

func TestReenabledComponentAcceptsInput(t *testing.T) {
	t.Parallel()

	clicks := 0
	radio := NewRadio()
	radio.Sync(RadioConfig{Disabled: true, OnClick: func() { clicks++ }}, epoch)
	radio.Handle(Down(0))

	radio.Sync(RadioConfig{OnClick: func() { clicks++ }}, at(time.Second))
	radio.Handle(Up(0))
	assert.Zero(t, clicks, "a press started while disabled does not complete")

	Send(radio, Tap(0)...)
	assert.Equal(t, 1, clicks)
	assert.True(t, radio.Advance(at(5*time.Second)))
	assert.Equal(t, 1.0, radio.Frame().Alpha)
}

func TestHaptics(t *testing.T) {
	t.Parallel()

	var log hapticLog
	toggle := NewToggle().WithHaptics(&log)
	toggle.Sync(ToggleConfig{}, epoch)
	Send(toggle, Tap(0)...)

	quiet := NewCheckbox().WithHaptics(&log)
	quiet.Sync(CheckboxConfig{DisableHaptics: true}, epoch)
	Send(quiet, Tap(0)...)

	group := NewToggleGroup().WithHaptics(&log)
	group.Sync(ToggleGroupConfig{Options: []string{"a", "b"}}, epoch)
	Send(group, Tap(1)...)

	assert.Equal(t, hapticLog{HapticToggle, HapticClick}, log)
}

func TestToggleGroupProposesTappedSegment(t *testing.T) {
	t.Parallel()

	var picked []int
	group := NewToggleGroup()
	cfg := ToggleGroupConfig{
		Options:  []string{"Day", "Week", "Month"},
		OnSelect: func(i int) { picked = append(picked, i) },
	}
	group.Sync(cfg, epoch)

	Send(group, Tap(2)...)
	Send(group, Tap(7)...)
	require.Equal(t, []int{2}, picked)

	cfg.Selected = 2
	group.Sync(cfg, at(time.Second))
	for _, v := range []variant.ToggleGroup{variant.ToggleGroupSegmented, variant.ToggleGroupPills, variant.ToggleGroupUnderline} {
		cfg.Variant = v
		group.Sync(cfg, at(time.Second))
		node := group.Render(DefaultContext())
		assert.Equal(t, 1, node.Count(paint.Selected), v.String())
	}

	assert.True(t, group.Advance(at(5*time.Second)))
	assert.Equal(t, []float64{0, 0, 1}, group.Frame().Emphasis)
	assert.Equal(t, "button group, Month selected", group.StateDescription())
}

func TestToggleGroupWithoutOptions(t *testing.T) {
	t.Parallel()

	group := NewToggleGroup()
	group.Sync(ToggleGroupConfig{Selected: 3}, epoch)
	Send(group, Tap(0)...)

	assert.True(t, group.Render(DefaultContext()).IsEmpty())
	assert.Equal(t, "button group, empty", group.StateDescription())
}

func TestButtonLoading(t *testing.T) {
	t.Parallel()

	clicks := 0
	button := NewButton()
	cfg := ButtonConfig{Label: "Save", OnClick: func() { clicks++ }, Loading: true}
	button.Sync(cfg, epoch)

	Send(button, Tap(0)...)
	assert.Zero(t, clicks, "loading buttons do not click")

	s := cfg.spinner()
	assert.False(t, button.Advance(at(3*s.FPS)))
	assert.Equal(t, 3%len(s.Frames), button.Frame().Spinner)

	node := button.Render(DefaultContext())
	assert.True(t, node.State.Has(paint.Loading))
	assert.Contains(t, node.Plain(), strings.TrimSpace(s.Frames[3%len(s.Frames)]))
	assert.Equal(t, "Save, button, busy", button.StateDescription())

	cfg.Loading = false
	button.Sync(cfg, at(time.Second))
	Send(button, Tap(0)...)
	assert.Equal(t, 1, clicks)
}

func TestButtonFullWidth(t *testing.T) {
	t.Parallel()

	button := NewButton()
	button.Sync(ButtonConfig{Label: "Wide", FullWidth: true, Variant: variant.ButtonGhost}, epoch)

	ctx := DefaultContext().WithConstraints(WithMaxWidth(30))
	w, _ := button.Render(ctx).Size()
	assert.Equal(t, 30, w)
}

func TestChipShowsCheckWhenSelected(t *testing.T) {
	t.Parallel()

	chip := NewChip()
	chip.Sync(ChipConfig{Label: "Go", Selected: true}, epoch)

	node := chip.Render(DefaultContext())
	assert.Contains(t, node.Plain(), chipCheck)
	assert.Equal(t, 1, node.Count(paint.Selected))
	assert.Equal(t, "Go, filter, selected", chip.StateDescription())
}

func TestCheckboxAndRadioStates(t *testing.T) {
	t.Parallel()

	checkbox := NewCheckbox()
	checkbox.Sync(CheckboxConfig{Checked: true, Label: "Email"}, epoch)
	node := checkbox.Render(DefaultContext())
	assert.True(t, node.State.Has(paint.Checked))
	assert.Contains(t, node.Plain(), "✓")
	assert.Equal(t, "Email, checkbox, checked", checkbox.StateDescription())

	radio := NewRadio()
	radio.Sync(RadioConfig{Label: "Small", LabelPosition: LabelStart}, epoch)
	node = radio.Render(DefaultContext())
	assert.False(t, node.State.Has(paint.Selected))
	assert.Equal(t, "Small, radio button, not selected", radio.StateDescription())
}

func TestBadgeText(t *testing.T) {
	t.Parallel()

	assert.Empty(t, BadgeConfig{}.Text())
	assert.Empty(t, BadgeConfig{Count: -4}.Text())
	assert.Equal(t, "7", BadgeConfig{Count: 7}.Text())
	assert.Equal(t, "99+", BadgeConfig{Count: 150}.Text())
	assert.Equal(t, "9+", BadgeConfig{Count: 10, Max: 9}.Text())
}

func TestBadgePopsInAndOut(t *testing.T) {
	t.Parallel()

	badge := NewBadge()
	badge.Sync(BadgeConfig{}, epoch)
	assert.True(t, badge.Render(DefaultContext()).IsEmpty())

	badge.Sync(BadgeConfig{Count: 150}, epoch)
	assert.True(t, badge.Advance(at(5*time.Second)))
	assert.Contains(t, badge.Render(DefaultContext()).Plain(), "99+")

	badge.Sync(BadgeConfig{}, at(5*time.Second))
	assert.Contains(t, badge.Render(DefaultContext()).Plain(), "99+", "the last count shows while shrinking")
	assert.True(t, badge.Advance(at(10*time.Second)))
	assert.True(t, badge.Render(DefaultContext()).IsEmpty())
}

func TestBadgeAnchor(t *testing.T) {
	t.Parallel()

	anchor := NewIconButton()
	anchor.Sync(IconButtonConfig{Icon: "✉"}, epoch)

	badge := NewBadge()
	badge.Sync(BadgeConfig{Count: 3, Variant: variant.BadgeDot, Anchor: anchor.Render(DefaultContext())}, epoch)

	node := badge.Render(DefaultContext())
	assert.Equal(t, "badge.anchor", node.Role)
	dot, ok := node.Find("badge")
	require.True(t, ok)
	assert.Equal(t, "●", dot.Content)
}

func TestTagParts(t *testing.T) {
	t.Parallel()

	var clicks, closes int
	tag := NewTag()
	cfg := TagConfig{Label: "go", OnClick: func() { clicks++ }, OnClose: func() { closes++ }}
	tag.Sync(cfg, epoch)

	Send(tag, Tap(TagClose)...)
	assert.Zero(t, closes, "only closable tags close")

	cfg.Closable = true
	tag.Sync(cfg, epoch)
	Send(tag, Tap(TagClose)...)
	Send(tag, Tap(TagBody)...)
	Send(tag, Down(TagBody), Up(TagClose))
	assert.Equal(t, 1, closes)
	assert.Equal(t, 1, clicks)

	tag.Handle(Down(TagClose))
	assert.True(t, tag.Frame().ClosePressed)
	assert.Contains(t, tag.Render(DefaultContext()).Plain(), tagCloseGlyph)
	assert.Equal(t, "go, tag, removable", tag.StateDescription())
}

func TestCardComposesContent(t *testing.T) {
	t.Parallel()

	card := NewCard()
	card.Sync(CardConfig{
		Title:    "Storage",
		Subtitle: "2 of 5 GB",
		Content:  []ui.Renderable{NewText("Plenty left")},
		Footer:   NewText("Manage"),
		Width:    30,
		Variant:  variant.CardOutlined,
	}, epoch)

	node := card.Render(DefaultContext())
	out := node.Plain()
	for _, want := range []string{"Storage", "2 of 5 GB", "Plenty left", "Manage", "─"} {
		assert.Contains(t, out, want)
	}
	w, _ := node.Size()
	assert.Equal(t, 30, w)

	Send(card, Tap(0)...)
	assert.Equal(t, "Storage, group", card.StateDescription())
}

func TestProgressRendersPercent(t *testing.T) {
	t.Parallel()

	bar := NewProgress()
	bar.Sync(ProgressConfig{Value: 0.5, ShowPercent: true, Width: 20}, epoch)
	assert.Contains(t, bar.Render(DefaultContext()).Plain(), "50%")

	bar.Sync(ProgressConfig{Value: 1.7}, epoch)
	assert.False(t, bar.Advance(at(16*time.Millisecond)))
	assert.True(t, bar.Advance(at(5*time.Second)))
	assert.Equal(t, 1.0, bar.Frame().Fraction)
	assert.Equal(t, "progress bar, 100%", bar.StateDescription())
}

func TestProgressSegmented(t *testing.T) {
	t.Parallel()

	bar := NewProgress()
	bar.Sync(ProgressConfig{Value: 0.5, Width: 10, Variant: variant.ProgressSegmented}, epoch)
	assert.Equal(t, "▰▰▰▰▰▱▱▱▱▱", bar.Render(DefaultContext()).Plain())
}
