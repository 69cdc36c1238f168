// Package showcase hosts one of every component in a Bubble Tea program.
// The model owns every logical value; components only propose changes
// through their callbacks and the model feeds the result back with Sync.
package showcase

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/motif/internal/logger"
	"github.com/alexisbeaulieu97/motif/internal/ui"
	"github.com/alexisbeaulieu97/motif/internal/ui/components"
	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	"github.com/alexisbeaulieu97/motif/internal/ui/motion"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	"github.com/alexisbeaulieu97/motif/internal/ui/variant"
	motiferrors "github.com/alexisbeaulieu97/motif/pkg/errors"
)

const (
	frameInterval  = time.Second / 60
	uploadDuration = 2 * time.Second
	sliderWidth    = 24
	maxFavorites   = 9
)

var (
	periods  = []string{"Day", "Week", "Month"}
	contacts = []string{"Email", "SMS"}
	seedTags = []string{"go", "tui", "motion"}
)

// Options configures a showcase model.
type Options struct {
	// Theme is a built-in theme name. Empty means the default theme.
	Theme string
	// Tokens replaces the built-in theme when set, for themes loaded from a
	// file.
	Tokens theme.Tokens
	// NoHaptics disables haptic signals on every component.
	NoHaptics bool
	// Bell receives the BEL byte for haptic signals. Nil is silent.
	Bell io.Writer
	// Logger receives proposals and theme switches at debug level.
	Logger *logger.Logger
	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

// state is the logical value of every control.
type state struct {
	wifi        bool
	period      int
	uploading   bool
	uploadStart time.Time
	upload      float64
	favorites   int
	unread      bool
	agree       bool
	contact     int
	volume      float64
	rating      float64
	opened      int
	tags        []string
	disabled    bool
	variants    [kind.Count]int
}

type widgets struct {
	toggle   *components.Toggle
	group    *components.ToggleGroup
	button   *components.Button
	favorite *badged
	chip     *components.Chip
	checkbox *components.Checkbox
	radios   *row
	slider   *components.Slider
	rating   *components.Rating
	card     *components.Card
	progress *components.Progress
	divider  *components.Divider
	tags     *row
	tagSet   map[string]*components.Tag
}

// gesture is a mouse press in progress.
type gesture struct {
	active bool
	item   int
	part   int
	// x is the pointer column of the last event, for drag deltas.
	x int
}

// Model is the Bubble Tea model of the showcase.
type Model struct {
	keys      keyMap
	help      help.Model
	log       *logger.Logger
	now       func() time.Time
	bell      components.Haptics
	noHaptics bool

	themeName string
	tokens    theme.Tokens
	backdrop  motion.Color

	s      *state
	w      *widgets
	items  []item
	focus  int
	cursor []int
	press  gesture

	width    int
	height   int
	ticking  bool
	quitting bool
}

// New builds a showcase with every component mounted and at rest.
func New(opts Options) (Model, error) {
	tokens := opts.Tokens
	if tokens.IsZero() {
		name := opts.Theme
		if name == "" {
			name = theme.Default().Name()
		}
		named, ok := theme.Named(name)
		if !ok {
			return Model{}, motiferrors.NewValidationError("theme",
				fmt.Sprintf("unknown theme %q (available: %s)", name, strings.Join(theme.Names(), ", ")), nil)
		}
		tokens = named
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		keys:      defaultKeyMap(),
		help:      help.New(),
		log:       log.WithFields(map[string]any{"component": "showcase"}),
		now:       now,
		bell:      NewBell(opts.Bell),
		noHaptics: opts.NoHaptics,
		themeName: tokens.Name(),
		tokens:    tokens,
		backdrop:  motion.NewColor(tokens.Color(theme.RoleBackground)),
		s: &state{
			period: 1,
			volume: 40,
			rating: 3.5,
			tags:   append([]string(nil), seedTags...),
		},
	}
	m.mount()
	m.sync(now())
	return m, nil
}

func (m *Model) mount() {
	w := &widgets{
		toggle:   components.NewToggle().WithHaptics(m.bell),
		group:    components.NewToggleGroup().WithHaptics(m.bell),
		button:   components.NewButton(),
		favorite: &badged{button: components.NewIconButton(), badge: components.NewBadge()},
		chip:     components.NewChip().WithHaptics(m.bell),
		checkbox: components.NewCheckbox().WithHaptics(m.bell),
		slider:   components.NewSlider().WithHaptics(m.bell).WithTokens(m.tokens),
		rating:   components.NewRating(),
		card:     components.NewCard(),
		progress: components.NewProgress(),
		divider:  components.NewDivider(),
		radios:   &row{role: "showcase.radios"},
		tags:     &row{role: "showcase.tags"},
		tagSet:   make(map[string]*components.Tag),
	}
	for range contacts {
		w.radios.members = append(w.radios.members, components.NewRadio().WithHaptics(m.bell))
	}
	m.w = w
	s := m.s

	m.items = []item{
		{title: "Toggle", kind: kind.Toggle, w: w.toggle, h: w.toggle},
		{
			title: "Toggle group", kind: kind.ToggleGroup, w: w.group, h: w.group,
			partRole: "toggle-group.segment",
			parts:    func() int { return len(periods) },
		},
		{title: "Button", kind: kind.Button, w: w.button, h: w.button},
		{title: "Icon button", kind: kind.IconButton, w: w.favorite, h: w.favorite},
		{title: "Chip", kind: kind.Chip, w: w.chip, h: w.chip},
		{title: "Checkbox", kind: kind.Checkbox, w: w.checkbox, h: w.checkbox},
		{
			title: "Radio", kind: kind.Radio, w: w.radios, h: w.radios,
			partRole:    "radio",
			parts:       func() int { return len(contacts) },
			pointerPart: func(i, _, _ int) int { return rowPart(i, 0) },
			keyPart:     func(c int) int { return rowPart(c, 0) },
		},
		{title: "Slider", kind: kind.Slider, w: w.slider, h: w.slider},
		{
			title: "Rating", kind: kind.Rating, w: w.rating, h: w.rating,
			partRole: "rating.star",
			parts:    func() int { return components.DefaultMaxRating },
		},
		{title: "Divider", kind: kind.Divider, w: w.divider},
		{title: "Progress", kind: kind.Progress, w: w.progress},
		{title: "Card", kind: kind.Card, w: w.card, h: w.card, scope: cardScope},
		{
			title: "Tags", kind: kind.Tag, w: w.tags, h: w.tags,
			partRole: "tag",
			parts:    func() int { return len(s.tags) },
			pointerPart: func(i, dx, width int) int {
				if dx >= width-2 {
					return rowPart(i, components.TagClose)
				}
				return rowPart(i, components.TagBody)
			},
			keyPart: func(c int) int { return rowPart(c, components.TagClose) },
		},
	}
	m.cursor = make([]int, len(m.items))
	m.focus = m.nextFocusable(-1, 1)
}

// sync pushes the logical state into every component at now.
func (m *Model) sync(now time.Time) {
	s, w, log := m.s, m.w, m.log
	quiet := m.noHaptics
	if s.uploading && s.uploadStart.IsZero() {
		s.uploadStart = now
	}

	w.toggle.Sync(components.ToggleConfig{
		On:             s.wifi,
		OnChange:       func(on bool) { log.Debug("proposal", "control", "toggle", "value", on); s.wifi = on },
		Variant:        pick[variant.Toggle](s, kind.Toggle),
		Label:          "Wi-Fi",
		Disabled:       s.disabled,
		DisableHaptics: quiet,
	}, now)

	w.group.Sync(components.ToggleGroupConfig{
		Options:        periods,
		Selected:       s.period,
		OnSelect:       func(i int) { log.Debug("proposal", "control", "toggle-group", "value", i); s.period = i },
		Variant:        pick[variant.ToggleGroup](s, kind.ToggleGroup),
		Disabled:       s.disabled,
		DisableHaptics: quiet,
	}, now)

	label := "Upload"
	if s.uploading {
		label = "Uploading"
	}
	w.button.Sync(components.ButtonConfig{
		Label: label,
		Icon:  "↑",
		OnClick: func() {
			log.Debug("proposal", "control", "button", "value", "upload")
			s.uploading, s.uploadStart, s.upload = true, time.Time{}, 0
		},
		Variant:  pick[variant.Button](s, kind.Button),
		Loading:  s.uploading,
		Disabled: s.disabled,
	}, now)

	w.favorite.button.Sync(components.IconButtonConfig{
		Icon:  "♥",
		Label: "Favorite",
		OnClick: func() {
			log.Debug("proposal", "control", "icon-button", "value", s.favorites+1)
			s.favorites++
		},
		Variant:  pick[variant.IconButton](s, kind.IconButton),
		Disabled: s.disabled,
	}, now)
	w.favorite.badge.Sync(components.BadgeConfig{
		Count:   s.favorites,
		Max:     maxFavorites,
		Variant: pick[variant.Badge](s, kind.Badge),
	}, now)

	w.chip.Sync(components.ChipConfig{
		Label:          "Unread only",
		Selected:       s.unread,
		OnChange:       func(v bool) { log.Debug("proposal", "control", "chip", "value", v); s.unread = v },
		Variant:        pick[variant.Chip](s, kind.Chip),
		Disabled:       s.disabled,
		DisableHaptics: quiet,
	}, now)

	w.checkbox.Sync(components.CheckboxConfig{
		Checked:        s.agree,
		OnChange:       func(v bool) { log.Debug("proposal", "control", "checkbox", "value", v); s.agree = v },
		Variant:        pick[variant.Checkbox](s, kind.Checkbox),
		Label:          "Accept terms",
		Disabled:       s.disabled,
		DisableHaptics: quiet,
	}, now)

	for i, member := range w.radios.members {
		radio := member.(*components.Radio)
		radio.Sync(components.RadioConfig{
			Selected: s.contact == i,
			OnClick: func() {
				log.Debug("proposal", "control", "radio", "value", contacts[i])
				s.contact = i
			},
			Variant:        pick[variant.Radio](s, kind.Radio),
			Label:          contacts[i],
			Disabled:       s.disabled,
			DisableHaptics: quiet,
		}, now)
	}

	w.slider.Sync(components.SliderConfig{
		Value:          s.volume,
		Min:            0,
		Max:            100,
		Steps:          10,
		OnChange:       func(v float64) { log.Debug("proposal", "control", "slider", "value", v); s.volume = v },
		Variant:        pick[variant.Slider](s, kind.Slider),
		Width:          sliderWidth,
		Label:          "Volume",
		ShowValue:      true,
		Disabled:       s.disabled,
		DisableHaptics: quiet,
	}, now)

	w.rating.Sync(components.RatingConfig{
		Value:     s.rating,
		AllowHalf: true,
		OnChange:  func(v float64) { log.Debug("proposal", "control", "rating", "value", v); s.rating = v },
		Variant:   pick[variant.Rating](s, kind.Rating),
		Label:     "Rating",
		Disabled:  s.disabled,
	}, now)

	w.divider.Sync(components.DividerConfig{
		Label:   "display",
		Variant: pick[variant.Divider](s, kind.Divider),
	}, now)

	w.progress.Sync(components.ProgressConfig{
		Value:       s.upload,
		Variant:     pick[variant.Progress](s, kind.Progress),
		Label:       "Upload",
		ShowPercent: true,
	}, now)

	w.card.Sync(components.CardConfig{
		Title:    "Release notes",
		Subtitle: "motif",
		Content:  []ui.Renderable{components.NewText(openedText(s.opened))},
		OnClick: func() {
			log.Debug("proposal", "control", "card", "value", s.opened+1)
			s.opened++
		},
		Variant:  pick[variant.Card](s, kind.Card),
		Width:    36,
		Disabled: s.disabled,
	}, now)

	m.syncTags(now)
}

func (m *Model) syncTags(now time.Time) {
	s, w, log := m.s, m.w, m.log

	live := make(map[string]bool, len(s.tags))
	members := make([]member, 0, len(s.tags))
	for _, name := range s.tags {
		tag, ok := w.tagSet[name]
		if !ok {
			tag = components.NewTag()
			w.tagSet[name] = tag
		}
		live[name] = true
		tag.Sync(components.TagConfig{
			Label:    name,
			Closable: true,
			OnClose: func() {
				log.Debug("proposal", "control", "tag", "value", "remove "+name)
				s.tags = without(s.tags, name)
			},
			OnClick:  func() { log.Debug("proposal", "control", "tag", "value", "open "+name) },
			Variant:  pick[variant.Tag](s, kind.Tag),
			Disabled: s.disabled,
		}, now)
		members = append(members, tag)
	}
	for name := range w.tagSet {
		if !live[name] {
			delete(w.tagSet, name)
		}
	}
	w.tags.members = members
}

// advance steps every component and the host's own animations to now and
// reports whether everything is at rest.
func (m *Model) advance(now time.Time) bool {
	rest := true
	if m.s.uploading {
		m.s.upload = min(float64(now.Sub(m.s.uploadStart))/float64(uploadDuration), 1)
		if m.s.upload >= 1 {
			m.s.uploading = false
		}
		m.sync(now)
		rest = false
	}
	for _, it := range m.items {
		if !it.w.Advance(now) {
			rest = false
		}
	}
	var settled bool
	m.backdrop, settled = m.backdrop.Advance(now)
	return rest && settled
}

// cycleTheme switches to the next built-in theme and crossfades the
// backdrop.
func (m *Model) cycleTheme(now time.Time) {
	next := theme.Next(m.themeName)
	tokens, ok := theme.Named(next)
	if !ok {
		return
	}
	m.log.Debug("theme switched", "from", m.themeName, "to", next)
	m.themeName = next
	m.tokens = tokens
	m.w.slider.WithTokens(tokens)
	m.backdrop = m.backdrop.Animate(tokens.Color(theme.RoleBackground), motion.PolicyFor(motion.Tint, false), now)
}

func (m *Model) cycleVariant(k kind.Kind) {
	vs := variant.Of(k)
	if len(vs) == 0 {
		return
	}
	m.s.variants[k]++
	if k == kind.IconButton {
		m.s.variants[kind.Badge]++
	}
	m.log.Debug("variant switched", "kind", k.String(), "variant", vs[m.s.variants[k]%len(vs)].String())
}

func (m *Model) nextFocusable(from, dir int) int {
	n := len(m.items)
	for i := 1; i <= n; i++ {
		idx := ((from+dir*i)%n + n) % n
		if m.items[idx].focusable() {
			return idx
		}
	}
	return -1
}

// Theme returns the name of the active theme.
func (m Model) Theme() string {
	return m.themeName
}

// Focused returns the title of the focused row.
func (m Model) Focused() string {
	if m.focus < 0 {
		return ""
	}
	return m.items[m.focus].title
}

// Describe returns the assistive description of every row.
func (m Model) Describe() []string {
	out := make([]string, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it.title+": "+it.w.StateDescription())
	}
	return out
}

// Animating reports whether a frame loop is running.
func (m Model) Animating() bool {
	return m.ticking
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func pick[T variant.Variant](s *state, k kind.Kind) T {
	var zero T
	vs := variant.Of(k)
	if len(vs) == 0 {
		return zero
	}
	v, ok := vs[s.variants[k]%len(vs)].(T)
	if !ok {
		return zero
	}
	return v
}

func openedText(n int) string {
	switch n {
	case 0:
		return "Press to open."
	case 1:
		return "Opened once."
	default:
		return fmt.Sprintf("Opened %d times.", n)
	}
}

func without(list []string, name string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != name {
			out = append(out, v)
		}
	}
	return out
}
