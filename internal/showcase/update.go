package showcase

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/motif/internal/ui/components"
)

// frameMsg drives one animation frame.
type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case frameMsg:
		if m.advance(time.Time(msg)) {
			m.ticking = false
			return m, nil
		}
		return m, frame()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme(now)
	case key.Matches(msg, m.keys.Disable):
		m.s.disabled = !m.s.disabled
		m.log.Debug("disabled toggled", "disabled", m.s.disabled)
	case key.Matches(msg, m.keys.Variant):
		if it, ok := m.focused(); ok {
			m.cycleVariant(it.kind)
		}
	case key.Matches(msg, m.keys.Activate):
		it, ok := m.focused()
		if !ok {
			return m, nil
		}
		components.Send(it.h, components.Tap(m.keyPart(it))...)
	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Right):
		m.adjust(1)
	default:
		return m, nil
	}

	m.sync(now)
	return m, m.animate(now)
}

// adjust drags the focused slider by one step or moves the part cursor of a
// multi-part row.
func (m *Model) adjust(dir int) {
	it, ok := m.focused()
	if !ok {
		return
	}
	if it.h == m.w.slider {
		// One step of a ten step slider on a sliderWidth track.
		dx := float64(dir) * float64(sliderWidth) / 10
		components.Send(it.h, components.Down(0), components.Move(dx), components.Up(0))
		return
	}
	n := it.partCount()
	m.cursor[m.focus] = min(max(m.cursor[m.focus]+dir, 0), n-1)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		idx, part, ok := m.hit(msg.X, msg.Y)
		if !ok || !m.items[idx].focusable() {
			return m, nil
		}
		m.focus = idx
		m.press = gesture{active: true, item: idx, part: part, x: msg.X}
		m.items[idx].h.Handle(components.Down(part))
	case tea.MouseActionMotion:
		if !m.press.active {
			return m, nil
		}
		dx := msg.X - m.press.x
		if dx == 0 {
			return m, nil
		}
		m.press.x = msg.X
		m.items[m.press.item].h.Handle(components.Move(float64(dx)))
	case tea.MouseActionRelease:
		if !m.press.active {
			return m, nil
		}
		h := m.items[m.press.item].h
		idx, part, ok := m.hit(msg.X, msg.Y)
		if ok && idx == m.press.item {
			h.Handle(components.Up(part))
		} else {
			h.Handle(components.UpOutside())
		}
		m.press = gesture{}
	default:
		return m, nil
	}

	m.sync(now)
	return m, m.animate(now)
}

// animate starts the frame loop when something is moving and no loop is
// running yet.
func (m *Model) animate(now time.Time) tea.Cmd {
	if m.ticking || m.advance(now) {
		return nil
	}
	m.ticking = true
	return frame()
}

func (m *Model) moveFocus(dir int) {
	if next := m.nextFocusable(m.focus, dir); next >= 0 {
		m.focus = next
		m.log.Debug("focus moved", "row", m.items[next].title)
	}
}

func (m Model) focused() (item, bool) {
	if m.focus < 0 || m.focus >= len(m.items) {
		return item{}, false
	}
	it := m.items[m.focus]
	return it, it.focusable()
}

// keyPart is the Event.Part a keyboard press on the focused row targets.
func (m Model) keyPart(it item) int {
	cursor := min(m.cursor[m.focus], it.partCount()-1)
	if it.keyPart != nil {
		return it.keyPart(cursor)
	}
	if it.partRole == "" {
		return 0
	}
	return cursor
}
