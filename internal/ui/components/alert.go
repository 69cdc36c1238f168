package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/motif/internal/ui"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

// Tone is the status an Alert reports.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneWarning
	ToneError
)

// Role is the colour role that carries the tone.
func (t Tone) Role() theme.ColorRole {
	switch t {
	case ToneSuccess:
		return theme.RoleSuccess
	case ToneWarning:
		return theme.RoleWarning
	case ToneError:
		return theme.RoleError
	default:
		return theme.RoleInfo
	}
}

// Icon is the default glyph for the tone.
func (t Tone) Icon() string {
	switch t {
	case ToneSuccess:
		return "✓"
	case ToneWarning:
		return "⚠"
	case ToneError:
		return "✗"
	default:
		return "ℹ"
	}
}

// Alert is a composite component for displaying notifications and messages.
type Alert struct {
	BaseComponent
	message string
	icon    string
	tone    Tone
	title   string
}

// NewAlert creates a new info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		tone:          ToneInfo,
		icon:          ToneInfo.Icon(),
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	role := a.tone.Role()
	message := NewText(joinIcon(a.icon, a.message)).WithAppliers(Foreground(role))

	children := []ui.Renderable{message}
	if a.title != "" {
		children = []ui.Renderable{TitleText(a.title), message}
	}

	container := NewContainer(children...).
		WithPadding(HorizontalSpacing(1)).
		WithBorder(lipgloss.RoundedBorder()).
		WithBorderRole(role)
	container.strategy = a.strategy
	container.style = a.style

	return container.ViewWithContext(ctx)
}

// WithTone sets the tone and its default icon.
func (a *Alert) WithTone(tone Tone) *Alert {
	a.tone = tone
	a.icon = tone.Icon()
	return a
}

// WithIcon sets a custom icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Tone returns the alert tone.
func (a *Alert) Tone() Tone {
	return a.tone
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithTone(ToneSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithTone(ToneWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithTone(ToneError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithTone(ToneInfo)
}
