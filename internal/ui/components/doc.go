// Package components provides themeable, animated terminal controls and the
// layout primitives that arrange them.
//
// # Controlled components
//
// Every interactive control is controlled: the caller owns its logical value
// and hands it in through Sync. Input never changes that value directly;
// it only proposes a new one through the config's callback, and the control
// moves once the caller syncs the accepted value back.
//
//	toggle := components.NewToggle()
//	toggle.Sync(components.ToggleConfig{
//		On:       enabled,
//		OnChange: func(on bool) { enabled = on },
//	}, now)
//	components.Send(toggle, components.Tap(0)...)
//	toggle.Sync(components.ToggleConfig{On: enabled}, now)
//
// The first Sync places every animated value at its target. Later syncs
// animate toward new targets using the policy for each property, and
// Advance steps them to a given instant, returning true once everything is
// at rest. Frame exposes the animated values and Render turns a frame into a
// paint.Node. The package-level RenderX functions are pure, so a frame can
// be drawn without a live control.
//
// Disabled controls are drawn at DisabledAlpha and never call back.
//
// # Theming
//
// Colours, sizes and typography come from the theme.Tokens carried by a
// RenderContext. The variant recipe picks which roles a control draws with,
// and Colors overrides individual roles for a single control.
//
//	ctx := components.DefaultContext().WithTheme(theme.Dark())
//	out := toggle.ViewWithContext(ctx)
//
// # Layout
//
// Stack, Container, Panel, Card and Header compose any ui.Renderable. Style
// modifiers such as Background, Foreground and Border resolve against the
// same tokens:
//
//	panel := components.NewPanel(toggle, slider).
//		WithTitle("Controls").
//		WithAppliers(components.Background(theme.RoleSurface, theme.RoleTextPrimary))
package components
