package theme

import "sort"

var builtins = map[string]func() Tokens{
	"light":         Light,
	"dark":          Dark,
	"high-contrast": HighContrast,
}

// Named returns a built-in theme by name.
func Named(name string) (Tokens, bool) {
	build, ok := builtins[name]
	if !ok {
		return Tokens{}, false
	}
	return build(), true
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the built-in theme name following current, wrapping around.
// Unknown names start from the first theme.
func Next(current string) string {
	names := Names()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
