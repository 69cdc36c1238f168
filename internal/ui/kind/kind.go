// Package kind enumerates the component kinds shared by the theme, variant
// and component packages.
package kind

import "fmt"

// Kind identifies a component family.
type Kind int

const (
	Toggle Kind = iota
	ToggleGroup
	Button
	IconButton
	Chip
	Checkbox
	Radio
	Slider
	Rating
	Badge
	Card
	Progress
	Divider
	Tag
)

// Count is the number of component kinds.
const Count = int(Tag) + 1

var names = [Count]string{
	Toggle:      "toggle",
	ToggleGroup: "toggle-group",
	Button:      "button",
	IconButton:  "icon-button",
	Chip:        "chip",
	Checkbox:    "checkbox",
	Radio:       "radio",
	Slider:      "slider",
	Rating:      "rating",
	Badge:       "badge",
	Card:        "card",
	Progress:    "progress",
	Divider:     "divider",
	Tag:         "tag",
}

// All returns every kind in declaration order.
func All() []Kind {
	out := make([]Kind, Count)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < Count
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return names[k]
}

// Parse resolves a kebab-case kind name.
func Parse(name string) (Kind, bool) {
	for i, n := range names {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}
