// Package variant holds the closed set of style variants for every component
// kind and the rendering recipe each one resolves to.
//
// Each kind has its own enum type, so a Button variant cannot be handed to a
// Toggle. Recipes live in positional arrays indexed by the enum; the guards
// next to each table stop the build when a table has more or fewer entries
// than its enum.
package variant

import (
	"fmt"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
)

// Variant is implemented only by the per-kind enums in this package.
type Variant interface {
	fmt.Stringer
	Kind() kind.Kind
	recipe() Recipe
}

// RecipeFor returns the rendering recipe for v. Out-of-range enum values
// resolve to the kind's default variant.
func RecipeFor(v Variant) Recipe {
	return v.recipe()
}

// Default returns the zero-value variant of k.
func Default(k kind.Kind) Variant {
	if vs := Of(k); len(vs) > 0 {
		return vs[0]
	}
	return TogglePill
}

// Of lists the variants of k in declaration order.
func Of(k kind.Kind) []Variant {
	switch k {
	case kind.Toggle:
		return boxed(toggleCount)
	case kind.ToggleGroup:
		return boxed(toggleGroupCount)
	case kind.Button:
		return boxed(buttonCount)
	case kind.IconButton:
		return boxed(iconButtonCount)
	case kind.Chip:
		return boxed(chipCount)
	case kind.Checkbox:
		return boxed(checkboxCount)
	case kind.Radio:
		return boxed(radioCount)
	case kind.Slider:
		return boxed(sliderCount)
	case kind.Rating:
		return boxed(ratingCount)
	case kind.Badge:
		return boxed(badgeCount)
	case kind.Card:
		return boxed(cardCount)
	case kind.Progress:
		return boxed(progressCount)
	case kind.Divider:
		return boxed(dividerCount)
	case kind.Tag:
		return boxed(tagCount)
	}
	return nil
}

// All enumerates every (kind, variant) pair.
func All() []Variant {
	var out []Variant
	for _, k := range kind.All() {
		out = append(out, Of(k)...)
	}
	return out
}

// Parse resolves a variant name within kind k.
func Parse(k kind.Kind, name string) (Variant, bool) {
	for _, v := range Of(k) {
		if v.String() == name {
			return v, true
		}
	}
	return nil, false
}

// Names lists the variant names of k.
func Names(k kind.Kind) []string {
	vs := Of(k)
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

type enum interface {
	Variant
	~int
}

func boxed[E enum](count E) []Variant {
	out := make([]Variant, int(count))
	for i := range out {
		out[i] = E(i)
	}
	return out
}

func lookup[E ~int, T any](table []T, e E) T {
	if int(e) < 0 || int(e) >= len(table) {
		return table[0]
	}
	return table[e]
}

func nameOf[E ~int](names []string, e E) string {
	if int(e) < 0 || int(e) >= len(names) {
		return fmt.Sprintf("%T(%d)", e, int(e))
	}
	return names[e]
}
