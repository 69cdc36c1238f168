package theme

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	motiferrors "github.com/alexisbeaulieu97/motif/pkg/errors"
)

// File is the on-disk form of a theme: a named partial override layered on
// top of a built-in theme.
//
//	name: ocean
//	extends: dark
//	colors:
//	  primary: {light: "#0ea5e9", dark: "#38bdf8"}
//	sizes:
//	  toggle:
//	    large: {primary: 10, secondary: 1, inner: 4}
//	typography:
//	  title-large: {bold: true, underline: true, color: primary}
type File struct {
	Name       string                         `yaml:"name" validate:"required,max=64"`
	Extends    string                         `yaml:"extends,omitempty" validate:"omitempty,theme_name"`
	Colors     map[string]FileColor           `yaml:"colors,omitempty"`
	Sizes      map[string]map[string]FileSize `yaml:"sizes,omitempty"`
	Typography map[string]FileType            `yaml:"typography,omitempty"`
}

// FileColor is an adaptive colour pair. Dark falls back to Light.
type FileColor struct {
	Light string `yaml:"light" validate:"required,hexcolor"`
	Dark  string `yaml:"dark,omitempty" validate:"omitempty,hexcolor"`
}

// FileSize is a size triple in terminal cells.
type FileSize struct {
	Primary   int `yaml:"primary" validate:"min=0,max=200"`
	Secondary int `yaml:"secondary" validate:"min=1,max=50"`
	Inner     int `yaml:"inner" validate:"min=0,max=50"`
}

// FileType describes a typography role as text attributes plus an optional
// colour role for the foreground.
type FileType struct {
	Bold      bool   `yaml:"bold,omitempty"`
	Italic    bool   `yaml:"italic,omitempty"`
	Underline bool   `yaml:"underline,omitempty"`
	Faint     bool   `yaml:"faint,omitempty"`
	Color     string `yaml:"color,omitempty" validate:"omitempty,color_role"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := builtins[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("color_role", func(fl validator.FieldLevel) bool {
			_, ok := ParseColorRole(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ParseFile reads and validates a theme file.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, motiferrors.NewParseError(path, 0, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, motiferrors.NewParseError(path, extractLine(err), err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}

	return &file, nil
}

// LoadFile parses a theme file and resolves it against the theme it extends.
func LoadFile(path string) (Tokens, error) {
	file, err := ParseFile(path)
	if err != nil {
		return Tokens{}, err
	}
	return file.Tokens(), nil
}

// Validate checks schema constraints and role names. Map keys are checked
// in sorted order so the first reported error is stable.
func (f *File) Validate() error {
	if f == nil {
		return motiferrors.NewValidationError("theme", "theme file is empty", nil)
	}

	v := validatorInstance()
	if err := v.Struct(f); err != nil {
		return convertValidationError("", err)
	}

	for _, name := range sortedKeys(f.Colors) {
		if _, ok := ParseColorRole(name); !ok {
			return motiferrors.NewValidationError("colors."+name, fmt.Sprintf("unknown colour role %q", name), nil)
		}
		if err := v.Struct(f.Colors[name]); err != nil {
			return convertValidationError("colors."+name, err)
		}
	}

	for _, kindName := range sortedKeys(f.Sizes) {
		if _, ok := kind.Parse(kindName); !ok {
			return motiferrors.NewValidationError("sizes."+kindName, fmt.Sprintf("unknown component kind %q", kindName), nil)
		}
		classes := f.Sizes[kindName]
		for _, className := range sortedKeys(classes) {
			field := "sizes." + kindName + "." + className
			if _, ok := ParseSizeClass(className); !ok {
				return motiferrors.NewValidationError(field, fmt.Sprintf("unknown size class %q", className), nil)
			}
			if err := v.Struct(classes[className]); err != nil {
				return convertValidationError(field, err)
			}
		}
	}

	for _, name := range sortedKeys(f.Typography) {
		if _, ok := ParseTypeRole(name); !ok {
			return motiferrors.NewValidationError("typography."+name, fmt.Sprintf("unknown typography role %q", name), nil)
		}
		if err := v.Struct(f.Typography[name]); err != nil {
			return convertValidationError("typography."+name, err)
		}
	}

	return nil
}

// Override converts the file into a partial token set. base supplies the
// colours referenced by typography entries.
func (f *File) Override(base Tokens) Override {
	o := Override{Name: f.Name}

	if len(f.Colors) > 0 {
		o.Colors = make(map[ColorRole]lipgloss.AdaptiveColor, len(f.Colors))
		for name, c := range f.Colors {
			role, _ := ParseColorRole(name)
			dark := c.Dark
			if dark == "" {
				dark = c.Light
			}
			o.Colors[role] = lipgloss.AdaptiveColor{Light: c.Light, Dark: dark}
		}
	}

	if len(f.Sizes) > 0 {
		o.Sizes = make(map[SizeKey]Dimensions)
		for kindName, classes := range f.Sizes {
			k, _ := kind.Parse(kindName)
			for className, size := range classes {
				class, _ := ParseSizeClass(className)
				o.Sizes[SizeKey{Kind: k, Size: class}] = Dimensions(size)
			}
		}
	}

	if len(f.Typography) > 0 {
		colours := base.With(Override{Colors: o.Colors})
		o.Typography = make(map[TypeRole]lipgloss.Style, len(f.Typography))
		for name, spec := range f.Typography {
			role, _ := ParseTypeRole(name)
			style := lipgloss.NewStyle().
				Bold(spec.Bold).
				Italic(spec.Italic).
				Underline(spec.Underline).
				Faint(spec.Faint)
			colourRole := RoleTextPrimary
			if spec.Color != "" {
				colourRole, _ = ParseColorRole(spec.Color)
			}
			o.Typography[role] = style.Foreground(colours.Color(colourRole))
		}
	}

	return o
}

// Tokens resolves the file against the built-in theme it extends, or the
// default theme when extends is empty.
func (f *File) Tokens() Tokens {
	base := Default()
	if f.Extends != "" {
		if named, ok := Named(f.Extends); ok {
			base = named
		}
	}
	return base.With(f.Override(base))
}

// Export describes every colour and size of t as a theme file that loads
// back to the same values. Typography is left out; styles have no file form
// beyond the attributes a file can set.
func Export(t Tokens) *File {
	f := &File{
		Name:   t.Name(),
		Colors: make(map[string]FileColor, colorRoleCount),
		Sizes:  make(map[string]map[string]FileSize, kind.Count),
	}
	for _, role := range ColorRoles() {
		c := t.Color(role)
		f.Colors[role.String()] = FileColor{Light: c.Light, Dark: c.Dark}
	}
	for _, k := range kind.All() {
		classes := make(map[string]FileSize, sizeClassCount)
		for _, class := range []SizeClass{SizeSmall, SizeMedium, SizeLarge} {
			classes[class.String()] = FileSize(t.Size(k, class))
		}
		f.Sizes[k.String()] = classes
	}
	return f
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func convertValidationError(prefix string, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fe.Field()
		if prefix != "" {
			field = prefix + "." + field
		}
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return motiferrors.NewValidationError(field, msg, err)
	}
	return motiferrors.NewValidationError(prefix, err.Error(), err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
