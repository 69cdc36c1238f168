// Package config resolves process settings for the motif CLI from flags,
// MOTIF_* environment variables and an optional YAML file, in that order
// of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	motiferrors "github.com/alexisbeaulieu97/motif/pkg/errors"
)

const envPrefix = "MOTIF"

// Setting keys. Flags use the same names.
const (
	KeyTheme     = "theme"
	KeyThemeFile = "theme-file"
	KeyLogLevel  = "log-level"
	KeyLogFile   = "log-file"
	KeyHumanLogs = "human-logs"
	KeyNoHaptics = "no-haptics"
	KeyNoColor   = "no-color"
	KeyWidth     = "width"
)

// Settings is the resolved process configuration.
type Settings struct {
	Theme     string `yaml:"theme" validate:"required,theme_name"`
	ThemeFile string `yaml:"theme-file,omitempty" validate:"omitempty,yaml_path"`
	LogLevel  string `yaml:"log-level" validate:"required,log_level"`
	// LogFile receives log entries instead of stderr, which the showcase
	// needs because it owns the terminal.
	LogFile   string `yaml:"log-file,omitempty"`
	HumanLogs bool   `yaml:"human-logs"`
	NoHaptics bool   `yaml:"no-haptics"`
	NoColor   bool   `yaml:"no-color"`
	// Width fixes the render width. Zero asks the terminal.
	Width int `yaml:"width,omitempty" validate:"gte=0,lte=1000"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		Theme:     theme.Default().Name(),
		LogLevel:  "warn",
		HumanLogs: true,
	}
}

// NewViper returns a viper instance with defaults and the MOTIF_ environment
// bound. MOTIF_THEME_FILE maps onto theme-file.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyThemeFile, d.ThemeFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyHumanLogs, d.HumanLogs)
	v.SetDefault(KeyNoHaptics, d.NoHaptics)
	v.SetDefault(KeyNoColor, d.NoColor)
	v.SetDefault(KeyWidth, d.Width)
}

// MergeFile layers a YAML config file under flags and environment. An empty
// path or an empty file changes nothing; a named file that is missing or
// malformed is a ParseError.
func MergeFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return motiferrors.NewParseError(path, 0, err)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return motiferrors.NewParseError(path, 0, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return motiferrors.NewParseError(path, 0, err)
	}
	return nil
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Theme:     strings.TrimSpace(v.GetString(KeyTheme)),
		ThemeFile: strings.TrimSpace(v.GetString(KeyThemeFile)),
		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFile:   strings.TrimSpace(v.GetString(KeyLogFile)),
		HumanLogs: v.GetBool(KeyHumanLogs),
		NoHaptics: v.GetBool(KeyNoHaptics),
		NoColor:   v.GetBool(KeyNoColor),
		Width:     v.GetInt(KeyWidth),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks field values against their tags.
func (s Settings) Validate() error {
	return convertValidationError(validatorInstance().Struct(s))
}

// Tokens resolves the theme the settings select. A theme file overrides the
// named theme it extends.
func (s Settings) Tokens() (theme.Tokens, error) {
	if s.ThemeFile != "" {
		tokens, err := theme.LoadFile(s.ThemeFile)
		if err != nil {
			return theme.Tokens{}, fmt.Errorf("load theme file: %w", err)
		}
		return tokens, nil
	}
	tokens, ok := theme.Named(s.Theme)
	if !ok {
		return theme.Tokens{}, motiferrors.NewValidationError(KeyTheme, fmt.Sprintf("unknown theme %q", s.Theme), nil)
	}
	return tokens, nil
}

// YAML renders the settings as a config file body.
func (s Settings) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// keyFor maps a struct field name onto its setting key.
func keyFor(field string) string {
	switch field {
	case "Theme":
		return KeyTheme
	case "ThemeFile":
		return KeyThemeFile
	case "LogLevel":
		return KeyLogLevel
	case "LogFile":
		return KeyLogFile
	case "Width":
		return KeyWidth
	default:
		return strings.ToLower(field)
	}
}
