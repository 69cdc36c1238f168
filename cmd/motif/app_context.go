package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/motif/internal/config"
	"github.com/alexisbeaulieu97/motif/internal/logger"
	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

// AppContext bundles the settings and services resolved before a command
// runs.
type AppContext struct {
	Settings config.Settings
	Tokens   theme.Tokens
	Logger   *logger.Logger

	logFile io.Closer
}

// load resolves settings for cmd from its flags, the environment and the
// optional config file, then builds the logger and theme.
func (a *AppContext) load(cmd *cobra.Command, configPath string) error {
	v := config.NewViper()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := config.MergeFile(v, configPath); err != nil {
		return newCommandError("load configuration", configPath, err, "Check the file passed to --config.")
	}

	settings, err := config.Load(v)
	if err != nil {
		return newCommandError("load configuration", "invalid settings", err, "Run `motif themes` to list theme names.")
	}

	tokens, err := settings.Tokens()
	if err != nil {
		return newCommandError("load theme", settings.ThemeFile, err, "Fix the theme file or drop --theme-file.")
	}

	out := cmd.ErrOrStderr()
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return newCommandError("open log file", settings.LogFile, err, "")
		}
		a.logFile = f
		out = f
	}

	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		HumanReadable: settings.HumanLogs,
		Writer:        out,
		Component:     "cli",
	})
	if err != nil {
		_ = a.close()
		return fmt.Errorf("create logger: %w", err)
	}

	if settings.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	a.Settings = settings
	a.Tokens = tokens
	a.Logger = log.WithFields(map[string]any{"command": cmd.Name()})
	a.Logger.Debug("settings resolved", "theme", tokens.Name(), "config", configPath)
	return nil
}

func (a *AppContext) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
