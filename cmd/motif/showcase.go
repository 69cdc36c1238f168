package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/motif/internal/showcase"
)

func newShowcaseCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "showcase",
		Short: "Open the interactive component gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, app)
		},
	}
}

func runShowcase(cmd *cobra.Command, app *AppContext) error {
	var bell io.Writer
	if !app.Settings.NoHaptics {
		bell = cmd.ErrOrStderr()
	}

	model, err := showcase.New(showcase.Options{
		Tokens:    app.Tokens,
		NoHaptics: app.Settings.NoHaptics,
		Bell:      bell,
		Logger:    app.Logger,
	})
	if err != nil {
		return newCommandError("start showcase", "invalid options", err, "")
	}

	app.Logger.Info("showcase started", "theme", model.Theme())
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run showcase: %w", err)
	}
	if m, ok := final.(showcase.Model); ok {
		app.Logger.Info("showcase closed", "theme", m.Theme())
	}
	return nil
}
