package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/motif/internal/config"
)

type rootFlags struct {
	configPath string
}

// rootCommand releases the resources AppContext opened once the command
// finishes, whether or not it failed.
type rootCommand struct {
	*cobra.Command
	app *AppContext
}

// Execute runs the command tree and then closes the log file.
func (r *rootCommand) Execute() error {
	err := r.Command.Execute()
	if cerr := r.app.close(); cerr != nil && err == nil {
		err = fmt.Errorf("close log file: %w", cerr)
	}
	return err
}

func newRootCmd() *rootCommand {
	flags := &rootFlags{}
	app := &AppContext{}
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:           "motif",
		Short:         "Motif renders themeable, animated terminal controls",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags.configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the showcase.
			if len(args) == 0 {
				return runShowcase(cmd, app)
			}
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML file with default settings")
	pf.String(config.KeyTheme, defaults.Theme, "Built-in theme name")
	pf.String(config.KeyThemeFile, defaults.ThemeFile, "YAML theme file layered over its base theme")
	pf.String(config.KeyLogLevel, defaults.LogLevel, "Log level (debug, info, warn, error)")
	pf.String(config.KeyLogFile, defaults.LogFile, "Write logs to this file instead of stderr")
	pf.Bool(config.KeyHumanLogs, defaults.HumanLogs, "Human-readable logs instead of JSON")
	pf.Bool(config.KeyNoHaptics, defaults.NoHaptics, "Do not ring the terminal bell on interactions")
	pf.Bool(config.KeyNoColor, defaults.NoColor, "Render without colour")

	cmd.AddCommand(newShowcaseCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newThemesCmd(app))
	cmd.AddCommand(newSettingsCmd(app))
	cmd.AddCommand(newVersionCmd())

	return &rootCommand{Command: cmd, app: app}
}
