package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved settings as YAML",
		Long:  "Config prints the settings after layering flags, MOTIF_* variables and the --config file, in a form --config accepts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Settings.YAML()
			if err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
