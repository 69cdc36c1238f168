package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
)

func newThemesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "themes",
		Aliases: []string{"theme"},
		Short:   "List built-in themes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			active := app.Tokens.Name()
			for _, name := range theme.Names() {
				mark := " "
				if name == active {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\n", mark, name)
			}
			return nil
		},
	}

	cmd.AddCommand(newThemesDumpCmd(app))
	return cmd
}

func newThemesDumpCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [name]",
		Short: "Print a theme as an editable YAML theme file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := app.Tokens
			if len(args) == 1 {
				named, ok := theme.Named(args[0])
				if !ok {
					return newCommandError("dump theme", args[0], fmt.Errorf("unknown theme %q", args[0]), "Run `motif themes` to list theme names.")
				}
				tokens = named
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(theme.Export(tokens)); err != nil {
				return fmt.Errorf("encode theme: %w", err)
			}
			return enc.Close()
		},
	}
}
