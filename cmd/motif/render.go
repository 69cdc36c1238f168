package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/motif/internal/config"
	"github.com/alexisbeaulieu97/motif/internal/showcase"
	"github.com/alexisbeaulieu97/motif/pkg/diff"
)

const fallbackWidth = 80

type renderOptions struct {
	plain  bool
	golden string
	update bool
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a static frame of every component",
		Long: "Render prints the showcase once at rest, without focus or key help.\n" +
			"With --golden it compares the plain frame against a file instead and fails on any difference.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, opts)
		},
	}

	cmd.Flags().Int(config.KeyWidth, 0, "Frame width in cells (default: terminal width, else 80)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Strip ANSI styling from the output")
	cmd.Flags().StringVar(&opts.golden, "golden", "", "Compare the plain frame against this file")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite the --golden file with the current frame")

	return cmd
}

func runRender(cmd *cobra.Command, app *AppContext, opts *renderOptions) error {
	if opts.update && opts.golden == "" {
		return newCommandError("render", "--update needs a golden file", errors.New("missing --golden"), "Pass --golden <file>.")
	}

	model, err := showcase.New(showcase.Options{
		Tokens:    app.Tokens,
		NoHaptics: true,
		Logger:    app.Logger,
	})
	if err != nil {
		return newCommandError("render", "invalid options", err, "")
	}

	out := cmd.OutOrStdout()
	width := renderWidth(app.Settings.Width, out)
	frame := model.Snapshot(width)
	app.Logger.Debug("frame rendered", "width", width, "theme", model.Theme())

	if opts.golden == "" {
		if opts.plain {
			frame = ansi.Strip(frame)
		}
		_, err := fmt.Fprintln(out, frame)
		return err
	}

	actual := []byte(ansi.Strip(frame) + "\n")
	if opts.update {
		if err := os.WriteFile(opts.golden, actual, 0o644); err != nil {
			return newCommandError("update golden file", opts.golden, err, "")
		}
		fmt.Fprintf(out, "Updated %s\n", opts.golden)
		return nil
	}

	expected, err := os.ReadFile(opts.golden)
	if errors.Is(err, fs.ErrNotExist) {
		return newCommandError("compare frame", opts.golden, err, "Create it with --update.")
	}
	if err != nil {
		return newCommandError("compare frame", opts.golden, err, "")
	}

	if d := diff.Unified(expected, actual, opts.golden, "render"); d != "" {
		fmt.Fprint(out, d)
		cause := fmt.Errorf("frame differs in %d lines", diff.Changed(expected, actual))
		return newCommandError("compare frame", opts.golden, cause, "Re-run with --update if the change is intended.")
	}
	fmt.Fprintf(out, "Frame matches %s\n", opts.golden)
	return nil
}

// renderWidth prefers the configured width, then the terminal behind out.
func renderWidth(configured int, out io.Writer) int {
	if configured > 0 {
		return configured
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}
