package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wycats/language-reporting/pkg/diagnostic"
	"github.com/wycats/language-reporting/pkg/emitter"
	"github.com/wycats/language-reporting/pkg/logging"
	"github.com/wycats/language-reporting/pkg/span"
	"github.com/wycats/language-reporting/pkg/theme"
	"github.com/wycats/language-reporting/pkg/ui"
)

var (
	verbosity int
	colorArg  string
	themePath string
	debugTree bool

	rootCmd = &cobra.Command{
		Use:   "report-emit",
		Short: "Render sample compiler diagnostics",
		Long: `report-emit renders a set of sample compiler diagnostics to the
terminal, demonstrating the stylesheet cascade and the source snippet
layout. Use it to preview a theme file or to inspect the render tree.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runEmit,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVar(&colorArg, "color", "auto",
		"Configure coloring of output (auto, always, ansi, never)")
	rootCmd.Flags().StringVar(&themePath, "theme", "",
		"Path to a theme file (.toml, .yaml) overriding the default styles")
	rootCmd.Flags().BoolVar(&debugTree, "debug-tree", false,
		"Dump the structural render tree before the styled output")
}

func runEmit(cmd *cobra.Command, args []string) error {
	choice, err := ui.ParseColorChoice(colorArg)
	if err != nil {
		return err
	}

	opts := emitter.Options{
		Profile:   choice.Profile(os.Stdout),
		DebugTree: debugTree,
	}

	if themePath == "" {
		if path, ok := theme.Discover("report-emit"); ok {
			themePath = path
		}
	}
	if themePath != "" {
		styles, err := theme.Load(themePath)
		if err != nil {
			return err
		}
		opts.Styles = styles
	}

	files, diagnostics := sampleDiagnostics()

	for _, d := range diagnostics {
		if err := emitter.Emit(os.Stdout, files, d, emitter.DefaultConfig{}, opts); err != nil {
			return err
		}
	}
	return nil
}

// sampleDiagnostics builds the canonical demo input: a type error with a
// primary and a secondary label, and an unused-result warning.
func sampleDiagnostics() (*span.SimpleFiles, []*diagnostic.Diagnostic) {
	files := span.NewSimpleFiles()
	file := files.Add("test", "(define test 123)\n(+ test \"\")\n()\n")

	strStart, err := files.ByteIndex(file, 2, 9)
	logging.Must(err, "sample source changed shape")
	lineStart, err := files.ByteIndex(file, 2, 1)
	logging.Must(err, "sample source changed shape")

	typeError := diagnostic.NewError("Unexpected type in `+` application").
		WithCode("E0001").
		WithLabel(diagnostic.NewPrimaryLabel(files.Span(file, strStart, strStart+2)).
			WithMessage("Expected integer but got string")).
		WithLabel(diagnostic.NewSecondaryLabel(files.Span(file, strStart, strStart+2)).
			WithMessage("Expected integer but got string"))

	unusedResult := diagnostic.NewWarning("`+` function has no effect unless its result is used").
		WithLabel(diagnostic.NewPrimaryLabel(files.Span(file, lineStart, lineStart+11)))

	praise := diagnostic.NewHelp("Great job!")

	return files, []*diagnostic.Diagnostic{typeError, unusedResult, praise}
}
