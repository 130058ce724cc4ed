// Package emitter renders diagnostics to an output stream, resolving
// source spans through the span.Files capability and styling text through
// the stylesheet cascade.
package emitter

import (
	"io"

	"github.com/muesli/termenv"
	"github.com/wycats/language-reporting/pkg/diagnostic"
	"github.com/wycats/language-reporting/pkg/document"
	"github.com/wycats/language-reporting/pkg/logging"
	"github.com/wycats/language-reporting/pkg/span"
	"github.com/wycats/language-reporting/pkg/stylesheet"
)

// Config lets the caller customize how file names are displayed
type Config interface {
	Filename(name string) string
}

// DefaultConfig displays file names verbatim
type DefaultConfig struct{}

// Filename implements Config
func (DefaultConfig) Filename(name string) string { return name }

// Options configure one emit pass
type Options struct {
	// Profile is the terminal color profile; termenv.Ascii renders plain
	Profile termenv.Profile
	// Styles overrides the default stylesheet when non-nil
	Styles *stylesheet.Stylesheet
	// DebugTree writes a structural dump of the render tree before the
	// styled output
	DebugTree bool
}

var defaultStyles = stylesheet.New().
	Add("** header **", "weight: bold").
	Add("bug ** primary", "fg: red").
	Add("error ** primary", "fg: red").
	Add("warning ** primary", "fg: yellow").
	Add("note ** primary", "fg: green").
	Add("help ** primary", "fg: cyan").
	Add("** secondary", "fg: blue").
	Add("** gutter", "fg: blue")

// DefaultStyles returns the stylesheet used when Options.Styles is nil
func DefaultStyles() *stylesheet.Stylesheet {
	return defaultStyles
}

// Emit renders one diagnostic to w. Span resolution errors surface before
// anything is written; write errors abort the remainder of the output and
// propagate to the caller.
func Emit(w io.Writer, files span.Files, d *diagnostic.Diagnostic, config Config, opts Options) error {
	if config == nil {
		config = DefaultConfig{}
	}

	header := resolveHeader(d)

	labels := make([]labelModel, 0, len(d.Labels))
	for _, label := range d.Labels {
		model, err := resolveLabel(files, label, config)
		if err != nil {
			logger := logging.GetLogger("emitter")
			logger.Error().Err(err).Str("severity", header.severity).Msg("failed to resolve label span")
			return err
		}
		labels = append(labels, model)
	}

	doc := document.With(diagnosticComponent(header, labels))

	styles := opts.Styles
	if styles == nil {
		styles = defaultStyles
	}

	if opts.DebugTree {
		if err := doc.DebugWrite(w, styles, opts.Profile); err != nil {
			return err
		}
	}

	return doc.Write(w, styles, opts.Profile)
}
