package emitter

import (
	"strconv"
	"strings"

	"github.com/wycats/language-reporting/pkg/diagnostic"
	"github.com/wycats/language-reporting/pkg/span"
)

// The emitter resolves every span against the file source before any
// rendering happens, so the renderable components below stay pure.

// headerModel is the resolved first line of a diagnostic
type headerModel struct {
	severity string
	code     string
	message  string
}

func resolveHeader(d *diagnostic.Diagnostic) headerModel {
	return headerModel{
		severity: d.Severity.Name(),
		code:     d.Code,
		message:  d.Message,
	}
}

// labelModel is one resolved labelled source line: its location, the
// source text split around the marked region, and the marking style.
type labelModel struct {
	filename string
	line     int
	column   int
	before   string
	marked   string
	after    string
	mark     string
	section  string
	message  string
}

func resolveLabel(files span.Files, label diagnostic.Label, config Config) (labelModel, error) {
	location, err := files.Location(label.Span, label.Span.Start())
	if err != nil {
		return labelModel{}, err
	}

	lineSpan, err := files.LineSpan(label.Span, location.Line)
	if err != nil {
		return labelModel{}, err
	}

	before, err := files.Source(lineSpan.WithEnd(label.Span.Start()))
	if err != nil {
		return labelModel{}, err
	}

	marked, err := files.Source(label.Span)
	if err != nil {
		return labelModel{}, err
	}

	after, err := files.Source(lineSpan.WithStart(label.Span.End()))
	if err != nil {
		return labelModel{}, err
	}

	return labelModel{
		filename: config.Filename(files.FileName(label.Span)),
		line:     location.Line,
		column:   location.Column,
		before:   before,
		marked:   marked,
		after:    strings.TrimRight(after, "\r\n"),
		mark:     label.Style.Mark(),
		section:  label.Style.Name(),
		message:  label.Message,
	}, nil
}

// lineNumberLen is the width of the gutter line number, used to pad the
// underline row's gutter to the same width.
func (m labelModel) lineNumberLen() int {
	return len(strconv.Itoa(m.line))
}
