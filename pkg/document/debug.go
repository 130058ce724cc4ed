package document

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/wycats/language-reporting/pkg/stylesheet"
)

// Debug writer role styles. Section names, attribute names and attribute
// values each get their own color so the dump stays readable.
var (
	debugSectionStyle = stylesheet.MustStyle("fg: blue; weight: bold")
	debugMarkerStyle  = stylesheet.MustStyle("fg: black; weight: bold")
	debugValueStyle   = stylesheet.MustStyle("fg: cyan; weight: dim")
)

type debugWriter struct {
	w         io.Writer
	renderer  *lipgloss.Renderer
	styles    *stylesheet.Stylesheet
	lineStart bool
	nesting   []string
}

// DebugWrite renders the document as an annotated structural dump instead
// of plain styled text: sections as `<name attr=val §>` and `</name>`
// pairs indented to nesting depth, newlines as a literal `\n` marker. The
// resolved style for each section is shown inline. Purely diagnostic; the
// document itself is not consumed.
func (d *Document) DebugWrite(w io.Writer, styles *stylesheet.Stylesheet, profile termenv.Profile) error {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)

	dw := &debugWriter{
		w:         w,
		renderer:  renderer,
		styles:    styles,
		lineStart: true,
	}

	for _, n := range d.nodes {
		var err error
		switch n.Kind {
		case TextNode:
			err = dw.writeText(n.Value)
		case OpenSectionNode:
			err = dw.writeOpenSection(n.Value)
		case CloseSectionNode:
			err = dw.writeCloseSection()
		case NewlineNode:
			err = dw.writeNewline()
		}
		if err != nil {
			return err
		}
	}

	return dw.write("\n\n")
}

func (dw *debugWriter) writeText(text string) error {
	if dw.lineStart {
		if err := dw.startLine(); err != nil {
			return err
		}
		if err := dw.styledWrite("|", debugMarkerStyle); err != nil {
			return err
		}
	}

	dw.lineStart = false
	return dw.write(text)
}

func (dw *debugWriter) writeOpenSection(section string) error {
	if err := dw.startLine(); err != nil {
		return err
	}
	if err := dw.write("<"); err != nil {
		return err
	}

	dw.nesting = append(dw.nesting, section)
	style := dw.styles.Get(dw.nesting)

	if err := dw.styledWrite(section, debugSectionStyle); err != nil {
		return err
	}

	if style != nil && style.HasValue() {
		if err := dw.write(" "); err != nil {
			return err
		}

		attrs := style.DebugAttributes()
		for i, attr := range attrs {
			if err := dw.styledWrite(attr.Name, debugMarkerStyle); err != nil {
				return err
			}
			if err := dw.write("="); err != nil {
				return err
			}
			if err := dw.styledWrite(attr.Value, debugValueStyle); err != nil {
				return err
			}
			if i != len(attrs)-1 {
				if err := dw.write(" "); err != nil {
					return err
				}
			}
		}

		if err := dw.styledWrite(" §", *style); err != nil {
			return err
		}
	}

	dw.lineStart = true
	return dw.write(">")
}

func (dw *debugWriter) writeCloseSection() error {
	if len(dw.nesting) == 0 {
		panic("document: unbalanced section close")
	}
	popped := dw.nesting[len(dw.nesting)-1]
	dw.nesting = dw.nesting[:len(dw.nesting)-1]

	if err := dw.startLine(); err != nil {
		return err
	}
	if err := dw.write("</"); err != nil {
		return err
	}
	if err := dw.styledWrite(popped, debugSectionStyle); err != nil {
		return err
	}

	dw.lineStart = true
	return dw.write(">")
}

func (dw *debugWriter) writeNewline() error {
	if dw.lineStart {
		if err := dw.write("\n" + strings.Repeat("  ", len(dw.nesting))); err != nil {
			return err
		}
	}

	dw.lineStart = true
	return dw.write(`\n`)
}

func (dw *debugWriter) startLine() error {
	return dw.write("\n" + strings.Repeat(" ", len(dw.nesting)))
}

func (dw *debugWriter) styledWrite(value string, style stylesheet.Style) error {
	return dw.write(style.Terminal(dw.renderer).Render(value))
}

func (dw *debugWriter) write(value string) error {
	_, err := io.WriteString(dw.w, value)
	return err
}
