// Package document implements the render tree: an intermediate sequence of
// nodes built by composing renderable units and consumed by a styled
// terminal writer or a structural debug writer.
//
// Sections carry no visible output of their own; their nesting forms the
// path that the stylesheet resolves text styles against.
package document

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/wycats/language-reporting/pkg/stylesheet"
)

// NodeKind discriminates document tree nodes
type NodeKind int

const (
	// TextNode is a literal text run
	TextNode NodeKind = iota
	// OpenSectionNode opens a named section
	OpenSectionNode
	// CloseSectionNode closes the innermost open section
	CloseSectionNode
	// NewlineNode is a line break
	NewlineNode
)

// Node is one entry in a document's node sequence. Value holds the text
// for TextNode and the section name for OpenSectionNode.
type Node struct {
	Kind  NodeKind
	Value string
}

// Document is the root of a render tree: an ordered node sequence with
// balanced section opens and closes. The zero value is the empty document.
type Document struct {
	nodes []Node
}

// New returns an empty document
func New() *Document {
	return &Document{}
}

// With returns a document containing only the given renderable's content
func With(r Renderable) *Document {
	return r.Render(New())
}

// Append renders each renderable onto the document in order and returns
// the document for chaining.
func (d *Document) Append(items ...Renderable) *Document {
	for _, item := range items {
		d = item.Render(d)
	}
	return d
}

// AddNode appends a single raw node
func (d *Document) AddNode(n Node) *Document {
	d.nodes = append(d.nodes, n)
	return d
}

// Extend appends another document's nodes
func (d *Document) Extend(fragment *Document) *Document {
	if fragment != nil && len(fragment.nodes) > 0 {
		d.nodes = append(d.nodes, fragment.nodes...)
	}
	return d
}

// Nodes returns the underlying node sequence
func (d *Document) Nodes() []Node {
	return d.nodes
}

// String renders the document as plain text with no styling
func (d *Document) String() (string, error) {
	var b strings.Builder
	if err := d.Write(&b, stylesheet.New(), termenv.Ascii); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write walks the document once and writes styled text to w. The current
// section nesting is the lookup path for every text run; a run with a
// matching style is wrapped in the corresponding escape sequences and the
// style is reset between runs. The first write error aborts the traversal.
//
// Closing a section with none open indicates a malformed document and
// panics: documents built through the renderable combinators are always
// balanced, so this is a programming error rather than an input error.
func (d *Document) Write(w io.Writer, styles *stylesheet.Stylesheet, profile termenv.Profile) error {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)

	var nesting []string

	for _, n := range d.nodes {
		switch n.Kind {
		case TextNode:
			if n.Value == "" {
				continue
			}
			out := n.Value
			if style := styles.Get(nesting); style != nil {
				out = style.Terminal(renderer).Render(n.Value)
			}
			if _, err := io.WriteString(w, out); err != nil {
				return err
			}

		case OpenSectionNode:
			nesting = append(nesting, n.Value)

		case CloseSectionNode:
			if len(nesting) == 0 {
				panic("document: unbalanced section close")
			}
			nesting = nesting[:len(nesting)-1]

		case NewlineNode:
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}

	return nil
}
