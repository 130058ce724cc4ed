// Package markup is a thin declarative front-end over the document builder
// API: an XML fragment of <section> and <line> elements is parsed into
// exactly the node sequence the builder calls would produce. It exists for
// callers that prefer writing tree shapes as literals; everything it can
// express can also be built directly with the document package.
package markup

import (
	"github.com/beevik/etree"

	"github.com/wycats/language-reporting/pkg/document"
	"github.com/wycats/language-reporting/pkg/errors"
)

// Parse converts a markup fragment to a document. Supported elements are
// <section name="..."> and <line>; character data becomes text runs.
// Whitespace in character data is significant, exactly as in builder
// calls.
func Parse(input string) (*document.Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString("<markup>" + input + "</markup>"); err != nil {
		return nil, errors.Wrap(err, errors.ErrMarkupParse, "malformed markup")
	}

	doc := document.New()
	return appendChildren(doc, tree.Root())
}

func appendChildren(doc *document.Document, element *etree.Element) (*document.Document, error) {
	for _, child := range element.Child {
		switch child := child.(type) {
		case *etree.CharData:
			if child.Data != "" {
				doc = doc.Append(document.Text(child.Data))
			}

		case *etree.Element:
			var err error
			doc, err = appendElement(doc, child)
			if err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

func appendElement(doc *document.Document, element *etree.Element) (*document.Document, error) {
	switch element.Tag {
	case "section":
		name := element.SelectAttrValue("name", "")
		if name == "" {
			return nil, errors.New(errors.ErrMarkupParse, "<section> requires a name attribute")
		}
		doc = doc.AddNode(document.Node{Kind: document.OpenSectionNode, Value: name})
		doc, err := appendChildren(doc, element)
		if err != nil {
			return nil, err
		}
		return doc.AddNode(document.Node{Kind: document.CloseSectionNode}), nil

	case "line":
		doc, err := appendChildren(doc, element)
		if err != nil {
			return nil, err
		}
		return doc.AddNode(document.Node{Kind: document.NewlineNode}), nil

	default:
		return nil, errors.Newf(errors.ErrMarkupParse, "unknown markup element <%s>", element.Tag)
	}
}
