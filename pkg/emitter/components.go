package emitter

import (
	doc "github.com/wycats/language-reporting/pkg/document"
)

// The section structure below is what the default stylesheet's selectors
// target; renaming a section changes which rules apply to it.

// diagnosticComponent renders a whole diagnostic:
//
//	<severity>
//	  <header>...</header>
//	  per label: <source-code-location>, source line, underline line
//	</severity>
func diagnosticComponent(header headerModel, labels []labelModel) doc.Renderable {
	return doc.Section(header.severity, func(into *doc.Document) *doc.Document {
		into = into.Append(headerComponent(header))
		for _, label := range labels {
			into = into.Append(
				sourceCodeLocation(label),
				sourceCodeLine(label),
			)
		}
		return into
	})
}

// headerComponent renders e.g. `error[E0001]: Unexpected type in `+` application`
func headerComponent(header headerModel) doc.Renderable {
	code := header.code
	return doc.Section("header", func(into *doc.Document) *doc.Document {
		return into.Append(doc.Line(doc.Sequence(
			doc.Section("primary", func(into *doc.Document) *doc.Document {
				into = into.Append(doc.Text(header.severity))
				if code != "" {
					into = into.Append(doc.Text("["), doc.Text(code), doc.Text("]"))
				}
				return into
			}),
			doc.Text(": "),
			doc.Text(header.message),
		)))
	})
}

// sourceCodeLocation renders e.g. `- test:2:9`
func sourceCodeLocation(label labelModel) doc.Renderable {
	return doc.Section("source-code-location", func(into *doc.Document) *doc.Document {
		return into.Append(doc.Line(doc.Sequence(
			doc.Text("- "),
			doc.Text(label.filename),
			doc.Text(":"),
			doc.Text(label.line),
			doc.Text(":"),
			doc.Text(label.column),
		)))
	})
}

// sourceCodeLine renders the source line and the underline row beneath it:
//
//	2 | (+ test "")
//	  |         ^^ Expected integer but got string
func sourceCodeLine(label labelModel) doc.Renderable {
	return doc.Sequence(
		doc.Line(doc.Sequence(
			doc.Section("gutter", func(into *doc.Document) *doc.Document {
				return into.Append(doc.Text(label.line), doc.Text(" | "))
			}),
			doc.Section("before-marked", func(into *doc.Document) *doc.Document {
				return into.Append(doc.Text(label.before))
			}),
			doc.Section(label.section, func(into *doc.Document) *doc.Document {
				return into.Append(doc.Text(label.marked))
			}),
			doc.Section("after-marked", func(into *doc.Document) *doc.Document {
				return into.Append(doc.Text(label.after))
			}),
		)),
		doc.Line(doc.Section("underline", func(into *doc.Document) *doc.Document {
			return into.Append(
				doc.Section("gutter", func(into *doc.Document) *doc.Document {
					return into.Append(doc.Repeat(" ", label.lineNumberLen()), doc.Text(" | "))
				}),
				doc.Repeat(" ", len(label.before)),
				doc.Section(label.section, func(into *doc.Document) *doc.Document {
					into = into.Append(doc.Repeat(label.mark, len(label.marked)))
					if label.message != "" {
						into = into.Append(doc.Text(" "), doc.Text(label.message))
					}
					return into
				}),
			)
		})),
	)
}
