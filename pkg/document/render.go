package document

import "fmt"

// Renderable is the composition contract: any unit renders itself by
// appending nodes to a document. The document is threaded through as an
// accumulator; implementations must return the document they were given
// (or its extension) and never alias it.
type Renderable interface {
	Render(into *Document) *Document
}

// RenderFunc adapts a function to the Renderable interface
type RenderFunc func(*Document) *Document

// Render implements Renderable
func (f RenderFunc) Render(into *Document) *Document {
	return f(into)
}

// Render implements Renderable for Document: a document fragment renders by
// extending its nodes onto the target.
func (d *Document) Render(into *Document) *Document {
	return into.Extend(d)
}

// Text renders any value as a single text run using its fmt string form.
// A zero-length string is permitted and skipped by writers.
func Text(value interface{}) Renderable {
	return RenderFunc(func(into *Document) *Document {
		return into.AddNode(Node{Kind: TextNode, Value: fmt.Sprint(value)})
	})
}

// Empty renders nothing; it is the identity element for sequencing
func Empty() Renderable {
	return RenderFunc(func(into *Document) *Document {
		return into
	})
}

// Sequence renders each item in order
func Sequence(items ...Renderable) Renderable {
	return RenderFunc(func(into *Document) *Document {
		return into.Append(items...)
	})
}

// IfSome renders nothing when value is nil, and the transformed inner
// value when present.
func IfSome[T any](value *T, fn func(T) Renderable) Renderable {
	return RenderFunc(func(into *Document) *Document {
		if value == nil {
			return into
		}
		return into.Append(fn(*value))
	})
}

// SomeValue renders the pointed-to renderable when present and nothing
// otherwise.
func SomeValue[R Renderable](value *R) Renderable {
	return RenderFunc(func(into *Document) *Document {
		if value == nil {
			return into
		}
		return into.Append(*value)
	})
}
