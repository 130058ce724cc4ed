package document

import (
	"fmt"
	"strings"
)

// Section emits an open marker for name, the block's content, and a close
// marker. Sections are invisible in plain output but can be targeted in
// stylesheets with selectors using their name. The block is invoked
// exactly once.
func Section(name string, block func(*Document) *Document) Renderable {
	return Block(sectionComponent{name: name}, block)
}

type sectionComponent struct {
	name string
}

func (s sectionComponent) Append(block func(*Document) *Document, into *Document) *Document {
	into = into.AddNode(Node{Kind: OpenSectionNode, Value: s.name})
	into = block(into)
	return into.AddNode(Node{Kind: CloseSectionNode})
}

// Line renders the item followed by a single newline
func Line(item Renderable) Renderable {
	return RenderFunc(func(into *Document) *Document {
		return into.Append(item).AddNode(Node{Kind: NewlineNode})
	})
}

// Each invokes the callback once per item, appending each result in order
func Each[T any](items []T, block func(T, *Document) *Document) Renderable {
	return IterBlock[T](eachComponent[T]{items: items}, block)
}

type eachComponent[T any] struct {
	items []T
}

func (e eachComponent[T]) Append(block func(T, *Document) *Document, into *Document) *Document {
	for _, item := range e.items {
		into = block(item, into)
	}
	return into
}

// Join is Each with a literal joiner inserted between adjacent elements,
// never before the first or after the last.
func Join[T any](items []T, joiner string, block func(T, *Document) *Document) Renderable {
	return IterBlock[T](joinComponent[T]{items: items, joiner: joiner}, block)
}

type joinComponent[T any] struct {
	items  []T
	joiner string
}

func (j joinComponent[T]) Append(block func(T, *Document) *Document, into *Document) *Document {
	for i, item := range j.items {
		if i > 0 {
			into = into.Append(Text(j.joiner))
		}
		into = block(item, into)
	}
	return into
}

// Repeat renders the item's string form concatenated count times, used for
// underline markers and gutter padding of equal width to a label.
func Repeat(item interface{}, count int) Renderable {
	return Text(strings.Repeat(fmt.Sprint(item), count))
}
