package document

// BlockComponent is a named data-bearing unit that wraps a body callback,
// used to inject fixed header or trailer content around nested content.
// Append must invoke the block exactly once.
type BlockComponent interface {
	Append(block func(*Document) *Document, into *Document) *Document
}

// Block curries a component with its body callback into a renderable
func Block(component BlockComponent, block func(*Document) *Document) Renderable {
	return RenderFunc(func(into *Document) *Document {
		return component.Append(block, into)
	})
}

// IterBlockComponent invokes its body callback zero or more times, once
// per item, appending each invocation's result in order.
type IterBlockComponent[T any] interface {
	Append(block func(T, *Document) *Document, into *Document) *Document
}

// IterBlock curries an iterating component with its body callback
func IterBlock[T any](component IterBlockComponent[T], block func(T, *Document) *Document) Renderable {
	return RenderFunc(func(into *Document) *Document {
		return component.Append(block, into)
	})
}

// OnceBlockComponent invokes its body callback at most once, passing it a
// data item the component resolves.
type OnceBlockComponent[T any] interface {
	Append(block func(T, *Document) *Document, into *Document) *Document
}

// OnceBlock curries a once-component with its body callback
func OnceBlock[T any](component OnceBlockComponent[T], block func(T, *Document) *Document) Renderable {
	return RenderFunc(func(into *Document) *Document {
		return component.Append(block, into)
	})
}

// Component packages a render function together with its arguments so the
// pair can be appended as a unit.
func Component[T any](fn func(T, *Document) *Document, data T) Renderable {
	return RenderFunc(func(into *Document) *Document {
		return fn(data, into)
	})
}
