// Package span defines the capability interfaces the rendering layer uses
// to resolve byte spans to lines, columns and source text. The core never
// performs file I/O or span arithmetic itself; a compiler plugs in its own
// implementation, or uses SimpleFiles for in-memory sources.
package span

// Location is a 1-based line and column position
type Location struct {
	Line   int
	Column int
}

// Span is a byte range within a single source file
type Span interface {
	// Start is the inclusive starting byte offset
	Start() int
	// End is the exclusive ending byte offset
	End() int
	// WithStart returns a copy with a different starting offset
	WithStart(start int) Span
	// WithEnd returns a copy with a different ending offset
	WithEnd(end int) Span
}

// Files resolves spans against the sources they point into
type Files interface {
	// FileName returns the display name of the file a span points into
	FileName(s Span) string
	// Location resolves a byte offset inside the span's file
	Location(s Span, byteIndex int) (Location, error)
	// LineSpan returns the span of a 1-based line number in the span's
	// file, excluding the trailing newline
	LineSpan(s Span, line int) (Span, error)
	// Source returns the source text the span covers
	Source(s Span) (string, error)
}
