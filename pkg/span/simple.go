package span

import (
	"fmt"
	"strings"

	"github.com/wycats/language-reporting/pkg/errors"
)

// SimpleSpan is a byte range in a file registered with SimpleFiles
type SimpleSpan struct {
	fileID int
	start  int
	end    int
}

// NewSimpleSpan constructs a span; end must not precede start
func NewSimpleSpan(fileID, start, end int) SimpleSpan {
	if end < start {
		panic(fmt.Sprintf("span: end %d must not precede start %d", end, start))
	}
	return SimpleSpan{fileID: fileID, start: start, end: end}
}

// Start is the inclusive starting byte offset
func (s SimpleSpan) Start() int { return s.start }

// End is the exclusive ending byte offset
func (s SimpleSpan) End() int { return s.end }

// WithStart returns a copy with a different starting offset
func (s SimpleSpan) WithStart(start int) Span {
	return NewSimpleSpan(s.fileID, start, s.end)
}

// WithEnd returns a copy with a different ending offset
func (s SimpleSpan) WithEnd(end int) Span {
	return NewSimpleSpan(s.fileID, s.start, end)
}

type simpleFile struct {
	name   string
	source string
}

// SimpleFiles is an in-memory Files implementation for sources that are
// already loaded as strings.
type SimpleFiles struct {
	files []simpleFile
}

// NewSimpleFiles returns an empty file registry
func NewSimpleFiles() *SimpleFiles {
	return &SimpleFiles{}
}

// Add registers a source file and returns its id
func (f *SimpleFiles) Add(name, source string) int {
	f.files = append(f.files, simpleFile{name: name, source: source})
	return len(f.files) - 1
}

// Span constructs a span into a registered file
func (f *SimpleFiles) Span(fileID, start, end int) SimpleSpan {
	return NewSimpleSpan(fileID, start, end)
}

// ByteIndex resolves a 1-based line and column to a byte offset
func (f *SimpleFiles) ByteIndex(fileID, line, column int) (int, error) {
	source, err := f.sourceOf(fileID)
	if err != nil {
		return 0, err
	}

	lineStart, _, err := lineBounds(source, line)
	if err != nil {
		return 0, err
	}
	return lineStart + column - 1, nil
}

// FileName returns the display name of the file a span points into
func (f *SimpleFiles) FileName(s Span) string {
	fileID := f.fileID(s)
	if fileID < 0 || fileID >= len(f.files) {
		return ""
	}
	return f.files[fileID].name
}

// Location resolves a byte offset to a 1-based line and column
func (f *SimpleFiles) Location(s Span, byteIndex int) (Location, error) {
	source, err := f.sourceOf(f.fileID(s))
	if err != nil {
		return Location{}, err
	}
	if byteIndex < 0 || byteIndex > len(source) {
		return Location{}, errors.Newf(errors.ErrSpanOutOfRange, "byte index %d out of range", byteIndex)
	}

	before := source[:byteIndex]
	line := strings.Count(before, "\n") + 1
	column := byteIndex - (strings.LastIndex(before, "\n") + 1) + 1

	return Location{Line: line, Column: column}, nil
}

// LineSpan returns the span of a 1-based line number, excluding the
// trailing newline
func (f *SimpleFiles) LineSpan(s Span, line int) (Span, error) {
	fileID := f.fileID(s)
	source, err := f.sourceOf(fileID)
	if err != nil {
		return nil, err
	}

	start, end, err := lineBounds(source, line)
	if err != nil {
		return nil, err
	}
	return NewSimpleSpan(fileID, start, end), nil
}

// Source returns the text the span covers
func (f *SimpleFiles) Source(s Span) (string, error) {
	source, err := f.sourceOf(f.fileID(s))
	if err != nil {
		return "", err
	}
	if s.Start() < 0 || s.End() > len(source) || s.Start() > s.End() {
		return "", errors.Newf(errors.ErrSpanOutOfRange, "span %d..%d out of range", s.Start(), s.End())
	}
	return source[s.Start():s.End()], nil
}

func (f *SimpleFiles) fileID(s Span) int {
	if simple, ok := s.(SimpleSpan); ok {
		return simple.fileID
	}
	return -1
}

func (f *SimpleFiles) sourceOf(fileID int) (string, error) {
	if fileID < 0 || fileID >= len(f.files) {
		return "", errors.Newf(errors.ErrSpanOutOfRange, "unknown file id %d", fileID)
	}
	return f.files[fileID].source, nil
}

// lineBounds returns the byte range of a 1-based line, excluding the
// trailing newline.
func lineBounds(source string, line int) (int, int, error) {
	if line < 1 {
		return 0, 0, errors.Newf(errors.ErrSpanOutOfRange, "line %d out of range", line)
	}

	start := 0
	for n := 1; n < line; n++ {
		next := strings.IndexByte(source[start:], '\n')
		if next < 0 {
			return 0, 0, errors.Newf(errors.ErrSpanOutOfRange, "line %d out of range", line)
		}
		start += next + 1
	}

	end := len(source)
	if next := strings.IndexByte(source[start:], '\n'); next >= 0 {
		end = start + next
	}
	return start, end, nil
}
