package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wycats/language-reporting/pkg/errors"
)

const sampleSource = "(define test 123)\n(+ test \"\")\n()\n"

func sampleFiles(t *testing.T) (*SimpleFiles, int) {
	t.Helper()
	files := NewSimpleFiles()
	return files, files.Add("test", sampleSource)
}

func TestByteIndex(t *testing.T) {
	files, file := sampleFiles(t)

	tests := []struct {
		name         string
		line, column int
		want         int
	}{
		{name: "start of file", line: 1, column: 1, want: 0},
		{name: "start of second line", line: 2, column: 1, want: 18},
		{name: "string literal on second line", line: 2, column: 9, want: 26},
		{name: "third line", line: 3, column: 2, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := files.ByteIndex(file, tt.line, tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByteIndexOutOfRange(t *testing.T) {
	files, file := sampleFiles(t)

	_, err := files.ByteIndex(file, 99, 1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpanOutOfRange))

	_, err = files.ByteIndex(file+1, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpanOutOfRange))
}

func TestLocation(t *testing.T) {
	files, file := sampleFiles(t)
	span := files.Span(file, 26, 28)

	loc, err := files.Location(span, span.Start())
	require.NoError(t, err)
	assert.Equal(t, Location{Line: 2, Column: 9}, loc)

	loc, err = files.Location(span, 0)
	require.NoError(t, err)
	assert.Equal(t, Location{Line: 1, Column: 1}, loc)
}

func TestLocationOutOfRange(t *testing.T) {
	files, file := sampleFiles(t)
	span := files.Span(file, 0, 1)

	_, err := files.Location(span, len(sampleSource)+1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpanOutOfRange))
}

func TestLineSpanExcludesNewline(t *testing.T) {
	files, file := sampleFiles(t)
	span := files.Span(file, 26, 28)

	lineSpan, err := files.LineSpan(span, 2)
	require.NoError(t, err)

	text, err := files.Source(lineSpan)
	require.NoError(t, err)
	assert.Equal(t, "(+ test \"\")", text)
}

func TestSource(t *testing.T) {
	files, file := sampleFiles(t)

	text, err := files.Source(files.Span(file, 26, 28))
	require.NoError(t, err)
	assert.Equal(t, "\"\"", text)

	_, err = files.Source(files.Span(file, 0, len(sampleSource)+5))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpanOutOfRange))
}

func TestFileName(t *testing.T) {
	files, file := sampleFiles(t)

	assert.Equal(t, "test", files.FileName(files.Span(file, 0, 1)))
}

func TestSpanAdjustment(t *testing.T) {
	files, file := sampleFiles(t)
	span := files.Span(file, 18, 29)

	narrowed := span.WithStart(26)
	assert.Equal(t, 26, narrowed.Start())
	assert.Equal(t, 29, narrowed.End())

	narrowed = span.WithEnd(26)
	assert.Equal(t, 18, narrowed.Start())
	assert.Equal(t, 26, narrowed.End())
}

func TestNewSimpleSpanPanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() {
		NewSimpleSpan(0, 10, 5)
	})
}
