package document

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wycats/language-reporting/pkg/stylesheet"
)

func debugDump(t *testing.T, d *Document, styles *stylesheet.Stylesheet) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, d.DebugWrite(&buf, styles, termenv.Ascii))
	return buf.String()
}

func TestDebugWriteSectionMarkers(t *testing.T) {
	doc := With(Section("message", func(d *Document) *Document {
		return d.Append(Line(Text("hello")))
	}))

	out := debugDump(t, doc, stylesheet.New())

	assert.Equal(t, "\n<message>\n |hello\\n\n</message>\n\n", out)
}

func TestDebugWriteShowsResolvedStyle(t *testing.T) {
	styles := stylesheet.New().Add("message", "fg: red; weight: bold")

	doc := With(Section("message", func(d *Document) *Document {
		return d.Append(Text("hi"))
	}))

	out := debugDump(t, doc, styles)

	// Attributes appear in weight, fg, bg order with a trailing section mark.
	assert.Contains(t, out, "<message weight=bold fg=red §>")
}

func TestDebugWriteIndentsToDepth(t *testing.T) {
	doc := With(Section("outer", func(d *Document) *Document {
		return d.Append(Section("inner", func(d *Document) *Document {
			return d.Append(Text("deep"))
		}))
	}))

	out := debugDump(t, doc, stylesheet.New())

	assert.Contains(t, out, "\n<outer>")
	assert.Contains(t, out, "\n <inner>")
	assert.Contains(t, out, "\n  |deep")
	assert.Contains(t, out, "\n </inner>")
	assert.Contains(t, out, "\n</outer>")
}

func TestDebugWriteTextMarker(t *testing.T) {
	doc := New().Append(Text("one "), Text("two"))

	out := debugDump(t, doc, stylesheet.New())

	// Only the first run on a line gets the marker.
	assert.Equal(t, "\n|one two\n\n", out)
}

func TestDebugWriteNewlineMarker(t *testing.T) {
	doc := New().Append(Line(Text("a")), Line(Text("b")))

	out := debugDump(t, doc, stylesheet.New())

	assert.Equal(t, "\n|a\\n\n|b\\n\n\n", out)
}

func TestDebugWriteUnbalancedClosePanics(t *testing.T) {
	doc := New().AddNode(Node{Kind: CloseSectionNode})

	assert.Panics(t, func() {
		_ = doc.DebugWrite(&strings.Builder{}, stylesheet.New(), termenv.Ascii)
	})
}
