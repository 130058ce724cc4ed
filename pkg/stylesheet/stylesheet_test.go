package stylesheet

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLiteralPath(t *testing.T) {
	styles := New().Add("message header", "weight: bold")

	got := styles.Get([]string{"message", "header"})
	require.NotNil(t, got)
	assert.Equal(t, NewStyle().Bold(), *got)

	assert.Nil(t, styles.Get([]string{"message"}))
	assert.Nil(t, styles.Get([]string{"message", "header", "code"}))
	assert.Nil(t, styles.Get([]string{"header"}))
}

func TestGetStarMatchesExactlyOne(t *testing.T) {
	styles := New().Add("message * code", "fg: green")

	require.NotNil(t, styles.Get([]string{"message", "header", "code"}))
	assert.Nil(t, styles.Get([]string{"message", "code"}))
	assert.Nil(t, styles.Get([]string{"message", "a", "b", "code"}))
}

func TestGetGlobAbsorbsAnyCount(t *testing.T) {
	styles := New().Add("message ** code", "fg: blue")

	paths := [][]string{
		{"message", "code"},
		{"message", "header", "code"},
		{"message", "header", "error", "code"},
	}
	for _, path := range paths {
		got := styles.Get(path)
		require.NotNil(t, got, "path %v", path)
		assert.Equal(t, NewStyle().Fg(Blue), *got)
	}

	assert.Nil(t, styles.Get([]string{"message", "header"}))
	assert.Nil(t, styles.Get([]string{"other", "code"}))
}

func TestGetTrailingGlobTerminal(t *testing.T) {
	styles := New().Add("a b c **", "fg: red")

	// The glob absorbs nothing at the exact path, and everything beyond it.
	require.NotNil(t, styles.Get([]string{"a", "b", "c"}))
	require.NotNil(t, styles.Get([]string{"a", "b", "c", "d"}))
	require.NotNil(t, styles.Get([]string{"a", "b", "c", "d", "e"}))

	assert.Nil(t, styles.Get([]string{"a", "b"}))
}

func TestGetGlobBetweenWildcards(t *testing.T) {
	styles := New().Add("a ** * b", "fg: cyan")

	// The glob may absorb zero segments, leaving the star to consume one.
	require.NotNil(t, styles.Get([]string{"a", "x", "b"}))
	require.NotNil(t, styles.Get([]string{"a", "x", "y", "b"}))
	assert.Nil(t, styles.Get([]string{"a", "b"}))
}

func TestGetCascadePrecedence(t *testing.T) {
	styles := New().
		Add("message ** code", "fg: blue; weight: bold").
		Add("message header * code", "underline: true; bg: black").
		Add("message header error code", "fg: red; underline: false")

	got := styles.Get([]string{"message", "header", "error", "code"})
	require.NotNil(t, got)

	fg, ok := got.FgColor().Color()
	require.True(t, ok)
	assert.Equal(t, Red, fg)

	bg, ok := got.BgColor().Color()
	require.True(t, ok)
	assert.Equal(t, Black, bg)

	assert.Equal(t, WeightBold, got.WeightValue())
	assert.Equal(t, UnderlineOff, got.UnderlineValue())
}

func TestGetLiteralBeatsStar(t *testing.T) {
	styles := New().
		Add("message *", "fg: blue; weight: bold").
		Add("message header", "fg: red")

	got := styles.Get([]string{"message", "header"})
	require.NotNil(t, got)

	fg, ok := got.FgColor().Color()
	require.True(t, ok)
	assert.Equal(t, Red, fg)
	assert.Equal(t, WeightBold, got.WeightValue())
}

func TestAddReplacesIdenticalSelector(t *testing.T) {
	styles := New().
		Add("message", "fg: blue").
		Add("message", "fg: red")

	got := styles.Get([]string{"message"})
	require.NotNil(t, got)

	fg, ok := got.FgColor().Color()
	require.True(t, ok)
	assert.Equal(t, Red, fg)
	assert.Equal(t, WeightInherit, got.WeightValue())
}

func TestAddStyleWithBuilderSelectors(t *testing.T) {
	styles := New().
		AddStyle(NewSelector().Name("message").Glob(), NewStyle().Bold()).
		AddStyle(NewSelector().Name("message").Star(), NewStyle().Fg(Green))

	got := styles.Get([]string{"message", "header"})
	require.NotNil(t, got)

	fg, ok := got.FgColor().Color()
	require.True(t, ok)
	assert.Equal(t, Green, fg)
	assert.Equal(t, WeightBold, got.WeightValue())
}

func TestGetEmptyStylesheet(t *testing.T) {
	assert.Nil(t, New().Get([]string{"anything"}))
}

func TestGetSilentByDefault(t *testing.T) {
	// Lookups in a library consumer that never configures logging must not
	// write anything.
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	styles := New().Add("message ** code", "fg: blue")
	require.NotNil(t, styles.Get([]string{"message", "code"}))
	assert.Empty(t, buf.String())
}

func TestGetTracesAtTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	prevLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prevLevel)

	styles := New().Add("message ** code", "fg: blue")
	require.NotNil(t, styles.Get([]string{"message", "code"}))

	out := buf.String()
	assert.Contains(t, out, "searching")
	assert.Contains(t, out, "found")
	assert.Contains(t, out, `"component":"stylesheet"`)
}

func TestGetRootGlob(t *testing.T) {
	styles := New().Add("**", "fg: white")

	require.NotNil(t, styles.Get([]string{"a"}))
	require.NotNil(t, styles.Get([]string{"a", "b", "c"}))
}
