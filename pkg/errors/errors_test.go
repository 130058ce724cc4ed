package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	err := New(ErrStyleParse, "bad declaration")

	assert.Equal(t, ErrStyleParse, err.Code)
	assert.Equal(t, "[STYLE_PARSE] bad declaration", err.Error())
}

func TestNewfFormatsMessage(t *testing.T) {
	err := Newf(ErrInvalidColor, "unknown color %q", "chartreuse")

	assert.Equal(t, `[INVALID_COLOR] unknown color "chartreuse"`, err.Error())
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("read failed")
	err := Wrap(inner, ErrThemeLoad, "loading theme")

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "read failed")
	assert.Equal(t, ErrThemeLoad, GetErrorCode(err))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrThemeLoad, "m"))
	assert.Nil(t, Wrapf(nil, ErrThemeLoad, "m %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrMarkupParse, "oops")

	assert.True(t, IsErrorCode(err, ErrMarkupParse))
	assert.False(t, IsErrorCode(err, ErrThemeLoad))
	assert.False(t, IsErrorCode(stderrors.New("plain"), ErrMarkupParse))
	assert.False(t, IsErrorCode(nil, ErrMarkupParse))
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	inner := New(ErrInvalidWeight, "bad weight")
	outer := Wrap(inner, ErrThemeParse, "reading theme")

	// The outermost code wins for matching, but the inner error stays
	// reachable through the chain.
	assert.True(t, IsErrorCode(outer, ErrThemeParse))
	assert.ErrorIs(t, outer, inner)
}

func TestWithDetail(t *testing.T) {
	err := New(ErrSpanOutOfRange, "out of range").
		WithDetail("start", 150).
		WithDetail("end", 250)

	require.NotNil(t, err.Details)
	assert.Equal(t, 150, err.Details["start"])
	assert.Equal(t, 250, err.Details["end"])
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetErrorCode(stderrors.New("plain")))
}
