package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wycats/language-reporting/pkg/span"
)

func TestSeverityOrdering(t *testing.T) {
	assert.Greater(t, Bug, Error)
	assert.Greater(t, Error, Warning)
	assert.Greater(t, Warning, Note)
	assert.Greater(t, Note, Help)
}

func TestSeverityName(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Bug, "bug"},
		{Error, "error"},
		{Warning, "warning"},
		{Note, "note"},
		{Help, "help"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.severity.Name())
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error: internal compiler error", Bug.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "warning", Warning.String())
}

func TestLabelStyle(t *testing.T) {
	assert.Equal(t, "primary", Primary.Name())
	assert.Equal(t, "^", Primary.Mark())
	assert.Equal(t, "secondary", Secondary.Name())
	assert.Equal(t, "-", Secondary.Mark())
}

func TestDiagnosticBuilder(t *testing.T) {
	files := span.NewSimpleFiles()
	file := files.Add("test", "(+ test \"\")\n")

	d := NewError("Unexpected type in `+` application").
		WithCode("E0001").
		WithLabel(NewPrimaryLabel(files.Span(file, 8, 10)).
			WithMessage("Expected integer but got string")).
		WithLabel(NewSecondaryLabel(files.Span(file, 3, 7)))

	assert.Equal(t, Error, d.Severity)
	assert.Equal(t, "E0001", d.Code)
	assert.Equal(t, "Unexpected type in `+` application", d.Message)

	require.Len(t, d.Labels, 2)
	assert.Equal(t, Primary, d.Labels[0].Style)
	assert.Equal(t, "Expected integer but got string", d.Labels[0].Message)
	assert.Equal(t, Secondary, d.Labels[1].Style)
	assert.Empty(t, d.Labels[1].Message)
}

func TestSeverityConstructors(t *testing.T) {
	assert.Equal(t, Bug, NewBug("m").Severity)
	assert.Equal(t, Error, NewError("m").Severity)
	assert.Equal(t, Warning, NewWarning("m").Severity)
	assert.Equal(t, Note, NewNote("m").Severity)
	assert.Equal(t, Help, NewHelp("m").Severity)
}

func TestWithLabels(t *testing.T) {
	files := span.NewSimpleFiles()
	file := files.Add("test", "abc")

	d := NewWarning("w").WithLabels(
		NewPrimaryLabel(files.Span(file, 0, 1)),
		NewSecondaryLabel(files.Span(file, 1, 2)),
	)

	assert.Len(t, d.Labels, 2)
}
