package diagnostic

import "github.com/wycats/language-reporting/pkg/span"

// LabelStyle selects how a label's span is marked in the rendered snippet
type LabelStyle int

const (
	// Primary marks the main focus of the diagnostic with `^`
	Primary LabelStyle = iota
	// Secondary marks supporting context with `-`
	Secondary
)

// Name returns the section name used for styling the label
func (s LabelStyle) Name() string {
	if s == Secondary {
		return "secondary"
	}
	return "primary"
}

// Mark returns the character repeated under the labelled source text
func (s LabelStyle) Mark() string {
	if s == Secondary {
		return "-"
	}
	return "^"
}

// Label describes an underlined region of code associated with a diagnostic
type Label struct {
	// Span is the region included in the rendered snippet
	Span span.Span
	// Message optionally adds information for the underlined code; empty
	// means no message
	Message string
	// Style selects primary or secondary marking
	Style LabelStyle
}

// NewLabel constructs a label over a span
func NewLabel(s span.Span, style LabelStyle) Label {
	return Label{Span: s, Style: style}
}

// NewPrimaryLabel constructs a primary label over a span
func NewPrimaryLabel(s span.Span) Label {
	return NewLabel(s, Primary)
}

// NewSecondaryLabel constructs a secondary label over a span
func NewSecondaryLabel(s span.Span) Label {
	return NewLabel(s, Secondary)
}

// WithMessage returns a copy of the label with the given message
func (l Label) WithMessage(message string) Label {
	l.Message = message
	return l
}

// Diagnostic represents a diagnostic message and its labelled spans
type Diagnostic struct {
	// Severity is the overall severity of the diagnostic
	Severity Severity
	// Code optionally identifies this class of diagnostic, e.g. "E0001"
	Code string
	// Message is the main message; it should not change based on location
	Message string
	// Labels mark the regions of code involved
	Labels []Label
}

// New constructs a diagnostic with the given severity and message
func New(severity Severity, message string) *Diagnostic {
	return &Diagnostic{Severity: severity, Message: message}
}

// NewBug constructs an internal-error diagnostic
func NewBug(message string) *Diagnostic { return New(Bug, message) }

// NewError constructs an error diagnostic
func NewError(message string) *Diagnostic { return New(Error, message) }

// NewWarning constructs a warning diagnostic
func NewWarning(message string) *Diagnostic { return New(Warning, message) }

// NewNote constructs a note diagnostic
func NewNote(message string) *Diagnostic { return New(Note, message) }

// NewHelp constructs a help diagnostic
func NewHelp(message string) *Diagnostic { return New(Help, message) }

// WithCode sets the diagnostic code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel appends a label
func (d *Diagnostic) WithLabel(label Label) *Diagnostic {
	d.Labels = append(d.Labels, label)
	return d
}

// WithLabels appends several labels
func (d *Diagnostic) WithLabels(labels ...Label) *Diagnostic {
	d.Labels = append(d.Labels, labels...)
	return d
}
