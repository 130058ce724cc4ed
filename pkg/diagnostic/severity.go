// Package diagnostic holds the compiler-facing diagnostic model: a severity,
// an optional code, a message, and labelled source spans.
package diagnostic

// Severity is a diagnostic severity level, ordered Bug > Error > Warning >
// Note > Help.
type Severity int

const (
	// Help is a help message
	Help Severity = iota + 1
	// Note is a note
	Note
	// Warning is a warning
	Warning
	// Error is an error
	Error
	// Bug is an unexpected internal error
	Bug
)

// Name returns the short severity name used as the root section name when
// rendering.
func (s Severity) Name() string {
	switch s {
	case Bug:
		return "bug"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// String returns the display string that explains this severity
func (s Severity) String() string {
	if s == Bug {
		return "error: internal compiler error"
	}
	return s.Name()
}
