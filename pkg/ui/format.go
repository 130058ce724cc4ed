// Package ui resolves output color configuration: the --color command line
// argument and terminal capability detection.
package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/wycats/language-reporting/pkg/errors"
)

// ColorChoice configures the coloring of the output
type ColorChoice int

const (
	// ColorAuto enables color only when writing to a capable terminal
	ColorAuto ColorChoice = iota
	// ColorAlways enables color unconditionally
	ColorAlways
	// ColorAnsi forces basic 16-color ANSI output
	ColorAnsi
	// ColorNever disables color
	ColorNever
)

// ColorChoiceVariants lists the accepted --color argument values
var ColorChoiceVariants = []string{"auto", "always", "ansi", "never"}

// String returns the argument form of the choice
func (c ColorChoice) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorAnsi:
		return "ansi"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorChoice parses a case-insensitive --color argument value
func ParseColorChoice(s string) (ColorChoice, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "ansi":
		return ColorAnsi, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, errors.Newf(errors.ErrInvalidColorChoice,
			"unknown color choice %q (valid values: %s)", s, strings.Join(ColorChoiceVariants, ", "))
	}
}

// Profile resolves the choice against the actual output stream. Auto
// honors NO_COLOR, requires a terminal, and falls back to plain output
// when the terminal reports no color support.
func (c ColorChoice) Profile(output *os.File) termenv.Profile {
	switch c {
	case ColorNever:
		return termenv.Ascii

	case ColorAnsi:
		return termenv.ANSI

	case ColorAlways:
		profile := termenv.ColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI
		}
		return profile

	default:
		if os.Getenv("NO_COLOR") != "" {
			return termenv.Ascii
		}
		if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
			return termenv.Ascii
		}
		return termenv.ColorProfile()
	}
}
