package stylesheet

import (
	"strings"

	"github.com/wycats/language-reporting/pkg/errors"
)

// Color is one of the eight portable terminal colors. Styles only ever
// reference this closed palette; conversion to concrete escape sequences
// happens in the terminal adapter.
type Color int

const (
	Black Color = iota
	Blue
	Green
	Red
	Cyan
	Magenta
	Yellow
	White
)

var colorNames = map[Color]string{
	Black:   "black",
	Blue:    "blue",
	Green:   "green",
	Red:     "red",
	Cyan:    "cyan",
	Magenta: "magenta",
	Yellow:  "yellow",
	White:   "white",
}

// String returns the lowercase color name used in style declarations
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor parses a case-insensitive color name from the fixed palette
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "black":
		return Black, nil
	case "blue":
		return Blue, nil
	case "green":
		return Green, nil
	case "red":
		return Red, nil
	case "cyan":
		return Cyan, nil
	case "magenta":
		return Magenta, nil
	case "yellow":
		return Yellow, nil
	case "white":
		return White, nil
	default:
		return Black, errors.Newf(errors.ErrInvalidColor, "invalid color %q", s)
	}
}

// ansiIndex returns the base ANSI 16-palette index for a color. Bright
// variants are base+8 and are selected by the weight attribute.
func (c Color) ansiIndex() int {
	switch c {
	case Black:
		return 0
	case Red:
		return 1
	case Green:
		return 2
	case Yellow:
		return 3
	case Blue:
		return 4
	case Magenta:
		return 5
	case Cyan:
		return 6
	case White:
		return 7
	default:
		return 7
	}
}
