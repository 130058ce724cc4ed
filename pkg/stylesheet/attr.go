package stylesheet

import (
	"github.com/wycats/language-reporting/pkg/errors"
)

// Style attributes are independently inheritable. Every attribute type has
// an Inherit zero value, an Update operation where the argument wins unless
// it is Inherit, and a parse function for the style string grammar.

type colorKind int

const (
	colorInherit colorKind = iota
	colorReset
	colorValue
)

// ColorAttr is a color-valued attribute: inherit, reset, or a palette color
type ColorAttr struct {
	kind  colorKind
	color Color
}

// InheritColor returns the default (inherited) color attribute
func InheritColor() ColorAttr {
	return ColorAttr{kind: colorInherit}
}

// ResetColor returns the attribute that resets to the terminal default color
func ResetColor() ColorAttr {
	return ColorAttr{kind: colorReset}
}

// ColorOf wraps a palette color as an attribute value
func ColorOf(c Color) ColorAttr {
	return ColorAttr{kind: colorValue, color: c}
}

func parseColorAttr(s string) (ColorAttr, error) {
	if s == "reset" {
		return ResetColor(), nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return InheritColor(), err
	}
	return ColorOf(c), nil
}

// Update merges another color attribute over this one. The other value
// wins unless it is Inherit.
func (a ColorAttr) Update(other ColorAttr) ColorAttr {
	if other.kind == colorInherit {
		return a
	}
	return other
}

// IsDefault reports whether the attribute is Inherit
func (a ColorAttr) IsDefault() bool {
	return a.kind == colorInherit
}

// Color returns the palette color and whether one is set. Reset and
// Inherit both report false.
func (a ColorAttr) Color() (Color, bool) {
	return a.color, a.kind == colorValue
}

func (a ColorAttr) String() string {
	switch a.kind {
	case colorReset:
		return "reset"
	case colorValue:
		return a.color.String()
	default:
		return "inherit"
	}
}

// Weight is the font weight attribute value
type Weight int

const (
	WeightInherit Weight = iota
	// WeightNormal renders with the bright color variant
	WeightNormal
	// WeightBold renders bold with the bright color variant
	WeightBold
	// WeightDim renders with the base color variant
	WeightDim
)

func parseWeight(s string) (Weight, error) {
	switch s {
	case "normal":
		return WeightNormal, nil
	case "bold":
		return WeightBold, nil
	case "dim":
		return WeightDim, nil
	default:
		return WeightInherit, errors.Newf(errors.ErrInvalidWeight, "unexpected value for `weight`: %q", s)
	}
}

// Update merges another weight over this one; the other wins unless Inherit
func (w Weight) Update(other Weight) Weight {
	if other == WeightInherit {
		return w
	}
	return other
}

// IsDefault reports whether the weight is Inherit
func (w Weight) IsDefault() bool {
	return w == WeightInherit
}

func (w Weight) String() string {
	switch w {
	case WeightNormal:
		return "normal"
	case WeightBold:
		return "bold"
	case WeightDim:
		return "dim"
	default:
		return "inherit"
	}
}

// Underline is the underline attribute value
type Underline int

const (
	UnderlineInherit Underline = iota
	UnderlineOn
	UnderlineOff
)

func parseUnderline(s string) (Underline, error) {
	switch s {
	case "true":
		return UnderlineOn, nil
	case "false":
		return UnderlineOff, nil
	default:
		return UnderlineInherit, errors.Newf(errors.ErrInvalidBool, "unexpected boolean attribute %q", s)
	}
}

// Update merges another underline value over this one; the other wins
// unless Inherit
func (u Underline) Update(other Underline) Underline {
	if other == UnderlineInherit {
		return u
	}
	return other
}

// IsDefault reports whether the underline value is Inherit
func (u Underline) IsDefault() bool {
	return u == UnderlineInherit
}

func (u Underline) String() string {
	switch u {
	case UnderlineOn:
		return "true"
	case UnderlineOff:
		return "false"
	default:
		return "inherit"
	}
}
