package stylesheet

import (
	"fmt"
	"strings"

	"github.com/wycats/language-reporting/pkg/errors"
)

// Style is a set of four independently inheritable attributes. The zero
// value has every attribute set to Inherit and matches nothing on its own.
type Style struct {
	fg        ColorAttr
	bg        ColorAttr
	weight    Weight
	underline Underline
}

// NewStyle returns the empty style (all attributes Inherit)
func NewStyle() Style {
	return Style{}
}

// ParseStyle parses a flat style declaration of the form
// "key: value; key: value" with keys fg, bg, weight and underline.
// Unknown keys and malformed values are configuration errors.
func ParseStyle(input string) (Style, error) {
	style := NewStyle()

	rest := strings.TrimSpace(input)
	for rest != "" {
		var segment string
		if idx := strings.Index(rest, ";"); idx >= 0 {
			segment, rest = rest[:idx], rest[idx+1:]
		} else {
			segment, rest = rest, ""
		}

		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		key, value, found := strings.Cut(segment, ":")
		if !found {
			return Style{}, errors.Newf(errors.ErrStyleParse, "unexpected style string %q, missing `:`", segment)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var err error
		switch key {
		case "fg":
			style.fg, err = parseColorAttr(value)
		case "bg":
			style.bg, err = parseColorAttr(value)
		case "weight":
			style.weight, err = parseWeight(value)
		case "underline":
			style.underline, err = parseUnderline(value)
		default:
			return Style{}, errors.Newf(errors.ErrInvalidAttribute, "invalid style attribute name %q", key)
		}
		if err != nil {
			return Style{}, err
		}
	}

	return style, nil
}

// MustStyle parses a style declaration and panics on error. Style literals
// are developer-authored configuration, so failing fast at construction is
// the correct behavior.
func MustStyle(input string) Style {
	style, err := ParseStyle(input)
	if err != nil {
		panic(err)
	}
	return style
}

// Fg returns a copy of the style with the foreground color set
func (s Style) Fg(c Color) Style {
	s.fg = ColorOf(c)
	return s
}

// Bg returns a copy of the style with the background color set
func (s Style) Bg(c Color) Style {
	s.bg = ColorOf(c)
	return s
}

// Weight returns a copy of the style with the given weight
func (s Style) Weight(w Weight) Style {
	s.weight = w
	return s
}

// Bold returns a copy of the style with bold weight
func (s Style) Bold() Style {
	s.weight = WeightBold
	return s
}

// Dim returns a copy of the style with dim weight
func (s Style) Dim() Style {
	s.weight = WeightDim
	return s
}

// Normal returns a copy of the style with normal weight
func (s Style) Normal() Style {
	s.weight = WeightNormal
	return s
}

// Underline returns a copy of the style with underline enabled
func (s Style) Underline() Style {
	s.underline = UnderlineOn
	return s
}

// NoUnderline returns a copy of the style with underline disabled
func (s Style) NoUnderline() Style {
	s.underline = UnderlineOff
	return s
}

// Update merges another style over this one, attribute by attribute. The
// other style's explicit attributes win; its Inherit attributes fall
// through to this style's values. Not commutative.
func (s Style) Update(other Style) Style {
	return Style{
		fg:        s.fg.Update(other.fg),
		bg:        s.bg.Update(other.bg),
		weight:    s.weight.Update(other.weight),
		underline: s.underline.Update(other.underline),
	}
}

// Union composes two optional styles. Absence is the identity; when both
// are present the result is a.Update(b), so callers must pass the
// lower-precedence style first.
func Union(a, b *Style) *Style {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		merged := a.Update(*b)
		return &merged
	}
}

// IsDefault reports whether every attribute is Inherit
func (s Style) IsDefault() bool {
	return s.fg.IsDefault() && s.bg.IsDefault() && s.weight.IsDefault() && s.underline.IsDefault()
}

// HasValue reports whether any attribute is explicitly set
func (s Style) HasValue() bool {
	return !s.IsDefault()
}

// FgColor returns the foreground color attribute
func (s Style) FgColor() ColorAttr { return s.fg }

// BgColor returns the background color attribute
func (s Style) BgColor() ColorAttr { return s.bg }

// WeightValue returns the weight attribute
func (s Style) WeightValue() Weight { return s.weight }

// UnderlineValue returns the underline attribute
func (s Style) UnderlineValue() Underline { return s.underline }

// StyleString serializes the explicit attributes back to the declaration
// grammar, e.g. "fg: red; weight: bold". Parsing the result yields an
// equivalent style.
func (s Style) StyleString() string {
	var parts []string
	if !s.fg.IsDefault() {
		parts = append(parts, "fg: "+s.fg.String())
	}
	if !s.bg.IsDefault() {
		parts = append(parts, "bg: "+s.bg.String())
	}
	if !s.weight.IsDefault() {
		parts = append(parts, "weight: "+s.weight.String())
	}
	if !s.underline.IsDefault() {
		parts = append(parts, "underline: "+s.underline.String())
	}
	return strings.Join(parts, "; ")
}

// String renders a debug form showing only the explicit attributes
func (s Style) String() string {
	var b strings.Builder
	b.WriteString("Style {")

	first := true
	writeAttr := func(name, value string) {
		if !first {
			b.WriteString(" ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%s", name, value)
	}

	if !s.fg.IsDefault() {
		writeAttr("fg", s.fg.String())
	}
	if !s.bg.IsDefault() {
		writeAttr("bg", s.bg.String())
	}
	if !s.weight.IsDefault() {
		writeAttr("weight", s.weight.String())
	}
	if !s.underline.IsDefault() {
		writeAttr("underline", s.underline.String())
	}

	b.WriteString("}")
	return b.String()
}

// DebugAttribute is one resolved attribute shown by the debug writer
type DebugAttribute struct {
	Name  string
	Value string
}

// DebugAttributes lists the explicit weight, fg and bg attributes in the
// order the debug writer shows them
func (s Style) DebugAttributes() []DebugAttribute {
	var attrs []DebugAttribute
	if !s.weight.IsDefault() {
		attrs = append(attrs, DebugAttribute{Name: "weight", Value: s.weight.String()})
	}
	if !s.fg.IsDefault() {
		attrs = append(attrs, DebugAttribute{Name: "fg", Value: s.fg.String()})
	}
	if !s.bg.IsDefault() {
		attrs = append(attrs, DebugAttribute{Name: "bg", Value: s.bg.String()})
	}
	return attrs
}
