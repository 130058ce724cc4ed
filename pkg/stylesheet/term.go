package stylesheet

import (
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Terminal adapter: converts a resolved Style to a lipgloss style bound to
// a renderer. The weight attribute selects both boldness and color
// intensity the way classic 16-color terminals expect:
//
//	bold   -> bold attribute + bright color variant
//	normal -> bright color variant only
//	dim    -> base color variant, no attributes
func (s Style) Terminal(r *lipgloss.Renderer) lipgloss.Style {
	style := r.NewStyle()

	bright := false
	switch s.weight {
	case WeightBold:
		style = style.Bold(true)
		bright = true
	case WeightNormal:
		bright = true
	}

	if fg, ok := s.fg.Color(); ok {
		style = style.Foreground(terminalColor(fg, bright))
	}
	if bg, ok := s.bg.Color(); ok {
		style = style.Background(terminalColor(bg, bright))
	}
	if s.underline == UnderlineOn {
		style = style.Underline(true)
	}

	return style
}

// terminalColor maps a palette color to an ANSI 16-palette lipgloss color.
// Legacy Windows consoles render dark blue nearly invisibly, so blue is
// aliased to cyan there.
func terminalColor(c Color, bright bool) lipgloss.Color {
	if runtime.GOOS == "windows" && c == Blue {
		c = Cyan
	}

	index := c.ansiIndex()
	if bright {
		index += 8
	}
	return lipgloss.Color(strconv.Itoa(index))
}
