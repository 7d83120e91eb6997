package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Style is a text style: an optional foreground color plus a bold flag.
// The zero value is the plain style and renders no escape codes. Styles
// are comparable; the renderer merges adjacent runs with equal styles.
type Style struct {
	fg   tcell.Color
	bold bool
}

// NewStyle returns the plain style.
func NewStyle() Style { return Style{} }

// Bold returns a copy of the style with bold set.
func (s Style) Bold() Style { s.bold = true; return s }

// Fg returns a copy of the style with the foreground color set.
func (s Style) Fg(c tcell.Color) Style { s.fg = c; return s }

// IsBold reports whether the style is bold.
func (s Style) IsBold() bool { return s.bold }

// Foreground returns the foreground color; it is not Valid when unset.
func (s Style) Foreground() tcell.Color { return s.fg }

// IsPlain reports whether the style renders no escape codes at all.
func (s Style) IsPlain() bool { return s == Style{} }

// sgr returns the SGR parameter list for the style, or "" for plain.
// Palette colors map onto the classic 30-37/90-97 codes where they exist
// so the common colors render on any terminal; everything else uses the
// 256-color or truecolor forms.
func (s Style) sgr() string {
	var params []string
	if s.bold {
		params = append(params, "1")
	}
	if s.fg.Valid() {
		switch {
		case s.fg.IsRGB():
			r, g, b := s.fg.RGB()
			params = append(params, fmt.Sprintf("38;2;%d;%d;%d", r, g, b))
		default:
			idx := int(s.fg &^ tcell.ColorValid)
			switch {
			case idx < 8:
				params = append(params, strconv.Itoa(30+idx))
			case idx < 16:
				params = append(params, strconv.Itoa(90+idx-8))
			default:
				params = append(params, "38;5;"+strconv.Itoa(idx))
			}
		}
	}
	return strings.Join(params, ";")
}
