package blocks

import (
	"strings"
	"unicode"

	"github.com/bethropolis/glint/printer"
	"github.com/mattn/go-runewidth"
)

// SeparatorBlock prints a horizontal rule by repeating a character until
// the requested display width is filled. A whitespace character produces
// a blank line, since the block separator already breaks the line.
type SeparatorBlock struct {
	width     int
	character rune
}

// NewSeparator returns a bar separator of the given display width.
func NewSeparator(width int) *SeparatorBlock {
	return &SeparatorBlock{width: width, character: '─'}
}

// NewBlankSeparator returns a separator that renders as an empty line.
func NewBlankSeparator() *SeparatorBlock {
	return &SeparatorBlock{width: 0, character: ' '}
}

// Width returns the display width.
func (b *SeparatorBlock) Width() int { return b.width }

// Character returns the repeated character.
func (b *SeparatorBlock) Character() rune { return b.character }

// SetWidth sets the display width.
func (b *SeparatorBlock) SetWidth(width int) *SeparatorBlock {
	b.width = width
	return b
}

// SetCharacter sets the repeated character. Line breaks would corrupt the
// layout, so they panic; that is a programming error, not an input error.
func (b *SeparatorBlock) SetCharacter(c rune) *SeparatorBlock {
	if c == '\n' {
		panic("separator character cannot be a line break")
	}
	b.character = c
	return b
}

// Print renders the rule bold in the level color. Wide characters are
// repeated fewer times so the rule stays within the requested width.
func (b *SeparatorBlock) Print(p *printer.Printer) {
	if b.width == 0 {
		return
	}
	if unicode.IsSpace(b.character) {
		return
	}
	cells := runewidth.RuneWidth(b.character)
	if cells < 1 {
		cells = 1
	}
	rule := strings.Repeat(string(b.character), b.width/cells)
	p.Push(rule, printer.NewStyle().Bold().Fg(p.Level().Color()))
}
