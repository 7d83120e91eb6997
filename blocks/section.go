package blocks

import (
	"strings"

	"github.com/bethropolis/glint/internal/textutil"
	"github.com/bethropolis/glint/printer"
	"github.com/bethropolis/glint/span"
	"github.com/gdamore/tcell/v2"
)

// Section is one highlighted piece of a document, confined to a single
// line. A zero-width section is a cursor mark rendered as a dot. A
// highlight spanning several lines is stored as two sections joined by
// the multiline flags.
type Section struct {
	start   span.Cursor
	end     span.Cursor // exclusive
	message TextBlock
	color   tcell.Color

	multilineStart bool
	multilineEnd   bool
}

// Start returns the cursor at the first highlighted byte.
func (s *Section) Start() span.Cursor { return s.start }

// End returns the cursor just past the last highlighted byte.
func (s *Section) End() span.Cursor { return s.end }

// Message returns the message attached to the section.
func (s *Section) Message() TextBlock { return s.message }

// Color returns the explicit color; it is not Valid when the section
// takes part in the automatic color alternation.
func (s *Section) Color() tcell.Color { return s.color }

// IsCursor reports whether the section is a zero-width mark.
func (s *Section) IsCursor() bool { return s.start == s.end }

// IsMultilineStart reports whether the section opens a highlight that
// continues on a later line.
func (s *Section) IsMultilineStart() bool { return s.multilineStart }

// IsMultilineEnd reports whether the section closes a highlight opened
// on an earlier line.
func (s *Section) IsMultilineEnd() bool { return s.multilineEnd }

// charLen returns the width of the section in characters. A cursor mark
// occupies the one cell its dot is drawn in.
func (s *Section) charLen() int {
	if s.IsCursor() {
		return 1
	}
	return s.end.CharOffset - s.start.CharOffset
}

// printContent writes the section's slice of the document line.
func (s *Section) printContent(p *printer.Printer, d *DocumentBlock, color tcell.Color) {
	style := printer.NewStyle().Bold().Fg(color)
	if s.IsCursor() {
		p.Push(middleDot, style)
		return
	}
	content := s.start.Slice(d.code, s.end)
	if d.showNewLineChars {
		content = strings.ReplaceAll(content, "\n", newLineMark)
	} else {
		content = strings.TrimRight(content, "\n")
	}
	p.Push(content, style)
}

// printUnderline writes the connector glyphs under the section when its
// message, if any, is deferred to a later row.
func (s *Section) printUnderline(p *printer.Printer, color tcell.Color) {
	style := printer.NewStyle().Bold().Fg(color)

	if s.multilineStart {
		p.Push(topRightCorner+textutil.Repeat(horizontalBar, s.charLen())+rightArrow, style)
		return
	}
	if s.multilineEnd {
		if s.message.IsEmpty() {
			p.Push(rightArrow+textutil.Repeat(horizontalBar, s.charLen())+topLeftCorner, style)
		} else {
			p.Push(rightArrow+horizontalBar+horizontalBottomBar+
				textutil.Repeat(horizontalBar, s.charLen()-2)+topLeftCorner, style)
		}
		return
	}
	if s.charLen() == 1 {
		if s.message.IsEmpty() {
			p.Push(upPointer, style)
		} else {
			p.Push(verticalBar, style)
		}
		return
	}
	opening := topRightCorner
	if !s.message.IsEmpty() {
		opening = verticalRightBar
	}
	p.Push(opening+textutil.Repeat(horizontalBar, s.charLen()-2)+topLeftCorner, style)
}

// printUnderlineWithMessage writes the connector glyphs when the message
// is printed inline on the underline row itself.
func (s *Section) printUnderlineWithMessage(p *printer.Printer, color tcell.Color) {
	if s.multilineStart {
		// Multiline starts never carry a message; the closing section
		// does. Registration guarantees this.
		panic("multiline start section cannot print a message")
	}
	style := printer.NewStyle().Bold().Fg(color)

	if s.multilineEnd {
		p.Push(rightArrow+textutil.Repeat(horizontalBar, s.charLen())+
			horizontalTopBar+horizontalBar+horizontalBar+" ", style)
		return
	}
	if s.charLen() == 1 {
		p.Push(topRightCorner+horizontalBar+horizontalBar+" ", style)
		return
	}
	p.Push(topRightCorner+textutil.Repeat(horizontalBar, s.charLen()-2)+
		horizontalTopBar+horizontalBar+horizontalBar+" ", style)
}
