package blocks

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/bethropolis/glint/internal/textutil"
	"github.com/bethropolis/glint/printer"
	"github.com/bethropolis/glint/span"
	"github.com/gdamore/tcell/v2"
)

// DocumentBlock renders highlighted spans of a text document the way a
// compiler reports errors: numbered content lines, connector rows
// underneath, stacked messages and optional context lines around the
// highlights.
//
// Highlights are registered through the Highlight methods, which validate
// bounds and overlaps and keep the sections ordered; rendering assumes
// validated sections and never fails.
type DocumentBlock struct {
	code     string
	sections []Section
	index    span.RangeMap[struct{}]

	title        TextBlock
	filePath     TextBlock
	finalMessage TextBlock

	showNewLineChars bool
	secondaryColor   tcell.Color
	previousLines    int
	nextLines        int
	middleLines      int
	alignMessages    bool
}

// NewDocument returns a document block over the given text.
func NewDocument(code string) *DocumentBlock {
	return &DocumentBlock{
		code:           code,
		secondaryColor: tcell.PaletteColor(5),
	}
}

// Code returns the document text.
func (d *DocumentBlock) Code() string { return d.code }

// Sections returns the registered sections in document order.
func (d *DocumentBlock) Sections() []Section { return d.sections }

// Title sets the headline printed before the document frame.
func (d *DocumentBlock) Title(title TextBlock) *DocumentBlock {
	d.title = title
	return d
}

// FilePath sets the file path printed in the opening frame line. It is
// flattened to a single line when printed.
func (d *DocumentBlock) FilePath(path TextBlock) *DocumentBlock {
	d.filePath = path
	return d
}

// FinalMessage sets the message printed after the closing frame line.
func (d *DocumentBlock) FinalMessage(message TextBlock) *DocumentBlock {
	d.finalMessage = message
	return d
}

// ShowNewLineChars toggles rendering line terminators as ↩.
func (d *DocumentBlock) ShowNewLineChars(show bool) *DocumentBlock {
	d.showNewLineChars = show
	return d
}

// SecondaryColor sets the color alternated with the level color for
// sections without an explicit color.
func (d *DocumentBlock) SecondaryColor(c tcell.Color) *DocumentBlock {
	d.secondaryColor = c
	return d
}

// PreviousLines sets how many context lines to show before the first
// highlighted line.
func (d *DocumentBlock) PreviousLines(n int) *DocumentBlock {
	d.previousLines = n
	return d
}

// NextLines sets how many context lines to show after the last
// highlighted line.
func (d *DocumentBlock) NextLines(n int) *DocumentBlock {
	d.nextLines = n
	return d
}

// MiddleLines sets the budget of unhighlighted lines replayed verbatim
// between two highlighted lines; larger gaps collapse to an ellipsis.
func (d *DocumentBlock) MiddleLines(n int) *DocumentBlock {
	d.middleLines = n
	return d
}

// AlignMessages aligns all deferred message rows of a line at the column
// after the last message's section.
func (d *DocumentBlock) AlignMessages(align bool) *DocumentBlock {
	d.alignMessages = align
	return d
}

// HighlightCursor registers a zero-width mark at the byte position. A
// color that is not Valid joins the automatic alternation.
func (d *DocumentBlock) HighlightCursor(position int, color tcell.Color) error {
	return d.highlight(span.NewRange(position, position), Text(), color)
}

// HighlightCursorMessage registers a zero-width mark with a message.
func (d *DocumentBlock) HighlightCursorMessage(position int, color tcell.Color, message TextBlock) error {
	return d.highlight(span.NewRange(position, position), message, color)
}

// HighlightRange registers a highlighted byte range. A range ending on a
// line terminator is clamped to the terminator's line.
func (d *DocumentBlock) HighlightRange(r span.Range, color tcell.Color) error {
	return d.highlight(r, Text(), color)
}

// HighlightRangeMessage registers a highlighted byte range with a
// message. A multi-line range keeps the message on its closing section.
func (d *DocumentBlock) HighlightRangeMessage(r span.Range, color tcell.Color, message TextBlock) error {
	return d.highlight(r, message, color)
}

func (d *DocumentBlock) highlight(r span.Range, message TextBlock, color tcell.Color) error {
	if r.Start < 0 || r.Start > r.End || r.End > len(d.code) {
		return fmt.Errorf("highlight [%d, %d) of a %d byte document: %w",
			r.Start, r.End, len(d.code), ErrInvalidRange)
	}
	if d.index.Conflicts(r) {
		return fmt.Errorf("highlight [%d, %d): %w", r.Start, r.End, ErrOverlappingSections)
	}

	idx := sort.Search(len(d.sections), func(i int) bool {
		s := &d.sections[i]
		return s.start.ByteOffset >= r.End && s.end.ByteOffset > r.Start
	})

	var start span.Cursor
	if idx < len(d.sections) {
		start = span.AtNear(d.code, r.Start, d.sections[idx].start)
	} else {
		start = span.At(d.code, r.Start)
	}

	var pieces []Section
	switch {
	case r.Empty():
		pieces = []Section{{start: start, end: start, message: message, color: color}}
	default:
		end := span.AtNear(d.code, r.End, start)
		if start.Line == end.Line {
			pieces = []Section{{start: start, end: end, message: message, color: color}}
		} else if end.Column == 1 {
			// The range ends exactly on a line terminator; the section
			// stays on the terminator's line.
			pieces = []Section{{start: start, end: d.lineBreakAfter(start), message: message, color: color}}
		} else {
			pieces = []Section{
				{start: start, end: d.lineBreakAfter(start), color: color, multilineStart: true},
				{start: end.LineStart(d.code), end: end, message: message, color: color, multilineEnd: true},
			}
		}
	}

	d.sections = append(d.sections, pieces...)
	copy(d.sections[idx+len(pieces):], d.sections[idx:])
	copy(d.sections[idx:], pieces)
	for _, s := range pieces {
		d.index.Insert(span.NewRange(s.start.ByteOffset, s.end.ByteOffset), struct{}{})
	}
	return nil
}

// lineBreakAfter returns the cursor just past c's line terminator, or the
// line end when the line is the last one.
func (d *DocumentBlock) lineBreakAfter(c span.Cursor) span.Cursor {
	if next, ok := c.NextLineStart(d.code); ok {
		return next
	}
	return c.LineEnd(d.code)
}

// maxLine returns the largest line number the block can print.
func (d *DocumentBlock) maxLine() int {
	if len(d.sections) == 0 {
		return 1
	}
	return d.sections[len(d.sections)-1].end.Line + d.nextLines
}

// Print renders the document block.
func (d *DocumentBlock) Print(p *printer.Printer) {
	d.print(p, len(strconv.Itoa(d.maxLine())))
}

func (d *DocumentBlock) print(p *printer.Printer, width int) {
	bold := printer.NewStyle().Bold()
	accent := bold.Fg(p.Level().Color())
	lineNum := bold.Fg(tcell.PaletteColor(8))
	codeIndent := []printer.Run{{Text: textutil.Spaces(width + 1)}}

	// Title.
	if !d.title.IsEmpty() {
		p.Push(fmt.Sprintf("%*s ", width, p.Level().Symbol()), accent)

		titlePrinter := p.Derive()
		d.title.Print(titlePrinter)
		titlePrinter.Indent(codeIndent, false)
		p.Append(titlePrinter)
	}

	// Opening frame line.
	if d.title.IsEmpty() {
		p.Push(fmt.Sprintf("%*s ", width, p.Level().Symbol()), accent)
	} else {
		p.PushPlain("\n")
		p.PushPlain(textutil.Spaces(width + 1))
	}
	if d.filePath.IsEmpty() {
		p.Push(bottomRightCorner+horizontalBar, bold)
	} else {
		p.Push(bottomRightCorner+horizontalBar+"[", bold)
		d.filePath.SingleLined().Print(p)
		p.Push("]", bold)
	}

	if len(d.sections) > 0 {
		d.printPreviousLines(p, width, bold, lineNum)
		d.printSections(p, width, bold, lineNum)
		d.printNextLines(p, width, bold, lineNum)
	}

	// Closing frame line.
	finalPrinter := p.Derive()
	if d.finalMessage.IsEmpty() {
		finalPrinter.Push(topRightCorner+horizontalBar, bold)
	} else {
		finalPrinter.Push(topRightCorner+horizontalBar+" ", bold)

		messagePrinter := finalPrinter.Derive()
		d.finalMessage.Print(messagePrinter)
		messagePrinter.Indent([]printer.Run{{Text: "   "}}, false)
		finalPrinter.Append(messagePrinter)
	}
	finalPrinter.Indent(codeIndent, true)
	p.AppendLines(finalPrinter)
}

func (d *DocumentBlock) printPreviousLines(p *printer.Printer, width int, bold, lineNum printer.Style) {
	if d.previousLines == 0 {
		return
	}
	first := d.sections[0].start
	startLine := first.Line - d.previousLines
	if startLine < 1 {
		startLine = 1
	}
	cur, ok := first.FindLineStart(d.code, startLine)
	if !ok {
		return
	}
	for line := startLine; line < first.Line; line++ {
		d.printContextLine(p, width, line, cur, bold, lineNum, d.showNewLineChars)
		cur, _ = cur.NextLineStart(d.code)
	}
}

// printContextLine prints one unhighlighted line with its number.
func (d *DocumentBlock) printContextLine(p *printer.Printer, width, line int, start span.Cursor, bold, lineNum printer.Style, markBreak bool) {
	p.Push(fmt.Sprintf("\n%*d ", width, line), lineNum)
	p.Push(verticalBar+"    ", bold)
	text := start.SliceToLineEnd(d.code)
	if markBreak {
		text += newLineMark
	}
	p.PushPlain(text)
}

func (d *DocumentBlock) printSections(p *printer.Printer, width int, bold, lineNum printer.Style) {
	lastLine := d.sections[0].start.Line
	rest := d.sections

	for len(rest) > 0 {
		groupLen := 1
		for groupLen < len(rest) && rest[groupLen].start.Line == rest[0].start.Line {
			groupLen++
		}
		group := rest[:groupLen]
		rest = rest[groupLen:]

		lineStart := group[0].start.LineStart(d.code)

		// Lines between the previous group and this one.
		if gap := lineStart.Line - lastLine - 1; gap >= 1 {
			if d.middleLines >= gap {
				cur, ok := lineStart.FindLineStart(d.code, lastLine+1)
				for line := lastLine + 1; ok && line < lineStart.Line; line++ {
					d.printContextLine(p, width, line, cur, bold, lineNum, d.showNewLineChars)
					cur, _ = cur.NextLineStart(d.code)
				}
			} else {
				p.PushPlain("\n" + textutil.Spaces(width))
				p.Push(skipMark, bold)
			}
		}
		lastLine = lineStart.Line

		d.printContentRow(p, width, group, lineStart, bold, lineNum)
		d.printUnderlineRow(p, width, group, lineStart, bold)
		d.printMessageRows(p, width, group, lineStart, bold)
	}
}

func (d *DocumentBlock) printContentRow(p *printer.Printer, width int, group []Section, lineStart span.Cursor, bold, lineNum printer.Style) {
	p.Push(fmt.Sprintf("\n%*d ", width, lineStart.Line), lineNum)
	p.Push(verticalBar+"    ", bold)

	nextColor := d.secondaryColor
	prev := lineStart
	for i := range group {
		s := &group[i]
		p.PushPlain(prev.Slice(d.code, s.start))
		nextColor = d.sectionColor(s, nextColor, p)
		s.printContent(p, d, nextColor)
		prev = s.end
	}
	if prev.Line == lineStart.Line {
		p.PushPlain(prev.Slice(d.code, prev.LineEnd(d.code)))
		if d.showNewLineChars {
			p.PushPlain(newLineMark)
		}
	}
}

func (d *DocumentBlock) printUnderlineRow(p *printer.Printer, width int, group []Section, lineStart span.Cursor, bold printer.Style) {
	prefix := Text().AddPlain(textutil.Spaces(width + 1)).Add(verticalBar, bold)

	p.PushPlain("\n" + textutil.Spaces(width+1))
	if group[0].multilineEnd {
		// The arrow of a closing section reaches back into the gutter.
		p.Push(verticalBar+"  ", bold)
	} else {
		p.Push(verticalBar+"    ", bold)
	}

	nextColor := d.secondaryColor
	prev := lineStart
	spaceCount := 4

	for i := range group {
		s := &group[i]
		spacing := s.start.CharOffset - prev.CharOffset
		p.PushPlain(textutil.Spaces(spacing))
		spaceCount += spacing

		if !s.message.IsEmpty() {
			prefix = prefix.AddPlain(textutil.Spaces(spaceCount))
			spaceCount = 0
		}

		nextColor = d.sectionColor(s, nextColor, p)

		if !s.message.IsEmpty() && i == len(group)-1 {
			s.printUnderlineWithMessage(p, nextColor)
			prefix = prefix.AddPlain(textutil.Spaces(s.charLen() + 3))

			messagePrinter := p.Derive()
			s.message.Print(messagePrinter)
			messagePrinter.Indent(prefix.Runs(), false)
			p.Append(messagePrinter)
		} else {
			if s.message.IsEmpty() {
				spaceCount += s.charLen()
			} else {
				prefix = prefix.Add(verticalBar, printer.NewStyle().Bold().Fg(nextColor))
				spaceCount += s.charLen() - 1
			}
			s.printUnderline(p, nextColor)
		}
		prev = s.end
	}
}

func (d *DocumentBlock) printMessageRows(p *printer.Printer, width int, group []Section, lineStart span.Cursor, bold printer.Style) {
	// The last section's message is printed inline on the underline row,
	// so it does not take a row of its own.
	numMessages := 0
	for i := range group {
		if !group[i].message.IsEmpty() {
			numMessages++
		}
	}
	if !group[len(group)-1].message.IsEmpty() {
		numMessages--
	}
	if numMessages <= 0 {
		return
	}

	alignment, hasAlignment := 0, false
	var untilLastMessage []Section
	for i := len(group) - 1; i >= 0; i-- {
		if !group[i].message.IsEmpty() {
			untilLastMessage = group[:i+1]
			if d.alignMessages {
				alignment = group[i].start.CharOffset + 1
				hasAlignment = true
			}
			break
		}
	}

	for row := 0; row < numMessages; row++ {
		p.PushPlain("\n")
		prefix := Text().AddPlain(textutil.Spaces(width + 1)).Add(verticalBar, bold)

		nextColor := d.secondaryColor
		prev := lineStart
		spaceCount := 4
		messageIndex := numMessages

		for i := range group {
			s := &group[i]
			spaceCount += s.start.CharOffset - prev.CharOffset

			if !s.message.IsEmpty() {
				prefix = prefix.AddPlain(textutil.Spaces(spaceCount))
				spaceCount = 0
			}

			nextColor = d.sectionColor(s, nextColor, p)

			if s.message.IsEmpty() {
				spaceCount += s.charLen()
			} else {
				if row+1 == messageIndex {
					d.printMessageRow(p, s, prefix, untilLastMessage[i:], alignment, hasAlignment, nextColor)
					break
				}
				prefix = prefix.Add(verticalBar, printer.NewStyle().Bold().Fg(nextColor))
				spaceCount += s.charLen() - 1
				messageIndex--
			}
			prev = s.end
		}
	}
}

// printMessageRow prints one deferred message with its connector corner.
func (d *DocumentBlock) printMessageRow(p *printer.Printer, s *Section, prefix TextBlock, forward []Section, alignment int, hasAlignment bool, color tcell.Color) {
	if s.message.IsEmpty() {
		panic("section without a message cannot take a message row")
	}
	prefix.Print(p)

	style := printer.NewStyle().Bold().Fg(color)
	if hasAlignment {
		forwardCursors := 0
		for i := range forward {
			if forward[i].IsCursor() {
				forwardCursors++
			}
		}
		bars := (alignment - s.start.CharOffset) + forwardCursors + 1
		p.Push(topRightCorner+textutil.Repeat(horizontalBar, bars)+" ", style)
		prefix = prefix.AddPlain(textutil.Spaces((alignment - s.start.CharOffset) + forwardCursors + 3))
	} else {
		p.Push(topRightCorner+horizontalBar+horizontalBar+" ", style)
		prefix = prefix.AddPlain("    ")
	}

	messagePrinter := p.Derive()
	s.message.Print(messagePrinter)
	messagePrinter.Indent(prefix.Runs(), false)
	p.Append(messagePrinter)
}

func (d *DocumentBlock) printNextLines(p *printer.Printer, width int, bold, lineNum printer.Style) {
	if d.nextLines == 0 {
		return
	}
	cur := d.sections[len(d.sections)-1].start
	lastLine := cur.Line + d.nextLines

	for line := cur.Line; line < lastLine; line++ {
		next, ok := cur.NextLineStart(d.code)
		if !ok {
			break
		}
		p.Push(fmt.Sprintf("\n%*d ", width, line+1), lineNum)
		p.Push(verticalBar+"    ", bold)
		text := next.SliceToLineEnd(d.code)
		if d.showNewLineChars && next.ByteOffset+len(text) != len(d.code) {
			text += newLineMark
		}
		p.PushPlain(text)
		cur = next
	}
}

// sectionColor resolves the color of a section, alternating between the
// level color and the secondary color for sections without an explicit
// one.
func (d *DocumentBlock) sectionColor(s *Section, next tcell.Color, p *printer.Printer) tcell.Color {
	if s.color.Valid() {
		return s.color
	}
	if next == d.secondaryColor {
		return p.Level().Color()
	}
	return d.secondaryColor
}
