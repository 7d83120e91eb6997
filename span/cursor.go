package span

import (
	"strings"
	"unicode/utf8"
)

// Cursor is a position inside a text, resolved four ways at once. Line and
// Column are 1-based; ByteOffset and CharOffset are 0-based. A cursor is an
// immutable value; navigation methods return new cursors.
//
// Every cursor-producing function expects offsets that lie on a rune
// boundary within [0, len(text)]. That is the caller's contract, matching
// Go's own string slicing rules.
type Cursor struct {
	ByteOffset int
	CharOffset int
	Line       int
	Column     int
}

// At resolves a byte offset by scanning the text from the beginning.
func At(text string, offset int) Cursor {
	before := text[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Cursor{
		ByteOffset: offset,
		CharOffset: utf8.RuneCountInString(before),
		Line:       strings.Count(before, "\n") + 1,
		Column:     utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}

// AtNear resolves a byte offset by walking from a nearby reference cursor
// instead of rescanning from the start of the text. The result is identical
// to At for every valid offset; only the work done differs.
func AtNear(text string, offset int, near Cursor) Cursor {
	if offset == near.ByteOffset {
		return near
	}
	if offset > near.ByteOffset {
		return scanForward(text, offset, near)
	}
	return scanBackward(text, offset, near)
}

func scanForward(text string, offset int, from Cursor) Cursor {
	segment := text[from.ByteOffset:offset]
	newlines := strings.Count(segment, "\n")
	chars := utf8.RuneCountInString(segment)

	column := from.Column + chars
	if newlines > 0 {
		lastLine := segment[strings.LastIndexByte(segment, '\n')+1:]
		column = utf8.RuneCountInString(lastLine) + 1
	}
	return Cursor{
		ByteOffset: offset,
		CharOffset: from.CharOffset + chars,
		Line:       from.Line + newlines,
		Column:     column,
	}
}

func scanBackward(text string, offset int, from Cursor) Cursor {
	segment := text[offset:from.ByteOffset]
	newlines := strings.Count(segment, "\n")
	chars := utf8.RuneCountInString(segment)

	column := from.Column - chars
	if newlines > 0 {
		// Crossed at least one line boundary; the column must be measured
		// from the target line's start.
		lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
		column = utf8.RuneCountInString(text[lineStart:offset]) + 1
	}
	return Cursor{
		ByteOffset: offset,
		CharOffset: from.CharOffset - chars,
		Line:       from.Line - newlines,
		Column:     column,
	}
}

// LineStart returns the cursor at the first byte of the cursor's line.
func (c Cursor) LineStart(text string) Cursor {
	offset := strings.LastIndexByte(text[:c.ByteOffset], '\n') + 1
	return AtNear(text, offset, c)
}

// LineEnd returns the cursor just past the last content byte of the
// cursor's line, excluding the terminator. On the final line it points at
// the end of the text.
func (c Cursor) LineEnd(text string) Cursor {
	rel := strings.IndexByte(text[c.ByteOffset:], '\n')
	if rel < 0 {
		return AtNear(text, len(text), c)
	}
	return AtNear(text, c.ByteOffset+rel, c)
}

// NextLineStart returns the cursor at the first byte of the following
// line. ok is false when no further line exists.
func (c Cursor) NextLineStart(text string) (next Cursor, ok bool) {
	rel := strings.IndexByte(text[c.ByteOffset:], '\n')
	if rel < 0 {
		return Cursor{}, false
	}
	return AtNear(text, c.ByteOffset+rel+1, c), true
}

// FindLineStart returns the cursor at the start of the given 1-based line,
// scanning forward or backward from c as needed. ok is false when the line
// does not exist in the text.
func (c Cursor) FindLineStart(text string, line int) (Cursor, bool) {
	if line < 1 {
		return Cursor{}, false
	}
	cur := c.LineStart(text)
	for cur.Line < line {
		next, ok := cur.NextLineStart(text)
		if !ok {
			return Cursor{}, false
		}
		cur = next
	}
	for cur.Line > line {
		if cur.ByteOffset == 0 {
			return Cursor{}, false
		}
		// Step over the terminator of the previous line, then to its start.
		prev := strings.LastIndexByte(text[:cur.ByteOffset-1], '\n') + 1
		cur = AtNear(text, prev, cur)
	}
	return cur, true
}

// SliceFromLineStart returns the text between the line start and the
// cursor.
func (c Cursor) SliceFromLineStart(text string) string {
	return text[c.LineStart(text).ByteOffset:c.ByteOffset]
}

// SliceToLineEnd returns the text between the cursor and the line end,
// excluding the terminator.
func (c Cursor) SliceToLineEnd(text string) string {
	return text[c.ByteOffset:c.LineEnd(text).ByteOffset]
}

// Slice returns the text between two cursors in either order.
func (c Cursor) Slice(text string, other Cursor) string {
	if c.ByteOffset <= other.ByteOffset {
		return text[c.ByteOffset:other.ByteOffset]
	}
	return text[other.ByteOffset:c.ByteOffset]
}
