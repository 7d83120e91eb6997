package blocks

import (
	"strings"
	"time"

	"github.com/bethropolis/glint/printer"
)

// HeaderBlock prints the first line of a structured log entry: the level
// tag in upper case, an optional error code, an optional location and an
// optional UTC timestamp on a continuation line.
//
// # Example
//
//	ERROR[c-0001] in src/parser.go:3:26
//	 ↪ at 2024-01-30T09:15:00.000Z
type HeaderBlock struct {
	code     string
	location TextBlock
	showDate bool
	now      func() time.Time
}

// NewHeader returns an empty header block.
func NewHeader() *HeaderBlock {
	return &HeaderBlock{now: time.Now}
}

// Code returns the error code.
func (b *HeaderBlock) Code() string { return b.code }

// Location returns the location text.
func (b *HeaderBlock) Location() TextBlock { return b.location }

// SetCode sets the error code shown in brackets after the tag.
func (b *HeaderBlock) SetCode(code string) *HeaderBlock {
	b.code = code
	return b
}

// SetLocation sets the location text.
func (b *HeaderBlock) SetLocation(location TextBlock) *HeaderBlock {
	b.location = location
	return b
}

// SetPlainLocation sets the location from a plain string.
func (b *HeaderBlock) SetPlainLocation(location string) *HeaderBlock {
	b.location = Plain(location)
	return b
}

// ShowDate toggles the UTC timestamp line.
func (b *HeaderBlock) ShowDate(show bool) *HeaderBlock {
	b.showDate = show
	return b
}

// withClock overrides the clock, for tests.
func (b *HeaderBlock) withClock(now func() time.Time) *HeaderBlock {
	b.now = now
	return b
}

// Print renders the header.
func (b *HeaderBlock) Print(p *printer.Printer) {
	accent := printer.NewStyle().Bold().Fg(p.Level().Color())

	p.Push(strings.ToUpper(p.Level().Tag()), accent)

	if b.code != "" {
		p.Push("["+b.code+"]", printer.NewStyle().Bold())
	}

	if !b.location.IsEmpty() {
		p.PushPlain(" in ")
		b.location.SingleLined().Print(p)
	}

	if b.showDate {
		date := b.now().UTC().Format("2006-01-02T15:04:05.000Z")
		p.Push("\n ↪ at ", accent)
		p.Push(date, printer.NewStyle().Bold())
	}
}
