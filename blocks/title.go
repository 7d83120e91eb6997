package blocks

import (
	"time"

	"github.com/bethropolis/glint/internal/textutil"
	"github.com/bethropolis/glint/printer"
)

// TitleBlock prints the headline of a log: the level tag, an optional
// UTC timestamp and the message, with continuation lines aligned under
// the message start.
type TitleBlock struct {
	message  TextBlock
	showDate bool
	now      func() time.Time
}

// NewTitle returns a title block with the given message.
func NewTitle(message TextBlock) *TitleBlock {
	return &TitleBlock{message: message, now: time.Now}
}

// Message returns the title message.
func (b *TitleBlock) Message() TextBlock { return b.message }

// SetMessage replaces the message.
func (b *TitleBlock) SetMessage(message TextBlock) *TitleBlock {
	b.message = message
	return b
}

// ShowDate toggles the UTC timestamp.
func (b *TitleBlock) ShowDate(show bool) *TitleBlock {
	b.showDate = show
	return b
}

// withClock overrides the clock, for tests.
func (b *TitleBlock) withClock(now func() time.Time) *TitleBlock {
	b.now = now
	return b
}

// Print renders the headline.
func (b *TitleBlock) Print(p *printer.Printer) {
	accent := printer.NewStyle().Bold().Fg(p.Level().Color())
	tag := p.Level().Tag()

	p.Push(tag, accent)
	p.PushPlain(" ")

	if b.showDate {
		date := b.now().UTC().Format("2006-01-02T15:04:05.000Z")
		p.Push("at", accent)
		p.PushPlain(" ")
		p.Push(date, printer.NewStyle().Bold())
		p.PushPlain(" ")
	}

	p.Push("-", accent)
	p.PushPlain(" ")

	messagePrinter := p.Derive()
	b.message.Print(messagePrinter)
	messagePrinter.Indent([]printer.Run{{Text: textutil.Spaces(len(tag) + 3)}}, false)
	p.Append(messagePrinter)
}
