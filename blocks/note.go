package blocks

import (
	"github.com/bethropolis/glint/internal/textutil"
	"github.com/bethropolis/glint/printer"
)

// NoteBlock prints an auxiliary remark in the form `= title: message`.
// The title is flattened to one line and the message hangs under its own
// first character on continuation lines.
type NoteBlock struct {
	title   TextBlock
	message TextBlock
}

// NewNote returns a note with the given title and message.
func NewNote(title, message TextBlock) *NoteBlock {
	return &NoteBlock{title: title, message: message}
}

// Title returns the note title.
func (b *NoteBlock) Title() TextBlock { return b.title }

// Message returns the note message.
func (b *NoteBlock) Message() TextBlock { return b.message }

// SetTitle replaces the title.
func (b *NoteBlock) SetTitle(title TextBlock) *NoteBlock {
	b.title = title
	return b
}

// SetMessage replaces the message.
func (b *NoteBlock) SetMessage(message TextBlock) *NoteBlock {
	b.message = message
	return b
}

// Print renders the note. The hanging indent is measured in display
// cells so wide characters in the title keep continuations aligned.
func (b *NoteBlock) Print(p *printer.Printer) {
	accent := printer.NewStyle().Bold().Fg(p.Level().Color())
	title := b.title.SingleLined()

	p.Push("=", accent)
	p.PushPlain(" ")

	titlePrinter := p.Derive()
	title.Print(titlePrinter)
	titleWidth := 0
	for _, r := range titlePrinter.Runs() {
		titleWidth += textutil.Width(r.Text)
		p.Push(r.Text, r.Style.Bold())
	}

	p.Push(":", accent)
	p.PushPlain(" ")

	messagePrinter := p.Derive()
	b.message.Print(messagePrinter)
	messagePrinter.Indent([]printer.Run{{Text: textutil.Spaces(titleWidth + 4)}}, false)
	p.Append(messagePrinter)
}
