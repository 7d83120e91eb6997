package blocks

import (
	"fmt"
	"strconv"

	"github.com/bethropolis/glint/internal/textutil"
	"github.com/bethropolis/glint/printer"
)

// StackBlock prints a framed error stack: an optional message, the
// recorded stack trace frames and an optional nested cause rendered
// inside the same frame. Frames are numbered from the innermost cause
// outwards when stack numbers are enabled, so the numbering reflects
// unwinding order across the whole cause chain.
type StackBlock struct {
	message          TextBlock
	traces           []*StackTraceBlock
	cause            *StackBlock
	showStackNumbers bool
}

// NewStack returns an empty stack block.
func NewStack() *StackBlock {
	return &StackBlock{}
}

// Message returns the stack message.
func (b *StackBlock) Message() TextBlock { return b.message }

// Traces returns the recorded frames, outermost first.
func (b *StackBlock) Traces() []*StackTraceBlock { return b.traces }

// Cause returns the nested cause, or nil.
func (b *StackBlock) Cause() *StackBlock { return b.cause }

// ShowsStackNumbers reports whether frames print their stack number.
func (b *StackBlock) ShowsStackNumbers() bool { return b.showStackNumbers }

// SetMessage sets the message printed at the top of the frame.
func (b *StackBlock) SetMessage(message TextBlock) *StackBlock {
	b.message = message
	return b
}

// AddStackTrace appends a frame.
func (b *StackBlock) AddStackTrace(trace *StackTraceBlock) *StackBlock {
	b.traces = append(b.traces, trace)
	return b
}

// SetCause sets the nested cause.
func (b *StackBlock) SetCause(cause *StackBlock) *StackBlock {
	b.cause = cause
	return b
}

// ClearCause removes the cause.
func (b *StackBlock) ClearCause() *StackBlock {
	b.cause = nil
	return b
}

// ShowStackNumbers toggles frame numbering. Unnumbered frames print an
// `at` marker instead.
func (b *StackBlock) ShowStackNumbers(show bool) *StackBlock {
	b.showStackNumbers = show
	return b
}

// countTraces counts the frames of the stack and every cause below it.
func (b *StackBlock) countTraces() int {
	n := len(b.traces)
	if b.cause != nil {
		n += b.cause.countTraces()
	}
	return n
}

// Print renders the stack block.
func (b *StackBlock) Print(p *printer.Printer) {
	digits := len(strconv.Itoa(b.countTraces()))
	b.print(p, 0, digits, false)
}

func (b *StackBlock) print(p *printer.Printer, firstTraceNumber, traceDigits int, isCause bool) {
	accent := printer.NewStyle().Bold().Fg(p.Level().Color())

	switch {
	case isCause:
		p.Push(verticalBar+"\n"+verticalRightBar+horizontalBar+horizontalBar+horizontalBar+rightArrow+" Caused by: ", accent)
	case b.message.IsEmpty():
		p.Push(bottomRightCorner+horizontalBar+" ", accent)
	default:
		p.Push(bottomRightCorner+horizontalBar+rightArrow+" ", accent)
	}

	messageIndent := verticalBar + "   "
	if isCause {
		messageIndent = verticalBar + "     "
	}
	messagePrinter := p.Derive()
	b.message.Print(messagePrinter)
	messagePrinter.Indent([]printer.Run{{Text: messageIndent, Style: accent}}, false)
	p.Append(messagePrinter)

	traceIndent := []printer.Run{
		{Text: verticalBar + "  ", Style: accent},
		{Text: textutil.Spaces(traceDigits + 2), Style: accent},
	}

	nextTraceNumber := 0
	for _, trace := range b.traces {
		p.PushPlain("\n")
		p.Push(verticalBar+"  ", accent)

		// Numbered from the innermost frame of the whole chain outwards.
		number := len(b.traces) - nextTraceNumber + firstTraceNumber
		nextTraceNumber++

		if b.showStackNumbers {
			p.Push(fmt.Sprintf("[%*d] ", traceDigits, number), accent)
		} else {
			p.Push(" at ", accent)
		}

		tracePrinter := p.Derive()
		trace.Print(tracePrinter)
		tracePrinter.Indent(traceIndent, false)
		p.Append(tracePrinter)
	}

	if b.cause != nil {
		p.PushPlain("\n")
		b.cause.print(p, nextTraceNumber+firstTraceNumber, traceDigits, true)
	}

	if !isCause {
		p.Push("\n"+topRightCorner+horizontalBar, accent)
	}
}
