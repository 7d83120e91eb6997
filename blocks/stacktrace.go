package blocks

import "github.com/bethropolis/glint/printer"

// StackTraceBlock prints one frame of a stack trace: a file location, an
// optional path inside the code and an optional message, in the form
// `location(code.path) - message`. Location and path are flattened to a
// single line when printed.
type StackTraceBlock struct {
	fileLocation TextBlock
	codePath     TextBlock
	message      TextBlock
}

// NewStackTrace returns an empty stack trace frame.
func NewStackTrace() *StackTraceBlock {
	return &StackTraceBlock{}
}

// FileLocation returns the file location.
func (b *StackTraceBlock) FileLocation() TextBlock { return b.fileLocation }

// CodePath returns the path inside the code.
func (b *StackTraceBlock) CodePath() TextBlock { return b.codePath }

// Message returns the message.
func (b *StackTraceBlock) Message() TextBlock { return b.message }

// SetFileLocation sets the file location, e.g. "file.go:15:24".
func (b *StackTraceBlock) SetFileLocation(location TextBlock) *StackTraceBlock {
	b.fileLocation = location
	return b
}

// SetCodePath sets the path inside the code, e.g. "pkg.Type.Method".
func (b *StackTraceBlock) SetCodePath(path TextBlock) *StackTraceBlock {
	b.codePath = path
	return b
}

// SetMessage sets the message.
func (b *StackTraceBlock) SetMessage(message TextBlock) *StackTraceBlock {
	b.message = message
	return b
}

// Print renders the frame.
func (b *StackTraceBlock) Print(p *printer.Printer) {
	accent := printer.NewStyle().Bold().Fg(p.Level().Color())

	if b.fileLocation.IsEmpty() {
		p.PushPlain("<unknown location>")
	} else {
		b.fileLocation.SingleLined().Print(p)
	}

	if !b.codePath.IsEmpty() {
		p.Push("(", accent)
		b.codePath.SingleLined().Print(p)
		p.Push(")", accent)
	}

	if !b.message.IsEmpty() {
		p.Push(" - ", accent)
		b.message.Print(p)
	}
}
