package blocks

import (
	"github.com/bethropolis/glint/internal/textutil"
	"github.com/bethropolis/glint/printer"
)

// TextBlock is a flat list of styled text runs. It is the primitive every
// message, title and file path is made of. TextBlocks are immutable
// values; Add returns a new block.
type TextBlock struct {
	runs []printer.Run
}

// Text returns an empty text block.
func Text() TextBlock { return TextBlock{} }

// Plain returns a text block with a single unstyled run.
func Plain(text string) TextBlock {
	return Text().AddPlain(text)
}

// Styled returns a text block with a single styled run.
func Styled(text string, style printer.Style) TextBlock {
	return Text().Add(text, style)
}

// Add returns a copy of the block with a styled run appended. Empty text
// is dropped.
func (t TextBlock) Add(text string, style printer.Style) TextBlock {
	if text == "" {
		return t
	}
	runs := make([]printer.Run, len(t.runs), len(t.runs)+1)
	copy(runs, t.runs)
	t.runs = append(runs, printer.Run{Text: text, Style: style})
	return t
}

// AddPlain returns a copy of the block with an unstyled run appended.
func (t TextBlock) AddPlain(text string) TextBlock {
	return t.Add(text, printer.NewStyle())
}

// IsEmpty reports whether the block holds no text.
func (t TextBlock) IsEmpty() bool { return len(t.runs) == 0 }

// Runs returns the underlying runs.
func (t TextBlock) Runs() []printer.Run { return t.runs }

// SingleLined returns a copy of the block with line breaks flattened to
// spaces, for slots that must stay on one line.
func (t TextBlock) SingleLined() TextBlock {
	runs := make([]printer.Run, len(t.runs))
	for i, r := range t.runs {
		runs[i] = printer.Run{Text: textutil.SingleLine(r.Text), Style: r.Style}
	}
	return TextBlock{runs: runs}
}

// Print writes the runs into the printer.
func (t TextBlock) Print(p *printer.Printer) {
	p.PushRuns(t.runs)
}
