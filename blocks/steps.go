package blocks

import (
	"strconv"

	"github.com/bethropolis/glint/printer"
)

// StepsBlock prints a sequence of blocks as connected steps: an optional
// title, each step behind an arrow connector, and an optional final
// message closing the frame. Document steps share one line-number gutter
// width so their frames stay aligned; separators render inside the frame
// without a connector of their own.
type StepsBlock struct {
	title        TextBlock
	finalMessage TextBlock
	steps        Content
}

// NewSteps returns an empty steps block.
func NewSteps() *StepsBlock {
	return &StepsBlock{}
}

// Title returns the title.
func (b *StepsBlock) Title() TextBlock { return b.title }

// FinalMessage returns the final message.
func (b *StepsBlock) FinalMessage() TextBlock { return b.finalMessage }

// Steps returns the step content.
func (b *StepsBlock) Steps() *Content { return &b.steps }

// SetTitle sets the title printed next to the level symbol.
func (b *StepsBlock) SetTitle(title TextBlock) *StepsBlock {
	b.title = title
	return b
}

// SetFinalMessage sets the message printed after the closing frame line.
func (b *StepsBlock) SetFinalMessage(message TextBlock) *StepsBlock {
	b.finalMessage = message
	return b
}

// AddStep appends a step.
func (b *StepsBlock) AddStep(step printer.Printable) *StepsBlock {
	b.steps.Add(step)
	return b
}

// maxLine returns the largest line number any document step can print.
func (b *StepsBlock) maxLine() int {
	max := 1
	for _, step := range b.steps.blocks {
		if d, ok := step.(*DocumentBlock); ok {
			if line := d.maxLine(); line > max {
				max = line
			}
		}
	}
	return max
}

// Print renders the steps block.
func (b *StepsBlock) Print(p *printer.Printer) {
	accent := printer.NewStyle().Bold().Fg(p.Level().Color())
	width := len(strconv.Itoa(b.maxLine()))
	stepIndent := []printer.Run{{Text: verticalBar + "   ", Style: accent}}

	if b.title.IsEmpty() {
		p.Push(p.Level().Symbol(), accent)
	} else {
		p.Push(p.Level().Symbol()+" ", accent)

		titlePrinter := p.Derive()
		b.title.Print(titlePrinter)
		titlePrinter.Indent([]printer.Run{{Text: verticalBar + " ", Style: accent}}, false)
		p.Append(titlePrinter)
	}

	for _, step := range b.steps.blocks {
		if _, isSeparator := step.(*SeparatorBlock); isSeparator {
			p.Push("\n"+verticalBar+"   ", accent)
		} else {
			p.Push("\n"+verticalRightBar+horizontalBar+rightArrow+" ", accent)
		}

		stepPrinter := p.Derive()
		if d, ok := step.(*DocumentBlock); ok {
			d.print(stepPrinter, width)
		} else {
			step.Print(stepPrinter)
		}
		stepPrinter.Indent(stepIndent, false)
		p.Append(stepPrinter)
	}

	if b.finalMessage.IsEmpty() {
		p.Push("\n"+topRightCorner+horizontalBar, accent)
		return
	}
	p.Push("\n"+topRightCorner+horizontalBar+rightArrow+" ", accent)

	messagePrinter := p.Derive()
	b.finalMessage.Print(messagePrinter)
	messagePrinter.Indent([]printer.Run{{Text: "    ", Style: accent}}, false)
	p.Append(messagePrinter)
}
