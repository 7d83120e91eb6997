package blocks

import "github.com/bethropolis/glint/printer"

// TagBlock prints a short marker in the form `= TAG`, used to label a log
// with machine-readable keywords.
type TagBlock struct {
	tag TextBlock
}

// NewTag returns a tag block.
func NewTag(tag TextBlock) *TagBlock {
	return &TagBlock{tag: tag}
}

// Tag returns the tag text.
func (b *TagBlock) Tag() TextBlock { return b.tag }

// SetTag replaces the tag text.
func (b *TagBlock) SetTag(tag TextBlock) *TagBlock {
	b.tag = tag
	return b
}

// Print renders the marker. The tag is flattened to one line.
func (b *TagBlock) Print(p *printer.Printer) {
	p.Push("=", printer.NewStyle().Bold().Fg(p.Level().Color()))
	p.PushPlain(" ")
	for _, r := range b.tag.SingleLined().Runs() {
		p.Push(r.Text, r.Style.Bold())
	}
}
