package blocks

import "github.com/bethropolis/glint/printer"

// PrefixBlock prints arbitrary content with every line prefixed by a
// styled text block, e.g. to quote a nested log.
type PrefixBlock struct {
	prefix  TextBlock
	content Content
}

// NewPrefix returns a prefix block around the given content.
func NewPrefix(prefix TextBlock, content Content) *PrefixBlock {
	return &PrefixBlock{prefix: prefix, content: content}
}

// Prefix returns the prefix text.
func (b *PrefixBlock) Prefix() TextBlock { return b.prefix }

// Content returns the wrapped content.
func (b *PrefixBlock) Content() *Content { return &b.content }

// SetPrefix replaces the prefix text.
func (b *PrefixBlock) SetPrefix(prefix TextBlock) *PrefixBlock {
	b.prefix = prefix
	return b
}

// Print renders the content indented by the prefix, first line included.
func (b *PrefixBlock) Print(p *printer.Printer) {
	prefixPrinter := p.Derive()
	b.prefix.Print(prefixPrinter)

	contentPrinter := p.Derive()
	b.content.Print(contentPrinter)

	contentPrinter.Indent(prefixPrinter.Runs(), true)
	p.Append(contentPrinter)
}
