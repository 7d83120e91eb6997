package blocks

import "github.com/bethropolis/glint/printer"

// Content is an ordered list of blocks printed one per line. It is the
// body of a log.
type Content struct {
	blocks []printer.Printable
}

// Add appends a block.
func (c *Content) Add(b printer.Printable) {
	c.blocks = append(c.blocks, b)
}

// IsEmpty reports whether no blocks have been added.
func (c *Content) IsEmpty() bool { return len(c.blocks) == 0 }

// Len returns the number of blocks.
func (c *Content) Len() int { return len(c.blocks) }

// Print writes every block, separated by line breaks.
func (c *Content) Print(p *printer.Printer) {
	for i, b := range c.blocks {
		if i > 0 {
			p.PushPlain("\n")
		}
		b.Print(p)
	}
}
