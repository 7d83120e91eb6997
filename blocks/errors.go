package blocks

import "errors"

var (
	// ErrInvalidRange indicates a highlight range that is reversed or
	// reaches past the end of the document.
	ErrInvalidRange = errors.New("range out of bounds")

	// ErrOverlappingSections indicates a highlight range that shares
	// bytes with an already registered section, or duplicates a cursor
	// mark at the same offset.
	ErrOverlappingSections = errors.New("sections cannot overlap")
)
