// Package span locates byte offsets inside UTF-8 text and keeps ordered,
// non-overlapping byte ranges.
//
// A Cursor resolves a byte offset to its character offset, line and column
// without the caller tracking any of those separately. A RangeMap is a
// sorted interval index used to reject overlapping ranges before they are
// turned into rendered sections.
package span
