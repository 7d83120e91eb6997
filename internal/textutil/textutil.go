// Package textutil has small text helpers shared by the block renderers.
package textutil

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Spaces returns n spaces. Negative counts return the empty string.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Repeat returns s repeated n times, tolerating negative counts.
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// SingleLine flattens line breaks to spaces so a value can be embedded in
// a one-line slot such as a file path or a note title.
func SingleLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// Width returns the display width of s in terminal cells, aware of wide
// characters and grapheme clusters.
func Width(s string) int {
	return uniseg.StringWidth(s)
}
