// Package printer accumulates styled text runs and renders them either as
// plain text or with ANSI escape sequences.
//
// A Printer is an ordered list of (text, style) runs. Blocks write into a
// Printer instead of concatenating strings, so indentation and styling can
// be applied after the fact without re-parsing anything.
package printer
