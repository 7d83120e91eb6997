// Package blocks contains the presentational building pieces of a log:
// styled text, prefixed content, separators, notes, tags, stack traces and
// the document block that renders highlighted source spans the way a
// compiler reports errors.
//
// Every block implements printer.Printable and writes styled runs into a
// printer.Printer; nothing here performs I/O.
package blocks
