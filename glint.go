// Package glint builds rich console diagnostics: leveled logs assembled
// from presentational blocks, including a document block that renders
// highlighted spans of a text the way a compiler reports errors.
//
// A Log is built fluently and rendered at the end:
//
//	glint.Error().
//		Title("unresolved name").
//		Document(source, func(d *blocks.DocumentBlock) error {
//			return d.HighlightRangeMessage(span.NewRange(21, 22),
//				tcell.ColorDefault, blocks.Plain("not found"))
//		}).
//		Log()
//
// Rendering is side-effect free until one of the output methods is
// called; builder errors are collected and surfaced through Err.
package glint

import (
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/glint/blocks"
	"github.com/bethropolis/glint/level"
	"github.com/bethropolis/glint/printer"
)

// Log is a leveled diagnostic: an ordered list of blocks plus an
// optional nested cause printed after the main content.
type Log struct {
	lvl     level.Level
	content blocks.Content
	cause   *Log
	err     error
}

// New returns an empty log at the given level.
func New(lvl level.Level) *Log {
	return &Log{lvl: lvl}
}

// Trace returns an empty trace log.
func Trace() *Log { return New(level.Trace()) }

// Debug returns an empty debug log.
func Debug() *Log { return New(level.Debug()) }

// Info returns an empty info log.
func Info() *Log { return New(level.Info()) }

// Warn returns an empty warn log.
func Warn() *Log { return New(level.Warn()) }

// Error returns an empty error log.
func Error() *Log { return New(level.Error()) }

// Level returns the log level.
func (l *Log) Level() level.Level { return l.lvl }

// Err returns the first error recorded by a builder, usually a rejected
// document highlight. The other builders cannot fail.
func (l *Log) Err() error { return l.err }

func (l *Log) record(err error) {
	if l.err == nil {
		l.err = err
	}
}

// Add appends any printable block.
func (l *Log) Add(b printer.Printable) *Log {
	l.content.Add(b)
	return l
}

// Text appends a plain text block.
func (l *Log) Text(text string) *Log {
	return l.Add(blocks.Plain(text))
}

// Styled appends a styled text block.
func (l *Log) Styled(text string, style printer.Style) *Log {
	return l.Add(blocks.Styled(text, style))
}

// Title appends a headline with the level tag.
func (l *Log) Title(message string) *Log {
	return l.Add(blocks.NewTitle(blocks.Plain(message)))
}

// Header appends a header line with an optional error code and location;
// empty arguments are omitted.
func (l *Log) Header(code, location string) *Log {
	h := blocks.NewHeader()
	if code != "" {
		h.SetCode(code)
	}
	if location != "" {
		h.SetPlainLocation(location)
	}
	return l.Add(h)
}

// Note appends a `= title: message` remark.
func (l *Log) Note(title, message string) *Log {
	return l.Add(blocks.NewNote(blocks.Plain(title), blocks.Plain(message)))
}

// Tag appends a `= TAG` marker.
func (l *Log) Tag(tag string) *Log {
	return l.Add(blocks.NewTag(blocks.Plain(tag)))
}

// Separator appends a horizontal rule of the given display width.
func (l *Log) Separator(width int) *Log {
	return l.Add(blocks.NewSeparator(width))
}

// Blank appends an empty line.
func (l *Log) Blank() *Log {
	return l.Add(blocks.NewBlankSeparator())
}

// StackTrace appends one stack trace frame configured by build.
func (l *Log) StackTrace(build func(*blocks.StackTraceBlock)) *Log {
	b := blocks.NewStackTrace()
	if build != nil {
		build(b)
	}
	return l.Add(b)
}

// Stack appends a framed error stack configured by build.
func (l *Log) Stack(build func(*blocks.StackBlock)) *Log {
	b := blocks.NewStack()
	if build != nil {
		build(b)
	}
	return l.Add(b)
}

// Steps appends a steps frame configured by build.
func (l *Log) Steps(build func(*blocks.StepsBlock)) *Log {
	b := blocks.NewSteps()
	if build != nil {
		build(b)
	}
	return l.Add(b)
}

// Document appends a document block over the given text, configured by
// build. A highlight rejected inside build is recorded and available
// through Err; the block is still appended with the highlights that
// succeeded.
func (l *Log) Document(code string, build func(*blocks.DocumentBlock) error) *Log {
	d := blocks.NewDocument(code)
	if build != nil {
		if err := build(d); err != nil {
			l.record(fmt.Errorf("document block: %w", err))
		}
	}
	return l.Add(d)
}

// Indented appends a nested log whose every line is prefixed.
func (l *Log) Indented(prefix string, build func(*Log)) *Log {
	nested := New(l.lvl)
	if build != nil {
		build(nested)
	}
	if nested.err != nil {
		l.record(nested.err)
	}
	return l.Add(blocks.NewPrefix(blocks.Plain(prefix), nested.content))
}

// Cause attaches a nested log printed after the main content, at the
// same level unless build changes it.
func (l *Log) Cause(build func(*Log)) *Log {
	nested := New(l.lvl)
	if build != nil {
		build(nested)
	}
	if nested.err != nil {
		l.record(nested.err)
	}
	l.cause = nested
	return l
}

// Print implements printer.Printable.
func (l *Log) Print(p *printer.Printer) {
	l.content.Print(p)
	if l.cause != nil {
		p.PushPlain("\n")
		l.cause.Print(p)
	}
}

// Render renders the log in the given format.
func (l *Log) Render(format printer.Format) string {
	p := printer.New(l.lvl, format)
	l.Print(p)
	return p.String()
}

// Plain renders the log without styling.
func (l *Log) Plain() string { return l.Render(printer.FormatPlain) }

// ANSI renders the log with ANSI escapes.
func (l *Log) ANSI() string { return l.Render(printer.FormatStyled) }

// String renders the log, styling it when stdout is a capable terminal.
func (l *Log) String() string { return l.Render(printer.FormatAuto) }

// Log writes the log to stdout, styled when the terminal supports it.
func (l *Log) Log() {
	fmt.Println(l.String())
}

// LogTo writes the log in the given format.
func (l *Log) LogTo(w io.Writer, format printer.Format) error {
	_, err := fmt.Fprintln(w, l.Render(format))
	return err
}

// AppendToFile appends the plain rendition to a file, creating it when
// missing.
func (l *Log) AppendToFile(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append log to %s: %w", path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, l.Plain()); err != nil {
		return fmt.Errorf("append log to %s: %w", path, err)
	}
	return nil
}

// LogAndAppendToFile writes the log to stdout and appends the plain
// rendition to a file.
func (l *Log) LogAndAppendToFile(path string) error {
	l.Log()
	return l.AppendToFile(path)
}
