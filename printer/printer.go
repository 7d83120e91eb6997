package printer

import (
	"strings"

	"github.com/bethropolis/glint/level"
)

// Run is a piece of text rendered under one style.
type Run struct {
	Text  string
	Style Style
}

// Printable is anything that can write itself into a Printer.
type Printable interface {
	Print(p *Printer)
}

// Printer accumulates runs for one rendition of a log.
type Printer struct {
	lvl    level.Level
	format Format
	runs   []Run
}

// New returns an empty printer for the given level and format.
func New(lvl level.Level, format Format) *Printer {
	return &Printer{lvl: lvl, format: format}
}

// Derive returns an empty printer sharing the level and format, used to
// build a fragment that is indented or measured before being appended.
func (p *Printer) Derive() *Printer {
	return &Printer{lvl: p.lvl, format: p.format}
}

// Level returns the level the printer renders at.
func (p *Printer) Level() level.Level { return p.lvl }

// Format returns the requested output format.
func (p *Printer) Format() Format { return p.format }

// Push appends a styled run. Empty text is dropped.
func (p *Printer) Push(text string, style Style) {
	if text == "" {
		return
	}
	p.runs = append(p.runs, Run{Text: text, Style: style})
}

// PushPlain appends an unstyled run.
func (p *Printer) PushPlain(text string) {
	p.Push(text, Style{})
}

// PushRuns appends a list of prepared runs.
func (p *Printer) PushRuns(runs []Run) {
	for _, r := range runs {
		p.Push(r.Text, r.Style)
	}
}

// Append moves the other printer's runs onto p.
func (p *Printer) Append(other *Printer) {
	p.runs = append(p.runs, other.runs...)
}

// AppendLines appends the other printer's runs on a fresh line.
func (p *Printer) AppendLines(other *Printer) {
	p.PushPlain("\n")
	p.Append(other)
}

// Runs returns the accumulated runs.
func (p *Printer) Runs() []Run { return p.runs }

// Empty reports whether nothing has been pushed.
func (p *Printer) Empty() bool { return len(p.runs) == 0 }

// Indent inserts the prefix runs after every line break in the
// accumulated runs, and before the first line when indentFirstLine is
// set. A fragment consisting only of ASCII whitespace takes the style of
// the prefix's last run, so gutters keep a single open style across
// blank stretches; fragments with visible characters keep their own
// style.
func (p *Printer) Indent(prefix []Run, indentFirstLine bool) {
	if len(prefix) == 0 || len(p.runs) == 0 {
		return
	}
	inherited := prefix[len(prefix)-1].Style

	out := make([]Run, 0, len(p.runs)+len(prefix))
	if indentFirstLine {
		out = append(out, prefix...)
	}
	for _, run := range p.runs {
		start := 0
		first := true
		for {
			if !first {
				out = append(out, prefix...)
			}
			rel := strings.IndexByte(run.Text[start:], '\n')
			end := len(run.Text)
			if rel >= 0 {
				end = start + rel + 1
			}
			if frag := run.Text[start:end]; frag != "" {
				style := run.Style
				if isWhitespace(frag) {
					style = inherited
				}
				out = append(out, Run{Text: frag, Style: style})
			}
			if rel < 0 {
				break
			}
			start = end
			first = false
		}
	}
	p.runs = out
}

// String renders the runs in the printer's format, resolving FormatAuto
// against the environment.
func (p *Printer) String() string {
	if p.format.Resolve() == FormatStyled {
		return p.styled()
	}
	return p.plain()
}

func (p *Printer) plain() string {
	var sb strings.Builder
	for _, r := range p.runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// styled emits ANSI escapes at run boundaries. Three rules keep the
// output tight: runs styled like the active style emit no escapes,
// whitespace-only runs never change the active style, and a run's
// leading newlines are written before its style change so escapes sit at
// the start of the visible content.
func (p *Printer) styled() string {
	var sb strings.Builder
	var active Style
	open := false

	for _, r := range p.runs {
		if r.Text == "" {
			continue
		}
		if r.Style == active || isWhitespace(r.Text) {
			sb.WriteString(r.Text)
			continue
		}
		i := 0
		for i < len(r.Text) && r.Text[i] == '\n' {
			i++
		}
		sb.WriteString(r.Text[:i])
		if open {
			sb.WriteString("\x1b[0m")
		}
		if sgr := r.Style.sgr(); sgr != "" {
			sb.WriteString("\x1b[" + sgr + "m")
			open = true
		} else {
			open = false
		}
		active = r.Style
		sb.WriteString(r.Text[i:])
	}
	if open {
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}

// Sprint renders a single printable at the given level and format.
func Sprint(b Printable, lvl level.Level, format Format) string {
	p := New(lvl, format)
	b.Print(p)
	return p.String()
}

func isWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			return false
		}
	}
	return true
}
