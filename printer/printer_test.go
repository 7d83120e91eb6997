package printer

import (
	"testing"

	"github.com/bethropolis/glint/level"
	"github.com/gdamore/tcell/v2"
)

var (
	testBold = NewStyle().Bold()
	testRed  = NewStyle().Fg(tcell.PaletteColor(1))
)

func TestPlainRender(t *testing.T) {
	p := New(level.Info(), FormatPlain)
	p.PushPlain("hello ")
	p.Push("world", testBold)
	p.Push("", testRed)
	if got := p.String(); got != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", got)
	}
}

func TestIndentPlain(t *testing.T) {
	p := New(level.Info(), FormatPlain)
	p.PushPlain("this\nis\n\na\ntest\n")
	p.Push("::a\nplain\ntest\n", testRed)

	p.Indent([]Run{{Text: "-->>", Style: testBold}}, true)

	want := "-->>this\n-->>is\n-->>\n-->>a\n-->>test\n-->>::a\n-->>plain\n-->>test\n-->>"
	if got := p.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIndentWithoutFirstLine(t *testing.T) {
	p := New(level.Info(), FormatPlain)
	p.PushPlain("one\ntwo")
	p.Indent([]Run{{Text: "  "}}, false)
	if got := p.String(); got != "one\n  two" {
		t.Errorf("expected %q, got %q", "one\n  two", got)
	}
}

func TestIndentNested(t *testing.T) {
	p := New(level.Info(), FormatPlain)
	p.PushPlain("a\nb")
	p.Indent([]Run{{Text: "."}}, false)
	p.Indent([]Run{{Text: "-"}}, true)
	p.Indent([]Run{{Text: ">"}}, true)
	if got := p.String(); got != ">-a\n>-.b" {
		t.Errorf("expected %q, got %q", ">-a\n>-.b", got)
	}
}

func TestIndentWhitespaceInheritsPrefixStyle(t *testing.T) {
	p := New(level.Info(), FormatPlain)
	p.Push("x\n\ny", testRed)
	p.Indent([]Run{{Text: "| ", Style: testBold}}, true)

	runs := p.Runs()
	// | x\n  | \n  | y
	want := []Run{
		{Text: "| ", Style: testBold},
		{Text: "x\n", Style: testRed},
		{Text: "| ", Style: testBold},
		{Text: "\n", Style: testBold},
		{Text: "| ", Style: testBold},
		{Text: "y", Style: testRed},
	}
	if len(runs) != len(want) {
		t.Fatalf("expected %d runs, got %d: %+v", len(want), len(runs), runs)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d: expected %+v, got %+v", i, want[i], runs[i])
		}
	}
}

func TestStyledRender(t *testing.T) {
	p := New(level.Info(), FormatStyled)
	p.PushPlain("this\nis\n\na\ntest\n")
	p.Push("::a\nplain", testRed)
	p.Indent([]Run{{Text: "-->>", Style: testBold}}, true)

	want := "\x1b[1m-->>\x1b[0mthis\n" +
		"\x1b[1m-->>\x1b[0mis\n" +
		"\x1b[1m-->>\n-->>\x1b[0ma\n" +
		"\x1b[1m-->>\x1b[0mtest\n" +
		"\x1b[1m-->>\x1b[0m\x1b[31m::a\n" +
		"\x1b[0m\x1b[1m-->>\x1b[0m\x1b[31mplain\x1b[0m"
	if got := p.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStyledMergesEqualRuns(t *testing.T) {
	p := New(level.Info(), FormatStyled)
	p.Push("ab", testRed)
	p.Push("cd", testRed)
	p.PushPlain("ef")
	want := "\x1b[31mabcd\x1b[0mef"
	if got := p.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStyledWhitespaceAbsorbed(t *testing.T) {
	p := New(level.Info(), FormatStyled)
	p.Push("a", testRed)
	p.Push("\n  ", NewStyle())
	p.Push("b", testRed)
	want := "\x1b[31ma\n  b\x1b[0m"
	if got := p.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStyledLeadingNewlineStaysBeforeStyleChange(t *testing.T) {
	p := New(level.Info(), FormatStyled)
	p.Push("head", testBold)
	p.Push("\n6 ", NewStyle().Bold().Fg(tcell.PaletteColor(8)))
	want := "\x1b[1mhead\n\x1b[0m\x1b[1;90m6 \x1b[0m"
	if got := p.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAppendLines(t *testing.T) {
	p := New(level.Info(), FormatPlain)
	p.PushPlain("first")
	q := p.Derive()
	q.PushPlain("second")
	p.AppendLines(q)
	if got := p.String(); got != "first\nsecond" {
		t.Errorf("expected %q, got %q", "first\nsecond", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"auto", FormatAuto, true},
		{"", FormatAuto, true},
		{"plain", FormatPlain, true},
		{"styled", FormatStyled, true},
		{"ansi", FormatStyled, true},
		{"bogus", FormatAuto, false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFormat(%q): expected (%v,%v), got (%v,%v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestResolveHonorsEnvironment(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "1")
	if got := FormatAuto.Resolve(); got != FormatStyled {
		t.Errorf("CLICOLOR_FORCE=1: expected styled, got %v", got)
	}

	t.Setenv("CLICOLOR_FORCE", "0")
	t.Setenv("NO_COLOR", "")
	if got := FormatAuto.Resolve(); got != FormatPlain {
		t.Errorf("NO_COLOR set: expected plain, got %v", got)
	}

	if got := FormatPlain.Resolve(); got != FormatPlain {
		t.Error("explicit formats must pass through")
	}
	if got := FormatStyled.Resolve(); got != FormatStyled {
		t.Error("explicit formats must pass through")
	}
}
