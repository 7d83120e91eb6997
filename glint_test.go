package glint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/glint/blocks"
	"github.com/bethropolis/glint/span"
	"github.com/gdamore/tcell/v2"
)

func TestLogJoinsBlocksWithLineBreaks(t *testing.T) {
	l := Error().
		Tag("PARSE").
		Note("expected", "an expression")

	if got := l.Plain(); got != "= PARSE\n= expected: an expression" {
		t.Fatalf("got %q", got)
	}
	if err := l.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogCause(t *testing.T) {
	l := Warn().
		Text("could not load the config").
		Cause(func(c *Log) {
			c.Text("file not found")
		})

	if got := l.Plain(); got != "could not load the config\nfile not found" {
		t.Fatalf("got %q", got)
	}
}

func TestLogIndented(t *testing.T) {
	l := Info().Indented(" | ", func(c *Log) {
		c.Text("first\nsecond")
	})

	if got := l.Plain(); got != " | first\n | second" {
		t.Fatalf("got %q", got)
	}
}

func TestLogDocument(t *testing.T) {
	l := Error().Document("let x = 1;", func(d *blocks.DocumentBlock) error {
		return d.HighlightRangeMessage(span.NewRange(4, 5), tcell.ColorDefault, blocks.Plain("unused"))
	})

	want := "× ╭─\n1 │    let x = 1;\n  │        ╰── unused\n  ╰─"
	if got := l.Plain(); got != want {
		t.Fatalf("got:\n%s", got)
	}
	if err := l.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogDocumentRecordsHighlightError(t *testing.T) {
	l := Error().Document("short", func(d *blocks.DocumentBlock) error {
		return d.HighlightRange(span.NewRange(0, 100), tcell.ColorDefault)
	})

	if !errors.Is(l.Err(), blocks.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", l.Err())
	}
}

func TestLogANSI(t *testing.T) {
	l := Error().Tag("X")
	if got := l.ANSI(); got != "\x1b[1;31m= \x1b[0m\x1b[1mX\x1b[0m" {
		t.Fatalf("got %q", got)
	}
}

func TestLogHeader(t *testing.T) {
	l := Error().Header("c-0001", "src/parser.go:3:26")
	if got := l.Plain(); got != "ERROR[c-0001] in src/parser.go:3:26" {
		t.Fatalf("got %q", got)
	}
}

func TestLogAppendToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diag.log")

	if err := Info().Text("first").AppendToFile(path); err != nil {
		t.Fatal(err)
	}
	if err := Info().Text("second").AppendToFile(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "first\nsecond\n" {
		t.Fatalf("got %q", got)
	}
}

func TestLogStackTrace(t *testing.T) {
	l := Error().
		Text("panic recovered").
		StackTrace(func(b *blocks.StackTraceBlock) {
			b.SetFileLocation(blocks.Plain("main.go:42")).
				SetCodePath(blocks.Plain("main.run"))
		})

	if got := l.Plain(); got != "panic recovered\nmain.go:42(main.run)" {
		t.Fatalf("got %q", got)
	}
}

func TestLogStack(t *testing.T) {
	l := Error().Stack(func(b *blocks.StackBlock) {
		b.SetMessage(blocks.Plain("boom")).
			AddStackTrace(blocks.NewStackTrace().SetFileLocation(blocks.Plain("main.go:42")))
	})

	if got := l.Plain(); got != "╭─▶ boom\n│   at main.go:42\n╰─" {
		t.Fatalf("got %q", got)
	}
}

func TestLogSteps(t *testing.T) {
	l := Info().Steps(func(b *blocks.StepsBlock) {
		b.SetTitle(blocks.Plain("build")).
			AddStep(blocks.Plain("compile")).
			AddStep(blocks.Plain("link"))
	})

	if got := l.Plain(); got != "• build\n├─▶ compile\n├─▶ link\n╰─" {
		t.Fatalf("got %q", got)
	}
}

func TestLogSeparator(t *testing.T) {
	l := Info().Text("above").Separator(5).Text("below")
	if got := l.Plain(); got != "above\n─────\nbelow" {
		t.Fatalf("got %q", got)
	}
	if got := Info().Text("a").Blank().Text("b").Plain(); !strings.Contains(got, "a\n\nb") {
		t.Fatalf("blank separator: %q", got)
	}
}
