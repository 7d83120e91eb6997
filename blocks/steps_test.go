package blocks

import (
	"testing"

	"github.com/bethropolis/glint/level"
	"github.com/bethropolis/glint/printer"
	"github.com/bethropolis/glint/span"
	"github.com/gdamore/tcell/v2"
)

func TestStepsPlainEmpty(t *testing.T) {
	b := NewSteps()
	if got := render(t, b, level.Trace(), printer.FormatPlain); got != "•\n╰─" {
		t.Errorf("got:\n%s", got)
	}
}

func TestStepsPlainTitle(t *testing.T) {
	b := NewSteps().SetTitle(Plain("This is\na title"))
	want := "• This is\n│ a title\n╰─"
	if got := render(t, b, level.Debug(), printer.FormatPlain); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestStepsPlainFinalMessage(t *testing.T) {
	b := NewSteps().SetFinalMessage(Plain("This is\na message"))
	want := "•\n╰─▶ This is\n    a message"
	if got := render(t, b, level.Info(), printer.FormatPlain); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestStepsPlainSteps(t *testing.T) {
	b := NewSteps().
		AddStep(Plain("Line 1\nLine 2")).
		AddStep(NewSeparator(20)).
		AddStep(Plain("Line 1\nLine 2")).
		AddStep(NewBlankSeparator())

	want := "⚠\n├─▶ Line 1\n│   Line 2\n│   ────────────────────\n├─▶ Line 1\n│   Line 2\n│   \n╰─"
	if got := render(t, b, level.Warn(), printer.FormatPlain); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

// Document steps share the widest line-number gutter so their frames
// stay aligned.
func TestStepsPlainAll(t *testing.T) {
	first := NewDocument(documentCode)
	if err := first.HighlightRange(span.NewRange(14, 20), tcell.ColorDefault); err != nil {
		t.Fatal(err)
	}
	second := NewDocument(documentCode).NextLines(50)
	if err := second.HighlightRange(span.NewRange(52, 58), tcell.ColorDefault); err != nil {
		t.Fatal(err)
	}

	b := NewSteps().
		SetTitle(Plain("This is\na title")).
		SetFinalMessage(Plain("This is\na message")).
		AddStep(first).
		AddStep(NewSeparator(20)).
		AddStep(second).
		AddStep(NewBlankSeparator())

	want := "× This is\n" +
		"│ a title\n" +
		"├─▶  × ╭─\n" +
		"│    3 │    Line 3\n" +
		"│      │    ╰────╯\n" +
		"│      ╰─\n" +
		"│   ────────────────────\n" +
		"├─▶  × ╭─\n" +
		"│    8 │    Line 8\n" +
		"│      │       ╰────▶\n" +
		"│    9 │    Line 9\n" +
		"│      │  ▶──╯\n" +
		"│   10 │    Line 10\n" +
		"│      ╰─\n" +
		"│   \n" +
		"╰─▶ This is\n" +
		"    a message"
	if got := render(t, b, level.Error(), printer.FormatPlain); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestStepsStyledEmpty(t *testing.T) {
	b := NewSteps()
	if got := render(t, b, level.Trace(), printer.FormatStyled); got != "\x1b[1;38;5;102m•\n╰─\x1b[0m" {
		t.Errorf("got %q", got)
	}
}

func TestStepsStyledTitle(t *testing.T) {
	b := NewSteps().SetTitle(Plain("This is\na title"))
	want := "\x1b[1;32m• \x1b[0mThis is\n\x1b[1;32m│ \x1b[0ma title\n\x1b[1;32m╰─\x1b[0m"
	if got := render(t, b, level.Debug(), printer.FormatStyled); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStepsStyledFinalMessage(t *testing.T) {
	b := NewSteps().SetFinalMessage(Plain("This is\na message"))
	want := "\x1b[1;34m•\n╰─▶ \x1b[0mThis is\n    a message"
	if got := render(t, b, level.Info(), printer.FormatStyled); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStepsStyledSteps(t *testing.T) {
	b := NewSteps().
		AddStep(Plain("Line 1\nLine 2")).
		AddStep(NewSeparator(20)).
		AddStep(Plain("Line 1\nLine 2")).
		AddStep(NewBlankSeparator())

	want := "\x1b[1;33m⚠\n├─▶ \x1b[0mLine 1\n" +
		"\x1b[1;33m│   \x1b[0mLine 2\n" +
		"\x1b[1;33m│   ────────────────────\n├─▶ \x1b[0mLine 1\n" +
		"\x1b[1;33m│   \x1b[0mLine 2\n" +
		"\x1b[1;33m│   \n╰─\x1b[0m"
	if got := render(t, b, level.Warn(), printer.FormatStyled); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
