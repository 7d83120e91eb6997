package printer

import (
	"os"

	"golang.org/x/term"
)

// Format selects how a printer renders its runs.
type Format int

const (
	// FormatAuto styles the output when stdout is a terminal that has
	// not opted out of color.
	FormatAuto Format = iota
	// FormatPlain renders text only.
	FormatPlain
	// FormatStyled always renders ANSI escapes.
	FormatStyled
)

// Resolve maps FormatAuto to a concrete format using the conventional
// environment switches and a terminal check. CLICOLOR_FORCE and NO_COLOR
// take precedence over detection, in that order.
func (f Format) Resolve() Format {
	if f != FormatAuto {
		return f
	}
	if force, ok := os.LookupEnv("CLICOLOR_FORCE"); ok && force != "0" {
		return FormatStyled
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return FormatPlain
	}
	if os.Getenv("CLICOLOR") == "0" {
		return FormatPlain
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return FormatStyled
	}
	return FormatPlain
}

// String implements flag.Value-style naming for configs and flags.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatStyled:
		return "styled"
	default:
		return "auto"
	}
}

// ParseFormat maps a config or flag value to a Format.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "auto", "":
		return FormatAuto, true
	case "plain":
		return FormatPlain, true
	case "styled", "ansi":
		return FormatStyled, true
	}
	return FormatAuto, false
}
