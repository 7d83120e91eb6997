// Package level defines the severity levels a log can be rendered at.
// A level carries the numeric ordering used for filtering plus the tag,
// symbol and color used when the level is printed.
package level

import "github.com/gdamore/tcell/v2"

// Level describes a log severity. Levels are plain comparable values;
// two levels with the same fields are the same level.
type Level struct {
	value  int
	tag    string
	symbol string
	color  tcell.Color
}

// New builds a custom level. The value orders the level against the
// built-in ones (Trace is 1000, Error is 5000).
func New(value int, tag, symbol string, color tcell.Color) Level {
	return Level{value: value, tag: tag, symbol: symbol, color: color}
}

// Trace is the most verbose built-in level.
func Trace() Level {
	return Level{value: 1000, tag: "trace", symbol: "•", color: tcell.PaletteColor(102)}
}

// Debug reports diagnostic detail useful during development.
func Debug() Level {
	return Level{value: 2000, tag: "debug", symbol: "•", color: tcell.PaletteColor(2)}
}

// Info reports normal operation.
func Info() Level {
	return Level{value: 3000, tag: "info", symbol: "•", color: tcell.PaletteColor(4)}
}

// Warn reports recoverable problems.
func Warn() Level {
	return Level{value: 4000, tag: "warn", symbol: "⚠", color: tcell.PaletteColor(3)}
}

// Error reports failures.
func Error() Level {
	return Level{value: 5000, tag: "error", symbol: "×", color: tcell.PaletteColor(1)}
}

// Value returns the numeric severity used for ordering.
func (l Level) Value() int { return l.value }

// Tag returns the lowercase name printed in headers ("warn", "error").
func (l Level) Tag() string { return l.tag }

// Symbol returns the single-cell marker printed in titles.
func (l Level) Symbol() string { return l.symbol }

// Color returns the color associated with the level.
func (l Level) Color() tcell.Color { return l.color }

// AtLeast reports whether l is as severe as other.
func (l Level) AtLeast(other Level) bool { return l.value >= other.value }

// Tag setters produce a copy with one field replaced, so callers can
// tweak a built-in level without constructing one from scratch.

// WithTag returns a copy of l with the tag replaced.
func (l Level) WithTag(tag string) Level { l.tag = tag; return l }

// WithSymbol returns a copy of l with the symbol replaced.
func (l Level) WithSymbol(symbol string) Level { l.symbol = symbol; return l }

// WithColor returns a copy of l with the color replaced.
func (l Level) WithColor(c tcell.Color) Level { l.color = c; return l }
