// Package report decodes TOML diagnostic descriptions and builds the
// corresponding logs over their source files.
//
// A report file holds one or more [[diagnostic]] tables:
//
//	[[diagnostic]]
//	level = "error"
//	source = "main.go"
//	title = "unresolved name"
//	final_message = "compilation aborted"
//
//	[[diagnostic.highlight]]
//	start = 21
//	end = 25
//	message = "not found in this scope"
//	color = "red"
package report

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/glint"
	"github.com/bethropolis/glint/blocks"
	"github.com/bethropolis/glint/internal/config"
	"github.com/bethropolis/glint/internal/logger"
	"github.com/bethropolis/glint/level"
	"github.com/bethropolis/glint/span"
	"github.com/gdamore/tcell/v2"
)

// Report is a decoded diagnostic description file.
type Report struct {
	Diagnostics []Diagnostic `toml:"diagnostic"`
}

// Diagnostic describes one log to render.
type Diagnostic struct {
	Level        string      `toml:"level"`
	Title        string      `toml:"title"`
	Source       string      `toml:"source"`
	FilePath     string      `toml:"file_path"`
	FinalMessage string      `toml:"final_message"`
	Tags         []string    `toml:"tags"`
	Notes        []Note      `toml:"note"`
	Highlights   []Highlight `toml:"highlight"`
}

// Note is an auxiliary `= title: message` remark.
type Note struct {
	Title   string `toml:"title"`
	Message string `toml:"message"`
}

// Highlight marks a byte range or a cursor position in the source.
// Exactly one of cursor or start/end must be given.
type Highlight struct {
	Cursor  *int   `toml:"cursor"`
	Start   *int   `toml:"start"`
	End     *int   `toml:"end"`
	Message string `toml:"message"`
	Color   string `toml:"color"`
}

// Load decodes a report file.
func Load(path string) (*Report, error) {
	var r Report
	metadata, err := toml.DecodeFile(path, &r)
	if err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Report %s: unrecognized keys: %v", path, undecoded)
	}
	if len(r.Diagnostics) == 0 {
		return nil, fmt.Errorf("report %s: no diagnostics", path)
	}
	return &r, nil
}

// Build assembles the log for one diagnostic, reading its source file
// and applying the rendering defaults from cfg.
func Build(d *Diagnostic, cfg *config.Config) (*glint.Log, error) {
	lvl, err := parseLevel(d.Level)
	if err != nil {
		return nil, err
	}

	l := glint.New(lvl)
	if d.Title != "" {
		l.Title(d.Title)
	}
	for _, tag := range d.Tags {
		l.Tag(tag)
	}

	if d.Source != "" {
		source, err := os.ReadFile(d.Source)
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", d.Source, err)
		}
		l.Document(string(source), func(doc *blocks.DocumentBlock) error {
			filePath := d.FilePath
			if filePath == "" {
				filePath = d.Source
			}
			doc.FilePath(blocks.Plain(filePath)).
				SecondaryColor(cfg.SecondaryColor()).
				PreviousLines(cfg.Output.PreviousLines).
				NextLines(cfg.Output.NextLines).
				MiddleLines(cfg.Output.MiddleLines).
				AlignMessages(cfg.Output.AlignMessages).
				ShowNewLineChars(cfg.Output.ShowNewLineChars)
			if d.FinalMessage != "" {
				doc.FinalMessage(blocks.Plain(d.FinalMessage))
			}
			for i := range d.Highlights {
				if err := applyHighlight(doc, &d.Highlights[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	for _, n := range d.Notes {
		l.Note(n.Title, n.Message)
	}

	return l, l.Err()
}

func applyHighlight(doc *blocks.DocumentBlock, h *Highlight) error {
	color := tcell.ColorDefault
	if h.Color != "" {
		color = tcell.GetColor(h.Color)
		if color == tcell.ColorDefault {
			return fmt.Errorf("highlight: unknown color %q", h.Color)
		}
	}

	switch {
	case h.Cursor != nil:
		if h.Start != nil || h.End != nil {
			return fmt.Errorf("highlight: cursor and start/end are mutually exclusive")
		}
		if h.Message == "" {
			return doc.HighlightCursor(*h.Cursor, color)
		}
		return doc.HighlightCursorMessage(*h.Cursor, color, blocks.Plain(h.Message))
	case h.Start != nil && h.End != nil:
		r := span.NewRange(*h.Start, *h.End)
		if h.Message == "" {
			return doc.HighlightRange(r, color)
		}
		return doc.HighlightRangeMessage(r, color, blocks.Plain(h.Message))
	default:
		return fmt.Errorf("highlight: needs either cursor or both start and end")
	}
}

func parseLevel(s string) (level.Level, error) {
	switch s {
	case "trace":
		return level.Trace(), nil
	case "debug":
		return level.Debug(), nil
	case "info", "":
		return level.Info(), nil
	case "warn":
		return level.Warn(), nil
	case "error":
		return level.Error(), nil
	}
	return level.Level{}, fmt.Errorf("unknown level %q", s)
}
