// Command glint renders the diagnostics described by a TOML report file
// over their source files, styled for the terminal.
//
// Usage:
//
//	glint [flags] report.toml
package main

import (
	"fmt"
	stlog "log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/glint"
	"github.com/bethropolis/glint/internal/config"
	"github.com/bethropolis/glint/internal/logger"
	"github.com/bethropolis/glint/internal/report"
	"github.com/bethropolis/glint/printer"
	"golang.org/x/term"
)

const version = "0.1.0"

func main() {
	var flags config.Flags
	args := flags.ParseFlags()

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, err := config.Load(&flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	if len(args) != 1 {
		logger.Fatalf("Expected exactly one report file, got %d arguments", len(args))
	}
	reportPath := args[0]

	rep, err := report.Load(reportPath)
	if err != nil {
		logger.Fatalf("Failed to load report: %v", err)
	}
	logger.Infof("Rendering %d diagnostics from %s", len(rep.Diagnostics), reportPath)

	format, _ := printer.ParseFormat(cfg.Output.Format)
	separator := separatorWidth(cfg)

	var plain strings.Builder
	for i := range rep.Diagnostics {
		d := &rep.Diagnostics[i]

		l, err := report.Build(d, cfg)
		if err != nil {
			logger.Fatalf("Diagnostic %d: %v", i+1, err)
		}
		if i > 0 {
			fmt.Println(glint.New(l.Level()).Separator(separator).Render(format))
		}
		fmt.Println(l.Render(format))

		if i > 0 {
			plain.WriteString("\n")
		}
		plain.WriteString(l.Plain())
		plain.WriteString("\n")
	}

	if flags.OutputFile != nil && *flags.OutputFile != "" {
		if err := os.WriteFile(*flags.OutputFile, []byte(plain.String()), 0o644); err != nil {
			logger.Fatalf("Failed to write %s: %v", *flags.OutputFile, err)
		}
		logger.Infof("Wrote plain rendition to %s", *flags.OutputFile)
	}

	if flags.Copy != nil && *flags.Copy {
		if err := clipboard.WriteAll(plain.String()); err != nil {
			logger.Errorf("Failed to copy to clipboard: %v", err)
		} else {
			logger.Infof("Copied plain rendition to clipboard")
		}
	}
}

// initLogger opens the log sink and initializes the logger package.
func initLogger(cfg *config.Config) {
	lvl, _ := logger.ParseLevel(cfg.Logger.LogLevel)

	switch path := cfg.Logger.LogFilePath; path {
	case "":
		logger.Init(lvl, nil)
	case "-":
		logger.Init(lvl, os.Stderr)
	default:
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			stlog.Fatalf("Failed to open log file %q: %v", path, err)
		}
		logger.Init(lvl, logFile)
	}
}

// separatorWidth clamps the configured separator width to the terminal.
func separatorWidth(cfg *config.Config) int {
	width := cfg.Output.SeparatorWidth
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 && cols < width {
		width = cols
	}
	return width
}
