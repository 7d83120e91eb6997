package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags. Pointers
// distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	Format         *string
	OutputFile     *string
	Copy           *bool
	LogLevel       *string
	LogFilePath    *string
	PreviousLines  *int
	NextLines      *int
	MiddleLines    *int
	AlignMessages  *bool
	NewLineChars   *bool
	SeparatorWidth *int
}

// DefineFlags sets up the command-line flags.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.Format = flag.String("format", "", "Output format (auto, plain, styled) - Overrides config file")
	f.OutputFile = flag.String("o", "", "Write the plain rendition to this file")
	f.Copy = flag.Bool("copy", false, "Copy the plain rendition to the system clipboard")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.PreviousLines = flag.Int("previous-lines", -1, "Context lines before the first highlight - Overrides config file")
	f.NextLines = flag.Int("next-lines", -1, "Context lines after the last highlight - Overrides config file")
	f.MiddleLines = flag.Int("middle-lines", -1, "Lines replayed between highlights before collapsing - Overrides config file")
	f.AlignMessages = flag.Bool("align", false, "Align highlight messages in a column - Overrides config file")
	f.NewLineChars = flag.Bool("newline-chars", false, "Render line terminators as ↩ - Overrides config file")
	f.SeparatorWidth = flag.Int("width", 0, "Separator width in cells (default: terminal width) - Overrides config file")
}

// ParseFlags parses the defined command-line flags and returns the
// remaining non-flag arguments.
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the config with values from flags that were
// actually set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "format":
			if *f.Format != "" {
				cfg.Output.Format = *f.Format
			}
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "previous-lines":
			if *f.PreviousLines >= 0 {
				cfg.Output.PreviousLines = *f.PreviousLines
			}
		case "next-lines":
			if *f.NextLines >= 0 {
				cfg.Output.NextLines = *f.NextLines
			}
		case "middle-lines":
			if *f.MiddleLines >= 0 {
				cfg.Output.MiddleLines = *f.MiddleLines
			}
		case "align":
			cfg.Output.AlignMessages = *f.AlignMessages
		case "newline-chars":
			cfg.Output.ShowNewLineChars = *f.NewLineChars
		case "width":
			if *f.SeparatorWidth > 0 {
				cfg.Output.SeparatorWidth = *f.SeparatorWidth
			}
		}
	})
}
