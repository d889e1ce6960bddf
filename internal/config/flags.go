package config

// This file binds CLI flags. Flags are registered on the command's FlagSet
// before parsing and copied into Config only when the user actually set
// them, so values from the config file and environment survive otherwise.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds raw flag values until [Flags.Apply] merges them into a Config.
type Flags struct {
	ConfigPath string
	Execute    bool
	Quality    int
	SkipPrompt bool
	SourceDir  string
	OutputDir  string
	LogFile    string
	Color      ColorMode
	Verbose    bool
	Check      bool
}

// Register defines all flags on fs. Defaults shown in help come from DefaultConfig.
func (f *Flags) Register(fs *pflag.FlagSet) {
	def := DefaultConfig()
	f.Color = def.ColorMode

	fs.StringVar(&f.ConfigPath, "config", "", "Config file (default: ./"+DefaultFileName+" if present)")
	fs.BoolVar(&f.Execute, "execute", false, "Actually create combined files (default is preview)")
	fs.IntVarP(&f.Quality, "quality", "q", def.Quality, "JPEG quality for combined images (1-100)")
	fs.BoolVar(&f.SkipPrompt, "skip-prompt", false, "Skip the confirmation prompt (for automation)")
	fs.StringVar(&f.SourceDir, "source", def.SourceDir, "Folder containing one subfolder per memory")
	fs.StringVar(&f.OutputDir, "output", def.OutputDir, "Folder for combined files")
	fs.StringVarP(&f.LogFile, "log", "l", "", "Append logs to file")
	fs.Var(&colorModeValue{&f.Color}, "color", "Colored logs: auto | always | never")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&f.Check, "check", "c", false, "Run system diagnostics and exit")
}

// Apply copies every flag the user set on fs into cfg.
func (f *Flags) Apply(cfg *Config, fs *pflag.FlagSet) {
	if f.Execute {
		cfg.Mode = ModeExecute
	}
	if f.Check {
		cfg.CheckOnly = true
	}
	if fs.Changed("quality") {
		cfg.Quality = f.Quality
	}
	if fs.Changed("skip-prompt") {
		cfg.SkipPrompt = f.SkipPrompt
	}
	if fs.Changed("source") {
		cfg.SourceDir = NormalizeDirArg(f.SourceDir)
	}
	if fs.Changed("output") {
		cfg.OutputDir = NormalizeDirArg(f.OutputDir)
	}
	if fs.Changed("log") {
		cfg.LogFile = f.LogFile
	}
	if fs.Changed("color") {
		cfg.ColorMode = f.Color
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.Verbose
	}
}

// pflag.Value adapter so ColorMode is validated at parse time.

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
