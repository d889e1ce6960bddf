// Package config holds runtime configuration: defaults, the optional TOML
// file, SNAPMERGE_* environment overrides, CLI flag binding, and validation.
// Defaults match the folder layout of a memories export.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// RunMode selects whether a run only reports or actually writes outputs.
type RunMode string

const (
	ModePreview RunMode = "preview" // Report intended actions only (default).
	ModeExecute RunMode = "execute" // Write combined files.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Quality bounds for JPEG re-encoding.
const (
	MinQuality     = 1
	MaxQuality     = 100
	DefaultQuality = 95
)

// Sentinel errors returned by [Config.Validate].
var (
	ErrInvalidQuality = errors.New("quality must be between 1 and 100")
	ErrInvalidMode    = errors.New("invalid run mode (use 'preview' or 'execute')")
	ErrInvalidColor   = errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	ErrMissingDirs    = errors.New("source and output directories must not be empty")
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then layered with [LoadFile], [ApplyEnv] and [Flags.Apply] before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	SourceDir string `toml:"source_dir"` // Default: "snapchat_memories".
	OutputDir string `toml:"output_dir"` // Default: "snapchat_memories_combined".

	// Behavior.
	Mode       RunMode `toml:"-"`           // Default: preview. Only --execute switches it.
	Quality    int     `toml:"quality"`     // JPEG quality, 1-100. Default: 95.
	SkipPrompt bool    `toml:"skip_prompt"` // Skip the interactive confirmation.

	// External tools.
	FFmpegPath  string `toml:"ffmpeg_path"`  // Default: "ffmpeg".
	FFprobePath string `toml:"ffprobe_path"` // Default: "ffprobe".

	// Display and logging.
	Verbose   bool      `toml:"verbose"`
	ColorMode ColorMode `toml:"color"`    // Default: "auto".
	LogFile   string    `toml:"log_file"` // Optional log file path.
	CheckOnly bool      `toml:"-"`        // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with the defaults used when no file,
// environment or flag overrides are present.
func DefaultConfig() Config {
	return Config{
		SourceDir:   "snapchat_memories",
		OutputDir:   "snapchat_memories_combined",
		Mode:        ModePreview,
		Quality:     DefaultQuality,
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		ColorMode:   ColorAuto,
	}
}

// Execute reports whether the run writes files.
func (c *Config) Execute() bool { return c.Mode == ModeExecute }

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks quality range and enum fields. When not in CheckOnly mode
// it also requires non-empty source and output paths. Quality is checked
// first so an out-of-range value is rejected before anything else runs.
func (c *Config) Validate() error {
	if c.Quality < MinQuality || c.Quality > MaxQuality {
		return fmt.Errorf("%w (got %d)", ErrInvalidQuality, c.Quality)
	}

	switch c.Mode {
	case ModePreview, ModeExecute:
		// valid
	default:
		return ErrInvalidMode
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return ErrInvalidColor
	}

	if strings.TrimSpace(c.FFmpegPath) == "" {
		return errors.New("ffmpeg path must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.SourceDir == "" || c.OutputDir == "" {
		return ErrMissingDirs
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved source directory, otherwise a later run would discover
// its own output folder as a memory. Both arguments must be absolute paths.
func (c *Config) ValidatePaths(sourceAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == sourceAbs || strings.HasPrefix(outputAbs+sep, sourceAbs+sep) {
		return errors.New("output directory must not be inside source directory")
	}
	return nil
}
