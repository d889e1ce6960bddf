// Package check provides system diagnostics (--check mode) and the single
// per-run probe that decides whether video memories can be processed.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/snapmerge/internal/config"
)

// Sentinel errors returned by CheckFFmpeg.
var (
	ErrFfmpegNotFound = errors.New("ffmpeg not found on PATH")
	ErrFfmpegUnusable = errors.New("ffmpeg found but '-version' failed")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckFFmpeg verifies bin resolves on PATH and answers a version query.
func CheckFFmpeg(bin string) error {
	if _, err := exec.LookPath(bin); err != nil {
		return ErrFfmpegNotFound
	}
	if !runSilent(bin, "-version") {
		return ErrFfmpegUnusable
	}
	return nil
}

// FFmpegAvailable reports whether video overlays can be burned in this run.
func FFmpegAvailable(bin string) bool {
	return CheckFFmpeg(bin) == nil
}

// RunCheck runs the --check flow: ffmpeg and ffprobe versions plus the
// filters the video path needs. Returns false when ffmpeg is unusable.
// Still images never depend on external tools.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	log.Success("Images: built-in JPEG/PNG compositing")

	ok := checkTool(log, "ffmpeg", cfg.FFmpegPath, true)
	checkTool(log, "ffprobe", cfg.FFprobePath, false)
	if ok {
		checkFilters(log, cfg.FFmpegPath)
	} else {
		log.Warn("Videos with overlays will be skipped")
		for _, hint := range InstallHints() {
			log.Info("  %s", hint)
		}
	}
	return ok
}

// InstallHints lists the usual ways to get ffmpeg onto PATH.
func InstallHints() []string {
	return []string{
		"macOS: brew install ffmpeg",
		"Linux: sudo apt-get install ffmpeg",
	}
}

// checkTool logs the first line of "<bin> -version". required selects
// between an error and a warning when the tool is missing.
func checkTool(log Logger, name, bin string, required bool) bool {
	report := log.Warn
	if required {
		report = log.Error
	}
	if _, err := exec.LookPath(bin); err != nil {
		report("%s not found (%s)", name, bin)
		return false
	}
	out, err := exec.Command(bin, "-version").Output()
	if err != nil {
		report("%s found but -version failed: %v", name, err)
		return false
	}
	log.Success("%s: %s", name, firstLine(string(out)))
	return true
}

// checkFilters confirms ffmpeg was built with the overlay and scale filters.
func checkFilters(log Logger, bin string) {
	out, err := exec.Command(bin, "-hide_banner", "-filters").Output()
	if err != nil {
		log.Warn("Could not list filters: %v", err)
		return
	}
	have := parseFilters(string(out))
	for _, name := range []string{"overlay", "scale"} {
		if have[name] {
			log.Success("filter %s: available", name)
		} else {
			log.Error("filter %s: missing", name)
		}
	}
}

// parseFilters extracts filter names from "ffmpeg -filters" output, where
// each filter row is "<flags> <name> <pads> <description>".
func parseFilters(out string) map[string]bool {
	names := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || !strings.Contains(fields[2], "->") {
			continue
		}
		names[fields[1]] = true
	}
	return names
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
