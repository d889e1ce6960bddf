package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/backmassage/snapmerge/internal/check"
	"github.com/backmassage/snapmerge/internal/compose"
	"github.com/backmassage/snapmerge/internal/config"
	"github.com/backmassage/snapmerge/internal/display"
	"github.com/backmassage/snapmerge/internal/memory"
)

// Execute is the top-level run: validate → discover → probe ffmpeg →
// lock (execute only) → combine → summary. Configuration, discovery and
// lock errors are returned; per-item failures only show up in the report.
func Execute(ctx context.Context, cfg *config.Config, log Logger) (RunReport, error) {
	if err := cfg.Validate(); err != nil {
		return RunReport{}, err
	}
	sourceAbs, err := filepath.Abs(cfg.SourceDir)
	if err != nil {
		return RunReport{}, fmt.Errorf("resolve source dir: %w", err)
	}
	outputAbs, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return RunReport{}, fmt.Errorf("resolve output dir: %w", err)
	}
	if err := cfg.ValidatePaths(sourceAbs, outputAbs); err != nil {
		return RunReport{}, err
	}

	log.Info("Scanning %s for memories with overlays...", cfg.SourceDir)
	items, err := memory.Discover(cfg.SourceDir)
	if err != nil {
		return RunReport{}, fmt.Errorf("discover memories: %w", err)
	}
	if len(items) == 0 {
		log.Success("No memories with overlays found in %s", cfg.SourceDir)
		return RunReport{}, nil
	}

	videoTool := check.FFmpegAvailable(cfg.FFmpegPath)
	logBatchHeader(cfg, log, items, videoTool)

	if cfg.Execute() {
		lock, err := AcquireLock(outputAbs)
		if err != nil {
			return RunReport{}, err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				log.Warn("Release lock: %v", err)
			}
		}()
	}

	runner := NewRunner(log, compose.ImageCompositor{}, compose.VideoCompositor{
		FFmpeg:  cfg.FFmpegPath,
		FFprobe: cfg.FFprobePath,
		Verbose: cfg.Verbose,
	})
	report, err := runner.Run(ctx, items, Options{
		OutputDir:          cfg.OutputDir,
		Mode:               cfg.Mode,
		Quality:            cfg.Quality,
		VideoToolAvailable: videoTool,
		Verbose:            cfg.Verbose,
	})
	if err != nil {
		return report, err
	}

	logSummary(cfg, log, &report)
	return report, nil
}

func logBatchHeader(cfg *config.Config, log Logger, items []memory.OverlayItem, videoTool bool) {
	var images, videos int
	for _, it := range items {
		switch it.Kind() {
		case memory.KindImage:
			images++
		case memory.KindVideo:
			videos++
		}
	}
	log.Info("Found %d memories with overlays (%d images, %d videos)", len(items), images, videos)

	if !videoTool && videos > 0 {
		log.Warn("ffmpeg not found: %d videos with overlays will be skipped", videos)
		for _, hint := range check.InstallHints() {
			log.Warn("  %s", hint)
		}
	}
	if cfg.Execute() {
		log.Info("Mode: execute, writing to %s (JPEG quality %d)", cfg.OutputDir, cfg.Quality)
	} else {
		log.Warn("Mode: preview, no files will be created")
	}
}

func logSummary(cfg *config.Config, log Logger, r *RunReport) {
	verb := "Created"
	if !cfg.Execute() {
		verb = "Would create"
	}
	rows := [][]string{
		{verb + " images", strconv.Itoa(r.ImagesWritten)},
		{verb + " videos", strconv.Itoa(r.VideosWritten)},
		{"Skipped videos (no ffmpeg)", strconv.Itoa(r.VideosSkipped)},
		{"Without base file", strconv.Itoa(r.Unclassified)},
		{"Errors", strconv.Itoa(r.Errors)},
	}
	if cfg.Execute() {
		rows = append(rows, []string{"Bytes written", display.FormatBytes(r.BytesWritten)})
	}

	log.Info("Summary (run %s, %d of %d memories visited):", r.RunID, r.Current, r.Total)
	log.Info("%s: %d of %d combinable memories", verb, r.Written(), r.Candidates())
	table := display.RenderTable([]string{"Outcome", "Count"}, rows, []display.Align{display.AlignLeft, display.AlignRight})
	for _, line := range strings.Split(table, "\n") {
		log.Info("%s", line)
	}

	switch {
	case r.Errors > 0:
		log.Error("%d memories failed; see messages above", r.Errors)
	case !cfg.Execute():
		log.Info("To create the combined files, rerun with --execute")
	default:
		log.Success("Files saved to %s", cfg.OutputDir)
	}
}
