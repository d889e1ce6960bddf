package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/backmassage/snapmerge/internal/compose"
	"github.com/backmassage/snapmerge/internal/config"
	"github.com/backmassage/snapmerge/internal/display"
	"github.com/backmassage/snapmerge/internal/memory"
)

// Logger is the logging surface the runner needs; *logging.Logger satisfies it.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// ImageCombiner flattens an overlay onto a still base.
type ImageCombiner interface {
	CombineImage(basePath, overlayPath, outputPath string, quality int) compose.Result
}

// VideoCombiner burns an overlay into every frame of a base video.
type VideoCombiner interface {
	CombineVideo(ctx context.Context, basePath, overlayPath, outputPath string) compose.Result
}

// Options controls one pass of [Runner.Run].
type Options struct {
	OutputDir          string
	Mode               config.RunMode
	Quality            int
	VideoToolAvailable bool
	Verbose            bool
}

// Runner processes discovered items one at a time.
type Runner struct {
	log    Logger
	images ImageCombiner
	videos VideoCombiner
}

// NewRunner returns a Runner using the given compositors.
func NewRunner(log Logger, images ImageCombiner, videos VideoCombiner) *Runner {
	return &Runner{log: log, images: images, videos: videos}
}

// Run combines every item in order and returns the totals. In execute mode
// the output directory is created first; failing to create it is the only
// error. A cancelled context stops the loop between items.
func (r *Runner) Run(ctx context.Context, items []memory.OverlayItem, opts Options) (RunReport, error) {
	report := RunReport{RunID: uuid.New().String(), Total: len(items)}
	execute := opts.Mode == config.ModeExecute

	if execute {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return report, fmt.Errorf("create output directory: %w", err)
		}
	}

	for i, item := range items {
		if ctx.Err() != nil {
			r.log.Warn("Interrupted after %d of %d memories", i, len(items))
			break
		}
		report.Current = i + 1
		r.processItem(ctx, item, opts, execute, &report)
	}
	return report, nil
}

// processItem handles one memory: classify → derive output → combine or predict.
func (r *Runner) processItem(ctx context.Context, item memory.OverlayItem, opts Options, execute bool, report *RunReport) {
	kind := item.Kind()
	r.log.Info("[%d/%d] %s (%s)", report.Current, report.Total, item.Name, kind)

	switch kind {
	case memory.KindImage:
		report.ImageCandidates++
	case memory.KindVideo:
		report.VideoCandidates++
	default:
		report.Unclassified++
		r.log.Debug(opts.Verbose, "  No base image or video, nothing to combine")
		return
	}

	if kind == memory.KindVideo && !opts.VideoToolAvailable {
		report.VideosSkipped++
		r.log.Warn("  Skipping video (ffmpeg not available)")
		return
	}

	name := item.OutputName()
	outputPath := filepath.Join(opts.OutputDir, name)
	r.log.Debug(opts.Verbose, "  base: %s", filepath.Base(item.Base()))
	r.log.Debug(opts.Verbose, "  overlay: %s", filepath.Base(item.Overlay()))

	if !execute {
		r.log.Success("  [PREVIEW] Would create %s", name)
		r.count(kind, report)
		return
	}

	r.log.Info("  Creating %s", name)
	var res compose.Result
	if kind == memory.KindImage {
		res = r.images.CombineImage(item.Base(), item.Overlay(), outputPath, opts.Quality)
	} else {
		res = r.videos.CombineVideo(ctx, item.Base(), item.Overlay(), outputPath)
	}

	if !res.OK {
		report.Errors++
		logDetail(r.log, res.Detail)
		return
	}
	r.count(kind, report)
	report.BytesWritten += res.Bytes
	r.log.Success("  Saved (%s)", display.FormatBytes(res.Bytes))
}

func (r *Runner) count(kind memory.Kind, report *RunReport) {
	if kind == memory.KindImage {
		report.ImagesWritten++
	} else {
		report.VideosWritten++
	}
}

// logDetail logs a multi-line failure reason one line at a time.
func logDetail(log Logger, detail string) {
	lines := strings.Split(strings.TrimSpace(detail), "\n")
	log.Error("  Failed: %s", lines[0])
	for _, l := range lines[1:] {
		log.Error("    %s", l)
	}
}
