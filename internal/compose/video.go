package compose

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/backmassage/snapmerge/internal/ffmpeg"
	"github.com/backmassage/snapmerge/internal/probe"
)

// stderrTailLines bounds how much ffmpeg output a failure Result carries.
const stderrTailLines = 20

// VideoCompositor burns an overlay image into a base video with ffmpeg.
// Callers check ffmpeg availability once per run and skip videos when it is
// missing; the compositor itself never probes for the binary.
type VideoCompositor struct {
	FFmpeg  string // ffmpeg binary.
	FFprobe string // ffprobe binary; "" disables matching the overlay to the frame size.
	Verbose bool   // Tee ffmpeg output to the terminal.
}

// CombineVideo runs one blocking ffmpeg invocation that overlays overlayPath
// onto basePath at the origin, copies audio, and overwrites outputPath.
func (v VideoCompositor) CombineVideo(ctx context.Context, basePath, overlayPath, outputPath string) Result {
	job := ffmpeg.OverlayJob{
		BasePath:    basePath,
		OverlayPath: overlayPath,
		OutputPath:  outputPath,
		Verbose:     v.Verbose,
	}
	pr := v.probe(ctx, basePath)
	job.ScaleWidth, job.ScaleHeight = scaleTarget(pr, overlayPath)

	res := ffmpeg.Execute(ctx, ffmpeg.Build(v.FFmpeg, job), ffmpeg.ExecOptions{Tee: v.Verbose})
	if res.Err != nil {
		return Result{Detail: describeFailure(res, pr)}
	}

	var size int64
	if fi, err := os.Stat(outputPath); err == nil {
		size = fi.Size()
	}
	return succeeded(size)
}

// probe returns nil when ffprobe is disabled or fails.
func (v VideoCompositor) probe(ctx context.Context, basePath string) *probe.ProbeResult {
	if v.FFprobe == "" {
		return nil
	}
	pr, err := probe.Probe(ctx, v.FFprobe, basePath)
	if err != nil {
		return nil
	}
	return pr
}

// scaleTarget returns the base video's displayed frame size when it differs
// from the overlay's pixel size, and 0, 0 when no scaling is needed or the
// sizes cannot be determined.
func scaleTarget(pr *probe.ProbeResult, overlayPath string) (int, int) {
	if pr == nil {
		return 0, 0
	}
	w, h, ok := pr.DisplaySize()
	if !ok {
		return 0, 0
	}
	ow, oh, err := imageSize(overlayPath)
	if err != nil || (ow == w && oh == h) {
		return 0, 0
	}
	return w, h
}

// imageSize reads only the header of an image file.
func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

func describeFailure(res ffmpeg.ExecResult, pr *probe.ProbeResult) string {
	msg := fmt.Sprintf("ffmpeg failed: %v", res.Err)
	if hint := ffmpeg.Classify(res.Stderr); hint != ffmpeg.HintNone {
		msg += " (" + string(hint) + ")"
	}
	if pr != nil {
		audio := "no audio"
		if pr.HasAudio() {
			audio = "audio copied"
		}
		msg += fmt.Sprintf("\nbase video: %s, %.1fs, %s", pr.Resolution(), pr.Format.Duration, audio)
	}
	if tail := ffmpeg.Tail(res.Stderr, stderrTailLines); tail != "" {
		msg += "\n" + tail
	}
	return msg
}
