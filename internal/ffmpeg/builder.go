package ffmpeg

import "fmt"

// OverlayJob describes one overlay burn-in.
type OverlayJob struct {
	BasePath    string
	OverlayPath string
	OutputPath  string

	// ScaleWidth and ScaleHeight, when both positive, stretch the overlay to
	// the base video's frame size before compositing.
	ScaleWidth  int
	ScaleHeight int

	Verbose bool
}

// FilterGraph returns the -filter_complex expression for job. The overlay
// is placed at the origin; a still image input repeats its only frame, so it
// stays visible for the full duration of the base.
func FilterGraph(job OverlayJob) string {
	if job.ScaleWidth > 0 && job.ScaleHeight > 0 {
		return fmt.Sprintf("[1:v]scale=%d:%d[ovl];[0:v][ovl]overlay=0:0", job.ScaleWidth, job.ScaleHeight)
	}
	return "[0:v][1:v]overlay=0:0"
}

// Build constructs the complete argument slice (binary first) for job.
// Video is re-encoded with ffmpeg's defaults for the output container, audio
// is copied untouched, and an existing output file is overwritten.
func Build(bin string, job OverlayJob) []string {
	args := make([]string, 0, 20)

	// --- Preamble ---
	args = append(args, bin, "-hide_banner", "-nostdin", "-y")
	if job.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Inputs ---
	args = append(args, "-i", job.BasePath, "-i", job.OverlayPath)

	// --- Filter graph and streams ---
	args = append(args, "-filter_complex", FilterGraph(job))
	args = append(args, "-c:a", "copy")

	// --- Output ---
	args = append(args, job.OutputPath)
	return args
}
