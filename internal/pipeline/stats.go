package pipeline

// RunReport accumulates outcomes across one pass over the discovered items.
// In preview mode the Written counters hold what would have been written.
type RunReport struct {
	RunID string

	Total   int // Items handed to the runner.
	Current int // Items visited so far.

	ImageCandidates int
	VideoCandidates int
	Unclassified    int // Overlay present but no base to combine with.

	ImagesWritten int
	VideosWritten int
	VideosSkipped int // Video items seen while ffmpeg was unavailable.
	Errors        int

	BytesWritten int64
}

// Written returns the number of outputs produced (or, in preview, planned).
func (r *RunReport) Written() int {
	return r.ImagesWritten + r.VideosWritten
}

// Candidates returns the number of items that had a base to combine with.
func (r *RunReport) Candidates() int {
	return r.ImageCandidates + r.VideoCandidates
}
