// Package compose merges an overlay layer onto its base: [ImageCompositor]
// alpha-blends onto a still photo and re-encodes it as JPEG, [VideoCompositor]
// burns the overlay into a video with ffmpeg.
//
// Both return a [Result] instead of an error. A failed item is reported and
// counted by the caller; it never aborts a run.
package compose
