// Package pipeline drives a run: validate configuration, discover memories,
// probe ffmpeg once, then combine each memory in discovery order and report
// the totals.
//
// [Runner] is the per-item loop. It never aborts on a failed item; the only
// way to stop early is to cancel the context. [Execute] wraps the loop with
// discovery, the tool probe, the output-directory lock and the summary.
package pipeline
