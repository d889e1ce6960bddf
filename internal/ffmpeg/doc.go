// Package ffmpeg builds and runs the single ffmpeg invocation that burns an
// overlay image into a base video, and classifies ffmpeg's stderr so a
// failure can be reported with a short hint.
//
// Types:
//   - OverlayJob (inputs, output, optional overlay scale target)
//   - ExecResult (captured stderr and exit error)
//
// Functions:
//   - Build(bin, job) → []string
//   - Execute(ctx, args, opts) → ExecResult
//   - Classify(stderr) → Hint, Tail(stderr, n) → string
package ffmpeg
