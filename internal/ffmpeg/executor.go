package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// ExecOptions controls output handling for Execute.
type ExecOptions struct {
	// Tee copies stderr to os.Stderr in real time in addition to capturing it.
	Tee bool
}

// Execute runs args (binary first) synchronously and captures stderr. The
// call blocks until the process exits; ctx only serves external interruption.
func Execute(ctx context.Context, args []string, opts ExecOptions) ExecResult {
	if len(args) == 0 {
		return ExecResult{Err: errors.New("ffmpeg: empty command")}
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if opts.Tee {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
