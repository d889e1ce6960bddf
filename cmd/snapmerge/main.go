// Command snapmerge flattens exported memories (a base photo or video plus a
// transparent overlay PNG) into single combined files.
//
// It loads configuration, then either runs system diagnostics (--check) or
// the combine pipeline. Preview is the default; --execute writes files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "snapmerge: %v\n", err)
		}
		os.Exit(1)
	}
}
