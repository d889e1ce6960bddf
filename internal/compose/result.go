package compose

import "fmt"

// Result is the outcome of one compositor call.
type Result struct {
	OK     bool
	Detail string // Human-readable failure reason; empty on success.
	Bytes  int64  // Size of the written output on success.
}

func succeeded(size int64) Result {
	return Result{OK: true, Bytes: size}
}

func failed(step string, err error) Result {
	return Result{Detail: fmt.Sprintf("%s: %v", step, err)}
}
