package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// ErrOutputLocked is returned when another execute run holds the lock for
// the same output directory.
var ErrOutputLocked = errors.New("another run is writing to this output directory")

// LockPath returns the lock file guarding outputDir. The name is derived
// from the absolute path so the output directory itself stays flat.
func LockPath(outputDir string) (string, error) {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+abs))
	return filepath.Join(os.TempDir(), "snapmerge-"+id.String()+".lock"), nil
}

// AcquireLock takes the output-directory lock without blocking.
// Release it with Unlock on the returned handle.
func AcquireLock(outputDir string) (*flock.Flock, error) {
	path, err := LockPath(outputDir)
	if err != nil {
		return nil, err
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrOutputLocked, path)
	}
	return lock, nil
}
