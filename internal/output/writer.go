package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrOutputWrite wraps every failure to persist an asset.
var ErrOutputWrite = errors.New("output write failed")

// EnsureDir creates dir and its parents. It is a no-op when dir exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: cannot create output directory %q: %v", ErrOutputWrite, dir, err)
	}
	return nil
}

// WriteFile streams write's output into path. Data goes to a temporary file
// next to path which replaces path only once fully written, so a failure
// never leaves a truncated asset behind. Existing files are overwritten.
func WriteFile(path string, write func(io.Writer) error) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("%w: cannot create %s: %v", ErrOutputWrite, filepath.Base(path), err)
	}
	defer func() {
		f.Close()
		os.Remove(tmpPath) // clean up if not renamed
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: cannot finalize %s: %v", ErrOutputWrite, filepath.Base(path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: cannot finalize %s: %v", ErrOutputWrite, filepath.Base(path), err)
	}
	return nil
}
