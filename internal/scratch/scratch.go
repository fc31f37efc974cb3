// Package scratch materializes uploaded bytes to a transient on-disk file for
// the duration of one parse call. The file is deleted on every exit path,
// including when the parse fails.
package scratch

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"ifcdash/domain/core"
)

// WithFile writes src to a uniquely named file under dir (OS temp dir when
// empty), invokes fn with its path, then removes the file. The unique name
// keeps concurrent requests from colliding on a shared scratch path. fn's
// error is returned as-is; write and delete failures surface as TransientIO.
func WithFile(dir, ext string, src io.Reader, fn func(path string) error) error {
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("ifcdash-%s%s", core.NewID(), ext))

	f, err := os.Create(path)
	if err != nil {
		return core.NewScratchError("create scratch file", err)
	}

	_, copyErr := io.Copy(f, src)
	closeErr := f.Close()

	defer func() {
		if rmErr := os.Remove(path); rmErr != nil {
			// Cleanup failure must not mask the real outcome; log and move on.
			log.Printf("[scratch] failed to remove %s: %v", path, rmErr)
		}
	}()

	if copyErr != nil {
		return core.NewScratchError("write scratch file", copyErr)
	}
	if closeErr != nil {
		return core.NewScratchError("close scratch file", closeErr)
	}

	return fn(path)
}
