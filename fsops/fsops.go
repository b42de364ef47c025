// Package fsops implements the recursive copy and delete engine.
// Both operations run to completion or first failure with no rollback
// and no partial-progress reporting; cancellation, if wanted, is the
// caller's responsibility between top-level calls.
package fsops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mwantia/explorer/data"
	"github.com/mwantia/explorer/log"
)

// DefaultBufferSize is the stream copy buffer used when the caller
// does not supply one.
const DefaultBufferSize = 64 * 1024

// Engine performs recursive filesystem operations with a fixed copy
// buffer size.
type Engine struct {
	bufferSize int
	log        *log.Logger
}

// NewEngine creates an engine with the given buffer size.
// A non-positive size falls back to DefaultBufferSize.
func NewEngine(bufferSize int, logger *log.Logger) *Engine {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if logger == nil {
		logger = log.Discard()
	}

	return &Engine{
		bufferSize: bufferSize,
		log:        logger,
	}
}

// CopyRecursive copies src to dst. Directories are copied by ensuring
// dst exists as a directory and recursing over each child, stopping at
// the first child failure; already-copied children are left in place.
// Files are copied with a buffered stream; a failed copy leaves its
// partial output behind.
//
// Returns ErrDestinationConflict when dst exists but is not a
// directory while src is one.
func (en *Engine) CopyRecursive(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", data.ErrIO, src, err)
	}

	if !info.IsDir() {
		return en.bufferedCopy(src, dst)
	}

	// Create the destination directory
	dstInfo, err := os.Stat(dst)
	switch {
	case err == nil && !dstInfo.IsDir():
		en.log.Error("Failed to check destination dir: %s", dst)
		return fmt.Errorf("%w: %s", data.ErrDestinationConflict, dst)
	case err != nil && errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(dst, 0755); err != nil {
			en.log.Error("Failed to create directory: %s", dst)
			return fmt.Errorf("%w: mkdir %s: %v", data.ErrIO, dst, err)
		}
	case err != nil:
		return fmt.Errorf("%w: stat %s: %v", data.ErrIO, dst, err)
	}

	children, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", data.ErrIO, src, err)
	}

	for _, child := range children {
		childSrc := filepath.Join(src, child.Name())
		childDst := filepath.Join(dst, child.Name())
		if err := en.CopyRecursive(childSrc, childDst); err != nil {
			// Short-circuit; siblings after the failing entry are
			// not attempted and nothing is rolled back.
			return err
		}
	}

	return nil
}

// bufferedCopy streams a single file with the engine's buffer size.
func (en *Engine) bufferedCopy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		en.log.Error("Failed to copy from %s to %s: %v", src, dst, err)
		return fmt.Errorf("%w: open %s: %v", data.ErrIO, src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		en.log.Error("Failed to copy from %s to %s: %v", src, dst, err)
		return fmt.Errorf("%w: create %s: %v", data.ErrIO, dst, err)
	}

	buffer := make([]byte, en.bufferSize)
	if _, err := io.CopyBuffer(out, in, buffer); err != nil {
		out.Close()
		en.log.Error("Failed to copy from %s to %s: %v", src, dst, err)
		return fmt.Errorf("%w: copy %s: %v", data.ErrIO, dst, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", data.ErrIO, dst, err)
	}

	return nil
}

// DeleteRecursive removes a directory tree in post-order: children
// first, sub-directories recursively, then the directory itself. The
// first un-deletable entry aborts the walk and leaves the rest of the
// tree intact.
func (en *Engine) DeleteRecursive(dir string) error {
	children, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", data.ErrIO, dir, err)
	}

	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		if child.IsDir() {
			if err := en.DeleteRecursive(path); err != nil {
				return err
			}
			continue
		}

		if err := os.Remove(path); err != nil {
			return fmt.Errorf("%w: remove %s: %v", data.ErrIO, path, err)
		}
	}

	if err := os.Remove(dir); err != nil {
		return fmt.Errorf("%w: remove %s: %v", data.ErrIO, dir, err)
	}

	return nil
}

// CopyRecursive copies src to dst with the given buffer size.
func CopyRecursive(src, dst string, bufferSize int) error {
	return NewEngine(bufferSize, nil).CopyRecursive(src, dst)
}

// DeleteRecursive removes dir and everything below it.
func DeleteRecursive(dir string) error {
	return NewEngine(0, nil).DeleteRecursive(dir)
}
