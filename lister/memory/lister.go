// Package memory provides a btree-indexed in-memory directory tree.
// It backs tests and fixtures the same way a real lister backs the
// pipeline, and doubles as a pure symlink resolver.
package memory

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/btree"

	"github.com/mwantia/explorer/data"
)

// MemoryLister keeps a full directory tree in memory, indexed by
// clean absolute path for ordered prefix scans.
type MemoryLister struct {
	mu      sync.RWMutex
	entries *btree.Map[string, *data.Entry]

	// Symlink path -> target path
	targets map[string]string
}

func NewMemoryLister() *MemoryLister {
	ml := &MemoryLister{
		entries: btree.NewMap[string, *data.Entry](0),
		targets: make(map[string]string),
	}

	owner, group, perm := data.RestrictedIdentity()
	root := data.NewDirectory("", "", owner, group, perm|data.PermDir, time.Now())
	ml.entries.Set("/", root)

	return ml
}

// AddDirectory inserts a directory at the given absolute path.
func (ml *MemoryLister) AddDirectory(p string) *data.Entry {
	owner, group, perm := data.RestrictedIdentity()
	e := data.NewDirectory(path.Base(p), path.Dir(p), owner, group, perm|data.PermDir, time.Now())
	ml.put(p, e)
	return e
}

// AddFile inserts a regular file with the given size.
func (ml *MemoryLister) AddFile(p string, size int64, modTime time.Time) *data.Entry {
	owner, group, perm := data.RestrictedIdentity()
	e := data.NewRegularFile(path.Base(p), path.Dir(p), owner, group, perm, modTime, size)
	ml.put(p, e)
	return e
}

// AddSymlink inserts a symlink pointing at target.
func (ml *MemoryLister) AddSymlink(p, target string) *data.Entry {
	owner, group, perm := data.RestrictedIdentity()
	e := data.NewSymlink(path.Base(p), path.Dir(p), owner, group, perm, time.Now())

	ml.mu.Lock()
	ml.targets[path.Clean(p)] = path.Clean(target)
	ml.mu.Unlock()

	ml.put(p, e)
	return e
}

// AddEntry inserts an arbitrary prepared entry at the given path.
func (ml *MemoryLister) AddEntry(p string, e *data.Entry) {
	ml.put(p, e)
}

// List returns the direct children of the directory at path.
func (ml *MemoryLister) List(ctx context.Context, p string) ([]*data.Entry, error) {
	ml.mu.RLock()
	defer ml.mu.RUnlock()

	dir := path.Clean(p)
	parent, exists := ml.entries.Get(dir)
	if !exists {
		return nil, data.ErrNotExist
	}
	if parent.Kind != data.KindDirectory {
		return nil, data.ErrNotDirectory
	}

	prefix := dir
	if prefix != "/" {
		prefix += "/"
	}

	var children []*data.Entry
	ml.entries.Scan(func(key string, e *data.Entry) bool {
		if key == dir || !strings.HasPrefix(key, prefix) {
			return true
		}
		// Direct children only
		if strings.Contains(key[len(prefix):], "/") {
			return true
		}
		children = append(children, e)
		return true
	})

	return children, nil
}

// Resolve implements the symlink resolution command against the
// in-memory tree.
func (ml *MemoryLister) Resolve(ctx context.Context, fullPath string) (*data.Entry, error) {
	ml.mu.RLock()
	defer ml.mu.RUnlock()

	target, exists := ml.targets[path.Clean(fullPath)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", data.ErrNotSymlink, fullPath)
	}

	e, exists := ml.entries.Get(target)
	if !exists {
		return nil, fmt.Errorf("%w: %s: dangling target %s", data.ErrResolution, fullPath, target)
	}

	return e, nil
}

func (ml *MemoryLister) put(p string, e *data.Entry) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.entries.Set(path.Clean(p), e)
}
