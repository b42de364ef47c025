// Package local lists directories of the host filesystem.
// All paths handed to the lister are virtual absolute paths that get
// resolved against an optional root, which restricts browsing to a
// subtree.
package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mwantia/explorer/data"
)

// LocalLister supplies raw entries from the host filesystem.
type LocalLister struct {
	mu   sync.RWMutex
	root string
}

// NewLocalLister creates a lister confined to the given root
// directory. An empty root exposes the host filesystem as-is.
func NewLocalLister(root string) *LocalLister {
	if root != "" {
		root = filepath.Clean(root)
	}

	return &LocalLister{
		root: root,
	}
}

// List returns the entries contained in the directory at path.
// Entries whose metadata cannot be read are skipped; a listing never
// carries partially built entries.
func (ll *LocalLister) List(ctx context.Context, path string) ([]*data.Entry, error) {
	ll.mu.RLock()
	defer ll.mu.RUnlock()

	fullPath := ll.resolvePath(path)
	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, data.ErrNotExist
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, data.ErrPermission
		}
		return nil, err
	}

	if !info.IsDir() {
		return nil, data.ErrNotDirectory
	}

	children, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, err
	}

	dir := cleanVirtual(path)
	entries := make([]*data.Entry, 0, len(children))
	for _, child := range children {
		info, err := child.Info()
		if err != nil {
			continue
		}
		entries = append(entries, newEntry(child.Name(), dir, info))
	}

	return entries, nil
}

// Stat wraps a single path into an entry for ad-hoc use.
func (ll *LocalLister) Stat(ctx context.Context, path string) (*data.Entry, error) {
	ll.mu.RLock()
	defer ll.mu.RUnlock()

	info, err := os.Lstat(ll.resolvePath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, data.ErrNotExist
		}
		return nil, err
	}

	virtual := cleanVirtual(path)
	return newEntry(filepath.Base(virtual), filepath.Dir(virtual), info), nil
}

// resolvePath joins the lister root with the virtual path.
func (ll *LocalLister) resolvePath(path string) string {
	if ll.root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(ll.root, filepath.Clean(path))
}

// cleanVirtual normalizes a virtual path to an absolute form.
func cleanVirtual(path string) string {
	cleaned := filepath.Clean(path)
	if !filepath.IsAbs(cleaned) {
		cleaned = "/" + cleaned
	}
	return cleaned
}

// newEntry builds a typed entry from a stat result. Ownership uses
// the restricted fallback identity; real uid/gid lookups are outside
// this lister's contract.
func newEntry(name, dir string, info fs.FileInfo) *data.Entry {
	owner, group, _ := data.RestrictedIdentity()
	perm := permissionsFromMode(info.Mode())

	switch data.KindFromMode(info.Mode()) {
	case data.KindDirectory:
		return data.NewDirectory(name, dir, owner, group, perm, info.ModTime())
	case data.KindSymlink:
		return data.NewSymlink(name, dir, owner, group, perm, info.ModTime())
	case data.KindRegular:
		return data.NewRegularFile(name, dir, owner, group, perm, info.ModTime(), info.Size())
	default:
		return data.NewEntry(data.KindFromMode(info.Mode()), name, dir, owner, group, perm, info.ModTime())
	}
}

// permissionsFromMode converts a stat mode into raw permission bits.
func permissionsFromMode(mode fs.FileMode) data.Permissions {
	p := data.Permissions(mode.Perm())

	switch data.KindFromMode(mode) {
	case data.KindDirectory:
		p |= data.PermDir
	case data.KindSymlink:
		p |= data.PermSymlink
	case data.KindBlockDevice:
		p |= data.PermBlockDev
	case data.KindCharDevice:
		p |= data.PermCharDev
	case data.KindNamedPipe:
		p |= data.PermNamedPipe
	case data.KindSocket:
		p |= data.PermSocket
	}

	return p
}
