package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwantia/explorer/data"
)

// LocalResolver resolves symlinks on the host filesystem.
// It shares the virtual-root confinement of LocalLister.
type LocalResolver struct {
	root string
}

// NewLocalResolver creates a resolver confined to the given root.
func NewLocalResolver(root string) *LocalResolver {
	if root != "" {
		root = filepath.Clean(root)
	}

	return &LocalResolver{
		root: root,
	}
}

// Resolve returns the entry the symlink at fullPath points to.
// The target is followed to its final destination, so a link chain
// resolves to the real file or directory.
func (lr *LocalResolver) Resolve(ctx context.Context, fullPath string) (*data.Entry, error) {
	virtual := cleanVirtual(fullPath)
	real := lr.resolvePath(virtual)

	dest, err := os.Readlink(real)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", data.ErrResolution, fullPath, err)
	}

	// Relative targets are anchored at the symlink's directory.
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(virtual), dest)
	}

	// Stat follows the whole chain, degrading dangling links to a
	// resolution failure.
	info, err := os.Stat(lr.resolvePath(dest))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", data.ErrResolution, fullPath, err)
	}

	return newEntry(filepath.Base(dest), filepath.Dir(dest), info), nil
}

func (lr *LocalResolver) resolvePath(path string) string {
	if lr.root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(lr.root, filepath.Clean(path))
}
