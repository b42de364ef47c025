package explorer

import (
	"context"

	"github.com/mwantia/explorer/data"
)

// Lister supplies the initial ordered sequence of typed entries for a
// directory path. The pipeline itself never enumerates a filesystem;
// listers are the external collaborators that do.
type Lister interface {
	// List returns the entries contained in the directory at path.
	List(ctx context.Context, path string) ([]*data.Entry, error)
}

// Resolver determines what a symbolic link points to.
type Resolver interface {
	// Resolve returns the target entry for the symlink at fullPath.
	Resolve(ctx context.Context, fullPath string) (*data.Entry, error)
}

// Matcher decides whether an entry satisfies a requested mime filter.
type Matcher interface {
	Matches(e *data.Entry, filter string) bool
}
