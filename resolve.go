package explorer

import (
	"context"

	"github.com/mwantia/explorer/data"
	"github.com/mwantia/explorer/log"
)

// ResolveLinks fills in the target of every unresolved symlink in the
// list using the given resolver. Resolution failures for individual
// entries are non-fatal: the entry stays unresolved and the batch
// continues. Already-resolved symlinks are left untouched per the
// write-once invariant.
//
// Returns the number of entries resolved in this pass.
func ResolveLinks(ctx context.Context, entries []*data.Entry, r Resolver, logger *log.Logger) int {
	if r == nil {
		return 0
	}
	if logger == nil {
		logger = log.Discard()
	}

	resolved := 0
	for _, e := range entries {
		if e.Kind != data.KindSymlink || e.HasLinkTarget() {
			continue
		}

		target, err := r.Resolve(ctx, e.FullPath())
		if err != nil {
			logger.Debug("Failed to resolve symlink %s: %v", e.FullPath(), err)
			continue
		}

		if e.SetLinkTarget(target) {
			resolved++
		}
	}

	return resolved
}
