// Package explorer implements a typed filesystem object model and the
// listing pipeline that turns raw directory entries into what an end
// user sees: preference-driven filtering, stable sorting, lazy symlink
// resolution, human-readable sizes, and unique-name generation.
//
// Directory enumeration, preference persistence, and symlink target
// lookup are delegated to external collaborators (Lister, prefs.Store,
// Resolver) so the pipeline itself stays pure and testable.
package explorer

import (
	"context"
	"fmt"

	"github.com/mwantia/explorer/data"
	"github.com/mwantia/explorer/log"
	"github.com/mwantia/explorer/prefs"
)

// Explorer wires a lister, a preference store, and the optional
// resolution collaborators into the listing pipeline.
type Explorer struct {
	lister   Lister
	store    prefs.Store
	resolver Resolver
	matcher  Matcher
	units    []string
	noParent bool

	log *log.Logger
}

// New creates an Explorer over the given lister.
func New(lister Lister, opts ...Option) (*Explorer, error) {
	if lister == nil {
		return nil, fmt.Errorf("%w: no lister configured", data.ErrInvalidPath)
	}

	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return &Explorer{
		lister:   lister,
		store:    options.Store,
		resolver: options.Resolver,
		matcher:  options.Matcher,
		units:    options.SizeUnits,
		noParent: options.NoParentEntry,

		log: log.NewLogger("explorer", options.LogLevel, options.LogFile, options.NoTerminalLog),
	}, nil
}

// Browse lists a directory and applies the user preferences: raw
// entries from the lister, then filter, then sort. Symlink targets are
// not resolved here; call ResolveLinks on the result when needed.
//
// The mime filter only takes effect in restricted mode; pass
// mimetype.AllTypes (or "") to match everything.
func (ex *Explorer) Browse(ctx context.Context, path, mime string, restricted bool) ([]*data.Entry, error) {
	entries, err := ex.lister.List(ctx, path)
	if err != nil {
		return nil, err
	}

	snap, err := prefs.Load(ctx, ex.store)
	if err != nil {
		return nil, err
	}

	if !ex.noParent && !IsRootPath(path) {
		entries = append(entries, data.NewParent(RemoveTrailingSlash(path)))
	}

	entries = Filter(entries, mime, restricted, snap, ex.matcher)
	Sort(entries, snap)

	ex.log.Debug("Browsed %s: %d entries", path, len(entries))
	return entries, nil
}

// ResolveLinks resolves the unresolved symlinks of a listing through
// the configured resolver. Per-entry failures are skipped.
func (ex *Explorer) ResolveLinks(ctx context.Context, entries []*data.Entry) int {
	return ResolveLinks(ctx, entries, ex.resolver, ex.log)
}

// Snapshot loads the current preference snapshot.
func (ex *Explorer) Snapshot(ctx context.Context) (prefs.Snapshot, error) {
	return prefs.Load(ctx, ex.store)
}

// FormatSize renders the displayable size of an entry using the
// configured unit labels.
func (ex *Explorer) FormatSize(e *data.Entry) string {
	return EntrySize(e, ex.units)
}

// Logger exposes the explorer's logger for collaborators that want to
// share it.
func (ex *Explorer) Logger() *log.Logger {
	return ex.log
}
