package explorer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mwantia/explorer"
	"github.com/mwantia/explorer/data"
	memlister "github.com/mwantia/explorer/lister/memory"
	"github.com/mwantia/explorer/log"
	"github.com/mwantia/explorer/mimetype"
	memstore "github.com/mwantia/explorer/prefs/memory"
)

func newTestExplorer(t *testing.T, lister explorer.Lister, opts ...explorer.Option) *explorer.Explorer {
	opts = append(opts,
		explorer.WithLogLevel(log.Error),
		explorer.WithoutTerminalLog(),
		explorer.WithMatcher(mimetype.NewResolver()),
	)

	ex, err := explorer.New(lister, opts...)
	if err != nil {
		t.Fatalf("Failed to create explorer: %v", err)
	}
	return ex
}

func TestExplorer_BrowsePipeline(t *testing.T) {
	ctx := context.Background()

	lister := memlister.NewMemoryLister()
	lister.AddDirectory("/d")
	lister.AddFile("/d/.hidden", 1, time.Now())
	lister.AddDirectory("/d/zeta")
	lister.AddFile("/d/Alpha", 1, time.Now())

	ex := newTestExplorer(t, lister)

	entries, err := ex.Browse(ctx, "/d", mimetype.AllTypes, false)
	if err != nil {
		t.Fatalf("Failed to browse: %v", err)
	}

	// Defaults hide dotfiles, put the parent first and directories
	// before files.
	if !equalNames(entries, data.ParentDirectory, "zeta", "Alpha") {
		t.Errorf("unexpected listing %v", names(entries))
	}
}

func TestExplorer_BrowseRootHasNoParent(t *testing.T) {
	ctx := context.Background()

	lister := memlister.NewMemoryLister()
	lister.AddFile("/top.txt", 1, time.Now())

	ex := newTestExplorer(t, lister)

	entries, err := ex.Browse(ctx, "/", mimetype.AllTypes, false)
	if err != nil {
		t.Fatalf("Failed to browse: %v", err)
	}

	if explorer.NameExists(entries, data.ParentDirectory) {
		t.Errorf("root listing must not contain a parent entry: %v", names(entries))
	}
}

func TestExplorer_BrowseWithoutParentEntry(t *testing.T) {
	ctx := context.Background()

	lister := memlister.NewMemoryLister()
	lister.AddDirectory("/d")
	lister.AddFile("/d/a.txt", 1, time.Now())

	ex := newTestExplorer(t, lister, explorer.WithoutParentEntry())

	entries, err := ex.Browse(ctx, "/d", mimetype.AllTypes, false)
	if err != nil {
		t.Fatalf("Failed to browse: %v", err)
	}

	if explorer.NameExists(entries, data.ParentDirectory) {
		t.Errorf("parent entry must be suppressed: %v", names(entries))
	}
}

func TestExplorer_BrowseHonorsStore(t *testing.T) {
	ctx := context.Background()

	lister := memlister.NewMemoryLister()
	lister.AddDirectory("/d")
	lister.AddFile("/d/.hidden", 1, time.Now())
	lister.AddFile("/d/plain", 1, time.Now())

	store := memstore.NewMemoryStore()
	store.SetBool("show_hidden", true)

	ex := newTestExplorer(t, lister, explorer.WithStore(store))

	entries, err := ex.Browse(ctx, "/d", mimetype.AllTypes, false)
	if err != nil {
		t.Fatalf("Failed to browse: %v", err)
	}

	if !explorer.NameExists(entries, ".hidden") {
		t.Errorf("show_hidden preference ignored: %v", names(entries))
	}
}

func TestExplorer_BrowseMissingDirectory(t *testing.T) {
	ctx := context.Background()

	ex := newTestExplorer(t, memlister.NewMemoryLister())

	if _, err := ex.Browse(ctx, "/missing", mimetype.AllTypes, false); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestExplorer_ResolveThroughLister(t *testing.T) {
	ctx := context.Background()

	lister := memlister.NewMemoryLister()
	lister.AddDirectory("/d")
	lister.AddFile("/d/real.txt", 2048, time.Now())
	lister.AddSymlink("/d/link", "/d/real.txt")

	store := memstore.NewMemoryStore()
	store.SetBool("show_symlinks", true)

	ex := newTestExplorer(t, lister,
		explorer.WithStore(store),
		explorer.WithResolver(lister),
	)

	entries, err := ex.Browse(ctx, "/d", mimetype.AllTypes, false)
	if err != nil {
		t.Fatalf("Failed to browse: %v", err)
	}

	if resolved := ex.ResolveLinks(ctx, entries); resolved != 1 {
		t.Fatalf("expected 1 resolved entry, got %d", resolved)
	}

	for _, e := range entries {
		if e.Name != "link" {
			continue
		}
		if got := ex.FormatSize(e); got != "2 KB" {
			t.Errorf("resolved link size: got %q", got)
		}
	}
}

func TestExplorer_RequiresLister(t *testing.T) {
	if _, err := explorer.New(nil); err == nil {
		t.Error("expected an error for a nil lister")
	}
}
