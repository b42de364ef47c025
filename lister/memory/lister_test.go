package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mwantia/explorer/data"
	"github.com/mwantia/explorer/lister/memory"
)

func TestMemoryLister_ListDirectChildren(t *testing.T) {
	ctx := context.Background()

	lister := memory.NewMemoryLister()
	lister.AddDirectory("/d")
	lister.AddFile("/d/a.txt", 1, time.Now())
	lister.AddDirectory("/d/sub")
	lister.AddFile("/d/sub/nested.txt", 1, time.Now())

	entries, err := lister.List(ctx, "/d")
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected direct children only, got %d entries", len(entries))
	}
	for _, e := range entries {
		if e.Name == "nested.txt" {
			t.Error("nested entry leaked into the listing")
		}
	}
}

func TestMemoryLister_ListRoot(t *testing.T) {
	ctx := context.Background()

	lister := memory.NewMemoryLister()
	lister.AddFile("/top.txt", 1, time.Now())
	lister.AddDirectory("/d")

	entries, err := lister.List(ctx, "/")
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestMemoryLister_ListErrors(t *testing.T) {
	ctx := context.Background()

	lister := memory.NewMemoryLister()
	lister.AddFile("/plain.txt", 1, time.Now())

	if _, err := lister.List(ctx, "/missing"); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if _, err := lister.List(ctx, "/plain.txt"); !errors.Is(err, data.ErrNotDirectory) {
		t.Errorf("expected ErrNotDirectory, got %v", err)
	}
}

func TestMemoryLister_Resolve(t *testing.T) {
	ctx := context.Background()

	lister := memory.NewMemoryLister()
	lister.AddDirectory("/d")
	target := lister.AddFile("/d/real.txt", 7, time.Now())
	lister.AddSymlink("/d/link", "/d/real.txt")

	resolved, err := lister.Resolve(ctx, "/d/link")
	if err != nil {
		t.Fatalf("Failed to resolve: %v", err)
	}
	if resolved != target {
		t.Error("resolution must return the stored target entry")
	}
}

func TestMemoryLister_ResolveErrors(t *testing.T) {
	ctx := context.Background()

	lister := memory.NewMemoryLister()
	lister.AddDirectory("/d")
	lister.AddFile("/d/plain.txt", 1, time.Now())
	lister.AddSymlink("/d/dangling", "/d/gone.txt")

	if _, err := lister.Resolve(ctx, "/d/plain.txt"); !errors.Is(err, data.ErrNotSymlink) {
		t.Errorf("expected ErrNotSymlink, got %v", err)
	}
	if _, err := lister.Resolve(ctx, "/d/dangling"); !errors.Is(err, data.ErrResolution) {
		t.Errorf("expected ErrResolution, got %v", err)
	}
}
