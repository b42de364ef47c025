package explorer_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mwantia/explorer"
	"github.com/mwantia/explorer/data"
)

// stubResolver resolves from a fixed path-to-entry table and counts
// the calls it receives.
type stubResolver struct {
	targets map[string]*data.Entry
	calls   int
}

func (sr *stubResolver) Resolve(ctx context.Context, fullPath string) (*data.Entry, error) {
	sr.calls++
	target, exists := sr.targets[fullPath]
	if !exists {
		return nil, fmt.Errorf("%w: %s", data.ErrResolution, fullPath)
	}
	return target, nil
}

func TestResolveLinks_FillsTargets(t *testing.T) {
	owner, group, perm := data.RestrictedIdentity()
	now := time.Now()

	target := data.NewRegularFile("real.txt", "/files", owner, group, perm, now, 42)
	link := data.NewSymlink("link", "/d", owner, group, perm, now)
	plain := data.NewRegularFile("plain.txt", "/d", owner, group, perm, now, 1)

	resolver := &stubResolver{targets: map[string]*data.Entry{
		"/d/link": target,
	}}

	resolved := explorer.ResolveLinks(context.Background(), []*data.Entry{link, plain}, resolver, nil)
	if resolved != 1 {
		t.Fatalf("expected 1 resolved entry, got %d", resolved)
	}
	if !link.HasLinkTarget() || link.LinkTarget() != target {
		t.Error("link target not assigned")
	}
	if resolver.calls != 1 {
		t.Errorf("non-symlink entries must not hit the resolver, calls = %d", resolver.calls)
	}
}

func TestResolveLinks_FailuresAreNonFatal(t *testing.T) {
	owner, group, perm := data.RestrictedIdentity()
	now := time.Now()

	target := data.NewRegularFile("real.txt", "/files", owner, group, perm, now, 42)
	good := data.NewSymlink("good", "/d", owner, group, perm, now)
	dangling := data.NewSymlink("dangling", "/d", owner, group, perm, now)

	resolver := &stubResolver{targets: map[string]*data.Entry{
		"/d/good": target,
	}}

	resolved := explorer.ResolveLinks(context.Background(), []*data.Entry{dangling, good}, resolver, nil)
	if resolved != 1 {
		t.Fatalf("expected 1 resolved entry, got %d", resolved)
	}
	if dangling.HasLinkTarget() {
		t.Error("dangling link must stay unresolved")
	}
	if !good.HasLinkTarget() {
		t.Error("entries after a failure must still resolve")
	}
}

func TestResolveLinks_WriteOnce(t *testing.T) {
	owner, group, perm := data.RestrictedIdentity()
	now := time.Now()

	first := data.NewRegularFile("first.txt", "/files", owner, group, perm, now, 1)
	second := data.NewRegularFile("second.txt", "/files", owner, group, perm, now, 2)
	link := data.NewSymlink("link", "/d", owner, group, perm, now)

	resolver := &stubResolver{targets: map[string]*data.Entry{
		"/d/link": first,
	}}

	entries := []*data.Entry{link}
	if resolved := explorer.ResolveLinks(context.Background(), entries, resolver, nil); resolved != 1 {
		t.Fatalf("expected 1 resolved entry, got %d", resolved)
	}

	// A second pass, even against a changed resolver, is a no-op.
	resolver.targets["/d/link"] = second
	if resolved := explorer.ResolveLinks(context.Background(), entries, resolver, nil); resolved != 0 {
		t.Fatalf("expected 0 resolved entries on second pass, got %d", resolved)
	}
	if link.LinkTarget() != first {
		t.Error("second resolution replaced the original target")
	}

	// Clearing re-arms the entry for explicit re-resolution.
	link.ClearLinkTarget()
	if resolved := explorer.ResolveLinks(context.Background(), entries, resolver, nil); resolved != 1 {
		t.Fatalf("expected 1 resolved entry after clear, got %d", resolved)
	}
	if link.LinkTarget() != second {
		t.Error("re-resolution did not pick up the new target")
	}
}

func TestResolveLinks_NilResolver(t *testing.T) {
	owner, group, perm := data.RestrictedIdentity()
	link := data.NewSymlink("link", "/d", owner, group, perm, time.Now())

	if resolved := explorer.ResolveLinks(context.Background(), []*data.Entry{link}, nil, nil); resolved != 0 {
		t.Errorf("expected 0 resolved entries, got %d", resolved)
	}
}
