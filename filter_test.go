package explorer_test

import (
	"testing"
	"time"

	"github.com/mwantia/explorer"
	"github.com/mwantia/explorer/data"
	"github.com/mwantia/explorer/mimetype"
	"github.com/mwantia/explorer/prefs"
)

func testListing() []*data.Entry {
	owner, group, perm := data.RestrictedIdentity()
	now := time.Now()

	return []*data.Entry{
		data.NewRegularFile("visible.txt", "/d", owner, group, perm, now, 10),
		data.NewRegularFile(".hidden", "/d", owner, group, perm, now, 10),
		data.NewDirectory("sub", "/d", owner, group, perm|data.PermDir, now),
		data.NewSymlink("link", "/d", owner, group, perm, now),
		data.NewEntry(data.KindSystem, "proc", "/d", owner, group, perm, now),
	}
}

func names(entries []*data.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func equalNames(got []*data.Entry, expected ...string) bool {
	if len(got) != len(expected) {
		return false
	}
	for i, e := range got {
		if e.Name != expected[i] {
			return false
		}
	}
	return true
}

func TestFilter_Defaults(t *testing.T) {
	entries := explorer.Filter(testListing(), mimetype.AllTypes, false, prefs.Defaults(), mimetype.NewResolver())

	if !equalNames(entries, "visible.txt", "sub") {
		t.Errorf("unexpected listing %v", names(entries))
	}
}

func TestFilter_ShowEverything(t *testing.T) {
	snap := prefs.Defaults()
	snap.ShowHidden = true
	snap.ShowSystem = true
	snap.ShowSymlinks = true

	entries := explorer.Filter(testListing(), mimetype.AllTypes, false, snap, mimetype.NewResolver())

	if !equalNames(entries, "visible.txt", ".hidden", "sub", "link", "proc") {
		t.Errorf("unexpected listing %v", names(entries))
	}
}

func TestFilter_RestrictedOverridesPreferences(t *testing.T) {
	snap := prefs.Defaults()
	snap.ShowHidden = true
	snap.ShowSystem = true
	snap.ShowSymlinks = true

	entries := explorer.Filter(testListing(), mimetype.AllTypes, true, snap, mimetype.NewResolver())

	if !equalNames(entries, "visible.txt", "sub") {
		t.Errorf("unexpected listing %v", names(entries))
	}
}

func TestFilter_MimeRestrictedOnly(t *testing.T) {
	owner, group, perm := data.RestrictedIdentity()
	now := time.Now()
	listing := func() []*data.Entry {
		return []*data.Entry{
			data.NewRegularFile("photo.png", "/d", owner, group, perm, now, 10),
			data.NewRegularFile("notes.txt", "/d", owner, group, perm, now, 10),
			data.NewDirectory("sub", "/d", owner, group, perm|data.PermDir, now),
		}
	}

	// Unrestricted browsing ignores the mime filter entirely.
	entries := explorer.Filter(listing(), "image/*", false, prefs.Defaults(), mimetype.NewResolver())
	if !equalNames(entries, "photo.png", "notes.txt", "sub") {
		t.Errorf("unrestricted: unexpected listing %v", names(entries))
	}

	// Restricted browsing keeps matching files and every directory.
	entries = explorer.Filter(listing(), "image/*", true, prefs.Defaults(), mimetype.NewResolver())
	if !equalNames(entries, "photo.png", "sub") {
		t.Errorf("restricted: unexpected listing %v", names(entries))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	snap := prefs.Defaults()

	once := explorer.Filter(testListing(), mimetype.AllTypes, false, snap, mimetype.NewResolver())
	twice := explorer.Filter(once, mimetype.AllTypes, false, snap, mimetype.NewResolver())

	if !equalNames(twice, names(once)...) {
		t.Errorf("second pass changed the listing: %v vs %v", names(once), names(twice))
	}
}

func TestFilter_ParentSurvives(t *testing.T) {
	entries := append(testListing(), data.NewParent("/d"))
	filtered := explorer.Filter(entries, mimetype.AllTypes, true, prefs.Defaults(), mimetype.NewResolver())

	if !explorer.NameExists(filtered, data.ParentDirectory) {
		t.Error("expected the parent entry to survive filtering")
	}
}
