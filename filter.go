package explorer

import (
	"github.com/mwantia/explorer/data"
	"github.com/mwantia/explorer/prefs"
)

// Filter removes the entries the user or context should not see.
// Hidden, system, and symlink entries are dropped unless the matching
// preference is enabled and restricted mode is off; in restricted mode
// non-directory entries must additionally satisfy the mime filter
// (directories are always kept so navigation remains possible).
//
// Filtering is a single pass over the input and reuses its backing
// array; the returned slice replaces the input. Applying the same
// preferences twice yields an identical list.
func Filter(entries []*data.Entry, mime string, restricted bool, snap prefs.Snapshot, types Matcher) []*data.Entry {
	filtered := entries[:0]

	for _, e := range entries {
		// Hidden entries
		if (!snap.ShowHidden || restricted) && e.IsHidden() {
			continue
		}

		// System files
		if (!snap.ShowSystem || restricted) && e.Kind == data.KindSystem {
			continue
		}

		// Symlinks
		if (!snap.ShowSymlinks || restricted) && e.Kind == data.KindSymlink {
			continue
		}

		// Mime filter, restricted contexts only
		if restricted && !e.IsDirectory() && types != nil {
			if !types.Matches(e, mime) {
				continue
			}
		}

		filtered = append(filtered, e)
	}

	return filtered
}
