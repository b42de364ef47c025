package explorer

import (
	"cmp"
	"sort"
	"strings"

	"github.com/mwantia/explorer/data"
	"github.com/mwantia/explorer/prefs"
)

// Sort orders entries according to the preference snapshot.
// The sort is stable so equal-ranked entries retain the order the
// filter stage produced, and sorting an already-sorted list is a
// no-op.
func Sort(entries []*data.Entry, snap prefs.Snapshot) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i], entries[j], snap) < 0
	})
}

// Compare defines the total order used by Sort. Parent entries always
// go first; with the dirs-first preference directories (including
// symlinks to directories) precede everything else; the sort mode
// decides the rest.
func Compare(a, b *data.Entry, snap prefs.Snapshot) int {
	// Parent directory always goes first
	aParent := a.Kind == data.KindParent
	bParent := b.Kind == data.KindParent
	if aParent || bParent {
		if aParent && bParent {
			return 0
		}
		if aParent {
			return -1
		}
		return 1
	}

	// Need to sort directories first?
	if snap.DirsFirst {
		aDir := a.IsDirectory()
		bDir := b.IsDirectory()
		if aDir || bDir {
			if aDir && bDir {
				return compareMode(a, b, snap)
			}
			if aDir {
				return -1
			}
			return 1
		}
	}

	return compareMode(a, b, snap)
}

func compareMode(a, b *data.Entry, snap prefs.Snapshot) int {
	switch snap.SortMode {
	case prefs.SortByNameAsc:
		return compareName(a, b, snap.CaseSensitive)
	case prefs.SortByNameDesc:
		return -compareName(a, b, snap.CaseSensitive)
	case prefs.SortByDateAsc:
		return a.ModTime.Compare(b.ModTime)
	case prefs.SortByDateDesc:
		return -a.ModTime.Compare(b.ModTime)
	case prefs.SortBySizeAsc:
		return cmp.Compare(sortSize(a), sortSize(b))
	case prefs.SortBySizeDesc:
		return -cmp.Compare(sortSize(a), sortSize(b))
	default:
		// Comparison between entries directly
		return strings.Compare(a.FullPath(), b.FullPath())
	}
}

func compareName(a, b *data.Entry, caseSensitive bool) int {
	if !caseSensitive {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
	return strings.Compare(a.Name, b.Name)
}

// sortSize ranks entries without a defined size as empty.
func sortSize(e *data.Entry) int64 {
	size, ok := e.EffectiveSize()
	if !ok {
		return 0
	}
	return size
}
