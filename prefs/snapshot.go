package prefs

import "context"

// SortMode enumerates the supported list orderings.
type SortMode int

const (
	SortByNameAsc SortMode = iota
	SortByNameDesc
	SortByDateAsc
	SortByDateDesc
	SortBySizeAsc
	SortBySizeDesc
)

func (m SortMode) String() string {
	switch m {
	case SortByNameAsc:
		return "name-asc"
	case SortByNameDesc:
		return "name-desc"
	case SortByDateAsc:
		return "date-asc"
	case SortByDateDesc:
		return "date-desc"
	case SortBySizeAsc:
		return "size-asc"
	case SortBySizeDesc:
		return "size-desc"
	default:
		return "unknown"
	}
}

// Preference keys understood by every store.
const (
	KeyShowHidden    = "show_hidden"
	KeyShowSystem    = "show_system"
	KeyShowSymlinks  = "show_symlinks"
	KeyDirsFirst     = "show_dirs_first"
	KeyCaseSensitive = "case_sensitive_sort"
	KeySortMode      = "sort_mode"
)

// Snapshot is an immutable view of the preferences consumed by the
// filter and sort stages. Passing a snapshot keeps both stages pure
// instead of reading ambient store state mid-listing.
type Snapshot struct {
	ShowHidden    bool
	ShowSystem    bool
	ShowSymlinks  bool
	DirsFirst     bool
	CaseSensitive bool
	SortMode      SortMode
}

// Defaults returns the snapshot used when no store is configured.
func Defaults() Snapshot {
	return Snapshot{
		ShowHidden:    false,
		ShowSystem:    false,
		ShowSymlinks:  false,
		DirsFirst:     true,
		CaseSensitive: false,
		SortMode:      SortByNameAsc,
	}
}

// Load reads a snapshot from the given store, falling back to the
// defined default for every absent key.
func Load(ctx context.Context, store Store) (Snapshot, error) {
	snap := Defaults()
	if store == nil {
		return snap, nil
	}

	var err error
	if snap.ShowHidden, err = store.Bool(ctx, KeyShowHidden, snap.ShowHidden); err != nil {
		return snap, err
	}
	if snap.ShowSystem, err = store.Bool(ctx, KeyShowSystem, snap.ShowSystem); err != nil {
		return snap, err
	}
	if snap.ShowSymlinks, err = store.Bool(ctx, KeyShowSymlinks, snap.ShowSymlinks); err != nil {
		return snap, err
	}
	if snap.DirsFirst, err = store.Bool(ctx, KeyDirsFirst, snap.DirsFirst); err != nil {
		return snap, err
	}
	if snap.CaseSensitive, err = store.Bool(ctx, KeyCaseSensitive, snap.CaseSensitive); err != nil {
		return snap, err
	}

	mode, err := store.Int(ctx, KeySortMode, int(snap.SortMode))
	if err != nil {
		return snap, err
	}
	if mode >= int(SortByNameAsc) && mode <= int(SortBySizeDesc) {
		snap.SortMode = SortMode(mode)
	}

	return snap, nil
}
