package data

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Restricted-access fallback identity, applied whenever real ownership
// cannot be queried from the execution context.
const (
	RestrictedUser  = "system"
	RestrictedGroup = "sdcard_r"
	RestrictedPerms = "----rwxr-x"
)

// RestrictedIdentity returns the synthetic ownership triple used for
// entries built without access to real metadata.
func RestrictedIdentity() (User, Group, Permissions) {
	perm, _ := ParsePermissions(RestrictedPerms)
	return User{Name: RestrictedUser}, Group{Name: RestrictedGroup}, perm
}

// Wrap builds an entry from a stat result for ad-hoc use, outside a
// full directory listing. Ownership falls back to the restricted
// identity. A nil info degrades to an error rather than a partially
// built entry.
func Wrap(path string, info fs.FileInfo) (*Entry, error) {
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrStructural, path)
	}

	owner, group, perm := RestrictedIdentity()
	dir := filepath.Dir(path)

	kind := KindFromMode(info.Mode())
	switch kind {
	case KindDirectory:
		return NewDirectory(info.Name(), dir, owner, group, perm|PermDir, info.ModTime()), nil
	case KindSymlink:
		return NewSymlink(info.Name(), dir, owner, group, perm, info.ModTime()), nil
	case KindRegular:
		return NewRegularFile(info.Name(), dir, owner, group, perm, info.ModTime(), info.Size()), nil
	default:
		return NewEntry(kind, info.Name(), dir, owner, group, perm, info.ModTime()), nil
	}
}

// KindFromMode maps a stat mode to the closed entry kind set.
func KindFromMode(mode fs.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode&fs.ModeCharDevice != 0:
		return KindCharDevice
	case mode&fs.ModeDevice != 0:
		return KindBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return KindNamedPipe
	case mode&fs.ModeSocket != 0:
		return KindSocket
	default:
		return KindRegular
	}
}
