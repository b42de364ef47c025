package data

import (
	"time"

	"github.com/google/uuid"
)

// Root directory path.
const RootDirectory = "/"

// ParentDirectory is the name of the synthetic ".." entry.
const ParentDirectory = ".."

// CurrentDirectory is the "." path segment.
const CurrentDirectory = "."

// UserRoot is the administrator user name.
const UserRoot = "root"

// User identifies the owner of an entry.
type User struct {
	ID   int
	Name string
}

// Group identifies the owning group of an entry.
type Group struct {
	ID   int
	Name string
}

// Entry represents one typed node in a directory listing.
//
// Entries are constructed by a lister (or by wrapping a single path)
// and owned by the caller for the duration of a listing operation.
// They are immutable except for the one-time symlink target
// assignment; see SetLinkTarget.
type Entry struct {
	ID      string      // Unique identifier, stamped at construction
	Name    string      // Base name; empty only for the root entry
	Dir     string      // Absolute path of the containing directory
	Kind    Kind        // Closed kind tag
	Owner   User        // Owning user
	Group   Group       // Owning group
	Perm    Permissions // Raw mode bits, never mutated here
	ModTime time.Time   // Last modification time
	Size    int64       // Size in bytes, meaningful for KindRegular only

	// Resolved symlink target. Write-once; nil until resolved.
	link *Entry
}

// NewEntry creates an entry of the given kind.
// The ID is populated with a time-ordered unique identifier.
func NewEntry(kind Kind, name, dir string, owner User, group Group, perm Permissions, modTime time.Time) *Entry {
	return &Entry{
		ID:      genEntryID(),
		Name:    name,
		Dir:     dir,
		Kind:    kind,
		Owner:   owner,
		Group:   group,
		Perm:    perm,
		ModTime: modTime,
	}
}

// NewRegularFile creates a regular file entry with the given size.
func NewRegularFile(name, dir string, owner User, group Group, perm Permissions, modTime time.Time, size int64) *Entry {
	e := NewEntry(KindRegular, name, dir, owner, group, perm, modTime)
	e.Size = size
	return e
}

// NewDirectory creates a directory entry.
func NewDirectory(name, dir string, owner User, group Group, perm Permissions, modTime time.Time) *Entry {
	return NewEntry(KindDirectory, name, dir, owner, group, perm, modTime)
}

// NewParent creates the synthetic ".." entry for the given directory.
func NewParent(dir string) *Entry {
	return NewEntry(KindParent, ParentDirectory, dir, User{}, Group{}, PermDir, time.Time{})
}

// NewSymlink creates an unresolved symlink entry.
func NewSymlink(name, dir string, owner User, group Group, perm Permissions, modTime time.Time) *Entry {
	return NewEntry(KindSymlink, name, dir, owner, group, perm|PermSymlink, modTime)
}

// FullPath derives the absolute path of the entry.
// The root entry is the single exception: its name is empty and the
// full path is just the root marker.
func (e *Entry) FullPath() string {
	if e.IsRoot() {
		return RootDirectory
	}
	if e.Dir == RootDirectory {
		return RootDirectory + e.Name
	}
	return e.Dir + "/" + e.Name
}

// IsRoot reports whether the entry denotes the canonical root object.
func (e *Entry) IsRoot() bool {
	return e.Name == "" || e.Name == RootDirectory
}

// IsParentRoot reports whether the containing directory is the root.
func (e *Entry) IsParentRoot() bool {
	return e.Dir == "" || e.Dir == RootDirectory
}

// IsHidden reports whether the entry is hidden by dotfile convention.
func (e *Entry) IsHidden() bool {
	return len(e.Name) > 0 && e.Name[0] == '.' && e.Kind != KindParent
}

// IsPrivileged reports whether the entry requires elevated privileges.
// Parent entries never require privileges regardless of owner.
func (e *Entry) IsPrivileged() bool {
	if e.Kind == KindParent {
		return false
	}
	return e.Owner.Name == UserRoot
}

// HasLinkTarget reports whether the entry is a resolved symlink.
func (e *Entry) HasLinkTarget() bool {
	return e.Kind == KindSymlink && e.link != nil
}

// LinkTarget returns the resolved symlink target, or nil when the
// entry is not a symlink or is still unresolved.
func (e *Entry) LinkTarget() *Entry {
	if e.Kind != KindSymlink {
		return nil
	}
	return e.link
}

// SetLinkTarget assigns the resolved target of a symlink.
// The assignment is write-once: calls on an already-resolved entry are
// no-ops, preserving the reference the first resolution produced.
// Returns false when nothing was assigned.
func (e *Entry) SetLinkTarget(target *Entry) bool {
	if e.Kind != KindSymlink || target == nil {
		return false
	}
	if e.link != nil {
		return false
	}
	e.link = target
	return true
}

// ClearLinkTarget drops a resolved target so the entry can be
// re-resolved explicitly.
func (e *Entry) ClearLinkTarget() {
	e.link = nil
}

// Effective returns the entry itself, or the resolved target for a
// resolved symlink. Formatting and filtering code dereferences through
// this so it never special-cases symlinks directly.
func (e *Entry) Effective() *Entry {
	if e.HasLinkTarget() {
		return e.link
	}
	return e
}

// IsDirectory reports whether the entry is a directory, either
// directly or through a resolved symlink.
func (e *Entry) IsDirectory() bool {
	eff := e.Effective()
	return eff.Kind == KindDirectory || eff.Kind == KindParent
}

// IsSystemFile reports whether the entry is a system file, either
// directly or through a resolved symlink.
func (e *Entry) IsSystemFile() bool {
	return e.Effective().Kind == KindSystem
}

// EffectiveSize returns the displayable size of the entry.
// The size is undefined (ok=false) for directories and for symlinks
// that are unresolved or point at a directory.
func (e *Entry) EffectiveSize() (int64, bool) {
	if e.Kind == KindDirectory || e.Kind == KindParent {
		return 0, false
	}
	if e.Kind == KindSymlink {
		if !e.HasLinkTarget() {
			return 0, false
		}
		if e.link.IsDirectory() {
			return 0, false
		}
		return e.link.Size, true
	}
	return e.Size, true
}

func genEntryID() string {
	return uuid.Must(uuid.NewV7()).String()
}
