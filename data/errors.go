package data

import "errors"

// Standard errors shared by the listing pipeline and its collaborators.
var (
	// Path errors
	ErrInvalidPath  = errors.New("explorer: invalid path detected")
	ErrNoCommonRoot = errors.New("explorer: paths share no common root")

	// Entry construction errors
	ErrStructural         = errors.New("explorer: entry could not be constructed")
	ErrInvalidPermissions = errors.New("explorer: invalid permission string")

	// Listing errors
	ErrNotExist     = errors.New("explorer: entry does not exist")
	ErrNotDirectory = errors.New("explorer: not a directory")
	ErrPermission   = errors.New("explorer: permission denied")

	// Symlink resolution errors
	ErrResolution = errors.New("explorer: symlink target could not be resolved")
	ErrNotSymlink = errors.New("explorer: entry is not a symlink")

	// Recursive I/O errors
	ErrDestinationConflict = errors.New("explorer: destination exists but is not a directory")
	ErrIO                  = errors.New("explorer: stream operation failed")

	// Naming errors
	ErrNameExhausted = errors.New("explorer: rename template produced no free name")
)
