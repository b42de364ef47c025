package data

// Kind identifies the type of a filesystem entry.
// The set is closed; consumers switch exhaustively over it so a new
// kind forces review of every filter/sort/format call site.
type Kind int

// Entry kind constants matching common Unix file types.
const (
	KindRegular     Kind = iota // Regular file
	KindDirectory               // Directory
	KindParent                  // Synthetic ".." entry
	KindSymlink                 // Symbolic link
	KindSystem                  // System file
	KindBlockDevice             // Block device
	KindCharDevice              // Character device
	KindNamedPipe               // Named pipe (FIFO)
	KindSocket                  // Unix domain socket
)

// String returns the lowercase identifier used in logs and listings.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "file"
	case KindDirectory:
		return "directory"
	case KindParent:
		return "parent"
	case KindSymlink:
		return "symlink"
	case KindSystem:
		return "system"
	case KindBlockDevice:
		return "block-device"
	case KindCharDevice:
		return "char-device"
	case KindNamedPipe:
		return "named-pipe"
	case KindSocket:
		return "socket"
	default:
		return "unknown"
	}
}
