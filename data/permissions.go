package data

import "fmt"

// Permissions represents raw mode bits for an entry.
// It follows Unix file mode conventions with type and permission bits.
// The pipeline never mutates permissions; they are carried for display.
type Permissions uint32

// Permission mode constants for type and permission bits.
const (
	// Type bits
	PermDir       Permissions = 1 << 31 // d: directory
	PermSymlink   Permissions = 1 << 30 // l: symbolic link
	PermNamedPipe Permissions = 1 << 29 // p: named pipe (FIFO)
	PermSocket    Permissions = 1 << 28 // s: Unix domain socket
	PermBlockDev  Permissions = 1 << 27 // b: block device
	PermCharDev   Permissions = 1 << 26 // c: Unix character device

	// Permission bits
	PermMask Permissions = 0777 // Unix permission bits
)

// Perm returns the Unix permission bits (the lower 9 bits).
func (p Permissions) Perm() Permissions {
	return p & PermMask
}

// IsDir reports whether the mode describes a directory.
func (p Permissions) IsDir() bool {
	return p&PermDir != 0
}

// String renders the mode in ls -l format, e.g. "drwxr-xr-x".
func (p Permissions) String() string {
	var buf [10]byte

	switch {
	case p&PermDir != 0:
		buf[0] = 'd'
	case p&PermSymlink != 0:
		buf[0] = 'l'
	case p&PermNamedPipe != 0:
		buf[0] = 'p'
	case p&PermSocket != 0:
		buf[0] = 's'
	case p&PermBlockDev != 0:
		buf[0] = 'b'
	case p&PermCharDev != 0:
		buf[0] = 'c'
	default:
		buf[0] = '-'
	}

	const rwx = "rwxrwxrwx"
	for i := 0; i < 9; i++ {
		if p&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i]
		} else {
			buf[i+1] = '-'
		}
	}

	return string(buf[:])
}

// ParsePermissions parses a raw 10-character mode string as produced
// by ls -l, e.g. "----rwxr-x" or "drwxr-xr-x".
func ParsePermissions(raw string) (Permissions, error) {
	if len(raw) != 10 {
		return 0, fmt.Errorf("%w: mode string %q", ErrInvalidPermissions, raw)
	}

	var p Permissions
	switch raw[0] {
	case '-':
	case 'd':
		p |= PermDir
	case 'l':
		p |= PermSymlink
	case 'p':
		p |= PermNamedPipe
	case 's':
		p |= PermSocket
	case 'b':
		p |= PermBlockDev
	case 'c':
		p |= PermCharDev
	default:
		return 0, fmt.Errorf("%w: type char %q", ErrInvalidPermissions, raw[0])
	}

	const rwx = "rwxrwxrwx"
	for i := 0; i < 9; i++ {
		switch raw[i+1] {
		case rwx[i]:
			p |= 1 << uint(8-i)
		case '-':
		default:
			return 0, fmt.Errorf("%w: permission char %q at %d", ErrInvalidPermissions, raw[i+1], i+1)
		}
	}

	return p, nil
}
