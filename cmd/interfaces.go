package cmd

import (
	"context"
	"io"

	"github.com/mwantia/explorer/data"
)

// API is the surface commands operate against. It strips the listing
// pipeline and the recursive I/O engine down to what shell-style
// commands need.
type API interface {
	// Browse lists a directory with the user preferences applied.
	// The mime filter only takes effect in restricted mode.
	Browse(ctx context.Context, path, mime string, restricted bool) ([]*data.Entry, error)

	// ResolveLinks resolves the unresolved symlinks of a listing.
	// Per-entry failures are skipped; returns the resolved count.
	ResolveLinks(ctx context.Context, entries []*data.Entry) int

	// FormatSize renders the displayable size of an entry.
	FormatSize(e *data.Entry) string

	// Copy copies a file or directory tree to the destination.
	Copy(ctx context.Context, src, dst string) error

	// Remove deletes a directory tree, or a single file.
	Remove(ctx context.Context, path string) error

	// Move renames src into the destination directory, deriving a
	// non-conflicting name when the attempted one is taken.
	Move(ctx context.Context, src, dstDir string) (string, error)

	// MakeDir creates a directory.
	MakeDir(ctx context.Context, path string) error
}

// Command represents an executable command against the explorer API.
type Command interface {
	// Name returns the command identifier
	Name() string

	// Description returns human-readable help text
	Description() string

	// Usage returns a usage string for help (e.g. "ls -al [path]")
	Usage() string

	// Execute runs the command with parsed arguments
	// The writer parameter is where command output should be written
	// Returns exit code (0 = success) and error message
	Execute(ctx context.Context, api API, args *CommandArgs, writer io.Writer) (int, error)

	// GetFlags returns the flag set for this command (this is optional)
	GetFlags() *CommandFlagSet
}
