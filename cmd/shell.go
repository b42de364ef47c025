package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mwantia/explorer"
	"github.com/mwantia/explorer/data"
	"github.com/mwantia/explorer/fsops"
)

// Shell binds the listing pipeline and the recursive I/O engine into
// the API consumed by commands, and keeps the command registry.
type Shell struct {
	ex *explorer.Explorer
	en *fsops.Engine

	commands map[string]Command
}

// NewShell creates a shell over the given explorer and engine.
// A nil engine falls back to one with the default buffer size.
func NewShell(ex *explorer.Explorer, en *fsops.Engine) *Shell {
	if en == nil {
		en = fsops.NewEngine(0, ex.Logger())
	}

	return &Shell{
		ex:       ex,
		en:       en,
		commands: make(map[string]Command),
	}
}

// Register adds a command to the shell. Re-registering a name replaces
// the previous command.
func (sh *Shell) Register(c Command) {
	sh.commands[c.Name()] = c
}

// Commands returns the registered commands keyed by name.
func (sh *Shell) Commands() map[string]Command {
	return sh.commands
}

// Run parses raw arguments against the command's flag set and executes
// it, writing output to writer.
func (sh *Shell) Run(ctx context.Context, name string, raw []string, writer io.Writer) (int, error) {
	c, exists := sh.commands[name]
	if !exists {
		return 1, fmt.Errorf("unknown command: %s", name)
	}

	flagSet := c.GetFlags()
	if flagSet == nil {
		flagSet = &CommandFlagSet{Flags: map[string]*CommandFlag{}}
	}

	args, err := NewParser(flagSet).Parse(raw)
	if err != nil {
		return 1, err
	}

	return c.Execute(ctx, sh, args, writer)
}

// Browse lists a directory with the user preferences applied.
func (sh *Shell) Browse(ctx context.Context, path, mime string, restricted bool) ([]*data.Entry, error) {
	return sh.ex.Browse(ctx, path, mime, restricted)
}

// ResolveLinks resolves the unresolved symlinks of a listing.
func (sh *Shell) ResolveLinks(ctx context.Context, entries []*data.Entry) int {
	return sh.ex.ResolveLinks(ctx, entries)
}

// FormatSize renders the displayable size of an entry.
func (sh *Shell) FormatSize(e *data.Entry) string {
	return sh.ex.FormatSize(e)
}

// Copy copies a file or directory tree to the destination.
func (sh *Shell) Copy(ctx context.Context, src, dst string) error {
	return sh.en.CopyRecursive(src, dst)
}

// Remove deletes a directory tree, or a single file.
func (sh *Shell) Remove(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", data.ErrIO, path, err)
	}

	if info.IsDir() {
		return sh.en.DeleteRecursive(path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: remove %s: %v", data.ErrIO, path, err)
	}

	return nil
}

// Move renames src into dstDir. When the source name is already taken
// in the destination, a non-conflicting one is derived first.
func (sh *Shell) Move(ctx context.Context, src, dstDir string) (string, error) {
	children, err := os.ReadDir(dstDir)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", data.ErrIO, dstDir, err)
	}

	existing := make([]string, 0, len(children))
	for _, child := range children {
		existing = append(existing, child.Name())
	}

	name, err := explorer.CreateNonExistingName(existing, filepath.Base(src), nil)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(dstDir, name)
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("%w: rename %s: %v", data.ErrIO, src, err)
	}

	return dst, nil
}

// MakeDir creates a directory.
func (sh *Shell) MakeDir(ctx context.Context, path string) error {
	if err := os.Mkdir(path, 0755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", data.ErrIO, path, err)
	}
	return nil
}
