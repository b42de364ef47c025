package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/explorer/cmd"
)

type RmCommand struct {
}

// Name returns the command identifier
func (rm *RmCommand) Name() string {
	return "rm"
}

// Description returns human-readable help text
func (rm *RmCommand) Description() string {
	return "Remove files or directory trees"
}

// Usage returns a usage string for help (e.g. "ls -al [path]")
func (rm *RmCommand) Usage() string {
	return "rm <path> [path ...]"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (rm *RmCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("usage: %s", rm.Usage())
	}

	for _, path := range args.Args {
		if err := api.Remove(ctx, path); err != nil {
			// First failure aborts; paths after it are untouched.
			return 1, err
		}

		fmt.Fprintf(writer, "removed %s\n", path)
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (rm *RmCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
