package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/explorer/cmd"
)

type MvCommand struct {
}

// Name returns the command identifier
func (mv *MvCommand) Name() string {
	return "mv"
}

// Description returns human-readable help text
func (mv *MvCommand) Description() string {
	return "Move a file or directory into a destination directory"
}

// Usage returns a usage string for help (e.g. "ls -al [path]")
func (mv *MvCommand) Usage() string {
	return "mv <source> <directory>"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (mv *MvCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 1, fmt.Errorf("usage: %s", mv.Usage())
	}

	dst, err := api.Move(ctx, args.Args[0], args.Args[1])
	if err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "moved %s to %s\n", args.Args[0], dst)
	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (mv *MvCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
