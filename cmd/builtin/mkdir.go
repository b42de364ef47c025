package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/explorer/cmd"
)

type MkdirCommand struct {
}

// Name returns the command identifier
func (mk *MkdirCommand) Name() string {
	return "mkdir"
}

// Description returns human-readable help text
func (mk *MkdirCommand) Description() string {
	return "Create directories"
}

// Usage returns a usage string for help (e.g. "ls -al [path]")
func (mk *MkdirCommand) Usage() string {
	return "mkdir <path> [path ...]"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (mk *MkdirCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("usage: %s", mk.Usage())
	}

	for _, path := range args.Args {
		if err := api.MakeDir(ctx, path); err != nil {
			return 1, err
		}

		fmt.Fprintf(writer, "created %s\n", path)
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (mk *MkdirCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
