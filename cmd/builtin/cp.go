package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/explorer/cmd"
)

type CpCommand struct {
}

// Name returns the command identifier
func (cp *CpCommand) Name() string {
	return "cp"
}

// Description returns human-readable help text
func (cp *CpCommand) Description() string {
	return "Copy a file or directory tree"
}

// Usage returns a usage string for help (e.g. "ls -al [path]")
func (cp *CpCommand) Usage() string {
	return "cp <source> <destination>"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (cp *CpCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 1, fmt.Errorf("usage: %s", cp.Usage())
	}

	src, dst := args.Args[0], args.Args[1]
	if err := api.Copy(ctx, src, dst); err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "copied %s to %s\n", src, dst)
	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (cp *CpCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
