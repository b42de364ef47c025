// Package builtin provides the stock shell commands built on the
// explorer API.
package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/explorer/cmd"
	"github.com/mwantia/explorer/data"
	"github.com/mwantia/explorer/mimetype"
)

type LsCommand struct {
}

// Name returns the command identifier
func (ls *LsCommand) Name() string {
	return "ls"
}

// Description returns human-readable help text
func (ls *LsCommand) Description() string {
	return "List the entries of a directory with preferences applied"
}

// Usage returns a usage string for help (e.g. "ls -al [path]")
func (ls *LsCommand) Usage() string {
	return "ls [-l] [-f] [--mime type] [--restricted] [path]"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (ls *LsCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	path := "/"
	if len(args.Args) > 0 {
		path = args.Args[0]
	}

	mime := args.String("mime")
	if mime == "" {
		mime = mimetype.AllTypes
	}

	entries, err := api.Browse(ctx, path, mime, args.Bool("restricted"))
	if err != nil {
		return 1, err
	}

	if args.Bool("follow") {
		api.ResolveLinks(ctx, entries)
	}

	long := args.Bool("long")
	for _, e := range entries {
		if !long {
			fmt.Fprintln(writer, entryLabel(e))
			continue
		}

		name := e.Name
		if e.HasLinkTarget() {
			name = fmt.Sprintf("%s -> %s", name, e.LinkTarget().FullPath())
		}

		fmt.Fprintf(writer, "%s %-8s %-8s %8s %s %s\n",
			e.Perm, e.Owner.Name, e.Group.Name,
			api.FormatSize(e),
			e.ModTime.Format("Jan _2 15:04"),
			name)
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (ls *LsCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"long": {
				Name:        "long",
				Short:       "l",
				Type:        "bool",
				Description: "Use the long listing format",
			},
			"follow": {
				Name:        "follow",
				Short:       "f",
				Type:        "bool",
				Description: "Resolve symlink targets before printing",
			},
			"mime": {
				Name:        "mime",
				Short:       "m",
				Type:        "string",
				Default:     mimetype.AllTypes,
				Description: "Mime type filter applied in restricted mode",
			},
			"restricted": {
				Name:        "restricted",
				Short:       "r",
				Type:        "bool",
				Description: "Browse with the restricted preference profile",
			},
		},
	}
}

// entryLabel keeps directory names visually distinct in short output.
func entryLabel(e *data.Entry) string {
	if e.IsDirectory() {
		return e.Name + "/"
	}
	return e.Name
}
