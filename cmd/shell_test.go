package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwantia/explorer"
	"github.com/mwantia/explorer/cmd"
	"github.com/mwantia/explorer/cmd/builtin"
	"github.com/mwantia/explorer/lister/local"
	"github.com/mwantia/explorer/log"
	"github.com/mwantia/explorer/mimetype"
)

func newTestShell(t *testing.T, root string) *cmd.Shell {
	t.Helper()

	ex, err := explorer.New(local.NewLocalLister(root),
		explorer.WithLogLevel(log.Error),
		explorer.WithoutTerminalLog(),
		explorer.WithMatcher(mimetype.NewResolver()),
		explorer.WithResolver(local.NewLocalResolver(root)),
	)
	if err != nil {
		t.Fatalf("Failed to create explorer: %v", err)
	}

	shell := cmd.NewShell(ex, nil)
	shell.Register(&builtin.LsCommand{})
	shell.Register(&builtin.CpCommand{})
	shell.Register(&builtin.RmCommand{})
	shell.Register(&builtin.MvCommand{})
	shell.Register(&builtin.MkdirCommand{})
	return shell
}

func TestShell_Mkdir(t *testing.T) {
	root := t.TempDir()
	shell := newTestShell(t, root)

	var out bytes.Buffer
	path := filepath.Join(root, "created")
	if code, err := shell.Run(context.Background(), "mkdir", []string{path}, &out); err != nil || code != 0 {
		t.Fatalf("Failed to run mkdir: %v (code %d)", err, code)
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("directory not created: %v", err)
	}

	// Creating it again fails.
	if code, _ := shell.Run(context.Background(), "mkdir", []string{path}, &out); code == 0 {
		t.Error("mkdir over an existing path must fail")
	}
}

func TestShell_UnknownCommand(t *testing.T) {
	shell := newTestShell(t, t.TempDir())

	if _, err := shell.Run(context.Background(), "bogus", nil, &bytes.Buffer{}); err == nil {
		t.Error("unknown command must fail")
	}
}

func TestShell_Ls(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "file.txt"), []byte("1234"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	shell := newTestShell(t, root)

	var out bytes.Buffer
	code, err := shell.Run(context.Background(), "ls", []string{"/"}, &out)
	if err != nil {
		t.Fatalf("Failed to run ls: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	// Directories come first and carry the trailing slash marker.
	if lines[0] != "sub/" || lines[1] != "file.txt" {
		t.Errorf("unexpected output %v", lines)
	}
}

func TestShell_LsLong(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "file.txt"), bytes.Repeat([]byte("x"), 2048), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	shell := newTestShell(t, root)

	var out bytes.Buffer
	if _, err := shell.Run(context.Background(), "ls", []string{"-l", "/"}, &out); err != nil {
		t.Fatalf("Failed to run ls -l: %v", err)
	}

	line := strings.TrimSpace(out.String())
	if !strings.Contains(line, "file.txt") {
		t.Errorf("missing name in %q", line)
	}
	if !strings.Contains(line, "2 KB") {
		t.Errorf("missing formatted size in %q", line)
	}
	if !strings.HasPrefix(line, "-rw-") {
		t.Errorf("missing mode string in %q", line)
	}
}

func TestShell_CpRmMv(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	src := filepath.Join(root, "src")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	shell := newTestShell(t, root)
	var out bytes.Buffer

	// cp copies the tree.
	dst := filepath.Join(root, "dst")
	if code, err := shell.Run(ctx, "cp", []string{src, dst}, &out); err != nil || code != 0 {
		t.Fatalf("Failed to run cp: %v (code %d)", err, code)
	}
	if _, err := os.Stat(filepath.Join(dst, "a.txt")); err != nil {
		t.Fatalf("copy did not produce the destination tree: %v", err)
	}

	// mv renames into a directory, deriving a free name on conflict.
	target := filepath.Join(root, "target")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("Failed to create target: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "a.txt"), []byte("taken"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if code, err := shell.Run(ctx, "mv", []string{filepath.Join(dst, "a.txt"), target}, &out); err != nil || code != 0 {
		t.Fatalf("Failed to run mv: %v (code %d)", err, code)
	}
	if _, err := os.Stat(filepath.Join(target, "a (copy).txt")); err != nil {
		t.Fatalf("move did not derive a free name: %v", err)
	}

	// rm removes the remaining tree.
	if code, err := shell.Run(ctx, "rm", []string{src}, &out); err != nil || code != 0 {
		t.Fatalf("Failed to run rm: %v (code %d)", err, code)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source tree must be gone")
	}
}

func TestShell_CommandUsageErrors(t *testing.T) {
	shell := newTestShell(t, t.TempDir())
	var out bytes.Buffer

	if code, _ := shell.Run(context.Background(), "cp", []string{"only-one"}, &out); code == 0 {
		t.Error("cp without a destination must fail")
	}
	if code, _ := shell.Run(context.Background(), "rm", nil, &out); code == 0 {
		t.Error("rm without arguments must fail")
	}
	if code, _ := shell.Run(context.Background(), "mv", []string{"one"}, &out); code == 0 {
		t.Error("mv without a destination must fail")
	}
}
