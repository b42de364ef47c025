package explorer

import (
	"fmt"
	"path"
	"strings"

	"github.com/mwantia/explorer/data"
)

// compressedTar lists the compound suffixes matched before the
// general last-dot rule, so "archive.tar.gz" yields "tar.gz".
var compressedTar = []string{"tar.gz", "tar.bz2", "tar.lzma"}

// ExtensionOf returns the extension of a name, or "" when there is
// none. Dotfiles have no extension by this rule.
func ExtensionOf(name string) string {
	pos := strings.LastIndexByte(name, '.')
	if pos <= 0 {
		return ""
	}

	// Exceptions to the general extraction rule
	for _, suffix := range compressedTar {
		if strings.HasSuffix(name, "."+suffix) {
			return suffix
		}
	}

	return name[pos+1:]
}

// BaseNameOf returns the name without its extension and separating
// dot. Names without an extension are returned unchanged.
func BaseNameOf(name string) string {
	ext := ExtensionOf(name)
	if ext == "" {
		return name
	}
	return name[:len(name)-len(ext)-1]
}

// IsRelativePath reports whether a path is relative. Any path carrying
// a "." or ".." segment counts as relative even when it starts at the
// root; callers depend on this exact policy.
func IsRelativePath(src string) bool {
	if strings.HasPrefix(src, data.CurrentDirectory+"/") {
		return true
	}
	if strings.HasPrefix(src, data.ParentDirectory+"/") {
		return true
	}
	if strings.Contains(src, "/"+data.CurrentDirectory+"/") {
		return true
	}
	if strings.Contains(src, "/"+data.ParentDirectory+"/") {
		return true
	}
	return !strings.HasPrefix(src, data.RootDirectory)
}

// AddTrailingSlash appends the trailing slash when missing.
func AddTrailingSlash(src string) string {
	if strings.HasSuffix(src, "/") {
		return src
	}
	return src + "/"
}

// RemoveTrailingSlash strips the trailing slash when present.
// The root path is never stripped.
func RemoveTrailingSlash(src string) string {
	if strings.TrimSpace(src) == data.RootDirectory {
		return src
	}
	if strings.HasSuffix(src, "/") {
		return src[:len(src)-1]
	}
	return src
}

// ToRelativePath converts an absolute path into a path relative to
// baseDir. When the target is not under baseDir the base is walked
// upward, prepending "../" per step, until a common prefix is found.
// Returns ErrNoCommonRoot when the walk reaches the root without a
// match instead of looping forever.
func ToRelativePath(src, baseDir string) (string, error) {
	target := path.Clean(src)
	base := AddTrailingSlash(path.Clean(baseDir))

	if strings.HasPrefix(target, base) {
		return target[len(base):], nil
	}

	var relative strings.Builder
	for {
		trimmed := RemoveTrailingSlash(base)
		parent := path.Dir(trimmed)
		if parent == trimmed {
			return "", fmt.Errorf("%w: %q relative to %q", data.ErrNoCommonRoot, src, baseDir)
		}

		relative.WriteString("../")
		base = AddTrailingSlash(parent)
		if strings.HasPrefix(target, base) {
			return relative.String() + target[len(base):], nil
		}
	}
}

// IsRootPath reports whether the path denotes the root directory.
func IsRootPath(src string) bool {
	return RemoveTrailingSlash(strings.TrimSpace(src)) == "" ||
		strings.TrimSpace(src) == data.RootDirectory
}

// IsParentRootPath reports whether the path sits directly under the
// root directory.
func IsParentRootPath(src string) bool {
	if IsRootPath(src) {
		return false
	}
	return IsRootPath(path.Dir(RemoveTrailingSlash(src)))
}
