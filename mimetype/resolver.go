// Package mimetype resolves and matches content types for listing
// entries. Resolution is table-driven by extension with optional
// content sniffing for on-disk paths.
package mimetype

import (
	"path/filepath"
	"strings"

	gomime "github.com/gabriel-vasile/mimetype"

	"github.com/mwantia/explorer/data"
)

// AllTypes is the sentinel filter that matches every entry.
const AllTypes = "*/*"

// Resolver matches entries against a requested mime filter.
// The zero value is usable.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// TypeOf returns the MIME type for an entry name.
// Unknown extensions resolve to application/octet-stream.
func (r *Resolver) TypeOf(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	if mimeType, exists := extensionToType[ext]; exists {
		return mimeType
	}

	return TypeApplicationStream
}

// Matches reports whether the entry satisfies the requested filter.
// The AllTypes sentinel (and an empty filter) always matches, and
// directories always match so navigation stays possible. A filter of
// the form "image/*" matches every type of that class.
func (r *Resolver) Matches(e *data.Entry, filter string) bool {
	if filter == "" || filter == AllTypes {
		return true
	}
	if e.IsDirectory() {
		return true
	}

	entryType := r.TypeOf(e.Effective().Name)

	if class, ok := strings.CutSuffix(filter, "/*"); ok {
		return strings.HasPrefix(entryType, class+"/")
	}

	return entryType == filter
}

// Detect sniffs the content type of an on-disk file, falling back to
// the extension table when the file cannot be read.
func (r *Resolver) Detect(path string) string {
	detected, err := gomime.DetectFile(path)
	if err != nil {
		return r.TypeOf(filepath.Base(path))
	}

	// Strip optional parameters such as "; charset=utf-8"
	mime := detected.String()
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}

	return mime
}
