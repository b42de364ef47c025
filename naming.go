package explorer

import (
	"fmt"

	"github.com/mwantia/explorer/data"
)

// RenameTemplate produces a new candidate name from a base name and
// its extension (including the separating dot, or "" when absent).
// Templates are expected to be strictly progressive so repeated
// application eventually produces a novel name.
type RenameTemplate func(base, ext string) string

// maxRenameAttempts bounds the template iteration. A template that
// cycles instead of progressing fails with ErrNameExhausted rather
// than spinning forever.
const maxRenameAttempts = 10000

// DefaultRenameTemplate appends a copy marker before the extension.
func DefaultRenameTemplate(base, ext string) string {
	return fmt.Sprintf("%s (copy)%s", base, ext)
}

// CreateNonExistingName returns attempted unchanged when it is free,
// otherwise applies the rename template until a name not present in
// existing is found.
func CreateNonExistingName(existing []string, attempted string, tmpl RenameTemplate) (string, error) {
	if tmpl == nil {
		tmpl = DefaultRenameTemplate
	}

	newName := attempted
	if !nameTaken(existing, newName) {
		return newName, nil
	}

	for i := 0; i < maxRenameAttempts; i++ {
		base := BaseNameOf(newName)
		ext := ExtensionOf(newName)
		if ext != "" {
			ext = "." + ext
		}

		newName = tmpl(base, ext)
		if !nameTaken(existing, newName) {
			return newName, nil
		}
	}

	return "", fmt.Errorf("%w: %q after %d attempts", data.ErrNameExhausted, attempted, maxRenameAttempts)
}

// NameExists reports whether a name is already used by an entry in
// the current directory listing.
func NameExists(entries []*data.Entry, name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// EntryNames collects the names of a listing for use with
// CreateNonExistingName.
func EntryNames(entries []*data.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func nameTaken(existing []string, name string) bool {
	for _, taken := range existing {
		if taken == name {
			return true
		}
	}
	return false
}
