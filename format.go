package explorer

import (
	"fmt"

	"github.com/mwantia/explorer/data"
)

// DefaultSizeUnits are the English unit labels used when no localized
// labels are supplied.
var DefaultSizeUnits = []string{"B", "KB", "MB", "GB"}

// HumanReadableSize formats a byte count against the given unit
// labels, dividing by 1024 per magnitude. Sizes past the last label
// keep dividing and render with that label.
func HumanReadableSize(size int64, units []string) string {
	if len(units) == 0 {
		units = DefaultSizeUnits
	}

	aux := size
	for i := 0; i < len(units); i++ {
		if aux < 1024 {
			return fmt.Sprintf("%d %s", aux, units[i])
		}
		aux /= 1024
	}

	return fmt.Sprintf("%d %s", aux, units[len(units)-1])
}

// EntrySize formats the displayable size of an entry. Directories,
// unresolved symlinks, and symlinks to directories format as the
// empty string.
func EntrySize(e *data.Entry, units []string) string {
	size, ok := e.EffectiveSize()
	if !ok {
		return ""
	}
	return HumanReadableSize(size, units)
}
