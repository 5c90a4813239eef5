package submission

import (
	"fmt"
	"strings"
	"time"
)

// destinationPath derives a collision-free storage path for one
// document. The unique component keeps two submissions by the same
// owner with the same label in the same millisecond on distinct paths.
func destinationPath(ownerID string, at time.Time, unique, label string) string {
	return fmt.Sprintf("%s/%d_%s_%s", ownerID, at.UnixMilli(), unique, sanitizeLabel(label))
}

// sanitizeLabel flattens a label into a path segment. Separators and
// whitespace would otherwise leak structure into the storage key.
func sanitizeLabel(label string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(label))
	if mapped == "" {
		return "document"
	}
	return mapped
}
