package pkg

import (
	"slices"
	"strings"
)

// ParseList splits a comma-separated string into trimmed, non-empty entries
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// ContainsID checks if the given identifier is in the list
func ContainsID(ids []string, id string) bool {
	return slices.Contains(ids, id)
}
