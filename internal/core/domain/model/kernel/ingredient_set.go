package kernel

import (
	"slices"
	"strings"
)

// NormalizeSet lowercases and trims every item, drops empties and duplicates,
// and returns the result sorted. Hero restrictions and meal compositions both
// go through this, so the two sides of a conflict check always compare equal
// item names regardless of input casing.
func NormalizeSet(items []string) []string {
	normalized := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		normalized = append(normalized, item)
	}

	slices.Sort(normalized)
	return normalized
}
