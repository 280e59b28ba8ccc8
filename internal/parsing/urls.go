// Package parsing provides URL list normalization, filename sanitization
// and loose date parsing.
package parsing

import (
	"strings"
)

// ParseURLText splits freeform text into a deduplicated, order-preserving
// link list.
//
// Users should put a single URL on each line for proper parsing. Blank
// lines and lines starting with '#' are skipped.
func ParseURLText(text string) []string {
	lines := strings.Split(text, "\n")

	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		u := strings.TrimSpace(line)
		if u == "" || strings.HasPrefix(u, "#") {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// MergeURLLists merges multiple link lists into one, preserving first-seen
// order and dropping exact duplicates across sources.
func MergeURLLists(lists ...[]string) []string {
	var total int
	for _, l := range lists {
		total += len(l)
	}

	seen := make(map[string]struct{}, total)
	out := make([]string, 0, total)

	for _, l := range lists {
		for _, u := range l {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}
