package master

import "strings"

// NormalizeNames trims, lowercases and de-duplicates a raw name batch,
// preserving first-seen input order. Empty entries are dropped. Every
// catalog write path funnels its input through this before comparing
// against persisted names.
func NormalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// NamePair is one canonical (name, department) association produced by
// exploding a link request. Both sides are already normalized.
type NamePair struct {
	Name           string
	DepartmentName string
}

// ExplodePairs crosses a normalized name list with a normalized department
// list, de-duplicating the resulting pairs.
func ExplodePairs(names, departments []string) []NamePair {
	seen := make(map[NamePair]struct{}, len(names)*len(departments))
	out := make([]NamePair, 0, len(names)*len(departments))
	for _, n := range NormalizeNames(names) {
		for _, d := range NormalizeNames(departments) {
			p := NamePair{Name: n, DepartmentName: d}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
