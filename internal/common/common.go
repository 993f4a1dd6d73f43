// Package common holds small helpers shared across packages.
package common

// UnknownStr is the name printed for unknown enum values.
const UnknownStr = "unknown"

// Dedupe returns values without repeats, keeping first occurrences in order.
func Dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
