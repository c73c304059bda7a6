package assets

import "strings"

// MaxChoices is the most autocomplete choices Discord accepts.
const MaxChoices = 25

// Match returns the names containing current (case-insensitive), skipping
// any name in exclude (case-insensitive). Order is preserved and at most
// limit names are returned.
func Match(names []string, current string, exclude []string, limit int) []string {
	needle := strings.ToLower(current)

	skip := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		skip[strings.ToLower(e)] = struct{}{}
	}

	matches := make([]string, 0, min(len(names), limit))
	for _, name := range names {
		if len(matches) >= limit {
			break
		}
		lower := strings.ToLower(name)
		if _, ok := skip[lower]; ok {
			continue
		}
		if strings.Contains(lower, needle) {
			matches = append(matches, name)
		}
	}
	return matches
}
