package story

import "strings"

// NoEpic is the bucket key for stories without a loaded epic.
const NoEpic = "none"

// GroupByEpic buckets stories by the epic id epicOf returns, preserving order
// within each bucket. Stories whose epic is not in epicIDs land under NoEpic.
func GroupByEpic[T any](stories []T, epicOf func(T) string, epicIDs []string) map[string][]T {
	known := make(map[string]bool, len(epicIDs))
	for _, id := range epicIDs {
		known[id] = true
	}
	groups := make(map[string][]T, len(epicIDs)+1)
	for _, s := range stories {
		key := epicOf(s)
		if key == "" || !known[key] {
			key = NoEpic
		}
		groups[key] = append(groups[key], s)
	}
	return groups
}

// Search keeps items where any of the texts returned by fields contains query,
// ignoring case. A blank query keeps everything.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
