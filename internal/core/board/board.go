// Package board computes kanban columns from flat item lists.
package board

// Column is one status bucket.
type Column[T any] struct {
	Status string
	Items  []T
}

// ByStatus partitions items into one column per status, in the given order,
// keeping the input order inside each column. Items whose status is not listed
// are left out.
func ByStatus[T any](items []T, statusOf func(T) string, statuses []string) []Column[T] {
	cols := make([]Column[T], len(statuses))
	index := make(map[string]int, len(statuses))
	for i, s := range statuses {
		cols[i] = Column[T]{Status: s, Items: []T{}}
		index[s] = i
	}
	for _, it := range items {
		if i, ok := index[statusOf(it)]; ok {
			cols[i].Items = append(cols[i].Items, it)
		}
	}
	return cols
}

// Replace returns a copy of items with the element whose id matches
// updated's id swapped for updated. The input slice is not modified.
func Replace[T any](items []T, idOf func(T) string, updated T) []T {
	out := make([]T, len(items))
	copy(out, items)
	target := idOf(updated)
	for i, it := range out {
		if idOf(it) == target {
			out[i] = updated
			break
		}
	}
	return out
}

// Find returns the element with the given id.
func Find[T any](items []T, idOf func(T) string, id string) (T, bool) {
	for _, it := range items {
		if idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
