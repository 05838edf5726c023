package project

import "strings"

// NoDomain selects projects without a domain.
const NoDomain = "none"

// FilterByDomain keeps items whose domain matches selected exactly, or those
// with no domain when selected is NoDomain. An empty selection keeps nothing.
func FilterByDomain[T any](items []T, domainOf func(T) string, selected string) []T {
	out := make([]T, 0, len(items))
	if selected == "" {
		return out
	}
	for _, it := range items {
		d := domainOf(it)
		if selected == NoDomain {
			if d == "" {
				out = append(out, it)
			}
			continue
		}
		if d == selected {
			out = append(out, it)
		}
	}
	return out
}

// SearchByName keeps items whose name contains query, ignoring case.
func SearchByName[T any](items []T, nameOf func(T) string, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(nameOf(it)), q) {
			out = append(out, it)
		}
	}
	return out
}

// PickDefault returns the id to open first: lastID when it is among ids,
// otherwise the first id, otherwise "".
func PickDefault(ids []string, lastID string) string {
	if lastID != "" {
		for _, id := range ids {
			if id == lastID {
				return id
			}
		}
	}
	if len(ids) > 0 {
		return ids[0]
	}
	return ""
}
