package listview

import (
	"sort"
	"strings"
)

// Direction of a sort spec.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Predicate decides whether an item stays in the filtered collection.
type Predicate[T any] func(T) bool

// Accessor resolves the sortable value of one named key for an item.
type Accessor[T any] func(T) Value

// SortSpec pairs an accessor with a direction.
type SortSpec[T any] struct {
	Key       Accessor[T]
	Direction Direction
}

// Query is the full (filter, sort, page) specification a page hands to
// Process.
type Query[T any] struct {
	Filters  []Predicate[T]
	Sort     *SortSpec[T] // nil keeps the collection's fetch/append order
	Page     int          // 1-based
	PageSize int
}

// Result is the derived visible slice plus the counters the page chrome
// renders ("Mostrando X a Y de Z", page controls).
type Result[T any] struct {
	Items      []T
	Total      int
	TotalPages int
}

// Substring builds a case-insensitive containment predicate over one string
// field. An empty term matches everything (an unset filter field).
func Substring[T any](get func(T) string, term string) Predicate[T] {
	if term == "" {
		return func(T) bool { return true }
	}
	needle := strings.ToLower(term)
	return func(item T) bool {
		return strings.Contains(strings.ToLower(get(item)), needle)
	}
}

// GlobalSearch matches when ANY of the given display fields contains the
// search term. It is evaluated independently of per-field filters and ANDed
// with them by Filter.
func GlobalSearch[T any](term string, fields ...func(T) string) Predicate[T] {
	if term == "" {
		return func(T) bool { return true }
	}
	needle := strings.ToLower(term)
	return func(item T) bool {
		for _, get := range fields {
			if strings.Contains(strings.ToLower(get(item)), needle) {
				return true
			}
		}
		return false
	}
}

// Filter keeps the items satisfying every predicate (AND semantics). Nil
// predicates are ignored. The input slice is never modified.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range preds {
			if pred != nil && !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// Sort returns a stably sorted copy. Absent values sort after all present
// values regardless of direction; ties keep their prior relative order, so
// sorting twice with the same spec is a no-op.
func Sort[T any](items []T, key Accessor[T], dir Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := key(out[i]), key(out[j])
		switch {
		case a.isAbsent():
			return false // absent never wins, even descending
		case b.isAbsent():
			return true
		}
		c := compare(a, b)
		if dir == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// TotalPages computes ceil(total/pageSize); zero items means zero pages.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate computes the visible window for a 1-based page. A page past the
// end is not an error — the slice is simply empty.
func Paginate[T any](items []T, page, pageSize int) ([]T, int, int) {
	total := len(items)
	totalPages := TotalPages(total, pageSize)
	if page < 1 || pageSize < 1 {
		return []T{}, total, totalPages
	}
	start := (page - 1) * pageSize
	if start >= total {
		return []T{}, total, totalPages
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return items[start:end], total, totalPages
}

// Process applies filter, then sort, then pagination — the exact slice a
// page renders.
func Process[T any](items []T, q Query[T]) Result[T] {
	processed := Filter(items, q.Filters...)
	if q.Sort != nil {
		processed = Sort(processed, q.Sort.Key, q.Sort.Direction)
	}
	pageItems, total, totalPages := Paginate(processed, q.Page, q.PageSize)
	return Result[T]{Items: pageItems, Total: total, TotalPages: totalPages}
}
