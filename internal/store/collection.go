// Package store holds the canonical in-memory collections — one store per
// entity type, each the single source of truth for what the server has
// confirmed. There is no optimistic update: a collection changes only after
// a successful API response, so a failed write always leaves it untouched.
//
// Concurrent calls against different ids are safe; concurrent calls against
// the same id have no ordering guarantee beyond last-completed-response-wins.
package store

import "github.com/google/uuid"

// replaceByID swaps the element matching id in place, preserving collection
// order. Reports whether a match was found.
func replaceByID[T any](items []T, id uuid.UUID, getID func(T) uuid.UUID, replacement T) bool {
	for i := range items {
		if getID(items[i]) == id {
			items[i] = replacement
			return true
		}
	}
	return false
}

// removeByID splices out the element matching id, preserving the order of
// the rest.
func removeByID[T any](items []T, id uuid.UUID, getID func(T) uuid.UUID) []T {
	out := items[:0]
	for _, item := range items {
		if getID(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func snapshot[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
