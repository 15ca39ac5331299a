package dto

import (
	"net/url"
	"strings"
)

// OptionalString maps raw form input for an optional field to its payload
// representation: empty or whitespace-only input becomes field-absent (nil),
// anything else is sent trimmed.
func OptionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizeTipo lowercases and trims a record type so the enum has exactly one
// canonical spelling on the wire and in filters.
func NormalizeTipo(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func setNonEmpty(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}
