package domain

import "strings"

// FirstNonBlank returns the first value that is not empty after trimming,
// trimmed. It returns "" when every value is blank.
func FirstNonBlank(vals ...string) string {
	for _, v := range vals {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

// ValueOr dereferences p, falling back when p is nil. Optional wire fields
// use it to apply their defaults.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
