package util

import (
	"strconv"
)

// MustParseUint parses a string as an unsigned integer, returning 0 on failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// FormatUint renders an unsigned integer id as its decimal string.
func FormatUint(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
