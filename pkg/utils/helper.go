package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// QueryInt returns the positive integer stored under key, or fallback when
// the key is absent, malformed or not positive.
func QueryInt(values url.Values, key string, fallback int) int {
	n, err := strconv.Atoi(values.Get(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// ParseID parses a positive entity identifier taken from a path segment.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}
