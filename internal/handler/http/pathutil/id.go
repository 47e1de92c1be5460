// Package pathutil provides helpers for parsing and normalizing URL paths.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when an ID path segment is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path segment as a positive int64 ID.
// Returns ErrInvalidID if the segment is not a positive integer.
func ParseID(segment string) (int64, error) {
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
