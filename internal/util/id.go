// Package util provides shared utility functions.
package util

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultShortIDLength is the default number of characters for short IDs.
	DefaultShortIDLength = 8
	// GeneratedIDLength is the length of IDs generated for tasks added without one.
	GeneratedIDLength = 6
	// maxIDAttempts bounds the retries when a generated ID collides.
	maxIDAttempts = 16
)

// ErrIDSpaceExhausted is returned when no free generated ID was found.
var ErrIDSpaceExhausted = errors.New("could not generate a free task ID")

// ShortID returns the first n characters of id.
// If n is 0 or negative, DefaultShortIDLength (8) is used.
//
//	ShortID("3f2a9c1e-77aa-4c1b-9d1e-0a7b4c2d9e11", 0) → "3f2a9c1e"
func ShortID(id string, n int) string {
	if n <= 0 {
		n = DefaultShortIDLength
	}
	if len(id) <= n {
		return id
	}
	return id[:n]
}

// NewTaskID returns a short random ID for which taken reports false.
func NewTaskID(taken func(string) bool) (string, error) {
	for range maxIDAttempts {
		id := ShortID(strings.ReplaceAll(uuid.NewString(), "-", ""), GeneratedIDLength)
		if taken == nil || !taken(id) {
			return id, nil
		}
	}
	return "", ErrIDSpaceExhausted
}
