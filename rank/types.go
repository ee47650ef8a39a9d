// Package rank defines the pair type and sentinel errors for ranking
// over key → value associations.
package rank

import "errors"

// Sentinel errors for ranking operations.
var (
	// ErrNegativeK is returned when a negative selection count is supplied.
	ErrNegativeK = errors.New("rank: k must be non-negative")

	// ErrNilLess is returned when a nil ordering predicate is supplied.
	ErrNilLess = errors.New("rank: ordering predicate is nil")
)

// Pair is one ranked (key, aggregate value) entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
