package aggregate_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/bykey/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ident is the identity key projection used throughout these tests.
func ident[T any](x T) T { return x }

// TestCountBy_Basic verifies the canonical frequency scenario:
// [1,1,1,2,2,3] counted by identity yields {1:3, 2:2, 3:1}.
func TestCountBy_Basic(t *testing.T) {
	counts, err := aggregate.CountBy([]int{1, 1, 1, 2, 2, 3}, ident[int])
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 3, 2: 2, 3: 1}, counts)
}

// TestCountBy_Empty verifies that an empty input yields an empty,
// non-nil association (no keys, not an error).
func TestCountBy_Empty(t *testing.T) {
	counts, err := aggregate.CountBy([]string{}, ident[string])
	require.NoError(t, err)
	assert.NotNil(t, counts, "empty input should yield a usable empty map")
	assert.Empty(t, counts)
}

// TestCountBy_KeyProjection verifies counting under a non-trivial key
// projection (case-insensitive word counting).
func TestCountBy_KeyProjection(t *testing.T) {
	words := []string{"Go", "go", "GO", "rust"}
	counts, err := aggregate.CountBy(words, strings.ToLower)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"go": 3, "rust": 1}, counts)
}

// TestCountBy_TotalMatchesInput verifies the partition property of
// counting: per-key counts sum to the input length.
func TestCountBy_TotalMatchesInput(t *testing.T) {
	seq := []int{7, 3, 7, 1, 3, 7, 9, 9, 2, 7}
	counts, err := aggregate.CountBy(seq, func(n int) int { return n % 4 })
	require.NoError(t, err)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, len(seq), total, "every element must be counted exactly once")
}

// TestCountBy_NilKey verifies that a nil key projection is rejected
// before any traversal.
func TestCountBy_NilKey(t *testing.T) {
	_, err := aggregate.CountBy[int, int]([]int{1, 2}, nil)
	assert.ErrorIs(t, err, aggregate.ErrNilKeyProjection)
}

// TestCountBy_BadExpectedUnique verifies that a negative sizing hint is
// surfaced as ErrOptionViolation when the operation runs.
func TestCountBy_BadExpectedUnique(t *testing.T) {
	_, err := aggregate.CountBy([]int{1}, ident[int], aggregate.WithExpectedUnique(-1))
	assert.ErrorIs(t, err, aggregate.ErrOptionViolation)
}

// TestCountBy_ExpectedUniqueIsOnlyAHint verifies the sizing hint never
// changes observable results, even when wildly wrong.
func TestCountBy_ExpectedUniqueIsOnlyAHint(t *testing.T) {
	seq := []int{1, 1, 2, 3, 3, 3}

	plain, err := aggregate.CountBy(seq, ident[int])
	require.NoError(t, err)
	hinted, err := aggregate.CountBy(seq, ident[int], aggregate.WithExpectedUnique(1024))
	require.NoError(t, err)

	assert.Equal(t, plain, hinted, "hint must not change results")
}

// TestGet_PresentAndAbsent verifies the explicit lookup helper: present
// keys return their value, absent keys surface ErrKeyNotFound.
func TestGet_PresentAndAbsent(t *testing.T) {
	counts, err := aggregate.CountBy([]int{5, 5}, ident[int])
	require.NoError(t, err)

	n, err := aggregate.Get(counts, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = aggregate.Get(counts, 42)
	assert.ErrorIs(t, err, aggregate.ErrKeyNotFound)
}
