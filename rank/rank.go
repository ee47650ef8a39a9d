package rank

import (
	"cmp"
	"fmt"
	"sort"
)

// SortedPairs materializes the association as a pair slice sorted under
// less. The input map is read only; the returned slice is freshly
// allocated and owned by the caller.
//
// Determinism is the caller's contract: less must be a total order over
// the association's pairs (the preset orderings below break every value
// tie by key) or equal runs may legitimately differ in pair placement.
func SortedPairs[K comparable, V any](m map[K]V, less func(a, b Pair[K, V]) bool) ([]Pair[K, V], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return less(pairs[i], pairs[j]) })

	return pairs, nil
}

// TopKFunc returns the first min(k, len(m)) pairs of the association
// sorted under less. The named variants (TopK, BottomK, TopKByKey) are
// convenience presets of this operation.
//
//	k > len(m): the whole association, sorted — not an error
//	k == 0:     an empty, non-nil sequence
//	k < 0:      ErrNegativeK
func TopKFunc[K comparable, V any](m map[K]V, k int, less func(a, b Pair[K, V]) bool) ([]Pair[K, V], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeK, k)
	}

	pairs, err := SortedPairs(m, less)
	if err != nil {
		return nil, err
	}
	if len(pairs) > k {
		pairs = pairs[:k]
	}

	return pairs, nil
}

// TopK returns the k largest entries by value, descending; values tie
// break by ascending key.
func TopK[K cmp.Ordered, V cmp.Ordered](m map[K]V, k int) ([]Pair[K, V], error) {
	return TopKFunc(m, k, func(a, b Pair[K, V]) bool {
		if a.Value != b.Value {
			return a.Value > b.Value
		}

		return a.Key < b.Key
	})
}

// BottomK returns the k smallest entries by value, ascending; values tie
// break by ascending key.
func BottomK[K cmp.Ordered, V cmp.Ordered](m map[K]V, k int) ([]Pair[K, V], error) {
	return TopKFunc(m, k, func(a, b Pair[K, V]) bool {
		if a.Value != b.Value {
			return a.Value < b.Value
		}

		return a.Key < b.Key
	})
}

// TopKByKey returns the k entries with the smallest keys, ascending by
// key. Keys are unique, so the secondary descending-by-value order exists
// for documentation symmetry rather than reachable ties.
func TopKByKey[K cmp.Ordered, V cmp.Ordered](m map[K]V, k int) ([]Pair[K, V], error) {
	return TopKFunc(m, k, func(a, b Pair[K, V]) bool {
		if a.Key != b.Key {
			return a.Key < b.Key
		}

		return a.Value > b.Value
	})
}
