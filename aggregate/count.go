package aggregate

// CountBy counts occurrences per key: one pass over seq, incrementing the
// counter for key(x) at every element. Returns key → occurrence count.
//
// Absent keys in the result mean zero occurrences; plain map access
// (which yields 0) is the intended lookup for count associations.
//
// Example:
//
//	counts, err := aggregate.CountBy([]int{1, 1, 1, 2, 2, 3}, func(n int) int { return n })
//	// counts == map[int]int{1: 3, 2: 2, 3: 1}
func CountBy[E any, K comparable](seq []E, key func(E) K, opts ...Option) (map[K]int, error) {
	if key == nil {
		return nil, ErrNilKeyProjection
	}
	o, err := parseOptions(opts...)
	if err != nil {
		return nil, err
	}

	freq := newAssoc[K, int](o)
	for i := range seq {
		freq[key(seq[i])]++
	}

	return freq, nil
}
