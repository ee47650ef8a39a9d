package aggregate

// GroupBy buckets projected values per key: one pass over seq, appending
// val(x) to the bucket for key(x), creating an empty bucket on a key's
// first occurrence. Within a bucket, values appear in input order; across
// keys the association carries no ordering.
//
// Example:
//
//	words := []string{"eat", "tea", "tan", "ate", "nat", "bat"}
//	groups, err := aggregate.GroupBy(words, sortedLetters, func(w string) string { return w })
//	// groups["aet"] == []string{"eat", "tea", "ate"}
func GroupBy[E any, K comparable, V any](seq []E, key func(E) K, val func(E) V, opts ...Option) (map[K][]V, error) {
	if key == nil {
		return nil, ErrNilKeyProjection
	}
	if val == nil {
		return nil, ErrNilValueProjection
	}
	o, err := parseOptions(opts...)
	if err != nil {
		return nil, err
	}

	dst := newAssoc[K, []V](o)
	groupInto(dst, seq, key, val)

	return dst, nil
}

// GroupByInto is GroupBy appending into a caller-supplied destination
// map, e.g. to merge a new sequence onto a preexisting grouping. dst is
// borrowed for the duration of the call, mutated in place and returned;
// existing buckets are appended to, never replaced.
func GroupByInto[E any, K comparable, V any](dst map[K][]V, seq []E, key func(E) K, val func(E) V, opts ...Option) (map[K][]V, error) {
	if dst == nil {
		return nil, ErrNilDestination
	}
	if key == nil {
		return nil, ErrNilKeyProjection
	}
	if val == nil {
		return nil, ErrNilValueProjection
	}
	if _, err := parseOptions(opts...); err != nil {
		return nil, err
	}

	groupInto(dst, seq, key, val)

	return dst, nil
}

// groupInto specializes the kernel with bucket accumulators: identity is
// the empty bucket, combine is append.
func groupInto[E any, K comparable, V any](dst map[K][]V, seq []E, key func(E) K, val func(E) V) {
	foldInto(dst, seq, key, val,
		func() []V { return nil },
		func(bucket *[]V, v V) { *bucket = append(*bucket, v) },
	)
}
