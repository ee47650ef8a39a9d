package aggregate

// IndexBy builds a key → single-value association: for each element the
// key and value projections run once, and the value is recorded under the
// key. By default the LAST element carrying a key in input order wins;
// with WithKeepFirst the FIRST occurrence wins and later ones are
// ignored.
//
// Example:
//
//	byID, err := aggregate.IndexBy(users,
//		func(u User) int { return u.ID },
//		func(u User) string { return u.Name },
//	)
func IndexBy[E any, K comparable, V any](seq []E, key func(E) K, val func(E) V, opts ...Option) (map[K]V, error) {
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

	dst := newAssoc[K, V](o)
	indexInto(dst, seq, key, val, o.KeepFirst)

	return dst, nil
}

// IndexByInto is IndexBy writing into a caller-supplied, possibly
// pre-populated destination map. dst is borrowed for the duration of the
// call, mutated in place and returned; the engine retains no reference to
// it afterward. The write-wins policy (including WithKeepFirst) applies
// against dst's existing entries as well.
func IndexByInto[E any, K comparable, V any](dst map[K]V, seq []E, key func(E) K, val func(E) V, opts ...Option) (map[K]V, error) {
	if dst == nil {
		return nil, ErrNilDestination
	}
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

	indexInto(dst, seq, key, val, o.KeepFirst)

	return dst, nil
}

// indexInto runs the shared single pass. Both projections are invoked
// exactly once per element even when the keep-first policy discards the
// value, keeping the per-element projection contract uniform.
func indexInto[E any, K comparable, V any](dst map[K]V, seq []E, key func(E) K, val func(E) V, keepFirst bool) {
	for i := range seq {
		k := key(seq[i])
		v := val(seq[i])
		if keepFirst {
			if _, exists := dst[k]; exists {
				continue
			}
		}
		dst[k] = v
	}
}
