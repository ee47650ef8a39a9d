package aggregate

import "cmp"

// extremaState carries the running per-key record. The ordering keys are
// stored alongside the values so later comparisons never need to
// re-derive an ordering from a value the caller may have moved out of.
type extremaState[V, O any] struct {
	minVal V
	minOrd O
	maxVal V
	maxOrd O
}

// ExtremaByFunc tracks, per key, the value whose ordering projection is
// smallest and the one whose ordering projection is largest under a
// caller-supplied strict ordering predicate less.
//
// Per element the projections run exactly once each, in the order key,
// then order, then val — the ordering projection is always evaluated
// BEFORE the value projection, so a destructive (move-style) value
// projection can never disturb the comparison.
//
// A key's first element initializes both min and max to itself.
// Subsequent elements replace the stored min only when
// less(order, storedMinOrder) holds, and the stored max only when
// less(storedMaxOrder, order) holds: STRICT improvements. Equal ordering
// keys therefore always keep the value of the earliest element in input
// order. This tie policy is a contract, relied on by callers that want
// "first such element", and is covered by dedicated tests.
func ExtremaByFunc[E any, K comparable, V, O any](seq []E, key func(E) K, val func(E) V, order func(E) O, less func(a, b O) bool, opts ...Option) (map[K]Extrema[V], error) {
	if key == nil {
		return nil, ErrNilKeyProjection
	}
	if val == nil {
		return nil, ErrNilValueProjection
	}
	if order == nil {
		return nil, ErrNilOrderProjection
	}
	if less == nil {
		return nil, ErrNilLess
	}
	o, err := parseOptions(opts...)
	if err != nil {
		return nil, err
	}

	states := newAssoc[K, extremaState[V, O]](o)
	for i := range seq {
		k := key(seq[i])
		ord := order(seq[i])
		v := val(seq[i])

		st, seen := states[k]
		if !seen {
			states[k] = extremaState[V, O]{minVal: v, minOrd: ord, maxVal: v, maxOrd: ord}
			continue
		}
		if less(ord, st.minOrd) {
			st.minOrd, st.minVal = ord, v
		}
		if less(st.maxOrd, ord) {
			st.maxOrd, st.maxVal = ord, v
		}
		states[k] = st
	}

	out := make(map[K]Extrema[V], len(states))
	for k, st := range states {
		out[k] = Extrema[V]{Min: st.minVal, Max: st.maxVal}
	}

	return out, nil
}

// ExtremaBy is ExtremaByFunc with the natural "less than" ordering over
// the ordering projection's type.
//
// Example:
//
//	// cheapest and priciest item name per category
//	span, err := aggregate.ExtremaBy(items,
//		func(it Item) string { return it.Category },
//		func(it Item) string { return it.Name },
//		func(it Item) int { return it.Price },
//	)
func ExtremaBy[E any, K comparable, V any, O cmp.Ordered](seq []E, key func(E) K, val func(E) V, order func(E) O, opts ...Option) (map[K]Extrema[V], error) {
	return ExtremaByFunc(seq, key, val, order, func(a, b O) bool { return a < b }, opts...)
}

// MinMaxBy is the plain numeric form: the tracked value IS the ordering
// key. Returns, per key, the smallest and largest ordering value seen.
func MinMaxBy[E any, K comparable, O cmp.Ordered](seq []E, key func(E) K, order func(E) O, opts ...Option) (map[K]Extrema[O], error) {
	if order == nil {
		return nil, ErrNilOrderProjection
	}

	return ExtremaBy(seq, key, order, order, opts...)
}
