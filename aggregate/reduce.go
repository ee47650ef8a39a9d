package aggregate

import "cmp"

// FoldBy reduces per key with an explicit initial accumulator value and a
// mutating binary combinator: on a key's first occurrence its accumulator
// starts as a copy of init, then fold(&acc, v) runs for every
// contribution under that key, in input order. No finalize phase — the
// running and reported accumulator forms coincide.
//
// init is copied per key by plain assignment. For accumulators holding
// references (slices, maps), use ReduceBy or TransformReduceBy, whose
// identity factory builds an independent accumulator per key.
func FoldBy[E any, K comparable, V, A any](seq []E, key func(E) K, val func(E) V, init A, fold func(acc *A, v V), opts ...Option) (map[K]A, error) {
	if fold == nil {
		return nil, ErrNilReducer
	}

	return ReduceBy(seq, key, val, func() A { return init }, fold, opts...)
}

// ReduceBy is the convenience reduction form: an identity factory plus a
// mutating combinator, no finalize phase. Equivalent to TransformReduceBy
// with FoldReducer(identity, combine).
func ReduceBy[E any, K comparable, V, A any](seq []E, key func(E) K, val func(E) V, identity func() A, combine func(acc *A, v V), opts ...Option) (map[K]A, error) {
	if key == nil {
		return nil, ErrNilKeyProjection
	}
	if val == nil {
		return nil, ErrNilValueProjection
	}
	if identity == nil || combine == nil {
		return nil, ErrNilReducer
	}
	o, err := parseOptions(opts...)
	if err != nil {
		return nil, err
	}

	dst := newAssoc[K, A](o)
	foldInto(dst, seq, key, val, identity, combine)

	return dst, nil
}

// TransformReduceBy is the general reduction: a full {Identity, Combine,
// Finalize} Reducer drives the kernel. Phase one folds every contribution
// into per-key accumulators; phase two maps each finished accumulator
// through Finalize into a fresh association and discards the raw
// accumulators. The two-phase split lets accumulators hold cheap running
// state (say, sum + count for an average) while the derived shape is
// materialized once per key.
//
// All sum/average/custom-monoid aggregations are expressible through this
// operation; AccumulateBy and friends are thin specializations.
func TransformReduceBy[E any, K comparable, V, A, R any](seq []E, key func(E) K, val func(E) V, r Reducer[V, A, R], opts ...Option) (map[K]R, error) {
	if key == nil {
		return nil, ErrNilKeyProjection
	}
	if val == nil {
		return nil, ErrNilValueProjection
	}
	if r == nil {
		return nil, ErrNilReducer
	}
	if fr, ok := r.(interface{ valid() bool }); ok && !fr.valid() {
		return nil, ErrNilReducer
	}
	o, err := parseOptions(opts...)
	if err != nil {
		return nil, err
	}

	accs := newAssoc[K, A](o)
	foldInto(accs, seq, key, val, r.Identity, r.Combine)

	out := make(map[K]R, len(accs))
	for k, acc := range accs {
		out[k] = r.Finalize(acc)
	}

	return out, nil
}

// AccumulateBy sums projected values per key: identity is the value
// type's zero, combine is +. Works for every ordered type, so string
// concatenation per key is a sum too.
//
// Example:
//
//	totals, err := aggregate.AccumulateBy(orders,
//		func(o Order) string { return o.Customer },
//		func(o Order) int { return o.Cents },
//	)
func AccumulateBy[E any, K comparable, N cmp.Ordered](seq []E, key func(E) K, val func(E) N, opts ...Option) (map[K]N, error) {
	var zero N

	return AccumulateByInit(seq, key, val, zero, opts...)
}

// AccumulateByInit is AccumulateBy with an explicit initial bias: init is
// folded once into every per-key total, offsetting each result by exactly
// init rather than merely replacing the zero.
func AccumulateByInit[E any, K comparable, N cmp.Ordered](seq []E, key func(E) K, val func(E) N, init N, opts ...Option) (map[K]N, error) {
	return ReduceBy(seq, key, val,
		func() N { return init },
		func(acc *N, v N) { *acc += v },
		opts...,
	)
}
