package pipe

import (
	"cmp"

	"github.com/katalvlaran/bykey/aggregate"
	"github.com/katalvlaran/bykey/partition"
)

// Count binds a key projection and options into an applier that counts
// occurrences per key.
func Count[E any, K comparable](key func(E) K, opts ...aggregate.Option) func([]E) (map[K]int, error) {
	return func(seq []E) (map[K]int, error) {
		return aggregate.CountBy(seq, key, opts...)
	}
}

// Index binds the projections of an IndexBy into an applier.
func Index[E any, K comparable, V any](key func(E) K, val func(E) V, opts ...aggregate.Option) func([]E) (map[K]V, error) {
	return func(seq []E) (map[K]V, error) {
		return aggregate.IndexBy(seq, key, val, opts...)
	}
}

// Group binds the projections of a GroupBy into an applier.
func Group[E any, K comparable, V any](key func(E) K, val func(E) V, opts ...aggregate.Option) func([]E) (map[K][]V, error) {
	return func(seq []E) (map[K][]V, error) {
		return aggregate.GroupBy(seq, key, val, opts...)
	}
}

// Accumulate binds the projections of an AccumulateBy into an applier.
func Accumulate[E any, K comparable, N cmp.Ordered](key func(E) K, val func(E) N, opts ...aggregate.Option) func([]E) (map[K]N, error) {
	return func(seq []E) (map[K]N, error) {
		return aggregate.AccumulateBy(seq, key, val, opts...)
	}
}

// TransformReduce binds a full reducer into an applier.
func TransformReduce[E any, K comparable, V, A, R any](key func(E) K, val func(E) V, r aggregate.Reducer[V, A, R], opts ...aggregate.Option) func([]E) (map[K]R, error) {
	return func(seq []E) (map[K]R, error) {
		return aggregate.TransformReduceBy(seq, key, val, r, opts...)
	}
}

// Extrema binds the projections of an ExtremaBy into an applier.
func Extrema[E any, K comparable, V any, O cmp.Ordered](key func(E) K, val func(E) V, order func(E) O, opts ...aggregate.Option) func([]E) (map[K]aggregate.Extrema[V], error) {
	return func(seq []E) (map[K]aggregate.Extrema[V], error) {
		return aggregate.ExtremaBy(seq, key, val, order, opts...)
	}
}

// Partition binds a predicate and value projection into an applier that
// splits a sequence into two ordered buckets.
func Partition[E, V any](pred func(E) bool, val func(E) V) func([]E) (partition.Result[V], error) {
	return func(seq []E) (partition.Result[V], error) {
		return partition.PartitionBy(seq, pred, val)
	}
}
