package partition

import "errors"

// Sentinel errors for partitioning.
var (
	// ErrNilPredicate is returned when the predicate is nil.
	ErrNilPredicate = errors.New("partition: predicate is nil")

	// ErrNilValueProjection is returned when the value projection is nil.
	ErrNilValueProjection = errors.New("partition: value projection is nil")
)

// Result holds the two disjoint ordered buckets of a partition. Trues
// receives the projected values of elements satisfying the predicate,
// Falses the rest; both preserve relative input order.
type Result[V any] struct {
	Trues  []V
	Falses []V
}

// PartitionBy splits seq in a single pass: for each element the predicate
// runs first on the original element, the value projection second, and
// the projected value is appended to Trues or Falses accordingly.
func PartitionBy[E, V any](seq []E, pred func(E) bool, val func(E) V) (Result[V], error) {
	if pred == nil {
		return Result[V]{}, ErrNilPredicate
	}
	if val == nil {
		return Result[V]{}, ErrNilValueProjection
	}

	var out Result[V]
	for i := range seq {
		holds := pred(seq[i])
		v := val(seq[i])
		if holds {
			out.Trues = append(out.Trues, v)
		} else {
			out.Falses = append(out.Falses, v)
		}
	}

	return out, nil
}

// Partition is PartitionBy with the identity value projection: the
// elements themselves land in the buckets.
func Partition[E any](seq []E, pred func(E) bool) (Result[E], error) {
	if pred == nil {
		return Result[E]{}, ErrNilPredicate
	}

	return PartitionBy(seq, pred, func(x E) E { return x })
}
