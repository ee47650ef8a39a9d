// Package aggregate builds key → aggregate associations from a sequence
// in exactly one pass: counts, indexes, groups, sums, custom reductions
// and per-key extrema.
//
// 🚀 What is aggregate?
//
//	Every operation shares one traversal pattern: walk the input left to
//	right, project each element to a key and a contributed value, look up
//	or create the per-key accumulator, fold the value in.  The operations
//	differ only in the accumulator shape and the fold rule:
//	  • CountBy            — accumulator = int, fold = increment
//	  • IndexBy            — key → single value, last- or first-writer wins
//	  • GroupBy            — accumulator = ordered bucket, fold = append
//	  • FoldBy / ReduceBy  — caller-supplied accumulator and combinator
//	  • TransformReduceBy  — full {Identity, Combine, Finalize} reducer
//	  • AccumulateBy       — accumulator = running total, fold = +
//	  • ExtremaBy/MinMaxBy — accumulator = running min/max under an ordering
//
// Contracts (shared by every operation):
//
//   - Single pass: each element is visited exactly once, in input order;
//     the key, ordering and value projections each run exactly once per
//     element, key first, ordering (where present) second, value last.
//   - Ownership: the returned association is built inside the call and
//     handed to the caller whole; the engine keeps no reference to it,
//     to the input, or to a caller-supplied destination map.
//   - Buckets preserve input order; the association itself is an ordinary
//     Go map and carries no cross-key ordering.
//   - Extrema updates happen only on a STRICT improvement of the ordering
//     key, so ties always keep the value of the earliest element.
//
// Configuration is supplied through functional options:
//
//	counts, err := aggregate.CountBy(words, key, aggregate.WithExpectedUnique(64))
//
// Errors (sentinel):
//
//	– ErrNilKeyProjection / ErrNilValueProjection / ErrNilOrderProjection
//	  if a required projection is nil.
//	– ErrNilLess        if an ordering predicate is nil.
//	– ErrNilReducer     if a Reducer (or one of its function parts) is nil.
//	– ErrNilDestination if an *Into variant receives a nil destination map.
//	– ErrOptionViolation if an invalid Option is supplied (e.g. a negative
//	  sizing hint).
//	– ErrKeyNotFound    from the Get lookup helper for absent keys.
//
// Complexity: O(n) time for n input elements assuming O(1) amortized map
// operations; O(u) space for u distinct keys (plus bucket contents).
//
// See example_test.go for worked examples and ../examples/ for complete
// demo programs.
package aggregate
