// Package partition splits a sequence into two ordered buckets in one
// pass: elements whose predicate holds and elements whose predicate does
// not.
//
// Contracts:
//
//   - Per element the predicate is evaluated on the ORIGINAL element
//     strictly BEFORE the value projection runs, so a destructive
//     (move-style) projection can neither influence nor be influenced by
//     the predicate.
//   - Each projection and the predicate run exactly once per element, in
//     input order.
//   - Every element lands in exactly one bucket, and each bucket
//     preserves the elements' relative input order.
//
// Example:
//
//	res, _ := partition.Partition([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	// res.Trues == []int{2, 4}, res.Falses == []int{1, 3, 5}
package partition
