// Package rank selects the k extreme entries of a finished key → value
// association, with deterministic tie-breaking.
//
// 🚀 What is rank?
//
//	Aggregations hand back unordered associations; rank turns them into
//	ordered, truncated pair sequences:
//	  • TopK      — descending by value, ties broken by ascending key
//	  • BottomK   — ascending by value, ties broken by ascending key
//	  • TopKByKey — ascending by key (keys are unique; descending value is
//	    the documented secondary order for symmetry)
//	  • TopKFunc  — the fully general form under an arbitrary ordering
//	    predicate over pairs; the three above are presets of it
//	  • SortedPairs — the untruncated sorted materialization
//
// Contracts:
//
//   - The result length is min(k, len(assoc)); asking for more entries
//     than exist returns the whole association sorted, without error.
//   - k == 0 yields an empty (non-nil) sequence; k < 0 is ErrNegativeK.
//   - Determinism: the preset orderings are total (key breaks every value
//     tie), so equal inputs always produce identical output sequences.
//
// Complexity: O(u log u) time and O(u) space for u distinct keys.
//
// Example:
//
//	counts, _ := aggregate.CountBy([]int{1, 1, 1, 2, 2, 3}, identity)
//	top, _ := rank.TopK(counts, 2) // [{1 3} {2 2}]
package rank
