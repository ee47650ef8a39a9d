// Package bykey is your single-pass toolkit for key-based aggregation —
// from simple counting to custom monoid-style reductions, ranking and
// partitioning.
//
// 🚀 What is bykey?
//
//	A modern, generic, single-pass library that brings together:
//		• Counting: CountBy — key → number of occurrences
//		• Indexing: IndexBy — key → single value (last- or first-writer wins)
//		• Grouping: GroupBy — key → ordered bucket of values
//		• Reductions: FoldBy, ReduceBy, TransformReduceBy — key → custom accumulator
//		• Summation: AccumulateBy — key → running total (optional bias)
//		• Extrema: ExtremaBy, MinMaxBy — key → min/max under a caller-supplied ordering
//		• Ranking: TopK / BottomK with deterministic tie-breaking
//		• Partitioning: one pass, two ordered buckets
//
// ✨ Why choose bykey?
//
//   - One traversal, always – every operation is a strict left-to-right pass
//   - Deterministic – ranking tie-breaks and extrema tie policy are contracts, not accidents
//   - Pure Go – generics, no cgo, no hidden deps
//   - Composable – build pipelines with the pipe/ adaptors
//
// Under the hood, everything is organized under four subpackages:
//
//	aggregate/ — the accumulation kernel and all key → aggregate operations
//	rank/      — top-k / bottom-k selection over finished associations
//	partition/ — boolean split of a sequence into two ordered buckets
//	pipe/      — function-composition adaptors over the operations above
//
// Quick example:
//
//	counts, _ := aggregate.CountBy(words, strings.ToLower)
//	top, _ := rank.TopK(counts, 3)
//
//	ranks the three most frequent words, ties resolved by ascending word.
//
// Dive into each package's doc.go for full contracts, complexity notes and
// worked examples, and into examples/ for runnable demo programs.
//
//	go get github.com/katalvlaran/bykey
package bykey
