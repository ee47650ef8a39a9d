// Package pipe offers composition sugar over the aggregate, rank and
// partition operations: each adaptor binds projections and options up
// front and returns an applier func that runs the operation on a
// sequence. Pure ergonomics — no new semantics over the underlying
// operations.
//
// Example:
//
//	countWords := pipe.Count(strings.ToLower)
//	counts, err := countWords(words)
//
// Appliers compose naturally with ordinary function calls:
//
//	counts, _ := pipe.Count(keyOf)(records)
//	top, _ := rank.TopK(counts, 10)
package pipe
