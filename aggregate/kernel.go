package aggregate

// foldInto is the accumulation kernel every operation in this package
// specializes: one left-to-right pass over seq, projecting each element
// to a key and a contributed value, creating the per-key accumulator from
// identity on a key's first occurrence, then folding the value in.
//
// Per element the key projection runs first and the value projection
// second, each exactly once. Accumulators live only inside dst and are
// never observed mid-traversal.
//
// Complexity: O(len(seq)) time assuming O(1) amortized map operations.
func foldInto[E any, K comparable, V, A any](
	dst map[K]A,
	seq []E,
	key func(E) K,
	val func(E) V,
	identity func() A,
	combine func(acc *A, v V),
) {
	for i := range seq {
		k := key(seq[i])
		v := val(seq[i])
		acc, ok := dst[k]
		if !ok {
			acc = identity()
		}
		// Go map values are not addressable: fold into a local copy,
		// then store it back under the same key.
		combine(&acc, v)
		dst[k] = acc
	}
}

// newAssoc allocates a result association, honoring the sizing hint.
func newAssoc[K comparable, A any](o Options) map[K]A {
	if o.ExpectedUnique > 0 {
		return make(map[K]A, o.ExpectedUnique)
	}

	return make(map[K]A)
}
