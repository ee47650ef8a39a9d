// Package aggregate defines the shared option surface, sentinel errors
// and result types for the single-pass aggregation operations.
package aggregate

import (
	"errors"
	"fmt"
)

// Sentinel errors for aggregation operations.
var (
	// ErrNilKeyProjection is returned when the key projection is nil.
	ErrNilKeyProjection = errors.New("aggregate: key projection is nil")

	// ErrNilValueProjection is returned when the value projection is nil.
	ErrNilValueProjection = errors.New("aggregate: value projection is nil")

	// ErrNilOrderProjection is returned when the ordering projection is nil.
	ErrNilOrderProjection = errors.New("aggregate: ordering projection is nil")

	// ErrNilLess is returned when a caller-supplied ordering predicate is nil.
	ErrNilLess = errors.New("aggregate: ordering predicate is nil")

	// ErrNilReducer is returned when a nil Reducer (or nil identity/combine
	// function) is supplied to a reduction operation.
	ErrNilReducer = errors.New("aggregate: reducer is nil")

	// ErrNilDestination is returned when an *Into variant receives a nil
	// destination map.
	ErrNilDestination = errors.New("aggregate: destination map is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("aggregate: invalid option supplied")

	// ErrKeyNotFound is returned by Get when the key is absent.
	ErrKeyNotFound = errors.New("aggregate: key not found")
)

// Option configures an aggregation operation via functional arguments.
// If an Option is invalid (e.g. a negative sizing hint), the violation is
// recorded internally and surfaced as ErrOptionViolation when the
// operation is invoked, before any traversal begins.
type Option func(*Options)

// Options holds the recognized per-call parameters.
type Options struct {
	// ExpectedUnique is a sizing hint: the anticipated number of distinct
	// keys, used to pre-size the result association. 0 means unknown.
	// Purely a performance hint; never changes observable results.
	ExpectedUnique int

	// KeepFirst switches IndexBy from last-writer-wins (the default) to
	// first-writer-wins: once a key holds a value, later occurrences of
	// that key are ignored.
	KeepFirst bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no sizing hint (ExpectedUnique == 0)
//   - last-writer-wins indexing (KeepFirst == false)
func DefaultOptions() Options {
	return Options{
		ExpectedUnique: 0,
		KeepFirst:      false,
		err:            nil,
	}
}

// WithExpectedUnique supplies the anticipated distinct-key count.
//
//	n > 0:  pre-size the association for n keys
//	n == 0: explicit "unknown"
//	n < 0:  invalid option → ErrOptionViolation
func WithExpectedUnique(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: ExpectedUnique cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.ExpectedUnique = n
		}
	}
}

// WithKeepFirst makes IndexBy keep the FIRST value seen for each key
// instead of overwriting with the last.
func WithKeepFirst() Option {
	return func(o *Options) {
		o.KeepFirst = true
	}
}

// parseOptions applies opts over the defaults and surfaces any recorded
// violation before an operation starts traversing.
func parseOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// Reducer describes a per-key reduction in three parts:
//   - Identity returns the accumulator's neutral starting value, used to
//     initialize the entry on a key's first occurrence.
//   - Combine folds one contributed value into the accumulator in place.
//   - Finalize maps the finished accumulator to the reported result shape
//     (for reductions whose running and reported forms coincide, return
//     the accumulator unchanged — see FoldReducer).
type Reducer[V, A, R any] interface {
	Identity() A
	Combine(acc *A, v V)
	Finalize(acc A) R
}

// FoldReducer adapts an identity factory and a mutating combinator into a
// Reducer whose Finalize is the identity function. This is the
// convenience form for reductions that need no separate finalized shape.
func FoldReducer[V, A any](identity func() A, combine func(acc *A, v V)) Reducer[V, A, A] {
	return funcReducer[V, A]{identity: identity, combine: combine}
}

// funcReducer backs FoldReducer.
type funcReducer[V, A any] struct {
	identity func() A
	combine  func(*A, V)
}

func (r funcReducer[V, A]) Identity() A         { return r.identity() }
func (r funcReducer[V, A]) Combine(acc *A, v V) { r.combine(acc, v) }
func (r funcReducer[V, A]) Finalize(acc A) A    { return acc }
func (r funcReducer[V, A]) valid() bool         { return r.identity != nil && r.combine != nil }

// Extrema reports, per key, the value whose ordering key was smallest and
// the value whose ordering key was largest.
type Extrema[V any] struct {
	Min V
	Max V
}

// Get looks k up in a value-bearing association, surfacing absence as
// ErrKeyNotFound. Count-like associations may instead rely on Go's zero
// value for absent keys; for value-bearing associations absence is a
// misuse this helper makes explicit.
func Get[K comparable, V any](m map[K]V, k K) (V, error) {
	v, ok := m[k]
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}

	return v, nil
}
