package aggregate_test

import (
	"testing"

	"github.com/katalvlaran/bykey/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample is a keyed measurement used by the reduction tests.
type sample struct {
	station string
	temp    float64
}

var readings = []sample{
	{"north", 10},
	{"south", 30},
	{"north", 20},
	{"south", 10},
	{"north", 30},
}

// meanAcc is running state for an average: cheap to combine, finalized
// into a single float64 once per key.
type meanAcc struct {
	sum   float64
	count int
}

// meanReducer computes a per-key arithmetic mean through the full
// {Identity, Combine, Finalize} triplet.
type meanReducer struct{}

func (meanReducer) Identity() meanAcc { return meanAcc{} }

func (meanReducer) Combine(acc *meanAcc, v float64) {
	acc.sum += v
	acc.count++
}

func (meanReducer) Finalize(acc meanAcc) float64 {
	return acc.sum / float64(acc.count)
}

// TestTransformReduceBy_MeanPerKey verifies the two-phase reduction: the
// running sum+count accumulator is finalized into a mean per key.
func TestTransformReduceBy_MeanPerKey(t *testing.T) {
	means, err := aggregate.TransformReduceBy(readings,
		func(s sample) string { return s.station },
		func(s sample) float64 { return s.temp },
		meanReducer{},
	)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, means["north"], 1e-9)
	assert.InDelta(t, 20.0, means["south"], 1e-9)
}

// TestTransformReduceBy_FoldReducer verifies the convenience triplet
// built from an identity factory and combinator: Finalize is the
// identity, so the raw accumulator is reported.
func TestTransformReduceBy_FoldReducer(t *testing.T) {
	r := aggregate.FoldReducer(
		func() []float64 { return nil },
		func(acc *[]float64, v float64) { *acc = append(*acc, v) },
	)

	buckets, err := aggregate.TransformReduceBy(readings,
		func(s sample) string { return s.station },
		func(s sample) float64 { return s.temp },
		r,
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, buckets["north"])
	assert.Equal(t, []float64{30, 10}, buckets["south"])
}

// TestTransformReduceBy_NilReducer verifies reducer nil checks, both for
// a nil interface and for a FoldReducer carrying nil functions.
func TestTransformReduceBy_NilReducer(t *testing.T) {
	key := func(s sample) string { return s.station }
	val := func(s sample) float64 { return s.temp }

	_, err := aggregate.TransformReduceBy[sample, string, float64, int, int](readings, key, val, nil)
	assert.ErrorIs(t, err, aggregate.ErrNilReducer)

	broken := aggregate.FoldReducer[float64, int](nil, nil)
	_, err = aggregate.TransformReduceBy(readings, key, val, broken)
	assert.ErrorIs(t, err, aggregate.ErrNilReducer)
}

// TestReduceBy_MinPerKey verifies the convenience form without finalize.
func TestReduceBy_MinPerKey(t *testing.T) {
	mins, err := aggregate.ReduceBy(readings,
		func(s sample) string { return s.station },
		func(s sample) float64 { return s.temp },
		func() float64 { return 1e18 },
		func(acc *float64, v float64) {
			if v < *acc {
				*acc = v
			}
		},
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"north": 10, "south": 10}, mins)
}

// TestFoldBy_CustomBuckets verifies fold-by with an explicit initial
// accumulator value and mutating combinator.
func TestFoldBy_CustomBuckets(t *testing.T) {
	type stats struct {
		n   int
		max float64
	}

	perStation, err := aggregate.FoldBy(readings,
		func(s sample) string { return s.station },
		func(s sample) float64 { return s.temp },
		stats{max: -1},
		func(acc *stats, v float64) {
			acc.n++
			if v > acc.max {
				acc.max = v
			}
		},
	)
	require.NoError(t, err)
	assert.Equal(t, stats{n: 3, max: 30}, perStation["north"])
	assert.Equal(t, stats{n: 2, max: 30}, perStation["south"])
}

// TestAccumulateBy_SumsPerKey verifies default summation: per key, the
// arithmetic sum of projected values.
func TestAccumulateBy_SumsPerKey(t *testing.T) {
	totals, err := aggregate.AccumulateBy(readings,
		func(s sample) string { return s.station },
		func(s sample) float64 { return s.temp },
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"north": 60, "south": 40}, totals)
}

// TestAccumulateBy_Strings verifies that summation covers every ordered
// type: string contributions concatenate per key, in input order.
func TestAccumulateBy_Strings(t *testing.T) {
	words := []string{"eat", "tan", "ate", "nat"}

	joined, err := aggregate.AccumulateBy(words, sortedLetters, ident[string])
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"aet": "eatate", "ant": "tannat"}, joined)
}

// TestAccumulateByInit_BiasShiftsEveryTotal verifies the bias contract:
// an initial value of b shifts every per-key total by exactly b.
func TestAccumulateByInit_BiasShiftsEveryTotal(t *testing.T) {
	const bias = 100.0

	key := func(s sample) string { return s.station }
	val := func(s sample) float64 { return s.temp }

	plain, err := aggregate.AccumulateBy(readings, key, val)
	require.NoError(t, err)
	biased, err := aggregate.AccumulateByInit(readings, key, val, bias)
	require.NoError(t, err)

	require.Len(t, biased, len(plain))
	for k, total := range plain {
		assert.InDelta(t, total+bias, biased[k], 1e-9, "key %q", k)
	}
}

// TestReduceBy_NilArguments verifies nil checks on the reduction forms.
func TestReduceBy_NilArguments(t *testing.T) {
	key := func(s sample) string { return s.station }
	val := func(s sample) float64 { return s.temp }

	_, err := aggregate.ReduceBy[sample, string, float64, float64](readings, key, val, nil, nil)
	assert.ErrorIs(t, err, aggregate.ErrNilReducer)

	_, err = aggregate.FoldBy[sample, string, float64, float64](readings, key, val, 0, nil)
	assert.ErrorIs(t, err, aggregate.ErrNilReducer)
}
