package dataset

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/hupe1980/nmc/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexedFixture returns n rows whose single feature equals the row index.
func indexedFixture(n int) ([][]float64, []int) {
	x := make([][]float64, n)
	y := make([]int, n)
	for i := range n {
		x[i] = []float64{float64(i)}
		y[i] = i
	}
	return x, y
}

func TestSplit_Sizes(t *testing.T) {
	x, y := indexedFixture(100)

	xtr, ytr, xts, yts, err := Split(x, y, 0.6, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Len(t, xtr, 60)
	assert.Len(t, ytr, 60)
	assert.Len(t, xts, 40)
	assert.Len(t, yts, 40)

	seen := make(map[int]int, 100)
	for _, i := range ytr {
		seen[i]++
	}
	for _, i := range yts {
		seen[i]++
	}
	require.Len(t, seen, 100)
	for i := range 100 {
		assert.Equal(t, 1, seen[i], "index %d", i)
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(42)
	x := rng.UniformMatrix(50, 4)
	y := make([]int, len(x))
	for i := range y {
		y[i] = i
	}

	xtr, ytr, xts, yts, err := Split(x, y, 0.3, rng)
	require.NoError(t, err)

	type sample struct {
		idx int
		row []float64
	}
	var merged []sample
	for i := range xtr {
		merged = append(merged, sample{ytr[i], xtr[i]})
	}
	for i := range xts {
		merged = append(merged, sample{yts[i], xts[i]})
	}
	sort.Slice(merged, func(a, b int) bool { return merged[a].idx < merged[b].idx })

	require.Len(t, merged, len(x))
	for i, s := range merged {
		assert.Equal(t, i, s.idx)
		assert.Equal(t, x[i], s.row)
	}
}

func TestSplit_PreservesOrder(t *testing.T) {
	x, y := indexedFixture(30)

	_, ytr, _, yts, err := Split(x, y, 0.5, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.True(t, sort.IntsAreSorted(ytr))
	assert.True(t, sort.IntsAreSorted(yts))
}

func TestSplit_Reproducible(t *testing.T) {
	x, y := indexedFixture(40)

	_, a, _, _, err := Split(x, y, 0.5, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	_, b, _, _, err := Split(x, y, 0.5, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	rng := testutil.NewRNG(99)
	_, c, _, _, err := Split(x, y, 0.5, rng)
	require.NoError(t, err)
	rng.Reset()
	_, d, _, _, err := Split(x, y, 0.5, rng)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestSplit_Uniform(t *testing.T) {
	// Every position should land in the training side about half the time.
	const (
		n      = 10
		trials = 4000
	)
	counts := make([]int, n)
	rng := rand.New(rand.NewSource(5))
	for range trials {
		train, _, err := SplitIndices(n, 0.5, rng)
		require.NoError(t, err)
		for _, i := range train {
			counts[i]++
		}
	}
	for i, c := range counts {
		assert.InDelta(t, trials/2, c, 200, "position %d", i)
	}
}

func TestSplit_EdgeFractions(t *testing.T) {
	x, y := indexedFixture(10)

	t.Run("AllTest", func(t *testing.T) {
		xtr, ytr, xts, yts, err := Split(x, y, 0, nil)
		require.NoError(t, err)
		assert.Empty(t, xtr)
		assert.Empty(t, ytr)
		assert.Len(t, xts, 10)
		assert.Equal(t, y, yts)
	})

	t.Run("AllTrain", func(t *testing.T) {
		xtr, ytr, xts, _, err := Split(x, y, 1, nil)
		require.NoError(t, err)
		assert.Len(t, xtr, 10)
		assert.Equal(t, y, ytr)
		assert.Empty(t, xts)
	})

	t.Run("Floor", func(t *testing.T) {
		xtr, _, xts, _, err := Split(x, y, 0.55, nil)
		require.NoError(t, err)
		assert.Len(t, xtr, 5)
		assert.Len(t, xts, 5)
	})

	t.Run("Default", func(t *testing.T) {
		xtr, _, _, _, err := Split(x, y, DefaultTrainFraction, nil)
		require.NoError(t, err)
		assert.Len(t, xtr, 5)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		xtr, _, xts, _, err := Split[int](nil, nil, 0.5, nil)
		require.NoError(t, err)
		assert.Empty(t, xtr)
		assert.Empty(t, xts)
	})
}

func TestSplit_Errors(t *testing.T) {
	x, y := indexedFixture(4)

	_, _, _, _, err := Split(x, y[:3], 0.5, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	for _, f := range []float64{-0.1, 1.5, math.NaN()} {
		_, _, _, _, err = Split(x, y, f, nil)
		assert.ErrorIs(t, err, ErrInvalidFraction)
	}
}
