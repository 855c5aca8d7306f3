package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{0, 0}, []float64{3, 4}, 5},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 2.8284271247461903},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Euclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestSquaredEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8}, // (1 - -1)^2 + (-1 - 1)^2 = 4 + 4 = 8
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredEuclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestManhattanAndChebyshev(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 0, 3}

	assert.InDelta(t, 5.0, Manhattan(a, b), 1e-12)
	assert.InDelta(t, 3.0, Chebyshev(a, b), 1e-12)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{2, 0}), 1e-12)
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{0, 5}), 1e-12)
	assert.InDelta(t, 2.0, Cosine([]float64{1, 0}, []float64{-1, 0}), 1e-12)

	// Zero vector
	assert.Equal(t, 1.0, Cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Euclidean", MetricEuclidean.String())
		assert.Equal(t, "SquaredEuclidean", MetricSquaredEuclidean.String())
		assert.Equal(t, "Manhattan", MetricManhattan.String())
		assert.Equal(t, "Chebyshev", MetricChebyshev.String())
		assert.Equal(t, "Cosine", MetricCosine.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Default", func(t *testing.T) {
		var m Metric
		assert.Equal(t, MetricEuclidean, m)
	})

	t.Run("Provider", func(t *testing.T) {
		f, err := Provider(MetricEuclidean)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, f([]float64{0, 0}, []float64{3, 4}), 1e-12)

		for _, m := range []Metric{MetricSquaredEuclidean, MetricManhattan, MetricChebyshev, MetricCosine} {
			f, err = Provider(m)
			require.NoError(t, err, m.String())
			assert.NotNil(t, f)
		}

		_, err = Provider(Metric(99))
		assert.Error(t, err)
	})

	t.Run("Parse", func(t *testing.T) {
		for _, m := range []Metric{MetricEuclidean, MetricSquaredEuclidean, MetricManhattan, MetricChebyshev, MetricCosine} {
			got, err := ParseMetric(m.String())
			require.NoError(t, err)
			assert.Equal(t, m, got)
		}

		got, err := ParseMetric("l1")
		require.NoError(t, err)
		assert.Equal(t, MetricManhattan, got)

		_, err = ParseMetric("hamming")
		assert.Error(t, err)
	})
}
