package nmc

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/hupe1980/nmc/distance"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Classifier is a Nearest Mean Centroid classifier.
//
// Fit estimates one centroid per distinct label as the coordinate-wise mean of
// the training rows carrying that label. Predict assigns each sample the label
// of its closest centroid.
//
// A Classifier is safe for concurrent use: Fit swaps its state atomically and
// Predict works on the state that was current when it started.
type Classifier[L cmp.Ordered] struct {
	opts  options
	state atomic.Pointer[model[L]]
}

// model is the immutable result of a successful Fit.
type model[L cmp.Ordered] struct {
	centroids *mat.Dense // one row per label
	labels    []L        // ascending; labels[i] owns centroid row i
	dim       int
	dist      distance.Func
}

// New creates an unfitted classifier.
func New[L cmp.Ordered](optFns ...Option) *Classifier[L] {
	return &Classifier[L]{opts: applyOptions(optFns)}
}

// Fit estimates the class centroids from x and the aligned labels y.
//
// Any previously fitted state is replaced only when Fit succeeds.
// The receiver is returned so construction and fitting can share a line:
//
//	clf, err := nmc.New[int]().Fit(xtr, ytr)
func (c *Classifier[L]) Fit(x [][]float64, y []L) (*Classifier[L], error) {
	start := time.Now()

	m, err := c.fit(x, y)

	classes := 0
	dim := 0
	if m != nil {
		classes = len(m.labels)
		dim = m.dim
	}
	c.opts.metricsCollector.RecordFit(len(x), classes, time.Since(start), err)
	c.opts.logger.LogFit(context.Background(), len(x), classes, dim, err)

	if err != nil {
		return c, err
	}
	c.state.Store(m)
	return c, nil
}

func (c *Classifier[L]) fit(x [][]float64, y []L) (*model[L], error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d samples, %d labels", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	dim := len(x[0])
	if dim == 0 {
		return nil, ErrNoFeatures
	}
	if err := checkDimension(x, dim); err != nil {
		return nil, err
	}

	dist, err := c.opts.resolveDistance()
	if err != nil {
		return nil, err
	}

	for i, l := range y {
		// Only NaN is unequal to itself.
		if l != l {
			return nil, fmt.Errorf("%w: row %d", ErrNaNLabel, i)
		}
	}

	labels := slices.Clone(y)
	slices.Sort(labels)
	labels = slices.Compact(labels)

	rowOf := make(map[L]int, len(labels))
	for i, l := range labels {
		rowOf[l] = i
	}

	centroids := mat.NewDense(len(labels), dim, nil)
	counts := make([]int, len(labels))
	for i, row := range x {
		r := rowOf[y[i]]
		floats.Add(centroids.RawRowView(r), row)
		counts[r]++
	}
	for r, n := range counts {
		sum := centroids.RawRowView(r)
		for j := range sum {
			sum[j] /= float64(n)
		}
	}

	return &model[L]{
		centroids: centroids,
		labels:    labels,
		dim:       dim,
		dist:      dist,
	}, nil
}

// Predict returns the label of the nearest centroid for every row of x.
//
// It returns ErrNotFitted before a successful Fit and *ErrDimensionMismatch
// when a row's width differs from the training dimensionality. When several
// centroids are equally close, the one whose label sorts first wins.
func (c *Classifier[L]) Predict(x [][]float64) ([]L, error) {
	start := time.Now()

	out, err := c.predict(x)

	c.opts.metricsCollector.RecordPredict(len(x), time.Since(start), err)
	c.opts.logger.LogPredict(context.Background(), len(x), err)

	return out, err
}

func (c *Classifier[L]) predict(x [][]float64) ([]L, error) {
	m := c.state.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	if err := checkDimension(x, m.dim); err != nil {
		return nil, err
	}

	out := make([]L, len(x))

	workers := c.opts.concurrency
	if workers <= 1 || len(x) < 2 {
		for i, row := range x {
			out[i] = m.labels[m.nearest(row)]
		}
		return out, nil
	}

	workers = min(workers, len(x))
	rowsPerWorker := (len(x) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for s := 0; s < len(x); s += rowsPerWorker {
		e := min(s+rowsPerWorker, len(x))
		g.Go(func() error {
			for i := s; i < e; i++ {
				out[i] = m.labels[m.nearest(x[i])]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// PredictOne classifies a single sample.
func (c *Classifier[L]) PredictOne(v []float64) (L, error) {
	out, err := c.Predict([][]float64{v})
	if err != nil {
		var zero L
		return zero, err
	}
	return out[0], nil
}

// Score returns the fraction of rows in x whose predicted label equals y.
func (c *Classifier[L]) Score(x [][]float64, y []L) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d samples, %d labels", ErrLengthMismatch, len(x), len(y))
	}
	pred, err := c.Predict(x)
	if err != nil {
		return 0, err
	}
	return Accuracy(y, pred)
}

// nearest returns the index of the closest centroid.
// Strict comparison keeps the first of several equal minima.
func (m *model[L]) nearest(v []float64) int {
	best := 0
	minDist := math.Inf(1)
	for j := range m.labels {
		d := m.dist(v, m.centroids.RawRowView(j))
		if d < minDist {
			minDist = d
			best = j
		}
	}
	return best
}

// IsFitted reports whether Fit has completed successfully.
func (c *Classifier[L]) IsFitted() bool {
	return c.state.Load() != nil
}

// Dimension returns the feature count seen at fit time, or 0 when unfitted.
func (c *Classifier[L]) Dimension() int {
	if m := c.state.Load(); m != nil {
		return m.dim
	}
	return 0
}

// Centroids returns a copy of the centroid matrix, one row per class label.
// Row i belongs to ClassLabels()[i]. It returns nil when unfitted.
func (c *Classifier[L]) Centroids() [][]float64 {
	m := c.state.Load()
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m.labels))
	for i := range out {
		out[i] = slices.Clone(m.centroids.RawRowView(i))
	}
	return out
}

// CentroidMatrix returns a copy of the centroids as a gonum matrix,
// or nil when unfitted.
func (c *Classifier[L]) CentroidMatrix() *mat.Dense {
	m := c.state.Load()
	if m == nil {
		return nil
	}
	return mat.DenseCopyOf(m.centroids)
}

// ClassLabels returns the distinct training labels in ascending order,
// or nil when unfitted.
func (c *Classifier[L]) ClassLabels() []L {
	m := c.state.Load()
	if m == nil {
		return nil
	}
	return slices.Clone(m.labels)
}

// Accuracy returns the fraction of positions where yTrue and yPred agree.
// Empty inputs yield 0.
func Accuracy[L comparable](yTrue, yPred []L) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, fmt.Errorf("%w: %d labels, %d predictions", ErrLengthMismatch, len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return 0, nil
	}
	hits := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(yTrue)), nil
}

func checkDimension(x [][]float64, dim int) error {
	for i, row := range x {
		if len(row) != dim {
			return &ErrDimensionMismatch{Expected: dim, Actual: len(row), Row: i}
		}
	}
	return nil
}
