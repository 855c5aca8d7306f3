package testutil

import (
	"bytes"
	"encoding/csv"
	"math"
	"math/rand"
	"strconv"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Shuffle pseudo-randomizes the order of n elements through swap.
// It lets an RNG act as the random source of dataset.Split.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// UniformMatrix generates num rows of random features in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformMatrix(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	rows := make([][]float64, num)

	for i := range num {
		row := data[i*dimensions : (i+1)*dimensions]
		for j := range row {
			row[j] = r.rand.Float64()
		}
		rows[i] = row
	}

	return rows
}

// PixelMatrix generates num rows of integral intensities in [0, 255].
func (r *RNG) PixelMatrix(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]float64, num)
	for i := range num {
		row := make([]float64, dimensions)
		for j := range row {
			row[j] = float64(r.rand.Intn(256))
		}
		rows[i] = row
	}

	return rows
}

// LabeledBlobs generates perClass samples around one random center per label.
// Centers are drawn from [0, 1) per coordinate; noise is Gaussian with the
// given spread. Samples are emitted label by label in the order given.
func (r *RNG) LabeledBlobs(perClass, dim int, labels []int, spread float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([][]float64, len(labels))
	for c := range centers {
		centers[c] = make([]float64, dim)
		for j := range dim {
			centers[c][j] = r.rand.Float64()
		}
	}

	x := make([][]float64, 0, perClass*len(labels))
	y := make([]int, 0, perClass*len(labels))
	for c, label := range labels {
		for range perClass {
			row := make([]float64, dim)
			for j := range dim {
				row[j] = centers[c][j] + r.rand.NormFloat64()*spread
			}
			x = append(x, row)
			y = append(y, label)
		}
	}

	return x, y
}

// PixelCSV renders labels and raw feature rows as a comma-separated table.
// When header is true a "label,pixel0,pixel1,..." row is written first.
func PixelCSV(x [][]float64, y []int, header bool) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if header && len(x) > 0 {
		rec := make([]string, len(x[0])+1)
		rec[0] = "label"
		for j := range x[0] {
			rec[j+1] = "pixel" + strconv.Itoa(j)
		}
		_ = w.Write(rec)
	}

	for i, row := range x {
		rec := make([]string, len(row)+1)
		rec[0] = strconv.Itoa(y[i])
		for j, v := range row {
			rec[j+1] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		_ = w.Write(rec)
	}

	w.Flush()
	return buf.Bytes()
}

// Mean returns the coordinate-wise arithmetic mean of rows.
// It recomputes centroids independently of the classifier under test.
func Mean(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]float64, len(rows[0]))
	for _, row := range rows {
		for j, v := range row {
			out[j] += v
		}
	}
	for j := range out {
		out[j] /= float64(len(rows))
	}
	return out
}

// AlmostEqualRows reports whether a and b have the same shape and all
// entries are within tol of each other.
func AlmostEqualRows(a, b [][]float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
