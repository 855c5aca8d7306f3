package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultTrainFraction is the share of samples assigned to the training set
// when callers have no preference.
const DefaultTrainFraction = 0.5

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// SplitIndices partitions the positions 0..n-1 into a training and a test
// side. The training side receives floor(trFraction*n) positions chosen
// uniformly at random by rng; each side is in ascending order.
//
// A nil rng uses the process-wide math/rand source.
func SplitIndices(n int, trFraction float64, rng Shuffler) (train, test []int, err error) {
	if math.IsNaN(trFraction) || trFraction < 0 || trFraction > 1 {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFraction, trFraction)
	}
	if rng == nil {
		rng = globalShuffler{}
	}

	numTr := int(math.Floor(trFraction * float64(n)))

	// Fixed pattern of numTr training marks, then shuffled.
	mask := make([]bool, n)
	for i := range numTr {
		mask[i] = true
	}
	rng.Shuffle(n, func(i, j int) { mask[i], mask[j] = mask[j], mask[i] })

	train = make([]int, 0, numTr)
	test = make([]int, 0, n-numTr)
	for i, isTrain := range mask {
		if isTrain {
			train = append(train, i)
		} else {
			test = append(test, i)
		}
	}
	return train, test, nil
}

// Split partitions x and y into disjoint random training and test subsets.
//
// The training subset holds floor(trFraction*len(x)) samples; relative row
// order is preserved within each subset. Rows are shared with x, not copied.
func Split[L any](x [][]float64, y []L, trFraction float64, rng Shuffler) (xtr [][]float64, ytr []L, xts [][]float64, yts []L, err error) {
	if len(x) != len(y) {
		return nil, nil, nil, nil, fmt.Errorf("%w: %d samples, %d labels", ErrLengthMismatch, len(x), len(y))
	}

	train, test, err := SplitIndices(len(x), trFraction, rng)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	xtr, ytr = gather(x, y, train)
	xts, yts = gather(x, y, test)
	return xtr, ytr, xts, yts, nil
}

func gather[L any](x [][]float64, y []L, idx []int) ([][]float64, []L) {
	xs := make([][]float64, len(idx))
	ys := make([]L, len(idx))
	for k, i := range idx {
		xs[k] = x[i]
		ys[k] = y[i]
	}
	return xs, ys
}
