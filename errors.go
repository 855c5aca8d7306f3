package nmc

import (
	"errors"
	"fmt"

	"github.com/hupe1980/nmc/distance"
)

var (
	// ErrNotFitted is returned by Predict when Fit has not completed successfully.
	ErrNotFitted = errors.New("centroids not set: call Fit first")

	// ErrEmptyTrainingSet is returned when Fit receives no samples.
	ErrEmptyTrainingSet = errors.New("training set is empty")

	// ErrNoFeatures is returned when training samples have zero features.
	ErrNoFeatures = errors.New("samples have no features")

	// ErrNaNLabel is returned when a training label is NaN.
	ErrNaNLabel = errors.New("label is NaN")

	// ErrLengthMismatch indicates that features and labels have different sample counts.
	ErrLengthMismatch = errors.New("number of samples and labels differ")
)

// ErrDimensionMismatch indicates a feature dimensionality mismatch.
//
// Row is the index of the offending sample in the input matrix.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	Row      int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at row %d: expected %d, got %d", e.Row, e.Expected, e.Actual)
}

// ErrInvalidMetric indicates an unsupported distance metric.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidMetric struct {
	Metric distance.Metric
	cause  error
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid distance metric: %v", e.Metric)
}

func (e *ErrInvalidMetric) Unwrap() error { return e.cause }
