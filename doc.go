// Package nmc provides a Nearest Mean Centroid (NMC) classifier.
//
// The classifier estimates one centroid per class from labeled training data
// and predicts the label of an unseen point from its closest centroid.
// Labels may be any ordered type and need not be contiguous.
//
// # Quick Start
//
//	x, y, _ := dataset.Load("mnist_train.csv")
//	xtr, ytr, xts, yts, _ := dataset.Split(x, y, 0.6, rand.New(rand.NewSource(42)))
//
//	clf, err := nmc.New[float64]().Fit(xtr, ytr)
//	if err != nil {
//	    return err
//	}
//	pred, _ := clf.Predict(xts)
//	acc, _ := nmc.Accuracy(yts, pred)
//
// # Centroids
//
// After Fit, Centroids()[i] is the coordinate-wise mean of all training rows
// labeled ClassLabels()[i]. Labels are kept in ascending order and the pairing
// is stable across calls. Both accessors return copies.
//
// # Ties
//
// When a point is equally close to several centroids, Predict returns the
// label that sorts first.
//
// # Errors
//
//	_, err := nmc.New[int]().Predict(x)
//	errors.Is(err, nmc.ErrNotFitted) // true
//
//	var dm *nmc.ErrDimensionMismatch
//	errors.As(err, &dm) // predict input width differs from training width
//
// # Options
//
//   - WithMetric / WithDistanceFunc: point-to-point distance (default Euclidean)
//   - WithConcurrency: parallel prediction over row chunks
//   - WithLogger / WithLogLevel: structured logging via log/slog
//   - WithMetricsCollector: fit/predict counters and latencies
package nmc
