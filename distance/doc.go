// Package distance provides point-to-point distance calculations.
//
// Vector arithmetic is delegated to gonum's floats package.
//
// # Supported Metrics
//
//   - MetricEuclidean: L2 distance (default)
//   - MetricSquaredEuclidean: squared L2, same ordering as L2
//   - MetricManhattan: L1 distance
//   - MetricChebyshev: L-infinity distance
//   - MetricCosine: 1 - cosine similarity
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	fn, _ := distance.Provider(distance.MetricManhattan)
//	d = fn(a, b)
package distance
