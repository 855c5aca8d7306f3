// Package testutil provides testing utilities for nmc.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating seeded random data, labeled
// clusters, CSV fixtures and independent centroid recomputation.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	x := rng.UniformMatrix(100, 16)                  // uniform [0, 1)
//	x, y := rng.LabeledBlobs(50, 16, []int{3, 7}, 0.05)
//
// # Fixtures
//
//	data := testutil.PixelCSV(rng.PixelMatrix(10, 4), labels, true)
//
// An RNG satisfies dataset.Shuffler, so it can drive reproducible splits.
package testutil
