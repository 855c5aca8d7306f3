// Package dataset loads labeled feature tables and splits them into
// training and test subsets.
//
// # Loading
//
// A table is a delimited text file whose first column is the label and whose
// remaining columns are raw pixel intensities in [0, 255]:
//
//	label,pixel0,pixel1,...
//	5,0,0,...,255
//
// Load divides every feature by 255. A leading header row is detected and
// skipped. Compressed files (.gz, .zst, .lz4) are decoded on the fly.
//
//	x, y, err := dataset.Load("train.csv.gz")
//	x, y, err := dataset.LoadLabeled("letters.csv", dataset.ParseStringLabel)
//
// # Splitting
//
// Split draws a uniformly random training subset of floor(f*N) rows from an
// injected random source, so runs are reproducible:
//
//	rng := rand.New(rand.NewSource(42))
//	xtr, ytr, xts, yts, err := dataset.Split(x, y, 0.6, rng)
package dataset
