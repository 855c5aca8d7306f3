// Command nmc loads a labeled pixel table, splits it, fits a Nearest Mean
// Centroid classifier and reports test accuracy.
//
// Usage:
//
//	nmc -data mnist_train.csv.gz -train 0.6 -seed 42
//	nmc -config run.yaml
//	nmc -data train.csv -test test.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hupe1980/nmc"
	"github.com/hupe1980/nmc/dataset"
	"github.com/hupe1980/nmc/distance"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("nmc: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("nmc", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	data := fs.String("data", "", "labeled table (csv, optionally .gz/.zst/.lz4)")
	test := fs.String("test", "", "separate test table; disables splitting")
	train := fs.Float64("train", cfg.TrainFraction, "training fraction")
	seed := fs.Int64("seed", cfg.Seed, "split seed")
	metric := fs.String("metric", cfg.Metric, "distance metric")
	concurrency := fs.Int("concurrency", cfg.Concurrency, "predict goroutines")
	delimiter := fs.String("delimiter", cfg.Delimiter, "field delimiter")
	logLevel := fs.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	logFormat := fs.String("log-format", cfg.LogFormat, "text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath != "" {
		if err := readConfig(*configPath, &cfg); err != nil {
			return err
		}
	}

	// Explicit flags win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = *data
		case "test":
			cfg.Test = *test
		case "train":
			cfg.TrainFraction = *train
		case "seed":
			cfg.Seed = *seed
		case "metric":
			cfg.Metric = *metric
		case "concurrency":
			cfg.Concurrency = *concurrency
		case "delimiter":
			cfg.Delimiter = *delimiter
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})

	if err := cfg.validate(); err != nil {
		return err
	}

	return execute(context.Background(), cfg, stdout)
}

func execute(ctx context.Context, cfg Config, stdout io.Writer) error {
	level, _ := parseLevel(cfg.LogLevel)
	logger := nmc.NewTextLogger(level)
	if cfg.LogFormat == "json" {
		logger = nmc.NewJSONLogger(level)
	}
	m, _ := distance.ParseMetric(cfg.Metric)

	loadOpts := []dataset.LoadOption{
		dataset.WithComma([]rune(cfg.Delimiter)[0]),
		dataset.WithLogger(logger.Logger),
	}

	x, y, err := dataset.Load(cfg.Data, loadOpts...)
	if err != nil {
		return err
	}

	var xtr, xts [][]float64
	var ytr, yts []float64
	if cfg.Test != "" {
		xtr, ytr = x, y
		xts, yts, err = dataset.Load(cfg.Test, loadOpts...)
	} else {
		xtr, ytr, xts, yts, err = dataset.Split(x, y, cfg.TrainFraction, rand.New(rand.NewSource(cfg.Seed)))
	}
	if err != nil {
		return err
	}

	metrics := &nmc.BasicMetricsCollector{}
	clf, err := nmc.New[float64](
		nmc.WithMetric(m),
		nmc.WithConcurrency(cfg.Concurrency),
		nmc.WithLogger(logger),
		nmc.WithMetricsCollector(metrics),
	).Fit(xtr, ytr)
	if err != nil {
		return err
	}

	acc, err := clf.Score(xts, yts)
	if err != nil {
		return err
	}

	stats := metrics.GetStats()
	logger.InfoContext(ctx, "run finished",
		"fit", time.Duration(stats.FitAvgNanos),
		"predict", time.Duration(stats.PredictAvgNanos),
	)

	fmt.Fprintf(stdout, "train samples: %d\n", len(xtr))
	fmt.Fprintf(stdout, "test samples:  %d\n", len(xts))
	fmt.Fprintf(stdout, "classes:       %d\n", len(clf.ClassLabels()))
	fmt.Fprintf(stdout, "metric:        %s\n", m)
	fmt.Fprintf(stdout, "test error:    %.4f\n", 1-acc)
	return nil
}
