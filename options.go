package nmc

import (
	"log/slog"

	"github.com/hupe1980/nmc/distance"
)

type options struct {
	metric           distance.Metric
	distanceFunc     distance.Func
	concurrency      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Classifier.
type Option func(*options)

// WithMetric selects a built-in distance metric.
// The default is distance.MetricEuclidean.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
		o.distanceFunc = nil
	}
}

// WithDistanceFunc installs a custom point-to-point distance.
// It takes precedence over WithMetric. Passing nil restores the metric.
//
// The function must be safe for concurrent use when WithConcurrency is > 1.
func WithDistanceFunc(fn distance.Func) Option {
	return func(o *options) {
		o.distanceFunc = fn
	}
}

// WithConcurrency sets the number of goroutines Predict may use.
//
// Values <= 1 keep prediction synchronous (default). Results are identical
// regardless of the setting.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for fit/predict calls.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &nmc.BasicMetricsCollector{}
//	clf := nmc.New[int](nmc.WithMetricsCollector(metrics))
//	// ... fit/predict ...
//	stats := metrics.GetStats()
//	fmt.Printf("Predicted: %d samples\n", stats.PredictSamples)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := nmc.NewJSONLogger(slog.LevelInfo)
//	clf := nmc.New[int](nmc.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metric:           distance.MetricEuclidean,
		concurrency:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *options) resolveDistance() (distance.Func, error) {
	if o.distanceFunc != nil {
		return o.distanceFunc, nil
	}
	fn, err := distance.Provider(o.metric)
	if err != nil {
		return nil, &ErrInvalidMetric{Metric: o.metric, cause: err}
	}
	return fn, nil
}
