package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/nmc/dataset"
	"github.com/hupe1980/nmc/distance"
	"gopkg.in/yaml.v3"
)

// Config describes one load/split/fit/predict run.
type Config struct {
	Data          string  `yaml:"data"`
	Test          string  `yaml:"test"`
	TrainFraction float64 `yaml:"trainFraction"`
	Seed          int64   `yaml:"seed"`
	Metric        string  `yaml:"metric"`
	Concurrency   int     `yaml:"concurrency"`
	Delimiter     string  `yaml:"delimiter"`
	LogLevel      string  `yaml:"logLevel"`
	LogFormat     string  `yaml:"logFormat"`
}

func defaultConfig() Config {
	return Config{
		TrainFraction: dataset.DefaultTrainFraction,
		Seed:          1,
		Metric:        distance.MetricEuclidean.String(),
		Concurrency:   1,
		Delimiter:     ",",
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// readConfig overlays the YAML file at path onto cfg.
func readConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	if c.Data == "" {
		return errors.New("no dataset given")
	}
	if c.Test == "" && (c.TrainFraction < 0 || c.TrainFraction > 1) {
		return fmt.Errorf("trainFraction %v outside [0, 1]", c.TrainFraction)
	}
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if _, err := distance.ParseMetric(c.Metric); err != nil {
		return err
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}
