package nmc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("Fit", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, nil))

		l.LogFit(ctx, 10, 3, 784, nil)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "fit completed", rec["msg"])
		assert.EqualValues(t, 10, rec["samples"])
		assert.EqualValues(t, 3, rec["classes"])
		assert.EqualValues(t, 784, rec["dimension"])
	})

	t.Run("FitError", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, nil))

		l.LogFit(ctx, 0, 0, 0, ErrEmptyTrainingSet)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "training set is empty")
	})

	t.Run("PredictDebugOnly", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

		l.LogPredict(ctx, 5, nil)
		assert.Empty(t, buf.String())

		l.LogPredict(ctx, 5, errors.New("boom"))
		assert.Contains(t, buf.String(), "predict failed")
	})

	t.Run("Noop", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NoopLogger().LogFit(ctx, 1, 1, 1, nil)
		})
	})
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	assert.Equal(t, BasicMetricsStats{}, m.GetStats())

	m.RecordFit(100, 10, 200, nil)
	m.RecordFit(0, 0, 100, ErrEmptyTrainingSet)
	m.RecordPredict(50, 30, nil)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.FitCount)
	assert.Equal(t, int64(1), stats.FitErrors)
	assert.Equal(t, int64(100), stats.FitSamples)
	assert.Equal(t, int64(150), stats.FitAvgNanos)
	assert.Equal(t, int64(1), stats.PredictCount)
	assert.Equal(t, int64(50), stats.PredictSamples)
	assert.Equal(t, int64(30), stats.PredictAvgNanos)
}
