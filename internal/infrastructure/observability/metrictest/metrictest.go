// Package metrictest collects application metrics in memory for tests.
package metrictest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Recorder owns a Metrics set backed by a manual reader
type Recorder struct {
	Metrics *observability.Metrics

	t      testing.TB
	reader *sdkmetric.ManualReader
}

// New creates a recorder whose meter provider is shut down with the test
func New(t testing.TB) *Recorder {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	metrics, err := observability.NewMetrics(provider.Meter("metrictest"))
	require.NoError(t, err)

	return &Recorder{Metrics: metrics, t: t, reader: reader}
}

// Count returns the value of an int64 counter for the data point whose
// attribute key equals value
func (r *Recorder) Count(name, key, value string) int64 {
	r.t.Helper()

	var total int64
	for _, data := range r.collect(name) {
		sum, ok := data.(metricdata.Sum[int64])
		if !ok {
			continue
		}
		for _, dp := range sum.DataPoints {
			if matches(dp.Attributes, key, value) {
				total += dp.Value
			}
		}
	}
	return total
}

// Observations returns how many values a float64 histogram recorded for the
// data point whose attribute key equals value
func (r *Recorder) Observations(name, key, value string) uint64 {
	r.t.Helper()

	var total uint64
	for _, data := range r.collect(name) {
		hist, ok := data.(metricdata.Histogram[float64])
		if !ok {
			continue
		}
		for _, dp := range hist.DataPoints {
			if matches(dp.Attributes, key, value) {
				total += dp.Count
			}
		}
	}
	return total
}

func (r *Recorder) collect(name string) []metricdata.Aggregation {
	var rm metricdata.ResourceMetrics
	require.NoError(r.t, r.reader.Collect(context.Background(), &rm))

	var out []metricdata.Aggregation
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				out = append(out, m.Data)
			}
		}
	}
	return out
}

func matches(set attribute.Set, key, value string) bool {
	v, ok := set.Value(attribute.Key(key))
	return ok && v.AsString() == value
}
