package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability"
)

func TestInitMetrics(t *testing.T) {
	metrics, err := observability.InitMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		observability.RecordRequestMetric(ctx, metrics, "GET", "/api/v1/survey/questions", 200, 5*time.Millisecond)
		observability.RecordResponseSubmitted(ctx, metrics, true)
		observability.RecordDashboardComputation(ctx, metrics, "admin", time.Millisecond)
		observability.RecordCacheLookup(ctx, metrics, "dashboard", false)
	})
}

func TestRecordersTolerateNilMetrics(t *testing.T) {
	ctx := context.Background()
	assert.NotPanics(t, func() {
		observability.RecordRequestMetric(ctx, nil, "GET", "/", 200, 0)
		observability.RecordResponseSubmitted(ctx, nil, false)
		observability.RecordDashboardComputation(ctx, nil, "owner", 0)
		observability.RecordCacheLookup(ctx, nil, "stall", true)
	})
}
