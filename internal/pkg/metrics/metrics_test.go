package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"orderdesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Counters(t *testing.T) {
	m := metrics.NewRegistry()

	m.AuthFailures.WithLabelValues("expired").Inc()
	m.AuthFailures.WithLabelValues("expired").Inc()
	m.AccessDenied.WithLabelValues("cancel").Inc()
	m.OutboxPublished.Add(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthFailures.WithLabelValues("expired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccessDenied.WithLabelValues("cancel")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.OutboxPublished))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.OutboxFailures))
}

func TestRegistry_Handler(t *testing.T) {
	m := metrics.NewRegistry()
	m.HTTPRequests.WithLabelValues("GET", "/health", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `orderdesk_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, string(body), "orderdesk_outbox_published_total 0")
}

func TestRegistry_Isolated(t *testing.T) {
	a := metrics.NewRegistry()
	b := metrics.NewRegistry()

	a.OutboxFailures.Inc()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.OutboxFailures))
	count, err := testutil.GatherAndCount(a.Gatherer(), "orderdesk_outbox_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
