package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(SurfaceHTTP, "calculate_balances", "200", 5*time.Millisecond)
	m.ObserveRequest(SurfaceHTTP, "calculate_balances", "200", 7*time.Millisecond)
	m.ObserveRequest(SurfaceConnect, "MinimizeTransfers", "invalid_argument", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(SurfaceHTTP, "calculate_balances", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(SurfaceConnect, "MinimizeTransfers", "invalid_argument")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveSettlement(3)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, recorder.Code)
	assert.True(t, strings.Contains(string(body), "settleup_settlement_transfers_count 1"))
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest(SurfaceHTTP, "op", "200", time.Second)
		m.ObserveSettlement(1)
	})
	assert.Nil(t, m.Registry())

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 404, recorder.Code)
}
