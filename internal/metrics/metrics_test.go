package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCheckIn(t *testing.T) {
	m := New()

	m.RecordCheckIn(OutcomeSuccess)
	m.RecordCheckIn(OutcomeSuccess)
	m.RecordCheckIn("quota_exceeded")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.checkInsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkInsTotal.WithLabelValues("quota_exceeded")))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/courses", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/courses", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordCheckIn(OutcomeSuccess)
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.RecordCheckIn(OutcomeSuccess)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "parpass_check_ins_total")
}
