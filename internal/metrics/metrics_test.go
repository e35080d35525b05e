package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordHTTPRequest("GET", "/jobs", "200", 10*time.Millisecond)
	m.RecordHTTPRequest("GET", "/jobs", "200", 20*time.Millisecond)
	m.RecordHTTPRequest("GET", "/jobs/:id", "400", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/jobs", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/jobs/:id", "400")))
}

func TestWorkflowCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ApplicationSubmitted()
	m.ApplicationSubmitted()
	m.ApplicationCountSkipped()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.applicationsSubmitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.countSkipped))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", "200", time.Millisecond)
		m.ApplicationSubmitted()
		m.ApplicationCountSkipped()
	})
}
