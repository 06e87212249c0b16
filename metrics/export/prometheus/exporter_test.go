package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goEdu "github.com/MrEthical07/goEdu"
)

type fakeSource struct {
	snapshot goEdu.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() goEdu.MetricsSnapshot { return f.snapshot }
func (f fakeSource) EventsDropped() uint64                 { return f.dropped }

func TestCollectNothingWhenMetricsDisabled(t *testing.T) {
	exp := NewExporterFromSource(fakeSource{
		snapshot: goEdu.MetricsSnapshot{
			Counters:   map[goEdu.MetricID]uint64{},
			Histograms: map[goEdu.MetricID][]uint64{},
		},
	})

	assert.Equal(t, 0, testutil.CollectAndCount(exp))
}

func TestCollectCountersAndHistogram(t *testing.T) {
	exp := NewExporterFromSource(fakeSource{
		snapshot: goEdu.MetricsSnapshot{
			Counters: map[goEdu.MetricID]uint64{
				goEdu.MetricRequests:     7,
				goEdu.MetricUnauthorized: 1,
			},
			Histograms: map[goEdu.MetricID][]uint64{
				goEdu.MetricRequestLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
		dropped: 2,
	})

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(exp))

	expected := `
# HELP edu_client_events_dropped_total Dropped lifecycle events due to dispatcher backpressure.
# TYPE edu_client_events_dropped_total counter
edu_client_events_dropped_total 2
# HELP edu_client_requests_total Backend calls settled.
# TYPE edu_client_requests_total counter
edu_client_requests_total 7
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"edu_client_events_dropped_total", "edu_client_requests_total"))

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() != "edu_client_request_duration_seconds" {
			continue
		}
		found = true
		h := mf.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(36), h.GetSampleCount())
		assert.Equal(t, uint64(1), h.GetBucket()[0].GetCumulativeCount())
		assert.Equal(t, 0.005, h.GetBucket()[0].GetUpperBound())
	}
	assert.True(t, found, "histogram family missing")
}

func TestHandlerServesTextFormat(t *testing.T) {
	exp := NewExporterFromSource(fakeSource{
		snapshot: goEdu.MetricsSnapshot{
			Counters:   map[goEdu.MetricID]uint64{goEdu.MetricLogins: 1},
			Histograms: map[goEdu.MetricID][]uint64{},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "edu_client_logins_total 1")
}
