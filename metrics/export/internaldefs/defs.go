package internaldefs

import (
	goEdu "github.com/MrEthical07/goEdu"
)

// CounterDef names one exported counter.
type CounterDef struct {
	ID   goEdu.MetricID
	Name string
	Help string
}

// HistogramDef names one exported histogram.
type HistogramDef struct {
	ID   goEdu.MetricID
	Name string
	Help string
}

// CounterDefs lists every client counter in export order.
var CounterDefs = []CounterDef{
	{ID: goEdu.MetricRequests, Name: "edu_client_requests_total", Help: "Backend calls settled."},
	{ID: goEdu.MetricRequestSuccess, Name: "edu_client_request_success_total", Help: "Backend calls that succeeded."},
	{ID: goEdu.MetricBusinessErrors, Name: "edu_client_business_errors_total", Help: "Backend calls rejected with a business error."},
	{ID: goEdu.MetricUnauthorized, Name: "edu_client_unauthorized_total", Help: "Backend calls answered as unauthorized."},
	{ID: goEdu.MetricTransportErrors, Name: "edu_client_transport_errors_total", Help: "Backend calls that failed below HTTP."},
	{ID: goEdu.MetricTimeouts, Name: "edu_client_timeouts_total", Help: "Backend calls that exceeded their deadline."},
	{ID: goEdu.MetricValidationErrors, Name: "edu_client_validation_errors_total", Help: "Calls rejected locally before any request."},
	{ID: goEdu.MetricSessionsCleared, Name: "edu_client_sessions_cleared_total", Help: "Sessions cleared after an unauthorized response."},
	{ID: goEdu.MetricNavigations, Name: "edu_client_login_navigations_total", Help: "Redirects to the login path."},
	{ID: goEdu.MetricLogins, Name: "edu_client_logins_total", Help: "Successful sign-ins."},
	{ID: goEdu.MetricLoginFailures, Name: "edu_client_login_failures_total", Help: "Failed sign-ins."},
	{ID: goEdu.MetricLogouts, Name: "edu_client_logouts_total", Help: "Sign-outs."},
}

// HistogramDefs lists every client histogram.
var HistogramDefs = []HistogramDef{
	{ID: goEdu.MetricRequestLatency, Name: "edu_client_request_duration_seconds", Help: "Backend call latency."},
}

// EventsDroppedName is the counter of events lost to dispatcher backpressure.
const (
	EventsDroppedName = "edu_client_events_dropped_total"
	EventsDroppedHelp = "Dropped lifecycle events due to dispatcher backpressure."
)

// HistogramUpperBounds are the finite bucket bounds in seconds; the eighth
// bucket is +Inf.
var HistogramUpperBounds = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5}

// HistogramBoundSuffix names each bucket, +Inf included, for exporters that
// publish buckets as separate instruments.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates raw to eight buckets.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets turns per-bucket counts into running totals.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
