// Package prometheus exposes client metrics as a prometheus.Collector.
//
// [NewExporter] wraps a [goEdu.Client]; register the exporter with your own
// registry or mount [Exporter.Handler]. Counters are named edu_client_*_total and
// the single histogram is edu_client_request_duration_seconds.
//
// # What this package must NOT do
//
//   - Register collectors in the global Prometheus registry.
//   - Mutate client state.
package prometheus
