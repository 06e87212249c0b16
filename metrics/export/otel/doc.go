// Package otel publishes client metrics through an OpenTelemetry meter.
//
// [NewExporter] registers an Int64ObservableCounter per client counter and an
// Int64ObservableGauge per latency bucket. One callback reads
// [goEdu.Client.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the MeterProvider; callers supply the Meter.
//   - Mutate client state.
package otel
