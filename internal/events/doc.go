// Package events delivers client lifecycle events (login, logout, session
// invalidation, failed requests) to pluggable sinks.
//
// # Components
//
//   - [Sink]: event consumer (no-op, channel, JSON lines writer, zerolog).
//   - [Dispatcher]: buffered async relay that either blocks or drops when full.
//   - [Event]: one record with timestamp, type, user, request and outcome.
//
// # Architecture boundaries
//
// This package owns buffering and delivery only. Which events exist and when they
// fire is decided by the goEdu client.
//
// # What this package must NOT do
//
//   - Filter events.
//   - Import goEdu or any sibling package.
package events
