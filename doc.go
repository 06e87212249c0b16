// Package goEdu is a client SDK for the class-management REST backend: sign-in,
// classes, courses, assignments, submissions, discussions, cloud files, and the
// AI assistant.
//
// A [Client] is assembled by a [Builder]:
//
//	client, err := goEdu.New().
//		WithConfig(cfg).
//		WithNavigator(nav).
//		Build()
//
// The client persists the signed-in identity in a session store, attaches it as
// a Bearer token to every call, and clears it (then navigates to the login path)
// when the backend answers 401. Every call settles as exactly one of success,
// [BusinessError], [UnauthorizedError], [TransportError], or [ValidationError].
//
// # Architecture boundaries
//
// goEdu is the public surface. It exposes [Client], [Builder], [Config] and value
// types (MetricsSnapshot, Event). Request execution lives in transport, endpoint
// shapes in api, and persistence in session; event dispatch and logger setup
// live under internal/.
//
// # What this package must NOT do
//
//   - Retry calls or refresh tokens on its own.
//   - Perform I/O during construction other than opening the configured session
//     backend.
//   - Import any sub-package that re-imports goEdu (no import cycles).
package goEdu
