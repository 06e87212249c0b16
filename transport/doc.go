// Package transport is the HTTP client core every API module goes through.
//
// A [Core] injects the bearer credential held by the session store, applies the
// per-call timeout policy, unwraps the {code, message, data} response envelope and
// translates failures into a small error taxonomy:
//
//   - [*UnauthorizedError]: HTTP 401 or envelope code 401. The session is cleared
//     and the [Navigator] is sent to the login path before the error is returned.
//   - [*BusinessError]: a non-zero envelope code, or a non-2xx status without an
//     envelope. Error() is exactly the server message.
//   - [*TransportError]: network failure, deadline expiry, oversized body.
//   - [*ValidationError]: a required identifier was missing; raised by callers
//     before any I/O.
//
// # Architecture boundaries
//
// The core knows nothing about resources. Paths, methods, and whether an endpoint
// answers with an envelope are decided by the api package through [Request].
//
// # What this package must NOT do
//
//   - Retry requests. Every failure is reported to the caller as is.
//   - Keep package-level state. The session store and navigator are injected.
//   - Import api or goEdu.
package transport
