// Package api maps each backend resource to a group of typed calls.
//
// Every module method checks that the identifiers it needs are present, builds a
// [transport.Request] and hands it to a [Doer]. Results and errors come back from
// the core unchanged; a missing identifier fails with *transport.ValidationError
// before any network activity.
//
// Endpoints answer with the {code, message, data} envelope except file downloads,
// which are marked [transport.Raw].
//
// # What this package must NOT do
//
//   - Touch the session store or decide redirects.
//   - Retry, cache, or reinterpret backend errors.
package api
