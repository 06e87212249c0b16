// Package session provides client-side persistence of the signed-in identity and the
// cached list of a student's joined classes.
//
// # Storage model
//
// A [Store] sits on top of a key-value [Backend] and keeps two JSON records,
// "edu-auth" and "edu-student-classes". Backends are interchangeable: [MemoryBackend]
// for tests and embedding, [FileBackend] for durable per-user state that survives
// process restarts, and [RedisBackend] for sessions shared between processes.
//
// Reads never fail: a missing, unreadable, or malformed record reads back as the
// zero value. Writes overwrite wholesale and clears are idempotent.
//
// # Architecture boundaries
//
// This package owns the [Session] model and its persistence. It does NOT issue
// requests, inject credentials, or decide redirects; those belong to transport and
// guard.
//
// # What this package must NOT do
//
//   - Import transport, api, or goEdu (no upward imports).
//   - Trust identity fields of a session that carries no token.
package session
