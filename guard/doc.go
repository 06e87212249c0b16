// Package guard decides whether a signed-in identity may enter a front-end route.
//
// [Decide] is a pure function of the stored session, the target route and the
// clock. [Middleware] applies the same decision to Go-served pages by issuing HTTP
// redirects.
//
// # Rules, in order
//
//   - A route that requires authentication without an active identity (token,
//     user id, role, not expired) redirects to the login page with the original
//     path in the "redirect" query parameter.
//   - A route bound to a role the identity does not hold redirects to the
//     identity's own dashboard.
//   - Guest-only routes (login, register) redirect an active identity to its
//     dashboard.
//
// # What this package must NOT do
//
//   - Issue requests to the backend.
//   - Mutate the session store.
package guard
