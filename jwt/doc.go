// Package jwt reads the identity claims of backend-issued access tokens.
//
// The backend signs HS256 tokens whose subject is the numeric user id and which
// carry "role" and "username" claims. Clients normally hold no signing secret, so
// [Inspect] decodes claims without verification to learn the expiry and identity
// of a freshly issued token. [HMAC] verifies and issues tokens when the secret is
// shared, for Go-served front-ends and test backends.
package jwt
