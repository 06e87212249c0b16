package api

import "context"

// Auth covers sign-in, registration and token lifecycle.
type Auth struct {
	c *caller
}

// Login exchanges credentials for a token and the caller's identity. The session
// is not touched; persisting the result is up to the caller.
func (a *Auth) Login(ctx context.Context, cred Credentials) (AuthResult, error) {
	var out AuthResult
	err := a.c.post(ctx, "/auth/login", cred, &out)
	return out, err
}

// Register creates an account and returns it signed in.
func (a *Auth) Register(ctx context.Context, reg Registration) (AuthResult, error) {
	var out AuthResult
	err := a.c.post(ctx, "/auth/register", reg, &out)
	return out, err
}

// Refresh asks for a new token for the current session.
func (a *Auth) Refresh(ctx context.Context) (AuthResult, error) {
	var out AuthResult
	err := a.c.post(ctx, "/auth/refresh", nil, &out)
	return out, err
}

// Logout ends the session server-side.
func (a *Auth) Logout(ctx context.Context) error {
	return a.c.post(ctx, "/auth/logout", nil, nil)
}

// Me returns the signed-in user.
func (a *Auth) Me(ctx context.Context) (User, error) {
	var out User
	err := a.c.get(ctx, "/auth/me", nil, &out)
	return out, err
}
