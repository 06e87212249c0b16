package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed is returned for strings that are not a JWT.
	ErrMalformed = errors.New("malformed token")
	// ErrInvalidSubject is returned when the subject is not a positive user id.
	ErrInvalidSubject = errors.New("token subject is not a user id")
	// ErrInvalidToken is returned by HMAC.Verify for tokens that fail verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the identity carried by an access token.
type Claims struct {
	UserID    int64
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token had expired at now. Tokens without an expiry
// never expire.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

type accessClaims struct {
	Role     string `json:"role,omitempty"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Inspect decodes the claims of token without verifying its signature or expiry.
// A leading "Bearer " is accepted.
func Inspect(token string) (Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return Claims{}, ErrMalformed
	}

	var ac accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &ac); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ac.claims()
}

func (ac *accessClaims) claims() (Claims, error) {
	id, err := strconv.ParseInt(ac.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Claims{}, fmt.Errorf("%w: %q", ErrInvalidSubject, ac.Subject)
	}
	out := Claims{
		UserID:   id,
		Username: ac.Username,
		Role:     ac.Role,
	}
	if ac.IssuedAt != nil {
		out.IssuedAt = ac.IssuedAt.Time
	}
	if ac.ExpiresAt != nil {
		out.ExpiresAt = ac.ExpiresAt.Time
	}
	return out, nil
}
