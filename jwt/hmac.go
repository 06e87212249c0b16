package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HMAC issues and verifies HS256 tokens with a shared secret.
type HMAC struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
	now    func() time.Time
}

// NewHMAC returns an HMAC for secret. Secrets shorter than 32 bytes are rejected.
func NewHMAC(secret []byte, ttl, leeway time.Duration) (*HMAC, error) {
	if len(secret) < 32 {
		return nil, errors.New("hmac secret must be at least 32 bytes")
	}
	if ttl <= 0 {
		return nil, errors.New("invalid TTL configuration")
	}
	if leeway < 0 || leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &HMAC{secret: key, ttl: ttl, leeway: leeway, now: time.Now}, nil
}

// Issue signs a token for the given identity.
func (h *HMAC) Issue(userID int64, username, role string) (string, error) {
	if userID <= 0 {
		return "", ErrInvalidSubject
	}
	now := h.now()
	ac := accessClaims{
		Role:     role,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, ac).SignedString(h.secret)
}

// Verify checks signature and expiry of token and returns its claims.
func (h *HMAC) Verify(token string) (Claims, error) {
	var ac accessClaims
	parsed, err := jwt.ParseWithClaims(token, &ac, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(h.leeway),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return ac.claims()
}
