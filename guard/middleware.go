package guard

import (
	"net/http"
	"strings"
	"time"

	"github.com/MrEthical07/goEdu/jwt"
	"github.com/MrEthical07/goEdu/session"
)

// TokenCookie is the cookie BearerResolver falls back to when the request has no
// Authorization header.
const TokenCookie = "edu-token"

// Resolver returns the session a request is made with.
type Resolver func(*http.Request) session.Session

// TokenVerifier verifies an access token. *jwt.HMAC implements it.
type TokenVerifier interface {
	Verify(token string) (jwt.Claims, error)
}

// Middleware guards every request whose path matches one of routes. Unmatched
// paths pass through.
func Middleware(resolve Resolver, routes []Route) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, ok := Match(routes, r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			var sess session.Session
			if resolve != nil {
				sess = resolve(r)
			}
			d := Decide(sess, route, r.URL.RequestURI(), time.Now())
			if !d.Allow {
				http.Redirect(w, r, d.Redirect, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BearerResolver builds the session from a verified bearer token carried in the
// Authorization header or the TokenCookie cookie. Invalid tokens resolve to the
// empty session.
func BearerResolver(v TokenVerifier) Resolver {
	return func(r *http.Request) session.Session {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			c, err := r.Cookie(TokenCookie)
			if err != nil || c.Value == "" {
				return session.Session{}
			}
			token = c.Value
		}

		claims, err := v.Verify(token)
		if err != nil {
			return session.Session{}
		}
		out := session.Session{
			Token:    token,
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     session.Role(claims.Role),
		}
		if !claims.ExpiresAt.IsZero() {
			out.ExpiresAt = claims.ExpiresAt.Unix()
		}
		return out
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
