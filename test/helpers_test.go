package test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	goEdu "github.com/MrEthical07/goEdu"
	"github.com/MrEthical07/goEdu/jwt"
	"github.com/MrEthical07/goEdu/transport"
)

const testSecret = "integration-secret-integration-secret"

// fakeBackend answers like the real backend: envelope bodies and a bearer check
// on everything except /auth/*.
type fakeBackend struct {
	t      *testing.T
	issuer *jwt.HMAC

	mu     sync.Mutex
	routes map[string]any
	calls  map[string]int
}

func newFakeBackend(t *testing.T, ttl time.Duration) (*fakeBackend, string) {
	t.Helper()
	issuer, err := jwt.NewHMAC([]byte(testSecret), ttl, 0)
	if err != nil {
		t.Fatalf("NewHMAC: %v", err)
	}
	b := &fakeBackend{t: t, issuer: issuer, routes: map[string]any{}, calls: map[string]int{}}
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	return b, srv.URL + "/api"
}

func (b *fakeBackend) handle(key string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = data
}

func (b *fakeBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *fakeBackend) token(userID int64, username, role string) string {
	b.t.Helper()
	tok, err := b.issuer.Issue(userID, username, role)
	if err != nil {
		b.t.Fatalf("Issue: %v", err)
	}
	return tok
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")
	key := r.Method + " " + path

	b.mu.Lock()
	b.calls[key]++
	data, ok := b.routes[key]
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !strings.HasPrefix(path, "/auth/") {
		token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if _, err := b.issuer.Verify(token); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": 401, "message": "未登录"})
			return
		}
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 404, "message": "not found"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"code": 0, "message": "ok", "data": data})
}

// newClient builds a client against baseURL; mutate may adjust the config and
// builder before Build.
func newClient(t *testing.T, baseURL string, mutate func(*goEdu.Config, *goEdu.Builder)) (*goEdu.Client, *transport.Recorder) {
	t.Helper()
	cfg := goEdu.DefaultConfig()
	cfg.API.BaseURL = baseURL
	nav := &transport.Recorder{}

	b := goEdu.New().WithNavigator(nav).WithLogger(zerolog.Nop())
	if mutate != nil {
		mutate(&cfg, b)
	}
	client, err := b.WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, nav
}
