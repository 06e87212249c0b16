package test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	goEdu "github.com/MrEthical07/goEdu"
	"github.com/MrEthical07/goEdu/api"
	"github.com/MrEthical07/goEdu/guard"
	"github.com/MrEthical07/goEdu/session"
)

func TestLoginTokenDrivesGuardDecisions(t *testing.T) {
	backend, url := newFakeBackend(t, time.Hour)
	token := backend.token(7, "alice", "STUDENT")
	backend.handle("POST /auth/login", api.AuthResult{Token: token})

	client, _ := newClient(t, url, nil)
	ctx := context.Background()

	sess, err := client.Login(ctx, api.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.UserID != 7 || sess.Role != session.RoleStudent || sess.Username != "alice" {
		t.Fatalf("identity not filled from claims: %+v", sess)
	}
	if sess.ExpiresAt == 0 {
		t.Fatal("expected token expiry to be recorded")
	}

	routes := guard.DefaultRoutes()
	student, _ := guard.Match(routes, "/student/assignments")
	teacher, _ := guard.Match(routes, "/teacher")
	login, _ := guard.Match(routes, "/login")

	now := time.Now()
	if d := guard.Decide(sess, student, "/student/assignments", now); !d.Allow {
		t.Fatalf("student route should allow, got %+v", d)
	}
	if d := guard.Decide(sess, teacher, "/teacher", now); d.Redirect != guard.StudentDashboardPath {
		t.Fatalf("teacher route should bounce to student dashboard, got %+v", d)
	}
	if d := guard.Decide(sess, login, "/login", now); d.Redirect != guard.StudentDashboardPath {
		t.Fatalf("login while signed in should go to dashboard, got %+v", d)
	}

	later := time.Unix(sess.ExpiresAt, 0).Add(time.Second)
	if d := guard.Decide(sess, student, "/student", later); d.Allow || d.Redirect != "/login?redirect=%2Fstudent" {
		t.Fatalf("expired session should be sent to login, got %+v", d)
	}
}

func TestMiddlewareAcceptsIssuedTokens(t *testing.T) {
	backend, _ := newFakeBackend(t, time.Hour)
	token := backend.token(3, "mr-lee", "TEACHER")

	page := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := guard.Middleware(guard.BearerResolver(backend.issuer), guard.DefaultRoutes())(page)

	req := httptest.NewRequest(http.MethodGet, "/teacher/classes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("teacher should reach /teacher, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/student", nil)
	req.AddCookie(&http.Cookie{Name: guard.TokenCookie, Value: token})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != guard.TeacherDashboardPath {
		t.Fatalf("teacher on /student should be redirected, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	req = httptest.NewRequest(http.MethodGet, "/student", nil)
	req.Header.Set("Authorization", "Bearer forged.token.value")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login?redirect=%2Fstudent" {
		t.Fatalf("forged token should go to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestForeignTokenRejectedByBackendClearsSession(t *testing.T) {
	backend, url := newFakeBackend(t, time.Hour)
	backend.handle("GET /class", []api.Class{{ID: 1, Name: "A"}})

	store := session.NewMemoryStore()
	client, nav := newClient(t, url, func(_ *goEdu.Config, b *goEdu.Builder) {
		b.WithSessionStore(store)
	})
	ctx := context.Background()

	if err := store.Set(ctx, session.Session{Token: "not-ours", UserID: 1, Role: session.RoleTeacher}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, err := client.Classes.List(ctx, nil)
	if !errors.Is(err, goEdu.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if !client.Session(ctx).IsZero() {
		t.Fatal("session should be cleared")
	}
	if nav.Count() != 1 {
		t.Fatalf("expected one navigation, got %v", nav.Paths())
	}

	backend.handle("POST /auth/login", api.AuthResult{Token: backend.token(1, "t", "TEACHER")})
	if _, err := client.Login(ctx, api.Credentials{Username: "t", Password: "pw"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	classes, err := client.Classes.List(ctx, nil)
	if err != nil || len(classes) != 1 {
		t.Fatalf("List after login: %v %+v", err, classes)
	}
}
