package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type failingBackend struct {
	err error
}

func (f failingBackend) Load(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingBackend) Save(context.Context, string, []byte) error   { return f.err }
func (f failingBackend) Remove(context.Context, string) error         { return f.err }

func TestStoreGetEmptyWhenMissing(t *testing.T) {
	store := NewMemoryStore()
	if got := store.Get(context.Background()); !got.IsZero() {
		t.Fatalf("expected empty session, got %+v", got)
	}
}

func TestStoreSetThenGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	want := Session{Token: "abc", UserID: 7, Username: "alice", Role: RoleTeacher}

	if err := store.Set(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := store.Get(ctx); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestStoreSetOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, Session{Token: "a", UserID: 1, Role: RoleStudent, Email: "a@x"}); err != nil {
		t.Fatalf("first set: %v", err)
	}
	second := Session{Token: "b", UserID: 2, Role: RoleTeacher}
	if err := store.Set(ctx, second); err != nil {
		t.Fatalf("second set: %v", err)
	}
	if got := store.Get(ctx); got != second {
		t.Fatalf("expected %+v, got %+v", second, got)
	}
}

func TestStoreClearIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, Session{Token: "abc", UserID: 1, Role: RoleStudent}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("first clear: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if got := store.Get(ctx); !got.IsZero() {
		t.Fatalf("expected empty session after clear, got %+v", got)
	}
}

func TestStoreClearKeepsStudentClasses(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	classes := []JoinedClass{{ID: 3, Name: "Physics"}}

	if err := store.SaveStudentClasses(ctx, classes); err != nil {
		t.Fatalf("save classes: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := store.StudentClasses(ctx); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected cached classes to survive clear, got %+v", got)
	}
}

func TestStoreMalformedRecordsReadEmpty(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "garbage", raw: "{not json"},
		{name: "null", raw: "null"},
		{name: "empty", raw: ""},
		{name: "wrong type", raw: `"abc"`},
		{name: "array", raw: `[1,2]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			backend := NewMemoryBackend()
			if err := backend.Save(ctx, AuthKey, []byte(tc.raw)); err != nil {
				t.Fatalf("seed: %v", err)
			}
			if err := backend.Save(ctx, StudentClassesKey, []byte(tc.raw)); err != nil {
				t.Fatalf("seed classes: %v", err)
			}
			store := NewStore(backend)

			if got := store.Get(ctx); !got.IsZero() {
				t.Fatalf("expected empty session, got %+v", got)
			}
			got := store.StudentClasses(ctx)
			if got == nil {
				t.Fatal("expected non-nil class list")
			}
			if len(got) != 0 {
				t.Fatalf("expected empty class list, got %+v", got)
			}
		})
	}
}

func TestStoreLogsMalformedRecord(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	backend := NewMemoryBackend()
	_ = backend.Save(ctx, AuthKey, []byte("{oops"))

	store := NewStore(backend, WithLogger(zerolog.New(&buf)))
	_ = store.Get(ctx)

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, AuthKey) {
		t.Fatalf("expected warn log naming the key, got %q", out)
	}
}

func TestStoreBackendFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	store := NewStore(failingBackend{err: boom})

	if got := store.Get(ctx); !got.IsZero() {
		t.Fatalf("expected empty session on read failure, got %+v", got)
	}
	if err := store.Set(ctx, Session{Token: "x"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
	if err := store.Clear(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}

func TestStudentClassesRoundTripAndNil(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if got := store.StudentClasses(ctx); got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
	if err := store.SaveStudentClasses(ctx, nil); err != nil {
		t.Fatalf("save nil: %v", err)
	}
	if got := store.StudentClasses(ctx); got == nil || len(got) != 0 {
		t.Fatalf("expected empty list after saving nil, got %#v", got)
	}

	want := []JoinedClass{{ID: 1, Name: "Math", Code: "ABC123", TeacherID: 9}, {ID: 2}}
	if err := store.SaveStudentClasses(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := store.StudentClasses(ctx)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSessionIdentityRequiresToken(t *testing.T) {
	s := Session{UserID: 5, Role: RoleTeacher}
	if _, _, ok := s.Identity(); ok {
		t.Fatal("identity without token must not be trusted")
	}
	if s.Authenticated() {
		t.Fatal("session without token must not be authenticated")
	}

	s.Token = "t"
	id, role, ok := s.Identity()
	if !ok || id != 5 || role != RoleTeacher {
		t.Fatalf("unexpected identity %d %q %v", id, role, ok)
	}
}

func TestSessionExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := Session{Token: "t", UserID: 1, Role: RoleStudent}
	if s.Expired(now) || !s.Active(now) {
		t.Fatal("session without expiry must stay active")
	}

	s.ExpiresAt = now.Add(-time.Second).Unix()
	if !s.Expired(now) || s.Active(now) {
		t.Fatal("expected expired session")
	}

	s.ExpiresAt = now.Add(time.Hour).Unix()
	if s.Expired(now) || !s.Active(now) {
		t.Fatal("expected active session")
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleTeacher.Valid() || !RoleStudent.Valid() {
		t.Fatal("known roles must be valid")
	}
	if Role("ADMIN").Valid() || Role("").Valid() {
		t.Fatal("unknown roles must be invalid")
	}
}
