package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisBackendTest(t *testing.T, ttl time.Duration) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return NewRedisBackend(rdb, "edu", "alice", ttl), mr
}

func backendContract(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	if _, err := b.Load(ctx, AuthKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := b.Save(ctx, AuthKey, []byte(`{"token":"a"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.Save(ctx, AuthKey, []byte(`{"token":"b"}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := b.Load(ctx, AuthKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"token":"b"}` {
		t.Fatalf("expected last write to win, got %s", got)
	}
	if err := b.Remove(ctx, AuthKey); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := b.Remove(ctx, AuthKey); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if _, err := b.Load(ctx, AuthKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestMemoryBackendContract(t *testing.T) {
	backendContract(t, NewMemoryBackend())
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	v := []byte("abc")
	_ = b.Save(ctx, "k", v)
	v[0] = 'z'

	got, _ := b.Load(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("backend must not alias caller buffers, got %s", got)
	}
}

func TestFileBackendContract(t *testing.T) {
	b, err := NewFileBackend(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("new file backend: %v", err)
	}
	backendContract(t, b)
}

func TestFileBackendSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := NewStore(first).Set(ctx, Session{Token: "abc", UserID: 4, Role: RoleStudent}); err != nil {
		t.Fatalf("set: %v", err)
	}

	second, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := NewStore(second).Get(ctx)
	if got.Token != "abc" || got.UserID != 4 {
		t.Fatalf("expected persisted session, got %+v", got)
	}

	info, err := os.Stat(filepath.Join(dir, AuthKey+".json"))
	if err != nil {
		t.Fatalf("stat record: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 record, got %o", perm)
	}
}

func TestFileBackendRejectsTraversal(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, key := range []string{"../escape", "a/b", "..", ""} {
		if err := b.Save(context.Background(), key, []byte("x")); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestFileBackendRequiresDir(t *testing.T) {
	if _, err := NewFileBackend(""); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestRedisBackendContract(t *testing.T) {
	b, _ := newRedisBackendTest(t, 0)
	backendContract(t, b)
}

func TestRedisBackendNamespacesKeys(t *testing.T) {
	b, mr := newRedisBackendTest(t, 0)
	if err := b.Save(context.Background(), AuthKey, []byte("{}")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("edu:alice:" + AuthKey) {
		t.Fatalf("expected namespaced key, have %v", mr.Keys())
	}
}

func TestRedisBackendTTL(t *testing.T) {
	b, mr := newRedisBackendTest(t, time.Minute)
	ctx := context.Background()
	if err := b.Save(ctx, AuthKey, []byte(`{"token":"a"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ttl := mr.TTL("edu:alice:" + AuthKey); ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := b.Load(ctx, AuthKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expiry to read as not found, got %v", err)
	}
}

func TestRedisBackendUnavailable(t *testing.T) {
	b, mr := newRedisBackendTest(t, 0)
	mr.Close()

	_, err := b.Load(context.Background(), AuthKey)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}

	store := NewStore(b)
	if got := store.Get(context.Background()); !got.IsZero() {
		t.Fatalf("unreachable backend must read as empty session, got %+v", got)
	}
}

func TestBackendsConcurrentWrites(t *testing.T) {
	fileBackend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	redisBackend, _ := newRedisBackendTest(t, 0)

	backends := map[string]Backend{
		"memory": NewMemoryBackend(),
		"file":   fileBackend,
		"redis":  redisBackend,
	}
	for name, b := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := NewStore(b)
			var wg sync.WaitGroup
			for i := 1; i <= 16; i++ {
				wg.Add(1)
				go func(id int64) {
					defer wg.Done()
					_ = store.Set(ctx, Session{Token: "t", UserID: id, Role: RoleStudent})
					_ = store.Get(ctx)
				}(int64(i))
			}
			wg.Wait()

			got := store.Get(ctx)
			if got.Token != "t" || got.UserID < 1 || got.UserID > 16 {
				t.Fatalf("expected one of the written sessions, got %+v", got)
			}
		})
	}
}
