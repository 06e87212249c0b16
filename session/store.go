package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// AuthKey holds the signed-in Session.
	AuthKey = "edu-auth"
	// StudentClassesKey holds the cached []JoinedClass of a student.
	StudentClassesKey = "edu-student-classes"
)

// Store reads and writes the session records over a Backend.
type Store struct {
	backend Backend
	log     zerolog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger routes store warnings (malformed or unreadable records) to l.
func WithLogger(l zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore returns a Store persisting into backend.
func NewStore(backend Backend, opts ...StoreOption) *Store {
	s := &Store{
		backend: backend,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewMemoryStore returns a Store over a fresh MemoryBackend.
func NewMemoryStore(opts ...StoreOption) *Store {
	return NewStore(NewMemoryBackend(), opts...)
}

// Get returns the stored session. Missing, unreadable, or malformed records read
// back as the empty session.
func (s *Store) Get(ctx context.Context) Session {
	var out Session
	if !s.load(ctx, AuthKey, &out) {
		return Session{}
	}
	return out
}

// Set overwrites the stored session.
func (s *Store) Set(ctx context.Context, sess Session) error {
	return s.save(ctx, AuthKey, sess)
}

// Clear removes the stored session. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Remove(ctx, AuthKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// StudentClasses returns the cached joined classes, or an empty list.
func (s *Store) StudentClasses(ctx context.Context) []JoinedClass {
	var out []JoinedClass
	if !s.load(ctx, StudentClassesKey, &out) || out == nil {
		return []JoinedClass{}
	}
	return out
}

// SaveStudentClasses overwrites the cached joined classes.
func (s *Store) SaveStudentClasses(ctx context.Context, classes []JoinedClass) error {
	if classes == nil {
		classes = []JoinedClass{}
	}
	return s.save(ctx, StudentClassesKey, classes)
}

func (s *Store) load(ctx context.Context, key string, dst any) bool {
	data, err := s.backend.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("session record unreadable")
		return false
	}
	if len(data) == 0 || string(data) == "null" {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("session record malformed")
		return false
	}
	return true
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
