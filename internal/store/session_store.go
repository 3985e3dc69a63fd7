package store

import (
	"context"
	"errors"
	"sync"

	"alertdesk-backend/internal/form"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("form session not found")
)

// SessionStore keeps form sessions for the lifetime of the process.
type SessionStore interface {
	Create(ctx context.Context, schema *form.Schema) (*form.Session, error)
	Get(ctx context.Context, id string) (*form.Session, error)
	// Update runs fn on the stored session under the store lock and returns a
	// copy of the result.
	Update(ctx context.Context, id string, fn func(*form.Session) error) (*form.Session, error)
	Delete(ctx context.Context, id string) error
}

type inMemorySessionStore struct {
	sessions map[string]*form.Session
	mu       sync.RWMutex
}

func NewInMemorySessionStore() SessionStore {
	return &inMemorySessionStore{
		sessions: make(map[string]*form.Session),
	}
}

func (s *inMemorySessionStore) Create(ctx context.Context, schema *form.Schema) (*form.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := form.NewSession(uuid.NewString(), schema)
	s.sessions[session.ID] = session
	return session.Clone(), nil
}

func (s *inMemorySessionStore) Get(ctx context.Context, id string) (*form.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[id]; ok {
		return session.Clone(), nil
	}
	return nil, ErrSessionNotFound
}

func (s *inMemorySessionStore) Update(ctx context.Context, id string, fn func(*form.Session) error) (*form.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := fn(session); err != nil {
		return session.Clone(), err
	}
	return session.Clone(), nil
}

func (s *inMemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}
