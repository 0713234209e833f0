package memstore

// Package memstore provides an in-process session store. Suitable for
// development and single-instance deployments; sessions do not survive a
// restart.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/ports"
)

// SessionStore keeps sessions in a mutex-guarded map.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.Token == "" {
		return errors.New("session token cannot be empty")
	}
	if !sess.Valid(time.Now()) {
		return errors.New("session is expired")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, token string) (domainauth.Session, error) {
	if token == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	if !sess.Valid(time.Now()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	if token == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// PurgeExpired removes expired sessions and reports how many were deleted.
func (s *SessionStore) PurgeExpired(_ context.Context) (int64, error) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for token, sess := range s.sessions {
		if !sess.Valid(now) {
			delete(s.sessions, token)
			purged++
		}
	}
	return purged, nil
}
