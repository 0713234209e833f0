package pgstore

// Package pgstore provides a Postgres-backed session store for deployments
// without Redis. Sessions live in a single table keyed by token; expired
// rows are deleted lazily on read and swept opportunistically on save.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	apperrors "github.com/agroconecta/console/internal/errors"
	"github.com/agroconecta/console/internal/ports"
)

// Schema is the DDL for the sessions table. Applied by bootstrap at startup
// when the Postgres store is selected.
const Schema = `
CREATE TABLE IF NOT EXISTS console_sessions (
    token       TEXT PRIMARY KEY,
    identity    JSONB NOT NULL,
    expires_at  TIMESTAMPTZ NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS console_sessions_expires_at_idx ON console_sessions (expires_at);
`

// SessionStore persists sessions in Postgres via pgx.
type SessionStore struct {
	pool *pgxpool.Pool
}

// NewSessionStore creates a Postgres-backed session store.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// EnsureSchema creates the sessions table if it does not exist.
func (s *SessionStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure sessions schema: %w", apperrors.MapDBError(err))
	}
	return nil
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.Token == "" {
		return errors.New("session token cannot be empty")
	}
	if !sess.Valid(time.Now()) {
		return errors.New("session is expired")
	}

	identity, err := json.Marshal(sess.Identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	const q = `
INSERT INTO console_sessions (token, identity, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (token) DO UPDATE SET identity = EXCLUDED.identity, expires_at = EXCLUDED.expires_at`

	if _, execErr := s.pool.Exec(ctx, q, sess.Token, identity, sess.ExpiresAt); execErr != nil {
		return fmt.Errorf("save session: %w", apperrors.MapDBError(execErr))
	}

	// Opportunistic sweep; failures are irrelevant to the save itself.
	_, _ = s.pool.Exec(ctx, `DELETE FROM console_sessions WHERE expires_at <= now()`)

	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (domainauth.Session, error) {
	if token == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	const q = `SELECT identity, expires_at FROM console_sessions WHERE token = $1`

	var identityRaw []byte
	var expiresAt time.Time
	err := s.pool.QueryRow(ctx, q, token).Scan(&identityRaw, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainauth.Session{}, ports.ErrSessionNotFound
		}
		return domainauth.Session{}, fmt.Errorf("get session: %w", apperrors.MapDBError(err))
	}

	var identity domainauth.Identity
	if unmarshalErr := json.Unmarshal(identityRaw, &identity); unmarshalErr != nil {
		// Fail closed on malformed identity bytes.
		if deleteErr := s.Delete(ctx, token); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup malformed session: %w", deleteErr)
		}
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	sess := domainauth.Session{Token: token, Identity: identity, ExpiresAt: expiresAt}
	if !sess.Valid(time.Now()) {
		if deleteErr := s.Delete(ctx, token); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM console_sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("delete session: %w", apperrors.MapDBError(err))
	}
	return nil
}

// PurgeExpired removes all expired sessions and reports how many were
// deleted. The sweeper calls this periodically; correctness never depends
// on it because reads evict lazily.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM console_sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", apperrors.MapDBError(err))
	}
	return tag.RowsAffected(), nil
}
