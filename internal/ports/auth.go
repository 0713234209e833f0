package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/domain/model"
)

// ErrSessionNotFound is returned by SessionStore implementations when no
// session exists for a token. Malformed or expired persisted state reads
// back as this same error.
var ErrSessionNotFound = errors.New("session not found")

// AuthProvider performs a password login against an identity backend and
// returns the resulting grant (bearer token, identity, absolute expiry).
type AuthProvider interface {
	// Login authenticates the credentials. Invalid credentials and upstream
	// rejections surface as an errors.AppError with code AuthenticationFailed.
	Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Grant, error)

	// Register forwards a self-service signup. Outside the session core;
	// failures map straight through to the caller.
	Register(ctx context.Context, req model.RegisterRequest) error
}

// BeginInput carries inputs for initiating an SSO flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the SSO code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// SSOIdentity is the principal an SSO provider resolves, before group→role
// mapping. Kept separate from domainauth.Identity because IdPs know groups,
// not marketplace roles.
type SSOIdentity struct {
	Subject string
	Name    string
	Email   string
	Groups  []string
	// ExpiresAt is the absolute expiry from the IdP token, in UTC.
	ExpiresAt int64 // epoch milliseconds
}

// SSOProvider initiates and completes a redirect-based login against an IdP.
// Optional; the console runs fine with password login only.
type SSOProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an
	// opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and
	// returns the authenticated IdP identity.
	Exchange(ctx context.Context, in ExchangeInput) (SSOIdentity, error)
}

// SessionStore persists and retrieves user sessions keyed by bearer token.
// Implementations must fail closed: malformed persisted data reads back as
// not-found, never as an authenticated session.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, token string) (domainauth.Session, error)
	Delete(ctx context.Context, token string) error
}

// RoleMapper maps IdP groups to a marketplace role for SSO logins.
type RoleMapper interface {
	Map(groups []string) domainauth.Role
}
