package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/domain/model"
	apperrors "github.com/agroconecta/console/internal/errors"
	"github.com/agroconecta/console/internal/ports"
)

// defaultSSOSessionTTL applies when the IdP token carries no usable expiry.
const defaultSSOSessionTTL = time.Hour

// AuthServiceOptions groups dependencies for AuthService. SSO and Roles are
// optional; without them only password login works.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	SSO      ports.SSOProvider
	Sessions ports.SessionStore
	Roles    ports.RoleMapper
	Logger   *slog.Logger
}

// AuthService orchestrates login, session retrieval and logout by
// coordinating the identity provider and the session store.
//
// Session validity is decided here, at read time: the store TTLs are a
// best-effort cleanup, not the source of truth.
type AuthService struct {
	provider ports.AuthProvider
	sso      ports.SSOProvider
	sessions ports.SessionStore
	roles    ports.RoleMapper
	logger   *slog.Logger
	now      func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		provider: opts.Provider,
		sso:      opts.SSO,
		sessions: opts.Sessions,
		roles:    opts.Roles,
		logger:   logger,
		now:      time.Now,
	}
}

// Login authenticates credentials against the provider and persists the
// resulting session keyed by its bearer token. The identity role is
// normalized so legacy upstream role names never reach the rest of the
// console.
func (s *AuthService) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return domainauth.Session{}, apperrors.Validation("", "email y contraseña son obligatorios")
	}

	grant, err := s.provider.Login(ctx, creds)
	if err != nil {
		return domainauth.Session{}, err
	}

	session := domainauth.Session{
		Token:     grant.Token,
		Identity:  grant.Identity,
		ExpiresAt: grant.ExpiresAt,
	}
	session.Identity.Role = session.Identity.Role.Normalize()

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return domainauth.Session{}, apperrors.Internal("save session", saveErr)
	}

	s.logger.InfoContext(ctx, "login",
		slog.Int64("user_id", session.Identity.ID),
		slog.String("role", string(session.Identity.Role)),
	)
	return session, nil
}

// Register forwards a self-service signup to the provider.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.Validation("", "email y contraseña son obligatorios")
	}
	return s.provider.Register(ctx, req)
}

// GetSession loads the session for a bearer token and enforces expiry.
// A token with no session reads back as Unauthorized; a lapsed session is
// deleted and reads back as SessionExpired, so callers can tell the two
// apart.
func (s *AuthService) GetSession(ctx context.Context, token string) (domainauth.Session, error) {
	if token == "" {
		return domainauth.Session{}, apperrors.Unauthorized("no session token")
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return domainauth.Session{}, apperrors.Unauthorized("session not found")
		}
		return domainauth.Session{}, apperrors.Internal("get session", err)
	}

	if !session.Valid(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, token); deleteErr != nil {
			s.logger.WarnContext(ctx, "delete expired session", slog.String("error", deleteErr.Error()))
		}
		return domainauth.Session{}, apperrors.SessionExpired()
	}
	return session, nil
}

// Logout removes a session. Logging out an unknown or already removed token
// succeeds; the end state is the same.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, ports.ErrSessionNotFound) {
		return apperrors.Internal("delete session", err)
	}
	return nil
}

// SSOEnabled reports whether an SSO provider is configured.
func (s *AuthService) SSOEnabled() bool { return s.sso != nil }

// BeginSSOLoginResult contains the outputs of starting an SSO flow.
type BeginSSOLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginSSOLogin initiates the SSO flow and returns the IdP auth URL with
// the state and nonce the callback must present.
func (s *AuthService) BeginSSOLogin(ctx context.Context, redirectURL string) (*BeginSSOLoginResult, error) {
	if s.sso == nil {
		return nil, apperrors.Validation("", "SSO no está habilitado")
	}
	if redirectURL == "" {
		return nil, apperrors.Validation("redirectUrl", "redirect URL is required")
	}

	authURL, state, nonce, err := s.sso.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin sso flow: %w", err)
	}
	return &BeginSSOLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteSSOLoginInput groups the callback parameters of an SSO flow.
type CompleteSSOLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteSSOLogin exchanges the authorization code, maps IdP groups to a
// marketplace role, and persists a session under a freshly minted token.
func (s *AuthService) CompleteSSOLogin(ctx context.Context, input CompleteSSOLoginInput) (domainauth.Session, error) {
	if s.sso == nil {
		return domainauth.Session{}, apperrors.Validation("", "SSO no está habilitado")
	}
	if input.Code == "" {
		return domainauth.Session{}, apperrors.Validation("code", "authorization code is required")
	}
	if input.State == "" {
		return domainauth.Session{}, apperrors.Validation("state", "state parameter is required")
	}
	if input.Nonce == "" {
		return domainauth.Session{}, apperrors.Validation("nonce", "nonce parameter is required")
	}

	identity, err := s.sso.Exchange(ctx, ports.ExchangeInput(input))
	if err != nil {
		return domainauth.Session{}, apperrors.AuthenticationFailed("No fue posible completar el inicio de sesión", err)
	}

	role := domainauth.RoleProducer
	if s.roles != nil {
		role = s.roles.Map(identity.Groups)
	}

	expiresAt := s.now().Add(defaultSSOSessionTTL)
	if identity.ExpiresAt > 0 {
		expiresAt = time.UnixMilli(identity.ExpiresAt)
	}

	session := domainauth.Session{
		Token: uuid.NewString(),
		Identity: domainauth.Identity{
			Name:   identity.Name,
			Email:  identity.Email,
			Role:   role,
			Active: true,
		},
		ExpiresAt: expiresAt,
	}
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return domainauth.Session{}, apperrors.Internal("save session", saveErr)
	}

	s.logger.InfoContext(ctx, "sso login",
		slog.String("subject", identity.Subject),
		slog.String("role", string(role)),
	)
	return session, nil
}
