package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroconecta/console/internal/adapters/memstore"
	domainauth "github.com/agroconecta/console/internal/domain/auth"
	apperrors "github.com/agroconecta/console/internal/errors"
	mocks "github.com/agroconecta/console/internal/mocks/auth"
	"github.com/agroconecta/console/internal/ports"
)

// failingSessionStore helps test store error paths.
type failingSessionStore struct {
	saveErr   error
	getErr    error
	deleteErr error
}

func (f *failingSessionStore) Save(context.Context, domainauth.Session) error { return f.saveErr }
func (f *failingSessionStore) Get(context.Context, string) (domainauth.Session, error) {
	return domainauth.Session{}, f.getErr
}
func (f *failingSessionStore) Delete(context.Context, string) error { return f.deleteErr }

func newAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Provider == nil {
		opts.Provider = mocks.NewMockAuthProvider()
	}
	if opts.Sessions == nil {
		opts.Sessions = memstore.NewSessionStore()
	}
	return NewAuthService(opts)
}

func TestAuthService_Login_PersistsSession(t *testing.T) {
	sessions := memstore.NewSessionStore()
	svc := newAuthService(AuthServiceOptions{Sessions: sessions})

	session, err := svc.Login(context.Background(), domainauth.Credentials{
		Email:    "productor@gmail.com",
		Password: "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "test-token", session.Token)
	assert.Equal(t, domainauth.RoleProducer, session.Identity.Role)

	stored, err := sessions.Get(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Identity.Email, stored.Identity.Email)
}

func TestAuthService_Login_NormalizesLegacyRole(t *testing.T) {
	provider := mocks.NewMockAuthProvider()
	provider.DefaultGrant.Identity.Role = "ADMIN"
	svc := newAuthService(AuthServiceOptions{Provider: provider})

	session, err := svc.Login(context.Background(), domainauth.Credentials{
		Email:    "admin@agroconecta.com",
		Password: "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdministrator, session.Identity.Role)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	svc := newAuthService(AuthServiceOptions{})

	_, err := svc.Login(context.Background(), domainauth.Credentials{Email: "  ", Password: ""})

	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestAuthService_Login_ProviderRejection(t *testing.T) {
	provider := mocks.NewMockAuthProvider()
	provider.LoginFunc = func(context.Context, domainauth.Credentials) (domainauth.Grant, error) {
		return domainauth.Grant{}, apperrors.AuthenticationFailed("Email o contraseña incorrectos", nil)
	}
	sessions := memstore.NewSessionStore()
	svc := newAuthService(AuthServiceOptions{Provider: provider, Sessions: sessions})

	_, err := svc.Login(context.Background(), domainauth.Credentials{Email: "a@b.c", Password: "x"})

	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAuthentication))
	assert.Zero(t, sessions.Len())
}

func TestAuthService_Login_SaveFailure(t *testing.T) {
	svc := newAuthService(AuthServiceOptions{
		Sessions: &failingSessionStore{saveErr: errors.New("redis down")},
	})

	_, err := svc.Login(context.Background(), domainauth.Credentials{Email: "a@b.c", Password: "x"})

	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInternal))
}

func TestAuthService_GetSession(t *testing.T) {
	sessions := memstore.NewSessionStore()
	svc := newAuthService(AuthServiceOptions{Sessions: sessions})

	valid := domainauth.Session{
		Token:     "tok-valid",
		Identity:  domainauth.Identity{ID: 1, Role: domainauth.RoleAdministrator},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Save(context.Background(), valid))

	t.Run("valid session", func(t *testing.T) {
		got, err := svc.GetSession(context.Background(), "tok-valid")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Identity.ID)
	})

	t.Run("empty token is unauthorized", func(t *testing.T) {
		_, err := svc.GetSession(context.Background(), "")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnauthorized))
	})

	t.Run("unknown token is unauthorized", func(t *testing.T) {
		_, err := svc.GetSession(context.Background(), "tok-unknown")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnauthorized))
	})
}

func TestAuthService_GetSession_ExpiredIsDeleted(t *testing.T) {
	sessions := memstore.NewSessionStore()
	svc := newAuthService(AuthServiceOptions{Sessions: sessions})
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	expired := domainauth.Session{
		Token:     "tok-expired",
		Identity:  domainauth.Identity{ID: 2, Role: domainauth.RoleProducer},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Save(context.Background(), expired))

	_, err := svc.GetSession(context.Background(), "tok-expired")

	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionExpired))
	_, err = sessions.Get(context.Background(), "tok-expired")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	sessions := memstore.NewSessionStore()
	svc := newAuthService(AuthServiceOptions{Sessions: sessions})

	require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, svc.Logout(context.Background(), "tok"))
	require.NoError(t, svc.Logout(context.Background(), "tok"))
	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.Zero(t, sessions.Len())
}

func TestAuthService_SSODisabled(t *testing.T) {
	svc := newAuthService(AuthServiceOptions{})

	assert.False(t, svc.SSOEnabled())

	_, err := svc.BeginSSOLogin(context.Background(), "http://localhost/cb")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))

	_, err = svc.CompleteSSOLogin(context.Background(), CompleteSSOLoginInput{Code: "c", State: "s", Nonce: "n"})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestAuthService_BeginSSOLogin(t *testing.T) {
	svc := newAuthService(AuthServiceOptions{SSO: mocks.NewMockSSOProvider()})

	result, err := svc.BeginSSOLogin(context.Background(), "http://localhost:8080/callback")

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.Equal(t, "state-1", result.State)
	assert.Equal(t, "nonce-1", result.Nonce)
}

func TestAuthService_CompleteSSOLogin(t *testing.T) {
	sso := mocks.NewMockSSOProvider()
	sessions := memstore.NewSessionStore()
	svc := newAuthService(AuthServiceOptions{
		SSO:      sso,
		Sessions: sessions,
		Roles:    mocks.RoleMapperFunc(func([]string) domainauth.Role { return domainauth.RoleAdministrator }),
	})

	session, err := svc.CompleteSSOLogin(context.Background(), CompleteSSOLoginInput{
		Code:  "code",
		State: "state-1",
		Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, domainauth.RoleAdministrator, session.Identity.Role)
	assert.True(t, session.Valid(time.Now()))

	stored, err := sessions.Get(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, "sso.user@example.com", stored.Identity.Email)
}

func TestAuthService_CompleteSSOLogin_MissingParameters(t *testing.T) {
	svc := newAuthService(AuthServiceOptions{SSO: mocks.NewMockSSOProvider()})

	cases := []struct {
		name  string
		input CompleteSSOLoginInput
	}{
		{"missing code", CompleteSSOLoginInput{State: "s", Nonce: "n"}},
		{"missing state", CompleteSSOLoginInput{Code: "c", Nonce: "n"}},
		{"missing nonce", CompleteSSOLoginInput{Code: "c", State: "s"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CompleteSSOLogin(context.Background(), tc.input)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
		})
	}
}

func TestAuthService_CompleteSSOLogin_ExchangeFailure(t *testing.T) {
	sso := mocks.NewMockSSOProvider()
	sso.ExchangeFunc = func(context.Context, ports.ExchangeInput) (ports.SSOIdentity, error) {
		return ports.SSOIdentity{}, errors.New("idp says no")
	}
	svc := newAuthService(AuthServiceOptions{SSO: sso})

	_, err := svc.CompleteSSOLogin(context.Background(), CompleteSSOLoginInput{Code: "c", State: "s", Nonce: "n"})

	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAuthentication))
}
