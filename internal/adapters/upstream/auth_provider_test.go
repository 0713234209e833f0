package upstream

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/domain/model"
	apperrors "github.com/agroconecta/console/internal/errors"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *AuthProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL}, slog.Default())
	require.NoError(t, err)

	provider, err := NewAuthProvider(client, LoginMapping{})
	require.NoError(t, err)
	return provider
}

func TestAuthProvider_Login_LegacyShape(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		// Login must not carry a bearer header.
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"token": "legacy-token",
			"usuario": {"id": 2, "nombre": "Juan Pérez", "email": "productor@gmail.com", "rol": "PRODUCTOR", "activo": true},
			"expiresIn": 3600
		}`))
	})

	grant, err := provider.Login(context.Background(), domainauth.Credentials{
		Email:    "productor@gmail.com",
		Password: "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "legacy-token", grant.Token)
	assert.Equal(t, int64(2), grant.Identity.ID)
	assert.Equal(t, domainauth.RoleProducer, grant.Identity.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), grant.ExpiresAt, 5*time.Second)
}

func TestAuthProvider_Login_CurrentShape(t *testing.T) {
	expiresAt := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"accessToken": "current-token",
			"refreshToken": "refresh",
			"tokenType": "Bearer",
			"user": {"id": 1, "nombre": "Admin AgroConecta", "email": "admin@agroconecta.com", "rol": "ADMINISTRADOR", "activo": true},
			"expiresAt": "` + expiresAt + `",
			"message": "ok"
		}`))
	})

	grant, err := provider.Login(context.Background(), domainauth.Credentials{
		Email:    "admin@agroconecta.com",
		Password: "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "current-token", grant.Token)
	assert.Equal(t, domainauth.RoleAdministrator, grant.Identity.Role)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), grant.ExpiresAt, 5*time.Second)
}

func TestAuthProvider_Login_EpochMillisExpiry(t *testing.T) {
	expiry := time.Now().Add(30 * time.Minute).UnixMilli()
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"accessToken": "tok",
			"user": {"id": 3, "nombre": "Usuario de Prueba", "email": "test@test.com", "rol": "PRODUCTOR", "activo": true},
			"expiresAt": ` + jsonInt(expiry) + `
		}`))
	})

	grant, err := provider.Login(context.Background(), domainauth.Credentials{Email: "test@test.com", Password: "123456"})

	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(expiry), grant.ExpiresAt)
}

func TestAuthProvider_Login_RejectedCredentials(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Email o contraseña incorrectos"}`))
	})

	_, err := provider.Login(context.Background(), domainauth.Credentials{Email: "x@y.z", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAuthentication))
	// The upstream message is what the login screen shows.
	assert.Contains(t, err.Error(), "Email o contraseña incorrectos")
}

func TestAuthProvider_Login_MissingToken(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user": {"id": 1, "nombre": "x", "email": "x@y.z", "rol": "PRODUCTOR"}, "expiresIn": 60}`))
	})

	_, err := provider.Login(context.Background(), domainauth.Credentials{Email: "x@y.z", Password: "p"})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAuthentication))
}

func TestAuthProvider_Login_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client, err := NewClient(Config{BaseURL: srv.URL}, slog.Default())
	require.NoError(t, err)
	srv.Close() // connection refused from here on

	provider, err := NewAuthProvider(client, LoginMapping{})
	require.NoError(t, err)

	_, err = provider.Login(context.Background(), domainauth.Credentials{Email: "x@y.z", Password: "p"})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAuthentication))
}

func TestAuthProvider_Register(t *testing.T) {
	var gotPath string
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	})

	err := provider.Register(context.Background(), model.RegisterRequest{
		Name:            "Nuevo Productor",
		Email:           "nuevo@gmail.com",
		Password:        "secreto1",
		ConfirmPassword: "secreto1",
		Role:            domainauth.RoleProducer,
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/auth/register", gotPath)
}

func TestLoginMapping_Validate(t *testing.T) {
	assert.NoError(t, LoginMapping{}.Validate())
	assert.Error(t, LoginMapping{TokenExpr: "token || "}.Validate())
}

func jsonInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
