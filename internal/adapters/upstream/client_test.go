package upstream

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	apperrors "github.com/agroconecta/console/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL}, slog.Default())
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "ftp://example.com"}, nil)
	assert.Error(t, err)
}

func TestClient_AttachesBearerFromContext(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	})

	session := domainauth.Session{
		Token:     "tok-123",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	ctx := domainauth.ContextWithSession(context.Background(), &session)

	require.NoError(t, client.do(ctx, call{method: "GET", path: "/api/products"}))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, client.do(context.Background(), call{method: "GET", path: "/api/products"}))
	assert.Empty(t, gotAuth)
}

func TestClient_SkipAuth(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	})

	ctx := domainauth.ContextWithSession(context.Background(), &domainauth.Session{
		Token:     "tok-123",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	require.NoError(t, client.do(ctx, call{method: "POST", path: "/api/auth/login", skipAuth: true}))
	assert.Empty(t, gotAuth)
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantCode apperrors.ErrorCode
		wantMsg  string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Credenciales inválidas"}`, apperrors.ErrCodeAuthentication, "Credenciales inválidas"},
		{"forbidden", http.StatusForbidden, `{"error":"Acceso denegado"}`, apperrors.ErrCodeUnauthorized, "Acceso denegado"},
		{"not found", http.StatusNotFound, `{"message":"Producto no encontrado"}`, apperrors.ErrCodeNotFound, "Producto no encontrado"},
		{"conflict", http.StatusConflict, `{"message":"El email ya está registrado"}`, apperrors.ErrCodeConflict, "El email ya está registrado"},
		{"bad request", http.StatusBadRequest, `{"message":"Cantidad inválida"}`, apperrors.ErrCodeValidation, "Cantidad inválida"},
		{"server error", http.StatusInternalServerError, ``, apperrors.ErrCodeUpstream, http.StatusText(http.StatusInternalServerError)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			err := client.do(context.Background(), call{method: "GET", path: "/api/x"})

			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, tc.wantCode), "got %v", err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestClient_DecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "nombre": "Tomate Chonto"}`))
	})

	var out struct {
		ID   int64  `json:"id"`
		Name string `json:"nombre"`
	}
	require.NoError(t, client.do(context.Background(), call{method: "GET", path: "/api/products/7", out: &out}))
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "Tomate Chonto", out.Name)
}

func TestIDPath(t *testing.T) {
	assert.Equal(t, "/api/orders/42", idPath("/api/orders", 42))
}
