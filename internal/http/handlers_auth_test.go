package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/domain/model"
	apperrors "github.com/agroconecta/console/internal/errors"
	"github.com/agroconecta/console/internal/service"
)

// stubAuthAPI is a configurable test double for AuthAPI.
type stubAuthAPI struct {
	loginFunc       func(ctx context.Context, creds domainauth.Credentials) (domainauth.Session, error)
	registerFunc    func(ctx context.Context, req model.RegisterRequest) error
	getSessionFunc  func(ctx context.Context, token string) (domainauth.Session, error)
	logoutFunc      func(ctx context.Context, token string) error
	ssoEnabled      bool
	beginSSOFunc    func(ctx context.Context, redirectURL string) (*service.BeginSSOLoginResult, error)
	completeSSOFunc func(ctx context.Context, input service.CompleteSSOLoginInput) (domainauth.Session, error)
}

func (s *stubAuthAPI) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Session, error) {
	if s.loginFunc != nil {
		return s.loginFunc(ctx, creds)
	}
	return domainauth.Session{}, apperrors.AuthenticationFailed("Email o contraseña incorrectos", nil)
}

func (s *stubAuthAPI) Register(ctx context.Context, req model.RegisterRequest) error {
	if s.registerFunc != nil {
		return s.registerFunc(ctx, req)
	}
	return nil
}

func (s *stubAuthAPI) GetSession(ctx context.Context, token string) (domainauth.Session, error) {
	if s.getSessionFunc != nil {
		return s.getSessionFunc(ctx, token)
	}
	return domainauth.Session{}, apperrors.SessionExpired()
}

func (s *stubAuthAPI) Logout(ctx context.Context, token string) error {
	if s.logoutFunc != nil {
		return s.logoutFunc(ctx, token)
	}
	return nil
}

func (s *stubAuthAPI) SSOEnabled() bool { return s.ssoEnabled }

func (s *stubAuthAPI) BeginSSOLogin(ctx context.Context, redirectURL string) (*service.BeginSSOLoginResult, error) {
	if s.beginSSOFunc != nil {
		return s.beginSSOFunc(ctx, redirectURL)
	}
	return &service.BeginSSOLoginResult{AuthURL: "https://idp.example.com/auth", State: "st-1", Nonce: "n-1"}, nil
}

func (s *stubAuthAPI) CompleteSSOLogin(ctx context.Context, input service.CompleteSSOLoginInput) (domainauth.Session, error) {
	if s.completeSSOFunc != nil {
		return s.completeSSOFunc(ctx, input)
	}
	return domainauth.Session{}, apperrors.AuthenticationFailed("No fue posible completar el inicio de sesión", nil)
}

func sessionFor(role domainauth.Role) domainauth.Session {
	return domainauth.Session{
		Token: "tok-123",
		Identity: domainauth.Identity{
			ID:     5,
			Name:   "Ana García",
			Email:  "ana@agroconecta.com",
			Role:   role,
			Active: true,
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Login_AdminLandsOnAdminDashboard(t *testing.T) {
	svc := &stubAuthAPI{
		loginFunc: func(_ context.Context, creds domainauth.Credentials) (domainauth.Session, error) {
			assert.Equal(t, "ana@agroconecta.com", creds.Email)
			return sessionFor(domainauth.RoleAdministrator), nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ana@agroconecta.com","password":"secreta"}`))
	w := httptest.NewRecorder()
	h.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tok-123", body.Token)
	assert.Equal(t, "Ana García", body.User.Name)
	assert.Equal(t, "/admin/dashboard", body.RedirectTo)

	cookie := findCookie(t, w, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "tok-123", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)
}

func TestAuthHandlers_Login_ProducerLandsOnProducerDashboard(t *testing.T) {
	svc := &stubAuthAPI{
		loginFunc: func(context.Context, domainauth.Credentials) (domainauth.Session, error) {
			return sessionFor(domainauth.RoleProducer), nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"p@x.com","password":"s"}`))
	w := httptest.NewRecorder()
	h.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/productor/dashboard", body.RedirectTo)
}

func TestAuthHandlers_Login_BadCredentials(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuthAPI{}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ana@agroconecta.com","password":"mala"}`))
	w := httptest.NewRecorder()
	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "authentication_failed", body["error"])
	assert.Equal(t, "Email o contraseña incorrectos", body["message"])
	assert.Nil(t, findCookie(t, w, SessionCookieName))
}

func TestAuthHandlers_Login_MalformedBody(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuthAPI{}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{no es json"))
	w := httptest.NewRecorder()
	h.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlers_Register(t *testing.T) {
	var got model.RegisterRequest
	svc := &stubAuthAPI{
		registerFunc: func(_ context.Context, req model.RegisterRequest) error {
			got = req
			return nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"nombre":"María","email":"maria@x.com","password":"secreto1"}`))
	w := httptest.NewRecorder()
	h.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "maria@x.com", got.Email)
	body := decodeBody(t, w)
	assert.Equal(t, "Registro exitoso", body["message"])
	assert.Equal(t, LoginPath, body["redirectTo"])
}

func TestAuthHandlers_Register_Conflict(t *testing.T) {
	svc := &stubAuthAPI{
		registerFunc: func(context.Context, model.RegisterRequest) error {
			return apperrors.Conflict("el email ya está registrado")
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"nombre":"María","email":"maria@x.com","password":"secreto1"}`))
	w := httptest.NewRecorder()
	h.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandlers_Logout_Idempotent(t *testing.T) {
	calls := 0
	svc := &stubAuthAPI{
		logoutFunc: func(context.Context, string) error {
			calls++
			return nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		w := httptest.NewRecorder()
		h.Logout(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, LoginPath, body["redirectTo"])

		cookie := findCookie(t, w, SessionCookieName)
		require.NotNil(t, cookie)
		assert.Negative(t, cookie.MaxAge)
	}
	assert.Equal(t, 2, calls)
}

func TestAuthHandlers_Logout_NoToken(t *testing.T) {
	svc := &stubAuthAPI{
		logoutFunc: func(context.Context, string) error {
			t.Error("logout should not reach the service without a token")
			return nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	w := httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandlers_Status(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		h := &AuthHandlers{Svc: &stubAuthAPI{}}
		w := httptest.NewRecorder()
		h.Status(w, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("expired token clears cookie", func(t *testing.T) {
		h := &AuthHandlers{Svc: &stubAuthAPI{}}
		req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
		w := httptest.NewRecorder()
		h.Status(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["authenticated"])

		cookie := findCookie(t, w, SessionCookieName)
		require.NotNil(t, cookie)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("live session", func(t *testing.T) {
		svc := &stubAuthAPI{
			getSessionFunc: func(_ context.Context, token string) (domainauth.Session, error) {
				return sessionFor(domainauth.RoleAdministrator), nil
			},
		}
		h := &AuthHandlers{Svc: svc}
		req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		w := httptest.NewRecorder()
		h.Status(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["authenticated"])
		assert.Equal(t, "/admin/dashboard", body["redirectTo"])
	})
}

func TestAuthHandlers_SSOLogin_Disabled(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuthAPI{ssoEnabled: false}}

	w := httptest.NewRecorder()
	h.SSOLogin(w, httptest.NewRequest(http.MethodGet, "/auth/sso/login", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "sso_disabled", decodeBody(t, w)["error"])
}

func TestAuthHandlers_SSOLogin_RedirectsToIdP(t *testing.T) {
	var gotRedirectURL string
	svc := &stubAuthAPI{
		ssoEnabled: true,
		beginSSOFunc: func(_ context.Context, redirectURL string) (*service.BeginSSOLoginResult, error) {
			gotRedirectURL = redirectURL
			return &service.BeginSSOLoginResult{AuthURL: "https://idp.example.com/auth?x=1", State: "st-9", Nonce: "n-9"}, nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodGet, "https://console.example.com/auth/sso/login?redirect_uri=/admin/usuarios", nil)
	w := httptest.NewRecorder()
	h.SSOLogin(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://idp.example.com/auth?x=1", w.Header().Get("Location"))
	assert.Equal(t, "https://console.example.com/auth/sso/callback", gotRedirectURL)

	state := findCookie(t, w, "sso_state")
	require.NotNil(t, state)
	assert.Equal(t, "st-9", state.Value)
	nonce := findCookie(t, w, "sso_nonce")
	require.NotNil(t, nonce)
	assert.Equal(t, "n-9", nonce.Value)
	redirect := findCookie(t, w, "post_login_redirect")
	require.NotNil(t, redirect)
	assert.Equal(t, "/admin/usuarios", redirect.Value)
}

func TestAuthHandlers_SSOCallback(t *testing.T) {
	newRequest := func(query string, cookies ...*http.Cookie) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/auth/sso/callback"+query, nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		return req
	}

	t.Run("missing parameters", func(t *testing.T) {
		h := &AuthHandlers{Svc: &stubAuthAPI{ssoEnabled: true}}
		w := httptest.NewRecorder()
		h.SSOCallback(w, newRequest("?code=abc"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing_parameters", decodeBody(t, w)["error"])
	})

	t.Run("state mismatch", func(t *testing.T) {
		h := &AuthHandlers{Svc: &stubAuthAPI{ssoEnabled: true}}
		w := httptest.NewRecorder()
		h.SSOCallback(w, newRequest("?code=abc&state=tampered",
			&http.Cookie{Name: "sso_state", Value: "st-9"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_state", decodeBody(t, w)["error"])
	})

	t.Run("success redirects to stored path", func(t *testing.T) {
		svc := &stubAuthAPI{
			ssoEnabled: true,
			completeSSOFunc: func(_ context.Context, input service.CompleteSSOLoginInput) (domainauth.Session, error) {
				assert.Equal(t, "abc", input.Code)
				assert.Equal(t, "st-9", input.State)
				assert.Equal(t, "n-9", input.Nonce)
				return sessionFor(domainauth.RoleProducer), nil
			},
		}
		h := &AuthHandlers{Svc: svc}
		w := httptest.NewRecorder()
		h.SSOCallback(w, newRequest("?code=abc&state=st-9",
			&http.Cookie{Name: "sso_state", Value: "st-9"},
			&http.Cookie{Name: "sso_nonce", Value: "n-9"},
			&http.Cookie{Name: "post_login_redirect", Value: "/productor/productos"}))

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/productor/productos", w.Header().Get("Location"))

		cookie := findCookie(t, w, SessionCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "tok-123", cookie.Value)
	})

	t.Run("success without stored path lands by role", func(t *testing.T) {
		svc := &stubAuthAPI{
			ssoEnabled: true,
			completeSSOFunc: func(context.Context, service.CompleteSSOLoginInput) (domainauth.Session, error) {
				return sessionFor(domainauth.RoleAdministrator), nil
			},
		}
		h := &AuthHandlers{Svc: svc}
		w := httptest.NewRecorder()
		h.SSOCallback(w, newRequest("?code=abc&state=st-9",
			&http.Cookie{Name: "sso_state", Value: "st-9"},
			&http.Cookie{Name: "sso_nonce", Value: "n-9"}))

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	})
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		expected  string
	}{
		{"empty", "", "/"},
		{"relative path", "/admin/usuarios", "/admin/usuarios"},
		{"absolute URL", "https://evil.example.com/", "/"},
		{"protocol relative", "//evil.example.com", "/"},
		{"no leading slash", "admin", "/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, safeRedirectPath(tc.candidate))
		})
	}
}
