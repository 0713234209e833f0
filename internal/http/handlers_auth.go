package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/domain/model"
	"github.com/agroconecta/console/internal/service"
)

// AuthAPI defines the auth service operations the handlers use.
type AuthAPI interface {
	Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Session, error)
	Register(ctx context.Context, req model.RegisterRequest) error
	GetSession(ctx context.Context, token string) (domainauth.Session, error)
	Logout(ctx context.Context, token string) error
	SSOEnabled() bool
	BeginSSOLogin(ctx context.Context, redirectURL string) (*service.BeginSSOLoginResult, error)
	CompleteSSOLogin(ctx context.Context, input service.CompleteSSOLoginInput) (domainauth.Session, error)
}

// AuthHandlers provides the HTTP surface for login, logout, registration
// and session status.
type AuthHandlers struct {
	Svc          AuthAPI
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// loginResponse is what the SPA consumes after a successful login.
type loginResponse struct {
	Token      string              `json:"token"`
	User       domainauth.Identity `json:"usuario"`
	ExpiresAt  time.Time           `json:"expiresAt"`
	RedirectTo string              `json:"redirectTo"`
}

// Login handles password login.
// POST /api/auth/login {email, password}.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var creds domainauth.Credentials
	if !DecodeJSON(w, r, &creds) {
		return
	}

	session, err := h.Svc.Login(r.Context(), creds)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, session)
	WriteJSON(w, http.StatusOK, loginResponse{
		Token:      session.Token,
		User:       session.Identity,
		ExpiresAt:  session.ExpiresAt,
		RedirectTo: LandingPath(session.Identity.Role),
	})
}

// Register handles self-service signup.
// POST /api/auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.Register(r.Context(), req); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{
		"message":    "Registro exitoso",
		"redirectTo": LoginPath,
	})
}

// Logout invalidates the caller's session. Always succeeds from the SPA's
// point of view; the end state is signed out either way.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := h.Svc.Logout(r.Context(), token); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}
	h.clearCookie(w, r, SessionCookieName)

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":     "success",
		"redirectTo": LoginPath,
	})
}

// Status reports whether the caller holds a live session.
// GET /api/auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), token)
	if err != nil {
		// Invalid or expired; clear the cookie so the browser stops sending it.
		h.clearCookie(w, r, SessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"usuario":       session.Identity,
		"expiresAt":     session.ExpiresAt,
		"redirectTo":    LandingPath(session.Identity.Role),
	})
}

// SSOLogin initiates the redirect-based SSO flow.
// GET /auth/sso/login?redirect_uri=<optional>.
func (h *AuthHandlers) SSOLogin(w http.ResponseWriter, r *http.Request) {
	if !h.Svc.SSOEnabled() {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "sso_disabled",
			Err:     errors.New("SSO is not enabled"),
		})
		return
	}

	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	result, err := h.Svc.BeginSSOLogin(r.Context(), requestOrigin(r)+"/auth/sso/callback")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSSOCookies(w, r, ssoCookieParams{State: result.State, Nonce: result.Nonce, RedirectURI: redirectURI})
	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// SSOCallback completes the SSO flow.
// GET /auth/sso/callback?code=<code>&state=<state>.
func (h *AuthHandlers) SSOCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_parameters",
			Err:     errors.New("code and state are required"),
		})
		return
	}

	stateCookie, err := r.Cookie("sso_state")
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}
	nonceCookie, err := r.Cookie("sso_nonce")
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_nonce",
			Err:     errors.New("missing nonce"),
		})
		return
	}

	session, err := h.Svc.CompleteSSOLogin(r.Context(), service.CompleteSSOLoginInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, session)
	h.clearCookie(w, r, "sso_state")
	h.clearCookie(w, r, "sso_nonce")

	redirectURI := h.takePostLoginRedirect(w, r)
	if redirectURI == "/" {
		redirectURI = LandingPath(session.Identity.Role)
	}
	http.Redirect(w, r, redirectURI, http.StatusFound)
}

// sessionToken pulls the bearer token from the Authorization header or the
// session cookie.
func sessionToken(r *http.Request) string {
	if token := bearerToken(r); token != "" {
		return token
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.Token,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearCookie expires a cookie, mirroring the attributes used when setting
// it so browsers actually drop it.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// ssoCookieParams groups the values stored across the SSO redirect.
type ssoCookieParams struct {
	State       string
	Nonce       string
	RedirectURI string
}

func (h *AuthHandlers) setSSOCookies(w http.ResponseWriter, r *http.Request, p ssoCookieParams) {
	secure := isSecureRequest(r)
	const ssoCookieTTL = 600 // seconds; the hop to the IdP and back is short

	for name, value := range map[string]string{
		"sso_state":           p.State,
		"sso_nonce":           p.Nonce,
		"post_login_redirect": p.RedirectURI,
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			Domain:   h.CookieDomain,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   ssoCookieTTL,
		})
	}
}

// takePostLoginRedirect returns the stored post-login destination and clears
// its cookie.
func (h *AuthHandlers) takePostLoginRedirect(w http.ResponseWriter, r *http.Request) string {
	redirectURI := "/"
	if cookie, err := r.Cookie("post_login_redirect"); err == nil {
		redirectURI = safeRedirectPath(cookie.Value)
		h.clearCookie(w, r, "post_login_redirect")
	}
	return redirectURI
}

// safeRedirectPath allows only same-origin relative paths. Anything else
// collapses to "/".
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return candidate
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if isSecureRequest(r) {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
