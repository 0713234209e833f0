package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
)

// SessionCookieName is the cookie carrying the bearer token for browser
// clients. API clients send Authorization: Bearer instead; both reach the
// same sessions.
const SessionCookieName = "console_session"

// AuthServiceInterface defines the session operations the middleware and
// auth handlers need.
type AuthServiceInterface interface {
	GetSession(ctx context.Context, token string) (domainauth.Session, error)
	Logout(ctx context.Context, token string) error
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Guard returns a middleware enforcing a route requirement. Denials are JSON
// responses carrying a redirectTo for the SPA; allowed requests continue
// with the session in the context.
func Guard(authSvc AuthServiceInterface, req Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := getSessionFromRequest(r, authSvc)

			decision := Decide(req, session)
			if !decision.Allow {
				errCode := "authentication_required"
				message := "authentication required"
				if decision.Status == http.StatusForbidden {
					errCode = "insufficient_permissions"
					message = "insufficient permissions"
				}
				WriteError(w, ErrorParams{
					Code:       decision.Status,
					ErrCode:    errCode,
					Err:        errors.New(message),
					RedirectTo: decision.RedirectTo,
				})
				return
			}

			if session != nil {
				r = r.WithContext(SetSessionInContext(r.Context(), session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth is a Guard admitting any authenticated user.
func RequireAuth(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return Guard(authSvc, Requirement{RequiresAuth: true})
}

// RequireRole is a Guard admitting only the given roles.
func RequireRole(authSvc AuthServiceInterface, roles ...domainauth.Role) func(http.Handler) http.Handler {
	return Guard(authSvc, Requirement{RequiresAuth: true, Roles: roles})
}

// getSessionFromRequest resolves and validates the request's session, from
// the Authorization header first, then the session cookie. Returns nil when
// unauthenticated; the distinction between no token, unknown token and an
// expired session is the auth service's concern.
func getSessionFromRequest(r *http.Request, authSvc AuthServiceInterface) *domainauth.Session {
	token := bearerToken(r)
	if token == "" {
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return nil
	}

	session, err := authSvc.GetSession(r.Context(), token)
	if err != nil {
		return nil
	}
	return &session
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
