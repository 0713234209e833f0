package httpx

import (
	"context"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
)

// The session travels in the context under the key owned by the domain auth
// package, so the upstream client can read the bearer token without
// depending on this package.

// SetSessionInContext returns a child context carrying the session.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	return domainauth.ContextWithSession(ctx, session)
}

// GetUserSessionFromContext returns the session from the context and
// whether one is present.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	return domainauth.SessionFromContext(ctx)
}

// IsAdminRequest reports whether the context carries an administrator
// session.
func IsAdminRequest(ctx context.Context) bool {
	session, ok := domainauth.SessionFromContext(ctx)
	return ok && session.Identity.Role.IsAdmin()
}
