package auth

import "context"

// sessionKey is an unexported context key type to avoid collisions across
// packages. All middleware and adapters use this single carrier, which is
// how the bearer token travels from the gate to outbound upstream calls.
type sessionKey struct{}

// ContextWithSession returns a child context carrying the given session.
// A nil session leaves ctx unchanged.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	if sess == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session from ctx and whether one is present.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	if sess, ok := ctx.Value(sessionKey{}).(*Session); ok && sess != nil {
		return sess, true
	}
	return nil, false
}

// TokenFromContext returns the bearer token of the context's session, or ""
// when the context is unauthenticated.
func TokenFromContext(ctx context.Context) string {
	if sess, ok := SessionFromContext(ctx); ok {
		return sess.Token
	}
	return ""
}
