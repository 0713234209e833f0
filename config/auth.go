package config

import (
	"fmt"
	"strings"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeUpstream delegates logins to the marketplace API.
	AuthModeUpstream AuthMode = "upstream"
	// AuthModeMock uses the seeded in-process provider (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "upstream", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: upstream, mock)", v)
	}
}

// SessionStoreKind selects the session store backend.
type SessionStoreKind string

const (
	// SessionStoreRedis keeps sessions in Redis (production default).
	SessionStoreRedis SessionStoreKind = "redis"
	// SessionStorePostgres keeps sessions in a Postgres table.
	SessionStorePostgres SessionStoreKind = "postgres"
	// SessionStoreMemory keeps sessions in process memory (dev/tests).
	SessionStoreMemory SessionStoreKind = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreKind.
func (k *SessionStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "redis", "postgres", "memory":
		*k = SessionStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionStoreKind: %q (valid options: redis, postgres, memory)", v)
	}
}

// SSOConfig contains the optional OIDC single sign-on configuration.
// SSO is enabled when DiscoveryURL is set.
type SSOConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"agroconecta-console"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/sso/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// Enabled reports whether SSO is configured.
func (s SSOConfig) Enabled() bool { return s.DiscoveryURL != "" }

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"upstream"`

	// SessionStore selects where sessions are persisted.
	SessionStore SessionStoreKind `env:"SESSION_STORE" envDefault:"redis"`

	// SSO configuration (optional; enabled when SSO_DISCOVERY_URL is set).
	SSO SSOConfig `envPrefix:"SSO_"`

	// AdminGroup is the IdP group whose members get the administrator
	// role on SSO logins. Everyone else becomes a producer.
	AdminGroup string `env:"SSO_ADMIN_GROUP" envDefault:"agroconecta-admins"`
}

// Sanitize applies guardrails to auth configuration. Development mode
// defaults to mock auth with in-memory sessions so the console runs
// without any backing services.
func (a *AuthConfig) Sanitize(isDev bool) {
	if isDev && a.Mode == "" {
		a.Mode = AuthModeMock
	}
	if a.Mode == AuthModeMock && a.SessionStore == SessionStoreRedis && isDev {
		a.SessionStore = SessionStoreMemory
	}
}
