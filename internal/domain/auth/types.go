package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and wire transport.
// The marketplace API still emits the legacy aliases on old accounts,
// so they remain part of the closed set.
type Role string

const (
	RoleAdministrator Role = "ADMINISTRADOR"
	RoleProducer      Role = "PRODUCTOR"

	// Legacy aliases still present on accounts created before the role rename.
	RoleLegacyAdmin  Role = "ADMIN"
	RoleLegacyClient Role = "CLIENTE"
)

// Normalize folds legacy role aliases into their current equivalents.
// Unknown values are returned unchanged; routing falls back to the
// default landing route for those.
func (r Role) Normalize() Role {
	switch r {
	case RoleLegacyAdmin:
		return RoleAdministrator
	case RoleLegacyClient:
		return RoleProducer
	default:
		return r
	}
}

// IsAdmin reports whether the role grants administrator privileges.
func (r Role) IsAdmin() bool { return r.Normalize() == RoleAdministrator }

// Identity represents the authenticated principal returned by the
// marketplace API. Adapters map provider-specific payloads into this shape.
type Identity struct {
	ID     int64  `json:"id"`
	Name   string `json:"nombre"`
	Email  string `json:"email"`
	Phone  string `json:"telefono,omitempty"`
	Role   Role   `json:"rol"`
	Active bool   `json:"activo"`
}

// IsZero reports whether the identity carries no principal at all.
func (i Identity) IsZero() bool { return i.ID == 0 && i.Email == "" }

// Credentials are the inputs to a password login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the record we persist for an authenticated user.
// Token is the opaque bearer credential issued by the upstream API; it is
// also the key under which the session is stored.
type Session struct {
	Token     string    `json:"token"`
	Identity  Identity  `json:"identity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the session is usable at the given instant.
// A session is valid iff a token is present and now is strictly before
// the expiry. Expired or tokenless sessions are indistinguishable from
// "never logged in".
func (s Session) Valid(now time.Time) bool {
	return s.Token != "" && now.Before(s.ExpiresAt)
}

// Grant is what an auth provider returns on successful login: the bearer
// token, the principal it belongs to, and the absolute expiry.
type Grant struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}
