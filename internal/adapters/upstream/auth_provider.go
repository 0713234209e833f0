package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/domain/model"
	apperrors "github.com/agroconecta/console/internal/errors"
	"github.com/agroconecta/console/internal/ports"
)

// The login endpoint has shipped two payload shapes over time:
//
//	{token, usuario, expiresIn}                       (legacy)
//	{accessToken, refreshToken, user, expiresAt, ...} (current)
//
// Rather than hardcoding either, the provider extracts fields with JMESPath
// expressions whose defaults tolerate both. Deployments against a diverging
// backend can override the expressions in config.
const (
	DefaultTokenExpr     = "token || accessToken"
	DefaultIdentityExpr  = "usuario || user"
	DefaultExpiresInExpr = "expiresIn"
	DefaultExpiresAtExpr = "expiresAt"
)

// LoginMapping holds the JMESPath expressions used to read the login
// response. Zero values fall back to the defaults above.
type LoginMapping struct {
	TokenExpr     string
	IdentityExpr  string
	ExpiresInExpr string // seconds of validity, relative
	ExpiresAtExpr string // absolute expiry, RFC3339 or epoch milliseconds
}

func (m LoginMapping) withDefaults() LoginMapping {
	if m.TokenExpr == "" {
		m.TokenExpr = DefaultTokenExpr
	}
	if m.IdentityExpr == "" {
		m.IdentityExpr = DefaultIdentityExpr
	}
	if m.ExpiresInExpr == "" {
		m.ExpiresInExpr = DefaultExpiresInExpr
	}
	if m.ExpiresAtExpr == "" {
		m.ExpiresAtExpr = DefaultExpiresAtExpr
	}
	return m
}

// Validate compiles every expression and reports the first failure.
func (m LoginMapping) Validate() error {
	m = m.withDefaults()
	for name, expr := range map[string]string{
		"token":      m.TokenExpr,
		"identity":   m.IdentityExpr,
		"expires_in": m.ExpiresInExpr,
		"expires_at": m.ExpiresAtExpr,
	} {
		if _, err := jmespath.Compile(expr); err != nil {
			return fmt.Errorf("login mapping %s: %w", name, err)
		}
	}
	return nil
}

// AuthProvider implements ports.AuthProvider against the marketplace API.
type AuthProvider struct {
	client  *Client
	mapping LoginMapping
	// now is injectable for tests.
	now func() time.Time
}

var _ ports.AuthProvider = (*AuthProvider)(nil)

// NewAuthProvider creates a password login provider backed by the
// marketplace API.
func NewAuthProvider(client *Client, mapping LoginMapping) (*AuthProvider, error) {
	mapping = mapping.withDefaults()
	if err := mapping.Validate(); err != nil {
		return nil, err
	}
	return &AuthProvider{client: client, mapping: mapping, now: time.Now}, nil
}

// Login authenticates credentials against POST /api/auth/login and maps the
// response, whichever of the two known shapes it has, into a Grant.
func (p *AuthProvider) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Grant, error) {
	var payload map[string]any
	err := p.client.do(ctx, call{
		method:   "POST",
		path:     "/api/auth/login",
		body:     creds,
		out:      &payload,
		skipAuth: true,
	})
	if err != nil {
		// 401 already carries the user-displayable message from upstream.
		if apperrors.IsCode(err, apperrors.ErrCodeAuthentication) {
			return domainauth.Grant{}, err
		}
		return domainauth.Grant{}, apperrors.AuthenticationFailed("login failed", err)
	}

	grant, mapErr := p.mapLoginPayload(payload)
	if mapErr != nil {
		return domainauth.Grant{}, apperrors.AuthenticationFailed("unexpected login response", mapErr)
	}
	return grant, nil
}

// Register forwards a signup to POST /api/auth/register.
func (p *AuthProvider) Register(ctx context.Context, req model.RegisterRequest) error {
	return p.client.do(ctx, call{
		method:   "POST",
		path:     "/api/auth/register",
		body:     req,
		skipAuth: true,
	})
}

func (p *AuthProvider) mapLoginPayload(payload map[string]any) (domainauth.Grant, error) {
	token, err := p.extractString(p.mapping.TokenExpr, payload)
	if err != nil || token == "" {
		return domainauth.Grant{}, fmt.Errorf("no token in login response")
	}

	identity, err := p.extractIdentity(payload)
	if err != nil {
		return domainauth.Grant{}, err
	}

	expiresAt, err := p.extractExpiry(payload)
	if err != nil {
		return domainauth.Grant{}, err
	}

	return domainauth.Grant{Token: token, Identity: identity, ExpiresAt: expiresAt}, nil
}

func (p *AuthProvider) extractString(expr string, payload map[string]any) (string, error) {
	v, err := jmespath.Search(expr, payload)
	if err != nil {
		return "", err
	}
	s, _ := v.(string)
	return s, nil
}

func (p *AuthProvider) extractIdentity(payload map[string]any) (domainauth.Identity, error) {
	v, err := jmespath.Search(p.mapping.IdentityExpr, payload)
	if err != nil {
		return domainauth.Identity{}, err
	}
	if v == nil {
		return domainauth.Identity{}, fmt.Errorf("no identity in login response")
	}

	// Round-trip through JSON so the identity struct tags do the field
	// mapping; the payload shape is whatever upstream sent.
	raw, err := json.Marshal(v)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("re-encode identity: %w", err)
	}
	var identity domainauth.Identity
	if unmarshalErr := json.Unmarshal(raw, &identity); unmarshalErr != nil {
		return domainauth.Identity{}, fmt.Errorf("decode identity: %w", unmarshalErr)
	}
	if identity.IsZero() {
		return domainauth.Identity{}, fmt.Errorf("empty identity in login response")
	}
	return identity, nil
}

// extractExpiry computes the absolute expiry: a relative expiresIn wins when
// present, otherwise an absolute expiresAt is parsed.
func (p *AuthProvider) extractExpiry(payload map[string]any) (time.Time, error) {
	if v, err := jmespath.Search(p.mapping.ExpiresInExpr, payload); err == nil && v != nil {
		if seconds, ok := toFloat(v); ok && seconds > 0 {
			return p.now().Add(time.Duration(seconds * float64(time.Second))), nil
		}
	}

	v, err := jmespath.Search(p.mapping.ExpiresAtExpr, payload)
	if err != nil || v == nil {
		return time.Time{}, fmt.Errorf("no expiry in login response")
	}

	switch value := v.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
			if ts, parseErr := time.Parse(layout, value); parseErr == nil {
				return ts, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable expiry %q", value)
	default:
		if millis, ok := toFloat(v); ok && millis > 0 {
			return time.UnixMilli(int64(millis)), nil
		}
		return time.Time{}, fmt.Errorf("unparseable expiry %v", v)
	}
}

// toFloat normalizes JSON number representations.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, false
		}
		var f float64
		if _, err := fmt.Sscanf(trimmed, "%g", &f); err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
