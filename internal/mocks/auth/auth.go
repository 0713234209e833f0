// Package auth contains hand-written test doubles for the auth ports.
// Session storage in tests uses internal/adapters/memstore directly; only
// the providers need doubles here.
package auth

import (
	"context"
	"fmt"
	"time"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/domain/model"
	apperrors "github.com/agroconecta/console/internal/errors"
	"github.com/agroconecta/console/internal/ports"
)

var (
	_ ports.AuthProvider = (*MockAuthProvider)(nil)
	_ ports.SSOProvider  = (*MockSSOProvider)(nil)
	_ ports.RoleMapper   = (RoleMapperFunc)(nil)
)

// MockAuthProvider is a func-based double for password login. With no
// funcs set it grants a deterministic producer session for any credentials.
type MockAuthProvider struct {
	LoginFunc    func(ctx context.Context, creds domainauth.Credentials) (domainauth.Grant, error)
	RegisterFunc func(ctx context.Context, req model.RegisterRequest) error

	// DefaultGrant is returned when LoginFunc is nil and its token is set.
	DefaultGrant domainauth.Grant

	LoginCalls    int
	RegisterCalls int
}

// NewMockAuthProvider returns a provider that grants a one-hour producer
// session for any credentials.
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		DefaultGrant: domainauth.Grant{
			Token: "test-token",
			Identity: domainauth.Identity{
				ID:     2,
				Name:   "Juan Pérez",
				Email:  "productor@gmail.com",
				Role:   domainauth.RoleProducer,
				Active: true,
			},
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func (m *MockAuthProvider) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Grant, error) {
	m.LoginCalls++
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	if m.DefaultGrant.Token == "" {
		return domainauth.Grant{}, apperrors.AuthenticationFailed("no grant configured", nil)
	}
	return m.DefaultGrant, nil
}

func (m *MockAuthProvider) Register(ctx context.Context, req model.RegisterRequest) error {
	m.RegisterCalls++
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil
}

// MockSSOProvider simulates an IdP with deterministic state and nonce.
type MockSSOProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (ports.SSOIdentity, error)

	AuthURL         string
	DefaultIdentity ports.SSOIdentity

	beginCalls int
}

// NewMockSSOProvider returns a provider that resolves a producer-group
// identity for any exchange.
func NewMockSSOProvider() *MockSSOProvider {
	return &MockSSOProvider{
		AuthURL: "https://mock-idp/auth",
		DefaultIdentity: ports.SSOIdentity{
			Subject: "sso-user-1",
			Name:    "Usuario SSO",
			Email:   "sso.user@example.com",
			Groups:  []string{"everyone"},
		},
	}
}

func (m *MockSSOProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}
	m.beginCalls++
	return m.AuthURL, fmt.Sprintf("state-%d", m.beginCalls), fmt.Sprintf("nonce-%d", m.beginCalls), nil
}

func (m *MockSSOProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (ports.SSOIdentity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}
	identity := m.DefaultIdentity
	identity.ExpiresAt = time.Now().Add(time.Hour).UnixMilli()
	return identity, nil
}

// RoleMapperFunc adapts a function to ports.RoleMapper.
type RoleMapperFunc func(groups []string) domainauth.Role

func (f RoleMapperFunc) Map(groups []string) domainauth.Role { return f(groups) }
