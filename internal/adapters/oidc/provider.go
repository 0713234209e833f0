// Package oidc implements redirect-based SSO login against an OpenID Connect
// identity provider. It is optional; password login works without it.
package oidc

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/agroconecta/console/internal/ports"
)

// Provider implements ports.SSOProvider on top of go-oidc and oauth2.
type Provider struct {
	config       *oauth2.Config
	oidcProvider *gooidc.Provider
	verifier     *gooidc.IDTokenVerifier
}

var _ ports.SSOProvider = (*Provider)(nil)

// ProviderConfig holds the IdP connection settings.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// Scope is a space-separated scope list, e.g. "openid profile email".
	Scope string
	// DiscoveryURL is the issuer or its .well-known discovery document URL.
	DiscoveryURL string
	HTTPClient   *http.Client
}

// NewProvider performs discovery against the IdP and returns a ready
// provider. Discovery happens once, at construction.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("oidc: client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("oidc: client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("oidc: redirect URL is required")
	}
	if cfg.DiscoveryURL == "" {
		return nil, errors.New("oidc: discovery URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(cfg.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc: discovery: %w", err)
	}

	scopes := strings.Fields(cfg.Scope)
	if len(scopes) == 0 {
		scopes = []string{gooidc.ScopeOpenID, "profile", "email"}
	}

	return &Provider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     op.Endpoint(),
		},
		oidcProvider: op,
		verifier:     op.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// Begin returns the IdP authorization URL plus the state and nonce the
// caller must hold on to for the exchange.
func (p *Provider) Begin(_ context.Context, in ports.BeginInput) (string, string, string, error) {
	if in.RedirectURL == "" {
		return "", "", "", errors.New("oidc: redirect URL is required")
	}

	state, err := randomToken(32)
	if err != nil {
		return "", "", "", fmt.Errorf("oidc: generate state: %w", err)
	}
	nonce, err := randomToken(32)
	if err != nil {
		return "", "", "", fmt.Errorf("oidc: generate nonce: %w", err)
	}

	authURL := p.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
	return authURL, state, nonce, nil
}

// idTokenClaims is the subset of standard claims the console reads.
type idTokenClaims struct {
	Sub        string   `json:"sub"`
	Name       string   `json:"name"`
	GivenName  string   `json:"given_name"`
	FamilyName string   `json:"family_name"`
	Email      string   `json:"email"`
	Groups     []string `json:"groups"`
	Nonce      string   `json:"nonce"`
}

// Exchange redeems the authorization code, verifies the ID token and nonce,
// and returns the IdP identity.
func (p *Provider) Exchange(ctx context.Context, in ports.ExchangeInput) (ports.SSOIdentity, error) {
	if in.Code == "" {
		return ports.SSOIdentity{}, errors.New("oidc: authorization code is required")
	}
	if in.Nonce == "" {
		return ports.SSOIdentity{}, errors.New("oidc: nonce is required")
	}

	token, err := p.config.Exchange(ctx, in.Code)
	if err != nil {
		return ports.SSOIdentity{}, fmt.Errorf("oidc: exchange code: %w", err)
	}

	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return ports.SSOIdentity{}, errors.New("oidc: missing id_token in token response")
	}
	idToken, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return ports.SSOIdentity{}, fmt.Errorf("oidc: verify id_token: %w", err)
	}

	var claims idTokenClaims
	if claimsErr := idToken.Claims(&claims); claimsErr != nil {
		return ports.SSOIdentity{}, fmt.Errorf("oidc: parse claims: %w", claimsErr)
	}
	if claims.Nonce != in.Nonce {
		return ports.SSOIdentity{}, errors.New("oidc: nonce mismatch")
	}

	identity := identityFromClaims(claims)
	if identity.Email == "" || identity.Subject == "" {
		if fillErr := p.fillFromUserInfo(ctx, token.AccessToken, &identity); fillErr != nil {
			return ports.SSOIdentity{}, fmt.Errorf("oidc: user info: %w", fillErr)
		}
	}

	expiresAt := time.Now().Add(time.Hour)
	if !token.Expiry.IsZero() {
		expiresAt = token.Expiry
	}
	identity.ExpiresAt = expiresAt.UnixMilli()
	return identity, nil
}

func identityFromClaims(c idTokenClaims) ports.SSOIdentity {
	name := c.Name
	if name == "" {
		name = strings.TrimSpace(c.GivenName + " " + c.FamilyName)
	}
	return ports.SSOIdentity{
		Subject: c.Sub,
		Name:    name,
		Email:   c.Email,
		Groups:  c.Groups,
	}
}

// fillFromUserInfo backfills fields the ID token did not carry.
func (p *Provider) fillFromUserInfo(ctx context.Context, accessToken string, identity *ports.SSOIdentity) error {
	ui, err := p.oidcProvider.UserInfo(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	if err != nil {
		return err
	}
	var claims idTokenClaims
	if claimsErr := ui.Claims(&claims); claimsErr != nil {
		return claimsErr
	}
	if identity.Subject == "" {
		identity.Subject = claims.Sub
	}
	if identity.Email == "" {
		identity.Email = claims.Email
	}
	if identity.Name == "" {
		identity.Name = identityFromClaims(claims).Name
	}
	if len(identity.Groups) == 0 {
		identity.Groups = claims.Groups
	}
	return nil
}

// randomToken returns a URL-safe random string of exactly length characters.
func randomToken(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	nBytes := (length*3 + 3) / 4
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	if len(s) < length {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:length], nil
}
