// Package mockauth implements password login against a fixed in-memory user
// list, for local development without the marketplace API.
package mockauth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/domain/model"
	apperrors "github.com/agroconecta/console/internal/errors"
	"github.com/agroconecta/console/internal/ports"
)

const (
	// Password shared by every seeded user.
	Password = "123456"

	sessionTTL = time.Hour
)

// seedUsers mirrors the accounts the marketplace seeds in development.
var seedUsers = []domainauth.Identity{
	{ID: 1, Name: "Admin AgroConecta", Email: "admin@agroconecta.com", Role: domainauth.RoleAdministrator, Active: true},
	{ID: 2, Name: "Juan Pérez", Email: "productor@gmail.com", Phone: "3001234567", Role: domainauth.RoleProducer, Active: true},
	{ID: 3, Name: "Usuario de Prueba", Email: "test@test.com", Role: domainauth.RoleProducer, Active: true},
}

// Provider is an in-memory ports.AuthProvider. Registered users live only
// for the process lifetime.
type Provider struct {
	mu        sync.Mutex
	users     map[string]domainauth.Identity // keyed by lowercase email
	passwords map[string]string
	nextID    int64
	now       func() time.Time
}

var _ ports.AuthProvider = (*Provider)(nil)

// NewProvider creates a provider seeded with the development accounts.
func NewProvider() *Provider {
	users := make(map[string]domainauth.Identity, len(seedUsers))
	passwords := make(map[string]string, len(seedUsers))
	var maxID int64
	for _, u := range seedUsers {
		key := strings.ToLower(u.Email)
		users[key] = u
		passwords[key] = Password
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return &Provider{users: users, passwords: passwords, nextID: maxID + 1, now: time.Now}
}

// Login checks the credentials against the known users. Seeded accounts
// share the development password.
func (p *Provider) Login(_ context.Context, creds domainauth.Credentials) (domainauth.Grant, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(creds.Email))
	identity, ok := p.users[key]
	if !ok || creds.Password != p.passwords[key] {
		return domainauth.Grant{}, apperrors.AuthenticationFailed("Email o contraseña incorrectos", nil)
	}
	if !identity.Active {
		return domainauth.Grant{}, apperrors.AuthenticationFailed("La cuenta está desactivada", nil)
	}

	return domainauth.Grant{
		Token:     "mock-" + uuid.NewString(),
		Identity:  identity,
		ExpiresAt: p.now().Add(sessionTTL),
	}, nil
}

// Register adds a user to the in-memory list. Duplicate emails conflict.
func (p *Provider) Register(_ context.Context, req model.RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return apperrors.Validation("", "email y contraseña son obligatorios")
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		return apperrors.Validation("confirmPassword", "las contraseñas no coinciden")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.users[email]; exists {
		return apperrors.Conflict(fmt.Sprintf("el email %s ya está registrado", req.Email))
	}

	role := req.Role.Normalize()
	if role == "" {
		role = domainauth.RoleProducer
	}
	p.users[email] = domainauth.Identity{
		ID:     p.nextID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   role,
		Active: true,
	}
	p.passwords[email] = req.Password
	p.nextID++
	return nil
}
