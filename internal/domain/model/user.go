package model

import (
	"time"

	"github.com/agroconecta/console/internal/domain/auth"
)

// User is a platform account as served by the upstream API. It is the
// administration view of the same principal that auth.Identity represents
// for the logged-in session.
type User struct {
	ID        int64      `json:"id,omitempty"`
	Name      string     `json:"nombre"`
	Email     string     `json:"email"`
	Phone     string     `json:"telefono,omitempty"`
	Role      auth.Role  `json:"rol"`
	Active    bool       `json:"activo"`
	CreatedAt *time.Time `json:"fechaRegistro,omitempty"`
	UpdatedAt *time.Time `json:"fechaActualizacion,omitempty"`
}

// CreateUserRequest carries the fields needed to create an account.
type CreateUserRequest struct {
	Name     string    `json:"nombre"`
	Email    string    `json:"email"`
	Phone    string    `json:"telefono,omitempty"`
	Role     auth.Role `json:"rol"`
	Password string    `json:"password"`
}

// UpdateUserRequest carries the mutable account fields.
type UpdateUserRequest struct {
	Name  string `json:"nombre"`
	Phone string `json:"telefono,omitempty"`
}

// ChangePasswordRequest rotates an account's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// RegisterRequest is the self-service signup payload forwarded verbatim to
// the upstream API.
type RegisterRequest struct {
	Name            string    `json:"nombre"`
	Email           string    `json:"email"`
	Phone           string    `json:"telefono,omitempty"`
	Password        string    `json:"password"`
	ConfirmPassword string    `json:"confirmPassword"`
	Role            auth.Role `json:"rol"`
}

// UserSearch holds optional account search filters.
type UserSearch struct {
	Name   string
	Email  string
	Role   auth.Role
	Active *bool
}

// UserStatistics is the upstream aggregate for the users dashboard card.
type UserStatistics struct {
	TotalActive    int `json:"totalActiveUsers"`
	TotalProducers int `json:"totalProductors"`
	TotalAdmins    int `json:"totalAdministrators"`
	TotalInactive  int `json:"totalInactiveUsers"`
	Total          int `json:"totalUsers"`
}
