package httpx

import (
	domainauth "github.com/agroconecta/console/internal/domain/auth"
)

// SPA paths the console redirects to. These are routes of the frontend, not
// of this server; they travel in JSON responses as redirectTo.
const (
	LoginPath        = "/auth/login"
	UnauthorizedPath = "/unauthorized"

	adminLandingPath    = "/admin/dashboard"
	producerLandingPath = "/productor/dashboard"
	defaultLandingPath  = "/dashboard"
)

// LandingPath returns the post-login destination for a role. Unknown roles
// land on the generic dashboard rather than failing.
func LandingPath(role domainauth.Role) string {
	switch role.Normalize() {
	case domainauth.RoleAdministrator:
		return adminLandingPath
	case domainauth.RoleProducer:
		return producerLandingPath
	default:
		return defaultLandingPath
	}
}
