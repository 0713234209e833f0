package httpx

import (
	"net/http"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
)

// Requirement describes what a route demands from the caller. A zero
// Requirement allows anyone. RequiresAuth with an empty role list admits any
// authenticated user.
type Requirement struct {
	RequiresAuth bool
	Roles        []domainauth.Role
}

// Decision is the outcome of evaluating a Requirement against a session.
// RedirectTo tells the SPA where to send the user when access is denied:
// the login screen when there is no session, the unauthorized screen when
// the session's role does not suffice. The two are deliberately distinct.
type Decision struct {
	Allow      bool
	Status     int
	RedirectTo string
}

// Decide evaluates a route requirement against the current session. It is a
// pure function; the middleware applies its outcome.
func Decide(req Requirement, session *domainauth.Session) Decision {
	if !req.RequiresAuth {
		return Decision{Allow: true}
	}
	if session == nil {
		return Decision{Status: http.StatusUnauthorized, RedirectTo: LoginPath}
	}
	if len(req.Roles) == 0 {
		return Decision{Allow: true}
	}

	role := session.Identity.Role.Normalize()
	for _, allowed := range req.Roles {
		if role == allowed.Normalize() {
			return Decision{Allow: true}
		}
	}
	return Decision{Status: http.StatusForbidden, RedirectTo: UnauthorizedPath}
}
