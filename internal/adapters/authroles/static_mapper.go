// Package authroles maps IdP groups to marketplace roles for SSO logins.
package authroles

import (
	domainauth "github.com/agroconecta/console/internal/domain/auth"

	"github.com/agroconecta/console/internal/ports"
)

// StaticRoleMapper maps groups by simple string membership. Members of the
// admin group become administrators; everyone else lands as a producer, the
// least privileged marketplace role.
type StaticRoleMapper struct {
	AdminGroup string
}

var _ ports.RoleMapper = StaticRoleMapper{}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdministrator
		}
	}
	return domainauth.RoleProducer
}
