package access

import (
	"haki/models"
)

// HasPermission reports whether the role may access the route entry.
// Pure and total: every policy kind and role value yields a decision.
func HasPermission(entry RouteEntry, role string) bool {
	switch entry.Policy.Kind {
	case PolicyPublic:
		return true
	case PolicyGuestAllowed:
		return true
	case PolicyRequiredRole:
		return role == entry.Policy.Role
	case PolicyAllowedRoles:
		for _, r := range entry.Policy.Roles {
			if role == r {
				return true
			}
		}
		return false
	default:
		return role != models.RoleGuest
	}
}

// Allowed resolves the path against the table and applies HasPermission.
// An unmatched path never errors; it falls back to the conservative
// "authenticated, non-guest" default.
func Allowed(table *RouteTable, path, role string) bool {
	entry, ok := table.Match(path)
	if !ok {
		return role != models.RoleGuest
	}
	return HasPermission(entry, role)
}
