package access

import (
	"sort"
	"strings"

	"haki/models"
)

// RouteTable maps path prefixes to access policies. It is built once at
// startup and never mutated afterwards.
type RouteTable struct {
	entries []RouteEntry // sorted longest prefix first
}

// NewRouteTable builds a table from the given entries. Matching is
// longest-prefix-first, so ordering of the input does not matter.
func NewRouteTable(entries []RouteEntry) *RouteTable {
	sorted := make([]RouteEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].PathPrefix) > len(sorted[j].PathPrefix)
	})
	return &RouteTable{entries: sorted}
}

// DefaultRouteTable declares the client's navigation surface.
func DefaultRouteTable() *RouteTable {
	return NewRouteTable([]RouteEntry{
		{PathPrefix: PathLogin, Policy: GuestAllowed()},
		{PathPrefix: "/signup", Policy: GuestAllowed()},
		{PathPrefix: PathRoleSelection, Policy: GuestAllowed()},
		{PathPrefix: "/glossary", Policy: Public()},
		{PathPrefix: "/directory", Policy: Public()},
		{PathPrefix: PathHome, Policy: AllowedRoles(models.RoleUser, models.RoleLawyer, models.RoleAdmin, models.RoleSuperAdmin)},
		{PathPrefix: "/forum", Policy: AllowedRoles(models.RoleUser, models.RoleLawyer, models.RoleAdmin, models.RoleSuperAdmin)},
		{PathPrefix: "/chat", Policy: AllowedRoles(models.RoleUser, models.RoleLawyer)},
		{PathPrefix: "/consultations", Policy: AllowedRoles(models.RoleUser, models.RoleLawyer)},
		{PathPrefix: PathApplicationStatus, Policy: RequiredRole(models.RoleUser)},
		{PathPrefix: PathLawyerAcceptance, Policy: AllowedRoles(models.RoleUser, models.RoleLawyer)},
		{PathPrefix: PathLawyerHome, Policy: RequiredRole(models.RoleLawyer)},
		{PathPrefix: PathAdminHome, Policy: AllowedRoles(models.RoleAdmin, models.RoleSuperAdmin)},
	})
}

// Match returns the entry whose prefix matches the path, longest first.
// The second return value reports whether any entry matched; callers fall
// back to the conservative authenticated-only default when it is false.
func (t *RouteTable) Match(path string) (RouteEntry, bool) {
	for _, e := range t.entries {
		if strings.HasPrefix(path, e.PathPrefix) {
			return e, true
		}
	}
	return RouteEntry{}, false
}
