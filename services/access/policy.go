// Package access decides, for every navigation event, whether the current
// session may see a path and where it lands otherwise. The resolver and the
// redirect policy are pure functions over an immutable session snapshot; the
// gate wires them to the live session and application-status lookups.
package access

import (
	"haki/models"
)

// Canonical landing paths.
const (
	PathLogin             = "/login"
	PathRoleSelection     = "/role-selection"
	PathHome              = "/home"
	PathLawyerHome        = "/lawyer"
	PathAdminHome         = "/admin"
	PathLawyerAcceptance  = "/lawyer/acceptance"
	PathApplicationStatus = "/application-status"
)

// PolicyKind enumerates the supported route access policies.
type PolicyKind int

const (
	// PolicyPublic allows everyone, including guests.
	PolicyPublic PolicyKind = iota
	// PolicyRequiredRole allows exactly one role. No hierarchy.
	PolicyRequiredRole
	// PolicyAllowedRoles allows any role in the set.
	PolicyAllowedRoles
	// PolicyGuestAllowed allows guests as well as any authenticated role.
	PolicyGuestAllowed
)

// RoutePolicy is the declared access requirement for a path prefix.
type RoutePolicy struct {
	Kind  PolicyKind
	Role  string
	Roles []string
}

// RouteEntry binds a path prefix to its access policy.
type RouteEntry struct {
	PathPrefix string
	Policy     RoutePolicy
}

// SessionSnapshot is the immutable view of a session used for one navigation
// decision. A fresh snapshot is taken per evaluation; nothing here is shared
// or mutated afterwards.
type SessionSnapshot struct {
	UserID            string
	Role              string
	IsVerified        bool
	PendingLawyer     bool
	ApplicationStatus string
}

// Guest returns the snapshot used for unauthenticated (or failed) sessions.
func Guest() SessionSnapshot {
	return SessionSnapshot{Role: models.RoleGuest}
}

// Public constructs a public policy.
func Public() RoutePolicy {
	return RoutePolicy{Kind: PolicyPublic}
}

// RequiredRole constructs an exact-role policy.
func RequiredRole(role string) RoutePolicy {
	return RoutePolicy{Kind: PolicyRequiredRole, Role: role}
}

// AllowedRoles constructs a role-set policy.
func AllowedRoles(roles ...string) RoutePolicy {
	return RoutePolicy{Kind: PolicyAllowedRoles, Roles: roles}
}

// GuestAllowed constructs a policy open to guests and authenticated users alike.
func GuestAllowed() RoutePolicy {
	return RoutePolicy{Kind: PolicyGuestAllowed}
}
