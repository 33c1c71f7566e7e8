package access

import (
	"testing"

	"haki/models"

	"github.com/stretchr/testify/assert"
)

func TestHasPermissionPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy RoutePolicy
		role   string
		want   bool
	}{
		{"public allows guest", Public(), models.RoleGuest, true},
		{"public allows admin", Public(), models.RoleAdmin, true},
		{"guest-allowed allows guest", GuestAllowed(), models.RoleGuest, true},
		{"guest-allowed allows user", GuestAllowed(), models.RoleUser, true},
		{"required role exact match", RequiredRole(models.RoleLawyer), models.RoleLawyer, true},
		{"required role is not hierarchical", RequiredRole(models.RoleLawyer), models.RoleSuperAdmin, false},
		{"required role denies guest", RequiredRole(models.RoleUser), models.RoleGuest, false},
		{"allowed roles membership", AllowedRoles(models.RoleAdmin, models.RoleSuperAdmin), models.RoleSuperAdmin, true},
		{"allowed roles denies outsider", AllowedRoles(models.RoleAdmin, models.RoleSuperAdmin), models.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := RouteEntry{PathPrefix: "/x", Policy: tt.policy}
			assert.Equal(t, tt.want, HasPermission(entry, tt.role))
		})
	}
}

func TestHasPermissionIsIdempotent(t *testing.T) {
	entry := RouteEntry{PathPrefix: "/admin", Policy: AllowedRoles(models.RoleAdmin)}
	first := HasPermission(entry, models.RoleAdmin)
	second := HasPermission(entry, models.RoleAdmin)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestUnmatchedPathFallsBackToAuthenticatedDefault(t *testing.T) {
	table := DefaultRouteTable()

	assert.False(t, Allowed(table, "/no-such-route", models.RoleGuest),
		"guests must be denied on unmatched paths")
	assert.True(t, Allowed(table, "/no-such-route", models.RoleUser))
	assert.True(t, Allowed(table, "/no-such-route", models.RoleAdmin))
}

func TestLongestPrefixWins(t *testing.T) {
	table := DefaultRouteTable()

	// /lawyer is lawyer-only, but /lawyer/acceptance admits applicants who
	// still carry the registered_user role.
	assert.False(t, Allowed(table, "/lawyer", models.RoleUser))
	assert.True(t, Allowed(table, "/lawyer/acceptance", models.RoleUser))
	assert.True(t, Allowed(table, "/lawyer/acceptance", models.RoleLawyer))
}

func TestAccessScenarios(t *testing.T) {
	table := DefaultRouteTable()

	// Guest on /home is denied.
	assert.False(t, Allowed(table, "/home", models.RoleGuest))
	// Admin on /admin is allowed.
	assert.True(t, Allowed(table, "/admin", models.RoleAdmin))
	// Registered user on /lawyer is denied.
	assert.False(t, Allowed(table, "/lawyer", models.RoleUser))
	// Public glossary is open to everyone.
	assert.True(t, Allowed(table, "/glossary/habeas-corpus", models.RoleGuest))
}
