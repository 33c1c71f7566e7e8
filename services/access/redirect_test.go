package access

import (
	"testing"

	"haki/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveLandingByRole(t *testing.T) {
	tests := []struct {
		name string
		snap SessionSnapshot
		want string
	}{
		{"lawyer lands on lawyer home", SessionSnapshot{Role: models.RoleLawyer}, PathLawyerHome},
		{"admin lands on admin home", SessionSnapshot{Role: models.RoleAdmin}, PathAdminHome},
		{"superadmin lands on admin home", SessionSnapshot{Role: models.RoleSuperAdmin}, PathAdminHome},
		{"registered user lands on home", SessionSnapshot{Role: models.RoleUser}, PathHome},
		{"verified guest lands on role selection", SessionSnapshot{Role: models.RoleGuest, IsVerified: true}, PathRoleSelection},
		{"unverified guest lands on login", SessionSnapshot{Role: models.RoleGuest}, PathLogin},
		{"unknown role lands on home", SessionSnapshot{Role: "moderator"}, PathHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLanding(tt.snap))
		})
	}
}

func TestResolveLandingPendingLawyer(t *testing.T) {
	accepted := SessionSnapshot{
		Role:              models.RoleLawyer,
		PendingLawyer:     true,
		ApplicationStatus: models.ApplicationAccepted,
	}
	assert.Equal(t, PathLawyerAcceptance, ResolveLanding(accepted),
		"accepted applicants get the acceptance page, not the generic lawyer home")

	for _, status := range []string{
		models.ApplicationPending,
		models.ApplicationResubmission,
		models.ApplicationRejected,
		"", // status not yet known
	} {
		snap := SessionSnapshot{
			Role:              models.RoleUser,
			PendingLawyer:     true,
			ApplicationStatus: status,
		}
		assert.Equal(t, PathApplicationStatus, ResolveLanding(snap),
			"status %q must land on the application-status page", status)
	}
}

// Every landing path must itself pass the resolver for that role, otherwise
// the client would redirect forever.
func TestNoRedirectLoop(t *testing.T) {
	table := DefaultRouteTable()

	roles := []string{
		models.RoleGuest,
		models.RoleUser,
		models.RoleLawyer,
		models.RoleAdmin,
		models.RoleSuperAdmin,
	}

	for _, role := range roles {
		for _, verified := range []bool{false, true} {
			snap := SessionSnapshot{Role: role, IsVerified: verified}
			landing := ResolveLanding(snap)
			assert.True(t, Allowed(table, landing, role),
				"role %s (verified=%v) landing %s must be accessible", role, verified, landing)
		}
	}
}

func TestPendingLawyerLandingIsAccessible(t *testing.T) {
	table := DefaultRouteTable()

	// Pending applicants keep the registered_user role until accepted.
	snap := SessionSnapshot{Role: models.RoleUser, PendingLawyer: true, ApplicationStatus: models.ApplicationRejected}
	landing := ResolveLanding(snap)
	assert.True(t, Allowed(table, landing, snap.Role))
}
