package access

import (
	"haki/models"
)

// ResolveLanding computes the single canonical landing path for a session.
// Pending-lawyer state wins over role: an applicant whose application was
// accepted lands on the acceptance page; every other application state
// (pending, resubmission, rejected, or not yet known) lands on the
// application-status page, which renders the state-specific view itself.
func ResolveLanding(snap SessionSnapshot) string {
	if snap.PendingLawyer {
		if snap.ApplicationStatus == models.ApplicationAccepted {
			return PathLawyerAcceptance
		}
		return PathApplicationStatus
	}

	switch snap.Role {
	case models.RoleLawyer:
		return PathLawyerHome
	case models.RoleAdmin, models.RoleSuperAdmin:
		return PathAdminHome
	case models.RoleUser:
		return PathHome
	case models.RoleGuest:
		if snap.IsVerified {
			return PathRoleSelection
		}
		return PathLogin
	default:
		// Unknown role values land on the user home.
		return PathHome
	}
}
