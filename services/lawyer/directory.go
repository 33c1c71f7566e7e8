package lawyer

import (
	"fmt"
	"time"

	"haki/models"
	"haki/utils"

	"go.uber.org/zap"
)

// SearchDirectory returns verified, non-suspended lawyers matching the query.
func (s *DefaultLawyerService) SearchDirectory(q models.DirectoryQuery) ([]models.LawyerProfile, error) {
	return s.Profiles.Search(q)
}

// GetProfile returns a single directory profile.
func (s *DefaultLawyerService) GetProfile(id string) (*models.LawyerProfile, error) {
	profile, err := s.Profiles.GetByID(id)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfileBio lets a lawyer edit the free-text parts of their own profile.
func (s *DefaultLawyerService) UpdateProfileBio(userID, bio string, languages []string) (*models.LawyerProfile, error) {
	profile, err := s.Profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	profile.Bio = bio
	if languages != nil {
		profile.Languages = languages
	}
	if err := s.Profiles.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SuspendLawyer hides a lawyer from the directory, optionally until a date.
func (s *DefaultLawyerService) SuspendLawyer(profileID, actorID, actorRole, reason string, until *time.Time) error {
	profile, err := s.Profiles.GetByID(profileID)
	if err != nil {
		return ErrProfileNotFound
	}

	profile.Suspended = true
	profile.SuspendedUntil = until
	profile.SuspensionReason = reason
	if err := s.Profiles.Update(profile); err != nil {
		return err
	}

	s.Notify.NotifyUser(profile.UserID, "Account suspended",
		"Your lawyer profile has been suspended. You may appeal from the app.")
	s.Audit.Record(actorID, actorRole, "lawyer.suspend", "lawyer_profile", profileID, reason)
	return nil
}

// AppealSuspension records a suspended lawyer's appeal note on their profile
// so it surfaces in the admin suspension queue. One appeal per suspension.
func (s *DefaultLawyerService) AppealSuspension(userID, note string) error {
	profile, err := s.Profiles.GetByUserID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	if !profile.Suspended {
		return ErrNotSuspended
	}
	if profile.AppealNote != "" {
		return ErrAppealPending
	}

	now := time.Now()
	profile.AppealNote = note
	profile.AppealedAt = &now
	if err := s.Profiles.Update(profile); err != nil {
		return err
	}

	s.Audit.Record(userID, models.RoleLawyer, "lawyer.suspension_appeal", "lawyer_profile", profile.ID, note)
	return nil
}

// ListSuspended returns the admin suspension queue, appealed profiles first.
func (s *DefaultLawyerService) ListSuspended(page, pageSize int64) ([]models.LawyerProfile, error) {
	return s.Profiles.ListSuspended(page, pageSize)
}

// LiftSuspension restores a suspended lawyer to the directory.
func (s *DefaultLawyerService) LiftSuspension(profileID, actorID, actorRole string) error {
	profile, err := s.Profiles.GetByID(profileID)
	if err != nil {
		return ErrProfileNotFound
	}
	if !profile.Suspended {
		return ErrNotSuspended
	}

	profile.Suspended = false
	profile.SuspendedUntil = nil
	profile.SuspensionReason = ""
	profile.AppealNote = ""
	profile.AppealedAt = nil
	if err := s.Profiles.Update(profile); err != nil {
		return err
	}

	s.Notify.NotifyUser(profile.UserID, "Suspension lifted",
		"Your lawyer profile is visible in the directory again.")
	s.Audit.Record(actorID, actorRole, "lawyer.unsuspend", "lawyer_profile", profileID, "")
	return nil
}

// LiftExpiredSuspensions restores every lawyer whose suspension window has
// lapsed. Invoked from the background worker.
func (s *DefaultLawyerService) LiftExpiredSuspensions() (int, error) {
	profiles, err := s.Profiles.ListSuspendedExpiring()
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring suspensions: %w", err)
	}

	lifted := 0
	for i := range profiles {
		p := &profiles[i]
		p.Suspended = false
		p.SuspendedUntil = nil
		p.SuspensionReason = ""
		p.AppealNote = ""
		p.AppealedAt = nil
		if err := s.Profiles.Update(p); err != nil {
			utils.GetLogger().Error("LiftExpiredSuspensions: update failed",
				zap.String("profileID", p.ID), zap.Error(err))
			continue
		}
		s.Notify.NotifyUser(p.UserID, "Suspension lifted",
			"Your suspension period has ended. Your profile is visible again.")
		lifted++
	}
	return lifted, nil
}
