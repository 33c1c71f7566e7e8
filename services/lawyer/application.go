package lawyer

import (
	"fmt"
	"time"

	"haki/models"
	"haki/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SubmitApplication files a verification application for a registered user.
// The roll number is matched against the roll book immediately; the result is
// stored on the application for the reviewer, it never auto-decides.
func (s *DefaultLawyerService) SubmitApplication(req ApplicationRequest) (*models.LawyerApplication, error) {
	if req.FullName == "" || req.RollNumber == "" || req.County == "" || len(req.Specialties) == 0 {
		return nil, fmt.Errorf("all application fields are required")
	}

	usr, err := s.Users.GetByID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load applicant: %w", err)
	}
	if usr.Role == models.RoleLawyer {
		return nil, fmt.Errorf("account is already a verified lawyer")
	}

	existing, err := s.Apps.GetLatestByUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil && (existing.Status == models.ApplicationPending || existing.Status == models.ApplicationResubmission) {
		return nil, ErrApplicationExists
	}

	rollMatch, err := s.matchAgainstRollBook(req.RollNumber, req.FullName)
	if err != nil {
		utils.GetLogger().Error("SubmitApplication: roll book lookup failed", zap.Error(err))
		// Degrade to a reviewer-side check rather than rejecting the submission.
		rollMatch = RollMatchNotFound
	}

	app := &models.LawyerApplication{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		FullName:        req.FullName,
		RollNumber:      req.RollNumber,
		Specialties:     req.Specialties,
		County:          req.County,
		YearsOfPractice: req.YearsOfPractice,
		DocumentURLs:    req.DocumentURLs,
		Status:          models.ApplicationPending,
		RollMatch:       rollMatch,
		SubmittedAt:     time.Now(),
	}

	if err := s.Apps.Create(app); err != nil {
		return nil, err
	}

	if err := s.Users.UpdateFields(req.UserID, bson.M{"pending_lawyer": true}); err != nil {
		utils.GetLogger().Error("SubmitApplication: failed to flag pending lawyer", zap.Error(err))
	}

	s.Audit.Record(req.UserID, usr.Role, "application.submit", "lawyer_application", app.ID, rollMatch)
	return app, nil
}

// GetLatestApplication returns the user's most recent application.
func (s *DefaultLawyerService) GetLatestApplication(userID string) (*models.LawyerApplication, error) {
	app, err := s.Apps.GetLatestByUserID(userID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNoApplication
	}
	return app, nil
}

// ResubmitApplication replaces the details of an application flagged for
// resubmission and puts it back in the review queue.
func (s *DefaultLawyerService) ResubmitApplication(req ApplicationRequest) (*models.LawyerApplication, error) {
	app, err := s.GetLatestApplication(req.UserID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationResubmission {
		return nil, ErrNotResubmission
	}

	rollMatch, err := s.matchAgainstRollBook(req.RollNumber, req.FullName)
	if err != nil {
		utils.GetLogger().Error("ResubmitApplication: roll book lookup failed", zap.Error(err))
		rollMatch = RollMatchNotFound
	}

	app.FullName = req.FullName
	app.RollNumber = req.RollNumber
	app.Specialties = req.Specialties
	app.County = req.County
	app.YearsOfPractice = req.YearsOfPractice
	if len(req.DocumentURLs) > 0 {
		app.DocumentURLs = req.DocumentURLs
	}
	app.Status = models.ApplicationPending
	app.RollMatch = rollMatch
	app.SubmittedAt = time.Now()
	app.DecidedAt = nil

	if err := s.Apps.Update(app); err != nil {
		return nil, err
	}

	s.Audit.Record(req.UserID, models.RoleUser, "application.resubmit", "lawyer_application", app.ID, rollMatch)
	return app, nil
}

// AppealRejection reopens a rejected application with the applicant's note.
func (s *DefaultLawyerService) AppealRejection(userID, note string) (*models.LawyerApplication, error) {
	app, err := s.GetLatestApplication(userID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationRejected {
		return nil, ErrNotRejected
	}

	app.Status = models.ApplicationPending
	app.AppealNote = note
	app.DecidedAt = nil

	if err := s.Apps.Update(app); err != nil {
		return nil, err
	}

	if err := s.Users.UpdateFields(userID, bson.M{"pending_lawyer": true}); err != nil {
		utils.GetLogger().Error("AppealRejection: failed to flag pending lawyer", zap.Error(err))
	}

	s.Audit.Record(userID, models.RoleUser, "application.appeal", "lawyer_application", app.ID, note)
	return app, nil
}

// ListApplications returns the admin review queue.
func (s *DefaultLawyerService) ListApplications(status string, page, pageSize int64) ([]models.LawyerApplication, error) {
	return s.Apps.ListByStatus(status, page, pageSize)
}

// DecideApplication applies an admin decision. Acceptance promotes the
// applicant to verified_lawyer and publishes their directory profile.
func (s *DefaultLawyerService) DecideApplication(applicationID, reviewerID, reviewerRole, decision, note string) (*models.LawyerApplication, error) {
	switch decision {
	case models.ApplicationAccepted, models.ApplicationRejected, models.ApplicationResubmission:
	default:
		return nil, ErrInvalidDecision
	}

	app, err := s.Apps.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationPending {
		return nil, fmt.Errorf("application %s is not pending review", applicationID)
	}

	now := time.Now()
	app.Status = decision
	app.ReviewNote = note
	app.ReviewedBy = reviewerID
	app.DecidedAt = &now

	if err := s.Apps.Update(app); err != nil {
		return nil, err
	}

	switch decision {
	case models.ApplicationAccepted:
		if err := s.promoteApplicant(app); err != nil {
			return nil, err
		}
		s.Notify.NotifyUser(app.UserID, "Application accepted",
			"Congratulations! Your lawyer verification was approved.")
	case models.ApplicationRejected:
		s.Notify.NotifyUser(app.UserID, "Application decision",
			"Your lawyer verification was not approved. You may appeal from the app.")
	case models.ApplicationResubmission:
		s.Notify.NotifyUser(app.UserID, "Application needs changes",
			"Please update your application and resubmit.")
	}

	s.Audit.Record(reviewerID, reviewerRole, "application.decide", "lawyer_application", app.ID, decision)
	return app, nil
}

// promoteApplicant grants the verified_lawyer role and publishes the profile.
func (s *DefaultLawyerService) promoteApplicant(app *models.LawyerApplication) error {
	if err := s.Users.UpdateFields(app.UserID, bson.M{
		"role":           models.RoleLawyer,
		"pending_lawyer": false,
	}); err != nil {
		return fmt.Errorf("failed to promote applicant: %w", err)
	}

	existing, err := s.Profiles.GetByUserID(app.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	profile := &models.LawyerProfile{
		ID:              uuid.New().String(),
		UserID:          app.UserID,
		FullName:        app.FullName,
		RollNumber:      app.RollNumber,
		Specialties:     app.Specialties,
		County:          app.County,
		YearsOfPractice: app.YearsOfPractice,
	}
	if err := s.Profiles.Create(profile); err != nil {
		return fmt.Errorf("failed to publish lawyer profile: %w", err)
	}
	return nil
}
