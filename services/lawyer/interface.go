package lawyer

import (
	"io"
	"time"

	lawyerRepo "haki/database/repository/lawyer"
	userRepo "haki/database/repository/user"
	"haki/models"
	"haki/services/audit"
	"haki/services/notification"
)

// ApplicationRequest carries the fields of a lawyer verification application.
type ApplicationRequest struct {
	UserID          string   `json:"-"`
	FullName        string   `json:"fullName" binding:"required"`
	RollNumber      string   `json:"rollNumber" binding:"required"`
	Specialties     []string `json:"specialties" binding:"required"`
	County          string   `json:"county" binding:"required"`
	YearsOfPractice int      `json:"yearsOfPractice"`
	DocumentURLs    []string `json:"documentUrls"`
}

// RollBookImportReport summarizes a CSV bulk upload.
type RollBookImportReport struct {
	Imported int              `json:"imported"`
	Failed   []RollBookRowErr `json:"failed,omitempty"`
}

// RollBookRowErr describes one rejected CSV row.
type RollBookRowErr struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type LawyerService interface {
	// Application workflow
	SubmitApplication(req ApplicationRequest) (*models.LawyerApplication, error)
	GetLatestApplication(userID string) (*models.LawyerApplication, error)
	ResubmitApplication(req ApplicationRequest) (*models.LawyerApplication, error)
	AppealRejection(userID, note string) (*models.LawyerApplication, error)
	ListApplications(status string, page, pageSize int64) ([]models.LawyerApplication, error)
	DecideApplication(applicationID, reviewerID, reviewerRole, decision, note string) (*models.LawyerApplication, error)

	// Suspension workflow
	SuspendLawyer(profileID, actorID, actorRole, reason string, until *time.Time) error
	AppealSuspension(userID, note string) error
	ListSuspended(page, pageSize int64) ([]models.LawyerProfile, error)
	LiftSuspension(profileID, actorID, actorRole string) error
	LiftExpiredSuspensions() (int, error)

	// Directory
	SearchDirectory(q models.DirectoryQuery) ([]models.LawyerProfile, error)
	GetProfile(id string) (*models.LawyerProfile, error)
	UpdateProfileBio(userID, bio string, languages []string) (*models.LawyerProfile, error)

	// Roll book
	ImportRollBook(r io.Reader, actorID, actorRole string) (*RollBookImportReport, error)
}

// DefaultLawyerService is the production implementation.
type DefaultLawyerService struct {
	Apps     lawyerRepo.ApplicationRepository
	Profiles lawyerRepo.ProfileRepository
	RollBook lawyerRepo.RollBookRepository
	Users    userRepo.UserRepository
	Audit    audit.AuditService
	Notify   notification.NotificationService
}
