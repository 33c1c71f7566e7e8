package lawyerRepo

import (
	"haki/models"
)

// ApplicationRepository defines data access for lawyer verification applications.
type ApplicationRepository interface {
	// Create inserts a new application record.
	Create(app *models.LawyerApplication) error
	// GetByID retrieves an application by its unique ID.
	GetByID(id string) (*models.LawyerApplication, error)
	// GetLatestByUserID retrieves the user's most recent application, or nil.
	GetLatestByUserID(userID string) (*models.LawyerApplication, error)
	// Update modifies an existing application record.
	Update(app *models.LawyerApplication) error
	// ListByStatus retrieves applications with the given status, newest first.
	ListByStatus(status string, page, pageSize int64) ([]models.LawyerApplication, error)
}

// ProfileRepository defines data access for the lawyer directory.
type ProfileRepository interface {
	// Create inserts a new directory profile.
	Create(profile *models.LawyerProfile) error
	// GetByID retrieves a profile by its unique ID.
	GetByID(id string) (*models.LawyerProfile, error)
	// GetByUserID retrieves the profile owned by the given user.
	GetByUserID(userID string) (*models.LawyerProfile, error)
	// Update modifies an existing profile.
	Update(profile *models.LawyerProfile) error
	// Search retrieves non-suspended profiles matching the query.
	Search(q models.DirectoryQuery) ([]models.LawyerProfile, error)
	// ListSuspended retrieves suspended profiles, appealed ones first.
	ListSuspended(page, pageSize int64) ([]models.LawyerProfile, error)
	// ListSuspendedExpiring returns suspended profiles whose suspension has lapsed.
	ListSuspendedExpiring() ([]models.LawyerProfile, error)
}

// RollBookRepository defines data access for the bar roll book.
type RollBookRepository interface {
	// Upsert inserts or replaces a roll record keyed by normalized roll number.
	Upsert(record *models.BarRollRecord) error
	// GetByNormalizedRoll retrieves a record by normalized roll number, or nil.
	GetByNormalizedRoll(normalized string) (*models.BarRollRecord, error)
	// Count returns the number of roll records.
	Count() (int64, error)
}
