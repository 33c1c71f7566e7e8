package consultationRepo

import (
	"haki/models"
)

// ConsultationRepository defines data access for consultation requests.
type ConsultationRepository interface {
	// Create inserts a new consultation record.
	Create(consultation *models.Consultation) error
	// GetByID retrieves a consultation by its unique ID.
	GetByID(id string) (*models.Consultation, error)
	// Update modifies an existing consultation record.
	Update(consultation *models.Consultation) error
	// ListByUser retrieves a user's consultations, newest first.
	ListByUser(userID string, page, pageSize int64) ([]models.Consultation, error)
	// ListByLawyer retrieves a lawyer's consultations, optionally filtered by status.
	ListByLawyer(lawyerID, status string, page, pageSize int64) ([]models.Consultation, error)
}
