package consultation

import (
	consultationRepo "haki/database/repository/consultation"
	lawyerRepo "haki/database/repository/lawyer"
	"haki/models"
	"haki/services/notification"

	"github.com/hibiken/asynq"
)

// ConsultationRequest carries the fields of a new consultation booking.
type ConsultationRequest struct {
	UserID     string `json:"-"`
	LawyerID   string `json:"lawyerId" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	Narrative  string `json:"narrative"`
	ProposedAt string `json:"proposedAt" binding:"required"` // RFC 3339
}

type ConsultationService interface {
	// Request files a consultation with a verified lawyer.
	Request(req ConsultationRequest) (*models.Consultation, error)
	// Respond records the lawyer's accept/decline decision.
	Respond(consultationID, lawyerUserID, decision, note string) (*models.Consultation, error)
	// Cancel lets the requesting user withdraw before it happens.
	Cancel(consultationID, userID string) error
	// Complete marks an accepted consultation as held.
	Complete(consultationID, lawyerUserID string) (*models.Consultation, error)
	// ListForUser retrieves a user's consultations.
	ListForUser(userID string, page, pageSize int64) ([]models.Consultation, error)
	// ListForLawyer retrieves a lawyer's consultations, optionally by status.
	ListForLawyer(lawyerUserID, status string, page, pageSize int64) ([]models.Consultation, error)
}

// DefaultConsultationService is the production implementation.
type DefaultConsultationService struct {
	Repo     consultationRepo.ConsultationRepository
	Profiles lawyerRepo.ProfileRepository
	Notify   notification.NotificationService
	Reminder *asynq.Client
}
