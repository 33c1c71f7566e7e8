// models/consultation.go
package models

import "time"

// Consultation statuses.
const (
	ConsultationRequested = "requested"
	ConsultationAccepted  = "accepted"
	ConsultationDeclined  = "declined"
	ConsultationCompleted = "completed"
	ConsultationCancelled = "cancelled"
)

// Consultation is a request from a user for a session with a verified lawyer.
type Consultation struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"userId"`
	LawyerID   string    `bson:"lawyer_id" json:"lawyerId"`
	Subject    string    `bson:"subject" json:"subject"`
	Narrative  string    `bson:"narrative" json:"narrative"`
	ProposedAt time.Time `bson:"proposed_at" json:"proposedAt"`
	Status     string    `bson:"status" json:"status"`
	Note       string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReminderPayload is the asynq task payload for consultation reminders.
type ReminderPayload struct {
	ConsultationID string    `json:"consultationId"`
	UserID         string    `json:"userId"`
	LawyerID       string    `json:"lawyerId"`
	StartsAt       time.Time `json:"startsAt"`
}
