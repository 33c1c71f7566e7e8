package consultation

import (
	"errors"
	"fmt"
	"time"

	"haki/models"
	"haki/services/tasks"
	"haki/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotYours is returned when acting on a consultation owned by someone else.
var ErrNotYours = errors.New("consultation does not belong to this account")

// ErrBadTransition is returned for decisions that do not apply to the
// consultation's current status.
var ErrBadTransition = errors.New("invalid consultation status transition")

// reminderLead is how long before the proposed time the reminder fires.
const reminderLead = time.Hour

// Request files a consultation with a verified, non-suspended lawyer.
func (s *DefaultConsultationService) Request(req ConsultationRequest) (*models.Consultation, error) {
	proposedAt, err := time.Parse(time.RFC3339, req.ProposedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid proposedAt, expected RFC 3339: %w", err)
	}
	if proposedAt.Before(time.Now()) {
		return nil, fmt.Errorf("proposed time is in the past")
	}

	profile, err := s.Profiles.GetByID(req.LawyerID)
	if err != nil {
		return nil, fmt.Errorf("lawyer not found: %w", err)
	}
	if profile.Suspended {
		return nil, fmt.Errorf("lawyer is not currently taking consultations")
	}

	consultation := &models.Consultation{
		ID:         uuid.New().String(),
		UserID:     req.UserID,
		LawyerID:   profile.ID,
		Subject:    req.Subject,
		Narrative:  req.Narrative,
		ProposedAt: proposedAt,
		Status:     models.ConsultationRequested,
	}
	if err := s.Repo.Create(consultation); err != nil {
		return nil, err
	}

	s.Notify.NotifyUser(profile.UserID, "New consultation request",
		fmt.Sprintf("A user requested a consultation: %s", req.Subject))
	return consultation, nil
}

// Respond records the lawyer's decision and, on acceptance, schedules
// reminders for both parties.
func (s *DefaultConsultationService) Respond(consultationID, lawyerUserID, decision, note string) (*models.Consultation, error) {
	if decision != models.ConsultationAccepted && decision != models.ConsultationDeclined {
		return nil, ErrBadTransition
	}

	consultation, err := s.Repo.GetByID(consultationID)
	if err != nil {
		return nil, err
	}
	if consultation.Status != models.ConsultationRequested {
		return nil, ErrBadTransition
	}

	profile, err := s.Profiles.GetByUserID(lawyerUserID)
	if err != nil || profile == nil || profile.ID != consultation.LawyerID {
		return nil, ErrNotYours
	}

	consultation.Status = decision
	consultation.Note = note
	if err := s.Repo.Update(consultation); err != nil {
		return nil, err
	}

	if decision == models.ConsultationAccepted {
		s.Notify.NotifyUser(consultation.UserID, "Consultation accepted",
			fmt.Sprintf("Your consultation %q was accepted.", consultation.Subject))
		s.scheduleReminder(consultation, profile.UserID)
	} else {
		s.Notify.NotifyUser(consultation.UserID, "Consultation declined",
			"The lawyer declined your request. You can pick another lawyer from the directory.")
	}
	return consultation, nil
}

// scheduleReminder enqueues a reminder ahead of the proposed time.
// Scheduling failures are logged; the acceptance itself stands.
func (s *DefaultConsultationService) scheduleReminder(consultation *models.Consultation, lawyerUserID string) {
	if s.Reminder == nil {
		return
	}

	fireAt := consultation.ProposedAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		ConsultationID: consultation.ID,
		UserID:         consultation.UserID,
		LawyerID:       lawyerUserID,
		StartsAt:       consultation.ProposedAt,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Error("consultation: failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Reminder.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("consultation: failed to enqueue reminder",
			zap.String("consultationID", consultation.ID), zap.Error(err))
	}
}

// Cancel lets the requesting user withdraw before the consultation happens.
func (s *DefaultConsultationService) Cancel(consultationID, userID string) error {
	consultation, err := s.Repo.GetByID(consultationID)
	if err != nil {
		return err
	}
	if consultation.UserID != userID {
		return ErrNotYours
	}
	if consultation.Status == models.ConsultationCompleted || consultation.Status == models.ConsultationCancelled {
		return ErrBadTransition
	}

	consultation.Status = models.ConsultationCancelled
	return s.Repo.Update(consultation)
}

// Complete marks an accepted consultation as held.
func (s *DefaultConsultationService) Complete(consultationID, lawyerUserID string) (*models.Consultation, error) {
	consultation, err := s.Repo.GetByID(consultationID)
	if err != nil {
		return nil, err
	}
	if consultation.Status != models.ConsultationAccepted {
		return nil, ErrBadTransition
	}

	profile, err := s.Profiles.GetByUserID(lawyerUserID)
	if err != nil || profile == nil || profile.ID != consultation.LawyerID {
		return nil, ErrNotYours
	}

	consultation.Status = models.ConsultationCompleted
	if err := s.Repo.Update(consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

// ListForUser retrieves a user's consultations.
func (s *DefaultConsultationService) ListForUser(userID string, page, pageSize int64) ([]models.Consultation, error) {
	return s.Repo.ListByUser(userID, page, pageSize)
}

// ListForLawyer retrieves a lawyer's consultations, optionally by status.
func (s *DefaultConsultationService) ListForLawyer(lawyerUserID, status string, page, pageSize int64) ([]models.Consultation, error) {
	profile, err := s.Profiles.GetByUserID(lawyerUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no lawyer profile for this account")
	}
	return s.Repo.ListByLawyer(profile.ID, status, page, pageSize)
}
