// Package audit records privileged actions for the admin dashboard.
package audit

import (
	"time"

	auditRepo "haki/database/repository/audit"
	"haki/models"
	"haki/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuditService interface {
	// Record appends an audit entry. Failures are logged, never surfaced:
	// auditing must not block the action it describes.
	Record(actorID, actorRole, action, targetType, targetID, detail string)
	// List retrieves entries matching the query, newest first.
	List(q models.AuditQuery) ([]models.AuditEntry, error)
}

// DefaultAuditService is the production implementation.
type DefaultAuditService struct {
	Repo auditRepo.AuditRepository
}

func (s *DefaultAuditService) Record(actorID, actorRole, action, targetType, targetID, detail string) {
	entry := &models.AuditEntry{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		ActorRole:  actorRole,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Append(entry); err != nil {
		utils.GetLogger().Error("audit: failed to append entry",
			zap.String("action", action), zap.Error(err))
	}
}

func (s *DefaultAuditService) List(q models.AuditQuery) ([]models.AuditEntry, error) {
	return s.Repo.List(q)
}
