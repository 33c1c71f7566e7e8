package auditRepo

import (
	"haki/models"
)

// AuditRepository defines data access for the append-only audit log.
type AuditRepository interface {
	// Append inserts a new audit entry.
	Append(entry *models.AuditEntry) error
	// List retrieves entries matching the query, newest first.
	List(q models.AuditQuery) ([]models.AuditEntry, error)
}
