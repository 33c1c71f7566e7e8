// models/audit.go
package models

import "time"

// AuditEntry records a privileged action for the admin dashboard.
type AuditEntry struct {
	ID         string    `bson:"id" json:"id"`
	ActorID    string    `bson:"actor_id" json:"actorId"`
	ActorRole  string    `bson:"actor_role" json:"actorRole"`
	Action     string    `bson:"action" json:"action"`
	TargetType string    `bson:"target_type" json:"targetType"`
	TargetID   string    `bson:"target_id" json:"targetId"`
	Detail     string    `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// AuditQuery filters the audit log listing.
type AuditQuery struct {
	ActorID    string `form:"actorId"`
	Action     string `form:"action"`
	TargetType string `form:"targetType"`
	Page       int64  `form:"page"`
	PageSize   int64  `form:"pageSize"`
}
