package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Audit actions recorded against submissions and admin sessions.
const (
	AuditActionLogin           = "LOGIN"
	AuditActionSubmissionNew   = "SUBMISSION_CREATED"
	AuditActionApproved        = "SUBMISSION_APPROVED"
	AuditActionRejected        = "SUBMISSION_REJECTED"
	AuditActionLinksReissued   = "LINKS_REISSUED"
	AuditActionConfigurationUp = "CONFIGURATION_UPDATED"
)

// AuditLog is an append-only trail of approval decisions and admin changes.
type AuditLog struct {
	ID         string         `db:"id" json:"id"`
	Actor      string         `db:"actor" json:"actor"`
	Action     string         `db:"action" json:"action"`
	Resource   string         `db:"resource" json:"resource"`
	ResourceID *string        `db:"resource_id" json:"resourceId,omitempty"`
	Details    types.JSONText `db:"details" json:"details,omitempty" swaggertype:"object"`
	IPAddress  string         `db:"ip_address" json:"ipAddress"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
}
