package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/csmaviation/website-api/internal/models"
)

// AuditRepository appends approval decisions, sync attempts and admin changes.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository constructs the repository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts an audit row.
func (r *AuditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	stamp(&entry.ID, &entry.CreatedAt)
	if len(entry.Details) == 0 {
		entry.Details = []byte("{}")
	}
	const query = `INSERT INTO audit_logs (id, actor, action, resource, resource_id, details, ip_address, created_at)
	VALUES (:id, :actor, :action, :resource, :resource_id, :details, :ip_address, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// CreateSyncLog records a document sync attempt.
func (r *AuditRepository) CreateSyncLog(ctx context.Context, entry *models.DocumentSyncLog) error {
	stamp(&entry.ID, &entry.CreatedAt)
	const query = `INSERT INTO document_sync_logs (id, submission_id, destination, success, folder, succeeded, failed, message, created_at)
	VALUES (:id, :submission_id, :destination, :success, :folder, :succeeded, :failed, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create document sync log: %w", err)
	}
	return nil
}
