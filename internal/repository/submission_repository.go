package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/csmaviation/website-api/internal/models"
)

const submissionColumns = `id, kind, status, email, display_name, payload, reject_reason, sync_status, sync_folder,
       sync_error, sync_succeeded, sync_failed, created_at, decided_at`

// SubmissionRepository persists testimonials and vendor registrations.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository constructs the repository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a new PENDING submission.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	submission.Status = models.SubmissionStatusPending
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}
	if len(submission.Payload) == 0 {
		submission.Payload = []byte("{}")
	}
	const query = `INSERT INTO submissions (id, kind, status, email, display_name, payload, created_at)
	VALUES (:id, :kind, :status, :email, :display_name, :payload, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, submission); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

// GetByID fetches a submission by identifier. sql.ErrNoRows is returned unwrapped.
func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`
	var submission models.Submission
	if err := r.db.GetContext(ctx, &submission, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &submission, nil
}

// List returns submissions matching the filter, newest first, with the total count.
func (r *SubmissionRepository) List(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, int, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.Status != "" {
		if filter.Status == models.SubmissionStatusPending {
			conditions = append(conditions, "(status IS NULL OR status = 'PENDING')")
		} else {
			args = append(args, string(filter.Status))
			conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
		}
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM submissions"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count submissions: %w", err)
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	query := fmt.Sprintf("SELECT %s FROM submissions%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		submissionColumns, where, size, (page-1)*size)

	var submissions []models.Submission
	if err := r.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, total, nil
}

// ListApproved returns decided-and-approved submissions of a kind, newest decision first.
func (r *SubmissionRepository) ListApproved(ctx context.Context, kind models.SubmissionKind, limit int) ([]models.Submission, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM submissions WHERE kind = $1 AND status = 'APPROVED'
	ORDER BY decided_at DESC LIMIT %d`, submissionColumns, limit)
	var submissions []models.Submission
	if err := r.db.SelectContext(ctx, &submissions, query, kind); err != nil {
		return nil, fmt.Errorf("list approved submissions: %w", err)
	}
	return submissions, nil
}

// TransitionStatus moves a PENDING submission to its terminal status in one
// conditional write. sql.ErrNoRows means the record was already decided or
// does not exist for the given kind.
func (r *SubmissionRepository) TransitionStatus(ctx context.Context, t models.StatusTransition) error {
	const query = `UPDATE submissions SET status = $1, reject_reason = $2, decided_at = $3
	WHERE id = $4 AND kind = $5 AND (status IS NULL OR status = 'PENDING')`
	result, err := r.db.ExecContext(ctx, query, t.To, t.Reason, t.DecidedAt, t.ID, t.Kind)
	if err != nil {
		return fmt.Errorf("transition submission status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check submission transition rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RecordSync annotates an approved submission with a document sync outcome.
func (r *SubmissionRepository) RecordSync(ctx context.Context, id string, sync models.SyncAnnotation) error {
	const query = `UPDATE submissions SET sync_status = $2, sync_folder = $3, sync_error = $4,
	sync_succeeded = $5, sync_failed = $6 WHERE id = $1 AND status = 'APPROVED'`
	if _, err := r.db.ExecContext(ctx, query, id, sync.Status, nullIfEmpty(sync.Folder), nullIfEmpty(sync.Error), sync.Succeeded, sync.Failed); err != nil {
		return fmt.Errorf("record submission sync: %w", err)
	}
	return nil
}

func normalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 200 {
		size = 20
	}
	return page, size
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
