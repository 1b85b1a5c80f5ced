package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmaviation/website-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() { sqlxDB.Close() }
}

var submissionRowColumns = []string{"id", "kind", "status", "email", "display_name", "payload", "reject_reason",
	"sync_status", "sync_folder", "sync_error", "sync_succeeded", "sync_failed", "created_at", "decided_at"}

func TestSubmissionRepositoryCreateAndGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSubmissionRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO submissions")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	email := "ops@acme.test"
	submission := &models.Submission{
		Kind:        models.SubmissionKindVendor,
		Email:       &email,
		DisplayName: "Acme Air",
		Payload:     []byte(`{"companyName":"Acme Air"}`),
	}
	require.NoError(t, repo.Create(context.Background(), submission))
	require.NotEmpty(t, submission.ID)
	assert.Equal(t, models.SubmissionStatusPending, submission.Status)

	rows := sqlmock.NewRows(submissionRowColumns).
		AddRow(submission.ID, "VENDOR", nil, email, "Acme Air", `{"companyName":"Acme Air"}`, nil, nil, nil, nil, nil, nil, time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, kind, status")).
		WithArgs(submission.ID).
		WillReturnRows(rows)

	found, err := repo.GetByID(context.Background(), submission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusPending, found.Status)
	assert.Equal(t, "Acme Air", found.DisplayName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepositoryGetMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSubmissionRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, kind, status")).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestSubmissionRepositoryTransitionStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSubmissionRepository(db)
	now := time.Now().UTC()
	reason := "Missing insurance certificate"

	mock.ExpectExec("(?s)"+regexp.QuoteMeta("UPDATE submissions SET status = $1, reject_reason = $2, decided_at = $3")+".*"+regexp.QuoteMeta("(status IS NULL OR status = 'PENDING')")).
		WithArgs("REJECTED", reason, now, "abc123", "VENDOR").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.TransitionStatus(context.Background(), models.StatusTransition{
		ID: "abc123", Kind: models.SubmissionKindVendor, To: models.SubmissionStatusRejected, Reason: &reason, DecidedAt: now,
	}))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE submissions SET status")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.TransitionStatus(context.Background(), models.StatusTransition{
		ID: "abc123", Kind: models.SubmissionKindVendor, To: models.SubmissionStatusApproved, DecidedAt: now,
	})
	assert.Equal(t, sql.ErrNoRows, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepositoryListPendingIncludesNull(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSubmissionRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM submissions WHERE kind = $1 AND (status IS NULL OR status = 'PENDING')")).
		WithArgs("TESTIMONIAL").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("(?s)"+regexp.QuoteMeta("SELECT id, kind, status")+".*"+regexp.QuoteMeta("ORDER BY created_at DESC LIMIT 20 OFFSET 0")).
		WithArgs("TESTIMONIAL").
		WillReturnRows(sqlmock.NewRows(submissionRowColumns).
			AddRow("t1", "TESTIMONIAL", nil, nil, "Jane Doe", `{}`, nil, nil, nil, nil, nil, nil, time.Now(), nil))

	list, total, err := repo.List(context.Background(), models.SubmissionFilter{
		Kind:   models.SubmissionKindTestimonial,
		Status: models.SubmissionStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, models.SubmissionStatusPending, list[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepositoryRecordSync(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSubmissionRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE submissions SET sync_status = $2")).
		WithArgs("v1", models.SyncStatusFailed, nil, "bucket unreachable", 0, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RecordSync(context.Background(), "v1", models.SyncAnnotation{
		Status: models.SyncStatusFailed, Error: "bucket unreachable", Failed: 2,
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}
