package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmaviation/website-api/internal/models"
)

func TestConfigurationRepositoryListByKeys(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewConfigurationRepository(db)
	rows := sqlmock.NewRows([]string{"key", "value", "updated_by", "updated_at"}).
		AddRow("header_color", "#0a2540", "admin", time.Now()).
		AddRow("home_video", "videos/home.mp4", nil, time.Now())
	mock.ExpectQuery("SELECT key, value").
		WithArgs("header_color", "home_video").
		WillReturnRows(rows)

	result, err := repo.ListByKeys(context.Background(), []string{"header_color", "home_video"})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "#0a2540", result[0].Value)
	assert.Nil(t, result[1].UpdatedBy)

	empty, err := repo.ListByKeys(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestConfigurationRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewConfigurationRepository(db)
	mock.ExpectExec("INSERT INTO configurations").
		WithArgs("header_color", "#ffffff", "admin", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	cfg := &models.Configuration{Key: models.ConfigKeyHeaderColor, Value: "#ffffff", UpdatedBy: strPtr("admin")}
	require.NoError(t, repo.Upsert(context.Background(), cfg))
	assert.False(t, cfg.UpdatedAt.IsZero())
}

func TestConfigurationRepositoryBulkUpsertRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewConfigurationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO configurations").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO configurations").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.BulkUpsert(context.Background(), []models.Configuration{
		{Key: models.ConfigKeyF1Video1, Value: "videos/f1a.mp4"},
		{Key: models.ConfigKeyF1Video2, Value: "videos/f1b.mp4"},
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func strPtr(value string) *string {
	return &value
}
