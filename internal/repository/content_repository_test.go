package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmaviation/website-api/internal/models"
)

func TestContentRepositoryGetSEO(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewContentRepository(db)
	cols := []string{"page", "title", "description", "keywords", "og_image", "canonical_url", "robots", "author", "language",
		"site_name", "type", "twitter_handle", "published_time", "modified_time", "section", "tags"}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT page, title")).
		WithArgs("home").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("home", "CSM Aviation", "Private jet charter", "charter,jet", "", "https://csmaviation.com/",
			"index,follow", "CSM", "en", "CSM Aviation", "website", "@csmaviation", nil, nil, "", "{charter,private jet}"))

	seo, err := repo.GetSEO(context.Background(), "home")
	require.NoError(t, err)
	assert.Equal(t, "CSM Aviation", seo.Title)
	assert.Equal(t, pq.StringArray{"charter", "private jet"}, seo.Tags)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT page, title")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.GetSEO(context.Background(), "missing")
	assert.Equal(t, sql.ErrNoRows, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositoryListFleet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewContentRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, category")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "passengers", "range_nm", "cruise_knots", "image_url", "description", "hourly_rate", "sort_order"}).
			AddRow("a1", "Citation XLS", "Midsize", 8, 1858, 441, "", "", 4200.0, 1))

	fleet, err := repo.ListFleet(context.Background())
	require.NoError(t, err)
	require.Len(t, fleet, 1)
	assert.Equal(t, "Citation XLS", fleet[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositoryUpserts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewContentRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO seo_pages")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fleet")).WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.UpsertSEO(context.Background(), &models.SEOPage{Page: "fleet", Title: "Our Fleet", Tags: pq.StringArray{"fleet"}}))
	aircraft := &models.Aircraft{Name: "Challenger 350"}
	require.NoError(t, repo.UpsertAircraft(context.Background(), aircraft))
	assert.NotEmpty(t, aircraft.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
