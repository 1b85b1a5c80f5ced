package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/csmaviation/website-api/internal/models"
)

const seoColumns = `page, title, description, keywords, og_image, canonical_url, robots, author, language, site_name,
       type, twitter_handle, published_time, modified_time, section, tags`

// ContentRepository serves the read-mostly SEO and fleet tables.
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository constructs the repository.
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// GetSEO returns the metadata for a page. sql.ErrNoRows is returned unwrapped.
func (r *ContentRepository) GetSEO(ctx context.Context, page string) (*models.SEOPage, error) {
	query := `SELECT ` + seoColumns + ` FROM seo_pages WHERE page = $1`
	var seo models.SEOPage
	if err := r.db.GetContext(ctx, &seo, query, page); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get seo page: %w", err)
	}
	return &seo, nil
}

// UpsertSEO inserts or replaces a page's metadata.
func (r *ContentRepository) UpsertSEO(ctx context.Context, seo *models.SEOPage) error {
	const query = `INSERT INTO seo_pages (page, title, description, keywords, og_image, canonical_url, robots, author, language,
	site_name, type, twitter_handle, published_time, modified_time, section, tags)
	VALUES (:page, :title, :description, :keywords, :og_image, :canonical_url, :robots, :author, :language,
	:site_name, :type, :twitter_handle, :published_time, :modified_time, :section, :tags)
	ON CONFLICT (page) DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description,
	keywords = EXCLUDED.keywords, og_image = EXCLUDED.og_image, canonical_url = EXCLUDED.canonical_url,
	robots = EXCLUDED.robots, author = EXCLUDED.author, language = EXCLUDED.language, site_name = EXCLUDED.site_name,
	type = EXCLUDED.type, twitter_handle = EXCLUDED.twitter_handle, published_time = EXCLUDED.published_time,
	modified_time = EXCLUDED.modified_time, section = EXCLUDED.section, tags = EXCLUDED.tags`
	if _, err := r.db.NamedExecContext(ctx, query, seo); err != nil {
		return fmt.Errorf("upsert seo page %s: %w", seo.Page, err)
	}
	return nil
}

// ListFleet returns aircraft in display order.
func (r *ContentRepository) ListFleet(ctx context.Context) ([]models.Aircraft, error) {
	const query = `SELECT id, name, category, passengers, range_nm, cruise_knots, image_url, description, hourly_rate, sort_order
	FROM fleet ORDER BY sort_order ASC, name ASC`
	var fleet []models.Aircraft
	if err := r.db.SelectContext(ctx, &fleet, query); err != nil {
		return nil, fmt.Errorf("list fleet: %w", err)
	}
	return fleet, nil
}

// UpsertAircraft inserts or replaces a fleet entry.
func (r *ContentRepository) UpsertAircraft(ctx context.Context, aircraft *models.Aircraft) error {
	if aircraft.ID == "" {
		aircraft.ID = uuid.NewString()
	}
	const query = `INSERT INTO fleet (id, name, category, passengers, range_nm, cruise_knots, image_url, description, hourly_rate, sort_order)
	VALUES (:id, :name, :category, :passengers, :range_nm, :cruise_knots, :image_url, :description, :hourly_rate, :sort_order)
	ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, category = EXCLUDED.category, passengers = EXCLUDED.passengers,
	range_nm = EXCLUDED.range_nm, cruise_knots = EXCLUDED.cruise_knots, image_url = EXCLUDED.image_url,
	description = EXCLUDED.description, hourly_rate = EXCLUDED.hourly_rate, sort_order = EXCLUDED.sort_order`
	if _, err := r.db.NamedExecContext(ctx, query, aircraft); err != nil {
		return fmt.Errorf("upsert aircraft %s: %w", aircraft.Name, err)
	}
	return nil
}
