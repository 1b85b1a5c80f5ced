package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/csmaviation/website-api/internal/models"
)

// IntakeRepository persists the non-reviewed website forms: contact messages,
// trip requests, surveys and newsletter sign-ups.
type IntakeRepository struct {
	db *sqlx.DB
}

// NewIntakeRepository constructs the repository.
func NewIntakeRepository(db *sqlx.DB) *IntakeRepository {
	return &IntakeRepository{db: db}
}

// CreateContact stores a contact form message.
func (r *IntakeRepository) CreateContact(ctx context.Context, contact *models.Contact) error {
	stamp(&contact.ID, &contact.CreatedAt)
	const query = `INSERT INTO contacts (id, first_name, last_name, email, message, created_at)
	VALUES (:id, :first_name, :last_name, :email, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, contact); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// CreateTripRequest stores a charter quote request.
func (r *IntakeRepository) CreateTripRequest(ctx context.Context, trip *models.TripRequest) error {
	stamp(&trip.ID, &trip.CreatedAt)
	const query = `INSERT INTO trip_requests (id, first_name, last_name, email, phone, aircraft_type, trip_type,
	departure_location, start_date, departure_time, destination_location, return_date, return_time, trip_details, created_at)
	VALUES (:id, :first_name, :last_name, :email, :phone, :aircraft_type, :trip_type,
	:departure_location, :start_date, :departure_time, :destination_location, :return_date, :return_time, :trip_details, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, trip); err != nil {
		return fmt.Errorf("create trip request: %w", err)
	}
	return nil
}

// CreateSurvey stores a customer survey.
func (r *IntakeRepository) CreateSurvey(ctx context.Context, survey *models.Survey) error {
	stamp(&survey.ID, &survey.SubmittedAt)
	const query = `INSERT INTO customer_surveys (id, booking_efficiency, fbo_locating, fbo_staff_courtesy,
	aircraft_cleanliness, cabin_comfort, crew_professionalism, overall_satisfaction, will_recommend, email, comments, submitted_at)
	VALUES (:id, :booking_efficiency, :fbo_locating, :fbo_staff_courtesy,
	:aircraft_cleanliness, :cabin_comfort, :crew_professionalism, :overall_satisfaction, :will_recommend, :email, :comments, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, survey); err != nil {
		return fmt.Errorf("create survey: %w", err)
	}
	return nil
}

// ListSurveys returns surveys newest first.
func (r *IntakeRepository) ListSurveys(ctx context.Context, page, size int) ([]models.Survey, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM customer_surveys`); err != nil {
		return nil, 0, fmt.Errorf("count surveys: %w", err)
	}
	page, size = normalizePage(page, size)
	query := fmt.Sprintf(`SELECT id, booking_efficiency, fbo_locating, fbo_staff_courtesy, aircraft_cleanliness, cabin_comfort,
	crew_professionalism, overall_satisfaction, will_recommend, email, comments, submitted_at
	FROM customer_surveys ORDER BY submitted_at DESC LIMIT %d OFFSET %d`, size, (page-1)*size)
	var surveys []models.Survey
	if err := r.db.SelectContext(ctx, &surveys, query); err != nil {
		return nil, 0, fmt.Errorf("list surveys: %w", err)
	}
	return surveys, total, nil
}

// CreateSubscriber stores a newsletter address. ErrDuplicate is returned for
// an address already on the list.
func (r *IntakeRepository) CreateSubscriber(ctx context.Context, subscriber *models.Subscriber) error {
	stamp(&subscriber.ID, &subscriber.CreatedAt)
	subscriber.Email = strings.ToLower(strings.TrimSpace(subscriber.Email))
	const query = `INSERT INTO subscribers (id, email, created_at) VALUES (:id, :email, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, subscriber); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

func stamp(id *string, created *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if created.IsZero() {
		*created = time.Now().UTC()
	}
}
