package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/csmaviation/website-api/internal/dto"
	"github.com/csmaviation/website-api/internal/models"
	"github.com/csmaviation/website-api/internal/repository"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
	"github.com/csmaviation/website-api/pkg/export"
)

// surveyExportLimit caps the rows written into one CSV export.
const surveyExportLimit = 5000

type intakeRepository interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	CreateTripRequest(ctx context.Context, trip *models.TripRequest) error
	CreateSurvey(ctx context.Context, survey *models.Survey) error
	ListSurveys(ctx context.Context, page, size int) ([]models.Survey, int, error)
	CreateSubscriber(ctx context.Context, subscriber *models.Subscriber) error
}

type intakeNotifier interface {
	NotifyContact(ctx context.Context, contact *models.Contact) []string
	NotifyTripRequest(ctx context.Context, trip *models.TripRequest) []string
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// IntakeService persists the public website forms.
type IntakeService struct {
	repo      intakeRepository
	notifier  intakeNotifier
	csv       csvRenderer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewIntakeService constructs an IntakeService.
func NewIntakeService(repo intakeRepository, notifier intakeNotifier, csv csvRenderer, validate *validator.Validate, logger *zap.Logger) *IntakeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	return &IntakeService{repo: repo, notifier: notifier, csv: csv, validator: validate, logger: logger}
}

// SubmitContact stores a contact message and alerts the admin inbox.
func (s *IntakeService) SubmitContact(ctx context.Context, req dto.ContactRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid contact form")
	}
	contact := &models.Contact{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Message:   strings.TrimSpace(req.Message),
	}
	if err := s.repo.CreateContact(ctx, contact); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save contact")
	}
	if s.notifier != nil {
		s.notifier.NotifyContact(ctx, contact)
	}
	return contact, nil
}

// SubmitTripRequest stores a charter request and alerts the admin inbox.
func (s *IntakeService) SubmitTripRequest(ctx context.Context, req dto.TripRequest) (*models.TripRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid trip request")
	}
	trip := &models.TripRequest{
		FirstName:           strings.TrimSpace(req.FirstName),
		LastName:            strings.TrimSpace(req.LastName),
		Email:               strings.TrimSpace(req.Email),
		Phone:               req.Phone,
		AircraftType:        req.AircraftType,
		TripType:            req.TripType,
		DepartureLocation:   req.DepartureLocation,
		StartDate:           req.StartDate,
		DepartureTime:       req.DepartureTime,
		DestinationLocation: req.DestinationLocation,
		ReturnDate:          optional(req.ReturnDate),
		ReturnTime:          optional(req.ReturnTime),
		TripDetails:         req.TripDetails,
	}
	if err := s.repo.CreateTripRequest(ctx, trip); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save trip request")
	}
	if s.notifier != nil {
		s.notifier.NotifyTripRequest(ctx, trip)
	}
	return trip, nil
}

// SubmitSurvey stores a satisfaction survey.
func (s *IntakeService) SubmitSurvey(ctx context.Context, req dto.SurveyRequest) (*models.Survey, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid survey")
	}
	survey := &models.Survey{
		BookingEfficiency:   req.BookingEfficiency,
		FBOLocating:         req.FBOLocating,
		FBOStaffCourtesy:    req.FBOStaffCourtesy,
		AircraftCleanliness: req.AircraftCleanliness,
		CabinComfort:        req.CabinComfort,
		CrewProfessionalism: req.CrewProfessionalism,
		OverallSatisfaction: req.OverallSatisfaction,
		WillRecommend:       strings.EqualFold(req.WillRecommend, "yes"),
		Email:               optional(req.Email),
		Comments:            optional(req.Comments),
		SubmittedAt:         time.Now().UTC(),
	}
	if err := s.repo.CreateSurvey(ctx, survey); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save survey")
	}
	return survey, nil
}

// ListSurveys returns surveys newest first.
func (s *IntakeService) ListSurveys(ctx context.Context, page, size int) ([]models.Survey, *models.Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	items, total, err := s.repo.ListSurveys(ctx, page, size)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list surveys")
	}
	return items, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// ExportSurveysCSV renders the most recent surveys as CSV.
func (s *IntakeService) ExportSurveysCSV(ctx context.Context) ([]byte, error) {
	items, _, err := s.repo.ListSurveys(ctx, 1, surveyExportLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load surveys")
	}
	dataset := export.Dataset{
		Columns: []export.Column{
			{Key: "submitted_at", Label: "Submitted At"},
			{Key: "booking_efficiency", Label: "Booking Efficiency"},
			{Key: "fbo_locating", Label: "FBO Locating"},
			{Key: "fbo_staff_courtesy", Label: "FBO Staff Courtesy"},
			{Key: "aircraft_cleanliness", Label: "Aircraft Cleanliness"},
			{Key: "cabin_comfort", Label: "Cabin Comfort"},
			{Key: "crew_professionalism", Label: "Crew Professionalism"},
			{Key: "overall_satisfaction", Label: "Overall Satisfaction"},
			{Key: "will_recommend", Label: "Will Recommend"},
			{Key: "email", Label: "Email"},
			{Key: "comments", Label: "Comments"},
		},
		Rows: make([]map[string]string, 0, len(items)),
	}
	for _, item := range items {
		recommend := "No"
		if item.WillRecommend {
			recommend = "Yes"
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"submitted_at":         item.SubmittedAt.UTC().Format(time.RFC3339),
			"booking_efficiency":   strconv.Itoa(item.BookingEfficiency),
			"fbo_locating":         strconv.Itoa(item.FBOLocating),
			"fbo_staff_courtesy":   strconv.Itoa(item.FBOStaffCourtesy),
			"aircraft_cleanliness": strconv.Itoa(item.AircraftCleanliness),
			"cabin_comfort":        strconv.Itoa(item.CabinComfort),
			"crew_professionalism": strconv.Itoa(item.CrewProfessionalism),
			"overall_satisfaction": strconv.Itoa(item.OverallSatisfaction),
			"will_recommend":       recommend,
			"email":                valueOf(item.Email),
			"comments":             valueOf(item.Comments),
		})
	}
	data, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	return data, nil
}

// Subscribe adds an address to the newsletter list.
func (s *IntakeService) Subscribe(ctx context.Context, req dto.SubscribeRequest) (*models.Subscriber, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid email")
	}
	subscriber := &models.Subscriber{Email: req.Email}
	if err := s.repo.CreateSubscriber(ctx, subscriber); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Email already subscribed")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to subscribe")
	}
	return subscriber, nil
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func valueOf(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
