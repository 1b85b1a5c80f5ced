package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csmaviation/website-api/internal/dto"
	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

var allowedDocumentExts = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

type submissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	List(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, int, error)
	ListApproved(ctx context.Context, kind models.SubmissionKind, limit int) ([]models.Submission, error)
}

type linkIssuer interface {
	IssuePair(kind models.SubmissionKind, id string) (*models.ActionLinks, error)
}

type submissionAlerter interface {
	NotifyNewSubmission(ctx context.Context, submission *models.Submission, links *models.ActionLinks) []string
}

type uploadStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// SubmissionConfig bounds vendor document uploads.
type SubmissionConfig struct {
	UploadPrefix     string
	MaxDocumentBytes int64
	DocumentURLTTL   time.Duration
}

// SubmissionService accepts testimonials and vendor registrations and starts
// their review by mailing signed links to the admin inbox.
type SubmissionService struct {
	repo      submissionRepository
	tokens    linkIssuer
	alerts    submissionAlerter
	uploads   uploadStore
	audit     auditWriter
	validator *validator.Validate
	logger    *zap.Logger
	config    SubmissionConfig
	now       func() time.Time
}

// NewSubmissionService constructs the intake side of the approval workflow.
func NewSubmissionService(repo submissionRepository, tokens linkIssuer, alerts submissionAlerter, uploads uploadStore, audit auditWriter, validate *validator.Validate, logger *zap.Logger, cfg SubmissionConfig) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	cfg.UploadPrefix = strings.Trim(cfg.UploadPrefix, "/")
	if cfg.UploadPrefix == "" {
		cfg.UploadPrefix = "vendors"
	}
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = 25 << 20
	}
	if cfg.DocumentURLTTL <= 0 {
		cfg.DocumentURLTTL = 24 * time.Hour
	}
	return &SubmissionService{
		repo:      repo,
		tokens:    tokens,
		alerts:    alerts,
		uploads:   uploads,
		audit:     audit,
		validator: validate,
		logger:    logger,
		config:    cfg,
		now:       time.Now,
	}
}

// CreateVendor records a vendor registration as PENDING.
func (s *SubmissionService) CreateVendor(ctx context.Context, req dto.VendorRegistrationRequest) (*dto.SubmissionReceipt, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid vendor registration")
	}
	documents := make(map[string]string, len(req.Documents))
	for docType, key := range req.Documents {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !strings.HasPrefix(key, s.config.UploadPrefix+"/") || strings.Contains(key, "..") {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("document %q was not uploaded through this site", docType))
		}
		documents[docType] = key
	}

	details := models.VendorDetails{
		CompanyName:       strings.TrimSpace(req.CompanyName),
		ContactName:       strings.TrimSpace(req.ContactName),
		Email:             strings.TrimSpace(req.Email),
		Phone:             req.Phone,
		Website:           req.Website,
		Address:           req.Address,
		CertificateNumber: req.CertificateNumber,
		AircraftTypes:     req.AircraftTypes,
		FleetSize:         req.FleetSize,
		InsuranceExpiry:   req.InsuranceExpiry,
		Notes:             req.Notes,
		Documents:         documents,
	}
	return s.create(ctx, models.SubmissionKindVendor, details.CompanyName, details.Email, details)
}

// CreateTestimonial records a testimonial as PENDING.
func (s *SubmissionService) CreateTestimonial(ctx context.Context, req dto.TestimonialRequest) (*dto.SubmissionReceipt, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid testimonial")
	}
	details := models.TestimonialDetails{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Company:  req.Company,
		Location: req.Location,
		Rating:   req.Rating,
		Message:  strings.TrimSpace(req.Message),
	}
	return s.create(ctx, models.SubmissionKindTestimonial, details.FullName, details.Email, details)
}

func (s *SubmissionService) create(ctx context.Context, kind models.SubmissionKind, displayName, email string, details interface{}) (*dto.SubmissionReceipt, error) {
	payload, err := json.Marshal(details)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode submission")
	}
	submission := &models.Submission{
		ID:          uuid.NewString(),
		Kind:        kind,
		DisplayName: displayName,
		Payload:     payload,
		CreatedAt:   s.now().UTC(),
	}
	if email != "" {
		submission.Email = &email
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save submission")
	}

	links, err := s.tokens.IssuePair(kind, submission.ID)
	if err != nil {
		// The record stays PENDING; links can be reissued from the CLI.
		s.logger.Error("failed to issue approval links", zap.String("submission_id", submission.ID), zap.Error(err))
	} else if s.alerts != nil {
		s.alerts.NotifyNewSubmission(ctx, submission, links)
	}

	if s.audit != nil {
		id := submission.ID
		if err := s.audit.Create(ctx, &models.AuditLog{
			Actor:      "public",
			Action:     models.AuditActionSubmissionNew,
			Resource:   "submission",
			ResourceID: &id,
			Details:    []byte(fmt.Sprintf(`{"kind":%q}`, kind)),
		}); err != nil {
			s.logger.Warn("failed to record audit log", zap.String("submission_id", id), zap.Error(err))
		}
	}

	return &dto.SubmissionReceipt{ID: submission.ID, Status: string(models.SubmissionStatusPending)}, nil
}

// UploadDocument stores a vendor document and returns its key with a temporary link.
func (s *SubmissionService) UploadDocument(ctx context.Context, upload dto.DocumentUpload) (*dto.DocumentUploadResponse, error) {
	if len(upload.Data) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no file uploaded")
	}
	if int64(len(upload.Data)) > s.config.MaxDocumentBytes {
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("file exceeds %d MB", s.config.MaxDocumentBytes>>20))
	}
	ext := strings.ToLower(path.Ext(upload.Filename))
	if _, ok := allowedDocumentExts[ext]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid file type, only PDF, Word documents and images are allowed")
	}

	vendor := slug(upload.VendorName, "unknown_vendor")
	field := slug(upload.FieldName, "document")
	key := fmt.Sprintf("%s/%s/%s/%d_%s%s", s.config.UploadPrefix, vendor, field, s.now().UnixMilli(), uuid.NewString()[:8], ext)

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.uploads.Put(ctx, key, upload.Data, contentType); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store document")
	}
	url, err := s.uploads.PresignGet(ctx, key, s.config.DocumentURLTTL)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign document url")
	}
	return &dto.DocumentUploadResponse{Key: key, FileURL: url, ExpiresIn: s.config.DocumentURLTTL.String()}, nil
}

// List returns submissions for the admin console.
func (s *SubmissionService) List(ctx context.Context, query dto.SubmissionQuery) ([]models.Submission, *models.Pagination, error) {
	filter := models.SubmissionFilter{Page: query.Page, PageSize: query.PageSize}
	if query.Kind != "" {
		kind, err := models.ParseSubmissionKind(query.Kind)
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid kind filter")
		}
		filter.Kind = kind
	}
	if query.Status != "" {
		status := models.SubmissionStatus(strings.ToUpper(strings.TrimSpace(query.Status)))
		switch status {
		case models.SubmissionStatusPending, models.SubmissionStatusApproved, models.SubmissionStatusRejected:
			filter.Status = status
		default:
			return nil, nil, appErrors.Clone(appErrors.ErrValidation, "invalid status filter")
		}
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return items, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// PublishedTestimonials returns approved testimonials for the public site.
func (s *SubmissionService) PublishedTestimonials(ctx context.Context, limit int) ([]models.PublishedTestimonial, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	items, err := s.repo.ListApproved(ctx, models.SubmissionKindTestimonial, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list testimonials")
	}
	published := make([]models.PublishedTestimonial, 0, len(items))
	for i := range items {
		details, err := items[i].TestimonialDetails()
		if err != nil {
			s.logger.Warn("skipping unreadable testimonial", zap.String("submission_id", items[i].ID), zap.Error(err))
			continue
		}
		published = append(published, models.PublishedTestimonial{
			ID:       items[i].ID,
			FullName: details.FullName,
			Company:  details.Company,
			Location: details.Location,
			Rating:   details.Rating,
			Message:  details.Message,
		})
	}
	return published, nil
}

func slug(raw, fallback string) string {
	cleaned := strings.Trim(folderUnsafe.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "_"), "_")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
