package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/csmaviation/website-api/internal/dto"
	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

var allowedVideoExts = map[string]struct{}{
	".mp4":  {},
	".webm": {},
	".mov":  {},
}

type configurationRepository interface {
	ListByKeys(ctx context.Context, keys []string) ([]models.Configuration, error)
	Upsert(ctx context.Context, cfg *models.Configuration) error
}

type contentRepository interface {
	GetSEO(ctx context.Context, page string) (*models.SEOPage, error)
	ListFleet(ctx context.Context) ([]models.Aircraft, error)
}

type mediaStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// SiteConfig bounds site media handling.
type SiteConfig struct {
	VideoPrefix   string
	VideoURLTTL   time.Duration
	MaxVideoBytes int64
}

// SiteService serves public site content and the admin edits to it.
type SiteService struct {
	configs   configurationRepository
	content   contentRepository
	media     mediaStore
	cache     *CacheService
	audit     auditWriter
	validator *validator.Validate
	logger    *zap.Logger
	config    SiteConfig
	now       func() time.Time
}

// NewSiteService constructs a SiteService.
func NewSiteService(configs configurationRepository, content contentRepository, media mediaStore, cache *CacheService, audit auditWriter, validate *validator.Validate, logger *zap.Logger, cfg SiteConfig) *SiteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	cfg.VideoPrefix = strings.Trim(cfg.VideoPrefix, "/")
	if cfg.VideoPrefix == "" {
		cfg.VideoPrefix = "videos"
	}
	if cfg.VideoURLTTL <= 0 {
		cfg.VideoURLTTL = 5 * time.Minute
	}
	if cfg.MaxVideoBytes <= 0 {
		cfg.MaxVideoBytes = 100 << 20
	}
	return &SiteService{
		configs:   configs,
		content:   content,
		media:     media,
		cache:     cache,
		audit:     audit,
		validator: validate,
		logger:    logger,
		config:    cfg,
		now:       time.Now,
	}
}

// Config returns the public configuration with video keys swapped for
// short-lived URLs. Raw values are cached; URLs are signed per request.
func (s *SiteService) Config(ctx context.Context) (*models.SiteConfig, error) {
	values, err := cached(ctx, s.cache, cacheKeySiteConfig, s.loadConfigValues)
	if err != nil {
		return nil, err
	}
	result := &models.SiteConfig{HeaderColor: values[models.ConfigKeyHeaderColor]}
	targets := map[string]*string{
		models.ConfigKeyHomeVideo: &result.HomeVideo,
		models.ConfigKeyF1Video1:  &result.F1Video1,
		models.ConfigKeyF1Video2:  &result.F1Video2,
	}
	for _, key := range models.VideoConfigKeys {
		objectKey := values[key]
		if objectKey == "" {
			continue
		}
		url, err := s.media.PresignGet(ctx, objectKey, s.config.VideoURLTTL)
		if err != nil {
			s.logger.Warn("failed to presign video", zap.String("config_key", key), zap.Error(err))
			continue
		}
		*targets[key] = url
	}
	return result, nil
}

func (s *SiteService) loadConfigValues(ctx context.Context) (map[string]string, error) {
	keys := append([]string{models.ConfigKeyHeaderColor}, models.VideoConfigKeys...)
	rows, err := s.configs.ListByKeys(ctx, keys)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load configuration")
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

// UpdateHeader changes the header color.
func (s *SiteService) UpdateHeader(ctx context.Context, req dto.UpdateHeaderRequest, actor string) (*models.Configuration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "header_color must be a hex color")
	}
	return s.setConfig(ctx, models.ConfigKeyHeaderColor, strings.ToLower(req.HeaderColor), actor)
}

// UpdateVideo uploads a site video and points the configuration key at it.
func (s *SiteService) UpdateVideo(ctx context.Context, upload dto.VideoUpload, actor string) (*models.Configuration, error) {
	known := false
	for _, key := range models.VideoConfigKeys {
		if key == upload.Key {
			known = true
			break
		}
	}
	if !known {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown video slot %q", upload.Key))
	}
	if len(upload.Data) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no video uploaded")
	}
	if int64(len(upload.Data)) > s.config.MaxVideoBytes {
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("video exceeds %d MB", s.config.MaxVideoBytes>>20))
	}
	ext := strings.ToLower(path.Ext(upload.Filename))
	if _, ok := allowedVideoExts[ext]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid video type, only MP4, WebM and MOV are allowed")
	}

	objectKey := fmt.Sprintf("%s/%s_%d%s", s.config.VideoPrefix, upload.Key, s.now().UnixMilli(), ext)
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "video/mp4"
	}
	if err := s.media.Put(ctx, objectKey, upload.Data, contentType); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store video")
	}
	return s.setConfig(ctx, upload.Key, objectKey, actor)
}

func (s *SiteService) setConfig(ctx context.Context, key, value, actor string) (*models.Configuration, error) {
	entry := &models.Configuration{Key: key, Value: value}
	if actor != "" {
		entry.UpdatedBy = &actor
	}
	if err := s.configs.Upsert(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update configuration")
	}
	_ = s.cache.Evict(ctx, cacheKeySiteConfig)

	if s.audit != nil {
		resourceID := key
		if err := s.audit.Create(ctx, &models.AuditLog{
			Actor:      actor,
			Action:     models.AuditActionConfigurationUp,
			Resource:   "configuration",
			ResourceID: &resourceID,
			Details:    []byte(fmt.Sprintf(`{"value":%q}`, value)),
		}); err != nil {
			s.logger.Warn("failed to record configuration audit", zap.String("key", key), zap.Error(err))
		}
	}
	return entry, nil
}

// SEO returns the metadata for one page.
func (s *SiteService) SEO(ctx context.Context, page string) (*models.SEOPage, error) {
	page = strings.ToLower(strings.TrimSpace(page))
	if page == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "page is required")
	}
	return cached(ctx, s.cache, cacheKeySEOPrefix+page, func(ctx context.Context) (*models.SEOPage, error) {
		seo, err := s.content.GetSEO(ctx, page)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "SEO data not found for this page")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load SEO data")
		}
		return seo, nil
	})
}

// Fleet returns the aircraft listing.
func (s *SiteService) Fleet(ctx context.Context) ([]models.Aircraft, error) {
	return cached(ctx, s.cache, cacheKeyFleet, func(ctx context.Context) ([]models.Aircraft, error) {
		fleet, err := s.content.ListFleet(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fleet")
		}
		if len(fleet) == 0 {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "No fleet data found")
		}
		return fleet, nil
	})
}

// InvalidateContent drops cached SEO and fleet entries after a seed.
func (s *SiteService) InvalidateContent(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, "site:*")
}
