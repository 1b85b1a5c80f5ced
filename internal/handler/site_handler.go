package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/csmaviation/website-api/internal/dto"
	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
	"github.com/csmaviation/website-api/pkg/response"
)

type siteService interface {
	Config(ctx context.Context) (*models.SiteConfig, error)
	UpdateHeader(ctx context.Context, req dto.UpdateHeaderRequest, actor string) (*models.Configuration, error)
	UpdateVideo(ctx context.Context, upload dto.VideoUpload, actor string) (*models.Configuration, error)
	SEO(ctx context.Context, page string) (*models.SEOPage, error)
	Fleet(ctx context.Context) ([]models.Aircraft, error)
}

// SiteHandler serves website content and its admin edits.
type SiteHandler struct {
	service       siteService
	maxVideoBytes int64
}

// NewSiteHandler constructs the handler.
func NewSiteHandler(svc siteService, maxVideoBytes int64) *SiteHandler {
	return &SiteHandler{service: svc, maxVideoBytes: maxVideoBytes}
}

// Config godoc
// @Summary Get site configuration
// @Tags Site
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /config [get]
func (h *SiteHandler) Config(c *gin.Context) {
	cfg, err := h.service.Config(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}

// UpdateHeader godoc
// @Summary Update the header color
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.UpdateHeaderRequest true "Header color"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /update-header [put]
func (h *SiteHandler) UpdateHeader(c *gin.Context) {
	var req dto.UpdateHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid header payload"))
		return
	}
	item, err := h.service.UpdateHeader(c.Request.Context(), req, actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// UpdateVideo godoc
// @Summary Replace a site video
// @Tags Site
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param video formData file true "Video file"
// @Param key formData string false "Configuration key, defaults to home_video"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Router /update-home-video [post]
func (h *SiteHandler) UpdateVideo(c *gin.Context) {
	file, err := readMultipartFile(c, "video", h.maxVideoBytes)
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.service.UpdateVideo(c.Request.Context(), dto.VideoUpload{
		Key:         c.DefaultPostForm("key", models.ConfigKeyHomeVideo),
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Data:        file.Data,
	}, actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// SEO godoc
// @Summary Get SEO metadata for a page
// @Tags Site
// @Produce json
// @Param page path string true "Page slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /seo/{page} [get]
func (h *SiteHandler) SEO(c *gin.Context) {
	page, err := h.service.SEO(c.Request.Context(), c.Param("page"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page, nil)
}

// Fleet godoc
// @Summary List the charter fleet
// @Tags Site
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /fleet [get]
func (h *SiteHandler) Fleet(c *gin.Context) {
	fleet, err := h.service.Fleet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fleet, nil)
}
