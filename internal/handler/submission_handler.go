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

type submissionService interface {
	CreateVendor(ctx context.Context, req dto.VendorRegistrationRequest) (*dto.SubmissionReceipt, error)
	CreateTestimonial(ctx context.Context, req dto.TestimonialRequest) (*dto.SubmissionReceipt, error)
	UploadDocument(ctx context.Context, upload dto.DocumentUpload) (*dto.DocumentUploadResponse, error)
	List(ctx context.Context, query dto.SubmissionQuery) ([]models.Submission, *models.Pagination, error)
	PublishedTestimonials(ctx context.Context, limit int) ([]models.PublishedTestimonial, error)
}

// SubmissionHandler receives vendor registrations and testimonials that await link approval.
type SubmissionHandler struct {
	service          submissionService
	maxDocumentBytes int64
}

// NewSubmissionHandler constructs the handler.
func NewSubmissionHandler(svc submissionService, maxDocumentBytes int64) *SubmissionHandler {
	return &SubmissionHandler{service: svc, maxDocumentBytes: maxDocumentBytes}
}

// SubmitVendor godoc
// @Summary Submit a vendor registration
// @Tags Vendors
// @Accept json
// @Produce json
// @Param payload body dto.VendorRegistrationRequest true "Vendor registration"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /vendor-form/submit [post]
func (h *SubmissionHandler) SubmitVendor(c *gin.Context) {
	var req dto.VendorRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid vendor registration payload"))
		return
	}
	receipt, err := h.service.CreateVendor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, receipt, "Vendor form submitted successfully")
}

// UploadDocument godoc
// @Summary Upload a vendor document
// @Tags Vendors
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param vendorName formData string false "Company name"
// @Param fieldName formData string false "Document type"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Router /vendor-form/upload-document [post]
func (h *SubmissionHandler) UploadDocument(c *gin.Context) {
	file, err := readMultipartFile(c, "file", h.maxDocumentBytes)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.UploadDocument(c.Request.Context(), dto.DocumentUpload{
		VendorName:  c.PostForm("vendorName"),
		FieldName:   c.PostForm("fieldName"),
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Data:        file.Data,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// SubmitTestimonial godoc
// @Summary Submit a testimonial for review
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param payload body dto.TestimonialRequest true "Testimonial"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /testimonials [post]
func (h *SubmissionHandler) SubmitTestimonial(c *gin.Context) {
	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid testimonial payload"))
		return
	}
	receipt, err := h.service.CreateTestimonial(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, receipt, "Thank you! Your testimonial will appear once it has been reviewed.")
}

// ListTestimonials godoc
// @Summary List published testimonials
// @Tags Testimonials
// @Produce json
// @Param limit query int false "Maximum entries"
// @Success 200 {object} response.Envelope
// @Router /testimonials [get]
func (h *SubmissionHandler) ListTestimonials(c *gin.Context) {
	items, err := h.service.PublishedTestimonials(c.Request.Context(), queryInt(c, "limit", 50))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// List godoc
// @Summary List submissions awaiting or past review
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param kind query string false "VENDOR or TESTIMONIAL"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/submissions [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	var query dto.SubmissionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	items, pagination, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination)
}
