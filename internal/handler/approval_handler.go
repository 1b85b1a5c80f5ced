package handler

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/csmaviation/website-api/internal/dto"
	"github.com/csmaviation/website-api/internal/models"
	"github.com/csmaviation/website-api/internal/service"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

//go:embed templates/approval/*.html
var approvalTemplateFS embed.FS

const (
	resultTemplate     = "approval_result"
	rejectFormTemplate = "reject_form"
)

// ApprovalTemplates parses the pages rendered for emailed approve/reject links.
// The engine serving ApprovalHandler must install them with SetHTMLTemplate.
func ApprovalTemplates() *template.Template {
	return template.Must(template.New("approval").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(approvalTemplateFS, "templates/approval/*.html"))
}

type approvalWorkflow interface {
	Approve(ctx context.Context, kind models.SubmissionKind, token string) (*models.ApprovalOutcome, error)
	PrepareRejection(ctx context.Context, kind models.SubmissionKind, token string) (*models.Submission, error)
	Reject(ctx context.Context, kind models.SubmissionKind, token, reason string) (*models.ApprovalOutcome, error)
}

// ApprovalHandler serves the HTML pages behind the links emailed to reviewers.
type ApprovalHandler struct {
	service approvalWorkflow
	logger  *zap.Logger
}

// NewApprovalHandler constructs the approval link handler.
func NewApprovalHandler(svc approvalWorkflow, logger *zap.Logger) *ApprovalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApprovalHandler{service: svc, logger: logger}
}

// RegisterVendorRoutes mounts the two-step vendor flow under group.
func (h *ApprovalHandler) RegisterVendorRoutes(group *gin.RouterGroup) {
	group.GET("/approve/:token", h.Approve(models.SubmissionKindVendor))
	group.GET("/reject-form/:token", h.RejectForm(models.SubmissionKindVendor))
	group.POST("/reject/:token", h.Reject(models.SubmissionKindVendor))
}

// RegisterTestimonialRoutes mounts the one-click testimonial links under group.
func (h *ApprovalHandler) RegisterTestimonialRoutes(group *gin.RouterGroup) {
	group.GET("/approve/:token", h.Approve(models.SubmissionKindTestimonial))
	group.GET("/reject/:token", h.Reject(models.SubmissionKindTestimonial))
}

// Approve godoc
// @Summary Approve a submission from an emailed link
// @Tags Approvals
// @Produce html
// @Param token path string true "Signed approve token"
// @Success 200 {string} string "confirmation page"
// @Failure 400 {string} string "invalid or expired link"
// @Failure 404 {string} string "submission not found"
// @Failure 409 {string} string "already processed"
// @Router /vendor-form/approve/{token} [get]
// @Router /testimonials/approve/{token} [get]
func (h *ApprovalHandler) Approve(kind models.SubmissionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		outcome, err := h.service.Approve(c.Request.Context(), kind, c.Param("token"))
		if err != nil {
			h.renderError(c, kind, err)
			return
		}
		h.render(c, http.StatusOK, resultTemplate, approvedPage(kind, outcome))
	}
}

// RejectForm godoc
// @Summary Show the vendor rejection form
// @Tags Approvals
// @Produce html
// @Param token path string true "Signed reject token"
// @Success 200 {string} string "rejection form"
// @Failure 400 {string} string "invalid or expired link"
// @Failure 409 {string} string "already processed"
// @Router /vendor-form/reject-form/{token} [get]
func (h *ApprovalHandler) RejectForm(kind models.SubmissionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		submission, err := h.service.PrepareRejection(c.Request.Context(), kind, c.Param("token"))
		if err != nil {
			h.renderError(c, kind, err)
			return
		}
		h.render(c, http.StatusOK, rejectFormTemplate, rejectFormPage(c, submission, "", ""))
	}
}

// Reject godoc
// @Summary Reject a submission from an emailed link
// @Tags Approvals
// @Accept x-www-form-urlencoded
// @Produce html
// @Param token path string true "Signed reject token"
// @Param reason formData string false "Reason shown to the vendor"
// @Success 200 {string} string "confirmation page"
// @Failure 400 {string} string "invalid or expired link"
// @Failure 409 {string} string "already processed"
// @Failure 422 {string} string "reason too long"
// @Router /vendor-form/reject/{token} [post]
// @Router /testimonials/reject/{token} [get]
func (h *ApprovalHandler) Reject(kind models.SubmissionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		reason := c.PostForm("reason")

		outcome, err := h.service.Reject(c.Request.Context(), kind, token, reason)
		if err != nil {
			if errors.Is(err, appErrors.ErrValidation) {
				h.reRenderForm(c, kind, token, reason, err)
				return
			}
			h.renderError(c, kind, err)
			return
		}
		h.render(c, http.StatusOK, resultTemplate, rejectedPage(kind, outcome))
	}
}

func (h *ApprovalHandler) reRenderForm(c *gin.Context, kind models.SubmissionKind, token, reason string, cause error) {
	submission, err := h.service.PrepareRejection(c.Request.Context(), kind, token)
	if err != nil {
		h.renderError(c, kind, err)
		return
	}
	page := rejectFormPage(c, submission, reason, appErrors.FromError(cause).Message)
	page.FormAction = c.Request.URL.Path
	h.render(c, http.StatusUnprocessableEntity, rejectFormTemplate, page)
}

func (h *ApprovalHandler) renderError(c *gin.Context, kind models.SubmissionKind, err error) {
	status, page := errorPage(kind, err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("approval link failed", zap.String("kind", string(kind)), zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		h.logger.Info("approval link refused", zap.String("kind", string(kind)), zap.Int("status", status), zap.Error(err))
	}
	_ = c.Error(err)
	h.render(c, status, resultTemplate, page)
}

func (h *ApprovalHandler) render(c *gin.Context, status int, name string, page dto.ApprovalPage) {
	page.Status = status
	c.Header("Cache-Control", "no-store")
	c.Header("X-Robots-Tag", "noindex")
	c.HTML(status, name, page)
}

func kindLabel(kind models.SubmissionKind) string {
	if kind == models.SubmissionKindVendor {
		return "vendor registration"
	}
	return "testimonial"
}

func approvedPage(kind models.SubmissionKind, outcome *models.ApprovalOutcome) dto.ApprovalPage {
	page := dto.ApprovalPage{
		Title:       "Approved",
		Tone:        dto.ToneSuccess,
		Kind:        string(kind),
		DisplayName: outcome.Submission.DisplayName,
		Notified:    outcome.Notified,
	}
	if kind == models.SubmissionKindVendor {
		page.Heading = "Vendor Approved"
		page.Message = "The vendor registration has been approved."
	} else {
		page.Heading = "Testimonial Approved"
		page.Message = "The testimonial has been approved and is now published on the website."
	}
	if sync := outcome.Sync; sync != nil {
		page.SyncAttempted = true
		page.SyncFolder = sync.Folder
		page.SyncSucceeded = len(sync.Succeeded)
		page.SyncFailed = len(sync.Failed)
		page.SyncError = sync.Err
		if !sync.OK() {
			page.Tone = dto.ToneWarning
			page.Message += " Some documents could not be synced; the operations team has been notified through the logs."
		}
	}
	return page
}

func rejectedPage(kind models.SubmissionKind, outcome *models.ApprovalOutcome) dto.ApprovalPage {
	page := dto.ApprovalPage{
		Title:       "Rejected",
		Tone:        dto.ToneInfo,
		Kind:        string(kind),
		DisplayName: outcome.Submission.DisplayName,
		Notified:    outcome.Notified,
	}
	if kind == models.SubmissionKindVendor {
		page.Heading = "Vendor Rejected"
		page.Message = "The vendor registration has been rejected."
		if outcome.Submission.RejectReason != nil {
			page.Reason = *outcome.Submission.RejectReason
		}
	} else {
		page.Heading = "Testimonial Rejected"
		page.Message = "The testimonial has been rejected and will not be published."
	}
	return page
}

func rejectFormPage(c *gin.Context, submission *models.Submission, reason, formError string) dto.ApprovalPage {
	return dto.ApprovalPage{
		Title:       "Reject Vendor",
		Heading:     "Reject Vendor Registration",
		Message:     "Optionally explain why this registration is being rejected. The vendor will receive this reason by email.",
		Tone:        dto.ToneWarning,
		Kind:        string(submission.Kind),
		DisplayName: submission.DisplayName,
		FormAction:  strings.Replace(c.Request.URL.Path, "/reject-form/", "/reject/", 1),
		Reason:      reason,
		FormError:   formError,
		MaxReason:   service.MaxRejectReasonLength,
	}
}

func errorPage(kind models.SubmissionKind, err error) (int, dto.ApprovalPage) {
	page := dto.ApprovalPage{Kind: string(kind), Tone: dto.ToneError}
	appErr := appErrors.FromError(err)

	switch {
	case errors.Is(err, appErrors.ErrInvalidOrExpiredToken):
		page.Title, page.Heading = "Link Expired", "Link Invalid or Expired"
		page.Message = "This link is invalid or has expired. Approval links are valid for 7 days."
		return http.StatusBadRequest, page
	case errors.Is(err, appErrors.ErrActionMismatch):
		page.Title, page.Heading = "Invalid Action", "Invalid Action"
		page.Message = "This link cannot be used for the requested action."
		return http.StatusBadRequest, page
	case errors.Is(err, appErrors.ErrRecordNotFound):
		page.Title, page.Heading = "Not Found", "Submission Not Found"
		page.Message = "The " + kindLabel(kind) + " for this link could not be found. It may have been removed."
		return http.StatusNotFound, page
	case errors.Is(err, appErrors.ErrAlreadyProcessed):
		page.Title, page.Heading = "Already Processed", "Already Processed"
		page.Message = capitalize(appErr.Message) + ". No further action is needed."
		page.Tone = dto.ToneInfo
		return http.StatusConflict, page
	default:
		page.Title, page.Heading = "Error", "Something Went Wrong"
		page.Message = "We could not process this request right now. Please try the link again in a few minutes."
		return http.StatusInternalServerError, page
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
