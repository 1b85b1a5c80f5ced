package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/csmaviation/website-api/internal/dto"
	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
	"github.com/csmaviation/website-api/pkg/response"
)

type intakeService interface {
	SubmitContact(ctx context.Context, req dto.ContactRequest) (*models.Contact, error)
	SubmitTripRequest(ctx context.Context, req dto.TripRequest) (*models.TripRequest, error)
	SubmitSurvey(ctx context.Context, req dto.SurveyRequest) (*models.Survey, error)
	ListSurveys(ctx context.Context, page, size int) ([]models.Survey, *models.Pagination, error)
	ExportSurveysCSV(ctx context.Context) ([]byte, error)
	Subscribe(ctx context.Context, req dto.SubscribeRequest) (*models.Subscriber, error)
}

// IntakeHandler exposes the public website forms.
type IntakeHandler struct {
	service intakeService
}

// NewIntakeHandler constructs the handler.
func NewIntakeHandler(svc intakeService) *IntakeHandler {
	return &IntakeHandler{service: svc}
}

// Contact godoc
// @Summary Submit the contact form
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.ContactRequest true "Contact form"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contact [post]
func (h *IntakeHandler) Contact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid contact payload"))
		return
	}
	contact, err := h.service.SubmitContact(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": contact.ID}, "Contact form submitted successfully")
}

// TripRequest godoc
// @Summary Request a charter quote
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.TripRequest true "Trip request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /trip-request [post]
func (h *IntakeHandler) TripRequest(c *gin.Context) {
	var req dto.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid trip request payload"))
		return
	}
	trip, err := h.service.SubmitTripRequest(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": trip.ID}, "Trip request submitted successfully")
}

// SubmitSurvey godoc
// @Summary Submit the customer survey
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.SurveyRequest true "Survey answers"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /survey [post]
func (h *IntakeHandler) SubmitSurvey(c *gin.Context) {
	var req dto.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid survey payload"))
		return
	}
	survey, err := h.service.SubmitSurvey(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, survey, "Survey submitted successfully")
}

// ListSurveys godoc
// @Summary List survey responses
// @Tags Forms
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /survey [get]
func (h *IntakeHandler) ListSurveys(c *gin.Context) {
	surveys, pagination, err := h.service.ListSurveys(c.Request.Context(), queryInt(c, "page", 1), queryInt(c, "page_size", 50))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, surveys, pagination)
}

// ExportSurveys godoc
// @Summary Download survey responses as CSV
// @Tags Forms
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Router /survey/export [get]
func (h *IntakeHandler) ExportSurveys(c *gin.Context) {
	data, err := h.service.ExportSurveysCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("surveys_%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.SubscribeRequest true "Subscriber"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /subscribe [post]
func (h *IntakeHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subscription payload"))
		return
	}
	if _, err := h.service.Subscribe(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Subscription successful")
}
