package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmaviation/website-api/internal/dto"
	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

type intakeServiceStub struct {
	contacts    []dto.ContactRequest
	subscribers map[string]bool
	csv         []byte
}

func (s *intakeServiceStub) SubmitContact(ctx context.Context, req dto.ContactRequest) (*models.Contact, error) {
	s.contacts = append(s.contacts, req)
	return &models.Contact{ID: "contact-1"}, nil
}

func (s *intakeServiceStub) SubmitTripRequest(ctx context.Context, req dto.TripRequest) (*models.TripRequest, error) {
	return &models.TripRequest{ID: "trip-1"}, nil
}

func (s *intakeServiceStub) SubmitSurvey(ctx context.Context, req dto.SurveyRequest) (*models.Survey, error) {
	return &models.Survey{ID: "survey-1"}, nil
}

func (s *intakeServiceStub) ListSurveys(ctx context.Context, page, size int) ([]models.Survey, *models.Pagination, error) {
	return []models.Survey{{ID: "survey-1"}}, &models.Pagination{Page: page, PageSize: size, TotalCount: 1}, nil
}

func (s *intakeServiceStub) ExportSurveysCSV(ctx context.Context) ([]byte, error) {
	return s.csv, nil
}

func (s *intakeServiceStub) Subscribe(ctx context.Context, req dto.SubscribeRequest) (*models.Subscriber, error) {
	if s.subscribers[req.Email] {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Email already subscribed")
	}
	if s.subscribers == nil {
		s.subscribers = map[string]bool{}
	}
	s.subscribers[req.Email] = true
	return &models.Subscriber{ID: "sub-1", Email: req.Email}, nil
}

func newIntakeRouter(stub *intakeServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewIntakeHandler(stub)
	r.POST("/contact", h.Contact)
	r.POST("/subscribe", h.Subscribe)
	r.GET("/survey", h.ListSurveys)
	r.GET("/survey/export", h.ExportSurveys)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIntakeHandlerContact(t *testing.T) {
	stub := &intakeServiceStub{}
	w := postJSON(newIntakeRouter(stub), "/contact", dto.ContactRequest{FirstName: "Ana", LastName: "Ruiz", Email: "ana@example.com", Message: "Need a quote"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "contact-1")
	require.Len(t, stub.contacts, 1)
	assert.Equal(t, "Ana", stub.contacts[0].FirstName)
}

func TestIntakeHandlerContactRejectsMalformedBody(t *testing.T) {
	r := newIntakeRouter(&intakeServiceStub{})
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntakeHandlerSubscribeDuplicate(t *testing.T) {
	r := newIntakeRouter(&intakeServiceStub{})
	first := postJSON(r, "/subscribe", dto.SubscribeRequest{Email: "a@b.co"})
	second := postJSON(r, "/subscribe", dto.SubscribeRequest{Email: "a@b.co"})

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "Email already subscribed")
}

func TestIntakeHandlerSurveyListAndExport(t *testing.T) {
	r := newIntakeRouter(&intakeServiceStub{csv: []byte("id,email\nsurvey-1,a@b.co\n")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/survey?page=2&page_size=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 5, env.Pagination.PageSize)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/survey/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "surveys_")
	assert.Equal(t, "id,email\nsurvey-1,a@b.co\n", w.Body.String())
}
