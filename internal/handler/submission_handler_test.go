package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmaviation/website-api/internal/dto"
	"github.com/csmaviation/website-api/internal/models"
)

type submissionServiceStub struct {
	uploads []dto.DocumentUpload
	query   dto.SubmissionQuery
	vendors []dto.VendorRegistrationRequest
}

func (s *submissionServiceStub) CreateVendor(ctx context.Context, req dto.VendorRegistrationRequest) (*dto.SubmissionReceipt, error) {
	s.vendors = append(s.vendors, req)
	return &dto.SubmissionReceipt{ID: "vendor-1", Status: string(models.SubmissionStatusPending)}, nil
}

func (s *submissionServiceStub) CreateTestimonial(ctx context.Context, req dto.TestimonialRequest) (*dto.SubmissionReceipt, error) {
	return &dto.SubmissionReceipt{ID: "testimonial-1", Status: string(models.SubmissionStatusPending)}, nil
}

func (s *submissionServiceStub) UploadDocument(ctx context.Context, upload dto.DocumentUpload) (*dto.DocumentUploadResponse, error) {
	s.uploads = append(s.uploads, upload)
	return &dto.DocumentUploadResponse{Key: "vendors/acme/insurance/1_x.pdf", FileURL: "https://bucket.test/x", ExpiresIn: "24 hours"}, nil
}

func (s *submissionServiceStub) List(ctx context.Context, query dto.SubmissionQuery) ([]models.Submission, *models.Pagination, error) {
	s.query = query
	return []models.Submission{}, &models.Pagination{Page: 1, PageSize: 20}, nil
}

func (s *submissionServiceStub) PublishedTestimonials(ctx context.Context, limit int) ([]models.PublishedTestimonial, error) {
	return []models.PublishedTestimonial{{ID: "t1"}}, nil
}

func newSubmissionRouter(stub *submissionServiceStub, maxBytes int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSubmissionHandler(stub, maxBytes)
	r.POST("/vendor-form/submit", h.SubmitVendor)
	r.POST("/vendor-form/upload-document", h.UploadDocument)
	r.GET("/testimonials", h.ListTestimonials)
	r.GET("/admin/submissions", h.List)
	return r
}

func multipartRequest(t *testing.T, path, field, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestSubmissionHandlerSubmitVendor(t *testing.T) {
	stub := &submissionServiceStub{}
	w := postJSON(newSubmissionRouter(stub, 1024), "/vendor-form/submit", dto.VendorRegistrationRequest{CompanyName: "Acme Air", ContactName: "Lee", Email: "lee@acme.test"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "vendor-1")
	require.Len(t, stub.vendors, 1)
	assert.Equal(t, "Acme Air", stub.vendors[0].CompanyName)
}

func TestSubmissionHandlerUploadDocument(t *testing.T) {
	stub := &submissionServiceStub{}
	r := newSubmissionRouter(stub, 1024)
	req := multipartRequest(t, "/vendor-form/upload-document", "file", "insurance.pdf", []byte("%PDF-1.4"), map[string]string{"vendorName": "Acme Air", "fieldName": "insurance"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, stub.uploads, 1)
	assert.Equal(t, "Acme Air", stub.uploads[0].VendorName)
	assert.Equal(t, "insurance", stub.uploads[0].FieldName)
	assert.Equal(t, "insurance.pdf", stub.uploads[0].Filename)
	assert.Equal(t, []byte("%PDF-1.4"), stub.uploads[0].Data)
}

func TestSubmissionHandlerUploadDocumentTooLarge(t *testing.T) {
	stub := &submissionServiceStub{}
	r := newSubmissionRouter(stub, 4)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/vendor-form/upload-document", "file", "big.pdf", []byte("0123456789"), nil))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, stub.uploads)
}

func TestSubmissionHandlerUploadDocumentMissingFile(t *testing.T) {
	r := newSubmissionRouter(&submissionServiceStub{}, 1024)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/vendor-form/upload-document", "other", "a.pdf", []byte("x"), nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
}

func TestSubmissionHandlerListBindsFilters(t *testing.T) {
	stub := &submissionServiceStub{}
	w := httptest.NewRecorder()
	newSubmissionRouter(stub, 1024).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/submissions?kind=vendor&status=PENDING&page=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vendor", stub.query.Kind)
	assert.Equal(t, "PENDING", stub.query.Status)
	assert.Equal(t, 3, stub.query.Page)
}
