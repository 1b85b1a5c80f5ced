package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

type approvalWorkflowStub struct {
	approveErr error
	prepareErr error
	rejectErr  error
	sync       *models.SyncResult
	reasons    []string
}

func (s *approvalWorkflowStub) Approve(ctx context.Context, kind models.SubmissionKind, token string) (*models.ApprovalOutcome, error) {
	if s.approveErr != nil {
		return nil, s.approveErr
	}
	return &models.ApprovalOutcome{
		Submission: &models.Submission{ID: "sub-1", Kind: kind, DisplayName: "Skyline Charter", Status: models.SubmissionStatusApproved},
		Action:     models.ActionApprove,
		Sync:       s.sync,
		Notified:   []string{"ops@skyline.test"},
	}, nil
}

func (s *approvalWorkflowStub) PrepareRejection(ctx context.Context, kind models.SubmissionKind, token string) (*models.Submission, error) {
	if s.prepareErr != nil {
		return nil, s.prepareErr
	}
	return &models.Submission{ID: "sub-1", Kind: kind, DisplayName: "Skyline <Charter>", Status: models.SubmissionStatusPending}, nil
}

func (s *approvalWorkflowStub) Reject(ctx context.Context, kind models.SubmissionKind, token, reason string) (*models.ApprovalOutcome, error) {
	s.reasons = append(s.reasons, reason)
	if s.rejectErr != nil {
		return nil, s.rejectErr
	}
	if len(reason) > 40 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "reason must be at most 40 characters")
	}
	return &models.ApprovalOutcome{
		Submission: &models.Submission{ID: "sub-1", Kind: kind, DisplayName: "Skyline Charter", Status: models.SubmissionStatusRejected},
		Action:     models.ActionReject,
	}, nil
}

func newApprovalRouter(stub *approvalWorkflowStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(ApprovalTemplates())
	h := NewApprovalHandler(stub, nil)
	h.RegisterVendorRoutes(r.Group("/api/vendor-form"))
	h.RegisterTestimonialRoutes(r.Group("/api/testimonials"))
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApprovalHandlerApproveVendorShowsSyncSummary(t *testing.T) {
	stub := &approvalWorkflowStub{sync: &models.SyncResult{
		Folder:    "Charter_OPERATORS/skyline_charter",
		Succeeded: []models.SyncedDocument{{DocType: "insurance"}},
		Failed:    []models.SyncedDocument{{DocType: "w9"}},
	}}
	w := serve(newApprovalRouter(stub), httptest.NewRequest(http.MethodGet, "/api/vendor-form/approve/tok", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "Vendor Approved")
	assert.Contains(t, body, "Charter_OPERATORS/skyline_charter")
	assert.Contains(t, body, "1 document(s) synced, 1 failed")
	assert.Contains(t, body, "ops@skyline.test")
}

func TestApprovalHandlerErrorPages(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		text   string
	}{
		{"expired", appErrors.ErrInvalidOrExpiredToken, http.StatusBadRequest, "Link Invalid or Expired"},
		{"mismatch", appErrors.ErrActionMismatch, http.StatusBadRequest, "Invalid Action"},
		{"missing", appErrors.ErrRecordNotFound, http.StatusNotFound, "testimonial for this link could not be found"},
		{"processed", appErrors.Clone(appErrors.ErrAlreadyProcessed, "this testimonial has already been approved"), http.StatusConflict, "This testimonial has already been approved"},
		{"outage", errors.New("connection refused"), http.StatusInternalServerError, "Something Went Wrong"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &approvalWorkflowStub{approveErr: tc.err}
			w := serve(newApprovalRouter(stub), httptest.NewRequest(http.MethodGet, "/api/testimonials/approve/tok", nil))
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.text)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestApprovalHandlerVendorRejectForm(t *testing.T) {
	stub := &approvalWorkflowStub{}
	w := serve(newApprovalRouter(stub), httptest.NewRequest(http.MethodGet, "/api/vendor-form/reject-form/tok123", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `action="/api/vendor-form/reject/tok123"`)
	assert.Contains(t, body, "Skyline &lt;Charter&gt;")
	assert.Empty(t, stub.reasons)
}

func TestApprovalHandlerVendorRejectInvalidReasonReRendersForm(t *testing.T) {
	stub := &approvalWorkflowStub{}
	req := httptest.NewRequest(http.MethodPost, "/api/vendor-form/reject/tok123", strings.NewReader(url.Values{"reason": {"operator certificate lapsed and insurance expired"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := serve(newApprovalRouter(stub), req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "reason must be at most 40 characters")
	assert.Contains(t, body, `action="/api/vendor-form/reject/tok123"`)
	assert.Contains(t, body, "operator certificate lapsed and insurance expired")
}

func TestApprovalHandlerVendorRejectBlankReason(t *testing.T) {
	stub := &approvalWorkflowStub{}
	req := httptest.NewRequest(http.MethodPost, "/api/vendor-form/reject/tok123", strings.NewReader(url.Values{"reason": {"   "}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := serve(newApprovalRouter(stub), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vendor Rejected")
	assert.Equal(t, []string{"   "}, stub.reasons)
}

func TestApprovalHandlerVendorRejectCommits(t *testing.T) {
	stub := &approvalWorkflowStub{}
	req := httptest.NewRequest(http.MethodPost, "/api/vendor-form/reject/tok123", strings.NewReader(url.Values{"reason": {"Missing insurance certificate"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := serve(newApprovalRouter(stub), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vendor Rejected")
	assert.Equal(t, []string{"Missing insurance certificate"}, stub.reasons)
}

func TestApprovalHandlerTestimonialRejectIsOneClick(t *testing.T) {
	stub := &approvalWorkflowStub{}
	w := serve(newApprovalRouter(stub), httptest.NewRequest(http.MethodGet, "/api/testimonials/reject/tok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Testimonial Rejected")
	assert.Equal(t, []string{""}, stub.reasons)
}

func TestApprovalHandlerRejectAlreadyProcessed(t *testing.T) {
	stub := &approvalWorkflowStub{rejectErr: appErrors.ErrAlreadyProcessed}
	req := httptest.NewRequest(http.MethodPost, "/api/vendor-form/reject/tok", strings.NewReader("reason=late"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := serve(newApprovalRouter(stub), req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Already Processed")
}
