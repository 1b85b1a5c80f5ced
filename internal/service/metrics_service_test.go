package service

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/csmaviation/website-api/internal/models"
)

func TestMetricsServiceDecisionCounters(t *testing.T) {
	m := NewMetricsService()
	m.RecordDecision(models.SubmissionKindVendor, models.ActionApprove, OutcomeCommitted)
	m.RecordDecision(models.SubmissionKindVendor, models.ActionReject, OutcomeAlreadyProcessed)
	m.RecordDecision(models.SubmissionKindTestimonial, models.ActionReject, OutcomeCommitted)
	m.RecordNotification("vendor_approved", errors.New("smtp down"))
	m.RecordSync(false, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("VENDOR", "reject", OutcomeAlreadyProcessed)))

	snap := m.Snapshot()
	assert.EqualValues(t, 1, snap.ApprovalsTotal)
	assert.EqualValues(t, 1, snap.RejectionsTotal)
	assert.EqualValues(t, 1, snap.NotificationsFailed)
	assert.EqualValues(t, 1, snap.SyncFailures)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.RecordDecision(models.SubmissionKindVendor, models.ActionApprove, OutcomeCommitted)
	m.RecordCacheOperation(true, time.Millisecond)
	m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	assert.Equal(t, models.SystemMetrics{}, m.Snapshot())
}
