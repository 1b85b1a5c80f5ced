package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
	"github.com/csmaviation/website-api/pkg/jobs"
	"github.com/csmaviation/website-api/pkg/mailer"
)

type senderStub struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (s *senderStub) Send(ctx context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

type queueStub struct {
	jobs []jobs.Job
	err  error
}

func (q *queueStub) Enqueue(job jobs.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

type linkerStub struct{}

func (linkerStub) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "https://files.test/" + key + "?ttl=" + ttl.String(), nil
}

func newTestNotifier(t *testing.T, sender mailer.Sender) *NotificationService {
	t.Helper()
	svc, err := NewNotificationService(sender, NotificationConfig{AdminEmail: "admin@csmaviation.test"}, NewMetricsService(), nil)
	require.NoError(t, err)
	return svc
}

func TestNotificationVendorSubmittedIncludesLinksAndDocuments(t *testing.T) {
	sender := &senderStub{}
	svc := newTestNotifier(t, sender)
	svc.UseDocumentLinker(linkerStub{})

	email := "ops@skyline.test"
	sub := vendorRecord("abc123", &email)
	links := &models.ActionLinks{
		ApproveURL: "https://api.test/api/vendor-form/approve/tok-a",
		RejectURL:  "https://api.test/api/vendor-form/reject-form/tok-r",
		ExpiresAt:  time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC),
	}

	notified := svc.NotifyNewSubmission(context.Background(), sub, links)
	assert.Equal(t, []string{"admin@csmaviation.test"}, notified)
	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "New Vendor Registration: Skyline Air", msg.Subject)
	assert.Contains(t, msg.HTML, "https://api.test/api/vendor-form/approve/tok-a")
	assert.Contains(t, msg.HTML, "https://api.test/api/vendor-form/reject-form/tok-r")
	assert.Contains(t, msg.HTML, "Insurance Certificate")
	assert.Contains(t, msg.HTML, "https://files.test/vendors/skyline/ins.pdf")
}

func TestNotificationRejectedUsesDefaultReason(t *testing.T) {
	sender := &senderStub{}
	svc := newTestNotifier(t, sender)
	email := "ops@skyline.test"
	sub := vendorRecord("v-1", &email)

	assert.Equal(t, []string{email}, svc.NotifyRejected(context.Background(), sub, ""))
	assert.Equal(t, []string{"admin@csmaviation.test"}, svc.NotifyAdminRejected(context.Background(), sub, "Missing insurance certificate"))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "Regarding Your CSM Aviation Vendor Registration", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, defaultRejectReason)
	assert.Equal(t, "Vendor Rejected: Skyline Air", sender.sent[1].Subject)
	assert.Contains(t, sender.sent[1].HTML, "Missing insurance certificate")
}

func TestNotificationSkipsMissingAddresses(t *testing.T) {
	sender := &senderStub{}
	svc := newTestNotifier(t, sender)

	assert.Nil(t, svc.NotifyApproved(context.Background(), vendorRecord("v-1", nil)))
	assert.Nil(t, svc.NotifyRejected(context.Background(), testimonialRecord("t-1"), "x"))
	assert.Empty(t, sender.sent)
}

func TestNotificationEscapesSubmittedContent(t *testing.T) {
	sender := &senderStub{}
	svc := newTestNotifier(t, sender)

	svc.NotifyContact(context.Background(), &models.Contact{
		FirstName: "Eve",
		LastName:  "<script>alert(1)</script>",
		Email:     "eve@example.com",
		Message:   "hello",
	})
	require.Len(t, sender.sent, 1)
	assert.NotContains(t, sender.sent[0].HTML, "<script>")
	assert.Contains(t, sender.sent[0].HTML, "&lt;script&gt;")
}

func TestNotificationQueuedDelivery(t *testing.T) {
	sender := &senderStub{}
	svc := newTestNotifier(t, sender)
	queue := &queueStub{}
	svc.UseQueue(queue)

	email := "pat@example.com"
	sub := testimonialRecord("t-1")
	sub.Email = &email
	assert.Equal(t, []string{email}, svc.NotifyApproved(context.Background(), sub))
	require.Len(t, queue.jobs, 1)
	assert.Empty(t, sender.sent)

	require.NoError(t, svc.Dispatch(context.Background(), queue.jobs[0]))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Your Testimonial Has Been Published", sender.sent[0].Subject)
}

func TestNotificationFailuresAreCounted(t *testing.T) {
	sender := &senderStub{err: errors.New("smtp unavailable")}
	metrics := NewMetricsService()
	svc, err := NewNotificationService(sender, NotificationConfig{AdminEmail: "admin@csmaviation.test"}, metrics, nil)
	require.NoError(t, err)

	assert.Nil(t, svc.NotifyTripRequest(context.Background(), &models.TripRequest{FirstName: "Ann"}))
	assert.EqualValues(t, 1, metrics.Snapshot().NotificationsFailed)

	queue := &queueStub{err: jobs.ErrQueueFull}
	svc.UseQueue(queue)
	assert.Nil(t, svc.NotifyContact(context.Background(), &models.Contact{FirstName: "Ann"}))
	assert.EqualValues(t, 2, metrics.Snapshot().NotificationsFailed)

	svc.OnDrop(jobs.Job{Type: TemplateContact, Attempt: 4}, errors.New("gave up"))
	assert.EqualValues(t, 3, metrics.Snapshot().NotificationsFailed)
}

func TestNotificationFailuresAreTyped(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sender := &senderStub{err: errors.New("smtp unavailable")}
	svc, err := NewNotificationService(sender, NotificationConfig{AdminEmail: "admin@csmaviation.test"}, NewMetricsService(), zap.New(core))
	require.NoError(t, err)

	svc.NotifyContact(context.Background(), &models.Contact{FirstName: "Ann"})
	svc.OnDrop(jobs.Job{Type: TemplateContact, Attempt: 4}, errors.New("gave up"))

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		failure := loggedError(entry)
		assert.True(t, errors.Is(failure, appErrors.ErrNotificationFailure), entry.Message)
	}
	assert.ErrorContains(t, loggedError(entries[0]), "smtp unavailable")
}
