package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

// MaxRejectReasonLength caps the free-text justification collected on the reject form.
const MaxRejectReasonLength = 2000

// DefaultSyncTimeout bounds the document sync run after an approval commits.
const DefaultSyncTimeout = 45 * time.Second

// syncRecordTimeout bounds the annotation write that follows a sync, which may
// run after the sync deadline has already passed.
const syncRecordTimeout = 5 * time.Second

// ApprovalPolicy holds the per-kind side effects of a decision.
type ApprovalPolicy struct {
	SyncOnApprove            bool
	CollectRejectReason      bool
	NotifySubmitterOnApprove bool
	NotifySubmitterOnReject  bool
	AlertAdminOnReject       bool
}

var approvalPolicies = map[models.SubmissionKind]ApprovalPolicy{
	models.SubmissionKindVendor: {
		SyncOnApprove:            true,
		CollectRejectReason:      true,
		NotifySubmitterOnApprove: true,
		NotifySubmitterOnReject:  true,
		AlertAdminOnReject:       true,
	},
	// Testimonial rejections are recorded in the audit trail only.
	models.SubmissionKindTestimonial: {
		NotifySubmitterOnApprove: true,
	},
}

// PolicyFor returns the decision policy for kind.
func PolicyFor(kind models.SubmissionKind) (ApprovalPolicy, bool) {
	p, ok := approvalPolicies[kind]
	return p, ok
}

type submissionStore interface {
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	TransitionStatus(ctx context.Context, t models.StatusTransition) error
	RecordSync(ctx context.Context, id string, sync models.SyncAnnotation) error
}

type actionTokens interface {
	Verify(token string, kind models.SubmissionKind, expected models.Action) (*models.ActionClaims, error)
	IssuePair(kind models.SubmissionKind, id string) (*models.ActionLinks, error)
}

type documentSyncer interface {
	SyncVendor(ctx context.Context, submission *models.Submission) (*models.SyncResult, error)
}

type decisionNotifier interface {
	NotifyApproved(ctx context.Context, submission *models.Submission) []string
	NotifyRejected(ctx context.Context, submission *models.Submission, reason string) []string
	NotifyAdminRejected(ctx context.Context, submission *models.Submission, reason string) []string
}

type auditWriter interface {
	Create(ctx context.Context, entry *models.AuditLog) error
}

// ApprovalService applies the one-time Pending to Approved/Rejected transition
// authorized by an emailed link.
type ApprovalService struct {
	store       submissionStore
	tokens      actionTokens
	syncer      documentSyncer
	notifier    decisionNotifier
	audit       auditWriter
	metrics     *MetricsService
	logger      *zap.Logger
	syncTimeout time.Duration
	now         func() time.Time
}

// ApprovalOption customises the approval service.
type ApprovalOption func(*ApprovalService)

// WithApprovalClock overrides the decision timestamp source.
func WithApprovalClock(now func() time.Time) ApprovalOption {
	return func(s *ApprovalService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSyncTimeout bounds the post-approval document sync.
func WithSyncTimeout(d time.Duration) ApprovalOption {
	return func(s *ApprovalService) {
		if d > 0 {
			s.syncTimeout = d
		}
	}
}

// WithApprovalMetrics attaches Prometheus counters.
func WithApprovalMetrics(metrics *MetricsService) ApprovalOption {
	return func(s *ApprovalService) {
		s.metrics = metrics
	}
}

// NewApprovalService wires the approval state machine.
func NewApprovalService(store submissionStore, tokens actionTokens, syncer documentSyncer, notifier decisionNotifier, audit auditWriter, logger *zap.Logger, opts ...ApprovalOption) *ApprovalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &ApprovalService{
		store:       store,
		tokens:      tokens,
		syncer:      syncer,
		notifier:    notifier,
		audit:       audit,
		logger:      logger,
		syncTimeout: DefaultSyncTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Approve verifies an approve token and moves the record to APPROVED.
func (s *ApprovalService) Approve(ctx context.Context, kind models.SubmissionKind, token string) (*models.ApprovalOutcome, error) {
	policy, err := s.policy(kind)
	if err != nil {
		return nil, err
	}
	submission, err := s.loadPending(ctx, kind, token, models.ActionApprove)
	if err != nil {
		return nil, err
	}

	decidedAt := s.now().UTC()
	if err := s.transition(ctx, submission, models.SubmissionStatusApproved, nil, decidedAt); err != nil {
		return nil, err
	}

	outcome := &models.ApprovalOutcome{Submission: submission, Action: models.ActionApprove}
	if policy.SyncOnApprove {
		outcome.Sync = s.runSync(ctx, submission)
	}
	if policy.NotifySubmitterOnApprove && s.notifier != nil {
		outcome.Notified = append(outcome.Notified, s.notifier.NotifyApproved(ctx, submission)...)
	}

	details := map[string]interface{}{"kind": kind}
	if outcome.Sync != nil {
		details["syncFolder"] = outcome.Sync.Folder
		details["syncSucceeded"] = len(outcome.Sync.Succeeded)
		details["syncFailed"] = len(outcome.Sync.Failed)
	}
	s.emitAudit(ctx, models.AuditActionApproved, submission.ID, details)

	s.logger.Info("submission approved",
		zap.String("submission_id", submission.ID),
		zap.String("kind", string(kind)),
		zap.Strings("notified", outcome.Notified),
	)
	return outcome, nil
}

// PrepareRejection verifies a vendor reject token and returns the still-pending
// record so a reason form can be rendered. Nothing is written.
func (s *ApprovalService) PrepareRejection(ctx context.Context, kind models.SubmissionKind, token string) (*models.Submission, error) {
	if _, err := s.policy(kind); err != nil {
		return nil, err
	}
	return s.loadPending(ctx, kind, token, models.ActionReject)
}

// Reject verifies a reject token and moves the record to REJECTED. Kinds that
// collect a reason store it when one is given; a blank reason is stored as NULL.
func (s *ApprovalService) Reject(ctx context.Context, kind models.SubmissionKind, token, reason string) (*models.ApprovalOutcome, error) {
	policy, err := s.policy(kind)
	if err != nil {
		return nil, err
	}
	submission, err := s.loadPending(ctx, kind, token, models.ActionReject)
	if err != nil {
		return nil, err
	}

	var storedReason *string
	if policy.CollectRejectReason {
		cleaned := strings.TrimSpace(reason)
		if utf8.RuneCountInString(cleaned) > MaxRejectReasonLength {
			return nil, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("reason must be at most %d characters", MaxRejectReasonLength))
		}
		if cleaned != "" {
			storedReason = &cleaned
		}
	}

	decidedAt := s.now().UTC()
	if err := s.transition(ctx, submission, models.SubmissionStatusRejected, storedReason, decidedAt); err != nil {
		return nil, err
	}

	outcome := &models.ApprovalOutcome{Submission: submission, Action: models.ActionReject}
	reasonText := ""
	if storedReason != nil {
		reasonText = *storedReason
	}
	if s.notifier != nil {
		if policy.NotifySubmitterOnReject {
			outcome.Notified = append(outcome.Notified, s.notifier.NotifyRejected(ctx, submission, reasonText)...)
		}
		if policy.AlertAdminOnReject {
			outcome.Notified = append(outcome.Notified, s.notifier.NotifyAdminRejected(ctx, submission, reasonText)...)
		}
	}

	details := map[string]interface{}{"kind": kind}
	if storedReason != nil {
		details["reason"] = reasonText
	}
	s.emitAudit(ctx, models.AuditActionRejected, submission.ID, details)

	s.logger.Info("submission rejected",
		zap.String("submission_id", submission.ID),
		zap.String("kind", string(kind)),
		zap.Strings("notified", outcome.Notified),
	)
	return outcome, nil
}

// Links reissues the approve/reject URLs for a record that is still pending.
func (s *ApprovalService) Links(ctx context.Context, kind models.SubmissionKind, id string) (*models.ActionLinks, error) {
	if _, err := s.policy(kind); err != nil {
		return nil, err
	}
	submission, err := s.fetch(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !submission.Status.IsPending() {
		return nil, alreadyProcessed(submission)
	}
	links, err := s.tokens.IssuePair(kind, submission.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue approval links")
	}
	s.emitAudit(ctx, models.AuditActionLinksReissued, submission.ID, map[string]interface{}{"kind": kind, "expiresAt": links.ExpiresAt})
	return links, nil
}

func (s *ApprovalService) policy(kind models.SubmissionKind) (ApprovalPolicy, error) {
	policy, ok := PolicyFor(kind)
	if !ok {
		return ApprovalPolicy{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown submission kind %q", kind))
	}
	return policy, nil
}

func (s *ApprovalService) loadPending(ctx context.Context, kind models.SubmissionKind, token string, action models.Action) (*models.Submission, error) {
	claims, err := s.tokens.Verify(token, kind, action)
	if err != nil {
		s.metrics.RecordDecision(kind, action, OutcomeRejectedLink)
		return nil, err
	}
	submission, err := s.fetch(ctx, kind, claims.SubmissionID)
	if err != nil {
		outcome := OutcomeError
		if errors.Is(err, appErrors.ErrRecordNotFound) {
			outcome = OutcomeNotFound
		}
		s.metrics.RecordDecision(kind, action, outcome)
		return nil, err
	}
	if !submission.Status.IsPending() {
		s.metrics.RecordDecision(kind, action, OutcomeAlreadyProcessed)
		return nil, alreadyProcessed(submission)
	}
	return submission, nil
}

func (s *ApprovalService) fetch(ctx context.Context, kind models.SubmissionKind, id string) (*models.Submission, error) {
	submission, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrRecordNotFound, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submission")
	}
	if submission.Kind != kind {
		return nil, appErrors.Clone(appErrors.ErrRecordNotFound, "")
	}
	return submission, nil
}

func (s *ApprovalService) transition(ctx context.Context, submission *models.Submission, to models.SubmissionStatus, reason *string, decidedAt time.Time) error {
	action := models.ActionApprove
	if to == models.SubmissionStatusRejected {
		action = models.ActionReject
	}
	err := s.store.TransitionStatus(ctx, models.StatusTransition{
		ID:        submission.ID,
		Kind:      submission.Kind,
		To:        to,
		Reason:    reason,
		DecidedAt: decidedAt,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.RecordDecision(submission.Kind, action, OutcomeAlreadyProcessed)
			s.logger.Info("lost decision race",
				zap.String("submission_id", submission.ID),
				zap.String("attempted", string(to)),
			)
			return appErrors.Clone(appErrors.ErrAlreadyProcessed, "")
		}
		s.metrics.RecordDecision(submission.Kind, action, OutcomeError)
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update submission status")
	}
	s.metrics.RecordDecision(submission.Kind, action, OutcomeCommitted)
	submission.Status = to
	submission.RejectReason = reason
	submission.DecidedAt = &decidedAt
	return nil
}

// runSync copies vendor documents after the status write has committed. It runs
// detached from the request context so a dropped connection does not abort it.
func (s *ApprovalService) runSync(ctx context.Context, submission *models.Submission) *models.SyncResult {
	if s.syncer == nil {
		return nil
	}
	syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.syncTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.syncer.SyncVendor(syncCtx, submission)
	if result == nil {
		result = &models.SyncResult{}
	}
	if err != nil && result.Err == "" {
		result.Err = err.Error()
	}
	ok := err == nil && result.OK()
	s.metrics.RecordSync(ok, time.Since(start))

	annotation := models.SyncAnnotation{
		Status:    models.SyncStatusCompleted,
		Folder:    result.Folder,
		Succeeded: len(result.Succeeded),
		Failed:    len(result.Failed),
	}
	if !ok {
		annotation.Status = models.SyncStatusFailed
		annotation.Error = result.Err
		if annotation.Error == "" {
			annotation.Error = result.Message
		}
		failure := appErrors.Wrap(err, appErrors.ErrSyncFailure.Code, appErrors.ErrSyncFailure.Status, appErrors.ErrSyncFailure.Message)
		s.logger.Warn("document sync failed",
			zap.String("submission_id", submission.ID),
			zap.String("folder", result.Folder),
			zap.Int("failed", len(result.Failed)),
			zap.Error(failure),
		)
	}
	recordCtx, cancelRecord := context.WithTimeout(context.WithoutCancel(ctx), syncRecordTimeout)
	defer cancelRecord()
	if err := s.store.RecordSync(recordCtx, submission.ID, annotation); err != nil {
		s.logger.Warn("failed to annotate sync result", zap.String("submission_id", submission.ID), zap.Error(err))
	} else {
		submission.SyncStatus = &annotation.Status
		submission.SyncFolder = &annotation.Folder
		submission.SyncSucceeded = &annotation.Succeeded
		submission.SyncFailed = &annotation.Failed
		if annotation.Error != "" {
			submission.SyncError = &annotation.Error
		}
	}
	return result
}

func (s *ApprovalService) emitAudit(ctx context.Context, action, submissionID string, details map[string]interface{}) {
	if s.audit == nil {
		return
	}
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}
	id := submissionID
	entry := &models.AuditLog{
		Actor:      "email-link",
		Action:     action,
		Resource:   "submission",
		ResourceID: &id,
		Details:    payload,
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record audit log", zap.String("action", action), zap.String("submission_id", submissionID), zap.Error(err))
	}
}

func alreadyProcessed(submission *models.Submission) error {
	noun := "submission"
	switch submission.Kind {
	case models.SubmissionKindVendor:
		noun = "vendor registration"
	case models.SubmissionKindTestimonial:
		noun = "testimonial"
	}
	return appErrors.Clone(appErrors.ErrAlreadyProcessed,
		fmt.Sprintf("this %s has already been %s", noun, strings.ToLower(string(submission.Status))))
}
