package service

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
	"github.com/csmaviation/website-api/pkg/jobs"
	"github.com/csmaviation/website-api/pkg/mailer"
)

//go:embed templates/email/*.html
var emailTemplateFS embed.FS

// Email template names; also used as job types and metric labels.
const (
	TemplateVendorSubmitted      = "vendor_submitted"
	TemplateTestimonialSubmitted = "testimonial_submitted"
	TemplateVendorApproved       = "vendor_approved"
	TemplateTestimonialApproved  = "testimonial_approved"
	TemplateVendorRejected       = "vendor_rejected"
	TemplateVendorRejectedAdmin  = "vendor_rejected_admin"
	TemplateContact              = "contact"
	TemplateTripRequest          = "trip_request"
)

const defaultRejectReason = "No specific reason provided."

var documentLabels = map[string]string{
	"insuranceCertificate":  "Insurance Certificate",
	"airCarrierCertificate": "Air Carrier Certificate",
	"operationsSpecs":       "Operations Specifications",
	"aircraftList":          "Aircraft List",
	"w9":                    "W-9",
}

type mailQueue interface {
	Enqueue(job jobs.Job) error
}

type documentLinker interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// NotificationConfig configures outbound email.
type NotificationConfig struct {
	AdminEmail  string
	DocumentTTL time.Duration
}

// NotificationService renders transactional emails and hands them to the
// background queue. Failures are logged and counted, never returned.
type NotificationService struct {
	sender    mailer.Sender
	queue     mailQueue
	linker    documentLinker
	templates *template.Template
	config    NotificationConfig
	metrics   *MetricsService
	logger    *zap.Logger
}

type emailJob struct {
	Template string
	Message  mailer.Message
}

type documentLink struct {
	Label string
	Key   string
	URL   string
}

// NewNotificationService parses the embedded templates.
func NewNotificationService(sender mailer.Sender, cfg NotificationConfig, metrics *MetricsService, logger *zap.Logger) (*NotificationService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DocumentTTL <= 0 {
		cfg.DocumentTTL = 24 * time.Hour
	}
	tmpl, err := template.New("email").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(emailTemplateFS, "templates/email/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &NotificationService{
		sender:    sender,
		templates: tmpl,
		config:    cfg,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// UseQueue routes outbound mail through q. Without a queue, mail is sent inline.
func (s *NotificationService) UseQueue(q mailQueue) {
	s.queue = q
}

// UseDocumentLinker enables presigned document links in admin alerts.
func (s *NotificationService) UseDocumentLinker(linker documentLinker) {
	s.linker = linker
}

// NotifyNewSubmission alerts the admin inbox with the approve/reject links.
func (s *NotificationService) NotifyNewSubmission(ctx context.Context, submission *models.Submission, links *models.ActionLinks) []string {
	if links == nil {
		return nil
	}
	switch submission.Kind {
	case models.SubmissionKindVendor:
		vendor, err := submission.VendorDetails()
		if err != nil {
			s.logger.Warn("cannot render vendor alert", zap.String("submission_id", submission.ID), zap.Error(err))
			return nil
		}
		data := map[string]interface{}{
			"Vendor":    vendor,
			"Links":     links,
			"Documents": s.documentLinks(ctx, vendor.Documents),
		}
		return s.toAdmin(ctx, TemplateVendorSubmitted, "New Vendor Registration: "+vendor.CompanyName, data)
	case models.SubmissionKindTestimonial:
		testimonial, err := submission.TestimonialDetails()
		if err != nil {
			s.logger.Warn("cannot render testimonial alert", zap.String("submission_id", submission.ID), zap.Error(err))
			return nil
		}
		data := map[string]interface{}{"Testimonial": testimonial, "Links": links}
		return s.toAdmin(ctx, TemplateTestimonialSubmitted, "New Testimonial: "+testimonial.FullName, data)
	}
	return nil
}

// NotifyApproved tells the submitter their record was accepted.
func (s *NotificationService) NotifyApproved(ctx context.Context, submission *models.Submission) []string {
	email, ok := submission.ContactEmail()
	if !ok {
		return nil
	}
	data := map[string]interface{}{"Name": submission.DisplayName}
	if submission.Kind == models.SubmissionKindVendor {
		return s.send(ctx, TemplateVendorApproved, "Your Vendor Registration Has Been Approved", []string{email}, data)
	}
	return s.send(ctx, TemplateTestimonialApproved, "Your Testimonial Has Been Published", []string{email}, data)
}

// NotifyRejected tells a vendor their registration was declined.
func (s *NotificationService) NotifyRejected(ctx context.Context, submission *models.Submission, reason string) []string {
	email, ok := submission.ContactEmail()
	if !ok || submission.Kind != models.SubmissionKindVendor {
		return nil
	}
	data := map[string]interface{}{"Name": submission.DisplayName, "Reason": reasonOrDefault(reason)}
	return s.send(ctx, TemplateVendorRejected, "Regarding Your CSM Aviation Vendor Registration", []string{email}, data)
}

// NotifyAdminRejected records a vendor rejection in the admin inbox.
func (s *NotificationService) NotifyAdminRejected(ctx context.Context, submission *models.Submission, reason string) []string {
	email, _ := submission.ContactEmail()
	data := map[string]interface{}{
		"Name":   submission.DisplayName,
		"Email":  email,
		"Reason": reasonOrDefault(reason),
	}
	return s.toAdmin(ctx, TemplateVendorRejectedAdmin, "Vendor Rejected: "+submission.DisplayName, data)
}

// NotifyContact forwards a contact form message to the admin inbox.
func (s *NotificationService) NotifyContact(ctx context.Context, contact *models.Contact) []string {
	return s.toAdmin(ctx, TemplateContact, "New Contact Form Submission", contact)
}

// NotifyTripRequest forwards a charter quote request to the admin inbox.
func (s *NotificationService) NotifyTripRequest(ctx context.Context, trip *models.TripRequest) []string {
	return s.toAdmin(ctx, TemplateTripRequest, "New Trip Request", trip)
}

// Dispatch is the queue handler that performs delivery.
func (s *NotificationService) Dispatch(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(emailJob)
	if !ok {
		return fmt.Errorf("unexpected email job payload %T", job.Payload)
	}
	err := s.sender.Send(ctx, payload.Message)
	if err != nil && errors.Is(err, mailer.ErrNoRecipients) {
		s.logger.Warn("dropping email without recipients", zap.String("template", payload.Template))
		s.metrics.RecordNotification(payload.Template, err)
		return nil
	}
	if err == nil {
		s.metrics.RecordNotification(payload.Template, nil)
	}
	return err
}

// OnDrop counts a message abandoned after its retries.
func (s *NotificationService) OnDrop(job jobs.Job, err error) {
	name := job.Type
	if payload, ok := job.Payload.(emailJob); ok {
		name = payload.Template
	}
	failure := deliveryFailure(err)
	s.metrics.RecordNotification(name, failure)
	s.logger.Error("email delivery abandoned", zap.String("template", name), zap.Int("attempts", job.Attempt), zap.Error(failure))
}

func (s *NotificationService) toAdmin(ctx context.Context, name, subject string, data interface{}) []string {
	if strings.TrimSpace(s.config.AdminEmail) == "" {
		s.logger.Warn("admin email not configured, skipping alert", zap.String("template", name))
		return nil
	}
	return s.send(ctx, name, subject, []string{s.config.AdminEmail}, data)
}

func (s *NotificationService) send(ctx context.Context, name, subject string, to []string, data interface{}) []string {
	body, err := s.render(name, data)
	if err != nil {
		s.metrics.RecordNotification(name, err)
		s.logger.Error("failed to render email", zap.String("template", name), zap.Error(err))
		return nil
	}
	msg := mailer.Message{To: to, Subject: subject, HTML: body}

	if s.queue == nil {
		if err := s.Dispatch(ctx, jobs.Job{Type: name, Payload: emailJob{Template: name, Message: msg}}); err != nil {
			failure := deliveryFailure(err)
			s.metrics.RecordNotification(name, failure)
			s.logger.Warn("email delivery failed", zap.String("template", name), zap.Error(failure))
			return nil
		}
		return to
	}

	if err := s.queue.Enqueue(jobs.Job{Type: name, Payload: emailJob{Template: name, Message: msg}}); err != nil {
		failure := deliveryFailure(err)
		s.metrics.RecordNotification(name, failure)
		s.logger.Warn("failed to enqueue email", zap.String("template", name), zap.Error(failure))
		return nil
	}
	return to
}

func (s *NotificationService) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *NotificationService) documentLinks(ctx context.Context, documents map[string]string) []documentLink {
	if len(documents) == 0 {
		return nil
	}
	types := make([]string, 0, len(documents))
	for docType := range documents {
		types = append(types, docType)
	}
	sort.Strings(types)

	links := make([]documentLink, 0, len(types))
	for _, docType := range types {
		key := documents[docType]
		if key == "" {
			continue
		}
		link := documentLink{Label: documentLabel(docType), Key: key}
		if s.linker != nil {
			url, err := s.linker.PresignGet(ctx, key, s.config.DocumentTTL)
			if err != nil {
				s.logger.Warn("failed to presign document", zap.String("key", key), zap.Error(err))
			} else {
				link.URL = url
			}
		}
		links = append(links, link)
	}
	return links
}

func documentLabel(docType string) string {
	if label, ok := documentLabels[docType]; ok {
		return label
	}
	return docType
}

func deliveryFailure(err error) error {
	return appErrors.Wrap(err, appErrors.ErrNotificationFailure.Code, appErrors.ErrNotificationFailure.Status, appErrors.ErrNotificationFailure.Message)
}

func reasonOrDefault(reason string) string {
	if strings.TrimSpace(reason) == "" {
		return defaultRejectReason
	}
	return reason
}
