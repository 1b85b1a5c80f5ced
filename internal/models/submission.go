package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// SubmissionKind distinguishes the record types that go through link approval.
type SubmissionKind string

const (
	SubmissionKindTestimonial SubmissionKind = "TESTIMONIAL"
	SubmissionKindVendor      SubmissionKind = "VENDOR"
)

// Valid reports whether k is a known kind.
func (k SubmissionKind) Valid() bool {
	return k == SubmissionKindTestimonial || k == SubmissionKindVendor
}

// ParseSubmissionKind accepts the lower or upper case form.
func ParseSubmissionKind(raw string) (SubmissionKind, error) {
	kind := SubmissionKind(strings.ToUpper(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", fmt.Errorf("unknown submission kind %q", raw)
	}
	return kind, nil
}

// SubmissionStatus is the tri-state approval flag.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "PENDING"
	SubmissionStatusApproved SubmissionStatus = "APPROVED"
	SubmissionStatusRejected SubmissionStatus = "REJECTED"
)

// Scan reads NULL and empty values as PENDING.
func (s *SubmissionStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = SubmissionStatusPending
	case string:
		*s = normalizeStatus(v)
	case []byte:
		*s = normalizeStatus(string(v))
	default:
		return fmt.Errorf("unsupported status type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (s SubmissionStatus) Value() (driver.Value, error) {
	if s == "" {
		return string(SubmissionStatusPending), nil
	}
	return string(s), nil
}

// IsPending reports whether the record can still be decided.
func (s SubmissionStatus) IsPending() bool {
	return s == "" || s == SubmissionStatusPending
}

func normalizeStatus(raw string) SubmissionStatus {
	if strings.TrimSpace(raw) == "" {
		return SubmissionStatusPending
	}
	return SubmissionStatus(strings.ToUpper(raw))
}

// Sync outcome states stored on approved vendor records.
const (
	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"
)

// Submission is a testimonial or vendor registration awaiting or past review.
type Submission struct {
	ID            string           `db:"id" json:"id"`
	Kind          SubmissionKind   `db:"kind" json:"kind"`
	Status        SubmissionStatus `db:"status" json:"status"`
	Email         *string          `db:"email" json:"email,omitempty"`
	DisplayName   string           `db:"display_name" json:"displayName"`
	Payload       types.JSONText   `db:"payload" json:"payload" swaggertype:"object"`
	RejectReason  *string          `db:"reject_reason" json:"rejectReason,omitempty"`
	SyncStatus    *string          `db:"sync_status" json:"syncStatus,omitempty"`
	SyncFolder    *string          `db:"sync_folder" json:"syncFolder,omitempty"`
	SyncError     *string          `db:"sync_error" json:"syncError,omitempty"`
	SyncSucceeded *int             `db:"sync_succeeded" json:"syncSucceeded,omitempty"`
	SyncFailed    *int             `db:"sync_failed" json:"syncFailed,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"createdAt"`
	DecidedAt     *time.Time       `db:"decided_at" json:"decidedAt,omitempty"`
}

// ContactEmail returns the submitter address when one is on file.
func (s *Submission) ContactEmail() (string, bool) {
	if s == nil || s.Email == nil {
		return "", false
	}
	email := strings.TrimSpace(*s.Email)
	return email, email != ""
}

// VendorDetails decodes the payload of a vendor submission.
func (s *Submission) VendorDetails() (*VendorDetails, error) {
	if s.Kind != SubmissionKindVendor {
		return nil, fmt.Errorf("submission %s is %s, not a vendor", s.ID, s.Kind)
	}
	var details VendorDetails
	if len(s.Payload) > 0 {
		if err := s.Payload.Unmarshal(&details); err != nil {
			return nil, fmt.Errorf("decode vendor payload: %w", err)
		}
	}
	return &details, nil
}

// TestimonialDetails decodes the payload of a testimonial submission.
func (s *Submission) TestimonialDetails() (*TestimonialDetails, error) {
	if s.Kind != SubmissionKindTestimonial {
		return nil, fmt.Errorf("submission %s is %s, not a testimonial", s.ID, s.Kind)
	}
	var details TestimonialDetails
	if len(s.Payload) > 0 {
		if err := s.Payload.Unmarshal(&details); err != nil {
			return nil, fmt.Errorf("decode testimonial payload: %w", err)
		}
	}
	return &details, nil
}

// SubmissionFilter constrains admin listings.
type SubmissionFilter struct {
	Kind     SubmissionKind
	Status   SubmissionStatus
	Page     int
	PageSize int
}

// StatusTransition is the single conditional write that decides a record.
type StatusTransition struct {
	ID        string
	Kind      SubmissionKind
	To        SubmissionStatus
	Reason    *string
	DecidedAt time.Time
}

// SyncAnnotation records a document sync attempt on an approved record.
type SyncAnnotation struct {
	Status    string
	Folder    string
	Error     string
	Succeeded int
	Failed    int
}
