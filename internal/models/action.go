package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Action is the transition an emailed link authorizes.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ActionClaims is the signed payload of an approve or reject link.
type ActionClaims struct {
	SubmissionID string         `json:"submission_id"`
	Kind         SubmissionKind `json:"kind"`
	Action       Action         `json:"action"`
	jwt.RegisteredClaims
}

// ActionLinks pairs the approve and reject tokens issued for one submission.
type ActionLinks struct {
	SubmissionID string    `json:"submissionId"`
	ApproveToken string    `json:"-"`
	RejectToken  string    `json:"-"`
	ApproveURL   string    `json:"approveUrl"`
	RejectURL    string    `json:"rejectUrl"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ApprovalOutcome summarizes a committed transition for the confirmation page.
type ApprovalOutcome struct {
	Submission *Submission
	Action     Action
	Sync       *SyncResult
	Notified   []string
}
