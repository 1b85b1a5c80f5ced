package models

import "time"

// SyncedDocument is the per-document result of a sync attempt.
type SyncedDocument struct {
	DocType   string `json:"docType"`
	SourceKey string `json:"sourceKey"`
	TargetKey string `json:"targetKey,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SyncResult is returned by the document sync collaborator.
type SyncResult struct {
	Folder    string           `json:"folder"`
	Succeeded []SyncedDocument `json:"succeeded"`
	Failed    []SyncedDocument `json:"failed"`
	Message   string           `json:"message"`
	Err       string           `json:"error,omitempty"`
}

// OK reports whether every document was copied.
func (r *SyncResult) OK() bool {
	return r != nil && r.Err == "" && len(r.Failed) == 0
}

// DocumentSyncLog is one row of the document_sync_logs audit table.
type DocumentSyncLog struct {
	ID           string    `db:"id" json:"id"`
	SubmissionID string    `db:"submission_id" json:"submissionId"`
	Destination  string    `db:"destination" json:"destination"`
	Success      bool      `db:"success" json:"success"`
	Folder       *string   `db:"folder" json:"folder,omitempty"`
	Succeeded    int       `db:"succeeded" json:"succeeded"`
	Failed       int       `db:"failed" json:"failed"`
	Message      string    `db:"message" json:"message"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
