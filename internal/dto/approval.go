package dto

// ApprovalPage is the view model for every approval-link HTML page.
type ApprovalPage struct {
	Title       string
	Heading     string
	Message     string
	Kind        string
	DisplayName string
	Status      int
	Tone        string

	// Rejection form
	FormAction string
	Reason     string
	FormError  string
	MaxReason  int

	// Vendor approval sync summary
	SyncAttempted bool
	SyncFolder    string
	SyncSucceeded int
	SyncFailed    int
	SyncError     string
	Notified      []string
}

// Page tones used by the templates.
const (
	ToneSuccess = "success"
	ToneWarning = "warning"
	ToneError   = "error"
	ToneInfo    = "info"
)
