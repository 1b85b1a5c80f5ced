package dto

// ContactRequest is the website contact form.
type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Message   string `json:"message" validate:"required,max=5000"`
}

// TripRequest is the charter quote form.
type TripRequest struct {
	FirstName           string `json:"firstName" validate:"required,max=100"`
	LastName            string `json:"lastName" validate:"required,max=100"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone" validate:"required,max=40"`
	AircraftType        string `json:"aircraftType" validate:"max=100"`
	TripType            string `json:"tripType" validate:"required,oneof=one-way round-trip multi-leg"`
	DepartureLocation   string `json:"departureLocation" validate:"required,max=200"`
	StartDate           string `json:"startDate" validate:"required"`
	DepartureTime       string `json:"departureTime"`
	DestinationLocation string `json:"destinationLocation" validate:"required,max=200"`
	ReturnDate          string `json:"returnDate"`
	ReturnTime          string `json:"returnTime"`
	TripDetails         string `json:"tripDetails" validate:"max=5000"`
}

// SurveyRequest is the post-flight satisfaction survey. WillRecommend carries
// the form's "Yes"/"No" answer.
type SurveyRequest struct {
	BookingEfficiency   int    `json:"bookingEfficiency" validate:"required,min=1,max=5"`
	FBOLocating         int    `json:"fboLocating" validate:"required,min=1,max=5"`
	FBOStaffCourtesy    int    `json:"fboStaffCourtesy" validate:"required,min=1,max=5"`
	AircraftCleanliness int    `json:"aircraftCleanliness" validate:"required,min=1,max=5"`
	CabinComfort        int    `json:"cabinComfort" validate:"required,min=1,max=5"`
	CrewProfessionalism int    `json:"crewProfessionalism" validate:"required,min=1,max=5"`
	OverallSatisfaction int    `json:"overallSatisfaction" validate:"required,min=1,max=5"`
	WillRecommend       string `json:"willRecommend" validate:"required,oneof=Yes No yes no"`
	Email               string `json:"email" validate:"omitempty,email"`
	Comments            string `json:"comments" validate:"max=5000"`
}

// SubscribeRequest is the newsletter sign-up.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VendorRegistrationRequest is the charter operator onboarding form. Documents
// maps a document type to the key returned by the upload endpoint.
type VendorRegistrationRequest struct {
	CompanyName       string            `json:"companyName" validate:"required,max=200"`
	ContactName       string            `json:"contactName" validate:"required,max=200"`
	Email             string            `json:"email" validate:"required,email"`
	Phone             string            `json:"phone" validate:"max=40"`
	Website           string            `json:"website" validate:"omitempty,url"`
	Address           string            `json:"address" validate:"max=500"`
	CertificateNumber string            `json:"certificateNumber" validate:"max=100"`
	AircraftTypes     []string          `json:"aircraftTypes" validate:"max=50,dive,max=100"`
	FleetSize         int               `json:"fleetSize" validate:"min=0,max=10000"`
	InsuranceExpiry   string            `json:"insuranceExpiry"`
	Notes             string            `json:"notes" validate:"max=5000"`
	Documents         map[string]string `json:"documents" validate:"max=30"`
}

// TestimonialRequest is a customer testimonial submitted for publication.
type TestimonialRequest struct {
	FullName string `json:"fullName" validate:"required,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Company  string `json:"company" validate:"max=200"`
	Location string `json:"location" validate:"max=200"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Message  string `json:"message" validate:"required,max=3000"`
}

// SubmissionReceipt acknowledges a submission that now awaits review.
type SubmissionReceipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// DocumentUpload is a single vendor document received over multipart.
type DocumentUpload struct {
	VendorName  string
	FieldName   string
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentUploadResponse returns the stored key and a temporary link.
type DocumentUploadResponse struct {
	Key       string `json:"key"`
	FileURL   string `json:"fileUrl"`
	ExpiresIn string `json:"expiresIn"`
}

// SubmissionQuery mirrors the admin listing filters.
type SubmissionQuery struct {
	Kind     string `form:"kind"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
