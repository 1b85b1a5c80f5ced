package models

// VendorDetails is the charter operator registration payload. Documents maps a
// document type (e.g. "insuranceCertificate") to its object key in storage.
type VendorDetails struct {
	CompanyName       string            `json:"companyName"`
	ContactName       string            `json:"contactName"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone,omitempty"`
	Website           string            `json:"website,omitempty"`
	Address           string            `json:"address,omitempty"`
	CertificateNumber string            `json:"certificateNumber,omitempty"`
	AircraftTypes     []string          `json:"aircraftTypes,omitempty"`
	FleetSize         int               `json:"fleetSize,omitempty"`
	InsuranceExpiry   string            `json:"insuranceExpiry,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	Documents         map[string]string `json:"documents,omitempty"`
}

// TestimonialDetails is a customer testimonial awaiting publication.
type TestimonialDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	Rating   int    `json:"rating"`
	Message  string `json:"message"`
}

// PublishedTestimonial is the public view of an approved testimonial.
type PublishedTestimonial struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	Rating   int    `json:"rating"`
	Message  string `json:"message"`
}
