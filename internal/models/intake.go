package models

import "time"

// Contact is a message from the website contact form.
type Contact struct {
	ID        string    `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// TripRequest is a charter quote request.
type TripRequest struct {
	ID                  string    `db:"id" json:"id"`
	FirstName           string    `db:"first_name" json:"firstName"`
	LastName            string    `db:"last_name" json:"lastName"`
	Email               string    `db:"email" json:"email"`
	Phone               string    `db:"phone" json:"phone"`
	AircraftType        string    `db:"aircraft_type" json:"aircraftType"`
	TripType            string    `db:"trip_type" json:"tripType"`
	DepartureLocation   string    `db:"departure_location" json:"departureLocation"`
	StartDate           string    `db:"start_date" json:"startDate"`
	DepartureTime       string    `db:"departure_time" json:"departureTime"`
	DestinationLocation string    `db:"destination_location" json:"destinationLocation"`
	ReturnDate          *string   `db:"return_date" json:"returnDate,omitempty"`
	ReturnTime          *string   `db:"return_time" json:"returnTime,omitempty"`
	TripDetails         string    `db:"trip_details" json:"tripDetails"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
}

// Survey is a post-flight customer satisfaction survey.
type Survey struct {
	ID                  string    `db:"id" json:"id"`
	BookingEfficiency   int       `db:"booking_efficiency" json:"bookingEfficiency"`
	FBOLocating         int       `db:"fbo_locating" json:"fboLocating"`
	FBOStaffCourtesy    int       `db:"fbo_staff_courtesy" json:"fboStaffCourtesy"`
	AircraftCleanliness int       `db:"aircraft_cleanliness" json:"aircraftCleanliness"`
	CabinComfort        int       `db:"cabin_comfort" json:"cabinComfort"`
	CrewProfessionalism int       `db:"crew_professionalism" json:"crewProfessionalism"`
	OverallSatisfaction int       `db:"overall_satisfaction" json:"overallSatisfaction"`
	WillRecommend       bool      `db:"will_recommend" json:"willRecommend"`
	Email               *string   `db:"email" json:"email,omitempty"`
	Comments            *string   `db:"comments" json:"comments,omitempty"`
	SubmittedAt         time.Time `db:"submitted_at" json:"submittedAt"`
}

// Subscriber is a newsletter sign-up.
type Subscriber struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
