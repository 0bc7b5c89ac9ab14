package records

import (
	"errors"
	"time"
)

var (
	// ErrValidation is returned when a submission is missing required fields
	// or violates a minimum-value constraint.
	ErrValidation = errors.New("validation failed")
)

// Booking is a tour booking submission.
type Booking struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	FullName        string    `bson:"fullName" json:"fullName"`
	Country         string    `bson:"country" json:"country"`
	Email           string    `bson:"email" json:"email"`
	TourDescription string    `bson:"tourDescription" json:"tourDescription"`
	TravelDate      time.Time `bson:"travelDate" json:"travelDate"`
	Duration        int       `bson:"duration" json:"duration"`
	NumPersons      int       `bson:"numPersons" json:"numPersons"`
	ContactNo       string    `bson:"contactNo" json:"contactNo"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// Passenger is one traveller on a confirmed payment.
type Passenger struct {
	Name string `bson:"name" json:"name"`
	Age  int    `bson:"age" json:"age"`
}

// Payment is the payment/confirmation record for a booking.
type Payment struct {
	ID             string      `bson:"_id,omitempty" json:"id"`
	PickupLocation string      `bson:"pickupLocation" json:"pickupLocation"`
	Mobile         string      `bson:"mobile" json:"mobile"`
	CardNumber     string      `bson:"cardNumber" json:"cardNumber"`
	Destination    string      `bson:"destination" json:"destination"`
	Days           int         `bson:"days" json:"days"`
	NumPeople      int         `bson:"numPeople" json:"numPeople"`
	TotalPrice     float64     `bson:"totalPrice" json:"totalPrice"`
	Passengers     []Passenger `bson:"passengers" json:"passengers"`
	CreatedAt      time.Time   `bson:"createdAt" json:"createdAt"`
}

// Review is a visitor review submission.
type Review struct {
	ID     string    `bson:"_id,omitempty" json:"id"`
	Name   string    `bson:"name" json:"name"`
	Email  string    `bson:"email" json:"email"`
	Review string    `bson:"review" json:"review"`
	Date   time.Time `bson:"date" json:"date"`
}
