package dto

import (
	"fmt"
	"net/http"
	"time"
)

// PassengerRequest is one traveller on a booking.
type PassengerRequest struct {
	Type      string `json:"type" validate:"required,paxcode"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// BirthDateValue returns the parsed birth date. Call after validation.
func (p PassengerRequest) BirthDateValue() (time.Time, error) {
	parsed, err := time.Parse(FlightDateLayout, p.BirthDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse birth date: %w", err)
	}

	return parsed, nil
}

// ContactRequest is the booking's single contact person.
type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type CreateBookingRequest struct {
	FlightKey  string             `json:"flight_key" validate:"required"`
	Passengers []PassengerRequest `json:"passengers" validate:"required,min=1,dive"`
	Contact    ContactRequest     `json:"contact" validate:"required"`
}

func (r *CreateBookingRequest) Bind(_ *http.Request) error {
	if err := ValidateFields(r); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

// RetrieveBookingRequest carries the booking reference from the URL.
type RetrieveBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

func (r *RetrieveBookingRequest) Validate() error {
	if err := ValidateFields(r); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

// BookingResponse echoes a created or retrieved booking.
type BookingResponse struct {
	BookingID    string             `json:"booking_id"`
	FlightNumber string             `json:"flight_number"`
	FlightDate   string             `json:"flight_date"`
	Origin       string             `json:"origin"`
	Destination  string             `json:"destination"`
	Passengers   []PassengerRequest `json:"passengers"`
	Contact      ContactRequest     `json:"contact"`
	BookingDate  time.Time          `json:"booking_date"`
	TotalPrice   float64            `json:"total_price"`
}
