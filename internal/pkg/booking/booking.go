// Package booking holds the persisted booking entities and the passenger
// type enumeration shared by the service and repository layers.
package booking

import (
	"time"

	"github.com/google/uuid"
)

// Audit carries the surrogate key and audit columns common to all
// persisted entities. Soft-deleted rows are excluded from reads.
type Audit struct {
	ID         uuid.UUID
	CreatedOn  time.Time
	CreatedBy  string
	ModifiedOn *time.Time
	ModifiedBy *string
	IsDeleted  bool
}

// Booking is one confirmed reservation. It exclusively owns its
// passengers and contact.
type Booking struct {
	Audit

	BookingID    string
	FlightNumber string
	FlightDate   time.Time
	Origin       string
	Destination  string
	BookingDate  time.Time
	TotalPrice   float64
	Passengers   []Passenger
	Contact      Contact
}

// Passenger is booking-scoped and never persisted independently.
type Passenger struct {
	Audit

	Type      PaxType
	FirstName string
	LastName  string
	BirthDate time.Time
}

// Contact is the single contact person of a booking.
type Contact struct {
	Audit

	FirstName string
	LastName  string
	Email     string
}
