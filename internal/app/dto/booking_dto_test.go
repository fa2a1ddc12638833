//go:build unit

package dto

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/exception"
)

func TestCreateBookingRequest_Validate(t *testing.T) {
	// Initialize validator for tests
	_ = InitValidator()

	validateRequest := func(req CreateBookingRequest, wantFields map[string][]string) func(t *testing.T) {
		return func(t *testing.T) {
			err := ValidateFields(&req)

			if wantFields == nil {
				if err != nil {
					t.Fatalf("ValidateFields() unexpected error: %v", err)
				}
				return
			}

			var validationErr exception.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("ValidateFields() error = %v, want ValidationError", err)
			}

			if diff := cmp.Diff(wantFields, validationErr.Fields); diff != "" {
				t.Fatalf("ValidateFields() fields mismatch (-want +got):\n%s", diff)
			}
		}
	}

	adult := PassengerRequest{
		Type:      "ADT",
		FirstName: "Marta",
		LastName:  "Puig",
		BirthDate: "1990-06-15",
	}
	contact := ContactRequest{
		FirstName: "Marta",
		LastName:  "Puig",
		Email:     "marta@example.com",
	}

	t.Run("valid_request", validateRequest(CreateBookingRequest{
		FlightKey:  "FK1",
		Passengers: []PassengerRequest{adult},
		Contact:    contact,
	}, nil))

	t.Run("missing_flight_key", validateRequest(CreateBookingRequest{
		Passengers: []PassengerRequest{adult},
		Contact:    contact,
	}, map[string][]string{
		"flight_key": {"flight_key is a required field"},
	}))

	t.Run("no_passengers", validateRequest(CreateBookingRequest{
		FlightKey: "FK1",
		Contact:   contact,
	}, map[string][]string{
		"passengers": {"passengers is a required field"},
	}))

	t.Run("invalid_passenger_type", validateRequest(CreateBookingRequest{
		FlightKey: "FK1",
		Passengers: []PassengerRequest{{
			Type:      "XXX",
			FirstName: "Jon",
			LastName:  "Vila",
			BirthDate: "2015-01-01",
		}},
		Contact: contact,
	}, map[string][]string{
		"passengers[0].type": {"Only 'ADT' (Adult) and 'CHD' (Child) are allowed."},
	}))

	t.Run("invalid_email", validateRequest(CreateBookingRequest{
		FlightKey:  "FK1",
		Passengers: []PassengerRequest{adult},
		Contact: ContactRequest{
			FirstName: "Marta",
			LastName:  "Puig",
			Email:     "not-an-email",
		},
	}, map[string][]string{
		"contact.email": {"email must be a valid email address"},
	}))

	t.Run("multiple_failures_collected", validateRequest(CreateBookingRequest{
		Passengers: []PassengerRequest{{
			Type:      "ADT",
			FirstName: "Jon",
			LastName:  "Vila",
			BirthDate: "15-06-1990",
		}},
		Contact: contact,
	}, map[string][]string{
		"flight_key":               {"flight_key is a required field"},
		"passengers[0].birth_date": {"birth_date does not match the 2006-01-02 format"},
	}))
}

func TestPassengerRequest_BirthDateValue(t *testing.T) {
	pax := PassengerRequest{BirthDate: "2010-09-01"}

	got, err := pax.BirthDateValue()
	if err != nil {
		t.Fatalf("BirthDateValue() error = %v", err)
	}

	if got.Year() != 2010 {
		t.Fatalf("BirthDateValue() year = %d", got.Year())
	}
}
