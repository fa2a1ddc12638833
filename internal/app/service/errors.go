package service

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/flight-booking-service/internal/pkg/exception"
)

var ErrNoMatchingFlights = exception.ApplicationError{
	Message:    "No matching flights found.",
	StatusCode: http.StatusBadRequest,
}

var ErrFlightNotFound = exception.ApplicationError{
	Message:    "Selected flight does not exist.",
	StatusCode: http.StatusNotFound,
}

var ErrFlightInPast = exception.ApplicationError{
	Message:    "Cannot book a flight in the past.",
	StatusCode: http.StatusBadRequest,
}

var ErrNoAdultPassenger = exception.ApplicationError{
	Message:    "Booking must include at least one adult (ADT).",
	StatusCode: http.StatusBadRequest,
}

func errUnderageAdult(firstName, lastName string) error {
	return exception.ApplicationError{
		Message: fmt.Sprintf("Passenger '%s %s' must be at least 16 years old to be an adult.",
			firstName, lastName),
		StatusCode: http.StatusBadRequest,
	}
}

func errBookingNotFound(bookingID string) error {
	return exception.ApplicationError{
		Message:    fmt.Sprintf("Booking with ID '%s' not found.", bookingID),
		StatusCode: http.StatusNotFound,
	}
}
