//go:build unit

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ijalalfrz/flight-booking-service/internal/app/dto"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/booking"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/flightapi"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type bookingMocks struct {
	catalog *MockCatalogSource
	store   *MockBookingStore
	idGen   *MockIDGenerator
}

func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")
}

func yesterday() string {
	return time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
}

func birthYearFor(age int) string {
	return fmt.Sprintf("%d-01-01", time.Now().UTC().Year()-age)
}

func TestBookingService_CreateBooking(t *testing.T) {
	contact := dto.ContactRequest{
		FirstName: "Marta",
		LastName:  "Puig",
		Email:     "marta@example.com",
	}

	adult := dto.PassengerRequest{
		Type:      "ADT",
		FirstName: "Marta",
		LastName:  "Puig",
		BirthDate: "1990-06-15",
	}
	child := dto.PassengerRequest{
		Type:      "CHD",
		FirstName: "Aina",
		LastName:  "Puig",
		BirthDate: "2018-03-02",
	}

	catalogWith := func(flights ...flightapi.ExternalFlight) func(m bookingMocks) {
		return func(m bookingMocks) {
			m.catalog.On("AvailableFlights", mock.Anything).Return(flights, nil)
		}
	}

	createRequest := func(
		req dto.CreateBookingRequest,
		setupMock func(m bookingMocks),
		want dto.BookingResponse,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := bookingMocks{
				catalog: NewMockCatalogSource(t),
				store:   NewMockBookingStore(t),
				idGen:   NewMockIDGenerator(t),
			}
			setupMock(m)

			s := NewBookingService(m.catalog, m.store, m.idGen)

			got, err := s.CreateBooking(context.Background(), req)

			if wantErr != nil {
				assert.Error(t, err)
				if !errors.Is(err, wantErr) && err.Error() != wantErr.Error() {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			assert.NoError(t, err)

			diff := cmp.Diff(want, got, cmpopts.IgnoreFields(dto.BookingResponse{}, "BookingDate"))
			if diff != "" {
				t.Fatalf("CreateBooking() mismatch (-want +got):\n%s", diff)
			}
			assert.WithinDuration(t, time.Now().UTC(), got.BookingDate, 5*time.Second)
		}
	}

	flightFK1 := flightapi.ExternalFlight{
		FlightKey:    "FK1",
		FlightNumber: "VY1001",
		Origin:       "BCN",
		Destination:  "PAR",
		FlightDate:   futureDate(),
		PaxPrices: []flightapi.PaxPrice{
			{Type: "ADT", Price: 100},
			{Type: "CHD", Price: 60},
		},
	}

	t.Run("booking_created", createRequest(
		dto.CreateBookingRequest{
			FlightKey:  "FK1",
			Passengers: []dto.PassengerRequest{adult, child},
			Contact:    contact,
		},
		func(m bookingMocks) {
			catalogWith(flightFK1)(m)
			m.idGen.On("Generate", mock.Anything).Return("BKA1B2", nil)
			m.store.On("Create", mock.Anything, mock.MatchedBy(func(bkg *booking.Booking) bool {
				return bkg.BookingID == "BKA1B2" &&
					bkg.TotalPrice == 160 &&
					len(bkg.Passengers) == 2 &&
					bkg.Contact.Email == "marta@example.com"
			})).Return(nil)
		},
		dto.BookingResponse{
			BookingID:    "BKA1B2",
			FlightNumber: "VY1001",
			FlightDate:   futureDate(),
			Origin:       "BCN",
			Destination:  "PAR",
			Passengers:   []dto.PassengerRequest{adult, child},
			Contact:      contact,
			TotalPrice:   160,
		},
		nil,
	))

	t.Run("unknown_flight_key", createRequest(
		dto.CreateBookingRequest{
			FlightKey:  "NOPE",
			Passengers: []dto.PassengerRequest{adult},
			Contact:    contact,
		},
		catalogWith(flightFK1),
		dto.BookingResponse{},
		ErrFlightNotFound,
	))

	t.Run("flight_in_past", createRequest(
		dto.CreateBookingRequest{
			FlightKey:  "FKOLD",
			Passengers: []dto.PassengerRequest{adult},
			Contact:    contact,
		},
		catalogWith(flightapi.ExternalFlight{
			FlightKey:  "FKOLD",
			Origin:     "BCN",
			FlightDate: yesterday(),
		}),
		dto.BookingResponse{},
		ErrFlightInPast,
	))

	t.Run("no_adult_passenger", createRequest(
		dto.CreateBookingRequest{
			FlightKey:  "FK1",
			Passengers: []dto.PassengerRequest{child},
			Contact:    contact,
		},
		catalogWith(flightFK1),
		dto.BookingResponse{},
		ErrNoAdultPassenger,
	))

	t.Run("underage_adult", createRequest(
		dto.CreateBookingRequest{
			FlightKey: "FK1",
			Passengers: []dto.PassengerRequest{{
				Type:      "ADT",
				FirstName: "Pol",
				LastName:  "Serra",
				BirthDate: birthYearFor(15),
			}},
			Contact: contact,
		},
		catalogWith(flightFK1),
		dto.BookingResponse{},
		errUnderageAdult("Pol", "Serra"),
	))

	t.Run("adult_exactly_sixteen_allowed", createRequest(
		dto.CreateBookingRequest{
			FlightKey: "FK1",
			Passengers: []dto.PassengerRequest{{
				Type:      "ADT",
				FirstName: "Pol",
				LastName:  "Serra",
				BirthDate: birthYearFor(16),
			}},
			Contact: contact,
		},
		func(m bookingMocks) {
			catalogWith(flightFK1)(m)
			m.idGen.On("Generate", mock.Anything).Return("BKZZ99", nil)
			m.store.On("Create", mock.Anything, mock.Anything).Return(nil)
		},
		dto.BookingResponse{
			BookingID:    "BKZZ99",
			FlightNumber: "VY1001",
			FlightDate:   futureDate(),
			Origin:       "BCN",
			Destination:  "PAR",
			Passengers: []dto.PassengerRequest{{
				Type:      "ADT",
				FirstName: "Pol",
				LastName:  "Serra",
				BirthDate: birthYearFor(16),
			}},
			Contact:    contact,
			TotalPrice: 100,
		},
		nil,
	))

	t.Run("duplicate_id_on_insert_regenerates", createRequest(
		dto.CreateBookingRequest{
			FlightKey:  "FK1",
			Passengers: []dto.PassengerRequest{adult},
			Contact:    contact,
		},
		func(m bookingMocks) {
			catalogWith(flightFK1)(m)
			m.idGen.On("Generate", mock.Anything).Return("BKAAAA", nil).Once()
			m.idGen.On("Generate", mock.Anything).Return("BKBBBB", nil).Once()
			m.store.On("Create", mock.Anything, mock.MatchedBy(func(bkg *booking.Booking) bool {
				return bkg.BookingID == "BKAAAA"
			})).Return(repository.ErrDuplicateBookingID).Once()
			m.store.On("Create", mock.Anything, mock.MatchedBy(func(bkg *booking.Booking) bool {
				return bkg.BookingID == "BKBBBB"
			})).Return(nil).Once()
		},
		dto.BookingResponse{
			BookingID:    "BKBBBB",
			FlightNumber: "VY1001",
			FlightDate:   futureDate(),
			Origin:       "BCN",
			Destination:  "PAR",
			Passengers:   []dto.PassengerRequest{adult},
			Contact:      contact,
			TotalPrice:   100,
		},
		nil,
	))

	t.Run("catalog_failure_propagates", createRequest(
		dto.CreateBookingRequest{
			FlightKey:  "FK1",
			Passengers: []dto.PassengerRequest{adult},
			Contact:    contact,
		},
		func(m bookingMocks) {
			m.catalog.On("AvailableFlights", mock.Anything).
				Return(nil, errors.New("connection refused"))
		},
		dto.BookingResponse{},
		errors.New("fetch flight catalog: connection refused"),
	))
}

func TestBookingService_RetrieveBooking(t *testing.T) {
	retrieveRequest := func(
		bookingID string,
		setupMock func(m *MockBookingStore),
		want dto.BookingResponse,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			store := NewMockBookingStore(t)
			setupMock(store)

			s := NewBookingService(NewMockCatalogSource(t), store, NewMockIDGenerator(t))

			got, err := s.RetrieveBooking(context.Background(),
				dto.RetrieveBookingRequest{BookingID: bookingID})

			if wantErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, wantErr)
				return
			}

			assert.NoError(t, err)

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("RetrieveBooking() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	flightDate := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	bookingDate := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	stored := &booking.Booking{
		BookingID:    "BKA1B2",
		FlightNumber: "VY1001",
		FlightDate:   flightDate,
		Origin:       "BCN",
		Destination:  "PAR",
		BookingDate:  bookingDate,
		TotalPrice:   160,
		Passengers: []booking.Passenger{
			{
				Type:      booking.PaxTypeAdult,
				FirstName: "Marta",
				LastName:  "Puig",
				BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		Contact: booking.Contact{
			FirstName: "Marta",
			LastName:  "Puig",
			Email:     "marta@example.com",
		},
	}

	t.Run("booking_found", retrieveRequest(
		"BKA1B2",
		func(m *MockBookingStore) {
			m.On("GetByBookingID", mock.Anything, "BKA1B2").Return(stored, nil)
		},
		dto.BookingResponse{
			BookingID:    "BKA1B2",
			FlightNumber: "VY1001",
			FlightDate:   "2025-04-20",
			Origin:       "BCN",
			Destination:  "PAR",
			Passengers: []dto.PassengerRequest{{
				Type:      "ADT",
				FirstName: "Marta",
				LastName:  "Puig",
				BirthDate: "1990-06-15",
			}},
			Contact: dto.ContactRequest{
				FirstName: "Marta",
				LastName:  "Puig",
				Email:     "marta@example.com",
			},
			BookingDate: bookingDate,
			TotalPrice:  160,
		},
		nil,
	))

	t.Run("booking_not_found", retrieveRequest(
		"BKXXXX",
		func(m *MockBookingStore) {
			m.On("GetByBookingID", mock.Anything, "BKXXXX").
				Return(nil, repository.ErrNotFound)
		},
		dto.BookingResponse{},
		errBookingNotFound("BKXXXX"),
	))
}
