package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-booking-service/internal/app/dto"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/booking"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/flightapi"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/repository"
)

// createAttempts bounds the insert retries when the unique index on the
// booking reference fires between the generator's check and the insert.
const createAttempts = 3

// BookingStore persists and loads bookings.
type BookingStore interface {
	Create(ctx context.Context, bkg *booking.Booking) error
	GetByBookingID(ctx context.Context, bookingID string) (*booking.Booking, error)
}

// IDGenerator produces unique booking references.
type IDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type BookingService struct {
	Catalog CatalogSource
	Store   BookingStore
	IDGen   IDGenerator
}

func NewBookingService(catalog CatalogSource, store BookingStore, idGen IDGenerator) *BookingService {
	return &BookingService{
		Catalog: catalog,
		Store:   store,
		IDGen:   idGen,
	}
}

// CreateBooking resolves the flight, runs the booking business rules,
// prices the passengers and persists the result.
// CreateBooking godoc
// @Summary      Create booking
// @Tags         Bookings
// @Description  Create a booking for a flight selected by its key
// @Param        request  body      dto.CreateBookingRequest  true  "Booking"
// @Success      200      {object}  dto.BookingResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/bookings [post]
func (s *BookingService) CreateBooking(
	ctx context.Context,
	req dto.CreateBookingRequest,
) (dto.BookingResponse, error) {
	selected, err := s.flightByKey(ctx, req.FlightKey)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	flightDate, ok := flight.ParseFlightDate(selected.FlightDate)
	if !ok {
		return dto.BookingResponse{}, fmt.Errorf("flight %s has unparseable date %q",
			selected.FlightKey, selected.FlightDate)
	}

	if err := validateFlightNotInPast(flightDate); err != nil {
		return dto.BookingResponse{}, err
	}

	if err := validatePassengers(req.Passengers); err != nil {
		return dto.BookingResponse{}, err
	}

	bkg, err := s.assembleBooking(ctx, req, selected, flightDate)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	if err := s.persistBooking(ctx, bkg); err != nil {
		return dto.BookingResponse{}, err
	}

	slog.InfoContext(ctx, "booking created",
		slog.String("booking_id", bkg.BookingID),
		slog.String("flight_key", selected.FlightKey))

	return toBookingResponse(bkg, req.Passengers, req.Contact), nil
}

// RetrieveBooking loads a booking with its passengers and contact.
// RetrieveBooking godoc
// @Summary      Retrieve booking
// @Tags         Bookings
// @Description  Retrieve a booking by its reference
// @Param        bookingId  path      string  true  "Booking ID"
// @Success      200        {object}  dto.BookingResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/v1/bookings/{bookingId} [get]
func (s *BookingService) RetrieveBooking(
	ctx context.Context,
	req dto.RetrieveBookingRequest,
) (dto.BookingResponse, error) {
	bkg, err := s.Store.GetByBookingID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.BookingResponse{}, errBookingNotFound(req.BookingID)
		}

		return dto.BookingResponse{}, fmt.Errorf("load booking: %w", err)
	}

	passengers := make([]dto.PassengerRequest, len(bkg.Passengers))
	for i, pax := range bkg.Passengers {
		passengers[i] = dto.PassengerRequest{
			Type:      pax.Type.Code(),
			FirstName: pax.FirstName,
			LastName:  pax.LastName,
			BirthDate: pax.BirthDate.Format(dto.FlightDateLayout),
		}
	}

	contact := dto.ContactRequest{
		FirstName: bkg.Contact.FirstName,
		LastName:  bkg.Contact.LastName,
		Email:     bkg.Contact.Email,
	}

	return toBookingResponse(bkg, passengers, contact), nil
}

// flightByKey fetches the catalog and locates the flight. The catalog
// has no lookup endpoint, so the full list is scanned.
func (s *BookingService) flightByKey(ctx context.Context, flightKey string) (flightapi.ExternalFlight, error) {
	flights, err := s.Catalog.AvailableFlights(ctx)
	if err != nil {
		return flightapi.ExternalFlight{}, fmt.Errorf("fetch flight catalog: %w", err)
	}

	for _, candidate := range flights {
		if candidate.FlightKey == flightKey {
			return candidate, nil
		}
	}

	return flightapi.ExternalFlight{}, ErrFlightNotFound
}

func validateFlightNotInPast(flightDate time.Time) error {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(flightDate.Year(), flightDate.Month(), flightDate.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(today) {
		return ErrFlightInPast
	}

	return nil
}

func validatePassengers(passengers []dto.PassengerRequest) error {
	hasAdult := false

	for _, pax := range passengers {
		if pax.Type == booking.CodeAdult {
			hasAdult = true
		}
	}

	if !hasAdult {
		return ErrNoAdultPassenger
	}

	// age is a bare year subtraction, matching the fare rules
	currentYear := time.Now().UTC().Year()

	for _, pax := range passengers {
		if pax.Type != booking.CodeAdult {
			continue
		}

		birthDate, err := pax.BirthDateValue()
		if err != nil {
			return err
		}

		if currentYear-birthDate.Year() < 16 {
			return errUnderageAdult(pax.FirstName, pax.LastName)
		}
	}

	return nil
}

func (s *BookingService) assembleBooking(
	ctx context.Context,
	req dto.CreateBookingRequest,
	selected flightapi.ExternalFlight,
	flightDate time.Time,
) (*booking.Booking, error) {
	bookingID, err := s.IDGen.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate booking id: %w", err)
	}

	passengers := make([]booking.Passenger, len(req.Passengers))

	// every passenger is priced at their type's unit fare
	var totalPrice float64

	for i, pax := range req.Passengers {
		paxType, _ := booking.PaxTypeFromCode(pax.Type)

		birthDate, err := pax.BirthDateValue()
		if err != nil {
			return nil, err
		}

		passengers[i] = booking.Passenger{
			Type:      paxType,
			FirstName: pax.FirstName,
			LastName:  pax.LastName,
			BirthDate: birthDate,
		}

		totalPrice += selected.PriceFor(pax.Type)
	}

	return &booking.Booking{
		BookingID:    bookingID,
		FlightNumber: selected.FlightNumber,
		FlightDate:   flightDate,
		Origin:       selected.Origin,
		Destination:  selected.Destination,
		BookingDate:  time.Now().UTC(),
		TotalPrice:   totalPrice,
		Passengers:   passengers,
		Contact: booking.Contact{
			FirstName: req.Contact.FirstName,
			LastName:  req.Contact.LastName,
			Email:     req.Contact.Email,
		},
	}, nil
}

// persistBooking inserts the booking, regenerating the reference when
// the store reports a duplicate.
func (s *BookingService) persistBooking(ctx context.Context, bkg *booking.Booking) error {
	for attempt := 1; ; attempt++ {
		err := s.Store.Create(ctx, bkg)
		if err == nil {
			return nil
		}

		if !errors.Is(err, repository.ErrDuplicateBookingID) || attempt >= createAttempts {
			return fmt.Errorf("persist booking: %w", err)
		}

		slog.WarnContext(ctx, "booking id taken on insert, regenerating",
			slog.String("booking_id", bkg.BookingID),
			slog.Int("attempt", attempt))

		bookingID, err := s.IDGen.Generate(ctx)
		if err != nil {
			return fmt.Errorf("regenerate booking id: %w", err)
		}

		bkg.BookingID = bookingID
	}
}

func toBookingResponse(
	bkg *booking.Booking,
	passengers []dto.PassengerRequest,
	contact dto.ContactRequest,
) dto.BookingResponse {
	return dto.BookingResponse{
		BookingID:    bkg.BookingID,
		FlightNumber: bkg.FlightNumber,
		FlightDate:   bkg.FlightDate.Format(dto.FlightDateLayout),
		Origin:       bkg.Origin,
		Destination:  bkg.Destination,
		Passengers:   passengers,
		Contact:      contact,
		BookingDate:  bkg.BookingDate,
		TotalPrice:   bkg.TotalPrice,
	}
}
