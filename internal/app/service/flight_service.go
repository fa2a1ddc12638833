package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/flight-booking-service/internal/app/dto"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/flightapi"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/gateway"
)

// CatalogSource fetches the available flights from the external feed.
type CatalogSource interface {
	AvailableFlights(ctx context.Context) ([]flightapi.ExternalFlight, error)
}

type SearchService struct {
	Catalog CatalogSource
}

func NewSearchService(catalog CatalogSource) *SearchService {
	return &SearchService{Catalog: catalog}
}

// SearchFlights filters the catalog by the request criteria and returns
// the single cheapest match for the requested passenger mix.
// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Search the flight catalog and return the cheapest matching flight
// @Param        request  body      dto.SearchFlightRequest  true  "Search Criteria"
// @Success      200      {object}  dto.SearchFlightResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *SearchService) SearchFlights(
	ctx context.Context,
	req dto.SearchFlightRequest,
) (dto.SearchFlightResponse, error) {
	flightDate, err := req.FlightDateValue()
	if err != nil {
		return dto.SearchFlightResponse{}, err
	}

	flights, err := gateway.Execute(ctx, "AvailableFlights", s.Catalog.AvailableFlights)
	if err != nil {
		return dto.SearchFlightResponse{}, fmt.Errorf("fetch flight catalog: %w", err)
	}

	matches := flight.FilterMatching(ctx, flights, req.Origin, req.Destination, flightDate)
	if len(matches) == 0 {
		return dto.SearchFlightResponse{}, ErrNoMatchingFlights
	}

	paxTypes := make([]flight.PaxQuantity, len(req.PaxTypes))
	for i, pax := range req.PaxTypes {
		paxTypes[i] = flight.PaxQuantity{Type: pax.Type, Quantity: pax.Quantity}
	}

	cheapest := flight.Cheapest(matches, paxTypes)

	slog.InfoContext(ctx, "cheapest flight selected",
		slog.String("flight_key", cheapest.FlightKey),
		slog.Int("matches", len(matches)))

	return toSearchResponse(cheapest), nil
}

func toSearchResponse(selected flightapi.ExternalFlight) dto.SearchFlightResponse {
	paxPrices := make([]dto.PaxPrice, len(selected.PaxPrices))
	for i, price := range selected.PaxPrices {
		paxPrices[i] = dto.PaxPrice{Type: price.Type, Price: price.Price}
	}

	return dto.SearchFlightResponse{
		FlightKey:    selected.FlightKey,
		FlightNumber: selected.FlightNumber,
		FlightDate:   selected.FlightDate,
		Origin:       selected.Origin,
		Destination:  selected.Destination,
		PaxPrices:    paxPrices,
	}
}
