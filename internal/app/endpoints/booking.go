package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-booking-service/internal/app/dto"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	RetrieveBooking(ctx context.Context, req dto.RetrieveBookingRequest) (dto.BookingResponse, error)
}

type BookingEndpoint struct {
	CreateBooking   endpoint.Endpoint
	RetrieveBooking endpoint.Endpoint
}

func MakeBookingEndpoint(service BookingService) BookingEndpoint {
	return BookingEndpoint{
		CreateBooking:   makeCreateBookingEndpoint(service),
		RetrieveBooking: makeRetrieveBookingEndpoint(service),
	}
}

func makeCreateBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CreateBookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.CreateBooking(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return result, nil
	}
}

func makeRetrieveBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RetrieveBookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.RetrieveBooking(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return result, nil
	}
}
