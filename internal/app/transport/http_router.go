package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/flight-booking-service/internal/app/config"
	"github.com/ijalalfrz/flight-booking-service/internal/app/dto"
	"github.com/ijalalfrz/flight-booking-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-booking-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.Actor(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/flights/search", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.SearchFlightRequest],
			httptransport.ResponseWithBody,
		))

		router.Route("/bookings", func(router chi.Router) {
			router.Post("/", httptransport.MakeHandlerFunc(
				endpts.BookingEndpoint.CreateBooking,
				httptransport.DecodeRequest[dto.CreateBookingRequest],
				httptransport.ResponseWithBody,
			))

			router.Get("/{bookingId}", httptransport.MakeHandlerFunc(
				endpts.BookingEndpoint.RetrieveBooking,
				decodeRetrieveBookingRequest,
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}

func decodeRetrieveBookingRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := dto.RetrieveBookingRequest{
		BookingID: chi.URLParam(r, "bookingId"),
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &req, nil
}
