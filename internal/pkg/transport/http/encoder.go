package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/flight-booking-service/internal/app/dto"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

func NoContentResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

func CreatedResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusCreated)

	return nil
}

// ErrorResponse translates the error taxonomy into HTTP outcomes:
// validation errors carry their field map, application errors carry
// their own status, external API failures surface as bad gateway, and
// anything unclassified is a 500.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr        exception.ApplicationError
		validationErr exception.ValidationError
		apiErr        exception.ExternalAPIError

		body dto.ErrorResponse
	)

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")

	switch {
	case errors.As(err, &validationErr):
		respWriter.WriteHeader(http.StatusBadRequest)

		body = dto.ErrorResponse{
			Error:   "Validation failed",
			Details: validationErr.Fields,
		}
	case errors.As(err, &appErr):
		respWriter.WriteHeader(appErr.StatusCode)

		body = dto.ErrorResponse{Error: appErr.Message}
	case errors.As(err, &apiErr):
		respWriter.WriteHeader(http.StatusBadGateway)

		body = dto.ErrorResponse{Error: apiErr.Message}

		slog.ErrorContext(ctx, "external api failure",
			slog.Int("status_code", apiErr.StatusCode),
			slog.Any("error", err))
	default:
		respWriter.WriteHeader(http.StatusInternalServerError)

		body = dto.ErrorResponse{Error: err.Error()}

		slog.ErrorContext(ctx, err.Error(), slog.Any("error", err))
	}

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(body)
}
