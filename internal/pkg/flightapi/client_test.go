//go:build unit

package flightapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
)

func TestClient_AvailableFlights_Closure(t *testing.T) {
	catalogJSON := `[
		{
			"flightKey": "FK1",
			"flightNumber": "VY1001",
			"origin": "BCN",
			"destination": "PAR",
			"flightDate": "2025-04-20",
			"paxPrice": [
				{"type": "ADT", "price": 100},
				{"type": "CHD", "price": 60}
			]
		}
	]`

	availableFlightsRequest := func(
		handler http.HandlerFunc,
		want []ExternalFlight,
		wantStatus int,
	) func(t *testing.T) {
		return func(t *testing.T) {
			server := httptest.NewServer(handler)
			defer server.Close()

			client := NewClient(ClientConfig{
				SearchAPIURL: server.URL,
				Timeout:      2 * time.Second,
			})

			got, err := client.AvailableFlights(context.Background())

			if wantStatus != 0 {
				var apiErr exception.ExternalAPIError
				assert.True(t, errors.As(err, &apiErr))
				assert.Equal(t, wantStatus, apiErr.StatusCode)
				return
			}

			assert.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("AvailableFlights() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("full_catalog", availableFlightsRequest(
		func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(catalogJSON))
		},
		[]ExternalFlight{
			{
				FlightKey:    "FK1",
				FlightNumber: "VY1001",
				Origin:       "BCN",
				Destination:  "PAR",
				FlightDate:   "2025-04-20",
				PaxPrices: []PaxPrice{
					{Type: "ADT", Price: 100},
					{Type: "CHD", Price: 60},
				},
			},
		},
		0,
	))

	t.Run("service_unavailable", availableFlightsRequest(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
		nil,
		http.StatusServiceUnavailable,
	))

	t.Run("gateway_timeout", availableFlightsRequest(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusGatewayTimeout)
		},
		nil,
		http.StatusGatewayTimeout,
	))
}

func TestClient_AvailableFlights_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(ClientConfig{
		SearchAPIURL: server.URL,
		Timeout:      time.Second,
	})

	_, err := client.AvailableFlights(context.Background())

	var apiErr exception.ExternalAPIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.True(t, exception.IsRetryable(err))
}

func TestExternalFlight_PriceFor(t *testing.T) {
	flight := ExternalFlight{
		PaxPrices: []PaxPrice{
			{Type: "ADT", Price: 120.5},
			{Type: "ADT", Price: 999},
			{Type: "CHD", Price: 80},
		},
	}

	// first entry per type wins
	assert.Equal(t, 120.5, flight.PriceFor("ADT"))
	assert.Equal(t, 80.0, flight.PriceFor("CHD"))
	assert.Equal(t, 0.0, flight.PriceFor("INF"))
}
