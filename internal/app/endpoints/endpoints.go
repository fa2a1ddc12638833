// Package endpoints exposes the service operations as go-kit endpoints.
package endpoints

// Endpoints collects every service endpoint wired into the router.
type Endpoints struct {
	FlightEndpoint  FlightEndpoint
	BookingEndpoint BookingEndpoint
}
