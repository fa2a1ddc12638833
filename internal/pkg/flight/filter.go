// Package flight holds the pure matching and pricing logic used by the
// search service: catalog filtering and cheapest-flight selection.
package flight

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-booking-service/internal/pkg/flightapi"
)

// flightDateLayouts are the textual date formats the catalog feed is
// known to use.
var flightDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseFlightDate parses the catalog's textual flight date.
func ParseFlightDate(value string) (time.Time, bool) {
	for _, layout := range flightDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// FilterMatching returns the catalog entries matching the search
// criteria: origin equal case-insensitively, destination equal
// case-insensitively when given (empty destination matches everything),
// and flight date equal on the date component. Entries whose date text
// cannot be parsed never match.
func FilterMatching(ctx context.Context,
	flights []flightapi.ExternalFlight,
	origin, destination string,
	flightDate time.Time,
) []flightapi.ExternalFlight {
	wantDate := flightDate.Format("2006-01-02")

	results := make([]flightapi.ExternalFlight, 0, len(flights))

	for _, flight := range flights {
		if !strings.EqualFold(flight.Origin, origin) {
			continue
		}

		if destination != "" && !strings.EqualFold(flight.Destination, destination) {
			continue
		}

		parsed, ok := ParseFlightDate(flight.FlightDate)
		if !ok {
			slog.WarnContext(ctx, "skipping flight with unparseable date",
				slog.String("flight_key", flight.FlightKey),
				slog.String("flight_date", flight.FlightDate))

			continue
		}

		if parsed.Format("2006-01-02") != wantDate {
			continue
		}

		results = append(results, flight)
	}

	return results
}
