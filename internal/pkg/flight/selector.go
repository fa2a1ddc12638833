package flight

import (
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/flightapi"
)

// PaxQuantity is one requested passenger type with its headcount.
type PaxQuantity struct {
	Type     string
	Quantity int
}

// TotalPrice is the quantity-weighted price of a flight for the
// requested passenger mix. A type the flight does not price counts as 0.
func TotalPrice(flight flightapi.ExternalFlight, paxTypes []PaxQuantity) float64 {
	var total float64

	for _, pax := range paxTypes {
		total += flight.PriceFor(pax.Type) * float64(pax.Quantity)
	}

	return total
}

// Cheapest selects the flight with the lowest quantity-weighted total.
// Ties resolve to the earliest-appearing entry. The caller guarantees a
// non-empty slice.
func Cheapest(flights []flightapi.ExternalFlight, paxTypes []PaxQuantity) flightapi.ExternalFlight {
	best := flights[0]
	bestTotal := TotalPrice(best, paxTypes)

	for _, candidate := range flights[1:] {
		if total := TotalPrice(candidate, paxTypes); total < bestTotal {
			best = candidate
			bestTotal = total
		}
	}

	return best
}
