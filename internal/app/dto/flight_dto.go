package dto

import (
	"fmt"
	"net/http"
	"time"
)

// FlightDateLayout is the wire format of dates in requests.
const FlightDateLayout = "2006-01-02"

// PaxTypeRequest is one requested passenger type with its headcount.
type PaxTypeRequest struct {
	Type     string `json:"type" validate:"required,paxcode"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// SearchFlightRequest filters the catalog. Destination is optional; an
// empty destination matches any.
type SearchFlightRequest struct {
	Origin      string           `json:"origin" validate:"required"`
	Destination string           `json:"destination,omitempty"`
	FlightDate  string           `json:"flight_date" validate:"required,datetime=2006-01-02"`
	PaxTypes    []PaxTypeRequest `json:"pax_types" validate:"required,min=1,dive"`
}

func (r *SearchFlightRequest) Bind(_ *http.Request) error {
	if err := ValidateFields(r); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

// FlightDateValue returns the parsed flight date. Call after validation.
func (r *SearchFlightRequest) FlightDateValue() (time.Time, error) {
	parsed, err := time.Parse(FlightDateLayout, r.FlightDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse flight date: %w", err)
	}

	return parsed, nil
}

// PaxPrice is one passenger type's unit price on the selected flight,
// not multiplied by the requested quantity.
type PaxPrice struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// SearchFlightResponse is the single cheapest matching flight.
type SearchFlightResponse struct {
	FlightKey    string     `json:"flight_key"`
	FlightNumber string     `json:"flight_number"`
	FlightDate   string     `json:"flight_date"`
	Origin       string     `json:"origin"`
	Destination  string     `json:"destination"`
	PaxPrices    []PaxPrice `json:"pax_prices"`
}
