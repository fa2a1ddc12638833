package flightapi

// ExternalFlight is one catalog entry as served by the upstream flight
// data source. FlightDate stays textual here; parsing happens where the
// date is actually compared.
type ExternalFlight struct {
	FlightKey    string     `json:"flightKey"`
	FlightNumber string     `json:"flightNumber"`
	Origin       string     `json:"origin"`
	Destination  string     `json:"destination"`
	FlightDate   string     `json:"flightDate"`
	PaxPrices    []PaxPrice `json:"paxPrice"`
}

// PaxPrice is the unit price of one passenger type on a flight. A flight
// carries at most one entry per type; the first match wins if the feed
// ever duplicates one.
type PaxPrice struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// PriceFor returns the unit price of the given passenger type code,
// or 0 when the flight does not price that type.
func (f ExternalFlight) PriceFor(paxType string) float64 {
	for _, p := range f.PaxPrices {
		if p.Type == paxType {
			return p.Price
		}
	}

	return 0
}
