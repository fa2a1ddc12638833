// Package flightapi is the client for the external flight catalog
// source. The catalog has no lookup endpoint; callers always fetch the
// full list and filter locally.
package flightapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/exception"
)

type ClientConfig struct {
	SearchAPIURL string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// CatalogSource fetches the available flights from the upstream feed.
type CatalogSource interface {
	AvailableFlights(ctx context.Context) ([]ExternalFlight, error)
}

type Client struct {
	searchAPIURL string
	timeout      time.Duration
	rateLimitRPS int
	limiter      *redis_rate.Limiter
	httpClient   *http.Client
}

func NewClient(config ClientConfig) *Client {
	return &Client{
		searchAPIURL: config.SearchAPIURL,
		timeout:      config.Timeout,
		rateLimitRPS: config.RateLimitRPS,
		limiter:      config.Limiter,
		httpClient:   &http.Client{Timeout: config.Timeout},
	}
}

// AvailableFlights fetches the full flight catalog. Upstream failures
// come back as exception.ExternalAPIError carrying the upstream status
// so the gateway can classify them.
func (c *Client) AvailableFlights(ctx context.Context) ([]ExternalFlight, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		res, err := c.limiter.Allow(ctx, "limit:flightapi", redis_rate.PerSecond(c.rateLimitRPS))
		if err != nil {
			return nil, fmt.Errorf("failed to rate limit: %w", err)
		}

		if res.Allowed == 0 {
			return nil, exception.ExternalAPIError{
				Message:    "flight api rate limit exceeded",
				StatusCode: http.StatusTooManyRequests,
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchAPIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build flight api request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exception.ExternalAPIError{
			Message:    "flight api request failed",
			StatusCode: http.StatusServiceUnavailable,
			Cause:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, exception.ExternalAPIError{
			Message:    fmt.Sprintf("flight api returned status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	var flights []ExternalFlight
	if err := json.NewDecoder(resp.Body).Decode(&flights); err != nil {
		return nil, fmt.Errorf("decode flight api response: %w", err)
	}

	return flights, nil
}
