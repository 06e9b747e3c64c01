// Package geo talks to a Google-Maps-compatible geocoding and distance matrix API.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dispatch-platform/internal/domain"
)

// ErrNoResult means the provider answered but found no address or no route.
var ErrNoResult = errors.New("geo: no result")

// StatusError is a non-OK answer from the provider.
type StatusError struct {
	HTTPStatus     int
	ProviderStatus string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geo: http %d, status %q", e.HTTPStatus, e.ProviderStatus)
}

// Temporary reports whether repeating the call may succeed.
func (e *StatusError) Temporary() bool {
	if e.HTTPStatus == http.StatusTooManyRequests || e.HTTPStatus >= 500 {
		return true
	}
	return e.ProviderStatus == "OVER_QUERY_LIMIT" || e.ProviderStatus == "UNKNOWN_ERROR"
}

// Client is the HTTP provider client.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a client whose every call is bounded by timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Geocode resolves an address to a coordinate.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Place, error) {
	q := url.Values{"address": {address}}
	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/json", q, &resp); err != nil {
		return domain.Place{}, err
	}
	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return domain.Place{}, ErrNoResult
	default:
		return domain.Place{}, &StatusError{HTTPStatus: http.StatusOK, ProviderStatus: resp.Status}
	}
	if len(resp.Results) == 0 {
		return domain.Place{}, ErrNoResult
	}
	r := resp.Results[0]
	return domain.Place{
		Point:           domain.Point{Lat: r.Geometry.Location.Lat, Lon: r.Geometry.Location.Lng},
		ResolvedAddress: r.FormattedAddress,
	}, nil
}

// Route returns the driving distance and duration between two addresses.
func (c *Client) Route(ctx context.Context, origin, destination string) (domain.Route, error) {
	q := url.Values{"origins": {origin}, "destinations": {destination}}
	var resp matrixResponse
	if err := c.get(ctx, "/distancematrix/json", q, &resp); err != nil {
		return domain.Route{}, err
	}
	if resp.Status != "OK" {
		return domain.Route{}, &StatusError{HTTPStatus: http.StatusOK, ProviderStatus: resp.Status}
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return domain.Route{}, ErrNoResult
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return domain.Route{}, fmt.Errorf("element status %q: %w", el.Status, ErrNoResult)
	}
	return domain.Route{
		DistanceKm:  el.Distance.Value / 1000,
		DurationMin: el.Duration.Value / 60,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("geo: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geo: %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4<<10))
		return &StatusError{HTTPStatus: res.StatusCode}
	}
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(out); err != nil {
		return fmt.Errorf("geo: decode %s: %w", path, err)
	}
	return nil
}
