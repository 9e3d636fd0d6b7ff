package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

type LocationResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
	City    string  `json:"city"`
}

// GeocodingClient wraps the OpenCage forward-geocoding API.
type GeocodingClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	OnFallback FallbackHook
}

func NewGeocodingClient(apiKey, baseURL string, logger *zap.Logger) *GeocodingClient {
	return &GeocodingClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// SearchLocations geocodes a free-text query into named coordinates.
// Failures yield an empty list rather than an error.
func (c *GeocodingClient) SearchLocations(ctx context.Context, query string) []LocationResult {
	locations, err := c.searchLocations(ctx, query)
	if err != nil {
		reportFallback(c.logger, c.OnFallback, "geocoding", err)
		return []LocationResult{}
	}
	return locations
}

func (c *GeocodingClient) searchLocations(ctx context.Context, query string) ([]LocationResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("key", c.apiKey)
	q.Set("limit", "10")
	q.Set("no_annotations", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geocode/v1/json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Results []struct {
			Formatted string `json:"formatted"`
			Geometry  struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"geometry"`
			Components struct {
				Country string `json:"country"`
				City    string `json:"city"`
				Town    string `json:"town"`
				Village string `json:"village"`
			} `json:"components"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &TransformError{Resource: "geocoding", Err: err}
	}

	locations := make([]LocationResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		city := r.Components.City
		if city == "" {
			city = r.Components.Town
		}
		if city == "" {
			city = r.Components.Village
		}

		locations = append(locations, LocationResult{
			Name:    r.Formatted,
			Lat:     r.Geometry.Lat,
			Lng:     r.Geometry.Lng,
			Country: r.Components.Country,
			City:    city,
		})
	}
	return locations, nil
}
