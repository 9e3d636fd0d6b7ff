package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type AccommodationSearchParams struct {
	Destination   string `json:"destination" binding:"required"`
	DestinationID string `json:"destination_id,omitempty"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	Guests        int    `json:"guests"`
	Rooms         int    `json:"rooms"`
	PropertyType  string `json:"property_type,omitempty"`
}

type AccommodationResult struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Price     float64  `json:"price"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Image     string   `json:"image"`
	Amenities []string `json:"amenities"`
	Type      string   `json:"type"`
}

const placeholderHotelImage = "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=800"

// ─── Booking Client ───────────────────────────────────────────────────────────

// BookingClient wraps the Booking.com hotel search exposed through RapidAPI.
// No OAuth here; the RapidAPI key rides along as a request header.
type BookingClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	OnFallback FallbackHook
}

func NewBookingClient(apiKey, baseURL string, logger *zap.Logger) *BookingClient {
	return &BookingClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (c *BookingClient) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", "booking-com.p.rapidapi.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("booking error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// ─── Hotel Search ─────────────────────────────────────────────────────────────

// SearchHotels runs the two-step accommodation search: resolve the free-text
// destination to a provider destination id, then fetch hotels for it. Any
// failure degrades to the deterministic mock set.
func (c *BookingClient) SearchHotels(ctx context.Context, params AccommodationSearchParams) []AccommodationResult {
	if params.DestinationID == "" {
		params.DestinationID = c.DestinationID(ctx, params.Destination)
	}

	hotels, err := c.searchHotels(ctx, params)
	if err != nil {
		c.fallback("hotels", err)
		return MockHotels()
	}
	return hotels
}

func (c *BookingClient) searchHotels(ctx context.Context, params AccommodationSearchParams) ([]AccommodationResult, error) {
	q := url.Values{}
	q.Set("dest_type", "city")
	q.Set("dest_id", params.DestinationID)
	q.Set("search_type", "city")
	q.Set("arrival_date", params.CheckIn)
	q.Set("departure_date", params.CheckOut)
	q.Set("adults", strconv.Itoa(params.Guests))
	q.Set("room_qty", strconv.Itoa(params.Rooms))
	q.Set("units", "metric")
	q.Set("temperature_unit", "c")
	q.Set("languagecode", "en-us")
	q.Set("currency_code", "USD")

	body, err := c.doRequest(ctx, "/v1/hotels/search", q)
	if err != nil {
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}

	var resp struct {
		Result []struct {
			HotelID       json.Number `json:"hotel_id"`
			HotelName     string      `json:"hotel_name"`
			City          string      `json:"city"`
			MinTotalPrice float64     `json:"min_total_price"`
			ReviewScore   float64     `json:"review_score"`
			ReviewNr      int         `json:"review_nr"`
			MainPhotoURL  string      `json:"main_photo_url"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransformError{Resource: "hotels", Err: err}
	}

	hotels := make([]AccommodationResult, 0, len(resp.Result))
	for _, h := range resp.Result {
		price := h.MinTotalPrice
		if price == 0 {
			price = 99
		}
		rating := h.ReviewScore / 2
		if rating == 0 {
			rating = 4.5
		}
		reviews := h.ReviewNr
		if reviews == 0 {
			reviews = 100
		}
		image := h.MainPhotoURL
		if image == "" {
			image = placeholderHotelImage
		}

		hotels = append(hotels, AccommodationResult{
			ID:        h.HotelID.String(),
			Name:      h.HotelName,
			Location:  h.City,
			Price:     price,
			Rating:    rating,
			Reviews:   reviews,
			Image:     image,
			Amenities: []string{"Wifi", "Pool", "Spa", "Restaurant"},
			Type:      "Hotel",
		})
	}
	return hotels, nil
}

// ─── Destination Lookup ───────────────────────────────────────────────────────

// DestinationID resolves a destination name to the provider's internal id.
// Failure or an empty answer yields the London default.
func (c *BookingClient) DestinationID(ctx context.Context, destination string) string {
	id, err := c.destinationID(ctx, destination)
	if err != nil {
		c.fallback("destination", err)
		return DefaultDestinationID
	}
	return id
}

func (c *BookingClient) destinationID(ctx context.Context, destination string) (string, error) {
	q := url.Values{}
	q.Set("name", destination)
	q.Set("locale", "en-gb")

	body, err := c.doRequest(ctx, "/v1/hotels/locations", q)
	if err != nil {
		return "", fmt.Errorf("destination search failed: %w", err)
	}

	var locations []struct {
		DestID string `json:"dest_id"`
	}
	if err := json.Unmarshal(body, &locations); err != nil {
		return "", &TransformError{Resource: "destination", Err: err}
	}
	if len(locations) == 0 || locations[0].DestID == "" {
		return "", fmt.Errorf("no destination id for %q", destination)
	}
	return locations[0].DestID, nil
}

func (c *BookingClient) fallback(resource string, err error) {
	reportFallback(c.logger, c.OnFallback, resource, err)
}
