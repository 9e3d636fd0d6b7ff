package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type FlightSearchParams struct {
	From       string `json:"from" binding:"required"`
	To         string `json:"to" binding:"required"`
	DepartDate string `json:"depart_date" binding:"required"`
	ReturnDate string `json:"return_date,omitempty"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Infants    int    `json:"infants"`
	Class      string `json:"class"`
}

type FlightResult struct {
	ID        string  `json:"id"`
	Airline   string  `json:"airline"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Departure string  `json:"departure"`
	Arrival   string  `json:"arrival"`
	Duration  string  `json:"duration"`
	Price     float64 `json:"price"`
	Class     string  `json:"class"`
	Stops     string  `json:"stops"`
}

type AirportSuggestion struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ─── Amadeus Client ───────────────────────────────────────────────────────────

// AmadeusClient talks to the Amadeus self-service APIs for flight offers and
// airport suggestions. A bearer token from the OAuth2 client-credentials
// endpoint is cached and reused until it expires.
type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	logger       *zap.Logger
	now          func() time.Time

	// OnFallback is invoked whenever a search degrades to mock data,
	// so callers and tests can observe the fallback path.
	OnFallback FallbackHook

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewAmadeusClient(clientID, clientSecret, baseURL string, logger *zap.Logger) *AmadeusClient {
	return &AmadeusClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// ─── OAuth2 Token ─────────────────────────────────────────────────────────────

func (c *AmadeusClient) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}
	if result.AccessToken == "" {
		return fmt.Errorf("token response missing access_token")
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	// No early-refresh margin: a cached token is reused until the instant
	// it expires, matching the upstream contract.
	c.tokenExpiry = c.now().Add(time.Duration(result.ExpiresIn) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.accessToken
	valid := token != "" && c.now().Before(c.tokenExpiry)
	c.mu.Unlock()

	if valid {
		return token, nil
	}

	if err := c.refreshToken(ctx); err != nil {
		return "", &AuthError{Err: err}
	}

	c.mu.Lock()
	token = c.accessToken
	c.mu.Unlock()
	return token, nil
}

func (c *AmadeusClient) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// ─── Flight Search ────────────────────────────────────────────────────────────

// SearchFlights queries the Amadeus Flight Offers Search API and maps every
// offer into the normalized FlightResult shape. On any failure the error is
// logged and the deterministic mock set for the requested route is returned
// instead; callers always receive data.
func (c *AmadeusClient) SearchFlights(ctx context.Context, params FlightSearchParams) []FlightResult {
	flights, err := c.searchFlights(ctx, params)
	if err != nil {
		c.fallback("flights", err)
		return MockFlights(params)
	}
	return flights
}

func (c *AmadeusClient) searchFlights(ctx context.Context, params FlightSearchParams) ([]FlightResult, error) {
	q := url.Values{}
	q.Set("originLocationCode", params.From)
	q.Set("destinationLocationCode", params.To)
	q.Set("departureDate", params.DepartDate)
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("children", strconv.Itoa(params.Children))
	q.Set("infants", strconv.Itoa(params.Infants))
	q.Set("travelClass", strings.ToUpper(params.Class))
	q.Set("currencyCode", "USD")
	q.Set("max", "20")

	body, err := c.doRequest(ctx, "/v2/shopping/flight-offers", q)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	return parseFlightOffers(body)
}

type amadeusFlightOffersResponse struct {
	Data []amadeusFlightOffer `json:"data"`
}

type amadeusFlightOffer struct {
	ID          string `json:"id"`
	Itineraries []struct {
		Duration string `json:"duration"`
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"arrival"`
		} `json:"segments"`
	} `json:"itineraries"`
	Price struct {
		Total string `json:"total"`
	} `json:"price"`
	TravelerPricings []struct {
		FareDetailsBySegment []struct {
			Cabin string `json:"cabin"`
		} `json:"fareDetailsBySegment"`
	} `json:"travelerPricings"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

func parseFlightOffers(data []byte) ([]FlightResult, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &TransformError{Resource: "flights", Err: err}
	}

	flights := make([]FlightResult, 0, len(resp.Data))
	for i, offer := range resp.Data {
		f, err := transformFlightOffer(offer)
		if err != nil {
			// One malformed offer fails the whole call so the caller
			// never sees a silently partial list.
			return nil, &TransformError{Resource: "flights", Err: fmt.Errorf("offer %d: %w", i, err)}
		}
		flights = append(flights, f)
	}
	return flights, nil
}

func transformFlightOffer(offer amadeusFlightOffer) (FlightResult, error) {
	if len(offer.Itineraries) == 0 {
		return FlightResult{}, fmt.Errorf("offer has no itineraries")
	}
	outbound := offer.Itineraries[0]
	if len(outbound.Segments) == 0 {
		return FlightResult{}, fmt.Errorf("itinerary has no segments")
	}

	first := outbound.Segments[0]
	last := outbound.Segments[len(outbound.Segments)-1]

	departure, err := clockFromISO(first.Departure.At)
	if err != nil {
		return FlightResult{}, fmt.Errorf("departure time: %w", err)
	}
	arrival, err := clockFromISO(last.Arrival.At)
	if err != nil {
		return FlightResult{}, fmt.Errorf("arrival time: %w", err)
	}

	price, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return FlightResult{}, fmt.Errorf("price %q: %w", offer.Price.Total, err)
	}

	airline := ""
	if len(offer.ValidatingAirlineCodes) > 0 {
		airline = offer.ValidatingAirlineCodes[0]
	}

	cabin := ""
	if len(offer.TravelerPricings) > 0 && len(offer.TravelerPricings[0].FareDetailsBySegment) > 0 {
		cabin = offer.TravelerPricings[0].FareDetailsBySegment[0].Cabin
	}

	stops := len(outbound.Segments) - 1

	return FlightResult{
		ID:        offer.ID,
		Airline:   airline,
		From:      first.Departure.IataCode,
		To:        last.Arrival.IataCode,
		Departure: departure,
		Arrival:   arrival,
		Duration:  strings.ToLower(strings.TrimPrefix(outbound.Duration, "PT")),
		Price:     price,
		Class:     cabin,
		Stops:     stopsLabel(stops),
	}, nil
}

// clockFromISO extracts the HH:MM portion of an ISO 8601 timestamp such as
// "2025-03-01T08:30:00".
func clockFromISO(ts string) (string, error) {
	_, rest, found := strings.Cut(ts, "T")
	if !found || len(rest) < 5 {
		return "", fmt.Errorf("malformed timestamp %q", ts)
	}
	return rest[:5], nil
}

func stopsLabel(stops int) string {
	switch {
	case stops <= 0:
		return "Direct"
	case stops == 1:
		return "1 Stop"
	default:
		return fmt.Sprintf("%d Stops", stops)
	}
}

// ─── Airport Suggestions ──────────────────────────────────────────────────────

// AirportSuggestions resolves a free-text keyword to airport and city codes
// via the Amadeus locations reference API. Failures yield an empty list.
func (c *AmadeusClient) AirportSuggestions(ctx context.Context, keyword string) []AirportSuggestion {
	suggestions, err := c.airportSuggestions(ctx, keyword)
	if err != nil {
		c.fallback("airports", err)
		return []AirportSuggestion{}
	}
	return suggestions
}

func (c *AmadeusClient) airportSuggestions(ctx context.Context, keyword string) ([]AirportSuggestion, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("subType", "AIRPORT,CITY")
	q.Set("page[limit]", "10")

	body, err := c.doRequest(ctx, "/v1/reference-data/locations", q)
	if err != nil {
		return nil, fmt.Errorf("airport search failed: %w", err)
	}

	var resp struct {
		Data []struct {
			IataCode string `json:"iataCode"`
			Name     string `json:"name"`
			Address  struct {
				CityName    string `json:"cityName"`
				CountryName string `json:"countryName"`
			} `json:"address"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransformError{Resource: "airports", Err: err}
	}

	suggestions := make([]AirportSuggestion, 0, len(resp.Data))
	for _, item := range resp.Data {
		suggestions = append(suggestions, AirportSuggestion{
			Code:    item.IataCode,
			Name:    item.Name,
			City:    item.Address.CityName,
			Country: item.Address.CountryName,
		})
	}
	return suggestions, nil
}

func (c *AmadeusClient) fallback(resource string, err error) {
	reportFallback(c.logger, c.OnFallback, resource, err)
}
