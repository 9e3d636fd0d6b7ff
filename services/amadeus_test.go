package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

const tokenResponse = `{"access_token":"test-token","expires_in":1799}`

const flightOffersResponse = `{
	"data": [
		{
			"id": "1",
			"itineraries": [
				{
					"duration": "PT11H15M",
					"segments": [
						{
							"departure": {"iataCode": "JNB", "at": "2025-03-01T08:30:00"},
							"arrival": {"iataCode": "LHR", "at": "2025-03-01T19:45:00"}
						}
					]
				}
			],
			"price": {"total": "599.00"},
			"travelerPricings": [{"fareDetailsBySegment": [{"cabin": "ECONOMY"}]}],
			"validatingAirlineCodes": ["BA"]
		},
		{
			"id": "2",
			"itineraries": [
				{
					"duration": "PT14H05M",
					"segments": [
						{
							"departure": {"iataCode": "JNB", "at": "2025-03-01T14:20:00"},
							"arrival": {"iataCode": "DXB", "at": "2025-03-01T22:10:00"}
						},
						{
							"departure": {"iataCode": "DXB", "at": "2025-03-02T01:30:00"},
							"arrival": {"iataCode": "LHR", "at": "2025-03-02T06:25:00"}
						}
					]
				}
			],
			"price": {"total": "729.50"},
			"travelerPricings": [{"fareDetailsBySegment": [{"cabin": "ECONOMY"}]}],
			"validatingAirlineCodes": ["EK"]
		}
	]
}`

// fakeAmadeus serves the token endpoint plus a configurable flight-offers
// body, counting token requests.
func fakeAmadeus(t *testing.T, tokenCalls *atomic.Int64, offersBody string, offersStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		tokenCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(tokenResponse))
	})
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(offersStatus)
		w.Write([]byte(offersBody))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testParams() FlightSearchParams {
	return FlightSearchParams{
		From:       "JNB",
		To:         "LHR",
		DepartDate: "2025-03-01",
		Adults:     1,
		Class:      "economy",
	}
}

func TestSearchFlightsTransformsEveryOffer(t *testing.T) {
	var tokenCalls atomic.Int64
	server := fakeAmadeus(t, &tokenCalls, flightOffersResponse, http.StatusOK)

	client := NewAmadeusClient("id", "secret", server.URL, zap.NewNop())
	flights := client.SearchFlights(context.Background(), testParams())

	if len(flights) != 2 {
		t.Fatalf("got %d flights, want 2", len(flights))
	}

	first := flights[0]
	if first.ID != "1" || first.Airline != "BA" {
		t.Errorf("first flight = %+v", first)
	}
	if first.From != "JNB" || first.To != "LHR" {
		t.Errorf("route = %s -> %s, want JNB -> LHR", first.From, first.To)
	}
	if first.Departure != "08:30" || first.Arrival != "19:45" {
		t.Errorf("times = %s / %s, want 08:30 / 19:45", first.Departure, first.Arrival)
	}
	if first.Duration != "11h15m" {
		t.Errorf("duration = %q, want 11h15m", first.Duration)
	}
	if first.Price != 599 {
		t.Errorf("price = %v, want 599", first.Price)
	}
	if first.Class != "ECONOMY" {
		t.Errorf("class = %q, want ECONOMY", first.Class)
	}
	if first.Stops != "Direct" {
		t.Errorf("stops = %q, want Direct", first.Stops)
	}

	second := flights[1]
	if second.From != "JNB" || second.To != "LHR" {
		t.Errorf("connecting route = %s -> %s, want JNB -> LHR", second.From, second.To)
	}
	if second.Stops != "1 Stop" {
		t.Errorf("connecting stops = %q, want 1 Stop", second.Stops)
	}
}

func TestSearchFlightsEmptyResponseIsNotFallback(t *testing.T) {
	var tokenCalls atomic.Int64
	server := fakeAmadeus(t, &tokenCalls, `{"data":[]}`, http.StatusOK)

	client := NewAmadeusClient("id", "secret", server.URL, zap.NewNop())
	fallbackTaken := false
	client.OnFallback = func(string, error) { fallbackTaken = true }

	flights := client.SearchFlights(context.Background(), testParams())
	if flights == nil {
		t.Fatal("flights is nil, want empty slice")
	}
	if len(flights) != 0 {
		t.Fatalf("got %d flights, want 0", len(flights))
	}
	if fallbackTaken {
		t.Error("legitimately empty result must not trigger fallback")
	}
}

func TestSearchFlightsFallsBackOnServerError(t *testing.T) {
	var tokenCalls atomic.Int64
	server := fakeAmadeus(t, &tokenCalls, `{"error":"boom"}`, http.StatusInternalServerError)

	client := NewAmadeusClient("id", "secret", server.URL, zap.NewNop())
	var fallbackResource string
	client.OnFallback = func(resource string, err error) { fallbackResource = resource }

	flights := client.SearchFlights(context.Background(), testParams())
	if len(flights) == 0 {
		t.Fatal("fallback flights must be non-empty")
	}
	for _, f := range flights {
		if f.From != "JNB" || f.To != "LHR" {
			t.Errorf("fallback flight route = %s -> %s, want JNB -> LHR", f.From, f.To)
		}
	}
	if fallbackResource != "flights" {
		t.Errorf("fallback hook resource = %q, want flights", fallbackResource)
	}
}

func TestSearchFlightsFallsBackOnUnreachableHost(t *testing.T) {
	client := NewAmadeusClient("id", "secret", "http://127.0.0.1:1", zap.NewNop())
	var fallbackErr error
	client.OnFallback = func(_ string, err error) { fallbackErr = err }

	flights := client.SearchFlights(context.Background(), testParams())
	if len(flights) == 0 {
		t.Fatal("fallback flights must be non-empty")
	}
	if fallbackErr == nil {
		t.Error("fallback hook did not receive the underlying error")
	}
}

func TestSearchFlightsMalformedOfferFailsWholeCall(t *testing.T) {
	// Second offer has no itineraries: the whole call degrades to mock
	// data rather than returning a partial list.
	body := `{"data":[
		{"id":"1","itineraries":[{"duration":"PT2H","segments":[
			{"departure":{"iataCode":"JNB","at":"2025-03-01T08:30:00"},
			 "arrival":{"iataCode":"CPT","at":"2025-03-01T10:30:00"}}]}],
		 "price":{"total":"120.00"}},
		{"id":"2","itineraries":[],"price":{"total":"99.00"}}
	]}`
	var tokenCalls atomic.Int64
	server := fakeAmadeus(t, &tokenCalls, body, http.StatusOK)

	client := NewAmadeusClient("id", "secret", server.URL, zap.NewNop())
	fallbackTaken := false
	client.OnFallback = func(string, error) { fallbackTaken = true }

	flights := client.SearchFlights(context.Background(), testParams())
	if !fallbackTaken {
		t.Fatal("malformed offer must trigger the fallback path")
	}
	if len(flights) != 2 {
		t.Fatalf("got %d fallback flights, want 2", len(flights))
	}
	if flights[0].Airline != "Sky Airlines" {
		t.Errorf("fallback airline = %q, want Sky Airlines", flights[0].Airline)
	}
}

func TestTokenIsCachedWithinValidity(t *testing.T) {
	var tokenCalls atomic.Int64
	server := fakeAmadeus(t, &tokenCalls, `{"data":[]}`, http.StatusOK)

	client := NewAmadeusClient("id", "secret", server.URL, zap.NewNop())
	now := time.Now()
	client.now = func() time.Time { return now }

	client.SearchFlights(context.Background(), testParams())
	client.SearchFlights(context.Background(), testParams())

	if got := tokenCalls.Load(); got != 1 {
		t.Errorf("token endpoint called %d times, want 1", got)
	}
}

func TestTokenIsRefreshedAfterExpiry(t *testing.T) {
	var tokenCalls atomic.Int64
	server := fakeAmadeus(t, &tokenCalls, `{"data":[]}`, http.StatusOK)

	client := NewAmadeusClient("id", "secret", server.URL, zap.NewNop())
	now := time.Now()
	client.now = func() time.Time { return now }

	client.SearchFlights(context.Background(), testParams())

	// expires_in is 1799s; step just past it
	now = now.Add(1800 * time.Second)
	client.SearchFlights(context.Background(), testParams())

	if got := tokenCalls.Load(); got != 2 {
		t.Errorf("token endpoint called %d times, want 2", got)
	}
}

func TestTokenFailureSurfacesAsAuthError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAmadeusClient("id", "secret", server.URL, zap.NewNop())
	_, err := client.getToken(context.Background())
	if err == nil {
		t.Fatal("expected error from failed token exchange")
	}
	if _, ok := err.(*AuthError); !ok {
		t.Errorf("error type = %T, want *AuthError", err)
	}
}

func TestAirportSuggestions(t *testing.T) {
	var tokenCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		w.Write([]byte(tokenResponse))
	})
	mux.HandleFunc("/v1/reference-data/locations", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("subType"); got != "AIRPORT,CITY" {
			t.Errorf("subType = %q", got)
		}
		w.Write([]byte(`{"data":[
			{"iataCode":"JNB","name":"O R TAMBO INTL","address":{"cityName":"JOHANNESBURG","countryName":"SOUTH AFRICA"}}
		]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAmadeusClient("id", "secret", server.URL, zap.NewNop())
	airports := client.AirportSuggestions(context.Background(), "johannesburg")

	if len(airports) != 1 {
		t.Fatalf("got %d airports, want 1", len(airports))
	}
	if airports[0].Code != "JNB" || airports[0].City != "JOHANNESBURG" {
		t.Errorf("airport = %+v", airports[0])
	}
}

func TestAirportSuggestionsFailureYieldsEmptyList(t *testing.T) {
	client := NewAmadeusClient("id", "secret", "http://127.0.0.1:1", zap.NewNop())
	airports := client.AirportSuggestions(context.Background(), "lon")
	if airports == nil {
		t.Fatal("airports is nil, want empty slice")
	}
	if len(airports) != 0 {
		t.Errorf("got %d airports, want 0", len(airports))
	}
}
