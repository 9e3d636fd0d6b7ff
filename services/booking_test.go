package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func hotelParams() AccommodationSearchParams {
	return AccommodationSearchParams{
		Destination: "London",
		CheckIn:     "2025-04-10",
		CheckOut:    "2025-04-14",
		Guests:      2,
		Rooms:       1,
	}
}

func TestSearchHotelsTransform(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/hotels/locations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"dest_id":"-2601889"}]`))
	})
	mux.HandleFunc("/v1/hotels/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-RapidAPI-Key"); got != "key" {
			t.Errorf("api key header = %q", got)
		}
		if got := r.URL.Query().Get("dest_id"); got != "-2601889" {
			t.Errorf("dest_id = %q", got)
		}
		w.Write([]byte(`{"result":[
			{"hotel_id":101,"hotel_name":"The Savoy","city":"London",
			 "min_total_price":420.5,"review_score":9.2,"review_nr":4100,
			 "main_photo_url":"https://example.com/savoy.jpg"},
			{"hotel_id":102,"hotel_name":"Budget Stay","city":"London"}
		]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewBookingClient("key", server.URL, zap.NewNop())
	hotels := client.SearchHotels(context.Background(), hotelParams())

	if len(hotels) != 2 {
		t.Fatalf("got %d hotels, want 2", len(hotels))
	}

	savoy := hotels[0]
	if savoy.ID != "101" || savoy.Name != "The Savoy" || savoy.Location != "London" {
		t.Errorf("hotel = %+v", savoy)
	}
	if savoy.Price != 420.5 {
		t.Errorf("price = %v, want 420.5", savoy.Price)
	}
	if savoy.Rating != 4.6 {
		t.Errorf("rating = %v, want 4.6 (review_score/2)", savoy.Rating)
	}
	if savoy.Reviews != 4100 {
		t.Errorf("reviews = %v, want 4100", savoy.Reviews)
	}

	// Missing fields take the documented defaults.
	budget := hotels[1]
	if budget.Price != 99 || budget.Rating != 4.5 || budget.Reviews != 100 {
		t.Errorf("defaults not applied: %+v", budget)
	}
	if budget.Image != placeholderHotelImage {
		t.Errorf("image = %q, want placeholder", budget.Image)
	}
}

func TestSearchHotelsEmptyResultIsNotFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/hotels/locations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"dest_id":"-553173"}]`))
	})
	mux.HandleFunc("/v1/hotels/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewBookingClient("key", server.URL, zap.NewNop())
	fallbackTaken := false
	client.OnFallback = func(string, error) { fallbackTaken = true }

	hotels := client.SearchHotels(context.Background(), hotelParams())
	if hotels == nil {
		t.Fatal("hotels is nil, want empty slice")
	}
	if len(hotels) != 0 {
		t.Fatalf("got %d hotels, want 0", len(hotels))
	}
	if fallbackTaken {
		t.Error("legitimately empty result must not trigger fallback")
	}
}

func TestSearchHotelsFallsBackOnFailure(t *testing.T) {
	client := NewBookingClient("key", "http://127.0.0.1:1", zap.NewNop())
	var resources []string
	client.OnFallback = func(resource string, err error) { resources = append(resources, resource) }

	hotels := client.SearchHotels(context.Background(), hotelParams())
	if len(hotels) != 2 {
		t.Fatalf("got %d fallback hotels, want 2", len(hotels))
	}
	if hotels[0].Name != "Ocean View Resort" {
		t.Errorf("fallback hotel = %q, want Ocean View Resort", hotels[0].Name)
	}

	// Both the destination lookup and the hotel search degraded.
	if len(resources) != 2 || resources[0] != "destination" || resources[1] != "hotels" {
		t.Errorf("fallback resources = %v, want [destination hotels]", resources)
	}
}

func TestDestinationIDDefault(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"missing dest_id", `[{"name":"nowhere"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/hotels/locations", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			server := httptest.NewServer(mux)
			t.Cleanup(server.Close)

			client := NewBookingClient("key", server.URL, zap.NewNop())
			if got := client.DestinationID(context.Background(), "nowhere"); got != DefaultDestinationID {
				t.Errorf("DestinationID = %q, want %q", got, DefaultDestinationID)
			}
		})
	}
}

func TestDestinationIDSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/hotels/locations", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Paris" {
			t.Errorf("name = %q", got)
		}
		w.Write([]byte(`[{"dest_id":"-1456928"},{"dest_id":"-999"}]`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewBookingClient("key", server.URL, zap.NewNop())
	if got := client.DestinationID(context.Background(), "Paris"); got != "-1456928" {
		t.Errorf("DestinationID = %q, want -1456928", got)
	}
}
