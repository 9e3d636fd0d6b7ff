package services

import "go.uber.org/zap"

// FallbackHook observes the silent error-to-mock-data path. It receives the
// resource name ("flights", "hotels", ...) and the underlying error.
type FallbackHook func(resource string, err error)

func reportFallback(logger *zap.Logger, hook FallbackHook, resource string, err error) {
	logger.Warn("falling back to mock data",
		zap.String("resource", resource),
		zap.Error(err))
	if hook != nil {
		hook(resource, err)
	}
}

// ─── Mock Data ────────────────────────────────────────────────────────────────

// MockFlights is the deterministic substitute result set for a failed flight
// search. The requested origin and destination codes are echoed back so the
// results stay plausible for any route.
func MockFlights(params FlightSearchParams) []FlightResult {
	return []FlightResult{
		{
			ID:        "1",
			Airline:   "Sky Airlines",
			From:      params.From,
			To:        params.To,
			Departure: "08:30",
			Arrival:   "20:45",
			Duration:  "8h 15m",
			Price:     599,
			Class:     "Economy",
			Stops:     "Direct",
		},
		{
			ID:        "2",
			Airline:   "Global Wings",
			From:      params.From,
			To:        params.To,
			Departure: "14:20",
			Arrival:   "02:35+1",
			Duration:  "7h 15m",
			Price:     729,
			Class:     "Economy",
			Stops:     "Direct",
		},
	}
}

// MockHotels is the deterministic substitute result set for a failed
// accommodation search.
func MockHotels() []AccommodationResult {
	return []AccommodationResult{
		{
			ID:        "1",
			Name:      "Ocean View Resort",
			Location:  "Maldives",
			Price:     299,
			Rating:    4.8,
			Reviews:   1234,
			Image:     "https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg?auto=compress&cs=tinysrgb&w=800",
			Amenities: []string{"Wifi", "Pool", "Spa", "Restaurant"},
			Type:      "Resort",
		},
		{
			ID:        "2",
			Name:      "Downtown Luxury Hotel",
			Location:  "New York",
			Price:     189,
			Rating:    4.6,
			Reviews:   856,
			Image:     "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=800",
			Amenities: []string{"Wifi", "Gym", "Business Center", "Parking"},
			Type:      "Hotel",
		},
	}
}

// DefaultDestinationID is returned when the destination lookup fails.
// It identifies London.
const DefaultDestinationID = "-553173"

// DefaultWeather is the substitute snapshot for a failed weather fetch.
func DefaultWeather() WeatherSnapshot {
	return WeatherSnapshot{
		Temperature: 22,
		Description: "Clear sky",
		Icon:        "01d",
		Humidity:    65,
		WindSpeed:   3.5,
	}
}
