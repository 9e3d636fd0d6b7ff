package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestCurrentWeatherTransform(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "Cape Town" || q.Get("units") != "metric" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{
			"main": {"temp": 18.6, "humidity": 72},
			"weather": [{"description": "scattered clouds", "icon": "03d"}],
			"wind": {"speed": 5.1}
		}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewWeatherClient("key", server.URL, zap.NewNop())
	snapshot := client.CurrentWeather(context.Background(), "Cape Town")

	if snapshot.Temperature != 19 {
		t.Errorf("temperature = %d, want 19 (rounded)", snapshot.Temperature)
	}
	if snapshot.Description != "scattered clouds" || snapshot.Icon != "03d" {
		t.Errorf("conditions = %q / %q", snapshot.Description, snapshot.Icon)
	}
	if snapshot.Humidity != 72 || snapshot.WindSpeed != 5.1 {
		t.Errorf("humidity/wind = %d / %v", snapshot.Humidity, snapshot.WindSpeed)
	}
}

func TestCurrentWeatherFallsBackOnFailure(t *testing.T) {
	client := NewWeatherClient("key", "http://127.0.0.1:1", zap.NewNop())
	fallbackTaken := false
	client.OnFallback = func(string, error) { fallbackTaken = true }

	snapshot := client.CurrentWeather(context.Background(), "Atlantis")
	if snapshot != DefaultWeather() {
		t.Errorf("snapshot = %+v, want default", snapshot)
	}
	if !fallbackTaken {
		t.Error("fallback hook not invoked")
	}
}

func TestCurrentWeatherEmptyConditionsFallsBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main":{"temp":10,"humidity":50},"weather":[],"wind":{"speed":1}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewWeatherClient("key", server.URL, zap.NewNop())
	if got := client.CurrentWeather(context.Background(), "Nowhere"); got != DefaultWeather() {
		t.Errorf("snapshot = %+v, want default", got)
	}
}
