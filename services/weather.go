package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// WeatherSnapshot is the normalized view of current conditions for a city.
// Recomputed per request, never cached.
type WeatherSnapshot struct {
	Temperature int     `json:"temperature"` // degrees Celsius, rounded
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"` // percent
	WindSpeed   float64 `json:"wind_speed"` // m/s
}

// WeatherClient wraps the OpenWeatherMap current-weather API.
type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	OnFallback FallbackHook
}

func NewWeatherClient(apiKey, baseURL string, logger *zap.Logger) *WeatherClient {
	return &WeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// CurrentWeather fetches current conditions for a city in metric units.
// Failures yield the fixed default snapshot.
func (c *WeatherClient) CurrentWeather(ctx context.Context, city string) WeatherSnapshot {
	snapshot, err := c.currentWeather(ctx, city)
	if err != nil {
		reportFallback(c.logger, c.OnFallback, "weather", err)
		return DefaultWeather()
	}
	return snapshot
}

func (c *WeatherClient) currentWeather(ctx context.Context, city string) (WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return WeatherSnapshot{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WeatherSnapshot{}, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return WeatherSnapshot{}, fmt.Errorf("weather error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return WeatherSnapshot{}, &TransformError{Resource: "weather", Err: err}
	}
	if len(parsed.Weather) == 0 {
		return WeatherSnapshot{}, &TransformError{Resource: "weather", Err: fmt.Errorf("response has no weather conditions")}
	}

	return WeatherSnapshot{
		Temperature: int(math.Round(parsed.Main.Temp)),
		Description: parsed.Weather[0].Description,
		Icon:        parsed.Weather[0].Icon,
		Humidity:    parsed.Main.Humidity,
		WindSpeed:   parsed.Wind.Speed,
	}, nil
}
