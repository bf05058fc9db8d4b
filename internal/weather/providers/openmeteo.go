package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/weatherdash/weather-dashboard/internal/weather"
)

const (
	DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultOpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"
)

// OpenMeteoProvider implements weather.OpenMeteoClient: a geocoding lookup
// followed by a combined forecast call. Neither endpoint needs an API key.
type OpenMeteoProvider struct {
	client      *http.Client
	geocodeURL  string
	forecastURL string
	circuit     *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates the provider. Base URLs are overridable so
// tests can point at stub servers; empty strings select the real endpoints.
func NewOpenMeteoProvider(client *http.Client, geocodeURL, forecastURL string) *OpenMeteoProvider {
	if geocodeURL == "" {
		geocodeURL = DefaultGeocodingBaseURL
	}
	if forecastURL == "" {
		forecastURL = DefaultOpenMeteoBaseURL
	}

	return &OpenMeteoProvider{
		client:      client,
		geocodeURL:  geocodeURL,
		forecastURL: forecastURL,
		circuit:     newBreaker("open-meteo"),
	}
}

// Geocode resolves a city name to coordinates using the first match.
// Every failure mode (no results, network error, bad status, unreadable
// body) collapses to ErrGeocodeNotFound.
func (p *OpenMeteoProvider) Geocode(ctx context.Context, city string) (float64, float64, error) {
	values := url.Values{}
	values.Set("name", city)
	values.Set("count", "1")

	resp, err := doGet(ctx, p.client, p.circuit, p.geocodeURL+"?"+values.Encode())
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", weather.ErrGeocodeNotFound, city, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", weather.ErrGeocodeNotFound, city, err)
	}

	if len(payload.Results) == 0 {
		return 0, 0, fmt.Errorf("%w: %q", weather.ErrGeocodeNotFound, city)
	}

	return payload.Results[0].Latitude, payload.Results[0].Longitude, nil
}

// Forecast fetches current conditions plus the hourly and daily forecast in
// one call. The payload is returned raw for the normalizer to interpret.
func (p *OpenMeteoProvider) Forecast(ctx context.Context, lat, lon float64) (weather.OpenMeteoPayload, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")
	values.Set("hourly", "temperature_2m,relative_humidity_2m,weather_code")
	values.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	values.Set("timezone", "auto")
	values.Set("forecast_days", "7")

	resp, err := doGet(ctx, p.client, p.circuit, p.forecastURL+"?"+values.Encode())
	if err != nil {
		return weather.OpenMeteoPayload{}, err
	}
	defer resp.Body.Close()

	var payload weather.OpenMeteoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.OpenMeteoPayload{}, fmt.Errorf("%w: %v", weather.ErrMalformedData, err)
	}

	return payload, nil
}
