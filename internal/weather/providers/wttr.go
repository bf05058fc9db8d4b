package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/weatherdash/weather-dashboard/internal/weather"
)

// DefaultWttrBaseURL is the public wttr.in instance.
const DefaultWttrBaseURL = "https://wttr.in"

// WttrProvider implements weather.WttrClient: one `format=j1` call keyed by
// city name returns current conditions and a 3-day forecast.
type WttrProvider struct {
	client  *http.Client
	baseURL string
	circuit *gobreaker.CircuitBreaker
}

// NewWttrProvider creates the provider. The base URL is overridable so tests
// can point at a stub server; an empty string selects the real endpoint.
func NewWttrProvider(client *http.Client, baseURL string) *WttrProvider {
	if baseURL == "" {
		baseURL = DefaultWttrBaseURL
	}

	return &WttrProvider{
		client:  client,
		baseURL: baseURL,
		circuit: newBreaker("wttr"),
	}
}

// TextWeather fetches the j1 JSON report for a city. The payload is returned
// raw for the normalizer to interpret.
func (p *WttrProvider) TextWeather(ctx context.Context, city string) (weather.WttrPayload, error) {
	u := fmt.Sprintf("%s/%s?format=j1", p.baseURL, url.PathEscape(city))

	resp, err := doGet(ctx, p.client, p.circuit, u)
	if err != nil {
		return weather.WttrPayload{}, err
	}
	defer resp.Body.Close()

	var payload weather.WttrPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.WttrPayload{}, fmt.Errorf("%w: %v", weather.ErrMalformedData, err)
	}

	return payload, nil
}
