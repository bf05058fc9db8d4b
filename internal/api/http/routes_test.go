package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherdash/weather-dashboard/internal/config"
	"github.com/weatherdash/weather-dashboard/internal/weather"
)

func newTestApp() *fiber.App {
	app := fiber.New()

	svc := weather.NewService(nil, nil)
	RegisterRoutes(app, svc, config.DashboardConfig{
		Title:         "Advanced Weather Dashboard",
		Icon:          "🌤️",
		DefaultCities: []string{"London", "Paris"},
		Sources:       []string{"open-meteo", "wttr"},
	})

	return app
}

// TestWeatherQueryValidation verifies that the weather endpoint rejects
// requests without a city and requests naming an unknown source.
func TestWeatherQueryValidation(t *testing.T) {
	app := newTestApp()

	// Missing city parameter should return 400.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather?source=open-meteo", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown source should also return 400.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/weather?city=Paris&source=accuweather", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDashboardConfigEndpoint(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/config", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Dashboard config.DashboardConfig `json:"dashboard"`
		Gauge     struct {
			Min       float64 `json:"min"`
			Max       float64 `json:"max"`
			Threshold float64 `json:"threshold"`
		} `json:"gauge"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "Advanced Weather Dashboard", body.Dashboard.Title)
	assert.Equal(t, []string{"open-meteo", "wttr"}, body.Dashboard.Sources)
	assert.Equal(t, -20.0, body.Gauge.Min)
	assert.Equal(t, 50.0, body.Gauge.Max)
	assert.Equal(t, 40.0, body.Gauge.Threshold)
}
