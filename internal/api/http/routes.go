package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/weatherdash/weather-dashboard/internal/config"
	"github.com/weatherdash/weather-dashboard/internal/present"
	"github.com/weatherdash/weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, dashboard config.DashboardConfig) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		req, err := parseWeatherQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		source, err := weather.ParseSource(req.Source)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := service.Fetch(c.Context(), req.City, source)
		if err != nil {
			return mapFetchError(err)
		}

		return c.JSON(fiber.Map{
			"snapshot":     snapshot,
			"presentation": present.BuildView(snapshot),
		})
	})

	// Static rendering-boundary configuration: page chrome, city presets,
	// selectable sources, gauge domain.
	v1.Get("/dashboard/config", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"dashboard": dashboard,
			"gauge": fiber.Map{
				"min":       present.GaugeMinC,
				"max":       present.GaugeMaxC,
				"threshold": present.GaugeThresholdC,
			},
		})
	})
}

// mapFetchError translates the fetch-cycle error kinds into HTTP statuses.
// Every failure is terminal for its cycle; the client may simply retry.
func mapFetchError(err error) error {
	switch {
	case errors.Is(err, weather.ErrGeocodeNotFound):
		return fiber.NewError(fiber.StatusNotFound, "could not find coordinates for requested city")
	case errors.Is(err, weather.ErrFetch):
		return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
	case errors.Is(err, weather.ErrMalformedData):
		return fiber.NewError(fiber.StatusBadGateway, "weather provider returned unusable data")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}

// weatherQuery holds query parameters for the weather endpoint.
type weatherQuery struct {
	City   string `validate:"required"`
	Source string `validate:"required,oneof=open-meteo wttr"`
}

func parseWeatherQuery(c *fiber.Ctx) (weatherQuery, error) {
	var q weatherQuery

	q.City = c.Query("city")
	q.Source = c.Query("source", string(weather.SourceOpenMeteo))

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
