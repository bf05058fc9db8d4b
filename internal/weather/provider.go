package weather

import (
	"context"
	"errors"
)

var (
	// ErrGeocodeNotFound is returned when a city cannot be resolved to
	// coordinates, for whatever reason (no match, network failure,
	// unreadable response).
	ErrGeocodeNotFound = errors.New("city not found")

	// ErrFetch is returned when a provider request fails outright
	// (network error, timeout, non-2xx status).
	ErrFetch = errors.New("weather provider request failed")

	// ErrMalformedData is returned when a provider response decodes but
	// does not have the expected shape.
	ErrMalformedData = errors.New("malformed provider data")
)

// OpenMeteoClient is the coordinate-based provider: a geocoding call
// followed by a combined current/hourly/daily forecast call.
type OpenMeteoClient interface {
	Geocode(ctx context.Context, city string) (lat, lon float64, err error)
	Forecast(ctx context.Context, lat, lon float64) (OpenMeteoPayload, error)
}

// WttrClient is the text-based provider: one call returns current
// conditions and a short forecast keyed by city name.
type WttrClient interface {
	TextWeather(ctx context.Context, city string) (WttrPayload, error)
}

// OpenMeteoPayload is the raw Open-Meteo forecast response, decoded but not
// yet interpreted. Hourly and daily blocks are parallel arrays.
type OpenMeteoPayload struct {
	Current OpenMeteoCurrent `json:"current"`
	Hourly  OpenMeteoHourly  `json:"hourly"`
	Daily   OpenMeteoDaily   `json:"daily"`
}

type OpenMeteoCurrent struct {
	Temperature2m      float64 `json:"temperature_2m"`
	RelativeHumidity2m float64 `json:"relative_humidity_2m"`
	WindSpeed10m       float64 `json:"wind_speed_10m"`
	WeatherCode        int     `json:"weather_code"`
}

type OpenMeteoHourly struct {
	Time               []string  `json:"time"`
	Temperature2m      []float64 `json:"temperature_2m"`
	RelativeHumidity2m []float64 `json:"relative_humidity_2m"`
	WeatherCode        []int     `json:"weather_code"`
}

type OpenMeteoDaily struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
}

// WttrPayload is the raw wttr.in `format=j1` response. Numeric fields come
// back as strings and are parsed during normalization.
type WttrPayload struct {
	CurrentCondition []WttrCurrent `json:"current_condition"`
	Weather          []WttrDay     `json:"weather"`
}

type WttrCurrent struct {
	TempC         string     `json:"temp_C"`
	FeelsLikeC    string     `json:"FeelsLikeC"`
	Humidity      string     `json:"humidity"`
	WindSpeedKmph string     `json:"windspeedKmph"`
	Visibility    string     `json:"visibility"`
	WeatherDesc   []WttrText `json:"weatherDesc"`
}

type WttrDay struct {
	Date      string          `json:"date"`
	MaxTempC  string          `json:"maxtempC"`
	MinTempC  string          `json:"mintempC"`
	UVIndex   string          `json:"uvIndex"`
	Astronomy []WttrAstronomy `json:"astronomy"`
	Hourly    []WttrHour      `json:"hourly"`
}

type WttrAstronomy struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type WttrHour struct {
	Time        string     `json:"time"`
	WeatherDesc []WttrText `json:"weatherDesc"`
}

type WttrText struct {
	Value string `json:"value"`
}
