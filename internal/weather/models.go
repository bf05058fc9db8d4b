package weather

import (
	"fmt"
	"time"
)

// Source identifies which provider a snapshot came from.
type Source string

const (
	SourceOpenMeteo Source = "open-meteo"
	SourceWttrIn    Source = "wttr"
)

// ParseSource validates a user-supplied source name.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceOpenMeteo:
		return SourceOpenMeteo, nil
	case SourceWttrIn:
		return SourceWttrIn, nil
	default:
		return "", fmt.Errorf("unknown weather source %q", s)
	}
}

// WeatherSnapshot is the canonical weather view for one city from one
// provider. It is built fresh on every fetch and never mutated afterwards.
type WeatherSnapshot struct {
	Location  string            `json:"location"`
	Source    Source            `json:"source"`
	FetchedAt time.Time         `json:"fetchedAt"` // always UTC
	Current   CurrentConditions `json:"current"`
	Daily     []DailyForecast   `json:"daily"`
	Hourly    []HourlyPoint     `json:"hourly,omitempty"`
}

// CurrentConditions holds the present-moment observation. Pointer fields are
// absent when the provider does not report them.
type CurrentConditions struct {
	TemperatureC  float64  `json:"temperatureC"`
	FeelsLikeC    *float64 `json:"feelsLikeC,omitempty"`
	HumidityPct   float64  `json:"humidityPercent"`
	WindSpeedKmh  float64  `json:"windSpeedKmh"`
	WeatherCode   *int     `json:"weatherCode,omitempty"`
	ConditionText string   `json:"conditionText"`
	VisibilityKm  *float64 `json:"visibilityKm,omitempty"`
}

// DailyForecast is one day of the extended forecast.
type DailyForecast struct {
	Date          time.Time `json:"date"` // civil date, midnight UTC
	MaxTempC      float64   `json:"maxTempC"`
	MinTempC      float64   `json:"minTempC"`
	WeatherCode   *int      `json:"weatherCode,omitempty"`
	ConditionText string    `json:"conditionText,omitempty"`
	UVIndex       *float64  `json:"uvIndex,omitempty"`

	// Provider-native times of day ("06:12 AM"); empty when the provider
	// supplies no astronomy block.
	Sunrise string `json:"sunrise,omitempty"`
	Sunset  string `json:"sunset,omitempty"`
}

// HourlyPoint is one sample of the 24-hour forecast series.
type HourlyPoint struct {
	Timestamp    time.Time `json:"timestamp"`
	TemperatureC float64   `json:"temperatureC"`
	HumidityPct  float64   `json:"humidityPercent"`
}
