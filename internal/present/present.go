// Package present derives renderable values from a weather snapshot.
// Everything here is a pure function; the rendering layer itself (widgets,
// layout, styling) lives outside this service.
package present

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/weatherdash/weather-dashboard/internal/weather"
	"github.com/weatherdash/weather-dashboard/internal/weather/wmo"
)

// Gauge zone colors, in band order.
const (
	ZoneLightBlue  = "lightblue"
	ZoneLightGreen = "lightgreen"
	ZoneYellow     = "yellow"
	ZoneRed        = "red"
)

// Temperature gauge domain and alert threshold.
const (
	GaugeMinC       = -20.0
	GaugeMaxC       = 50.0
	GaugeThresholdC = 40.0
)

// GaugeBand is one colored segment of the gauge axis.
type GaugeBand struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// Gauge holds the parameters the rendering layer needs to draw the
// temperature indicator. Value is not clamped to the domain; clipping is the
// renderer's job.
type Gauge struct {
	Value     float64     `json:"value"`
	Min       float64     `json:"min"`
	Max       float64     `json:"max"`
	Threshold float64     `json:"threshold"`
	Bands     []GaugeBand `json:"bands"`
	Zone      string      `json:"zone"`
}

// TemperatureGauge builds the gauge parameters for a temperature reading.
func TemperatureGauge(tempC float64) Gauge {
	return Gauge{
		Value:     tempC,
		Min:       GaugeMinC,
		Max:       GaugeMaxC,
		Threshold: GaugeThresholdC,
		Bands: []GaugeBand{
			{From: -20, To: 0, Color: ZoneLightBlue},
			{From: 0, To: 20, Color: ZoneLightGreen},
			{From: 20, To: 35, Color: ZoneYellow},
			{From: 35, To: 50, Color: ZoneRed},
		},
		Zone: ZoneFor(tempC),
	}
}

// ZoneFor assigns a temperature to its gauge band color. Values beyond the
// domain map to the nearest band.
func ZoneFor(tempC float64) string {
	switch {
	case tempC <= 0:
		return ZoneLightBlue
	case tempC <= 20:
		return ZoneLightGreen
	case tempC <= 35:
		return ZoneYellow
	default:
		return ZoneRed
	}
}

// SeriesPoint is one sample of the paired temperature/humidity chart.
type SeriesPoint struct {
	Timestamp    time.Time `json:"timestamp"`
	TemperatureC float64   `json:"temperatureC"`
	HumidityPct  float64   `json:"humidityPercent"`
}

// HourlySeries emits the forecast chart series, truncated to the first 24
// points. Sources without hourly data yield an empty series.
func HourlySeries(snap weather.WeatherSnapshot) []SeriesPoint {
	hourly := snap.Hourly
	if len(hourly) > 24 {
		hourly = hourly[:24]
	}

	points := make([]SeriesPoint, 0, len(hourly))
	for _, h := range hourly {
		points = append(points, SeriesPoint{
			Timestamp:    h.Timestamp,
			TemperatureC: h.TemperatureC,
			HumidityPct:  h.HumidityPct,
		})
	}
	return points
}

// DailyCard is one day of the extended forecast, ready to render.
type DailyCard struct {
	DateLabel string   `json:"dateLabel"`
	Icon      string   `json:"icon"`
	Condition string   `json:"condition"`
	MaxLabel  string   `json:"maxLabel"`
	MinLabel  string   `json:"minLabel"`
	UVIndex   *float64 `json:"uvIndex,omitempty"`
	Sunrise   string   `json:"sunrise,omitempty"`
	Sunset    string   `json:"sunset,omitempty"`
}

// DailyCards formats the extended forecast. Open-Meteo temperatures round to
// whole degrees; wttr.in temperatures stay provider-native with no rounding.
// The asymmetry mirrors how the two providers report precision.
func DailyCards(snap weather.WeatherSnapshot) []DailyCard {
	cards := make([]DailyCard, 0, len(snap.Daily))
	for i, day := range snap.Daily {
		card := DailyCard{
			Condition: day.ConditionText,
			UVIndex:   day.UVIndex,
			Sunrise:   day.Sunrise,
			Sunset:    day.Sunset,
		}

		if snap.Source == weather.SourceOpenMeteo {
			card.DateLabel = day.Date.Format("Mon 01/02")
			card.MaxLabel = fmt.Sprintf("%.0f°", day.MaxTempC)
			card.MinLabel = fmt.Sprintf("%.0f°", day.MinTempC)
		} else {
			card.DateLabel = relativeDayLabel(i)
			card.MaxLabel = trimFloat(day.MaxTempC) + "°"
			card.MinLabel = trimFloat(day.MinTempC) + "°"
		}

		if day.WeatherCode != nil {
			card.Icon = wmo.Lookup(*day.WeatherCode).Icon
		} else {
			card.Icon = wmo.DefaultIcon
		}

		cards = append(cards, card)
	}
	return cards
}

func relativeDayLabel(i int) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("Day %d", i+1)
	}
}

// Tile is one metric tile (label, value, optional delta line).
type Tile struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// Tiles builds the four current-conditions metric tiles. The fourth tile is
// the condition short-label for Open-Meteo and visibility for wttr.in, which
// reports no numeric weather code but does report visibility.
func Tiles(snap weather.WeatherSnapshot) []Tile {
	cur := snap.Current

	tempTile := Tile{
		Label: "Temperature",
		Value: fmt.Sprintf("%.1f°C", cur.TemperatureC),
	}
	if cur.FeelsLikeC != nil {
		tempTile.Delta = fmt.Sprintf("Feels like %.1f°C", *cur.FeelsLikeC)
	}

	humidityTile := Tile{
		Label: "Humidity",
		Value: trimFloat(cur.HumidityPct) + "%",
	}

	windTile := Tile{Label: "Wind Speed"}
	if snap.Source == weather.SourceOpenMeteo {
		windTile.Value = fmt.Sprintf("%.1f km/h", cur.WindSpeedKmh)
	} else {
		windTile.Value = trimFloat(cur.WindSpeedKmh) + " km/h"
	}

	var fourth Tile
	if snap.Source == weather.SourceWttrIn && cur.VisibilityKm != nil {
		fourth = Tile{
			Label: "Visibility",
			Value: trimFloat(*cur.VisibilityKm) + " km",
		}
	} else {
		fourth = Tile{
			Label: "Condition",
			Value: ShortLabel(cur.ConditionText),
		}
	}

	return []Tile{tempTile, humidityTile, windTile, fourth}
}

// ShortLabel reduces a condition description to its first word, for tiles
// with limited space.
func ShortLabel(description string) string {
	fields := strings.Fields(description)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// CurrentIcon picks the icon for the current conditions. The text provider
// carries no numeric code and always gets the default icon.
func CurrentIcon(snap weather.WeatherSnapshot) string {
	if snap.Current.WeatherCode != nil {
		return wmo.Lookup(*snap.Current.WeatherCode).Icon
	}
	return wmo.DefaultIcon
}

// View bundles everything the rendering boundary consumes for one snapshot.
type View struct {
	Icon        string        `json:"icon"`
	Description string        `json:"description"`
	ShortLabel  string        `json:"shortLabel"`
	LastUpdated string        `json:"lastUpdated"`
	Tiles       []Tile        `json:"tiles"`
	Gauge       Gauge         `json:"gauge"`
	Hourly      []SeriesPoint `json:"hourlySeries,omitempty"`
	Daily       []DailyCard   `json:"dailyCards"`
}

// BuildView assembles the full presentation bundle for a snapshot.
func BuildView(snap weather.WeatherSnapshot) View {
	return View{
		Icon:        CurrentIcon(snap),
		Description: snap.Current.ConditionText,
		ShortLabel:  ShortLabel(snap.Current.ConditionText),
		LastUpdated: snap.FetchedAt.Format("2006-01-02 15:04:05"),
		Tiles:       Tiles(snap),
		Gauge:       TemperatureGauge(snap.Current.TemperatureC),
		Hourly:      HourlySeries(snap),
		Daily:       DailyCards(snap),
	}
}

// trimFloat renders a float with the provider's own digits: integral values
// come out without a decimal point.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
