package present

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherdash/weather-dashboard/internal/weather"
)

func TestZoneFor(t *testing.T) {
	tests := []struct {
		temp float64
		zone string
	}{
		{-25, ZoneLightBlue}, // below the gauge domain, still banded
		{0, ZoneLightBlue},
		{10, ZoneLightGreen},
		{20, ZoneLightGreen},
		{25, ZoneYellow},
		{35, ZoneYellow},
		{45, ZoneRed},
		{55, ZoneRed}, // above the gauge domain
	}

	for _, tc := range tests {
		assert.Equal(t, tc.zone, ZoneFor(tc.temp), "temp %.0f", tc.temp)
	}
}

func TestTemperatureGauge(t *testing.T) {
	g := TemperatureGauge(25)

	assert.Equal(t, 25.0, g.Value)
	assert.Equal(t, -20.0, g.Min)
	assert.Equal(t, 50.0, g.Max)
	assert.Equal(t, 40.0, g.Threshold)
	assert.Equal(t, ZoneYellow, g.Zone)
	require.Len(t, g.Bands, 4)
	assert.Equal(t, ZoneLightBlue, g.Bands[0].Color)
	assert.Equal(t, ZoneRed, g.Bands[3].Color)

	// Out-of-domain values pass through unclamped.
	assert.Equal(t, -25.0, TemperatureGauge(-25).Value)
}

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "Overcast", ShortLabel("Overcast"))
	assert.Equal(t, "Moderate", ShortLabel("Moderate rain showers"))
	assert.Equal(t, "", ShortLabel(""))
	assert.Equal(t, "", ShortLabel("   "))
}

func TestHourlySeriesTruncation(t *testing.T) {
	snap := weather.WeatherSnapshot{Source: weather.SourceOpenMeteo}
	base := time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		snap.Hourly = append(snap.Hourly, weather.HourlyPoint{
			Timestamp:    base.Add(time.Duration(i) * time.Hour),
			TemperatureC: 15 + float64(i),
			HumidityPct:  60,
		})
	}

	series := HourlySeries(snap)
	require.Len(t, series, 24)
	assert.Equal(t, base, series[0].Timestamp)
	assert.Equal(t, 15.0, series[0].TemperatureC)

	// Shorter input stays as-is.
	snap.Hourly = snap.Hourly[:7]
	assert.Len(t, HourlySeries(snap), 7)

	// No hourly data at all (wttr.in) yields an empty series.
	assert.Empty(t, HourlySeries(weather.WeatherSnapshot{Source: weather.SourceWttrIn}))
}

func intPtr(v int) *int { return &v }

func TestDailyCardsRoundingAsymmetry(t *testing.T) {
	date := time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)

	t.Run("open-meteo rounds to whole degrees", func(t *testing.T) {
		snap := weather.WeatherSnapshot{
			Source: weather.SourceOpenMeteo,
			Daily: []weather.DailyForecast{{
				Date:          date,
				MaxTempC:      21.6,
				MinTempC:      11.4,
				WeatherCode:   intPtr(61),
				ConditionText: "Slight rain",
			}},
		}

		cards := DailyCards(snap)
		require.Len(t, cards, 1)
		assert.Equal(t, "Sun 08/24", cards[0].DateLabel)
		assert.Equal(t, "22°", cards[0].MaxLabel)
		assert.Equal(t, "11°", cards[0].MinLabel)
		assert.Equal(t, "🌧️", cards[0].Icon)
		assert.Equal(t, "Slight rain", cards[0].Condition)
	})

	t.Run("wttr keeps provider-native digits", func(t *testing.T) {
		snap := weather.WeatherSnapshot{
			Source: weather.SourceWttrIn,
			Daily: []weather.DailyForecast{
				{Date: date, MaxTempC: 24, MinTempC: 15.5, ConditionText: "Partly cloudy"},
				{Date: date.AddDate(0, 0, 1), MaxTempC: 22, MinTempC: 14},
				{Date: date.AddDate(0, 0, 2), MaxTempC: 20, MinTempC: 13},
			},
		}

		cards := DailyCards(snap)
		require.Len(t, cards, 3)
		assert.Equal(t, "Today", cards[0].DateLabel)
		assert.Equal(t, "Tomorrow", cards[1].DateLabel)
		assert.Equal(t, "Day 3", cards[2].DateLabel)
		assert.Equal(t, "24°", cards[0].MaxLabel)
		assert.Equal(t, "15.5°", cards[0].MinLabel, "no rounding for wttr.in")
		assert.Equal(t, "🌤️", cards[0].Icon, "no weather code means default icon")
	})
}

func floatPtr(v float64) *float64 { return &v }

func TestTiles(t *testing.T) {
	t.Run("open-meteo", func(t *testing.T) {
		snap := weather.WeatherSnapshot{
			Source: weather.SourceOpenMeteo,
			Current: weather.CurrentConditions{
				TemperatureC:  18.2,
				HumidityPct:   65,
				WindSpeedKmh:  12.4,
				WeatherCode:   intPtr(3),
				ConditionText: "Overcast",
			},
		}

		tiles := Tiles(snap)
		require.Len(t, tiles, 4)
		assert.Equal(t, "18.2°C", tiles[0].Value)
		assert.Empty(t, tiles[0].Delta)
		assert.Equal(t, "65%", tiles[1].Value)
		assert.Equal(t, "12.4 km/h", tiles[2].Value)
		assert.Equal(t, "Condition", tiles[3].Label)
		assert.Equal(t, "Overcast", tiles[3].Value)
	})

	t.Run("wttr", func(t *testing.T) {
		snap := weather.WeatherSnapshot{
			Source: weather.SourceWttrIn,
			Current: weather.CurrentConditions{
				TemperatureC:  21.5,
				FeelsLikeC:    floatPtr(23),
				HumidityPct:   71,
				WindSpeedKmh:  13,
				VisibilityKm:  floatPtr(10),
				ConditionText: "Light rain shower",
			},
		}

		tiles := Tiles(snap)
		require.Len(t, tiles, 4)
		assert.Equal(t, "21.5°C", tiles[0].Value)
		assert.Equal(t, "Feels like 23.0°C", tiles[0].Delta)
		assert.Equal(t, "71%", tiles[1].Value)
		assert.Equal(t, "13 km/h", tiles[2].Value, "provider-native wind, no rounding")
		assert.Equal(t, "Visibility", tiles[3].Label)
		assert.Equal(t, "10 km", tiles[3].Value)
	})
}

func TestBuildView(t *testing.T) {
	snap := weather.WeatherSnapshot{
		Location:  "Paris",
		Source:    weather.SourceOpenMeteo,
		FetchedAt: time.Date(2025, 8, 24, 12, 30, 45, 0, time.UTC),
		Current: weather.CurrentConditions{
			TemperatureC:  18.2,
			HumidityPct:   65,
			WindSpeedKmh:  12.4,
			WeatherCode:   intPtr(3),
			ConditionText: "Overcast",
		},
	}

	view := BuildView(snap)
	assert.Equal(t, "☁️", view.Icon)
	assert.Equal(t, "Overcast", view.Description)
	assert.Equal(t, "Overcast", view.ShortLabel)
	assert.Equal(t, "2025-08-24 12:30:45", view.LastUpdated)
	assert.Equal(t, ZoneLightGreen, view.Gauge.Zone)
	assert.Len(t, view.Tiles, 4)
}
