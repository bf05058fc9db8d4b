package weather

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/weatherdash/weather-dashboard/internal/weather/wmo"
)

const (
	// The extended forecast shows 5 daily cards for Open-Meteo even though
	// the API is asked for 7 days.
	openMeteoDailyDays = 5

	// The forecast chart covers the next 24 hours.
	maxHourlyPoints = 24

	// wttr.in reports at most 3 forecast days.
	wttrDailyDays = 3

	// wttr.in day condition is taken from the midday hourly sample.
	wttrMiddayIndex = 4
)

// NormalizeOpenMeteo converts a raw Open-Meteo forecast payload into the
// canonical snapshot. Daily and hourly blocks are parallel arrays; any index
// that would read past the end of an array is malformed data, never an
// out-of-range access.
func NormalizeOpenMeteo(city string, p OpenMeteoPayload) (WeatherSnapshot, error) {
	code := p.Current.WeatherCode

	daily, err := normalizeOpenMeteoDaily(p.Daily)
	if err != nil {
		return WeatherSnapshot{}, err
	}

	hourly, err := normalizeOpenMeteoHourly(p.Hourly)
	if err != nil {
		return WeatherSnapshot{}, err
	}

	return WeatherSnapshot{
		Location:  city,
		Source:    SourceOpenMeteo,
		FetchedAt: time.Now().UTC(),
		Current: CurrentConditions{
			TemperatureC:  p.Current.Temperature2m,
			HumidityPct:   p.Current.RelativeHumidity2m,
			WindSpeedKmh:  p.Current.WindSpeed10m,
			WeatherCode:   &code,
			ConditionText: wmo.Lookup(code).Description,
		},
		Daily:  daily,
		Hourly: hourly,
	}, nil
}

func normalizeOpenMeteoDaily(d OpenMeteoDaily) ([]DailyForecast, error) {
	days := make([]DailyForecast, 0, openMeteoDailyDays)
	for i := 0; i < openMeteoDailyDays; i++ {
		if i >= len(d.Time) || i >= len(d.Temperature2mMax) ||
			i >= len(d.Temperature2mMin) || i >= len(d.WeatherCode) {
			return nil, fmt.Errorf("%w: daily arrays shorter than %d entries", ErrMalformedData, openMeteoDailyDays)
		}

		date, err := parseISOTime(d.Time[i])
		if err != nil {
			return nil, fmt.Errorf("%w: daily time %q: %v", ErrMalformedData, d.Time[i], err)
		}

		code := d.WeatherCode[i]
		days = append(days, DailyForecast{
			Date:          date,
			MaxTempC:      d.Temperature2mMax[i],
			MinTempC:      d.Temperature2mMin[i],
			WeatherCode:   &code,
			ConditionText: wmo.Lookup(code).Description,
		})
	}
	return days, nil
}

func normalizeOpenMeteoHourly(h OpenMeteoHourly) ([]HourlyPoint, error) {
	n := len(h.Time)
	if n > maxHourlyPoints {
		n = maxHourlyPoints
	}

	points := make([]HourlyPoint, 0, n)
	for i := 0; i < n; i++ {
		if i >= len(h.Temperature2m) || i >= len(h.RelativeHumidity2m) {
			return nil, fmt.Errorf("%w: hourly arrays shorter than time array", ErrMalformedData)
		}

		ts, err := parseISOTime(h.Time[i])
		if err != nil {
			return nil, fmt.Errorf("%w: hourly time %q: %v", ErrMalformedData, h.Time[i], err)
		}

		points = append(points, HourlyPoint{
			Timestamp:    ts,
			TemperatureC: h.Temperature2m[i],
			HumidityPct:  h.RelativeHumidity2m[i],
		})
	}
	return points, nil
}

// NormalizeWttr converts a raw wttr.in payload into the canonical snapshot.
// wttr.in reports numbers as strings; required fields that fail to parse are
// malformed data, optional fields are simply dropped.
func NormalizeWttr(city string, p WttrPayload) (WeatherSnapshot, error) {
	if len(p.CurrentCondition) == 0 {
		return WeatherSnapshot{}, fmt.Errorf("%w: current_condition is empty", ErrMalformedData)
	}
	cc := p.CurrentCondition[0]

	temp, err := parseWttrFloat("temp_C", cc.TempC)
	if err != nil {
		return WeatherSnapshot{}, err
	}
	humidity, err := parseWttrFloat("humidity", cc.Humidity)
	if err != nil {
		return WeatherSnapshot{}, err
	}
	wind, err := parseWttrFloat("windspeedKmph", cc.WindSpeedKmph)
	if err != nil {
		return WeatherSnapshot{}, err
	}
	if len(cc.WeatherDesc) == 0 {
		return WeatherSnapshot{}, fmt.Errorf("%w: current_condition has no weatherDesc", ErrMalformedData)
	}

	current := CurrentConditions{
		TemperatureC:  temp,
		HumidityPct:   humidity,
		WindSpeedKmh:  wind,
		ConditionText: cc.WeatherDesc[0].Value,
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(cc.FeelsLikeC), 64); err == nil {
		current.FeelsLikeC = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(cc.Visibility), 64); err == nil {
		current.VisibilityKm = &v
	}

	daily, err := normalizeWttrDaily(p.Weather)
	if err != nil {
		return WeatherSnapshot{}, err
	}

	return WeatherSnapshot{
		Location:  city,
		Source:    SourceWttrIn,
		FetchedAt: time.Now().UTC(),
		Current:   current,
		Daily:     daily,
	}, nil
}

func normalizeWttrDaily(days []WttrDay) ([]DailyForecast, error) {
	n := len(days)
	if n > wttrDailyDays {
		n = wttrDailyDays
	}

	out := make([]DailyForecast, 0, n)
	for i := 0; i < n; i++ {
		day := days[i]

		date, err := parseISOTime(day.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: weather[%d].date %q: %v", ErrMalformedData, i, day.Date, err)
		}
		maxTemp, err := parseWttrFloat("maxtempC", day.MaxTempC)
		if err != nil {
			return nil, err
		}
		minTemp, err := parseWttrFloat("mintempC", day.MinTempC)
		if err != nil {
			return nil, err
		}

		fc := DailyForecast{
			Date:     date,
			MaxTempC: maxTemp,
			MinTempC: minTemp,
		}

		// The provider has no day-level condition; use the midday sample.
		if len(day.Hourly) > wttrMiddayIndex && len(day.Hourly[wttrMiddayIndex].WeatherDesc) > 0 {
			fc.ConditionText = day.Hourly[wttrMiddayIndex].WeatherDesc[0].Value
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(day.UVIndex), 64); err == nil {
			fc.UVIndex = &v
		}
		if len(day.Astronomy) > 0 {
			fc.Sunrise = day.Astronomy[0].Sunrise
			fc.Sunset = day.Astronomy[0].Sunset
		}

		out = append(out, fc)
	}
	return out, nil
}

func parseWttrFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not numeric", ErrMalformedData, field, s)
	}
	return v, nil
}

// isoTimeLayouts covers the forms the providers emit: RFC3339 (a bare Z is
// UTC), Open-Meteo's zone-less local timestamps, and plain dates.
var isoTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISOTime(s string) (time.Time, error) {
	for _, layout := range isoTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
