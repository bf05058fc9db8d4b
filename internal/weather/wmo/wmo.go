// Package wmo maps WMO weather interpretation codes (as used by Open-Meteo)
// to a display icon and a human-readable description.
package wmo

// Entry is one row of the code table.
type Entry struct {
	Code        int    `json:"code"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// DefaultIcon is used for unknown codes and for providers that report no
// numeric code at all.
const DefaultIcon = "🌤️"

// DefaultDescription is the description for codes not in the table.
const DefaultDescription = "Unknown"

var codes = map[int]Entry{
	0:  {0, "☀️", "Clear sky"},
	1:  {1, "🌤️", "Mainly clear"},
	2:  {2, "⛅", "Partly cloudy"},
	3:  {3, "☁️", "Overcast"},
	45: {45, "🌫️", "Fog"},
	48: {48, "🌫️", "Depositing rime fog"},
	51: {51, "🌦️", "Light drizzle"},
	53: {53, "🌦️", "Moderate drizzle"},
	55: {55, "🌧️", "Dense drizzle"},
	61: {61, "🌧️", "Slight rain"},
	63: {63, "🌧️", "Moderate rain"},
	65: {65, "🌧️", "Heavy rain"},
	71: {71, "❄️", "Slight snow fall"},
	73: {73, "❄️", "Moderate snow fall"},
	75: {75, "🌨️", "Heavy snow fall"},
	77: {77, "❄️", "Snow grains"},
	80: {80, "🌦️", "Slight rain showers"},
	81: {81, "🌧️", "Moderate rain showers"},
	82: {82, "🌧️", "Violent rain showers"},
	85: {85, "🌨️", "Slight snow showers"},
	86: {86, "🌨️", "Heavy snow showers"},
	95: {95, "⛈️", "Thunderstorm"},
	96: {96, "⛈️", "Thunderstorm with slight hail"},
	99: {99, "⛈️", "Thunderstorm with heavy hail"},
}

// Lookup resolves a weather code to its table entry. Codes not in the table
// resolve to the default icon and description; Lookup never fails.
func Lookup(code int) Entry {
	if e, ok := codes[code]; ok {
		return e
	}
	return Entry{Code: code, Icon: DefaultIcon, Description: DefaultDescription}
}

// Known reports whether the code has a dedicated table entry.
func Known(code int) bool {
	_, ok := codes[code]
	return ok
}
