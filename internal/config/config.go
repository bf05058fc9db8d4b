package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all service settings, populated from environment variables.
type AppConfig struct {
	Port string

	// HTTPTimeout bounds every outbound provider call. There is no retry;
	// a timed-out call fails the whole fetch cycle.
	HTTPTimeout time.Duration

	// Provider endpoints, overridable for tests and self-hosted mirrors.
	GeocodingBaseURL string
	OpenMeteoBaseURL string
	WttrBaseURL      string

	Dashboard DashboardConfig
}

// DashboardConfig is the static page-chrome configuration handed to the
// rendering boundary at startup.
type DashboardConfig struct {
	Title         string   `json:"title"`
	Icon          string   `json:"icon"`
	DefaultCities []string `json:"defaultCities"`
	Sources       []string `json:"sources"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.GeocodingBaseURL = os.Getenv("GEOCODING_BASE_URL")
	cfg.OpenMeteoBaseURL = os.Getenv("OPENMETEO_BASE_URL")
	cfg.WttrBaseURL = os.Getenv("WTTR_BASE_URL")

	cfg.Dashboard = DashboardConfig{
		Title:         getenvDefault("DASHBOARD_TITLE", "Advanced Weather Dashboard"),
		Icon:          getenvDefault("DASHBOARD_ICON", "🌤️"),
		DefaultCities: splitList(getenvDefault("DASHBOARD_DEFAULT_CITIES", "London,New York,Tokyo,Sydney,Mumbai,Las Vegas,Paris,Berlin")),
		Sources:       []string{"open-meteo", "wttr"},
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
