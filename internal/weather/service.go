package weather

import (
	"context"
	"fmt"
	"log"
)

// Service runs one fetch-normalize cycle against the selected provider.
// There is no caching and no background refresh; every call goes to the
// network and either yields a complete snapshot or an error.
type Service struct {
	openMeteo OpenMeteoClient
	wttr      WttrClient
}

// NewService creates a Service over the two provider clients.
func NewService(openMeteo OpenMeteoClient, wttr WttrClient) *Service {
	return &Service{
		openMeteo: openMeteo,
		wttr:      wttr,
	}
}

// Fetch retrieves weather for the city from the requested source and
// normalizes it. A geocoding miss aborts before any forecast call is made.
func (s *Service) Fetch(ctx context.Context, city string, source Source) (WeatherSnapshot, error) {
	switch source {
	case SourceOpenMeteo:
		return s.fetchOpenMeteo(ctx, city)
	case SourceWttrIn:
		return s.fetchWttr(ctx, city)
	default:
		return WeatherSnapshot{}, fmt.Errorf("unknown weather source %q", source)
	}
}

func (s *Service) fetchOpenMeteo(ctx context.Context, city string) (WeatherSnapshot, error) {
	lat, lon, err := s.openMeteo.Geocode(ctx, city)
	if err != nil {
		log.Printf("geocode failed for %q: %v", city, err)
		return WeatherSnapshot{}, err
	}

	payload, err := s.openMeteo.Forecast(ctx, lat, lon)
	if err != nil {
		log.Printf("open-meteo forecast failed for %q: %v", city, err)
		return WeatherSnapshot{}, err
	}

	return NormalizeOpenMeteo(city, payload)
}

func (s *Service) fetchWttr(ctx context.Context, city string) (WeatherSnapshot, error) {
	payload, err := s.wttr.TextWeather(ctx, city)
	if err != nil {
		log.Printf("wttr.in fetch failed for %q: %v", city, err)
		return WeatherSnapshot{}, err
	}

	return NormalizeWttr(city, payload)
}
