package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/weatherdash/weather-dashboard/internal/weather"
)

var errNoHTTPClient = errors.New("http client not configured")

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// doGet executes a single GET through the provider's circuit breaker.
// Failures are not retried; a network error, a non-2xx status, or an open
// circuit all surface once as ErrFetch. The request timeout comes from the
// injected http.Client.
func doGet(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, url string) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrFetch, err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type from circuit breaker", weather.ErrFetch)
	}
	return resp, nil
}
