package api

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-app/internal/domain/entity"
)

// rateLimitedWeatherGateway waits for a token before every provider call.
type rateLimitedWeatherGateway struct {
	next    WeatherGateway
	limiter *rate.Limiter
}

// NewRateLimitedWeatherGateway wraps next with a token bucket of rps requests per second.
// A non-positive rps means no limit.
func NewRateLimitedWeatherGateway(next WeatherGateway, rps float64, burst int) WeatherGateway {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &rateLimitedWeatherGateway{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (g *rateLimitedWeatherGateway) GetCurrentWeather(ctx context.Context, coords entity.Coordinates) (*entity.CurrentWeatherResponse, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return g.next.GetCurrentWeather(ctx, coords)
}

func (g *rateLimitedWeatherGateway) GetForecast(ctx context.Context, coords entity.Coordinates, days int) (*entity.ForecastResponse, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return g.next.GetForecast(ctx, coords, days)
}
