package api

import (
	"context"
	"fmt"

	"weather-app/internal/domain/entity"
)

// WeatherGateway defines the weather provider calls
type WeatherGateway interface {
	// GetCurrentWeather gets the current conditions at the coordinates
	GetCurrentWeather(ctx context.Context, coords entity.Coordinates) (*entity.CurrentWeatherResponse, error)

	// GetForecast gets the forecast at the coordinates
	// days: number of forecast days, today first
	GetForecast(ctx context.Context, coords entity.Coordinates, days int) (*entity.ForecastResponse, error)
}

// ProviderError is an error body returned by the weather provider.
type ProviderError struct {
	Status  int
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("weather provider error %d (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("weather provider error (status %d): %s", e.Status, e.Message)
}
