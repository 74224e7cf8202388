package weather

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/pkg/metrics"
)

const (
	resourceCurrent  = "current"
	resourceForecast = "forecast"
)

// Pair is the joined result of one paired fetch.
type Pair struct {
	Current  *entity.CurrentWeatherResponse
	Forecast *entity.ForecastResponse
}

// FetchPair requests current conditions and the forecast in parallel and returns once
// both finished. When either fails, the first error observed is returned.
func FetchPair(ctx context.Context, gateway api.WeatherGateway, coords entity.Coordinates, days int, collector *metrics.Collector) (*Pair, error) {
	var pair Pair
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		timer := collector.FetchTimer(resourceCurrent)
		current, err := gateway.GetCurrentWeather(groupCtx, coords)
		timer.ObserveDuration()
		collector.RecordFetch(resourceCurrent, err)
		if err != nil {
			return fmt.Errorf("failed to get current weather: %w", err)
		}
		pair.Current = current
		return nil
	})

	group.Go(func() error {
		timer := collector.FetchTimer(resourceForecast)
		forecast, err := gateway.GetForecast(groupCtx, coords, days)
		timer.ObserveDuration()
		collector.RecordFetch(resourceForecast, err)
		if err != nil {
			return fmt.Errorf("failed to get forecast: %w", err)
		}
		pair.Forecast = forecast
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &pair, nil
}
