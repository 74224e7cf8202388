package cache

import (
	"context"
	"strconv"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/pkg/log"
	"weather-app/pkg/metrics"
	"weather-app/pkg/msg"
	"weather-app/pkg/redis"
)

// weatherCacheGateway serves provider responses from redis and fills it on a miss.
// Cache failures never fail the call.
type weatherCacheGateway struct {
	next    api.WeatherGateway
	cache   *redis.Cache
	metrics *metrics.Collector
}

// NewWeatherCacheGateway wraps next with a read-through cache
func NewWeatherCacheGateway(next api.WeatherGateway, cache *redis.Cache, collector *metrics.Collector) api.WeatherGateway {
	return &weatherCacheGateway{
		next:    next,
		cache:   cache,
		metrics: collector,
	}
}

func (g *weatherCacheGateway) GetCurrentWeather(ctx context.Context, coords entity.Coordinates) (*entity.CurrentWeatherResponse, error) {
	key := "current:" + coords.Query()

	var cached entity.CurrentWeatherResponse
	if g.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	response, err := g.next.GetCurrentWeather(ctx, coords)
	if err != nil {
		return nil, err
	}
	g.store(ctx, key, response)
	return response, nil
}

func (g *weatherCacheGateway) GetForecast(ctx context.Context, coords entity.Coordinates, days int) (*entity.ForecastResponse, error) {
	key := "forecast:" + strconv.Itoa(days) + ":" + coords.Query()

	var cached entity.ForecastResponse
	if g.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	response, err := g.next.GetForecast(ctx, coords, days)
	if err != nil {
		return nil, err
	}
	g.store(ctx, key, response)
	return response, nil
}

func (g *weatherCacheGateway) lookup(ctx context.Context, key string, dest any) bool {
	found, err := g.cache.Get(ctx, key, dest)
	switch {
	case err != nil:
		g.metrics.RecordCache("error")
		log.Warn(msg.GetMessage("cache.error", key, err))
		return false
	case found:
		g.metrics.RecordCache("hit")
		log.Debug(msg.GetMessage("cache.hit", key))
		return true
	default:
		g.metrics.RecordCache("miss")
		log.Debug(msg.GetMessage("cache.miss", key))
		return false
	}
}

func (g *weatherCacheGateway) store(ctx context.Context, key string, value any) {
	if err := g.cache.Set(ctx, key, value); err != nil {
		g.metrics.RecordCache("error")
		log.Warn(msg.GetMessage("cache.error", key, err))
	}
}
