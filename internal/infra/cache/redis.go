package cache

import (
	"weather-app/pkg/redis"
	"weather-app/pkg/resource"
)

// NewRedisClient creates the cache client from app.redis.*, nil when app.cache.enabled is false.
func NewRedisClient() (*redis.Client, error) {
	if !resource.GetBool("app.cache.enabled") {
		return nil, nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithDefaultCacheTTL(resource.GetDuration("app.cache.ttl"))

	return redis.NewClient(config)
}

// NewWeatherCache returns the cache named app.cache.name on client.
func NewWeatherCache(client *redis.Client) *redis.Cache {
	return redis.NewCache(client, resource.GetStringOrDefault("app.cache.name", "weather"), resource.GetDuration("app.cache.ttl"))
}
